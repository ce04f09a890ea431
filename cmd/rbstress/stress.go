package main

import (
	"bytes"
	"math/rand"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"

	"rbkv/internal/logging"
	"rbkv/internal/oracle"
	"rbkv/internal/trace"
	"rbkv/rbtree"
)

// stressConfig defines one crosscheck run. Zero fields take defaults.
type stressConfig struct {
	Ops         int
	Keys        int64
	Seed        int64
	VerifyEvery int
	ValueSize   int
	NodePool    int

	InsertWeight int
	RemoveWeight int
	FindWeight   int

	// TracePath, when set, records every generated operation.
	TracePath string
	// ReplayPath, when set, replays a recorded trace instead of generating.
	ReplayPath string
}

func (c *stressConfig) applyDefaults() {
	if c.Ops == 0 {
		c.Ops = 100_000
	}
	if c.Keys == 0 {
		c.Keys = 1000
	}
	if c.VerifyEvery == 0 {
		c.VerifyEvery = 1000
	}
	if c.ValueSize == 0 {
		c.ValueSize = 8
	}
	if c.InsertWeight == 0 && c.RemoveWeight == 0 && c.FindWeight == 0 {
		c.InsertWeight, c.RemoveWeight, c.FindWeight = 50, 30, 20
	}
}

func (c *stressConfig) validate() error {
	if c.Ops < 0 {
		return errors.Newf("ops must not be negative, got %d", c.Ops)
	}
	if c.Keys <= 0 {
		return errors.Newf("keys must be positive, got %d", c.Keys)
	}
	if c.ValueSize < 0 {
		return errors.Newf("value-size must not be negative, got %d", c.ValueSize)
	}
	if c.InsertWeight < 0 || c.RemoveWeight < 0 || c.FindWeight < 0 {
		return errors.Newf("weights must not be negative, got insert=%d remove=%d find=%d",
			c.InsertWeight, c.RemoveWeight, c.FindWeight)
	}
	if c.InsertWeight+c.RemoveWeight+c.FindWeight <= 0 {
		return errors.New("at least one operation weight must be positive")
	}
	return nil
}

// summary is what a run reports back.
type summary struct {
	Ops       uint64
	Inserts   uint64
	Removes   uint64
	Finds     uint64
	Misses    uint64
	Verifies  uint64
	FinalSize int
	MaxHeight int
}

// checker applies operations to the tree and the oracle and fails on the
// first disagreement.
type checker struct {
	tree  *rbtree.Tree[int64, string]
	ref   *oracle.Oracle
	every int
	log   logging.Logger
	sum   summary
}

func newChecker(cfg stressConfig, log logging.Logger) (*checker, error) {
	ref, err := oracle.Open()
	if err != nil {
		return nil, err
	}
	return &checker{
		tree:  rbtree.NewOrdered[int64, string](rbtree.Config{NodePool: cfg.NodePool}),
		ref:   ref,
		every: cfg.VerifyEvery,
		log:   log,
	}, nil
}

func (c *checker) Close() error { return c.ref.Close() }

func (c *checker) apply(rec trace.Record) error {
	return c.observe(rec, trace.Apply(c.tree, rec))
}

// observe checks res, the tree's answer to rec, against the oracle and
// then brings the oracle up to date.
func (c *checker) observe(rec trace.Record, res trace.Result) error {
	c.sum.Ops++

	want, existed, err := c.ref.Get(rec.Key)
	if err != nil {
		return err
	}

	switch rec.Op {
	case trace.OpInsert:
		c.sum.Inserts++
		if res.Err != nil {
			return errors.Wrapf(res.Err, "seq %d: insert %d", rec.Seq, rec.Key)
		}
		if _, err := c.ref.Put(rec.Key, rec.Value); err != nil {
			return err
		}
	case trace.OpRemove, trace.OpFind:
		if rec.Op == trace.OpRemove {
			c.sum.Removes++
			if _, err := c.ref.Delete(rec.Key); err != nil {
				return err
			}
		} else {
			c.sum.Finds++
		}
		if err := c.compare(rec, res, want, existed); err != nil {
			return err
		}
	}

	if c.tree.Size() != c.ref.Len() {
		return errors.Newf("seq %d: tree size %d, oracle size %d", rec.Seq, c.tree.Size(), c.ref.Len())
	}
	if c.every > 0 && c.sum.Ops%uint64(c.every) == 0 {
		return c.verify()
	}
	return nil
}

func (c *checker) compare(rec trace.Record, res trace.Result, want []byte, existed bool) error {
	if !existed {
		c.sum.Misses++
		if !errors.Is(res.Err, rbtree.ErrNotFound) {
			return errors.Newf("seq %d: %s %d: expected not found, got %q (%v)", rec.Seq, rec.Op, rec.Key, res.Value, res.Err)
		}
		return nil
	}
	if res.Err != nil {
		return errors.Wrapf(res.Err, "seq %d: %s %d: oracle has %q", rec.Seq, rec.Op, rec.Key, want)
	}
	if !bytes.Equal([]byte(res.Value), want) {
		return errors.Newf("seq %d: %s %d: tree has %q, oracle has %q", rec.Seq, rec.Op, rec.Key, res.Value, want)
	}
	return nil
}

// verify checks the tree's invariants and compares full key order.
func (c *checker) verify() error {
	c.sum.Verifies++
	if err := c.tree.Verify(); err != nil {
		return errors.Wrapf(err, "after %d ops", c.sum.Ops)
	}
	keys, err := c.ref.Keys()
	if err != nil {
		return err
	}
	got := c.tree.Keys()
	if len(got) != len(keys) {
		return errors.Newf("after %d ops: tree has %d keys, oracle %d", c.sum.Ops, len(got), len(keys))
	}
	for i := range keys {
		if got[i] != keys[i] {
			return errors.Newf("after %d ops: key %d is %d in tree, %d in oracle", c.sum.Ops, i, got[i], keys[i])
		}
	}
	if h := c.tree.Height(); h > c.sum.MaxHeight {
		c.sum.MaxHeight = h
	}
	c.log.Debugf("verified %s ops, size=%d height=%d black-height=%d",
		humanize.Comma(int64(c.sum.Ops)), c.tree.Size(), c.tree.Height(), c.tree.BlackHeight())
	return nil
}

// run executes one crosscheck and returns its summary.
func run(cfg stressConfig, log logging.Logger) (summary, error) {
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return summary{}, err
	}

	c, err := newChecker(cfg, log)
	if err != nil {
		return summary{}, err
	}
	defer c.Close()

	if cfg.ReplayPath != "" {
		err = replay(c, cfg.ReplayPath, log)
	} else {
		err = generate(c, cfg, log)
	}
	if err != nil {
		return c.sum, err
	}
	if err := c.verify(); err != nil {
		return c.sum, err
	}
	c.sum.FinalSize = c.tree.Size()
	return c.sum, nil
}

func generate(c *checker, cfg stressConfig, log logging.Logger) (err error) {
	rng := rand.New(rand.NewSource(cfg.Seed))
	log.Infof("generating %s ops over %s keys (seed=%d)", humanize.Comma(int64(cfg.Ops)), humanize.Comma(cfg.Keys), cfg.Seed)

	var tw *trace.Writer
	if cfg.TracePath != "" {
		if tw, err = trace.Create(cfg.TracePath); err != nil {
			return err
		}
		defer func() {
			if cerr := tw.Close(); err == nil {
				err = cerr
			}
		}()
	}

	total := cfg.InsertWeight + cfg.RemoveWeight + cfg.FindWeight
	value := make([]byte, cfg.ValueSize)
	for i := 0; i < cfg.Ops; i++ {
		rec := trace.Record{Seq: uint64(i + 1), Key: rng.Int63n(cfg.Keys)}
		switch w := rng.Intn(total); {
		case w < cfg.InsertWeight:
			rec.Op = trace.OpInsert
			rng.Read(value)
			rec.Value = append([]byte(nil), value...)
		case w < cfg.InsertWeight+cfg.RemoveWeight:
			rec.Op = trace.OpRemove
		default:
			rec.Op = trace.OpFind
		}

		if tw != nil {
			if rec.Seq, err = tw.Append(rec); err != nil {
				return err
			}
		}
		if err := c.apply(rec); err != nil {
			return err
		}
	}
	return nil
}

func replay(c *checker, path string, log logging.Logger) error {
	r, err := trace.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	log.Infof("replaying %s", path)
	last, err := trace.Replay(r, c.tree, c.observe)
	if err != nil {
		return err
	}
	log.Debugf("replayed through seq %d", last)
	return nil
}
