package trace

import (
	"io"

	"rbkv/rbtree"
)

// Result is the outcome of applying one record to a tree. Err carries the
// tree's own errors (rbtree.ErrNotFound, rbtree.ErrDuplicateKey).
type Result struct {
	Value string
	Err   error
}

// Apply runs rec against t.
func Apply(t *rbtree.Tree[int64, string], rec Record) Result {
	switch rec.Op {
	case OpInsert:
		return Result{Err: t.Insert(rec.Key, string(rec.Value))}
	case OpRemove:
		v, err := t.Remove(rec.Key)
		return Result{Value: v, Err: err}
	default:
		v, err := t.Find(rec.Key)
		return Result{Value: v, Err: err}
	}
}

type ReplayHandler func(Record, Result) error

// Replay applies every record from r to t in order. fn, if set, sees each
// record with its result and may stop the replay by returning an error.
func Replay(r *Reader, t *rbtree.Tree[int64, string], fn ReplayHandler) (lastSeq uint64, err error) {
	for {
		rec, err := r.Next()
		if err == io.EOF {
			return r.LastSeq(), nil
		}
		if err != nil {
			return r.LastSeq(), err
		}
		res := Apply(t, rec)
		if fn != nil {
			if err := fn(rec, res); err != nil {
				return rec.Seq, err
			}
		}
	}
}
