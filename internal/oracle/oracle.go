// Package oracle is a reference ordered store used to check the tree in
// differential tests and in cmd/rbstress. It keeps int64 keys in a pebble
// database on an in-memory filesystem, so nothing touches disk.
package oracle

import (
	"github.com/cockroachdb/errors"
	"github.com/cockroachdb/pebble"
	"github.com/cockroachdb/pebble/vfs"
)

const dbDir = "oracle"

// Oracle mirrors the tree's map semantics: Put overwrites, Delete of an
// absent key is a no-op that reports false.
type Oracle struct {
	db    *pebble.DB
	count int
}

func Open() (*Oracle, error) {
	db, err := pebble.Open(dbDir, &pebble.Options{
		FS:         vfs.NewMem(),
		DisableWAL: true, // in-memory reference model only
	})
	if err != nil {
		return nil, errors.Wrap(err, "open oracle")
	}
	return &Oracle{db: db}, nil
}

func (o *Oracle) Close() error {
	return o.db.Close()
}

// Len is the number of keys currently stored.
func (o *Oracle) Len() int { return o.count }

// Put stores value under key and reports whether the key already existed.
func (o *Oracle) Put(key int64, value []byte) (bool, error) {
	k := EncodeKey(key)
	existed, err := o.has(k)
	if err != nil {
		return false, err
	}
	if err := o.db.Set(k, value, pebble.NoSync); err != nil {
		return false, errors.Wrapf(err, "oracle put %d", key)
	}
	if !existed {
		o.count++
	}
	return existed, nil
}

// Get returns a copy of the value stored under key.
func (o *Oracle) Get(key int64) ([]byte, bool, error) {
	val, closer, err := o.db.Get(EncodeKey(key))
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "oracle get %d", key)
	}
	defer closer.Close()

	out := make([]byte, len(val))
	copy(out, val)
	return out, true, nil
}

// Delete removes key and reports whether it was present.
func (o *Oracle) Delete(key int64) (bool, error) {
	k := EncodeKey(key)
	existed, err := o.has(k)
	if err != nil || !existed {
		return false, err
	}
	if err := o.db.Delete(k, pebble.NoSync); err != nil {
		return false, errors.Wrapf(err, "oracle delete %d", key)
	}
	o.count--
	return true, nil
}

// Keys returns every stored key in ascending order.
func (o *Oracle) Keys() ([]int64, error) {
	keys := make([]int64, 0, o.count)
	err := o.Scan(func(key int64, _ []byte) error {
		keys = append(keys, key)
		return nil
	})
	return keys, err
}

// Scan visits all entries in ascending key order. The value slice is only
// valid during the callback.
func (o *Oracle) Scan(fn func(key int64, value []byte) error) error {
	iter, err := o.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return errors.Wrap(err, "oracle iterator")
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		key, err := DecodeKey(iter.Key())
		if err != nil {
			return err
		}
		if err := fn(key, iter.Value()); err != nil {
			return err
		}
	}
	return iter.Error()
}

func (o *Oracle) has(k []byte) (bool, error) {
	_, closer, err := o.db.Get(k)
	if errors.Is(err, pebble.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "oracle lookup")
	}
	return true, closer.Close()
}
