package rbtree

import "github.com/cockroachdb/errors"

var (
	// ErrNotFound is returned by Find and Remove when the key is absent.
	// A stored zero or nil value is never reported as ErrNotFound.
	ErrNotFound = errors.New("rbtree: key not found")

	// ErrDuplicateKey is returned by Insert under RejectDuplicates.
	ErrDuplicateKey = errors.New("rbtree: duplicate key")

	// ErrCorrupt marks every error produced by Verify.
	ErrCorrupt = errors.New("rbtree: invariant violated")
)

func corruptf(format string, args ...any) error {
	return errors.Wrapf(ErrCorrupt, format, args...)
}
