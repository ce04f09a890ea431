// Package rbtree implements an in-memory ordered key-value store kept
// balanced as a red-black tree. Search, insertion and removal run in
// O(log n).
//
// Every branch ends at a single shared black sentinel owned by the tree,
// so the fixup procedures never need nil checks. Rotations are the only
// operations that change the shape of the tree; the insert and delete
// fixups restore the coloring invariants through recoloring and rotation.
//
// A Tree is a single-writer structure. It does no internal locking and
// callers that share one across goroutines must serialize access.
package rbtree
