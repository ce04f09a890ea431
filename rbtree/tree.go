package rbtree

import (
	"golang.org/x/exp/constraints"

	"rbkv/internal/memory"
)

// Compare orders keys. It returns a negative number when a < b, zero when
// a == b and a positive number when a > b.
type Compare[K any] func(a, b K) int

type Tree[K any, V any] struct {
	root *node[K, V]
	nil  *node[K, V] // sentinel (black)
	size int

	cmp  Compare[K]
	cfg  Config
	pool *memory.Pool[node[K, V]]
}

// New constructs an empty tree ordered by cmp.
func New[K any, V any](cmp Compare[K], cfg Config) *Tree[K, V] {
	if cmp == nil {
		panic("rbtree: nil Compare")
	}
	nilNode := newSentinel[K, V]()
	t := &Tree[K, V]{
		root: nilNode,
		nil:  nilNode,
		cmp:  cmp,
		cfg:  cfg,
	}
	if cfg.NodePool > 0 {
		t.pool = memory.NewPool[node[K, V]](nil, cfg.NodePool)
	}
	return t
}

// NewOrdered constructs an empty tree using the natural order of K.
func NewOrdered[K constraints.Ordered, V any](cfg Config) *Tree[K, V] {
	return New[K, V](compareOrdered[K], cfg)
}

func compareOrdered[K constraints.Ordered](a, b K) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// Size returns the number of entries currently stored.
func (t *Tree[K, V]) Size() int { return t.size }

// Find returns the value stored under key, or ErrNotFound.
func (t *Tree[K, V]) Find(key K) (V, error) {
	n := t.search(key)
	if n == t.nil {
		var zero V
		return zero, ErrNotFound
	}
	return n.value, nil
}

func (t *Tree[K, V]) Contains(key K) bool {
	return t.search(key) != t.nil
}

// Clear drops every entry and empties the node freelist. Detached nodes
// are left to the garbage collector.
func (t *Tree[K, V]) Clear() {
	t.root = t.nil
	t.size = 0
	if t.pool != nil {
		t.pool.Reset()
	}
}

// PoolStats reports node recycling counters. It is the zero value when
// Config.NodePool is zero.
func (t *Tree[K, V]) PoolStats() memory.Stats {
	if t.pool == nil {
		return memory.Stats{}
	}
	return t.pool.Stats()
}

/******************** Internal helpers ********************/

func (t *Tree[K, V]) search(key K) *node[K, V] {
	n := t.root
	for n != t.nil {
		c := t.cmp(key, n.key)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return n
		}
	}
	return t.nil
}

func (t *Tree[K, V]) minNode(n *node[K, V]) *node[K, V] {
	if n == t.nil {
		return t.nil
	}
	for n.left != t.nil {
		n = n.left
	}
	return n
}

// rootFrom walks parent links up from n. Rotations do not maintain
// t.root, so callers refresh it through here after restructuring.
func (t *Tree[K, V]) rootFrom(n *node[K, V]) *node[K, V] {
	if n == t.nil {
		return t.root
	}
	for n.parent != t.nil {
		n = n.parent
	}
	return n
}

// sibling returns the other child of n's parent, or the sentinel.
func (t *Tree[K, V]) sibling(n *node[K, V]) *node[K, V] {
	p := n.parent
	if p == t.nil {
		return t.nil
	}
	if n == p.left {
		return p.right
	}
	return p.left
}

func (t *Tree[K, V]) newNode(key K, value V, parent *node[K, V]) *node[K, V] {
	var n *node[K, V]
	if t.pool != nil {
		n = t.pool.Get()
	} else {
		n = &node[K, V]{}
	}
	n.key = key
	n.value = value
	n.color = red
	n.left = t.nil
	n.right = t.nil
	n.parent = parent
	return n
}

// release detaches a spliced-out node so it pins no keys, values or
// neighbours, then offers it to the pool.
func (t *Tree[K, V]) release(n *node[K, V]) {
	*n = node[K, V]{}
	if t.pool != nil {
		t.pool.Put(n)
	}
}
