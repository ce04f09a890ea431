package rbtree

import "strings"

const emptyMarker = "NIL"

// Traverse renders the tree for debugging. Each node prints as
//
//	node = {L: left R: right}
//
// where a red node is <value(key)>, a black node is [value(key)] and an
// empty branch is NIL.
func (t *Tree[K, V]) Traverse() string {
	var b strings.Builder
	t.traverse(&b, t.root)
	return b.String()
}

func (t *Tree[K, V]) String() string { return t.Traverse() }

func (t *Tree[K, V]) traverse(b *strings.Builder, n *node[K, V]) {
	if n == t.nil {
		b.WriteString(emptyMarker)
		return
	}
	b.WriteString(n.render())
	b.WriteString(" = {L: ")
	t.traverse(b, n.left)
	b.WriteString(" R: ")
	t.traverse(b, n.right)
	b.WriteString("}")
}

// Walk visits every entry in ascending key order until fn returns false.
func (t *Tree[K, V]) Walk(fn func(key K, value V) bool) {
	stack := make([]*node[K, V], 0, 2*bitLen(t.size)+1)
	n := t.root
	for n != t.nil || len(stack) > 0 {
		for n != t.nil {
			stack = append(stack, n)
			n = n.left
		}
		n = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n.key, n.value) {
			return
		}
		n = n.right
	}
}

// Keys returns all keys in ascending order.
func (t *Tree[K, V]) Keys() []K {
	keys := make([]K, 0, t.size)
	t.Walk(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})
	return keys
}

func bitLen(n int) int {
	l := 0
	for ; n > 0; n >>= 1 {
		l++
	}
	return l
}
