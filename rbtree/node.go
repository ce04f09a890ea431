package rbtree

import "fmt"

type Color uint8

const (
	red   Color = 0
	black Color = 1
)

func (c Color) String() string {
	if c == red {
		return "RED"
	}
	return "BLACK"
}

type node[K any, V any] struct {
	key    K
	value  V
	color  Color
	left   *node[K, V]
	right  *node[K, V]
	parent *node[K, V]
}

// newSentinel returns the black leaf shared by every branch of a tree.
// Its links point back to itself so reading the children of an absent
// sibling yields the sentinel again.
func newSentinel[K any, V any]() *node[K, V] {
	s := &node[K, V]{color: black}
	s.left, s.right, s.parent = s, s, s
	return s
}

// render formats a real node the way Traverse prints it: red nodes in
// angle brackets, black nodes in square brackets.
func (n *node[K, V]) render() string {
	if n.color == red {
		return fmt.Sprintf("<%v(%v)>", n.value, n.key)
	}
	return fmt.Sprintf("[%v(%v)]", n.value, n.key)
}
