package rbtree

// rotateLeft promotes x.right into x's position. The in-order sequence is
// unchanged. If x was the root the promoted node is left parentless and
// the caller must refresh t.root.
//
//	    x                y
//	   / \              / \
//	  a   y     =>     x   c
//	     / \          / \
//	    b   c        a   b
func (t *Tree[K, V]) rotateLeft(x *node[K, V]) {
	y := x.right
	x.right = y.left
	if y.left != t.nil {
		y.left.parent = x
	}
	p := x.parent
	y.parent = p
	if p != t.nil {
		if x == p.left {
			p.left = y
		} else {
			p.right = y
		}
	}
	y.left = x
	x.parent = y
}

// rotateRight is the mirror of rotateLeft: x.left takes x's position.
func (t *Tree[K, V]) rotateRight(x *node[K, V]) {
	y := x.left
	x.left = y.right
	if y.right != t.nil {
		y.right.parent = x
	}
	p := x.parent
	y.parent = p
	if p != t.nil {
		if x == p.right {
			p.right = y
		} else {
			p.left = y
		}
	}
	y.right = x
	x.parent = y
}
