package rbtree

import "github.com/cockroachdb/errors"

// Insert stores value under key. An existing key is handled according to
// Config.Duplicates: overwritten in place, or rejected with ErrDuplicateKey.
func (t *Tree[K, V]) Insert(key K, value V) error {
	y := t.nil
	x := t.root
	var c int
	for x != t.nil {
		y = x
		c = t.cmp(key, x.key)
		switch {
		case c < 0:
			x = x.left
		case c > 0:
			x = x.right
		default:
			if t.cfg.Duplicates == RejectDuplicates {
				return errors.Wrapf(ErrDuplicateKey, "insert %v", key)
			}
			x.value = value
			return nil
		}
	}

	z := t.newNode(key, value, y)
	if y == t.nil {
		t.root = z
	} else if c < 0 {
		y.left = z
	} else {
		y.right = z
	}
	t.insertFixup(z)
	t.root = t.rootFrom(z)
	t.size++
	return nil
}

// insertFixup restores the coloring after n was linked in as a red leaf.
func (t *Tree[K, V]) insertFixup(n *node[K, V]) {
	for {
		p := n.parent

		// n is the root.
		if p == t.nil {
			n.color = black
			return
		}

		// Black parent: nothing is violated.
		if p.color == black {
			return
		}

		// A red parent is never the root, so g is a real node.
		g := p.parent
		u := t.sibling(p)

		// Red uncle: push the red up to the grandparent and retry there.
		if u.color == red {
			p.color = black
			u.color = black
			g.color = red
			n = g
			continue
		}

		// Black uncle. Turn an inner grandchild into an outer one first.
		if n == p.right && p == g.left {
			t.rotateLeft(p)
			n, p = p, n
		} else if n == p.left && p == g.right {
			t.rotateRight(p)
			n, p = p, n
		}

		if n == p.left {
			t.rotateRight(g)
		} else {
			t.rotateLeft(g)
		}
		p.color = black
		g.color = red
		return
	}
}
