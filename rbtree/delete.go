package rbtree

// Remove deletes key and returns the value it held, or ErrNotFound. A
// missing key leaves the tree untouched.
func (t *Tree[K, V]) Remove(key K) (V, error) {
	z := t.search(key)
	if z == t.nil {
		var zero V
		return zero, ErrNotFound
	}
	removed := z.value

	// Two real children: take over the successor's entry and splice the
	// successor out instead. It has no left child.
	if z.left != t.nil && z.right != t.nil {
		s := t.minNode(z.right)
		z.key, z.value = s.key, s.value
		z = s
	}

	child := z.left
	if child == t.nil {
		child = z.right
	}

	// child may be the sentinel; its parent link is set anyway so the
	// fixup can climb from it.
	p := z.parent
	child.parent = p
	switch {
	case p == t.nil:
		t.root = child
	case z == p.left:
		p.left = child
	default:
		p.right = child
	}

	if z.color == black {
		if child.color == red {
			child.color = black
		} else {
			t.deleteFixup(child)
		}
	}

	t.nil.parent = t.nil
	t.size--
	t.release(z)
	return removed, nil
}

// deleteFixup repairs the black-height deficit carried by x.
func (t *Tree[K, V]) deleteFixup(x *node[K, V]) {
	for x != t.root && x.color == black {
		p := x.parent
		onLeft := x == p.left
		s := t.sibling(x)

		// Red sibling: rotate it above the parent so x gets a black sibling.
		if s.color == red {
			p.color = red
			s.color = black
			t.rotateToward(p, onLeft)
			t.root = t.rootFrom(s)
			s = t.sibling(x)
		}

		near, far := s.left, s.right
		if !onLeft {
			near, far = far, near
		}

		// Black sibling with black children, or no sibling at all.
		if near.color == black && far.color == black {
			if s != t.nil {
				s.color = red
			}
			if p.color == black {
				x = p
				continue
			}
			p.color = black
			return
		}

		// Near child red, far child black: move the red to the far side.
		if far.color == black {
			near.color = black
			s.color = red
			t.rotateToward(s, !onLeft)
			s = t.sibling(x)
			far = s.right
			if !onLeft {
				far = s.left
			}
		}

		// Far child red.
		s.color = p.color
		p.color = black
		far.color = black
		t.rotateToward(p, onLeft)
		t.root = t.rootFrom(s)
		x = t.root
	}
	x.color = black
}

// rotateToward rotates n so that it descends on the given side.
func (t *Tree[K, V]) rotateToward(n *node[K, V], left bool) {
	if left {
		t.rotateLeft(n)
	} else {
		t.rotateRight(n)
	}
}
