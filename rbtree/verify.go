package rbtree

// Verify checks every red-black and bookkeeping invariant and returns an
// error wrapping ErrCorrupt describing the first violation found.
func (t *Tree[K, V]) Verify() error {
	if t.nil.color != black {
		return corruptf("sentinel is %s", t.nil.color)
	}
	if t.root == t.nil {
		if t.size != 0 {
			return corruptf("empty tree reports size %d", t.size)
		}
		return nil
	}
	if t.root.color != black {
		return corruptf("root %v is red", t.root.key)
	}
	if t.root.parent != t.nil {
		return corruptf("root %v has a parent", t.root.key)
	}

	v := verifier[K, V]{t: t}
	if _, err := v.check(t.root); err != nil {
		return err
	}
	if v.count != t.size {
		return corruptf("counted %d nodes, size is %d", v.count, t.size)
	}
	return nil
}

type verifier[K any, V any] struct {
	t     *Tree[K, V]
	count int
	prev  *node[K, V]
}

// check returns the number of black nodes on every path from n down to a
// leaf, the sentinel included.
func (v *verifier[K, V]) check(n *node[K, V]) (int, error) {
	t := v.t
	if n == t.nil {
		return 1, nil
	}
	if n.left != t.nil && n.left.parent != n {
		return 0, corruptf("left child %v of %v has a stale parent link", n.left.key, n.key)
	}
	if n.right != t.nil && n.right.parent != n {
		return 0, corruptf("right child %v of %v has a stale parent link", n.right.key, n.key)
	}
	if n.color == red && (n.left.color == red || n.right.color == red) {
		return 0, corruptf("red node %v has a red child", n.key)
	}

	lh, err := v.check(n.left)
	if err != nil {
		return 0, err
	}
	if v.prev != nil && t.cmp(v.prev.key, n.key) >= 0 {
		return 0, corruptf("keys out of order: %v before %v", v.prev.key, n.key)
	}
	v.prev = n
	v.count++

	rh, err := v.check(n.right)
	if err != nil {
		return 0, err
	}
	if lh != rh {
		return 0, corruptf("black height differs under %v: left %d, right %d", n.key, lh, rh)
	}
	if n.color == black {
		lh++
	}
	return lh, nil
}

// BlackHeight is the number of black nodes on any path from the root down
// to a leaf, excluding the root and counting the leaf. An empty tree has
// black height zero.
func (t *Tree[K, V]) BlackHeight() int {
	if t.root == t.nil {
		return 0
	}
	h := 0
	for n := t.root.left; ; n = n.left {
		if n.color == black {
			h++
		}
		if n == t.nil {
			return h
		}
	}
}

// Height is the number of nodes on the longest root-to-leaf path.
func (t *Tree[K, V]) Height() int {
	return t.height(t.root)
}

func (t *Tree[K, V]) height(n *node[K, V]) int {
	if n == t.nil {
		return 0
	}
	return 1 + max(t.height(n.left), t.height(n.right))
}
