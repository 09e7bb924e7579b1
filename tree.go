package lzsave

// unused marks a missing parent or child link.
const unused = -1

// treeNode holds the links of one window slot in the match tree.
type treeNode struct {
	parent  int
	smaller int
	larger  int
}

// detached is the state of a slot without a tree entry.
var detached = treeNode{parent: unused, smaller: unused, larger: unused}

// matchTree is a binary search tree over window slots, ordered by the
// look-ahead strings starting at each slot's position. Nodes live in an
// arena indexed by slot; the last element is the root sentinel, whose
// larger link holds the tree.
//
// Strings are read from the window for encoded positions and from src for
// the look-ahead, so the window must be written before the cursor moves.
type matchTree struct {
	nodes     []treeNode
	root      int
	win       *window
	src       []byte
	lookAhead int
}

// newMatchTree returns an empty tree over win for the stream src.
func newMatchTree(win *window, src []byte, lookAhead int) *matchTree {
	size := len(win.buf)
	nodes := make([]treeNode, size+1)
	for i := range nodes {
		nodes[i] = detached
	}

	return &matchTree{
		nodes:     nodes,
		root:      size,
		win:       win,
		src:       src,
		lookAhead: lookAhead,
	}
}

// active reports whether the slot of pos has a tree entry.
func (t *matchTree) active(pos int) bool {
	return t.nodes[t.win.slot(pos)].parent != unused
}

// position returns the absolute position stored in slot, as seen from cursor.
// The slot of cursor itself maps to cursor.
func (t *matchTree) position(slot, cursor int) int {
	return cursor - ((cursor - slot) & t.win.mask)
}

// byteAt returns the stream byte at pos while the encoder stands at cursor.
func (t *matchTree) byteAt(pos, cursor int) byte {
	if pos < cursor {
		return t.win.at(pos)
	}

	return t.src[pos]
}

// compare matches the string at pos against the one at candidate for at most limit bytes.
// It returns the equal run length and the sign of the first differing byte (0 when equal).
func (t *matchTree) compare(candidate, pos, limit int) (int, int) {
	for n := 0; n < limit; n++ {
		a := t.src[pos+n]
		b := t.byteAt(candidate+n, pos)
		if a != b {
			return n, int(a) - int(b)
		}
	}

	return limit, 0
}

// insert adds pos to the tree and returns the longest match met on the way down.
// Only nodes on the descent path are compared. A node whose full look-ahead
// equals the string at pos is superseded by pos instead of gaining a sibling.
// The slot of pos must not be active.
func (t *matchTree) insert(pos int) (matchPos, matchLen int) {
	node := t.win.slot(pos)
	limit := min(t.lookAhead, len(t.src)-pos)

	parent := t.root
	larger := true
	current := t.nodes[t.root].larger
	for current != unused {
		candidate := t.position(current, pos)
		n, cmp := t.compare(candidate, pos, limit)
		if n > matchLen {
			matchPos, matchLen = candidate, n
		}

		if n == t.lookAhead {
			t.supersede(current, node)
			return matchPos, matchLen
		}

		parent = current
		larger = cmp >= 0
		if larger {
			current = t.nodes[current].larger
		} else {
			current = t.nodes[current].smaller
		}
	}

	t.nodes[node] = treeNode{parent: parent, smaller: unused, larger: unused}
	if larger {
		t.nodes[parent].larger = node
	} else {
		t.nodes[parent].smaller = node
	}

	return matchPos, matchLen
}

// delete removes the entry in the slot of pos, if any, so the slot can be reused.
func (t *matchTree) delete(pos int) {
	node := t.win.slot(pos)
	n := t.nodes[node]
	if n.parent == unused {
		return
	}

	switch {
	case n.larger == unused:
		t.contract(node, n.smaller)
	case n.smaller == unused:
		t.contract(node, n.larger)
	default:
		// The successor has no smaller child, so splicing it out cannot recurse.
		next := t.successor(node)
		t.contract(next, t.nodes[next].larger)
		t.supersede(node, next)
	}

	t.nodes[node] = detached
}

// successor returns the leftmost node of the larger subtree of node.
func (t *matchTree) successor(node int) int {
	next := t.nodes[node].larger
	for t.nodes[next].smaller != unused {
		next = t.nodes[next].smaller
	}

	return next
}

// supersede moves next into the tree place of old, children included, and detaches old.
func (t *matchTree) supersede(old, next int) {
	n := t.nodes[old]
	t.replace(old, next)

	t.nodes[next].smaller = n.smaller
	t.nodes[next].larger = n.larger
	if n.smaller != unused {
		t.nodes[n.smaller].parent = next
	}
	if n.larger != unused {
		t.nodes[n.larger].parent = next
	}

	t.nodes[old] = detached
}

// replace points the parent of old at next. Children are left to the caller.
func (t *matchTree) replace(old, next int) {
	parent := t.nodes[old].parent
	if t.nodes[parent].smaller == old {
		t.nodes[parent].smaller = next
	} else {
		t.nodes[parent].larger = next
	}

	t.nodes[next].parent = parent
	t.nodes[old].parent = unused
}

// contract splices child into the tree place of node, which has at most that one child.
func (t *matchTree) contract(node, child int) {
	parent := t.nodes[node].parent
	if t.nodes[parent].smaller == node {
		t.nodes[parent].smaller = child
	} else {
		t.nodes[parent].larger = child
	}

	if child != unused {
		t.nodes[child].parent = parent
	}
	t.nodes[node].parent = unused
}
