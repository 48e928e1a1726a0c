package jv

// NodeID identifies a node in a Tree's arena. IDs are stable for the
// lifetime of one document load.
type NodeID int

// NoNode is returned by relations that do not exist, such as the root's
// parent.
const NoNode NodeID = -1

// DepthAll expands without a depth bound.
const DepthAll = -1

type treeNode struct {
	path     Path
	value    *Value
	parent   NodeID
	depth    int
	children []NodeID
	built    bool
	expanded bool
}

// Tree is the navigable tree abstraction over one JSON value. Nodes live in
// an arena indexed by NodeID so the presentation layers can map ids to their
// own widgets without the core depending on any widget type. A node's
// children are a deterministic function of its value, built lazily on first
// expansion (or eagerly up to the build depth bound) and never regenerated.
type Tree struct {
	nodes []treeNode
}

// NewTree builds a tree for root. Nodes above depth are expanded, the rest
// collapsed; DepthAll expands everything. A depth of 0 yields a fully
// collapsed tree with the root still navigable.
func NewTree(root *Value, depth int) *Tree {
	t := &Tree{}
	id := t.alloc(Path{}, root, NoNode, 0)
	t.ExpandToDepth(id, depth)
	return t
}

func (t *Tree) alloc(path Path, value *Value, parent NodeID, depth int) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, treeNode{
		path:   path,
		value:  value,
		parent: parent,
		depth:  depth,
	})
	return id
}

// Root returns the root node. The root's path is empty and the root is never
// removed.
func (t *Tree) Root() NodeID { return 0 }

// Len returns the number of materialized nodes.
func (t *Tree) Len() int { return len(t.nodes) }

// Path returns the node's root-relative path.
func (t *Tree) Path(id NodeID) Path { return t.nodes[id].path }

// Value returns the JSON value the node describes. The tree does not own the
// value; it is a view into the parsed document.
func (t *Tree) Value(id NodeID) *Value { return t.nodes[id].value }

// Depth returns the node's distance from the root.
func (t *Tree) Depth(id NodeID) int { return t.nodes[id].depth }

// Expanded reports whether the node is currently expanded.
func (t *Tree) Expanded(id NodeID) bool { return t.nodes[id].expanded }

// HasChildren reports whether the node's value is a non-empty container.
// It never forces child construction.
func (t *Tree) HasChildren(id NodeID) bool {
	v := t.nodes[id].value
	return v.IsContainer() && v.Len() > 0
}

// Children returns the node's built children in document order. Collapsed
// nodes whose children were never built return nil.
func (t *Tree) Children(id NodeID) []NodeID { return t.nodes[id].children }

// buildChildren materializes the node's children once. Later calls are
// no-ops, preserving structural identity of the ids.
func (t *Tree) buildChildren(id NodeID) {
	if t.nodes[id].built {
		return
	}
	v := t.nodes[id].value
	path := t.nodes[id].path
	depth := t.nodes[id].depth
	switch v.Kind() {
	case KindObject:
		for _, m := range v.Members() {
			child := t.alloc(path.Child(m.Key), m.Value, id, depth+1)
			t.nodes[id].children = append(t.nodes[id].children, child)
		}
	case KindArray:
		for i, item := range v.Items() {
			child := t.alloc(path.Element(i), item, id, depth+1)
			t.nodes[id].children = append(t.nodes[id].children, child)
		}
	}
	t.nodes[id].built = true
}

// Expand opens the node, building its children if they were never built.
// Expanding a leaf is a no-op.
func (t *Tree) Expand(id NodeID) {
	if !t.nodes[id].value.IsContainer() {
		return
	}
	t.buildChildren(id)
	t.nodes[id].expanded = true
}

// Collapse closes the node. Built children stay built, just hidden.
func (t *Tree) Collapse(id NodeID) {
	t.nodes[id].expanded = false
}

// Toggle flips the node between expanded and collapsed.
func (t *Tree) Toggle(id NodeID) {
	if t.nodes[id].expanded {
		t.Collapse(id)
	} else {
		t.Expand(id)
	}
}

// ExpandToDepth re-applies the depth rule from id downward: descendants
// fewer than depth levels below id are expanded, the rest collapsed,
// overriding any prior manual state beneath id. DepthAll expands everything.
func (t *Tree) ExpandToDepth(id NodeID, depth int) {
	t.applyDepth(id, depth, 0)
}

func (t *Tree) applyDepth(id NodeID, depth, rel int) {
	if t.nodes[id].value.IsContainer() {
		if depth == DepthAll || rel < depth {
			t.Expand(id)
		} else {
			t.Collapse(id)
		}
	}
	for _, child := range t.nodes[id].children {
		t.applyDepth(child, depth, rel+1)
	}
}

// ExpandAll expands every node.
func (t *Tree) ExpandAll() {
	t.ExpandToDepth(t.Root(), DepthAll)
}

// CollapseAll collapses every node. The root remains visible and navigable.
func (t *Tree) CollapseAll() {
	t.ExpandToDepth(t.Root(), 0)
}

// NavigateTo walks path from the root, expanding along the way, and returns
// the deepest resolvable node. The second return reports whether the full
// path was resolved; on partial resolution the cursor lands on the closest
// ancestor rather than failing.
func (t *Tree) NavigateTo(path Path) (NodeID, bool) {
	current := t.Root()
	for _, seg := range path {
		t.Expand(current)
		next := NoNode
		for _, child := range t.nodes[current].children {
			childPath := t.nodes[child].path
			if childPath[len(childPath)-1].Equal(seg) {
				next = child
				break
			}
		}
		if next == NoNode {
			return current, false
		}
		current = next
	}
	return current, true
}

// Visible returns the currently visible nodes in document order: a node is
// visible when every ancestor is expanded.
func (t *Tree) Visible() []NodeID {
	var out []NodeID
	var walk func(id NodeID)
	walk = func(id NodeID) {
		out = append(out, id)
		if t.nodes[id].expanded {
			for _, child := range t.nodes[id].children {
				walk(child)
			}
		}
	}
	walk(t.Root())
	return out
}

// Next returns the node after id in the visible sequence. Moving past the
// last visible node is a no-op.
func (t *Tree) Next(id NodeID) NodeID {
	visible := t.Visible()
	for i, v := range visible {
		if v == id && i+1 < len(visible) {
			return visible[i+1]
		}
	}
	return id
}

// Prev returns the node before id in the visible sequence. Moving before the
// first visible node is a no-op.
func (t *Tree) Prev(id NodeID) NodeID {
	visible := t.Visible()
	for i, v := range visible {
		if v == id && i > 0 {
			return visible[i-1]
		}
	}
	return id
}

// Parent returns the node's parent, or NoNode for the root.
func (t *Tree) Parent(id NodeID) NodeID {
	return t.nodes[id].parent
}

// FirstChild returns the node's first visible child, or id itself when the
// node is collapsed or has none.
func (t *Tree) FirstChild(id NodeID) NodeID {
	if t.nodes[id].expanded && len(t.nodes[id].children) > 0 {
		return t.nodes[id].children[0]
	}
	return id
}
