package uitree

import "strings"

// Node is one UI element in the visibility tree. Nodes are composed with
// AddChild, then handed to Tree.Build; after that the hierarchy is frozen and
// only the node's own transition state changes.
type Node struct {
	// Identity
	id   int
	Name string

	// Hierarchy (parent is a non-owning back reference)
	parent   *Node
	children []*Node
	tree     *Tree

	// Presentation channels. Clips animate these; presenters read them.
	Alpha   float64
	Scale   float64
	OffsetX float64
	OffsetY float64

	// Metadata
	UserData any

	behavior Behavior

	// Transition state
	visible bool
	task    *Task
	kind    transitionKind
	forcing transitionKind // end state a forced cancel snaps to
}

// NewNode creates a hidden node with the given children.
func NewNode(name string, children ...*Node) *Node {
	n := &Node{
		id:       -1,
		Name:     name,
		Alpha:    1,
		Scale:    1,
		behavior: NopBehavior{},
	}
	for _, c := range children {
		n.AddChild(c)
	}
	return n
}

// NewAnimatedNode creates a node driven by the show and hide clips of player.
func NewAnimatedNode(name string, player EffectPlayer, showClip, hideClip string, children ...*Node) *Node {
	n := NewNode(name, children...)
	n.behavior = &AnimatedBehavior{Player: player, ShowClip: showClip, HideClip: hideClip}
	return n
}

// ID returns the identity assigned by the last build, or -1 if the node is
// not part of a built tree.
func (n *Node) ID() int {
	return n.id
}

// Behavior returns the node's hook strategy.
func (n *Node) Behavior() Behavior {
	return n.behavior
}

// SetBehavior replaces the node's hook strategy. A nil behavior restores
// NopBehavior. Panics once the node belongs to a built tree.
func (n *Node) SetBehavior(b Behavior) {
	n.checkMutable("SetBehavior")
	if b == nil {
		b = NopBehavior{}
	}
	n.behavior = b
}

// Tree returns the tree the node was built into, or nil.
func (n *Node) Tree() *Tree {
	return n.tree
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// Child returns the first direct child with the given name, or nil.
func (n *Node) Child(name string) *Node {
	for _, c := range n.children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Path returns the slash-separated names from the root down to n.
func (n *Node) Path() string {
	depth := n.Depth()
	names := make([]string, depth+1)
	for p := n; p != nil; p = p.parent {
		names[depth] = p.Name
		depth--
	}
	return strings.Join(names, "/")
}

// Depth returns the number of ancestors of n.
func (n *Node) Depth() int {
	d := 0
	for p := n.parent; p != nil; p = p.parent {
		d++
	}
	return d
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil, child is an ancestor of this node (cycle), or
// either node belongs to a built tree.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("uitree: cannot add nil child")
	}
	n.checkMutable("AddChild (parent)")
	child.checkMutable("AddChild (child)")
	if isAncestor(child, n) {
		panic("uitree: adding child would create a cycle")
	}
	if child.parent != nil {
		child.parent.removeChildByPtr(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

// RemoveChild detaches child from this node.
// Panics if child.Parent() != n or the node belongs to a built tree.
func (n *Node) RemoveChild(child *Node) {
	n.checkMutable("RemoveChild")
	if child.parent != n {
		panic("uitree: child's parent is not this node")
	}
	n.removeChildByPtr(child)
	child.parent = nil
}

// --- Queries ---

// IsShow reports whether the node has settled visible.
func (n *Node) IsShow() bool {
	return n.visible
}

// IsShowing reports whether a show sequence is in flight.
func (n *Node) IsShowing() bool {
	return n.task != nil && n.kind == kindShow
}

// IsHiding reports whether a hide sequence is in flight.
func (n *Node) IsHiding() bool {
	return n.task != nil && n.kind == kindHide
}

// IsTopNode reports whether n is the root of a built tree.
func (n *Node) IsTopNode() bool {
	return n.tree != nil && n.parent == nil
}

// State derives the node's state machine position from its flags.
func (n *Node) State() State {
	switch {
	case n.IsShowing():
		return StateShowing
	case n.IsHiding():
		return StateHiding
	case n.visible:
		return StateShown
	default:
		return StateHidden
	}
}

// VisibleInTree reports whether n and every ancestor have settled visible.
func (n *Node) VisibleInTree() bool {
	for p := n; p != nil; p = p.parent {
		if !p.visible {
			return false
		}
	}
	return true
}

// --- Helpers ---

func (n *Node) checkMutable(op string) {
	if n.tree != nil {
		panic("uitree: " + op + " on node " + n.Name + " of a built tree")
	}
}

// isAncestor reports whether candidate is an ancestor of node (or node itself).
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

// walkPostOrder calls fn for every descendant of n, children before parents.
// n itself is not visited.
func (n *Node) walkPostOrder(fn func(*Node)) {
	for _, c := range n.children {
		c.walkPostOrder(fn)
		fn(c)
	}
}
