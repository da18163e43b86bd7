package uitree

// Behavior is the set of hook points a Node calls while it transitions.
// A node's behavior is a strategy object: specialized nodes (animated panels,
// sound cues, focus handling) plug in here instead of changing the state
// machine.
//
// The before/after hooks run inside the node's show or hide sequence and may
// suspend it by returning a non-nil Wait. The forced hooks run synchronously
// when the tree snaps the node to an end state, and must not suspend.
type Behavior interface {
	// OnInit runs once per build, top-down, after the node is registered.
	OnInit(n *Node)
	OnShowBefore(n *Node) Wait
	OnShowAfter(n *Node) Wait
	OnHideBefore(n *Node) Wait
	OnHideAfter(n *Node) Wait
	// OnShowForced runs when the node is snapped to Shown without a sequence.
	OnShowForced(n *Node)
	// OnHideForced runs when the node is snapped to Hidden without a sequence.
	OnHideForced(n *Node)
}

// NopBehavior implements every hook as a no-op. Embed it to override a subset.
type NopBehavior struct{}

func (NopBehavior) OnInit(*Node)            {}
func (NopBehavior) OnShowBefore(*Node) Wait { return nil }
func (NopBehavior) OnShowAfter(*Node) Wait  { return nil }
func (NopBehavior) OnHideBefore(*Node) Wait { return nil }
func (NopBehavior) OnHideAfter(*Node) Wait  { return nil }
func (NopBehavior) OnShowForced(*Node)      {}
func (NopBehavior) OnHideForced(*Node)      {}
