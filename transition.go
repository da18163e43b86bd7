package uitree

import "errors"

// Show starts a show sequence using the tree's default retrigger policy.
func (n *Node) Show() error {
	return n.ShowWith(TransitionOptions{})
}

// Hide starts a hide sequence using the tree's default retrigger policy.
func (n *Node) Hide() error {
	return n.HideWith(TransitionOptions{})
}

// ShowWith makes n visible.
//
// Ancestors that are hidden or still showing are snapped to Shown first, so
// the path to the root is fully visible before n's own sequence begins. If
// any ancestor is hiding the request is rejected with ErrBlockedByAncestor
// and nothing changes. Any sequence already running on n is cancelled and
// every in-flight descendant transition is snapped to its end state before
// the new sequence is submitted.
func (n *Node) ShowWith(o TransitionOptions) error {
	t := n.tree
	if t == nil {
		return &TransitionError{Op: "show", Path: n.Path(), Err: ErrNotBuilt}
	}
	if blocker := n.hidingAncestor(); blocker != nil {
		return t.reject("show", n, blocker)
	}
	n.forceAncestorsShown()

	if !t.retrigger(o.Retrigger) && n.State() != StateHidden {
		return nil
	}

	n.cancel()
	n.walkPostOrder(func(d *Node) { d.cancel() })
	t.RunSequence(n.sequence(kindShow, o))
	return nil
}

// HideWith makes n hidden.
//
// Every descendant is snapped to Hidden, children first, before n's own
// sequence begins; no descendant plays its hide effect. Rejected with
// ErrBlockedByAncestor while an ancestor is hiding.
func (n *Node) HideWith(o TransitionOptions) error {
	t := n.tree
	if t == nil {
		return &TransitionError{Op: "hide", Path: n.Path(), Err: ErrNotBuilt}
	}
	if blocker := n.hidingAncestor(); blocker != nil {
		return t.reject("hide", n, blocker)
	}

	if !t.retrigger(o.Retrigger) && n.State() != StateShown {
		return nil
	}

	n.cancel()
	n.walkPostOrder(func(d *Node) { d.hideForce() })
	t.RunSequence(n.sequence(kindHide, o))
	return nil
}

// ShowChildren shows every direct child of n.
func (n *Node) ShowChildren() error {
	return n.ShowChildrenWith(TransitionOptions{})
}

// ShowChildrenWith shows every direct child of n with the same options.
func (n *Node) ShowChildrenWith(o TransitionOptions) error {
	var errs []error
	for _, c := range n.children {
		if err := c.ShowWith(o); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// hidingAncestor returns the nearest ancestor with a hide sequence in flight.
func (n *Node) hidingAncestor() *Node {
	for p := n.parent; p != nil; p = p.parent {
		if p.IsHiding() {
			return p
		}
	}
	return nil
}

// forceAncestorsShown snaps every ancestor that has not settled visible to
// Shown, root first.
func (n *Node) forceAncestorsShown() {
	depth := n.Depth()
	if depth == 0 {
		return
	}
	chain := make([]*Node, depth)
	for p := n.parent; p != nil; p = p.parent {
		depth--
		chain[depth] = p
	}
	for _, a := range chain {
		if a.State() != StateShown {
			a.showForce()
		}
	}
}

// sequence builds the task for one show or hide of n and attaches it.
func (n *Node) sequence(kind transitionKind, o TransitionOptions) *Task {
	visible := kind == kindShow
	b := n.behavior
	before, after := b.OnHideBefore, b.OnHideAfter
	started := EventHideStarted
	if visible {
		before, after = b.OnShowBefore, b.OnShowAfter
		started = EventShowStarted
	}

	var task *Task
	task = NewTask(
		func() Wait {
			n.emit(started)
			if o.OnBefore != nil {
				o.OnBefore(n)
			}
			if task.Cancelled() {
				return nil
			}
			return before(n)
		},
		func() Wait {
			n.tree.presenter.SetVisible(n, visible)
			return after(n)
		},
		func() Wait {
			if o.OnAfter != nil {
				o.OnAfter(n)
			}
			if !task.Cancelled() {
				n.settle(task, visible)
			}
			return nil
		},
	)
	task.OnCancel(func() {
		n.detach(task)
		n.emit(EventCancelled)
		if n.forcing != kindNone {
			n.snap(n.forcing == kindShow)
			return
		}
		n.snap(visible)
	})

	n.task = task
	n.kind = kind
	return task
}

// settle records the successful end of task.
func (n *Node) settle(task *Task, visible bool) {
	n.detach(task)
	n.visible = visible
	if visible {
		n.emit(EventShown)
	} else {
		n.emit(EventHidden)
	}
}

func (n *Node) detach(task *Task) {
	if n.task == task {
		n.task = nil
		n.kind = kindNone
	}
}

// cancel stops n's in-flight sequence, snapping n to that sequence's end
// state. Its OnAfter callback never runs.
func (n *Node) cancel() {
	if n.task != nil {
		n.task.Cancel()
	}
}

// showForce snaps n to Shown without running a sequence.
func (n *Node) showForce() {
	n.force(kindShow)
}

// hideForce snaps n to Hidden without running a sequence.
func (n *Node) hideForce() {
	n.force(kindHide)
}

// force snaps n to the end state of kind. An in-flight sequence is cancelled
// straight to that state, skipping its own end state.
func (n *Node) force(kind transitionKind) {
	visible := kind == kindShow
	if n.task != nil {
		n.forcing = kind
		n.cancel()
		n.forcing = kindNone
		return
	}
	if n.visible != visible {
		n.snap(visible)
	}
}

// snap applies an end state instantly: forced hook, presenter, flag.
func (n *Node) snap(visible bool) {
	if visible {
		n.behavior.OnShowForced(n)
	} else {
		n.behavior.OnHideForced(n)
	}
	n.tree.presenter.SetVisible(n, visible)
	n.visible = visible
	if visible {
		n.emit(EventForcedShown)
	} else {
		n.emit(EventForcedHidden)
	}
}

func (n *Node) emit(typ EventType) {
	if n.tree != nil {
		n.tree.emit(typ, n)
	}
}
