package uitree

// AnimatedBehavior drives a show clip and a hide clip through an
// EffectPlayer.
//
// The show clip starts before the node's visual is switched on and the show
// sequence waits for it to finish afterwards. The hide clip plays to the end
// before the visual is switched off. When the node is snapped instead of
// sequenced (an ancestor of a shown node, a descendant of a hidden one, or a
// cancelled sequence), the relevant clip jumps to its last frame instead of
// playing.
//
// With no Player, or an empty clip id, the affected hooks do nothing. A
// node with only one of the two clips rests in the pose the other clip
// would have left it in: a hide-only node is rewound to the start of its
// hide clip whenever it shows, and a show-only node starts at the start of
// its show clip.
type AnimatedBehavior struct {
	Player   EffectPlayer
	ShowClip string
	HideClip string

	// OnShowEnd fires when the show clip finishes during a show sequence.
	OnShowEnd func(*Node)
	// OnHideEnd fires when the hide clip finishes during a hide sequence.
	OnHideEnd func(*Node)
}

func (a *AnimatedBehavior) ready(clip string) bool {
	return a.Player != nil && clip != ""
}

// OnInit puts the node in its hidden pose.
func (a *AnimatedBehavior) OnInit(n *Node) {
	if !a.ready(a.ShowClip) || !a.ready(a.HideClip) {
		if t := n.Tree(); t != nil {
			t.Logger().Debug("animated node without effect",
				"node", n.Path(), "err", ErrMissingEffectAsset,
				"show", a.ShowClip, "hide", a.HideClip, "player", a.Player != nil)
		}
	}
	switch {
	case a.ready(a.HideClip) && a.ready(a.ShowClip):
		a.Player.SetNormalizedTime(a.HideClip, 1)
	case a.ready(a.ShowClip):
		a.Player.SetNormalizedTime(a.ShowClip, 0)
	}
}

// rewindHide undoes a finished hide clip on a node with no show clip.
func (a *AnimatedBehavior) rewindHide() {
	if !a.ready(a.ShowClip) && a.ready(a.HideClip) {
		a.Player.SetNormalizedTime(a.HideClip, 0)
	}
}

// OnShowBefore rewinds and starts the show clip.
func (a *AnimatedBehavior) OnShowBefore(n *Node) Wait {
	if !a.ready(a.ShowClip) {
		a.rewindHide()
		return nil
	}
	a.Player.Play(a.ShowClip)
	return nil
}

// OnShowAfter waits for the show clip to finish.
func (a *AnimatedBehavior) OnShowAfter(n *Node) Wait {
	if !a.ready(a.ShowClip) {
		return nil
	}
	return a.waitClip(n, a.ShowClip, a.OnShowEnd)
}

// OnHideBefore plays the hide clip and waits for it to finish.
func (a *AnimatedBehavior) OnHideBefore(n *Node) Wait {
	if !a.ready(a.HideClip) {
		return nil
	}
	a.Player.Play(a.HideClip)
	return a.waitClip(n, a.HideClip, a.OnHideEnd)
}

func (a *AnimatedBehavior) OnHideAfter(*Node) Wait { return nil }

// OnShowForced jumps the show clip to its last frame.
func (a *AnimatedBehavior) OnShowForced(*Node) {
	if a.ready(a.ShowClip) {
		a.Player.SetNormalizedTime(a.ShowClip, 1)
		return
	}
	a.rewindHide()
}

// OnHideForced jumps the hide clip to its last frame.
func (a *AnimatedBehavior) OnHideForced(*Node) {
	if a.ready(a.HideClip) {
		a.Player.SetNormalizedTime(a.HideClip, 1)
	}
}

// waitClip returns a Wait satisfied once clip stops, firing end exactly once.
func (a *AnimatedBehavior) waitClip(n *Node, clip string, end func(*Node)) Wait {
	fired := false
	return func() bool {
		if a.Player.IsPlaying(clip) {
			return false
		}
		if !fired {
			fired = true
			if end != nil {
				end(n)
			}
		}
		return true
	}
}
