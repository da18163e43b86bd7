// Package uitree is a hierarchical visibility controller for UI panels.
//
// A [Tree] owns a hierarchy of [Node] values. Showing or hiding a node runs
// an asynchronous transition sequence (effect, visual toggle, effect) on the
// tree's single cooperative [Scheduler], and overlapping requests on a node,
// its ancestors or its descendants are resolved by snapping the losers to an
// end state instead of letting them race.
//
// # Quick start
//
//	player := uitree.NewTweenPlayer()
//	root := uitree.NewNode("root",
//		uitree.NewNode("menu",
//			uitree.NewNode("settings"),
//		),
//	)
//
//	tree := uitree.NewTree(uitree.DefaultTreeConfig())
//	tree.AddTicker(player)
//	if err := tree.Build(root); err != nil {
//		log.Fatal(err)
//	}
//
//	settings, _ := tree.Find("root/menu/settings")
//	_ = settings.Show() // root and menu are snapped open first
//
//	// every frame:
//	tree.Update(dt)
//
// # Rules
//
// A node is visible only if every ancestor is visible. Show on a nested node
// snaps hidden or still-showing ancestors to Shown without playing their
// effects. Hide on a node snaps every descendant to Hidden, children first,
// before the node's own hide effect plays. Requests while an ancestor is
// hiding are rejected with [ErrBlockedByAncestor]. A second request on a
// node with a sequence in flight cancels the first, snapping it to its end
// state; the cancelled sequence's completion callback never runs.
//
// # Hooks and effects
//
// Each node carries a [Behavior] with before/after hooks for show and hide.
// [AnimatedBehavior] plays clips through an [EffectPlayer]; [TweenPlayer]
// implements one with [gween] tweens over the node's Alpha, Scale and
// offset channels. Layouts, including clips, can be loaded from YAML with
// [LoadLayout].
//
// [gween]: https://github.com/tanema/gween
package uitree
