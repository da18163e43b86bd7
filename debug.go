package uitree

// debugMaxTreeDepth is the depth beyond which a build warns.
const debugMaxTreeDepth = 32

// debugMaxChildCount is the child count beyond which a build warns.
const debugMaxChildCount = 1000

// debugStats summarizes the structure of a built tree.
type debugStats struct {
	nodes    int
	maxDepth int
	animated int
	degraded int
}

// debugCheckStructure logs warnings for suspicious hierarchies and a summary
// line. Only called when debug mode is on.
func (t *Tree) debugCheckStructure() {
	var stats debugStats
	for _, n := range t.nodes {
		stats.nodes++
		depth := n.Depth()
		if depth > stats.maxDepth {
			stats.maxDepth = depth
		}
		if depth > debugMaxTreeDepth {
			t.log.Warn("tree depth exceeds threshold", "node", n.Path(), "depth", depth, "threshold", debugMaxTreeDepth)
		}
		if len(n.children) > debugMaxChildCount {
			t.log.Warn("child count exceeds threshold", "node", n.Path(), "children", len(n.children), "threshold", debugMaxChildCount)
		}
		if a, ok := n.behavior.(*AnimatedBehavior); ok {
			stats.animated++
			if !a.ready(a.ShowClip) || !a.ready(a.HideClip) {
				stats.degraded++
			}
		}
	}
	t.log.Debug("tree structure",
		"nodes", stats.nodes,
		"max_depth", stats.maxDepth,
		"animated", stats.animated,
		"degraded", stats.degraded)
}
