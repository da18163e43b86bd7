package uitree

import (
	"io"
	"log/slog"
	"testing"
)

// quietLogger discards everything the tree logs.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recPresenter records every visibility toggle.
type recPresenter struct {
	calls []string
	vis   map[*Node]bool
}

func newRecPresenter() *recPresenter {
	return &recPresenter{vis: make(map[*Node]bool)}
}

func (p *recPresenter) SetVisible(n *Node, visible bool) {
	p.vis[n] = visible
	if visible {
		p.calls = append(p.calls, n.Name+"=on")
	} else {
		p.calls = append(p.calls, n.Name+"=off")
	}
}

func (p *recPresenter) reset() {
	p.calls = p.calls[:0]
}

// fakeClip is a TransitionClip that only finishes when told to.
type fakeClip struct {
	plays   int
	snaps   int
	playing bool
	at      float64
}

func (c *fakeClip) Play() {
	c.plays++
	c.playing = true
	c.at = 0
}

func (c *fakeClip) IsPlaying() bool { return c.playing }

func (c *fakeClip) SetNormalizedTime(t float64) {
	c.snaps++
	c.playing = false
	c.at = t
}

func (c *fakeClip) finish() {
	c.playing = false
	c.at = 1
}

// clipPair holds the show and hide clips of one fake-animated node.
type clipPair struct {
	show, hide *fakeClip
}

// newFakeAnimated creates an animated node whose clips only finish on demand.
func newFakeAnimated(name string, children ...*Node) (*Node, *clipPair) {
	cp := &clipPair{show: &fakeClip{}, hide: &fakeClip{}}
	set := ClipSet{"show": cp.show, "hide": cp.hide}
	return NewAnimatedNode(name, set, "show", "hide", children...), cp
}

// buildTree builds root into a tree with a recording presenter and event log.
func buildTree(t *testing.T, root *Node) (*Tree, *recPresenter, *EventLog) {
	t.Helper()
	p := newRecPresenter()
	tree := NewTree(TreeConfig{ReShowHide: true, Presenter: p, Logger: quietLogger()})
	events := &EventLog{}
	tree.SetEventSink(events)
	if err := tree.Build(root); err != nil {
		t.Fatalf("Build: %v", err)
	}
	p.reset()
	return tree, p, events
}

// assertState fails the test if n is not in want.
func assertState(t *testing.T, n *Node, want State) {
	t.Helper()
	if got := n.State(); got != want {
		t.Errorf("%s state = %s, want %s", n.Path(), got, want)
	}
}

// assertAncestorInvariant checks that every visible node has visible ancestors.
func assertAncestorInvariant(t *testing.T, tree *Tree) {
	t.Helper()
	for _, n := range tree.Nodes() {
		if n.IsShow() && !n.VisibleInTree() {
			t.Errorf("%s is visible but an ancestor is not", n.Path())
		}
	}
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalEvents(a, b []EventType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
