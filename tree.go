package uitree

import (
	"fmt"
	"log/slog"
	"os"
	"reflect"

	"github.com/agnivade/levenshtein"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/google/uuid"
)

// TreeConfig configures a Tree.
type TreeConfig struct {
	// ReShowHide is the default retrigger policy: when true, Show on a node
	// that is shown or moving restarts its sequence, and likewise for Hide.
	ReShowHide bool
	// Presenter toggles the visual for each node. Nil means no presenter.
	Presenter Presenter
	// Logger receives rejections, build summaries and debug diagnostics.
	// Nil means a text logger on stderr.
	Logger *slog.Logger
	// Debug enables build-time structure warnings.
	Debug bool
}

// DefaultTreeConfig returns the configuration used by most screens.
func DefaultTreeConfig() TreeConfig {
	return TreeConfig{ReShowHide: true}
}

// Tree owns a node hierarchy and the single scheduler every node's show and
// hide sequence runs on. A Tree is driven from one goroutine: Build once,
// call Show/Hide on its nodes, and call Update every frame.
type Tree struct {
	root  *Node
	nodes []*Node
	paths map[string]*Node
	ids   idSequence
	sched Scheduler

	presenter Presenter
	tickers   []Ticker
	sink      EventSink
	log       *slog.Logger

	reshow  bool
	debug   bool
	buildID uuid.UUID
}

// NewTree creates an empty tree. Call Build before using any node.
func NewTree(cfg TreeConfig) *Tree {
	t := &Tree{
		presenter: cfg.Presenter,
		log:       cfg.Logger,
		reshow:    cfg.ReShowHide,
		debug:     cfg.Debug,
	}
	if t.presenter == nil {
		t.presenter = nopPresenter{}
	}
	if t.log == nil {
		t.log = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	t.log = t.log.With("component", "uitree")
	return t
}

// Build registers root and all its descendants depth-first, assigning
// identities from zero, calls every node's OnInit top-down and hides every
// node's visual. Building again (with the same or a new root) cancels all
// pending sequences and releases the previous hierarchy.
func (t *Tree) Build(root *Node) error {
	if root == nil {
		return fmt.Errorf("uitree: build: nil root")
	}
	if root.parent != nil {
		return fmt.Errorf("uitree: build: root %q has a parent", root.Path())
	}
	if err := t.checkOwnership(root); err != nil {
		return err
	}

	t.sched.CancelAll()
	t.release()

	t.ids.reset()
	t.buildID = uuid.New()
	t.root = root
	t.nodes = nil
	t.paths = make(map[string]*Node)
	t.register(root, nil)

	for _, n := range t.nodes {
		n.behavior.OnInit(n)
	}
	for _, n := range t.nodes {
		t.presenter.SetVisible(n, false)
	}

	if t.debug {
		t.debugCheckStructure()
	}
	t.log.Info("built tree", "root", root.Name, "nodes", t.ids.issued(), "build", t.buildID)
	return nil
}

// checkOwnership rejects hierarchies containing nodes built into another tree.
func (t *Tree) checkOwnership(root *Node) error {
	var err error
	var walk func(n *Node)
	walk = func(n *Node) {
		if err != nil {
			return
		}
		if n.tree != nil && n.tree != t {
			err = fmt.Errorf("uitree: build: node %q belongs to another tree", n.Path())
			return
		}
		for _, c := range n.children {
			walk(c)
		}
	}
	walk(root)
	return err
}

// release detaches the previous hierarchy so it can be rebuilt or recomposed.
func (t *Tree) release() {
	for _, n := range t.nodes {
		n.tree = nil
		n.id = -1
		n.visible = false
		n.task = nil
		n.kind = kindNone
	}
}

func (t *Tree) register(n, parent *Node) {
	n.id = t.ids.issue()
	n.parent = parent
	n.tree = t
	n.visible = false
	n.task = nil
	n.kind = kindNone
	t.nodes = append(t.nodes, n)

	path := n.Path()
	if _, dup := t.paths[path]; dup {
		if t.debug {
			t.log.Warn("duplicate node path; Find returns the first", "path", path)
		}
	} else {
		t.paths[path] = n
	}

	for _, c := range n.children {
		t.register(c, n)
	}
}

// RunSequence submits a task to the tree's shared scheduler. The task runs
// immediately until its first unsatisfied Wait.
func (t *Tree) RunSequence(task *Task) {
	t.sched.Submit(task)
}

// Update advances every ticker by dt seconds, then resumes every pending
// sequence once. Call it once per frame.
func (t *Tree) Update(dt float32) {
	for _, tk := range t.tickers {
		tk.Update(dt)
	}
	t.sched.Step()
}

// Settle calls Update until no sequence is pending or maxFrames frames have
// run. It reports whether the tree is quiescent.
func (t *Tree) Settle(dt float32, maxFrames int) bool {
	for i := 0; i < maxFrames && t.sched.Pending() > 0; i++ {
		t.Update(dt)
	}
	return t.sched.Pending() == 0
}

// Pending returns the number of sequences still in flight.
func (t *Tree) Pending() int {
	return t.sched.Pending()
}

// AddTicker registers tk to be advanced by Update. Adding the same ticker
// twice has no effect.
func (t *Tree) AddTicker(tk Ticker) {
	for _, existing := range t.tickers {
		if existing == tk {
			return
		}
	}
	t.tickers = append(t.tickers, tk)
}

// SetEventSink sets the optional receiver for transition events.
func (t *Tree) SetEventSink(sink EventSink) {
	t.sink = sink
}

// SetDebugMode enables or disables build-time structure warnings.
func (t *Tree) SetDebugMode(enabled bool) {
	t.debug = enabled
}

// Logger returns the tree's logger.
func (t *Tree) Logger() *slog.Logger {
	return t.log
}

// BuildID identifies the current build. It changes on every Build.
func (t *Tree) BuildID() uuid.UUID {
	return t.buildID
}

// --- Queries ---

// Root returns the root node, or nil before Build.
func (t *Tree) Root() *Node {
	return t.root
}

// Nodes returns every node in depth-first pre-order. The returned slice MUST
// NOT be mutated by the caller.
func (t *Tree) Nodes() []*Node {
	return t.nodes
}

// Len returns the number of registered nodes.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// NodeByID returns the node with the given identity.
func (t *Tree) NodeByID(id int) (*Node, bool) {
	if id < 0 || id >= len(t.nodes) {
		return nil, false
	}
	return t.nodes[id], true
}

// Find returns the node at path (see Node.Path).
func (t *Tree) Find(path string) (*Node, error) {
	if n, ok := t.paths[path]; ok {
		return n, nil
	}
	return nil, &NotFoundError{Query: path, Suggestion: t.closestPath(path)}
}

// closestPath returns the registered path with the smallest edit distance to
// query, if it is close enough to be a plausible typo.
func (t *Tree) closestPath(query string) string {
	best, bestDist := "", -1
	for _, n := range t.nodes {
		p := n.Path()
		d := levenshtein.ComputeDistance(query, p)
		if bestDist < 0 || d < bestDist {
			best, bestDist = p, d
		}
	}
	limit := len(query) / 3
	if limit < 2 {
		limit = 2
	}
	if bestDist < 0 || bestDist > limit {
		return ""
	}
	return best
}

// Match returns every node whose path matches the glob pattern, in
// pre-order. "**" matches across path separators.
func (t *Tree) Match(pattern string) ([]*Node, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("uitree: match %q: %w", pattern, doublestar.ErrBadPattern)
	}
	var out []*Node
	for _, n := range t.nodes {
		if doublestar.MatchUnvalidated(pattern, n.Path()) {
			out = append(out, n)
		}
	}
	return out, nil
}

// Lookup returns the first node's behavior or user data, in pre-order, that
// is a T. It returns a *NotFoundError when no node matches.
func Lookup[T any](t *Tree) (T, error) {
	for _, n := range t.nodes {
		if v, ok := n.behavior.(T); ok {
			return v, nil
		}
		if v, ok := n.UserData.(T); ok {
			return v, nil
		}
	}
	var zero T
	return zero, &NotFoundError{Query: reflect.TypeFor[T]().String()}
}

// LookupNode is like Lookup but returns the matching node.
func LookupNode[T any](t *Tree) (*Node, error) {
	for _, n := range t.nodes {
		if _, ok := n.behavior.(T); ok {
			return n, nil
		}
		if _, ok := n.UserData.(T); ok {
			return n, nil
		}
	}
	return nil, &NotFoundError{Query: reflect.TypeFor[T]().String()}
}

// --- Internal ---

func (t *Tree) retrigger(r Retrigger) bool {
	switch r {
	case RetriggerAllow:
		return true
	case RetriggerDeny:
		return false
	default:
		return t.reshow
	}
}

// reject reports a request blocked by a hiding ancestor.
func (t *Tree) reject(op string, n, blocker *Node) error {
	err := &TransitionError{Op: op, Path: n.Path(), Blocker: blocker.Path(), Err: ErrBlockedByAncestor}
	t.log.Warn("transition rejected", "op", op, "node", err.Path, "blocker", err.Blocker)
	t.emit(EventRejected, n)
	return err
}

func (t *Tree) emit(typ EventType, n *Node) {
	if t.sink == nil {
		return
	}
	t.sink.Emit(TransitionEvent{
		Type:    typ,
		NodeID:  n.id,
		Path:    n.Path(),
		State:   n.State(),
		BuildID: t.buildID,
	})
}
