package uitree

// State is the position of a Node in its show/hide state machine.
//
//	Hidden ──show()──► Showing ──► Shown ──hide()──► Hiding ──► Hidden
//
// Showing and Hiding are transient: they always settle into Shown and Hidden,
// either at the end of their sequence or instantly when pre-empted.
type State uint8

const (
	StateHidden  State = iota // settled, not visible (initial)
	StateShowing              // show sequence in flight
	StateShown                // settled, visible
	StateHiding               // hide sequence in flight
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case StateHidden:
		return "hidden"
	case StateShowing:
		return "showing"
	case StateShown:
		return "shown"
	case StateHiding:
		return "hiding"
	default:
		return "unknown"
	}
}

// ParseState converts a name produced by State.String back to a State.
func ParseState(name string) (State, bool) {
	switch name {
	case "hidden":
		return StateHidden, true
	case "showing":
		return StateShowing, true
	case "shown":
		return StateShown, true
	case "hiding":
		return StateHiding, true
	}
	return StateHidden, false
}

// Retrigger selects whether a show or hide request on a node that is already
// settled in, or moving toward, a state is honored again.
type Retrigger uint8

const (
	RetriggerDefault Retrigger = iota // use TreeConfig.ReShowHide
	RetriggerAllow                    // always restart the sequence
	RetriggerDeny                     // ignore redundant requests
)

// TransitionOptions customizes a single Show or Hide call.
type TransitionOptions struct {
	Retrigger Retrigger
	// OnBefore runs when the sequence starts, before the node's before-hook.
	OnBefore func(*Node)
	// OnAfter runs once the sequence completes, just before the node settles.
	// It is not called when the sequence is cancelled.
	OnAfter func(*Node)
}

// Presenter toggles the visual representation of a node. Implementations
// must be idempotent: the tree may report the same visibility twice.
type Presenter interface {
	SetVisible(n *Node, visible bool)
}

// PresenterFunc adapts a function to the Presenter interface.
type PresenterFunc func(n *Node, visible bool)

// SetVisible calls f(n, visible).
func (f PresenterFunc) SetVisible(n *Node, visible bool) { f(n, visible) }

type nopPresenter struct{}

func (nopPresenter) SetVisible(*Node, bool) {}

// transitionKind identifies which sequence a task runs.
type transitionKind uint8

const (
	kindNone transitionKind = iota
	kindShow
	kindHide
)

func (k transitionKind) String() string {
	switch k {
	case kindShow:
		return "show"
	case kindHide:
		return "hide"
	default:
		return "none"
	}
}
