package uitree

import (
	"errors"
	"fmt"
)

var (
	// ErrBlockedByAncestor is returned when a show or hide is rejected because
	// an ancestor is mid-hide and its end state cannot be forced safely.
	ErrBlockedByAncestor = errors.New("blocked by ancestor transition")

	// ErrNotFound is returned by lookups that match no registered node.
	ErrNotFound = errors.New("node not found")

	// ErrNotBuilt is returned when a node is used before its tree is built.
	ErrNotBuilt = errors.New("node is not part of a built tree")

	// ErrMissingEffectAsset marks an animated behavior with no player or clip.
	// It is only ever logged; the hooks degrade to no-ops.
	ErrMissingEffectAsset = errors.New("missing effect asset")
)

// TransitionError describes a rejected show or hide request.
type TransitionError struct {
	// Op is "show" or "hide".
	Op string
	// Path is the path of the node the request targeted.
	Path string
	// Blocker is the path of the ancestor that caused the rejection, if any.
	Blocker string
	Err     error
}

func (e *TransitionError) Error() string {
	if e.Blocker != "" {
		return fmt.Sprintf("uitree: %s %q: %v (%q is hiding)", e.Op, e.Path, e.Err, e.Blocker)
	}
	return fmt.Sprintf("uitree: %s %q: %v", e.Op, e.Path, e.Err)
}

func (e *TransitionError) Unwrap() error {
	return e.Err
}

// NotFoundError is returned by Find, Lookup and LookupNode.
type NotFoundError struct {
	// Query is the path or type that was looked up.
	Query string
	// Suggestion is the closest registered path, when one is close enough.
	Suggestion string
}

func (e *NotFoundError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("uitree: %v: %s (did you mean %q?)", ErrNotFound, e.Query, e.Suggestion)
	}
	return fmt.Sprintf("uitree: %v: %s", ErrNotFound, e.Query)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}
