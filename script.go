package uitree

import (
	"encoding/json"
	"errors"
	"fmt"
)

// scriptStep represents a single action in a transition script.
type scriptStep struct {
	Action    string `json:"action"`
	Node      string `json:"node,omitempty"`
	State     string `json:"state,omitempty"`
	Retrigger string `json:"retrigger,omitempty"`
	Frames    int    `json:"frames,omitempty"`
	// Rejected marks a show/hide expected to fail with ErrBlockedByAncestor.
	Rejected bool `json:"rejected,omitempty"`
}

// script is the top-level JSON structure for a transition script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

const defaultSettleFrames = 600

// ScriptRunner replays show/hide requests against a tree across frames and
// checks the resulting states. It is used for headless simulation and for
// regression tests of layouts.
//
//	{"steps": [
//		{"action": "show", "node": "root/menu/settings"},
//		{"action": "wait", "frames": 3},
//		{"action": "hide", "node": "root/menu", "retrigger": "deny"},
//		{"action": "settle"},
//		{"action": "expect", "node": "root/menu", "state": "hidden"}
//	]}
type ScriptRunner struct {
	steps      []scriptStep
	cursor     int
	waitCount  int
	settleLeft int
	settling   bool
	done       bool
}

// LoadScript parses a JSON transition script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return nil, fmt.Errorf("parse script: step %d: %w", i, err)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

func (st scriptStep) validate() error {
	switch st.Action {
	case "show", "hide", "showChildren":
		if st.Node == "" {
			return fmt.Errorf("%s needs a node", st.Action)
		}
		if _, ok := parseRetrigger(st.Retrigger); !ok {
			return fmt.Errorf("unknown retrigger %q", st.Retrigger)
		}
	case "expect":
		if st.Node == "" {
			return fmt.Errorf("expect needs a node")
		}
		if _, ok := ParseState(st.State); !ok {
			return fmt.Errorf("unknown state %q", st.State)
		}
	case "wait", "settle":
	default:
		return fmt.Errorf("unknown action %q", st.Action)
	}
	return nil
}

func parseRetrigger(s string) (Retrigger, bool) {
	switch s {
	case "":
		return RetriggerDefault, true
	case "allow":
		return RetriggerAllow, true
	case "deny":
		return RetriggerDeny, true
	}
	return RetriggerDefault, false
}

// Done reports whether all steps in the script have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// Step advances the runner by one frame. Call it once per frame before
// Tree.Update.
func (r *ScriptRunner) Step(t *Tree) error {
	if r.done {
		return nil
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		return nil
	}
	if r.settling {
		if t.Pending() > 0 {
			if r.settleLeft <= 0 {
				return fmt.Errorf("script step %d: tree did not settle", r.cursor-1)
			}
			r.settleLeft--
			return nil
		}
		r.settling = false
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return nil
	}

	index := r.cursor
	st := r.steps[index]
	r.cursor++

	if err := r.exec(t, st); err != nil {
		return fmt.Errorf("script step %d (%s): %w", index, st.Action, err)
	}

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 && !r.settling {
		r.done = true
	}
	return nil
}

func (r *ScriptRunner) exec(t *Tree, st scriptStep) error {
	switch st.Action {
	case "show", "hide", "showChildren":
		n, err := t.Find(st.Node)
		if err != nil {
			return err
		}
		retrigger, _ := parseRetrigger(st.Retrigger)
		opts := TransitionOptions{Retrigger: retrigger}
		switch st.Action {
		case "show":
			err = n.ShowWith(opts)
		case "hide":
			err = n.HideWith(opts)
		default:
			err = n.ShowChildrenWith(opts)
		}
		blocked := errors.Is(err, ErrBlockedByAncestor)
		switch {
		case st.Rejected && !blocked:
			return fmt.Errorf("%s %s: expected rejection, got %v", st.Action, st.Node, err)
		case st.Rejected:
			return nil
		}
		return err
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "settle":
		r.settling = true
		r.settleLeft = st.Frames
		if r.settleLeft <= 0 {
			r.settleLeft = defaultSettleFrames
		}
	case "expect":
		n, err := t.Find(st.Node)
		if err != nil {
			return err
		}
		want, _ := ParseState(st.State)
		if got := n.State(); got != want {
			return fmt.Errorf("%s: state = %s, want %s", st.Node, got, want)
		}
	}
	return nil
}

// RunScript drives t with r until the script finishes, calling r.Step and
// t.Update once per frame with a fixed dt. It fails after maxFrames frames.
func RunScript(t *Tree, r *ScriptRunner, dt float32, maxFrames int) (frames int, err error) {
	for !r.Done() {
		if frames >= maxFrames {
			return frames, fmt.Errorf("script did not finish within %d frames", maxFrames)
		}
		if err := r.Step(t); err != nil {
			return frames, err
		}
		t.Update(dt)
		frames++
	}
	return frames, nil
}
