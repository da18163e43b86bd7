package uitree

import (
	"errors"
	"testing"
)

func TestNewNodeDefaults(t *testing.T) {
	n := NewNode("panel")
	if n.ID() != -1 {
		t.Errorf("ID = %d, want -1", n.ID())
	}
	if n.Alpha != 1 || n.Scale != 1 {
		t.Errorf("Alpha = %f Scale = %f, want 1 1", n.Alpha, n.Scale)
	}
	if _, ok := n.Behavior().(NopBehavior); !ok {
		t.Errorf("Behavior = %T, want NopBehavior", n.Behavior())
	}
	assertState(t, n, StateHidden)
	if n.Tree() != nil || n.IsTopNode() {
		t.Error("an unbuilt node has no tree")
	}
}

func TestAddChild(t *testing.T) {
	parent := NewNode("parent")
	child := NewNode("child")
	parent.AddChild(child)

	if child.Parent() != parent {
		t.Error("child.Parent() should be parent")
	}
	if parent.NumChildren() != 1 || parent.ChildAt(0) != child {
		t.Error("parent should have one child")
	}
	if parent.Child("child") != child || parent.Child("nope") != nil {
		t.Error("Child lookup by name failed")
	}
}

func TestAddChildReparents(t *testing.T) {
	a := NewNode("a")
	b := NewNode("b")
	c := NewNode("c")
	a.AddChild(c)
	b.AddChild(c)

	if a.NumChildren() != 0 {
		t.Errorf("old parent has %d children, want 0", a.NumChildren())
	}
	if c.Parent() != b {
		t.Error("child should be under the new parent")
	}
}

func TestAddChildPanics(t *testing.T) {
	cases := []struct {
		name string
		fn   func()
	}{
		{"nil", func() { NewNode("a").AddChild(nil) }},
		{"self", func() {
			a := NewNode("a")
			a.AddChild(a)
		}},
		{"cycle", func() {
			a := NewNode("a")
			b := NewNode("b")
			a.AddChild(b)
			b.AddChild(a)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			tc.fn()
		})
	}
}

func TestRemoveChild(t *testing.T) {
	parent := NewNode("parent")
	a := NewNode("a")
	b := NewNode("b")
	c := NewNode("c")
	parent.AddChild(a)
	parent.AddChild(b)
	parent.AddChild(c)

	parent.RemoveChild(b)
	if b.Parent() != nil {
		t.Error("removed child should have no parent")
	}
	if parent.NumChildren() != 2 || parent.ChildAt(0) != a || parent.ChildAt(1) != c {
		t.Error("remaining children out of order")
	}

	defer func() {
		if recover() == nil {
			t.Error("expected panic removing a non-child")
		}
	}()
	parent.RemoveChild(b)
}

func TestPathAndDepth(t *testing.T) {
	leaf := NewNode("settings")
	NewNode("root", NewNode("menu", leaf))

	if leaf.Path() != "root/menu/settings" {
		t.Errorf("Path = %q", leaf.Path())
	}
	if leaf.Depth() != 2 {
		t.Errorf("Depth = %d, want 2", leaf.Depth())
	}
}

func TestSetBehaviorNilRestoresNop(t *testing.T) {
	n := NewNode("x")
	n.SetBehavior(&AnimatedBehavior{})
	n.SetBehavior(nil)
	if _, ok := n.Behavior().(NopBehavior); !ok {
		t.Errorf("Behavior = %T, want NopBehavior", n.Behavior())
	}
}

func TestSetBehaviorAfterBuildPanics(t *testing.T) {
	x := NewNode("x")
	buildTree(t, NewNode("root", x))

	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	x.SetBehavior(NopBehavior{})
}

func TestStateQueries(t *testing.T) {
	x, cp := newFakeAnimated("x")
	root := NewNode("root", x)
	tree, _, _ := buildTree(t, root)

	_ = x.Show()
	if !x.IsShowing() || x.IsHiding() || x.IsShow() {
		t.Errorf("showing=%v hiding=%v show=%v", x.IsShowing(), x.IsHiding(), x.IsShow())
	}
	if x.VisibleInTree() {
		t.Error("a showing node is not yet visible in the tree")
	}

	cp.show.finish()
	tree.Update(1.0 / 60)
	if !x.IsShow() || x.IsShowing() || !x.VisibleInTree() {
		t.Errorf("show=%v showing=%v", x.IsShow(), x.IsShowing())
	}

	_ = x.Hide()
	if !x.IsHiding() || !x.IsShow() {
		t.Error("a hiding node stays visible until its sequence ends")
	}
	assertState(t, x, StateHiding)
}

func TestTransitionOnUnbuiltNode(t *testing.T) {
	n := NewNode("loose")
	err := n.Hide()
	if !errors.Is(err, ErrNotBuilt) {
		t.Errorf("err = %v, want ErrNotBuilt", err)
	}
	var te *TransitionError
	if !errors.As(err, &te) || te.Op != "hide" || te.Path != "loose" {
		t.Errorf("err = %#v", err)
	}
}

func TestParseState(t *testing.T) {
	for _, s := range []State{StateHidden, StateShowing, StateShown, StateHiding} {
		got, ok := ParseState(s.String())
		if !ok || got != s {
			t.Errorf("ParseState(%q) = %v, %v", s.String(), got, ok)
		}
	}
	if _, ok := ParseState("open"); ok {
		t.Error("ParseState(open) should fail")
	}
}
