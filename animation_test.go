package uitree

import (
	"math"
	"testing"

	"github.com/tanema/gween/ease"
)

func TestFadeClipReachesTarget(t *testing.T) {
	n := NewNode("panel")
	c := FadeClip(n, 0, 1, 1.0, ease.Linear)
	c.Play()

	if n.Alpha != 0 {
		t.Errorf("Alpha after Play = %f, want 0", n.Alpha)
	}
	if !c.IsPlaying() {
		t.Fatal("clip should be playing")
	}

	// Exact halves avoid float32 accumulation drift.
	c.Update(0.5)
	if math.Abs(n.Alpha-0.5) > 0.01 {
		t.Errorf("Alpha at half = %f, want ~0.5", n.Alpha)
	}
	c.Update(0.5)
	if c.IsPlaying() {
		t.Error("clip should stop after its full duration")
	}
	if n.Alpha != 1 {
		t.Errorf("Alpha = %f, want 1", n.Alpha)
	}

	c.Update(0.5)
	if n.Alpha != 1 {
		t.Error("a stopped clip should not write its fields")
	}
}

func TestSlideClipMovesBothAxes(t *testing.T) {
	n := NewNode("panel")
	c := SlideClip(n, -100, 20, 0, 0, 0.5, ease.OutQuad)
	c.Play()
	if n.OffsetX != -100 || n.OffsetY != 20 {
		t.Errorf("offsets after Play = (%f, %f)", n.OffsetX, n.OffsetY)
	}
	c.Update(0.25)
	c.Update(0.25)
	if n.OffsetX != 0 || n.OffsetY != 0 {
		t.Errorf("offsets = (%f, %f), want (0, 0)", n.OffsetX, n.OffsetY)
	}
}

func TestSetNormalizedTimeStopsClip(t *testing.T) {
	n := NewNode("panel")
	c := ScaleClip(n, 0.5, 1.5, 2.0, ease.Linear)
	c.Play()
	c.SetNormalizedTime(0.5)

	if c.IsPlaying() {
		t.Error("SetNormalizedTime should stop the clip")
	}
	if math.Abs(n.Scale-1.0) > 0.01 {
		t.Errorf("Scale = %f, want ~1.0", n.Scale)
	}

	c.SetNormalizedTime(7)
	if n.Scale != 1.5 {
		t.Errorf("Scale after clamped seek = %f, want 1.5", n.Scale)
	}
	c.SetNormalizedTime(-1)
	if n.Scale != 0.5 {
		t.Errorf("Scale after clamped seek = %f, want 0.5", n.Scale)
	}
}

func TestZeroDurationClipFinishesOnPlay(t *testing.T) {
	n := NewNode("panel")
	c := FadeClip(n, 1, 0, 0, nil)
	c.Play()
	if c.IsPlaying() {
		t.Error("zero-length clip should not be playing")
	}
	if n.Alpha != 0 {
		t.Errorf("Alpha = %f, want 0", n.Alpha)
	}
}

func TestNewTweenClipClampsDuration(t *testing.T) {
	c := NewTweenClip(-3, nil)
	if c.Duration() != 0 {
		t.Errorf("Duration = %f, want 0", c.Duration())
	}
}

func TestClipChannelLimit(t *testing.T) {
	var a, b, c, d, e float64
	clip := NewTweenClip(1, nil).
		Channel(&a, 0, 1).
		Channel(&b, 0, 1).
		Channel(&c, 0, 1).
		Channel(&d, 0, 1)

	defer func() {
		if recover() == nil {
			t.Error("expected panic on fifth channel")
		}
	}()
	clip.Channel(&e, 0, 1)
}

func TestTweenPlayer(t *testing.T) {
	n := NewNode("panel")
	p := NewTweenPlayer()
	p.Add("in", FadeClip(n, 0, 1, 1, ease.Linear))
	p.Add("out", FadeClip(n, 1, 0, 1, ease.Linear))

	if p.Len() != 2 {
		t.Fatalf("Len = %d, want 2", p.Len())
	}

	p.Play("in")
	if !p.IsPlaying("in") || p.IsPlaying("out") {
		t.Error("only the started clip should be playing")
	}
	p.Update(0.5)
	p.Update(0.5)
	if p.IsPlaying("in") || n.Alpha != 1 {
		t.Errorf("playing=%v Alpha=%f", p.IsPlaying("in"), n.Alpha)
	}

	p.SetNormalizedTime("out", 1)
	if n.Alpha != 0 {
		t.Errorf("Alpha = %f, want 0", n.Alpha)
	}

	// Unknown ids are ignored.
	p.Play("missing")
	p.SetNormalizedTime("missing", 1)
	if p.IsPlaying("missing") || p.Clip("missing") != nil {
		t.Error("unknown clip should not exist")
	}
}

func TestTweenPlayerReplace(t *testing.T) {
	n := NewNode("panel")
	p := NewTweenPlayer()
	p.Add("in", FadeClip(n, 0, 1, 1, ease.Linear))
	replacement := ScaleClip(n, 0, 1, 1, ease.Linear)
	p.Add("in", replacement)

	if p.Len() != 1 {
		t.Errorf("Len = %d, want 1", p.Len())
	}
	if p.Clip("in") != replacement {
		t.Error("Add should replace the clip with the same id")
	}
}

func TestTweenPlayerDrivesAnimatedNode(t *testing.T) {
	p := NewTweenPlayer()
	x := NewNode("x")
	p.Add("x#show", FadeClip(x, 0, 1, 0.1, ease.Linear))
	p.Add("x#hide", FadeClip(x, 1, 0, 0.1, ease.Linear))
	x.SetBehavior(&AnimatedBehavior{Player: p, ShowClip: "x#show", HideClip: "x#hide"})

	tree, _, _ := buildTree(t, NewNode("root", x))
	tree.AddTicker(p)

	if x.Alpha != 0 {
		t.Errorf("Alpha after build = %f, want 0", x.Alpha)
	}
	_ = x.Show()
	assertState(t, x, StateShowing)
	if !tree.Settle(1.0/60, 60) {
		t.Fatal("tree did not settle")
	}
	assertState(t, x, StateShown)
	if x.Alpha != 1 {
		t.Errorf("Alpha = %f, want 1", x.Alpha)
	}
}
