package ecs

import (
	"io"
	"log/slog"
	"testing"

	"github.com/phanxgames/uitree"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiSink(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)
	if sink == nil {
		t.Fatal("NewDonburiSink returned nil")
	}
}

func TestDonburiSink_Emit(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var received []uitree.TransitionEvent
	TransitionEventType.Subscribe(world, func(w donburi.World, e uitree.TransitionEvent) {
		received = append(received, e)
	})

	sink.Emit(uitree.TransitionEvent{
		Type:   uitree.EventShowStarted,
		NodeID: 42,
		Path:   "root/menu",
		State:  uitree.StateShowing,
	})
	sink.Emit(uitree.TransitionEvent{
		Type:  uitree.EventRejected,
		Path:  "root/menu/settings",
		State: uitree.StateHidden,
	})

	// Events are queued; process them.
	TransitionEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 events, got %d", len(received))
	}
	e0 := received[0]
	if e0.Type != uitree.EventShowStarted || e0.NodeID != 42 || e0.Path != "root/menu" {
		t.Errorf("event 0: %+v", e0)
	}
	if received[1].Type != uitree.EventRejected {
		t.Errorf("event 1: %+v", received[1])
	}
}

func TestDonburiSink_FromTree(t *testing.T) {
	world := donburi.NewWorld()
	tree := uitree.NewTree(uitree.TreeConfig{
		ReShowHide: true,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	tree.SetEventSink(NewDonburiSink(world))

	menu := uitree.NewNode("menu")
	if err := tree.Build(uitree.NewNode("root", menu)); err != nil {
		t.Fatal(err)
	}

	var shown []string
	TransitionEventType.Subscribe(world, func(w donburi.World, e uitree.TransitionEvent) {
		if e.Type == uitree.EventShown || e.Type == uitree.EventForcedShown {
			shown = append(shown, e.Path)
		}
	})

	if err := menu.Show(); err != nil {
		t.Fatal(err)
	}
	if len(shown) != 0 {
		t.Fatal("events should be queued until processed")
	}
	events.ProcessAllEvents(world)

	if len(shown) != 2 || shown[0] != "root" || shown[1] != "root/menu" {
		t.Errorf("shown = %v, want [root root/menu]", shown)
	}
}

func TestDonburiSink_MultipleSubscribers(t *testing.T) {
	world := donburi.NewWorld()
	sink := NewDonburiSink(world)

	var count1, count2 int
	TransitionEventType.Subscribe(world, func(w donburi.World, e uitree.TransitionEvent) {
		count1++
	})
	TransitionEventType.Subscribe(world, func(w donburi.World, e uitree.TransitionEvent) {
		count2++
	})

	sink.Emit(uitree.TransitionEvent{Type: uitree.EventHidden})
	events.ProcessAllEvents(world)

	if count1 != 1 || count2 != 1 {
		t.Errorf("expected both subscribers called once, got %d and %d", count1, count2)
	}
}
