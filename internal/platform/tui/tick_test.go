package tui

import (
	"testing"
	"time"
)

func TestTickSourceGenerations(t *testing.T) {
	ts := newTickSource()

	if cmd := ts.take(); cmd != nil {
		t.Error("idle source has a pending tick")
	}

	ts.Start(50 * time.Millisecond)
	first := ts.gen
	if cmd := ts.take(); cmd == nil {
		t.Fatal("Start() left no pending tick")
	}
	if cmd := ts.take(); cmd != nil {
		t.Error("take() did not clear the pending tick")
	}
	if !ts.accept(TickMsg{Gen: first}) {
		t.Error("tick of the running generation rejected")
	}
	if ts.next() == nil {
		t.Error("next() returned nil while running")
	}

	ts.Stop()
	if ts.accept(TickMsg{Gen: first}) {
		t.Error("tick accepted after Stop()")
	}
	if ts.next() != nil {
		t.Error("next() scheduled a tick after Stop()")
	}

	ts.Start(50 * time.Millisecond)
	if ts.accept(TickMsg{Gen: first}) {
		t.Error("stale tick from an earlier run accepted")
	}
	if !ts.accept(TickMsg{Gen: ts.gen}) {
		t.Error("tick of the new run rejected")
	}
}
