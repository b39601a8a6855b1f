package state

import (
	"errors"
	"testing"
)

func TestStoreRenderLifecycle(t *testing.T) {
	store := NewStore()
	if store.Snapshot().Phase != IDLE {
		t.Fatalf("expected IDLE, got %s", store.Snapshot().Phase)
	}

	store.BeginRender("modulo", 800, 1600, "out.png")
	snap := store.Snapshot()
	if snap.Phase != RENDERING {
		t.Errorf("expected RENDERING, got %s", snap.Phase)
	}
	if snap.Render.Rows != 800 || snap.Render.Output != "out.png" {
		t.Errorf("unexpected render info %+v", snap.Render)
	}

	store.FinishRender(800, nil)
	snap = store.Snapshot()
	if snap.Phase != DONE || snap.Render.RowsRendered != 800 {
		t.Errorf("unexpected state after finish: %+v", snap)
	}
	if snap.Render.Duration() < 0 {
		t.Error("duration should not be negative")
	}
}

func TestStoreRenderError(t *testing.T) {
	store := NewStore()
	store.BeginRender("numeric", 4, 100, "")
	store.FinishRender(2, errors.New("disk full"))

	snap := store.Snapshot()
	if snap.Phase != ERROR {
		t.Errorf("expected ERROR, got %s", snap.Phase)
	}
	if snap.Render.Err != "disk full" {
		t.Errorf("expected error text, got %q", snap.Render.Err)
	}
}

func TestPhaseString(t *testing.T) {
	if RENDERING.String() != "rendering" || Phase(42).String() != "unknown" {
		t.Error("unexpected phase names")
	}
}
