package state

import (
	"sync"
	"time"
)

type Phase int

const (
	IDLE Phase = iota
	RENDERING
	DONE
	ERROR
)

func (p Phase) String() string {
	switch p {
	case IDLE:
		return "idle"
	case RENDERING:
		return "rendering"
	case DONE:
		return "done"
	case ERROR:
		return "error"
	default:
		return "unknown"
	}
}

// RenderInfo describes the most recent rendering pass.
type RenderInfo struct {
	Mode         string
	Rows         int
	CanvasSize   int
	RowsRendered int
	Output       string
	Started      time.Time
	Finished     time.Time
	Err          string
}

func (info RenderInfo) Duration() time.Duration {
	if info.Started.IsZero() || info.Finished.Before(info.Started) {
		return 0
	}
	return info.Finished.Sub(info.Started)
}

type State struct {
	Phase  Phase
	Render RenderInfo
}

type Store struct {
	mu    sync.RWMutex
	state State
}

func NewStore() *Store {
	return &Store{state: State{Phase: IDLE}}
}

func (store *Store) Snapshot() State {
	store.mu.RLock()
	defer store.mu.RUnlock()
	return store.state
}

func (store *Store) SetPhase(phase Phase) {
	store.mu.Lock()
	store.state.Phase = phase
	store.mu.Unlock()
}

// BeginRender resets render info and moves to RENDERING.
func (store *Store) BeginRender(mode string, rows, canvasSize int, output string) {
	store.mu.Lock()
	store.state.Phase = RENDERING
	store.state.Render = RenderInfo{
		Mode:       mode,
		Rows:       rows,
		CanvasSize: canvasSize,
		Output:     output,
		Started:    time.Now(),
	}
	store.mu.Unlock()
}

// FinishRender records the outcome of the pass started by BeginRender.
func (store *Store) FinishRender(rowsRendered int, err error) {
	store.mu.Lock()
	store.state.Render.RowsRendered = rowsRendered
	store.state.Render.Finished = time.Now()
	if err != nil {
		store.state.Phase = ERROR
		store.state.Render.Err = err.Error()
	} else {
		store.state.Phase = DONE
		store.state.Render.Err = ""
	}
	store.mu.Unlock()
}
