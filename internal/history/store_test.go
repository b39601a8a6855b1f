package history

import (
	"path/filepath"
	"testing"
	"time"
)

func TestRecordAndRecent(t *testing.T) {
	st, err := Open(filepath.Join(t.TempDir(), "sub", "history.db"))
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer st.Close()

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	first, err := st.Record(Run{Mode: "numeric", Rows: 20, CanvasSize: 1500, Output: "a.png", Duration: 1500 * time.Millisecond, CreatedAt: base})
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}
	second, err := st.Record(Run{Mode: "modulo", Rows: 800, CanvasSize: 1600, Err: "boom", CreatedAt: base.Add(time.Minute)})
	if err != nil {
		t.Fatalf("record failed: %v", err)
	}
	if first == second {
		t.Error("expected distinct ids")
	}

	runs, err := st.Recent(10)
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != second || runs[0].Mode != "modulo" || runs[0].Err != "boom" {
		t.Errorf("unexpected newest run %+v", runs[0])
	}
	if runs[1].Duration != 1500*time.Millisecond || runs[1].Output != "a.png" {
		t.Errorf("unexpected oldest run %+v", runs[1])
	}
	if !runs[1].CreatedAt.Equal(base) {
		t.Errorf("expected created_at %v, got %v", base, runs[1].CreatedAt)
	}
}

func TestRecentLimit(t *testing.T) {
	st, err := Open(":memory:")
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}
	defer st.Close()

	for i := 0; i < 5; i++ {
		if _, err := st.Record(Run{Mode: "modulo", Rows: i + 1, CanvasSize: 100}); err != nil {
			t.Fatalf("record failed: %v", err)
		}
	}
	runs, err := st.Recent(3)
	if err != nil {
		t.Fatalf("recent failed: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("expected 3 runs, got %d", len(runs))
	}
}
