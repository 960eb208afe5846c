package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "physiq.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleResult(examID string, takenAt time.Time) Result {
	return Result{
		ExamID:        examID,
		CandidateName: "Asha",
		TakenAt:       takenAt,
		Score:         7,
		Total:         10,
		Percentage:    70.0,
		Correct:       7,
		Incorrect:     2,
		Unanswered:    1,
		TimeTaken:     12 * time.Minute,
		Expired:       false,
	}
}

func TestStore_AppendAndList(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	if err := s.AppendResult(ctx, sampleResult("aaaa1111", base)); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := s.AppendResult(ctx, sampleResult("bbbb2222", base.Add(time.Hour))); err != nil {
		t.Fatalf("append: %v", err)
	}

	results, err := s.ListResults(ctx, 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	// Newest first.
	if results[0].ExamID != "bbbb2222" {
		t.Fatalf("expected newest first, got %s", results[0].ExamID)
	}

	got := results[1]
	if got.CandidateName != "Asha" || got.Score != 7 || got.Total != 10 {
		t.Errorf("row mismatch: %+v", got)
	}
	if got.TimeTaken != 12*time.Minute {
		t.Errorf("TimeTaken = %s", got.TimeTaken)
	}
	if !got.TakenAt.Equal(base) {
		t.Errorf("TakenAt = %s, want %s", got.TakenAt, base)
	}
}

func TestStore_ListLimit(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	for i := range 5 {
		r := sampleResult("exam", base.Add(time.Duration(i)*time.Minute))
		if err := s.AppendResult(ctx, r); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	results, err := s.ListResults(ctx, 3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
}

func TestStore_ExpiredRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	r := sampleResult("cccc3333", time.Now().UTC().Truncate(time.Second))
	r.Expired = true
	if err := s.AppendResult(ctx, r); err != nil {
		t.Fatalf("append: %v", err)
	}

	results, err := s.ListResults(ctx, 1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !results[0].Expired {
		t.Fatal("expired flag lost")
	}
}

func TestStore_EmptyHistory(t *testing.T) {
	s := openTestStore(t)

	results, err := s.ListResults(context.Background(), 0)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("expected empty history, got %d rows", len(results))
	}
}

func TestDefaultDBPath_EnvOverride(t *testing.T) {
	custom := filepath.Join(t.TempDir(), "nested", "custom.db")
	t.Setenv("PHYSIQ_DB", custom)

	p, err := DefaultDBPath()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != custom {
		t.Fatalf("expected %s, got %s", custom, p)
	}
}
