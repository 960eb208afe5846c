package exam

import (
	"reflect"
	"testing"
)

func TestScore_Example(t *testing.T) {
	// Q1 answered correctly, Q2 answered incorrectly, out of 2 total.
	cfg := testConfig(2, 50, 50, 0)
	s, err := StartSession(cfg, testPool(1, 1, 0))
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	q1, q2 := s.Questions[0], s.Questions[1]
	if err := s.RecordAnswer(q1.ID, q1.CorrectIndex); err != nil {
		t.Fatalf("RecordAnswer q1: %v", err)
	}
	wrong := (q2.CorrectIndex + 1) % len(q2.Options)
	if err := s.RecordAnswer(q2.ID, wrong); err != nil {
		t.Fatalf("RecordAnswer q2: %v", err)
	}
	s.Submit()

	r := Score(s)
	if r.Score != 1 || r.Total != 2 {
		t.Errorf("score = %d/%d, want 1/2", r.Score, r.Total)
	}
	if r.Percentage != 50 {
		t.Errorf("Percentage = %v, want 50", r.Percentage)
	}
	if !r.PerQuestion[0].Correct {
		t.Error("Q1 not marked correct")
	}
	if r.PerQuestion[1].Correct {
		t.Error("Q2 marked correct")
	}
}

func TestScore_UnansweredBucket(t *testing.T) {
	cfg := testConfig(3, 34, 33, 33)
	s, err := StartSession(cfg, testPool(1, 1, 1))
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	q := s.Questions[0]
	if err := s.RecordAnswer(q.ID, q.CorrectIndex); err != nil {
		t.Fatalf("RecordAnswer: %v", err)
	}
	s.Submit()

	r := Score(s)
	if r.Correct != 1 || r.Incorrect != 0 || r.Unanswered != 2 {
		t.Errorf("buckets = %d/%d/%d, want 1 correct / 0 incorrect / 2 unanswered",
			r.Correct, r.Incorrect, r.Unanswered)
	}
	// Unanswered questions still count toward the overall total.
	if r.Score != 1 || r.Total != 3 {
		t.Errorf("score = %d/%d, want 1/3", r.Score, r.Total)
	}
}

func TestScore_Deterministic(t *testing.T) {
	cfg := testConfig(3, 34, 33, 33)
	s, err := StartSession(cfg, testPool(1, 1, 1))
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	s.RecordAnswer(s.Questions[0].ID, 0)
	s.RecordAnswer(s.Questions[2].ID, 2)
	s.Submit()

	a, b := Score(s), Score(s)
	if !reflect.DeepEqual(a, b) {
		t.Error("two Score calls on the same session differ")
	}
}

func TestScore_PerDifficulty(t *testing.T) {
	cfg := testConfig(4, 50, 25, 25)
	s, err := StartSession(cfg, testPool(2, 1, 1))
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	// Answer every easy question correctly, everything else wrong.
	for _, q := range s.Questions {
		choice := (q.CorrectIndex + 1) % len(q.Options)
		if q.Difficulty == DifficultyEasy {
			choice = q.CorrectIndex
		}
		if err := s.RecordAnswer(q.ID, choice); err != nil {
			t.Fatalf("RecordAnswer: %v", err)
		}
	}
	s.Submit()

	r := Score(s)
	if ds := r.ByDifficulty[DifficultyEasy]; ds.Correct != 2 || ds.Total != 2 {
		t.Errorf("easy = %d/%d, want 2/2", ds.Correct, ds.Total)
	}
	if ds := r.ByDifficulty[DifficultyMedium]; ds.Correct != 0 || ds.Total != 1 {
		t.Errorf("medium = %d/%d, want 0/1", ds.Correct, ds.Total)
	}
	if ds := r.ByDifficulty[DifficultyHard]; ds.Correct != 0 || ds.Total != 1 {
		t.Errorf("hard = %d/%d, want 0/1", ds.Correct, ds.Total)
	}
}
