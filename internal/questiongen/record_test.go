package questiongen

import (
	"testing"

	"github.com/tanmay/physiq/internal/exam"
)

func validRecord() Record {
	return Record{
		QuestionText:       "A block slides down a frictionless incline. What stays constant?",
		ImagePath:          "https://images-questionbank.s3.amazonaws.com/Diagrams/Physics/images/incline.png",
		ImageFilename:      "incline.png",
		OptionText:         []string{"Kinetic energy", "Potential energy", "Total mechanical energy", "Velocity"},
		CorrectAnswerIndex: 2,
		DifficultyLevel:    "Medium",
		Explanation:        "With no friction, the sum of kinetic and potential energy is conserved.",
		Topic:              "Mechanics",
		Subtopic:           "Energy conservation",
	}
}

func TestRecordValidate_Valid(t *testing.T) {
	if err := validRecord().Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRecordValidate_Errors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Record)
	}{
		{"empty text", func(r *Record) { r.QuestionText = "" }},
		{"three options", func(r *Record) { r.OptionText = r.OptionText[:3] }},
		{"five options", func(r *Record) { r.OptionText = append(r.OptionText, "extra") }},
		{"empty option", func(r *Record) { r.OptionText[1] = "" }},
		{"negative index", func(r *Record) { r.CorrectAnswerIndex = -1 }},
		{"index too large", func(r *Record) { r.CorrectAnswerIndex = 4 }},
		{"unknown difficulty", func(r *Record) { r.DifficultyLevel = "Brutal" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := validRecord()
			tc.mutate(&rec)
			if err := rec.Validate(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestRecordToQuestion(t *testing.T) {
	q := validRecord().ToQuestion("q-1")

	if q.ID != "q-1" {
		t.Errorf("ID = %q", q.ID)
	}
	if q.Difficulty != exam.DifficultyMedium {
		t.Errorf("Difficulty = %s", q.Difficulty)
	}
	if q.CorrectIndex != 2 {
		t.Errorf("CorrectIndex = %d", q.CorrectIndex)
	}
	if len(q.Options) != exam.NumOptions {
		t.Errorf("Options = %v", q.Options)
	}
	if q.Topic != "Mechanics" || q.Subtopic != "Energy conservation" {
		t.Errorf("classification lost: %s / %s", q.Topic, q.Subtopic)
	}
}

func TestRecordToQuestion_ClassificationDefaults(t *testing.T) {
	rec := validRecord()
	rec.Topic = ""
	rec.Subtopic = ""

	q := rec.ToQuestion("q-2")
	if q.Topic != "Physics" || q.Subtopic != "General" {
		t.Errorf("expected defaults, got %s / %s", q.Topic, q.Subtopic)
	}
}

func TestRecordToQuestion_CopiesOptions(t *testing.T) {
	rec := validRecord()
	q := rec.ToQuestion("q-3")
	rec.OptionText[0] = "mutated"
	if q.Options[0] == "mutated" {
		t.Fatal("question shares option slice with record")
	}
}
