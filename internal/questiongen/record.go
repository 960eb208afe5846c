package questiongen

import (
	"fmt"

	"github.com/tanmay/physiq/internal/exam"
)

// Record is the question bank wire format. Question banks are JSON arrays
// of these records, produced by the generate command and read back by the
// file source.
type Record struct {
	QuestionText       string   `json:"question_text"`
	ImagePath          string   `json:"image_path"`
	ImageFilename      string   `json:"image_filename,omitempty"`
	OptionText         []string `json:"option_text"`
	CorrectAnswerIndex int      `json:"correct_answer_index"`
	DifficultyLevel    string   `json:"difficulty_level"`
	Explanation        string   `json:"explanation"`
	Topic              string   `json:"topic,omitempty"`
	Subtopic           string   `json:"subtopic,omitempty"`
}

// Validate checks the structural invariants every bank record must satisfy.
func (r Record) Validate() error {
	if r.QuestionText == "" {
		return fmt.Errorf("question_text is empty")
	}
	if len(r.OptionText) != exam.NumOptions {
		return fmt.Errorf("expected %d options, got %d", exam.NumOptions, len(r.OptionText))
	}
	for i, opt := range r.OptionText {
		if opt == "" {
			return fmt.Errorf("option %d is empty", i)
		}
	}
	if r.CorrectAnswerIndex < 0 || r.CorrectAnswerIndex >= exam.NumOptions {
		return fmt.Errorf("correct_answer_index %d out of range [0, %d)", r.CorrectAnswerIndex, exam.NumOptions)
	}
	if !exam.Difficulty(r.DifficultyLevel).Valid() {
		return fmt.Errorf("unknown difficulty_level %q", r.DifficultyLevel)
	}
	return nil
}

// RecordFromQuestion converts a question back to the bank wire format.
func RecordFromQuestion(q exam.Question) Record {
	return Record{
		QuestionText:       q.Text,
		ImagePath:          q.ImageURL,
		ImageFilename:      q.ImageFilename,
		OptionText:         append([]string(nil), q.Options...),
		CorrectAnswerIndex: q.CorrectIndex,
		DifficultyLevel:    string(q.Difficulty),
		Explanation:        q.Explanation,
		Topic:              q.Topic,
		Subtopic:           q.Subtopic,
	}
}

// ToQuestion converts a validated record to an exam question.
func (r Record) ToQuestion(id string) exam.Question {
	topic := r.Topic
	if topic == "" {
		topic = "Physics"
	}
	subtopic := r.Subtopic
	if subtopic == "" {
		subtopic = "General"
	}
	return exam.Question{
		ID:            id,
		Text:          r.QuestionText,
		ImageURL:      r.ImagePath,
		ImageFilename: r.ImageFilename,
		Options:       append([]string(nil), r.OptionText...),
		CorrectIndex:  r.CorrectAnswerIndex,
		Difficulty:    exam.Difficulty(r.DifficultyLevel),
		Explanation:   r.Explanation,
		Topic:         topic,
		Subtopic:      subtopic,
	}
}
