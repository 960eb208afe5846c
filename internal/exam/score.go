package exam

import "time"

// DifficultyScore is the correct/total tally for one difficulty label.
type DifficultyScore struct {
	Correct int
	Total   int
}

// QuestionResult records how a single question was answered.
type QuestionResult struct {
	Question Question

	// Answered is false when no answer was recorded. Unanswered questions
	// are reported in their own bucket, never as incorrect.
	Answered bool

	// AnswerIndex is the submitted option. Meaningless when !Answered.
	AnswerIndex int

	Correct bool
}

// ScoreReport is the derived summary of a finished (or in-progress) session.
// It is recomputed on demand and never mutated independently.
type ScoreReport struct {
	ExamID        string
	CandidateName string

	Score int // answered correctly
	Total int

	Percentage float64

	Correct    int
	Incorrect  int
	Unanswered int

	ByDifficulty map[Difficulty]DifficultyScore

	PerQuestion []QuestionResult

	TimeTaken time.Duration
}

// Score computes the report for the given session. Pure and deterministic:
// calling it repeatedly on the same session yields identical reports.
func Score(s *Session) ScoreReport {
	r := ScoreReport{
		ExamID:        s.ExamID,
		CandidateName: s.Config.CandidateName,
		Total:         len(s.Questions),
		ByDifficulty:  make(map[Difficulty]DifficultyScore),
		PerQuestion:   make([]QuestionResult, 0, len(s.Questions)),
		TimeTaken:     s.Elapsed(),
	}

	for _, q := range s.Questions {
		ds := r.ByDifficulty[q.Difficulty]
		ds.Total++

		qr := QuestionResult{Question: q}
		if choice, ok := s.Answers[q.ID]; ok {
			qr.Answered = true
			qr.AnswerIndex = choice
			if choice == q.CorrectIndex {
				qr.Correct = true
				r.Correct++
				ds.Correct++
			} else {
				r.Incorrect++
			}
		} else {
			r.Unanswered++
		}

		r.ByDifficulty[q.Difficulty] = ds
		r.PerQuestion = append(r.PerQuestion, qr)
	}

	r.Score = r.Correct
	if r.Total > 0 {
		r.Percentage = float64(r.Score) / float64(r.Total) * 100
	}
	return r
}
