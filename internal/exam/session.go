package exam

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// State is the lifecycle state of an exam session.
type State int

const (
	StateNotStarted State = iota
	StateInProgress
	StateFinished
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not-started"
	case StateInProgress:
		return "in-progress"
	case StateFinished:
		return "finished"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Session is the single source of truth for one in-progress exam: the
// selected questions, the cursor, the recorded answers and the clock.
// It is mutated only through its methods so the index invariant
// 0 <= Index < len(Questions) always holds.
type Session struct {
	// ExamID identifies this attempt in logs and the results history.
	ExamID string

	Config    Config
	Questions []Question

	// Index is the current question cursor, 0-based.
	Index int

	// Answers maps question ID to the submitted option index. Not every
	// question needs an entry.
	Answers map[string]int

	StartedAt  time.Time
	FinishedAt time.Time

	// Expired is true when the session finished by time-limit expiry
	// rather than manual submission.
	Expired bool

	state State

	// now is the clock, swappable in tests.
	now func() time.Time
}

// StartSession creates an InProgress session over the given questions.
// The questions must be non-empty and consistent with cfg: exactly
// cfg.NumQuestions of them, matching cfg's per-difficulty counts.
func StartSession(cfg Config, questions []Question) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, &ConfigurationError{Reason: "no questions provided"}
	}
	if len(questions) != cfg.NumQuestions {
		return nil, &ConfigurationError{
			Reason: fmt.Sprintf("got %d questions, config requests %d", len(questions), cfg.NumQuestions),
		}
	}

	have := make(map[Difficulty]int)
	for _, q := range questions {
		have[q.Difficulty]++
	}
	for d, want := range cfg.Counts() {
		if have[d] != want {
			return nil, &ConfigurationError{
				Reason: fmt.Sprintf("need %d %s questions, got %d", want, d, have[d]),
			}
		}
	}

	now := time.Now
	return &Session{
		ExamID:    uuid.New().String(),
		Config:    cfg,
		Questions: questions,
		Answers:   make(map[string]int),
		StartedAt: now(),
		state:     StateInProgress,
		now:       now,
	}, nil
}

// State returns the session lifecycle state.
func (s *Session) State() State {
	if s == nil {
		return StateNotStarted
	}
	return s.state
}

// Current returns the question under the cursor.
func (s *Session) Current() Question {
	return s.Questions[s.Index]
}

// RecordAnswer stores choice for the identified question, overwriting any
// prior answer. Resubmission is idempotent.
func (s *Session) RecordAnswer(questionID string, choice int) error {
	if s.state == StateFinished {
		return &SessionClosedError{Op: "record answer"}
	}

	q, ok := s.find(questionID)
	if !ok {
		return &ValidationError{Field: "question", Reason: fmt.Sprintf("%q is not part of this exam", questionID)}
	}
	if choice < 0 || choice >= len(q.Options) {
		return &ValidationError{
			Field:  "answer",
			Reason: fmt.Sprintf("option %d out of range [0, %d)", choice, len(q.Options)),
		}
	}

	s.Answers[questionID] = choice
	return nil
}

// Answer returns the recorded answer for the identified question,
// or ok=false when the question is unanswered.
func (s *Session) Answer(questionID string) (int, bool) {
	choice, ok := s.Answers[questionID]
	return choice, ok
}

// Unanswered returns the number of questions without a recorded answer.
func (s *Session) Unanswered() int {
	return len(s.Questions) - len(s.Answers)
}

// Next advances the cursor. No-op at the last question.
func (s *Session) Next() {
	if s.Index < len(s.Questions)-1 {
		s.Index++
	}
}

// Prev rewinds the cursor. No-op at the first question.
func (s *Session) Prev() {
	if s.Index > 0 {
		s.Index--
	}
}

// JumpTo moves the cursor to i. Out-of-range jumps are ignored.
func (s *Session) JumpTo(i int) {
	if i >= 0 && i < len(s.Questions) {
		s.Index = i
	}
}

// Submit finishes the session. A time limit that has already passed wins
// over the manual submit: the session records an expiry instead, even when
// no expiry check has run since the deadline. Idempotent; once finished the
// session stays finished and answers can no longer change.
func (s *Session) Submit() {
	if s.state == StateFinished {
		return
	}
	if s.CheckExpiry(s.now()) {
		return
	}
	s.state = StateFinished
	s.FinishedAt = s.now()
}

// Elapsed returns the time since the session started. After submission it
// is pinned to the finish time.
func (s *Session) Elapsed() time.Duration {
	if s.state == StateFinished {
		return s.FinishedAt.Sub(s.StartedAt)
	}
	return s.now().Sub(s.StartedAt)
}

// Remaining returns the time left on the clock, or 0 when no limit is set
// or the limit has been reached.
func (s *Session) Remaining() time.Duration {
	if s.Config.TimeLimit <= 0 {
		return 0
	}
	left := s.Config.TimeLimit - s.Elapsed()
	if left < 0 {
		return 0
	}
	return left
}

// CheckExpiry auto-submits the session when the time limit has passed.
// Callers evaluate it on every render tick; expiry takes precedence over a
// manual submit arriving in the same instant. Returns true if the session
// expired (now or previously).
func (s *Session) CheckExpiry(now time.Time) bool {
	if s.Expired {
		return true
	}
	if s.Config.TimeLimit <= 0 || s.state != StateInProgress {
		return false
	}
	if now.Sub(s.StartedAt) >= s.Config.TimeLimit {
		s.Expired = true
		s.state = StateFinished
		s.FinishedAt = now
		return true
	}
	return false
}

func (s *Session) find(questionID string) (Question, bool) {
	for _, q := range s.Questions {
		if q.ID == questionID {
			return q, true
		}
	}
	return Question{}, false
}
