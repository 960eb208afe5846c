package results

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog"

	"github.com/tanmay/physiq/internal/exam"
	"github.com/tanmay/physiq/internal/screen"
)

// stubScreen stands in for the welcome screen in restart closures.
type stubScreen struct{}

func (stubScreen) Init() tea.Cmd                             { return nil }
func (s stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (stubScreen) View(int, int) string                      { return "stub" }
func (stubScreen) Title() string                             { return "Stub" }

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func makeQuestion(id string, d exam.Difficulty, correct int) exam.Question {
	return exam.Question{
		ID:           id,
		Text:         "Which quantity is conserved in an elastic collision?",
		Options:      []string{"Only momentum", "Only kinetic energy", "Both", "Neither"},
		CorrectIndex: correct,
		Difficulty:   d,
		Explanation:  "Elastic collisions conserve both momentum and kinetic energy.",
	}
}

func finishedSession(t *testing.T) *exam.Session {
	t.Helper()
	cfg := exam.Config{
		NumQuestions: 3,
		Distribution: map[exam.Difficulty]int{
			exam.DifficultyEasy:   40,
			exam.DifficultyMedium: 30,
			exam.DifficultyHard:   30,
		},
		CandidateName: "Maya",
	}
	questions := []exam.Question{
		makeQuestion("q1", exam.DifficultyEasy, 2),
		makeQuestion("q2", exam.DifficultyMedium, 0),
		makeQuestion("q3", exam.DifficultyHard, 1),
	}
	s, err := exam.StartSession(cfg, questions)
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}
	s.RecordAnswer("q1", 2) // correct
	s.RecordAnswer("q2", 3) // incorrect, q3 unanswered
	s.Submit()
	return s
}

func testResultsScreen(t *testing.T) *ResultsScreen {
	t.Helper()
	session := finishedSession(t)
	report := exam.Score(session)
	return New(session, report, nil, zerolog.Nop(), func() screen.Screen { return stubScreen{} })
}

func TestResultsScreen_Summary(t *testing.T) {
	r := testResultsScreen(t)

	if r.Title() != "Exam Results" {
		t.Errorf("Title = %q, want %q", r.Title(), "Exam Results")
	}

	view := r.View(80, 24)
	for _, want := range []string{"1 / 3", "Maya", "1 correct", "1 incorrect", "1 unanswered"} {
		if !strings.Contains(view, want) {
			t.Errorf("summary view missing %q", want)
		}
	}
}

func TestResultsScreen_ExpiredBanner(t *testing.T) {
	r := testResultsScreen(t)
	r.session.Expired = true

	view := r.View(80, 24)
	if !strings.Contains(view, "Time expired") {
		t.Error("expected expiry banner on the summary")
	}
}

func TestResultsScreen_ReviewNavigation(t *testing.T) {
	r := testResultsScreen(t)

	var scr screen.Screen = r
	scr, _ = scr.Update(specialKey(tea.KeyRight))
	rs := scr.(*ResultsScreen)
	if rs.review != 0 {
		t.Fatalf("review = %d, want 0", rs.review)
	}
	if rs.Title() != "Review 1 of 3" {
		t.Errorf("Title = %q, want %q", rs.Title(), "Review 1 of 3")
	}

	// Clamp at the last question.
	for range 5 {
		scr, _ = rs.Update(specialKey(tea.KeyRight))
		rs = scr.(*ResultsScreen)
	}
	if rs.review != 2 {
		t.Errorf("review = %d, want 2", rs.review)
	}

	// Esc returns to the summary.
	scr, _ = rs.Update(specialKey(tea.KeyEscape))
	rs = scr.(*ResultsScreen)
	if rs.review != -1 {
		t.Errorf("review after esc = %d, want -1", rs.review)
	}
}

func TestResultsScreen_ReviewView(t *testing.T) {
	r := testResultsScreen(t)

	var scr screen.Screen = r
	scr, _ = scr.Update(specialKey(tea.KeyRight))
	rs := scr.(*ResultsScreen)

	view := rs.View(80, 24)
	if !strings.Contains(view, "elastic collision") {
		t.Error("review should show the question text")
	}
	if !strings.Contains(view, "✓") {
		t.Error("review should reveal the correct option")
	}
	if !strings.Contains(view, "Elastic collisions conserve") {
		t.Error("review should show the explanation")
	}
}

func TestResultsScreen_UnansweredVerdict(t *testing.T) {
	r := testResultsScreen(t)
	r.review = 2 // q3 has no recorded answer

	view := r.View(80, 24)
	if !strings.Contains(view, "unanswered") {
		t.Error("review of a skipped question should say unanswered")
	}
}

func TestResultsScreen_Restart(t *testing.T) {
	r := testResultsScreen(t)

	_, cmd := r.Update(keyPress('r'))
	if cmd == nil {
		t.Fatal("expected a command on restart")
	}
}

func TestResultsScreen_PersistFailure(t *testing.T) {
	r := testResultsScreen(t)

	scr, _ := r.Update(persistedMsg{err: errors.New("disk full")})
	rs := scr.(*ResultsScreen)
	if !rs.saveFailed {
		t.Error("expected saveFailed after a persist error")
	}
	if !strings.Contains(rs.View(80, 24), "could not save") {
		t.Error("expected the save failure surfaced on the summary")
	}
}

func TestResultsScreen_InitWithoutHistory(t *testing.T) {
	r := testResultsScreen(t)
	if cmd := r.Init(); cmd != nil {
		t.Error("expected no persist command without a history store")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{45 * time.Second, "0m 45s"},
		{5*time.Minute + 3*time.Second, "5m 3s"},
		{90 * time.Minute, "1h 30m 0s"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
