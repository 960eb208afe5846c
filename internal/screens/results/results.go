// Package results is the post-exam screen: the score summary, per-difficulty
// breakdown and a question-by-question review with explanations.
package results

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/tanmay/physiq/internal/exam"
	"github.com/tanmay/physiq/internal/router"
	"github.com/tanmay/physiq/internal/screen"
	"github.com/tanmay/physiq/internal/store"
	"github.com/tanmay/physiq/internal/ui/components"
	"github.com/tanmay/physiq/internal/ui/layout"
	"github.com/tanmay/physiq/internal/ui/theme"
)

const persistTimeout = 10 * time.Second

// persistedMsg reports the outcome of saving the result to history.
type persistedMsg struct {
	err error
}

// ResultsScreen shows the scored exam and reviews each question.
type ResultsScreen struct {
	session *exam.Session
	report  exam.ScoreReport
	history *store.Store
	log     zerolog.Logger
	restart func() screen.Screen

	// review is the cursor into report.PerQuestion, -1 for the summary.
	review     int
	saveFailed bool
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen for a scored session.
func New(session *exam.Session, report exam.ScoreReport, history *store.Store, log zerolog.Logger, restart func() screen.Screen) *ResultsScreen {
	return &ResultsScreen{
		session: session,
		report:  report,
		history: history,
		log:     log,
		restart: restart,
		review:  -1,
	}
}

// Init saves the result to history off the UI goroutine. A nil history
// (running without a database) skips persistence.
func (r *ResultsScreen) Init() tea.Cmd {
	if r.history == nil {
		return nil
	}
	session, report, history := r.session, r.report, r.history
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		err := history.AppendResult(ctx, store.ResultFromReport(session, report))
		return persistedMsg{err: err}
	}
}

func (r *ResultsScreen) Title() string {
	if r.review >= 0 {
		return fmt.Sprintf("Review %d of %d", r.review+1, len(r.report.PerQuestion))
	}
	return "Exam Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "←→", Description: "Review"},
		{Key: "R", Description: "New exam"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if r.review >= 0 {
		hints = append([]layout.KeyHint{{Key: "Esc", Description: "Summary"}}, hints...)
	}
	return hints
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case persistedMsg:
		if msg.err != nil {
			r.saveFailed = true
			r.log.Error().Err(msg.err).Str("exam", r.report.ExamID).Msg("saving result failed")
		} else {
			r.log.Info().Str("exam", r.report.ExamID).
				Int("score", r.report.Score).Int("total", r.report.Total).
				Msg("result saved")
		}
		return r, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "right", "n", "down", "j":
			if r.review < len(r.report.PerQuestion)-1 {
				r.review++
			}
		case "left", "p", "up", "k":
			if r.review > -1 {
				r.review--
			}
		case "esc":
			r.review = -1
		case "r", "R":
			next := r.restart()
			return r, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
		}
	}
	return r, nil
}

func (r *ResultsScreen) View(width, height int) string {
	var body string
	if r.review >= 0 {
		body = r.reviewView(width)
	} else {
		body = r.summaryView(width)
	}
	content := lipgloss.NewStyle().Padding(1, 2).Render(body)
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, content)
}

func (r *ResultsScreen) summaryView(width int) string {
	var b strings.Builder

	headline := fmt.Sprintf("%d / %d  (%.1f%%)", r.report.Score, r.report.Total, r.report.Percentage)
	b.WriteString(theme.Title.Render(headline))
	b.WriteString("\n")

	if name := r.report.CandidateName; name != "" {
		b.WriteString(theme.Subtitle.Render(name))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if r.session.Expired {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Warning).Bold(true).
			Render("⏰ Time expired — the exam was submitted automatically"))
		b.WriteString("\n\n")
	}

	b.WriteString(theme.Correct.Render(fmt.Sprintf("  ✓ %d correct", r.report.Correct)))
	b.WriteString("\n")
	b.WriteString(theme.Incorrect.Render(fmt.Sprintf("  ✗ %d incorrect", r.report.Incorrect)))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("  – %d unanswered", r.report.Unanswered)))
	b.WriteString("\n\n")

	b.WriteString(theme.Body.Render("By difficulty"))
	b.WriteString("\n")
	barWidth := min(width-8, 48)
	for _, d := range exam.Difficulties {
		ds, ok := r.report.ByDifficulty[d]
		if !ok || ds.Total == 0 {
			continue
		}
		label := lipgloss.NewStyle().Foreground(theme.DifficultyColor(string(d))).
			Render(fmt.Sprintf("%-7s", d))
		bar := components.NewProgressBar("", float64(ds.Correct)/float64(ds.Total), false, barWidth)
		b.WriteString(fmt.Sprintf("  %s %s  %d/%d\n", label, bar.View(), ds.Correct, ds.Total))
	}
	b.WriteString("\n")

	b.WriteString(theme.Hint.Render(fmt.Sprintf("Time taken: %s", formatDuration(r.report.TimeTaken))))
	b.WriteString("\n")

	if r.saveFailed {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render("could not save this result to history (see log)"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("→ to review each question, R to start a new exam"))

	return b.String()
}

func (r *ResultsScreen) reviewView(width int) string {
	qr := r.report.PerQuestion[r.review]
	q := qr.Question

	var b strings.Builder

	badge := lipgloss.NewStyle().
		Foreground(theme.BgDark).
		Background(theme.DifficultyColor(string(q.Difficulty))).
		Padding(0, 1).
		Render(string(q.Difficulty))
	verdict := theme.Hint.Render("unanswered")
	switch {
	case qr.Correct:
		verdict = theme.Correct.Render("correct")
	case qr.Answered:
		verdict = theme.Incorrect.Render("incorrect")
	}
	b.WriteString(badge + "  " + verdict)
	b.WriteString("\n\n")

	if q.ImageFilename != "" {
		b.WriteString(theme.Hint.Render("◪ diagram: " + q.ImageFilename))
		b.WriteString("\n\n")
	}

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).
		Width(width - 4).Render(q.Text))
	b.WriteString("\n\n")

	chosen := -1
	if qr.Answered {
		chosen = qr.AnswerIndex
	}
	choice := components.NewChoice(q.Options, chosen)
	b.WriteString(choice.ReviewView(q.CorrectIndex))

	if q.Explanation != "" {
		b.WriteString("\n")
		b.WriteString(theme.Body.Render("Explanation"))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Width(width - 4).Render(q.Explanation))
		b.WriteString("\n")
	}

	return b.String()
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	if d >= time.Hour {
		return fmt.Sprintf("%dh %dm %ds", int(d.Hours()), int(d.Minutes())%60, int(d.Seconds())%60)
	}
	return fmt.Sprintf("%dm %ds", int(d.Minutes()), int(d.Seconds())%60)
}
