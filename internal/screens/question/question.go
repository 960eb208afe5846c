// Package question is the active exam screen: one question at a time with
// navigation, an answer selector and the exam clock.
package question

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/tanmay/physiq/internal/exam"
	"github.com/tanmay/physiq/internal/router"
	"github.com/tanmay/physiq/internal/screen"
	"github.com/tanmay/physiq/internal/screens/results"
	"github.com/tanmay/physiq/internal/store"
	"github.com/tanmay/physiq/internal/ui/components"
	"github.com/tanmay/physiq/internal/ui/layout"
	"github.com/tanmay/physiq/internal/ui/theme"
)

// clockTickMsg drives the exam clock, once per second.
type clockTickMsg time.Time

// QuestionScreen renders the current question of a running session.
type QuestionScreen struct {
	session *exam.Session
	history *store.Store
	log     zerolog.Logger
	restart func() screen.Screen

	choice     components.Choice
	confirming bool
	errMsg     string

	// jumpBuf accumulates typed digits for a jump to a question number.
	// -1 means no jump is pending.
	jumpBuf int
}

var _ screen.Screen = (*QuestionScreen)(nil)
var _ screen.KeyHintProvider = (*QuestionScreen)(nil)
var _ screen.StatusProvider = (*QuestionScreen)(nil)

// New creates the question screen over a started session.
func New(session *exam.Session, history *store.Store, log zerolog.Logger, restart func() screen.Screen) *QuestionScreen {
	q := &QuestionScreen{
		session: session,
		history: history,
		log:     log,
		restart: restart,
		jumpBuf: -1,
	}
	q.syncChoice()
	return q
}

func (q *QuestionScreen) Init() tea.Cmd {
	return clockTick()
}

func clockTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

func (q *QuestionScreen) Title() string {
	return fmt.Sprintf("Question %d of %d", q.session.Index+1, len(q.session.Questions))
}

// Status renders the header clock: remaining time when limited, elapsed
// otherwise, plus the answered count.
func (q *QuestionScreen) Status() string {
	answered := fmt.Sprintf("%d/%d answered",
		len(q.session.Questions)-q.session.Unanswered(), len(q.session.Questions))

	if q.session.Config.TimeLimit > 0 {
		return fmt.Sprintf("⏱ %s left   %s", formatClock(q.session.Remaining()), answered)
	}
	return fmt.Sprintf("⏱ %s   %s", formatClock(q.session.Elapsed()), answered)
}

func (q *QuestionScreen) KeyHints() []layout.KeyHint {
	if q.confirming {
		return []layout.KeyHint{
			{Key: "Y", Description: "Submit anyway"},
			{Key: "N", Description: "Keep going"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Option"},
		{Key: "Enter", Description: "Answer"},
		{Key: "←→", Description: "Question"},
		{Key: "1-50", Description: "Jump"},
		{Key: "S", Description: "Submit"},
	}
}

// syncChoice rebuilds the selector from the session's recorded answer for
// the current question.
func (q *QuestionScreen) syncChoice() {
	current := q.session.Current()
	prior := -1
	if choice, ok := q.session.Answer(current.ID); ok {
		prior = choice
	}
	q.choice = components.NewChoice(current.Options, prior)
}

func (q *QuestionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case clockTickMsg:
		if q.session.CheckExpiry(time.Time(msg)) {
			return q, q.finish()
		}
		return q, clockTick()

	case tea.KeyMsg:
		return q.handleKey(msg)
	}

	return q, nil
}

func (q *QuestionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if q.confirming {
		switch msg.String() {
		case "y", "Y", "enter":
			q.session.Submit()
			return q, q.finish()
		case "n", "N", "esc":
			q.confirming = false
		}
		return q, nil
	}

	switch key := msg.String(); key {
	case "left", "p":
		q.jumpBuf = -1
		q.session.Prev()
		q.syncChoice()
		return q, nil
	case "right", "n":
		q.jumpBuf = -1
		q.session.Next()
		q.syncChoice()
		return q, nil
	case "s", "S":
		q.jumpBuf = -1
		return q.requestSubmit()
	case "0", "1", "2", "3", "4", "5", "6", "7", "8", "9":
		return q.bufferJump(int(key[0] - '0'))
	case "g":
		if q.jumpBuf > 0 {
			q.session.JumpTo(q.jumpBuf - 1)
			q.syncChoice()
		}
		q.jumpBuf = -1
		return q, nil
	}

	q.jumpBuf = -1

	var changed bool
	q.choice, changed = q.choice.Update(msg)
	if changed {
		current := q.session.Current()
		if err := q.session.RecordAnswer(current.ID, q.choice.Chosen); err != nil {
			// Finished sessions reject answers; anything else is a bug
			// worth surfacing in the log.
			q.log.Warn().Err(err).Str("question", current.ID).Msg("answer rejected")
			q.errMsg = err.Error()
		} else {
			q.errMsg = ""
		}
	}
	return q, nil
}

// bufferJump accumulates a typed digit into a question number. The jump
// commits as soon as no further digit could still name a valid question;
// "g" commits a pending number early, any other key abandons it.
func (q *QuestionScreen) bufferJump(digit int) (screen.Screen, tea.Cmd) {
	if q.jumpBuf < 0 {
		q.jumpBuf = digit
	} else {
		q.jumpBuf = q.jumpBuf*10 + digit
	}
	if q.jumpBuf*10 > len(q.session.Questions) {
		q.session.JumpTo(q.jumpBuf - 1)
		q.jumpBuf = -1
		q.syncChoice()
	}
	return q, nil
}

// requestSubmit asks for confirmation when unanswered questions remain,
// otherwise submits immediately. A clock that has already run out wins
// over the keypress and the session finishes as expired.
func (q *QuestionScreen) requestSubmit() (screen.Screen, tea.Cmd) {
	if q.session.CheckExpiry(time.Now()) {
		return q, q.finish()
	}
	if q.session.Unanswered() > 0 {
		q.confirming = true
		return q, nil
	}
	q.session.Submit()
	return q, q.finish()
}

// finish scores the session and swaps in the results screen.
func (q *QuestionScreen) finish() tea.Cmd {
	report := exam.Score(q.session)
	r := results.New(q.session, report, q.history, q.log, q.restart)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: r}
	}
}

func (q *QuestionScreen) View(width, height int) string {
	current := q.session.Current()
	var b strings.Builder

	badge := lipgloss.NewStyle().
		Foreground(theme.BgDark).
		Background(theme.DifficultyColor(string(current.Difficulty))).
		Padding(0, 1).
		Render(string(current.Difficulty))
	topicLine := badge
	if current.Topic != "" {
		topicLine += "  " + theme.Hint.Render(current.Topic+" · "+current.Subtopic)
	}
	b.WriteString(topicLine)
	b.WriteString("\n\n")

	if current.ImageFilename != "" {
		b.WriteString(q.imageCaption(current, width))
		b.WriteString("\n\n")
	}

	prompt := lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Width(width - 4).
		Render(current.Text)
	b.WriteString(prompt)
	b.WriteString("\n\n")

	b.WriteString(q.choice.View())
	b.WriteString("\n")

	nav := components.Navigator{
		Total:    len(q.session.Questions),
		Current:  q.session.Index,
		Answered: q.answeredByIndex(),
	}
	b.WriteString(nav.View())
	b.WriteString("\n")

	if q.jumpBuf >= 0 {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("go to question %d… (g to jump)", q.jumpBuf)))
		b.WriteString("\n")
	}

	if q.confirming {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Warning).Render(
			fmt.Sprintf("%d question(s) unanswered. Submit anyway? (y/n)", q.session.Unanswered())))
	} else if q.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Render(q.errMsg))
	}

	content := lipgloss.NewStyle().Padding(1, 2).Render(b.String())
	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top, content)
}

// imageCaption renders the diagram reference. The terminal can't show the
// diagram itself, so the caption carries the filename and URL; an empty
// URL degrades to an unavailability placeholder.
func (q *QuestionScreen) imageCaption(current exam.Question, width int) string {
	if current.ImageURL == "" {
		return theme.Hint.Render(fmt.Sprintf("◪ diagram %s (image unavailable)", current.ImageFilename))
	}
	caption := fmt.Sprintf("◪ diagram: %s", current.ImageFilename)
	url := theme.Hint.Render("  " + current.ImageURL)
	return lipgloss.NewStyle().Foreground(theme.Secondary).Render(caption) + "\n" + url
}

func (q *QuestionScreen) answeredByIndex() map[int]bool {
	answered := make(map[int]bool, len(q.session.Answers))
	for i, question := range q.session.Questions {
		if _, ok := q.session.Answer(question.ID); ok {
			answered[i] = true
		}
	}
	return answered
}

func formatClock(d time.Duration) string {
	d = d.Round(time.Second)
	mins := int(d.Minutes())
	secs := int(d.Seconds()) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}
