// Package welcome is the exam setup screen: candidate name, question
// count, time limit and difficulty mix, then fetching the questions.
package welcome

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/tanmay/physiq/internal/exam"
	"github.com/tanmay/physiq/internal/router"
	"github.com/tanmay/physiq/internal/screen"
	"github.com/tanmay/physiq/internal/screens/question"
	"github.com/tanmay/physiq/internal/source"
	"github.com/tanmay/physiq/internal/store"
	"github.com/tanmay/physiq/internal/ui/components"
	"github.com/tanmay/physiq/internal/ui/layout"
	"github.com/tanmay/physiq/internal/ui/theme"
)

const fetchTimeout = 5 * time.Minute

// form field order
const (
	fieldName = iota
	fieldCount
	fieldTime
	fieldEasy
	fieldMedium
	fieldHard
	fieldStart
	fieldEnd // sentinel
)

// sessionReadyMsg carries the started session back from the fetch command.
type sessionReadyMsg struct {
	session *exam.Session
}

// fetchFailedMsg carries a fetch or selection failure.
type fetchFailedMsg struct {
	err error
}

// WelcomeScreen collects the exam configuration and starts the session.
type WelcomeScreen struct {
	src     source.Source
	history *store.Store
	log     zerolog.Logger

	name    components.TextInput
	count   components.Stepper
	minutes components.Stepper
	easy    components.Stepper
	medium  components.Stepper
	hard    components.Stepper

	focus    int
	fetching bool
	spin     spinner.Model
	errMsg   string
}

var _ screen.Screen = (*WelcomeScreen)(nil)
var _ screen.KeyHintProvider = (*WelcomeScreen)(nil)

// New creates the welcome screen with the historical defaults.
func New(src source.Source, history *store.Store, log zerolog.Logger) *WelcomeScreen {
	def := exam.DefaultConfig()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return &WelcomeScreen{
		src:     src,
		history: history,
		log:     log,
		name:    components.NewTextInput("Your name (optional)", 40),
		count:   components.NewStepper("Questions", def.NumQuestions, 1, 50, 1, ""),
		minutes: components.NewStepper("Time limit (0 = none)", int(def.TimeLimit.Minutes()), 0, 180, 5, " min"),
		easy:    components.NewStepper("Easy", def.Distribution[exam.DifficultyEasy], 0, 100, 5, "%"),
		medium:  components.NewStepper("Medium", def.Distribution[exam.DifficultyMedium], 0, 100, 5, "%"),
		hard:    components.NewStepper("Hard", def.Distribution[exam.DifficultyHard], 0, 100, 5, "%"),
	}
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return w.name.Focus()
}

func (w *WelcomeScreen) Title() string {
	return "Physics Exam"
}

func (w *WelcomeScreen) KeyHints() []layout.KeyHint {
	if w.fetching {
		return []layout.KeyHint{{Key: "Ctrl+C", Description: "Quit"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Field"},
		{Key: "←→", Description: "Adjust"},
		{Key: "Enter", Description: "Start"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// config assembles the exam configuration from the form.
func (w *WelcomeScreen) config() exam.Config {
	return exam.Config{
		NumQuestions: w.count.Value,
		Distribution: map[exam.Difficulty]int{
			exam.DifficultyEasy:   w.easy.Value,
			exam.DifficultyMedium: w.medium.Value,
			exam.DifficultyHard:   w.hard.Value,
		},
		TimeLimit:     time.Duration(w.minutes.Value) * time.Minute,
		CandidateName: strings.TrimSpace(w.name.Value()),
	}
}

func (w *WelcomeScreen) percentSum() int {
	return w.easy.Value + w.medium.Value + w.hard.Value
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		w.fetching = false
		restart := func() screen.Screen { return New(w.src, w.history, w.log) }
		q := question.New(msg.session, w.history, w.log, restart)
		return w, func() tea.Msg { return router.ReplaceScreenMsg{Screen: q} }

	case fetchFailedMsg:
		w.fetching = false
		w.errMsg = msg.err.Error()
		w.log.Error().Err(msg.err).Msg("fetching questions failed")
		return w, nil

	case spinner.TickMsg:
		if !w.fetching {
			return w, nil
		}
		var cmd tea.Cmd
		w.spin, cmd = w.spin.Update(msg)
		return w, cmd

	case tea.KeyMsg:
		return w.handleKey(msg)
	}

	if w.focus == fieldName && !w.fetching {
		var cmd tea.Cmd
		w.name, cmd = w.name.Update(msg)
		return w, cmd
	}

	return w, nil
}

func (w *WelcomeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if w.fetching {
		return w, nil
	}

	switch msg.String() {
	case "up", "shift+tab":
		return w, w.moveFocus(-1)
	case "down", "tab":
		return w, w.moveFocus(1)
	case "enter":
		if w.focus == fieldStart || w.focus == fieldName {
			if w.focus == fieldName {
				return w, w.moveFocus(1)
			}
			return w.startFetch()
		}
	}

	switch w.focus {
	case fieldName:
		var cmd tea.Cmd
		w.name, cmd = w.name.Update(msg)
		return w, cmd
	case fieldCount:
		w.count = w.count.Update(msg)
	case fieldTime:
		w.minutes = w.minutes.Update(msg)
	case fieldEasy:
		w.easy = w.easy.Update(msg)
	case fieldMedium:
		w.medium = w.medium.Update(msg)
	case fieldHard:
		w.hard = w.hard.Update(msg)
	}

	return w, nil
}

func (w *WelcomeScreen) moveFocus(delta int) tea.Cmd {
	w.focus = (w.focus + delta + fieldEnd) % fieldEnd
	if w.focus == fieldName {
		return w.name.Focus()
	}
	w.name.Blur()
	return nil
}

// startFetch kicks off the question fetch. The form stays visible with a
// spinner until the pool arrives or fails.
func (w *WelcomeScreen) startFetch() (screen.Screen, tea.Cmd) {
	cfg := w.config()
	if w.percentSum() != 100 {
		w.errMsg = fmt.Sprintf("difficulty mix must sum to 100%% (currently %d%%)", w.percentSum())
		return w, nil
	}
	if err := cfg.Validate(); err != nil {
		w.errMsg = err.Error()
		return w, nil
	}

	w.errMsg = ""
	w.fetching = true
	w.spin = spinner.New()
	w.spin.Spinner = spinner.Dot
	w.spin.Style = lipgloss.NewStyle().Foreground(theme.Primary)

	return w, tea.Batch(w.spin.Tick, fetchCmd(w.src, cfg))
}

// fetchCmd loads the pool, selects the exam questions and starts the
// session, all off the UI goroutine.
func fetchCmd(src source.Source, cfg exam.Config) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()

		pool, err := src.Questions(ctx, cfg)
		if err != nil {
			return fetchFailedMsg{err: err}
		}

		selected, err := exam.SelectQuestions(pool, cfg, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
		if err != nil {
			return fetchFailedMsg{err: err}
		}

		session, err := exam.StartSession(cfg, selected)
		if err != nil {
			return fetchFailedMsg{err: err}
		}

		return sessionReadyMsg{session: session}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Physics Exam"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Multiple-choice questions on physics diagrams"))
	b.WriteString("\n\n")

	rows := []string{
		w.nameRow(),
		w.count.View(w.focus == fieldCount),
		w.minutes.View(w.focus == fieldTime),
		"",
		theme.Hint.Render("  Difficulty mix"),
		w.easy.View(w.focus == fieldEasy),
		w.medium.View(w.focus == fieldMedium),
		w.hard.View(w.focus == fieldHard),
		"",
		w.startRow(),
	}
	form := strings.Join(rows, "\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, form))
	b.WriteString("\n\n")

	if w.fetching {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			w.spin.View()+" preparing your exam..."))
	} else if w.errMsg != "" {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Incorrect.Render(w.errMsg)))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			theme.Hint.Render("adjust the form and press Enter on Start to retry")))
	} else if w.percentSum() != 100 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Warning).
				Render(fmt.Sprintf("difficulty mix sums to %d%%, needs 100%%", w.percentSum()))))
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Center, b.String())
}

func (w *WelcomeScreen) nameRow() string {
	label := "  Candidate"
	if w.focus == fieldName {
		label = "▸ Candidate"
		return theme.Selected.Render(fmt.Sprintf("%-26s", label)) + w.name.View()
	}
	value := w.name.Value()
	if value == "" {
		value = theme.Hint.Render("(anonymous)")
	}
	return theme.Unselected.Render(fmt.Sprintf("%-26s", label)) + value
}

func (w *WelcomeScreen) startRow() string {
	if w.focus == fieldStart {
		return theme.Selected.Render("▸ [ Start exam ]")
	}
	return theme.Unselected.Render("  [ Start exam ]")
}
