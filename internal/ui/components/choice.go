package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/tanmay/physiq/internal/ui/theme"
)

// optionLabels are the answer letters shown next to each option.
var optionLabels = []string{"A", "B", "C", "D"}

// Choice is the answer selector for one exam question. Unlike a quiz
// widget it never reveals the correct option; selection just records the
// answer and can be changed until the exam is submitted.
type Choice struct {
	Options []string

	// Cursor is the highlighted option.
	Cursor int

	// Chosen is the recorded answer, -1 when unanswered.
	Chosen int
}

// NewChoice creates a selector over the given options. prior is the
// previously recorded answer, -1 for none; the cursor starts there so
// revisiting a question shows what was picked.
func NewChoice(options []string, prior int) Choice {
	cursor := 0
	if prior >= 0 && prior < len(options) {
		cursor = prior
	}
	return Choice{
		Options: options,
		Cursor:  cursor,
		Chosen:  prior,
	}
}

// Update handles keyboard navigation and selection. It reports whether
// the recorded answer changed this message.
func (c Choice) Update(msg tea.Msg) (Choice, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, false
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < len(c.Options)-1 {
			c.Cursor++
		}
	case "enter", " ":
		c.Chosen = c.Cursor
		return c, true
	case "a", "b", "c", "d":
		idx := int(kmsg.String()[0] - 'a')
		if idx < len(c.Options) {
			c.Cursor = idx
			c.Chosen = idx
			return c, true
		}
	}

	return c, false
}

// View renders the option list.
func (c Choice) View() string {
	var s string
	for i, opt := range c.Options {
		label := optionLabels[i%len(optionLabels)]

		marker := "( )"
		if i == c.Chosen {
			marker = "(●)"
		}
		prefix := "  "
		if i == c.Cursor {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s %s)  %s", prefix, marker, label, opt)

		switch {
		case i == c.Cursor:
			s += theme.Selected.Render(line) + "\n"
		case i == c.Chosen:
			s += theme.Answered.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}

// ReviewView renders the option list for the results review: the correct
// option and the candidate's answer are revealed.
func (c Choice) ReviewView(correctIndex int) string {
	var s string
	for i, opt := range c.Options {
		label := optionLabels[i%len(optionLabels)]

		marker := "   "
		switch {
		case i == correctIndex:
			marker = " ✓ "
		case i == c.Chosen:
			marker = " ✗ "
		}

		line := fmt.Sprintf("%s%s)  %s", marker, label, opt)

		switch {
		case i == correctIndex:
			s += theme.Correct.Render(line) + "\n"
		case i == c.Chosen:
			s += theme.Incorrect.Render(line) + "\n"
		default:
			s += theme.Unselected.Render(line) + "\n"
		}
	}
	return s
}
