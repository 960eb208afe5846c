package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/tanmay/physiq/internal/ui/theme"
)

// Stepper is a bounded numeric field adjusted with left/right keys. The
// welcome form uses it for question count, time limit and the difficulty
// percentages.
type Stepper struct {
	Label  string
	Value  int
	Min    int
	Max    int
	Step   int
	Suffix string
}

// NewStepper creates a stepper clamped to [min, max].
func NewStepper(label string, value, min, max, step int, suffix string) Stepper {
	return Stepper{
		Label:  label,
		Value:  value,
		Min:    min,
		Max:    max,
		Step:   step,
		Suffix: suffix,
	}
}

// Update adjusts the value on left/right or h/l.
func (s Stepper) Update(msg tea.Msg) Stepper {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s
	}

	switch kmsg.String() {
	case "left", "h":
		s.Value -= s.Step
		if s.Value < s.Min {
			s.Value = s.Min
		}
	case "right", "l":
		s.Value += s.Step
		if s.Value > s.Max {
			s.Value = s.Max
		}
	}
	return s
}

// View renders the stepper; focused draws the cursor and arrows.
func (s Stepper) View(focused bool) string {
	value := fmt.Sprintf("%d%s", s.Value, s.Suffix)

	if focused {
		return theme.Selected.Render(fmt.Sprintf("▸ %-24s ◂ %s ▸", s.Label, value))
	}
	return theme.Unselected.Render(fmt.Sprintf("  %-24s   %s", s.Label, value))
}
