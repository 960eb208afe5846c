package components

import (
	"fmt"
	"strings"

	"github.com/tanmay/physiq/internal/ui/theme"
)

// Navigator renders the question jump row: one numbered cell per
// question, marking the current position and which are answered.
type Navigator struct {
	Total    int
	Current  int
	Answered map[int]bool
}

// View renders the row.
func (n Navigator) View() string {
	cells := make([]string, 0, n.Total)
	for i := range n.Total {
		cell := fmt.Sprintf("%2d", i+1)
		switch {
		case i == n.Current:
			cell = theme.Selected.Render("[" + cell + "]")
		case n.Answered[i]:
			cell = theme.Answered.Render(" " + cell + "·")
		default:
			cell = theme.Hint.Render(" " + cell + " ")
		}
		cells = append(cells, cell)
	}
	return strings.Join(cells, " ")
}
