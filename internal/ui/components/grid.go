package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nitrazepam01/jmx-history/internal/quiz"
	"github.com/nitrazepam01/jmx-history/internal/ui/theme"
)

// gridColumns is the fixed cell count per row.
const gridColumns = 5

// Grid is the navigable question grid of the overview. Cells render their
// 1-based number with a ✓/✗ marker once the question has history.
type Grid struct {
	Total    int
	Status   map[int]bool
	Unusable map[int]bool
	Cursor   int
}

// NewGrid creates a grid over total questions.
func NewGrid(total int) Grid {
	return Grid{Total: total}
}

// Update handles cursor movement. It returns the selected index and true
// on enter.
func (g Grid) Update(msg tea.Msg) (Grid, int, bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || g.Total == 0 {
		return g, 0, false
	}

	switch kmsg.String() {
	case "left", "h":
		if g.Cursor > 0 {
			g.Cursor--
		}
	case "right", "l":
		if g.Cursor < g.Total-1 {
			g.Cursor++
		}
	case "up", "k":
		if g.Cursor-gridColumns >= 0 {
			g.Cursor -= gridColumns
		}
	case "down", "j":
		if g.Cursor+gridColumns < g.Total {
			g.Cursor += gridColumns
		}
	case "enter":
		return g, g.Cursor, true
	}

	return g, 0, false
}

// View renders the grid. focused controls cursor highlighting.
func (g Grid) View(focused bool) string {
	var rows []string
	var row strings.Builder

	for i := 0; i < g.Total; i++ {
		label := fmt.Sprintf("%3d", i+1)
		switch quiz.Cell(g.Status, i) {
		case quiz.CellDone:
			label = "✓" + label
		case quiz.CellNeedsReview:
			label = "✗" + label
		default:
			label = " " + label
		}
		if g.Unusable[i] {
			label = "!" + label[1:]
		}

		style := cellStyle(g.Status, i)
		if focused && i == g.Cursor {
			style = theme.CellCursor
		}
		row.WriteString(style.Render(label))
		row.WriteString(" ")

		if (i+1)%gridColumns == 0 || i == g.Total-1 {
			rows = append(rows, row.String())
			row.Reset()
		}
	}

	return strings.Join(rows, "\n")
}

func cellStyle(status map[int]bool, idx int) lipgloss.Style {
	switch quiz.Cell(status, idx) {
	case quiz.CellDone:
		return theme.CellDone
	case quiz.CellNeedsReview:
		return theme.CellWrong
	default:
		return theme.CellNeutral
	}
}
