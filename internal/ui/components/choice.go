package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nitrazepam01/jmx-history/internal/ui/theme"
)

// Choice is one selectable answer with its source letter.
type Choice struct {
	Letter string
	Text   string
}

// ChoicePicker is the answer selector for one question. Letters come
// from the courseware row, so the set may be sparse (a row might only
// have B and D).
type ChoicePicker struct {
	Question      string
	Choices       []Choice
	CorrectLetter string
	Selected      int
	Submitted     bool
	ChosenLetter  string
}

// NewChoicePicker creates a picker for the given question.
func NewChoicePicker(question string, choices []Choice, correctLetter string) ChoicePicker {
	return ChoicePicker{
		Question:      question,
		Choices:       choices,
		CorrectLetter: correctLetter,
		Selected:      0,
	}
}

// Update handles navigation and submission. After submission the picker
// freezes until the caller builds a fresh one.
func (p ChoicePicker) Update(msg tea.Msg) (ChoicePicker, bool) {
	if p.Submitted || len(p.Choices) == 0 {
		return p, false
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, false
	}

	switch kmsg.String() {
	case "up", "k":
		if p.Selected > 0 {
			p.Selected--
		}
	case "down", "j":
		if p.Selected < len(p.Choices)-1 {
			p.Selected++
		}
	case "enter":
		p.Submitted = true
		p.ChosenLetter = p.Choices[p.Selected].Letter
		return p, true
	default:
		// Direct letter selection: pressing "a" jumps to option A.
		for i, c := range p.Choices {
			if kmsg.String() == lowerLetter(c.Letter) {
				p.Selected = i
			}
		}
	}

	return p, false
}

// View renders the question and its options. After submission the correct
// letter is highlighted green and a wrong pick red.
func (p ChoicePicker) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(p.Question) + "\n\n"

	for i, c := range p.Choices {
		prefix := "  "
		if i == p.Selected && !p.Submitted {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s. %s", prefix, c.Letter, c.Text)

		if p.Submitted {
			switch {
			case c.Letter == p.CorrectLetter:
				s += theme.Correct.Render(line) + "\n"
			case c.Letter == p.ChosenLetter:
				s += theme.Incorrect.Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else if i == p.Selected {
			s += theme.Selected.Render(line) + "\n"
		} else {
			s += theme.Unselected.Render(line) + "\n"
		}
	}

	return s
}

// IsCorrect reports whether the submitted choice matches the answer key.
func (p ChoicePicker) IsCorrect() bool {
	return p.Submitted && p.ChosenLetter == p.CorrectLetter
}

func lowerLetter(letter string) string {
	if len(letter) != 1 || letter[0] < 'A' || letter[0] > 'Z' {
		return letter
	}
	return string(letter[0] + ('a' - 'A'))
}
