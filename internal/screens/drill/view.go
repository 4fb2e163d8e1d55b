package drill

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/nitrazepam01/jmx-history/internal/ui/layout"
	"github.com/nitrazepam01/jmx-history/internal/ui/theme"
)

func (s *DrillScreen) View(width, height int) string {
	if s.loading {
		return layout.Center(theme.Hint.Render("Loading mistakes..."), width, height)
	}
	if s.review && s.storeWarn && len(s.wrong) == 0 {
		return layout.Center(lipgloss.JoinVertical(lipgloss.Center,
			theme.Warning.Render("⚠ Couldn't load your mistakes — history store unreachable."),
			"",
			theme.Hint.Render("Press Esc to go back and try again."),
		), width, height)
	}
	if s.cleared {
		return layout.Center(lipgloss.JoinVertical(lipgloss.Center,
			theme.Correct.Render("🎉 Mistake list cleared!"),
			"",
			theme.Hint.Render("Every past miss has been answered correctly."),
		), width, height)
	}

	q, ok := s.current()
	if !ok {
		return layout.Center(theme.Hint.Render("Nothing to show."), width, height)
	}

	var b []string

	b = append(b, theme.Subtitle.Render(s.positionBadge()))
	if s.storeWarn {
		b = append(b, theme.Warning.Render("⚠ Attempt may not have been saved — history store unreachable."))
	}
	b = append(b, "")

	if q.Unusable() {
		b = append(b, theme.Body.Render(q.Text))
		b = append(b, "")
		b = append(b, theme.Warning.Render("⚠ This question's options failed to parse and it can't be answered."))
		if !s.review {
			b = append(b, theme.Hint.Render("Press N to skip it, Esc to go back."))
		} else {
			b = append(b, theme.Hint.Render("Press Esc to go back."))
		}
		return layout.Center(lipgloss.JoinVertical(lipgloss.Left, b...), width, height)
	}

	b = append(b, s.picker.View())

	switch {
	case s.advancing:
		b = append(b, "", theme.Correct.Render("✓ Correct! Moving on..."))
	case s.explaining:
		b = append(b, "", s.spin.View()+theme.Hint.Render(" The tutor is writing an explanation..."))
	case s.sess.Explanation != nil:
		b = append(b, "", theme.Incorrect.Render("✗ Not quite."))
		b = append(b, theme.Card.Render(*s.sess.Explanation))
		b = append(b, theme.Hint.Render("Press Enter or N for the next question."))
	}

	return layout.Center(lipgloss.JoinVertical(lipgloss.Left, b...), width, height)
}

func (s *DrillScreen) positionBadge() string {
	if s.review {
		return fmt.Sprintf("Mistake %d / %d", s.sess.MistakeCursor+1, len(s.wrong))
	}
	return fmt.Sprintf("Question %d / %d", s.sess.Current+1, len(s.questions))
}
