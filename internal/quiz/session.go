// Package quiz holds the pure session state machine and the overview
// aggregation. Nothing here does I/O: every transition is a value-in,
// value-out function, so the whole flow is unit-testable without a UI
// harness or a live store.
package quiz

// ViewMode is the active view of the session.
type ViewMode int

const (
	ModeOverview ViewMode = iota
	ModeQuiz
	ModeMistakes
)

// Session is the full per-session state. It is never persisted; a restart
// begins back at the overview.
type Session struct {
	Mode ViewMode

	// Current is the active question index while in ModeQuiz.
	Current int

	// MistakeCursor is the position in the ascending wrong-index list
	// while in ModeMistakes.
	MistakeCursor int

	// Explanation is the pending tutoring text after a wrong answer, nil
	// otherwise. While set, the submit action is replaced by "next".
	Explanation *string
}

// NewSession returns the initial state: overview, position zero, nothing
// pending.
func NewSession() Session {
	return Session{Mode: ModeOverview}
}

// SelectQuestion jumps from the grid into the quiz at question i.
func (s Session) SelectQuestion(i int) Session {
	s.Mode = ModeQuiz
	s.Current = i
	s.Explanation = nil
	return s
}

// Continue resumes drilling at the lowest unattempted index. When every
// index already has history the session stays in the overview and ok is
// false (the caller shows the completion banner).
func (s Session) Continue(status map[int]bool, total int) (Session, bool) {
	next := NextTodo(status, total)
	if next < 0 {
		return s, false
	}
	return s.SelectQuestion(next), true
}

// StartMistakeReview enters the mistake review with the cursor reset.
func (s Session) StartMistakeReview() Session {
	s.Mode = ModeMistakes
	s.MistakeCursor = 0
	s.Explanation = nil
	return s
}

// ReturnToOverview leaves any view for the grid, dropping pending state.
func (s Session) ReturnToOverview() Session {
	s.Mode = ModeOverview
	s.Explanation = nil
	return s
}

// MarkWrong records the explanation for the just-missed question. The
// session stays on the same question in a sub-state where the only
// forward action is Next.
func (s Session) MarkWrong(explanation string) Session {
	s.Explanation = &explanation
	return s
}

// AdvanceAfterCorrect moves on after a correct quiz-mode answer:
// the next question when one exists, the overview (done=true) after the
// last one. In mistake review a correct answer does not move the cursor;
// the re-fetched, shrunken wrong list advances the view by itself.
func (s Session) AdvanceAfterCorrect(total int) (Session, bool) {
	if s.Mode != ModeQuiz {
		return s, false
	}
	if s.Current+1 < total {
		s.Current++
		return s, false
	}
	return s.ReturnToOverview(), true
}

// Next acknowledges a shown explanation and moves forward. Quiz mode
// advances like a correct answer; mistake review moves the cursor to the
// following wrong entry.
func (s Session) Next(total int) (Session, bool) {
	s.Explanation = nil
	if s.Mode == ModeMistakes {
		s.MistakeCursor++
		return s, false
	}
	return s.AdvanceAfterCorrect(total)
}

// ClampMistakeCursor keeps the cursor valid after the wrong list is
// re-fetched. A cursor that ran off the end (the list shrank) wraps to 0
// rather than erroring.
func (s Session) ClampMistakeCursor(wrongCount int) Session {
	if s.MistakeCursor >= wrongCount {
		s.MistakeCursor = 0
	}
	return s
}

// Judge compares a selected letter against the answer key. The comparison
// is exact; parse uppercases both sides at load time.
func Judge(selected, correct string) bool {
	return selected == correct
}

// NextTodo returns the lowest question index with no history entry, or -1
// when all of 0..total-1 are present.
func NextTodo(status map[int]bool, total int) int {
	for i := 0; i < total; i++ {
		if _, done := status[i]; !done {
			return i
		}
	}
	return -1
}
