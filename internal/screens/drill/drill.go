package drill

import (
	"context"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/nitrazepam01/jmx-history/internal/courseware"
	"github.com/nitrazepam01/jmx-history/internal/explain"
	"github.com/nitrazepam01/jmx-history/internal/history"
	"github.com/nitrazepam01/jmx-history/internal/quiz"
	"github.com/nitrazepam01/jmx-history/internal/router"
	"github.com/nitrazepam01/jmx-history/internal/screen"
	"github.com/nitrazepam01/jmx-history/internal/ui/components"
	"github.com/nitrazepam01/jmx-history/internal/ui/layout"
	"github.com/nitrazepam01/jmx-history/internal/ui/theme"
)

// feedbackDelay is how long the "Correct!" banner stays up before the
// next question loads.
const feedbackDelay = 1200 * time.Millisecond

// DrillScreen runs one question at a time, in either sequential-drill or
// mistake-review mode. The answer flow is the same in both: record the
// attempt first, then branch on correctness.
type DrillScreen struct {
	questions []courseware.Question
	store     history.Store
	gen       *explain.Generator
	userID    string
	sessionID string
	review    bool

	sess   quiz.Session
	wrong  []int // review mode: ascending wrong-question indices
	picker components.ChoicePicker
	spin   spinner.Model

	loading    bool // review mode: waiting for the first snapshot
	explaining bool // waiting on the tutor
	advancing  bool // correct-answer feedback is up
	storeWarn  bool // last attempt write failed
	cleared    bool // review mode: the mistake list is empty
}

var _ screen.Screen = (*DrillScreen)(nil)
var _ screen.KeyHintProvider = (*DrillScreen)(nil)

// New creates a drill screen starting at question index start.
func New(questions []courseware.Question, store history.Store, gen *explain.Generator, userID, sessionID string, start int) *DrillScreen {
	s := newScreen(questions, store, gen, userID, sessionID)
	s.sess = quiz.NewSession().SelectQuestion(start)
	s.loadPicker()
	return s
}

// NewReview creates a drill screen over the user's current mistakes. The
// mistake list is fetched in Init, not passed in, so the screen always
// reviews against a fresh snapshot.
func NewReview(questions []courseware.Question, store history.Store, gen *explain.Generator, userID, sessionID string) *DrillScreen {
	s := newScreen(questions, store, gen, userID, sessionID)
	s.review = true
	s.loading = true
	s.sess = quiz.NewSession().StartMistakeReview()
	return s
}

func newScreen(questions []courseware.Question, store history.Store, gen *explain.Generator, userID, sessionID string) *DrillScreen {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Hint
	return &DrillScreen{
		questions: questions,
		store:     store,
		gen:       gen,
		userID:    userID,
		sessionID: sessionID,
		spin:      sp,
	}
}

func (s *DrillScreen) Init() tea.Cmd {
	if s.review {
		return s.fetchStatus()
	}
	return nil
}

func (s *DrillScreen) Title() string {
	if s.review {
		return "Mistake Review"
	}
	return "Drilling"
}

func (s *DrillScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.explaining:
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	case s.sess.Explanation != nil:
		return []layout.KeyHint{
			{Key: "Enter/N", Description: "Next"},
			{Key: "Esc", Description: "Back"},
		}
	case s.cleared:
		return []layout.KeyHint{{Key: "Enter/Esc", Description: "Back to overview"}}
	default:
		return []layout.KeyHint{
			{Key: "↑↓ or A-D", Description: "Choose"},
			{Key: "Enter", Description: "Submit"},
			{Key: "Esc", Description: "Back"},
		}
	}
}

// current resolves the active question under either mode.
func (s *DrillScreen) current() (courseware.Question, bool) {
	if s.review {
		if s.sess.MistakeCursor >= 0 && s.sess.MistakeCursor < len(s.wrong) {
			return s.questions[s.wrong[s.sess.MistakeCursor]], true
		}
		return courseware.Question{}, false
	}
	if s.sess.Current >= 0 && s.sess.Current < len(s.questions) {
		return s.questions[s.sess.Current], true
	}
	return courseware.Question{}, false
}

// loadPicker rebuilds the answer picker for the active question.
func (s *DrillScreen) loadPicker() {
	q, ok := s.current()
	if !ok || q.Unusable() {
		s.picker = components.ChoicePicker{}
		return
	}
	choices := make([]components.Choice, 0, len(q.Options))
	for _, o := range q.Options {
		choices = append(choices, components.Choice{Letter: o.Letter, Text: o.Text})
	}
	s.picker = components.NewChoicePicker(q.Text, choices, q.Correct)
}

func (s *DrillScreen) fetchStatus() tea.Cmd {
	return func() tea.Msg {
		status, err := s.store.FetchStatus(context.Background(), s.userID)
		return statusMsg{Status: status, Err: err}
	}
}

func (s *DrillScreen) saveAttempt(q courseware.Question, letter string, correct bool) tea.Cmd {
	return func() tea.Msg {
		err := s.store.RecordAttempt(context.Background(), history.Attempt{
			UserID:         s.userID,
			QuestionIndex:  q.Index,
			SelectedOption: letter,
			IsCorrect:      correct,
			SessionID:      s.sessionID,
		})
		return attemptSavedMsg{Err: err}
	}
}

func (s *DrillScreen) explainCmd(q courseware.Question, letter string) tea.Cmd {
	return func() tea.Msg {
		userText, ok := q.OptionText(letter)
		if !ok {
			userText = "unknown"
		}
		correctText, ok := q.OptionText(q.Correct)
		if !ok {
			correctText = "unknown"
		}
		text := s.gen.Explain(context.Background(), explain.Input{
			Question:      q.Text,
			UserChoice:    letter + ". " + userText,
			CorrectChoice: q.Correct + ". " + correctText,
		})
		return explanationMsg{Text: text}
	}
}

func advanceAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return advanceMsg{}
	})
}

func (s *DrillScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statusMsg:
		return s.handleStatus(msg)

	case attemptSavedMsg:
		s.storeWarn = msg.Err != nil
		return s, nil

	case explanationMsg:
		s.explaining = false
		s.sess = s.sess.MarkWrong(msg.Text)
		return s, nil

	case advanceMsg:
		return s.handleAdvance()

	case spinner.TickMsg:
		if !s.explaining {
			return s, nil
		}
		var cmd tea.Cmd
		s.spin, cmd = s.spin.Update(msg)
		return s, cmd

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

// handleStatus applies a fresh snapshot in review mode: recompute the
// wrong list, clamp the cursor, and land on the next mistake. A failed
// fetch yields an empty snapshot too; that is an outage, never "cleared".
func (s *DrillScreen) handleStatus(msg statusMsg) (screen.Screen, tea.Cmd) {
	s.loading = false
	s.advancing = false
	s.storeWarn = msg.Err != nil

	sum := quiz.Summarize(len(s.questions), msg.Status)
	s.wrong = sum.WrongIndices
	s.sess = s.sess.ClampMistakeCursor(len(s.wrong))
	if len(s.wrong) == 0 {
		s.cleared = msg.Err == nil
		return s, nil
	}
	s.cleared = false
	s.loadPicker()
	return s, nil
}

// handleAdvance fires after the correct-answer feedback delay.
func (s *DrillScreen) handleAdvance() (screen.Screen, tea.Cmd) {
	if s.review {
		// The answered question just left the mistake list. Re-fetch
		// rather than patch locally so the list always mirrors the store.
		return s, s.fetchStatus()
	}
	next, done := s.sess.AdvanceAfterCorrect(len(s.questions))
	s.sess = next
	s.advancing = false
	if done {
		return s, s.pop()
	}
	s.loadPicker()
	return s, nil
}

func (s *DrillScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if key == "esc" {
		return s, s.pop()
	}

	if s.cleared {
		if key == "enter" {
			return s, s.pop()
		}
		return s, nil
	}

	if s.loading || s.explaining || s.advancing {
		return s, nil
	}

	// An explanation is up: the only action is "next".
	if s.sess.Explanation != nil {
		if key == "enter" || key == "n" {
			return s.handleNext()
		}
		return s, nil
	}

	q, ok := s.current()
	if !ok {
		return s, nil
	}
	if q.Unusable() {
		// Nothing to answer. Sequential mode can skip past it.
		if !s.review && (key == "n" || key == "enter") {
			next := s.sess.Current + 1
			if next >= len(s.questions) {
				return s, s.pop()
			}
			s.sess = s.sess.SelectQuestion(next)
			s.loadPicker()
		}
		return s, nil
	}

	var submitted bool
	s.picker, submitted = s.picker.Update(msg)
	if !submitted {
		return s, nil
	}
	return s.handleSubmit(q)
}

// handleSubmit records the attempt, then branches: correct answers get a
// short feedback pause, wrong ones wait on the tutor.
func (s *DrillScreen) handleSubmit(q courseware.Question) (screen.Screen, tea.Cmd) {
	letter := s.picker.ChosenLetter
	correct := quiz.Judge(letter, q.Correct)

	save := s.saveAttempt(q, letter, correct)
	if correct {
		s.advancing = true
		return s, tea.Batch(save, advanceAfter(feedbackDelay))
	}
	s.explaining = true
	return s, tea.Batch(save, s.spin.Tick, s.explainCmd(q, letter))
}

// handleNext leaves the explanation and moves on.
func (s *DrillScreen) handleNext() (screen.Screen, tea.Cmd) {
	next, done := s.sess.Next(len(s.questions))
	s.sess = next
	if s.review {
		// Cursor moved; re-snapshot so the list and clamp stay honest.
		s.loading = true
		return s, s.fetchStatus()
	}
	if done {
		return s, s.pop()
	}
	s.loadPicker()
	return s, nil
}

func (s *DrillScreen) pop() tea.Cmd {
	return func() tea.Msg {
		return router.PopScreenMsg{}
	}
}
