package drill

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/nitrazepam01/jmx-history/internal/courseware"
	"github.com/nitrazepam01/jmx-history/internal/explain"
	"github.com/nitrazepam01/jmx-history/internal/history"
	"github.com/nitrazepam01/jmx-history/internal/router"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testQuestions() []courseware.Question {
	mk := func(idx int, text string) courseware.Question {
		return courseware.Question{
			Index: idx,
			Text:  text,
			Options: []courseware.Option{
				{Letter: "A", Text: "right"},
				{Letter: "B", Text: "wrong"},
			},
			Correct: "A",
		}
	}
	return []courseware.Question{mk(0, "q0"), mk(1, "q1"), mk(2, "q2")}
}

func testDrill(start int) (*DrillScreen, *history.MemoryStore) {
	store := history.NewMemoryStore()
	gen := explain.NewGenerator(nil, "")
	s := New(testQuestions(), store, gen, "user_01", "sess-1", start)
	return s, store
}

func TestDrill_StartsAtGivenQuestion(t *testing.T) {
	s, _ := testDrill(1)
	if s.sess.Current != 1 {
		t.Errorf("Current = %d, want 1", s.sess.Current)
	}
	if s.Title() != "Drilling" {
		t.Errorf("Title = %q", s.Title())
	}
	if s.View(80, 24) == "" {
		t.Error("expected non-empty view")
	}
}

func TestDrill_CorrectAnswerRecordsAndAdvances(t *testing.T) {
	s, store := testDrill(0)

	_, cmd := s.Update(keyPress('a'))
	if cmd != nil {
		t.Fatal("selection alone should not produce a command")
	}
	scr, cmd := s.Update(specialKey(tea.KeyEnter))
	ds := scr.(*DrillScreen)
	if cmd == nil {
		t.Fatal("expected save + advance commands after submit")
	}
	if !ds.advancing {
		t.Error("expected feedback state after a correct answer")
	}

	// Drain the batch so the attempt write runs.
	drain(t, cmd)
	attempts := store.Attempts()
	if len(attempts) != 1 {
		t.Fatalf("attempts = %d, want 1", len(attempts))
	}
	if !attempts[0].IsCorrect || attempts[0].SelectedOption != "A" {
		t.Errorf("attempt = %+v", attempts[0])
	}
	if attempts[0].SessionID != "sess-1" {
		t.Errorf("session id = %q", attempts[0].SessionID)
	}

	scr, _ = ds.Update(advanceMsg{})
	ds = scr.(*DrillScreen)
	if ds.sess.Current != 1 {
		t.Errorf("Current = %d, want 1 after advance", ds.sess.Current)
	}
	if ds.advancing {
		t.Error("feedback should be cleared after advancing")
	}
}

func TestDrill_WrongAnswerWaitsForExplanation(t *testing.T) {
	s, store := testDrill(0)

	s.Update(keyPress('b'))
	scr, cmd := s.Update(specialKey(tea.KeyEnter))
	ds := scr.(*DrillScreen)
	if !ds.explaining {
		t.Fatal("expected explaining state after a wrong answer")
	}
	drain(t, cmd)
	if got := store.Attempts(); len(got) != 1 || got[0].IsCorrect {
		t.Fatalf("attempts = %+v", got)
	}

	scr, _ = ds.Update(explanationMsg{Text: "the explanation"})
	ds = scr.(*DrillScreen)
	if ds.explaining {
		t.Error("explaining should clear once the text arrives")
	}
	if ds.sess.Explanation == nil || *ds.sess.Explanation != "the explanation" {
		t.Errorf("Explanation = %v", ds.sess.Explanation)
	}

	// Keys other than next/esc are ignored while the explanation is up.
	scr, _ = ds.Update(keyPress('a'))
	ds = scr.(*DrillScreen)
	if ds.sess.Explanation == nil {
		t.Error("explanation dismissed by an unrelated key")
	}

	scr, _ = ds.Update(keyPress('n'))
	ds = scr.(*DrillScreen)
	if ds.sess.Explanation != nil {
		t.Error("explanation should clear on next")
	}
	if ds.sess.Current != 1 {
		t.Errorf("Current = %d, want 1", ds.sess.Current)
	}
}

func TestDrill_LastQuestionPopsOnAdvance(t *testing.T) {
	s, _ := testDrill(2)
	s.Update(keyPress('a'))
	s.Update(specialKey(tea.KeyEnter))
	_, cmd := s.Update(advanceMsg{})
	if cmd == nil {
		t.Fatal("expected a pop command at end of bank")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestDrill_SaveFailureShowsWarning(t *testing.T) {
	s, _ := testDrill(0)
	scr, _ := s.Update(attemptSavedMsg{Err: history.ErrStoreUnavailable})
	ds := scr.(*DrillScreen)
	if !ds.storeWarn {
		t.Error("expected storeWarn after failed save")
	}
	scr, _ = ds.Update(attemptSavedMsg{Err: nil})
	ds = scr.(*DrillScreen)
	if ds.storeWarn {
		t.Error("warning should clear on a successful save")
	}
}

func TestDrill_EscPops(t *testing.T) {
	s, _ := testDrill(0)
	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a command on esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on esc")
	}
}

func TestReview_FetchesAndLandsOnFirstMistake(t *testing.T) {
	store := history.NewMemoryStore()
	s := NewReview(testQuestions(), store, explain.NewGenerator(nil, ""), "user_01", "sess-1")
	if !s.loading {
		t.Fatal("review should start loading")
	}
	if s.Init() == nil {
		t.Fatal("review Init should fetch status")
	}

	scr, _ := s.Update(statusMsg{Status: history.StatusMap{0: true, 1: false, 2: false}})
	ds := scr.(*DrillScreen)
	if ds.loading {
		t.Error("loading should clear")
	}
	if len(ds.wrong) != 2 || ds.wrong[0] != 1 || ds.wrong[1] != 2 {
		t.Errorf("wrong = %v", ds.wrong)
	}
	q, ok := ds.current()
	if !ok || q.Index != 1 {
		t.Errorf("current = %+v, ok=%v, want question 1", q, ok)
	}
	if ds.Title() != "Mistake Review" {
		t.Errorf("Title = %q", ds.Title())
	}
}

func TestReview_ClearedWhenNoMistakes(t *testing.T) {
	store := history.NewMemoryStore()
	s := NewReview(testQuestions(), store, explain.NewGenerator(nil, ""), "user_01", "sess-1")
	scr, _ := s.Update(statusMsg{Status: history.StatusMap{0: true, 1: true, 2: true}})
	ds := scr.(*DrillScreen)
	if !ds.cleared {
		t.Error("expected cleared state with no mistakes")
	}
	if ds.View(80, 24) == "" {
		t.Error("expected cleared view")
	}
	_, cmd := ds.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("enter should pop from the cleared state")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestReview_FailedFetchShowsOutageNotCleared(t *testing.T) {
	store := history.NewMemoryStore()
	s := NewReview(testQuestions(), store, explain.NewGenerator(nil, ""), "user_01", "sess-1")

	scr, _ := s.Update(statusMsg{Status: history.StatusMap{}, Err: history.ErrStoreUnavailable})
	ds := scr.(*DrillScreen)
	if ds.cleared {
		t.Error("an outage must not count as a cleared mistake list")
	}
	if !ds.storeWarn {
		t.Error("expected storeWarn after a failed fetch")
	}
	view := ds.View(80, 24)
	if !strings.Contains(view, "unreachable") {
		t.Error("expected the store-unreachable warning in the view")
	}
	if strings.Contains(view, "cleared") {
		t.Errorf("view claims success during an outage:\n%s", view)
	}

	// A later successful fetch with no mistakes really is cleared.
	scr, _ = ds.Update(statusMsg{Status: history.StatusMap{0: true}})
	ds = scr.(*DrillScreen)
	if !ds.cleared {
		t.Error("expected cleared state once a good snapshot arrives empty")
	}
	if ds.storeWarn {
		t.Error("warning should clear with the store back up")
	}
}

func TestReview_CursorClampsWhenListShrinks(t *testing.T) {
	store := history.NewMemoryStore()
	s := NewReview(testQuestions(), store, explain.NewGenerator(nil, ""), "user_01", "sess-1")
	s.Update(statusMsg{Status: history.StatusMap{1: false, 2: false}})

	// Point at the second (last) mistake, then fix it: the refreshed
	// snapshot has one mistake left and the cursor wraps to the front.
	s.sess.MistakeCursor = 1

	scr, _ := s.Update(statusMsg{Status: history.StatusMap{1: false, 2: true}})
	ds := scr.(*DrillScreen)
	if ds.sess.MistakeCursor != 0 {
		t.Errorf("MistakeCursor = %d, want 0 after clamp", ds.sess.MistakeCursor)
	}
	q, _ := ds.current()
	if q.Index != 1 {
		t.Errorf("current question = %d, want 1", q.Index)
	}
}

func TestReview_CorrectAnswerRefetches(t *testing.T) {
	store := history.NewMemoryStore()
	s := NewReview(testQuestions(), store, explain.NewGenerator(nil, ""), "user_01", "sess-1")
	s.Update(statusMsg{Status: history.StatusMap{1: false}})

	s.Update(keyPress('a'))
	scr, _ := s.Update(specialKey(tea.KeyEnter))
	ds := scr.(*DrillScreen)
	_, cmd := ds.Update(advanceMsg{})
	if cmd == nil {
		t.Fatal("review advance should re-fetch status")
	}
	msg := cmd()
	if _, ok := msg.(statusMsg); !ok {
		t.Errorf("expected statusMsg, got %T", msg)
	}
}

func TestDrill_UnusableQuestionCanBeSkipped(t *testing.T) {
	qs := testQuestions()
	qs[0].Options = nil // parse failure leaves no options
	store := history.NewMemoryStore()
	s := New(qs, store, explain.NewGenerator(nil, ""), "user_01", "sess-1", 0)

	if s.View(80, 24) == "" {
		t.Error("expected warning view for unusable question")
	}
	scr, _ := s.Update(keyPress('n'))
	ds := scr.(*DrillScreen)
	if ds.sess.Current != 1 {
		t.Errorf("Current = %d, want 1 after skip", ds.sess.Current)
	}
	if len(store.Attempts()) != 0 {
		t.Error("skipping must not record an attempt")
	}
}

// drain runs a command tree, feeding nothing back, so side effects like
// store writes happen.
func drain(t *testing.T, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		return
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			drain(t, c)
		}
	}
}
