package overview

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/nitrazepam01/jmx-history/internal/courseware"
	"github.com/nitrazepam01/jmx-history/internal/explain"
	"github.com/nitrazepam01/jmx-history/internal/history"
	"github.com/nitrazepam01/jmx-history/internal/router"
)

func testQuestions() []courseware.Question {
	mk := func(idx int) courseware.Question {
		return courseware.Question{
			Index: idx,
			Text:  "question",
			Options: []courseware.Option{
				{Letter: "A", Text: "one"},
				{Letter: "B", Text: "two"},
			},
			Correct: "A",
		}
	}
	return []courseware.Question{mk(0), mk(1), mk(2), mk(3)}
}

func testOverview() (*OverviewScreen, *history.MemoryStore) {
	store := history.NewMemoryStore()
	s := New(testQuestions(), store, explain.NewGenerator(nil, ""), "user_01", "sess-1")
	return s, store
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func TestOverview_InitFetchesStatus(t *testing.T) {
	s, _ := testOverview()
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("Init should fetch the history snapshot")
	}
	msg, ok := cmd().(statusLoadedMsg)
	if !ok {
		t.Fatalf("expected statusLoadedMsg, got %T", cmd())
	}
	if msg.Err != nil {
		t.Errorf("unexpected error: %v", msg.Err)
	}
}

func TestOverview_StatusDrivesMenuLabels(t *testing.T) {
	s, _ := testOverview()
	scr, _ := s.Update(statusLoadedMsg{Status: history.StatusMap{0: true, 1: false}})
	os := scr.(*OverviewScreen)

	if os.summary.Completed != 2 {
		t.Errorf("Completed = %d, want 2", os.summary.Completed)
	}
	if os.summary.AccuracyPct != 50 {
		t.Errorf("AccuracyPct = %d, want 50", os.summary.AccuracyPct)
	}

	items := os.menu.Items
	if len(items) != 2 {
		t.Fatalf("menu items = %d, want 2", len(items))
	}
	// Indices 0 and 1 both have history, so drilling resumes at index 2.
	if want := "CONTINUE DRILLING (from question 3)"; items[0].Label != want {
		t.Errorf("continue label = %q, want %q", items[0].Label, want)
	}
	if items[0].Disabled {
		t.Error("continue should be enabled with questions left")
	}
	if want := "REVIEW MISTAKES (1)"; items[1].Label != want {
		t.Errorf("review label = %q, want %q", items[1].Label, want)
	}
	if items[1].Disabled {
		t.Error("review should be enabled with one mistake")
	}
}

func TestOverview_NoMistakesDisablesReview(t *testing.T) {
	s, _ := testOverview()
	scr, _ := s.Update(statusLoadedMsg{Status: history.StatusMap{0: true}})
	os := scr.(*OverviewScreen)
	if !strings.Contains(os.menu.Items[1].Label, "(0)") {
		t.Errorf("review label = %q", os.menu.Items[1].Label)
	}
	if !os.menu.Items[1].Disabled {
		t.Error("review must be disabled with zero mistakes")
	}
}

func TestOverview_AllDoneDisablesContinue(t *testing.T) {
	s, _ := testOverview()
	status := history.StatusMap{0: true, 1: true, 2: true, 3: true}
	scr, _ := s.Update(statusLoadedMsg{Status: status})
	os := scr.(*OverviewScreen)
	if !os.menu.Items[0].Disabled {
		t.Error("continue must be disabled when the bank is finished")
	}
	view := os.View(100, 40)
	if !strings.Contains(view, "Every question") {
		t.Error("expected the completion banner")
	}
}

func TestOverview_StoreFailureDegrades(t *testing.T) {
	s, _ := testOverview()
	scr, _ := s.Update(statusLoadedMsg{Status: history.StatusMap{}, Err: history.ErrStoreUnavailable})
	os := scr.(*OverviewScreen)
	if !os.storeDown {
		t.Error("expected storeDown flag")
	}
	if os.summary.Completed != 0 {
		t.Errorf("Completed = %d, want 0 on degraded snapshot", os.summary.Completed)
	}
	if !strings.Contains(os.View(100, 40), "unreachable") {
		t.Error("expected the store warning banner")
	}
}

func TestOverview_ResumeRefetches(t *testing.T) {
	s, _ := testOverview()
	s.Update(statusLoadedMsg{Status: history.StatusMap{}})
	scr, cmd := s.Update(router.ResumedMsg{})
	os := scr.(*OverviewScreen)
	if !os.loading {
		t.Error("resume should flip back to loading")
	}
	if cmd == nil {
		t.Fatal("resume should re-fetch the snapshot")
	}
	if _, ok := cmd().(statusLoadedMsg); !ok {
		t.Error("expected a statusLoadedMsg from the refetch")
	}
}

func TestOverview_GridSelectionPushesDrill(t *testing.T) {
	s, _ := testOverview()
	s.Update(statusLoadedMsg{Status: history.StatusMap{}})

	s.Update(specialKey(tea.KeyTab))
	if !s.gridFocus {
		t.Fatal("tab should move focus to the grid")
	}
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("enter on a grid cell should push the drill screen")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Errorf("expected PushScreenMsg, got %T", cmd())
	}
}

func TestOverview_GridBlocksUnusableQuestion(t *testing.T) {
	qs := testQuestions()
	qs[0].Options = nil
	store := history.NewMemoryStore()
	s := New(qs, store, explain.NewGenerator(nil, ""), "user_01", "sess-1")
	s.Update(statusLoadedMsg{Status: history.StatusMap{}})

	s.Update(specialKey(tea.KeyTab))
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("selecting an unusable question must not open it")
	}
	if !strings.Contains(s.View(100, 40), "failed to parse") {
		t.Error("expected the unusable-question warning")
	}
}

func TestOverview_MenuEnterPushesDrill(t *testing.T) {
	s, _ := testOverview()
	s.Update(statusLoadedMsg{Status: history.StatusMap{}})
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("continue action should produce a command")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Errorf("expected PushScreenMsg, got %T", cmd())
	}
}
