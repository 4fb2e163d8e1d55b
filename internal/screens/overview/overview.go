package overview

import (
	"context"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nitrazepam01/jmx-history/internal/courseware"
	"github.com/nitrazepam01/jmx-history/internal/explain"
	"github.com/nitrazepam01/jmx-history/internal/history"
	"github.com/nitrazepam01/jmx-history/internal/quiz"
	"github.com/nitrazepam01/jmx-history/internal/router"
	"github.com/nitrazepam01/jmx-history/internal/screen"
	"github.com/nitrazepam01/jmx-history/internal/screens/drill"
	"github.com/nitrazepam01/jmx-history/internal/ui/components"
	"github.com/nitrazepam01/jmx-history/internal/ui/layout"
	"github.com/nitrazepam01/jmx-history/internal/ui/theme"
)

// statusLoadedMsg carries a fresh history snapshot.
type statusLoadedMsg struct {
	Status history.StatusMap
	Err    error
}

// OverviewScreen is the question-bank dashboard: metrics, the continue
// and mistake-review actions, and the navigable question grid.
type OverviewScreen struct {
	questions []courseware.Question
	store     history.Store
	gen       *explain.Generator
	userID    string
	sessionID string

	status    history.StatusMap
	summary   quiz.Summary
	storeDown bool
	loading   bool

	menu      components.Menu
	grid      components.Grid
	gridFocus bool
}

var _ screen.Screen = (*OverviewScreen)(nil)
var _ screen.KeyHintProvider = (*OverviewScreen)(nil)

// New creates the overview screen.
func New(questions []courseware.Question, store history.Store, gen *explain.Generator, userID, sessionID string) *OverviewScreen {
	s := &OverviewScreen{
		questions: questions,
		store:     store,
		gen:       gen,
		userID:    userID,
		sessionID: sessionID,
		loading:   true,
		grid:      components.NewGrid(len(questions)),
	}
	s.grid.Unusable = unusableSet(questions)
	s.applyStatus(history.StatusMap{})
	return s
}

func (s *OverviewScreen) Init() tea.Cmd {
	return s.fetchStatus()
}

func (s *OverviewScreen) Title() string {
	return "Question Bank"
}

func (s *OverviewScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch focus"},
		{Key: "↑↓←→", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Summary exposes the current aggregation for the header counters.
func (s *OverviewScreen) Summary() quiz.Summary {
	return s.summary
}

func (s *OverviewScreen) fetchStatus() tea.Cmd {
	return func() tea.Msg {
		status, err := s.store.FetchStatus(context.Background(), s.userID)
		return statusLoadedMsg{Status: status, Err: err}
	}
}

// applyStatus recomputes the summary and rebuilds the action menu, whose
// labels and enablement depend on the snapshot.
func (s *OverviewScreen) applyStatus(status history.StatusMap) {
	s.status = status
	s.summary = quiz.Summarize(len(s.questions), status)
	s.grid.Status = status

	next := quiz.NextTodo(status, len(s.questions))

	continueLabel := "CONTINUE DRILLING"
	if next >= 0 {
		continueLabel = fmt.Sprintf("CONTINUE DRILLING (from question %d)", next+1)
	}
	reviewLabel := fmt.Sprintf("REVIEW MISTAKES (%d)", s.summary.Mistakes())

	s.menu = components.NewMenu([]components.MenuItem{
		{
			Label:    continueLabel,
			Disabled: next < 0,
			Action: func() tea.Cmd {
				return s.pushDrill(next)
			},
		},
		{
			Label:    reviewLabel,
			Disabled: s.summary.Mistakes() == 0,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: drill.NewReview(s.questions, s.store, s.gen, s.userID, s.sessionID),
					}
				}
			},
		},
	})
}

func (s *OverviewScreen) pushDrill(index int) tea.Cmd {
	return func() tea.Msg {
		return router.PushScreenMsg{
			Screen: drill.New(s.questions, s.store, s.gen, s.userID, s.sessionID, index),
		}
	}
}

func (s *OverviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statusLoadedMsg:
		s.loading = false
		s.storeDown = msg.Err != nil
		s.applyStatus(msg.Status)
		return s, nil

	case router.ResumedMsg:
		// A drill run just ended; the snapshot is stale.
		s.loading = true
		return s, s.fetchStatus()

	case tea.KeyMsg:
		if msg.String() == "tab" {
			s.gridFocus = !s.gridFocus
			return s, nil
		}
		if s.gridFocus {
			var idx int
			var selected bool
			s.grid, idx, selected = s.grid.Update(msg)
			if selected {
				if s.questions[idx].Unusable() {
					return s, nil
				}
				return s, s.pushDrill(idx)
			}
			return s, nil
		}
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *OverviewScreen) View(width, height int) string {
	if s.loading {
		return layout.Center(theme.Hint.Render("Loading history..."), width, height)
	}

	var b []string

	b = append(b, s.metricsView(width))

	if s.storeDown {
		b = append(b, theme.Warning.Render("⚠ History store unreachable — progress shown as empty, attempts may not save."))
	}
	if bad := courseware.Warnings(s.questions); len(bad) > 0 {
		b = append(b, theme.Warning.Render(fmt.Sprintf("⚠ %d question(s) failed to parse options and can't be answered (marked !).", len(bad))))
	}

	if quiz.NextTodo(s.status, len(s.questions)) < 0 {
		b = append(b, theme.Correct.Render("🎉 Every question in the bank is done. Well played!"))
	}

	b = append(b, "")
	b = append(b, s.menu.View(!s.gridFocus))
	b = append(b, theme.Subtitle.Render("All questions"))
	b = append(b, s.grid.View(s.gridFocus))

	content := lipgloss.JoinVertical(lipgloss.Left, b...)
	return layout.Center(content, width, height)
}

func (s *OverviewScreen) metricsView(width int) string {
	sum := s.summary

	completed := theme.Card.Render(fmt.Sprintf("Completed\n%d / %d", sum.Completed, sum.Total))
	accuracy := theme.Card.Render(fmt.Sprintf("Accuracy\n%d%%", sum.AccuracyPct))
	mistakes := theme.Card.Render(fmt.Sprintf("Mistakes\n%d", sum.Mistakes()))

	row := lipgloss.JoinHorizontal(lipgloss.Top, completed, "  ", accuracy, "  ", mistakes)

	barWidth := lipgloss.Width(row)
	if barWidth > width-4 {
		barWidth = width - 4
	}
	var pct float64
	if sum.Total > 0 {
		pct = float64(sum.Completed) / float64(sum.Total)
	}
	bar := components.NewProgressBar("", pct, true, barWidth).View()

	return lipgloss.JoinVertical(lipgloss.Left, row, "", bar)
}

func unusableSet(questions []courseware.Question) map[int]bool {
	set := make(map[int]bool)
	for _, q := range questions {
		if q.Unusable() {
			set[q.Index] = true
		}
	}
	return set
}
