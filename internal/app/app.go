package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/nitrazepam01/jmx-history/internal/courseware"
	"github.com/nitrazepam01/jmx-history/internal/explain"
	"github.com/nitrazepam01/jmx-history/internal/history"
	"github.com/nitrazepam01/jmx-history/internal/router"
	"github.com/nitrazepam01/jmx-history/internal/screen"
	"github.com/nitrazepam01/jmx-history/internal/screens/overview"
	"github.com/nitrazepam01/jmx-history/internal/ui/layout"
)

// Options carries the wired-up dependencies for one program run.
type Options struct {
	Questions []courseware.Question
	Store     history.Store
	Explainer *explain.Generator
	UserID    string
	SessionID string
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router   *router.Router
	overview *overview.OverviewScreen
	width    int
	height   int
}

// newAppModel creates an AppModel rooted at the overview screen.
func newAppModel(opts Options) AppModel {
	ov := overview.New(opts.Questions, opts.Store, opts.Explainer, opts.UserID, opts.SessionID)
	return AppModel{
		router:   router.New(ov),
		overview: ov,
	}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	sum := m.overview.Summary()
	header := layout.RenderHeader(title, sum.Completed, sum.Total, sum.AccuracyPct, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if provider, ok := active.(screen.KeyHintProvider); ok {
		if hints := provider.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
