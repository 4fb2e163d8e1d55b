package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/nitrazepam01/jmx-history/internal/ui/layout"
)

// Screen is one navigable view (overview grid, active quiz, mistake
// review).
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider lets a screen override the default footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
