package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/careerquest/internal/ui/layout"
)

// Screen is one step of the terminal flow. The router keeps them on a stack
// and the app draws the shared header and footer around View.
type Screen interface {
	// Init returns the command to run when the screen becomes active, such
	// as opening a quiz session.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the localized screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is optionally implemented by screens that show progress
// next to the language in the header.
type StatusProvider interface {
	Status() string
}

// Factory builds a screen on demand, typically the one shown after the
// current flow step.
type Factory func() Screen
