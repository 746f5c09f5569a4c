// Package state holds UI state types for the TUI.
package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/tesso57/akita-homepage/internal/application/usecase"
)

// ModelState holds the presentation state for the TUI.
type ModelState struct {
	Session       Session
	Previous      Session
	Sections      list.Model
	Viewport      viewport.Model
	Help          help.Model
	Keys          KeyMap
	Width         int
	Height        int
	Page          *usecase.Page
	StatusMessage string
	Err           error
}
