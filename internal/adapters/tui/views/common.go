package views

import (
	"roadmap/internal/application"
	"roadmap/internal/application/commands"
)

// Services are the application components the views act on
type Services struct {
	Store commands.CatalogWriter
	Timer commands.Timer
	Notes *application.NotesManager
}

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// contentWidth is the usable width inside styles.App padding
func (s *ViewState) contentWidth() int {
	if s.Width <= 8 {
		return 72
	}
	return s.Width - 6
}
