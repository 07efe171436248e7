package views

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"roadmap/internal/domain"
)

// View switching messages
type (
	SwitchToDashboardMsg struct{}
	SwitchToHelpMsg      struct{}
	SwitchToFocusMsg     struct{}
	SwitchToStatsMsg     struct{}

	SwitchToAddMsg struct {
		SectionIndex int
		SectionTitle string
	}

	SwitchToDeleteMsg struct {
		Target domain.TopicRef
	}

	SwitchToNotesMsg struct {
		At domain.Coordinate
	}
)

// ActionDoneMsg reports a finished action
type ActionDoneMsg struct {
	Message string
}

// ActionErrMsg reports a failed action
type ActionErrMsg struct {
	Err error
}

// EditNotesExternallyMsg asks the app to edit a topic's notes in $EDITOR
type EditNotesExternallyMsg struct {
	At    domain.Coordinate
	Title string
	Notes string
}

// ExportMsg asks the app to export progress, as json or as an xlsx report
type ExportMsg struct {
	Report bool
}

// run executes an action off the update loop and reports its outcome
func run(action func(ctx context.Context) (string, error)) tea.Cmd {
	return func() tea.Msg {
		msg, err := action(context.Background())
		if err != nil {
			return ActionErrMsg{Err: err}
		}
		return ActionDoneMsg{Message: msg}
	}
}

func send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
