package views

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"roadmap/internal/adapters/tui/styles"
	"roadmap/internal/application/commands"
	"roadmap/internal/domain"
)

// DeleteModel is the model for the delete confirmation view
type DeleteModel struct {
	ConfirmationModel
	store commands.CatalogWriter
}

// NewDeleteModel creates a new delete view model
func NewDeleteModel(store commands.CatalogWriter) *DeleteModel {
	return &DeleteModel{
		ConfirmationModel: NewConfirmationModel(),
		store:             store,
	}
}

// Init initializes the delete view
func (m *DeleteModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the delete view
func (m *DeleteModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if handled, cmd := m.HandleKeyMsg(msg, m.doDelete(), send(SwitchToDashboardMsg{})); handled {
			return m, cmd
		}
	}

	return m, nil
}

func (m *DeleteModel) doDelete() tea.Cmd {
	at := m.Target.Coordinate
	return run(func(ctx context.Context) (string, error) {
		res, err := commands.NewDeleteTopicCommand(m.store, at).Execute(ctx)
		if err != nil {
			return "", err
		}
		return res.Message, nil
	})
}

// View renders the delete confirmation view
func (m *DeleteModel) View() string {
	b := NewViewBuilder().
		Title("Delete Topic").
		Line(styles.ErrorMsg.Render("This action cannot be undone!")).
		BlankLine().
		Line(RenderTargetInfo(m.Target, "Delete")).
		BlankLine()

	if t := m.Target.Topic; t.Notes != "" || t.ActualTimeSpent > 0 {
		b.Muted("  Its notes and " + domain.FormatDuration(t.ActualTimeSpent) + " of tracked time go with it.").BlankLine()
	}

	return b.Message(m.Message, m.MessageErr).
		Line(RenderConfirmPrompt("Are you sure?")).
		String()
}
