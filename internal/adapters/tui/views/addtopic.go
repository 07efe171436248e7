package views

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"roadmap/internal/application/commands"
)

const (
	fieldTitle = iota
	fieldDifficulty
	fieldEstimate
)

// AddTopicModel is the form for adding a topic to a section
type AddTopicModel struct {
	ViewState
	store        commands.CatalogWriter
	sectionIndex int
	sectionTitle string
	form         *InputForm
}

// NewAddTopicModel creates the add topic form
func NewAddTopicModel(store commands.CatalogWriter) *AddTopicModel {
	return &AddTopicModel{
		store: store,
		form: NewInputForm(
			NewInputField("Title:", "", 120),
			NewInputField("Difficulty (Easy, Medium, Hard):", string(commands.DefaultDifficulty), 10),
			NewInputField("Time estimate:", commands.DefaultTimeEstimate, 40),
		),
	}
}

// SetSection resets the form to add into the given section
func (m *AddTopicModel) SetSection(index int, title string) {
	m.sectionIndex = index
	m.sectionTitle = title
	m.ClearMessage()
	m.form.Reset()
}

// Init initializes the add topic view
func (m *AddTopicModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the add topic view
func (m *AddTopicModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, send(SwitchToDashboardMsg{})
		case key.Matches(msg, m.form.Keys.Submit):
			return m, m.submit()
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

func (m *AddTopicModel) command() *commands.AddTopicCommand {
	return commands.NewAddTopicCommand(m.store,
		m.sectionIndex,
		m.form.Value(fieldTitle),
		m.form.Value(fieldDifficulty),
		m.form.Value(fieldEstimate),
	)
}

func (m *AddTopicModel) submit() tea.Cmd {
	cmd := m.command()
	if err := cmd.Validate(); err != nil {
		m.SetMessage(err.Error(), true)
		return nil
	}
	return run(func(ctx context.Context) (string, error) {
		res, err := cmd.Execute(ctx)
		if err != nil {
			return "", err
		}
		return res.Message, nil
	})
}

// View renders the add topic view
func (m *AddTopicModel) View() string {
	return NewViewBuilder().
		Title("Add Topic").
		Subtitle("Adding to "+m.sectionTitle).
		Line(m.form.View()).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Line(m.form.RenderHelp("add")).
		String()
}
