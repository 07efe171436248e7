package views

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"roadmap/internal/application"
	"roadmap/internal/domain"
)

// NotesKeyMap defines key bindings for the notes editor
type NotesKeyMap struct {
	Save     key.Binding
	Cancel   key.Binding
	External key.Binding
}

var NotesKeys = NotesKeyMap{
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "discard"),
	),
	External: key.NewBinding(
		key.WithKeys("ctrl+e"),
		key.WithHelp("ctrl+e", "open in $EDITOR"),
	),
}

// NotesModel edits the notes of one topic. Text is kept as a draft in the
// notes manager until saved.
type NotesModel struct {
	ViewState
	notes   *application.NotesManager
	session application.NoteSession
	area    textarea.Model
}

// NewNotesModel creates the notes editor
func NewNotesModel(notes *application.NotesManager) *NotesModel {
	area := textarea.New()
	area.Placeholder = "Write notes, links, questions..."
	area.ShowLineNumbers = false
	area.CharLimit = 0
	return &NotesModel{notes: notes, area: area}
}

// Open starts a notes session for the topic at the coordinate
func (m *NotesModel) Open(at domain.Coordinate) (tea.Cmd, error) {
	s, err := m.notes.Open(at)
	if err != nil {
		return nil, err
	}
	m.session = s
	m.ClearMessage()
	m.area.SetValue(s.Draft)
	m.resize()
	return m.area.Focus(), nil
}

// Init initializes the notes view
func (m *NotesModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages for the notes view
func (m *NotesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, NotesKeys.Save):
			return m, m.save()

		case key.Matches(msg, NotesKeys.Cancel):
			m.area.Blur()
			_ = m.notes.Discard()
			return m, send(SwitchToDashboardMsg{})

		case key.Matches(msg, NotesKeys.External):
			m.area.Blur()
			text := m.area.Value()
			_ = m.notes.Discard()
			return m, send(EditNotesExternallyMsg{At: m.session.At, Title: m.session.Title, Notes: text})
		}
	}

	var cmd tea.Cmd
	m.area, cmd = m.area.Update(msg)
	if err := m.notes.UpdateDraft(m.area.Value()); err != nil {
		m.SetMessage("Topic changed while editing; notes can no longer be saved", true)
	}
	return m, cmd
}

func (m *NotesModel) save() tea.Cmd {
	if err := m.notes.UpdateDraft(m.area.Value()); err != nil {
		m.SetMessage(err.Error(), true)
		return nil
	}
	m.area.Blur()
	title := m.session.Title
	return run(func(ctx context.Context) (string, error) {
		if err := m.notes.Commit(ctx); err != nil {
			return "", err
		}
		return fmt.Sprintf("Saved notes for %s", title), nil
	})
}

func (m *NotesModel) resize() {
	m.area.SetWidth(max(m.contentWidth()-2, 20))
	if m.Height > 0 {
		m.area.SetHeight(max(m.Height-10, 5))
	} else {
		m.area.SetHeight(12)
	}
}

// View renders the notes view
func (m *NotesModel) View() string {
	return NewViewBuilder().
		Title("Notes").
		Subtitle(m.session.Title).
		Line(m.area.View()).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Help(NotesKeys.Save, NotesKeys.External, NotesKeys.Cancel).
		String()
}
