package views

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"roadmap/internal/adapters/tui/styles"
	"roadmap/internal/application/commands"
	"roadmap/internal/domain"
)

// ListKeyMap is shared by the focus and stats views
type ListKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Complete key.Binding
	Timer    key.Binding
	Back     key.Binding
}

var FocusKeys = ListKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Complete: key.NewBinding(
		key.WithKeys(" ", "c"),
		key.WithHelp("space", "complete"),
	),
	Timer: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "timer"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "q", "f"),
		key.WithHelp("esc", "back"),
	),
}

// FocusModel lists the next open topics to study
type FocusModel struct {
	ViewState
	svc    Services
	result *commands.FocusResult
	cursor int
}

// NewFocusModel creates the focus view
func NewFocusModel(svc Services) *FocusModel {
	m := &FocusModel{svc: svc}
	m.Refresh()
	return m
}

// Refresh recomputes the focus list
func (m *FocusModel) Refresh() {
	res, err := commands.NewFocusCommand(m.svc.Store).Execute(context.Background())
	if err != nil {
		m.SetMessage(err.Error(), true)
		return
	}
	m.result = res
	if m.cursor >= len(res.Topics) {
		m.cursor = max(len(res.Topics)-1, 0)
	}
}

// Init initializes the focus view
func (m *FocusModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the focus view
func (m *FocusModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		m.ClearMessage()
		switch {
		case key.Matches(msg, FocusKeys.Back):
			return m, send(SwitchToDashboardMsg{})
		case key.Matches(msg, FocusKeys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, FocusKeys.Down):
			if m.result != nil && m.cursor < len(m.result.Topics)-1 {
				m.cursor++
			}
		case key.Matches(msg, FocusKeys.Complete):
			if ref, ok := m.selected(); ok {
				return m, run(func(ctx context.Context) (string, error) {
					res, err := commands.NewCompleteCommand(m.svc.Store, ref, commands.CompleteMark).Execute(ctx)
					if err != nil {
						return "", err
					}
					return res.Message, nil
				})
			}
		case key.Matches(msg, FocusKeys.Timer):
			if ref, ok := m.selected(); ok {
				return m, run(func(ctx context.Context) (string, error) {
					res, err := commands.NewToggleTimerCommand(m.svc.Timer, ref).Execute(ctx)
					if err != nil {
						return "", err
					}
					return res.Message, nil
				})
			}
		}
	}
	return m, nil
}

func (m *FocusModel) selected() (domain.Coordinate, bool) {
	if m.result == nil || m.cursor >= len(m.result.Topics) {
		return domain.Coordinate{}, false
	}
	return m.result.Topics[m.cursor].Coordinate, true
}

// View renders the focus view
func (m *FocusModel) View() string {
	b := NewViewBuilder().
		Title("Focus").
		Subtitle("Next topics to study, in roadmap order")

	if m.result == nil || len(m.result.Topics) == 0 {
		msg := "No topics yet."
		if m.result != nil {
			msg = m.result.Message
		}
		b.Muted(msg).BlankLine()
	}

	if m.result != nil {
		running, timing := m.svc.Timer.State()
		for i, ref := range m.result.Topics {
			title := fmt.Sprintf("%d. %s", i+1, ref.Topic.Title)
			if i == m.cursor {
				title = styles.Selected.Render(title)
			}
			line := title + "  " + TopicSummary(ref.Topic) + "  " + RenderMuted(ref.SectionTitle)
			if timing && running.At == ref.Coordinate {
				line += " " + styles.TimerRunning.Render("⏱")
			}
			b.Line(line)
		}
		b.BlankLine()
	}

	return b.Message(m.Message, m.MessageErr).
		Help(FocusKeys.Up, FocusKeys.Down, FocusKeys.Complete, FocusKeys.Timer, FocusKeys.Back).
		String()
}
