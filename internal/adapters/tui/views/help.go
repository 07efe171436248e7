package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"roadmap/internal/adapters/tui/styles"
	"roadmap/internal/domain"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, send(SwitchToDashboardMsg{})
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	k := DashboardKeys
	var b strings.Builder

	b.WriteString(styles.Title.Render("Roadmap Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Navigation"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move up/down"))
	b.WriteString(helpLine("h / ←", "Collapse / go to section"))
	b.WriteString(helpLine("l / →", "Expand section"))
	b.WriteString(helpLine("Enter", "Toggle section / open notes"))
	b.WriteString(helpLine("/", "Filter topics by title"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Topics"))
	b.WriteString("\n")
	for _, binding := range []key.Binding{k.Complete, k.Timer, k.Notes, k.Edit, k.Add, k.Delete, k.Copy} {
		b.WriteString(bindingLine(binding))
	}
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Progress"))
	b.WriteString("\n")
	for _, binding := range []key.Binding{k.Focus, k.Stats, k.Export, k.Report} {
		b.WriteString(bindingLine(binding))
	}
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Difficulty"))
	b.WriteString("\n  ")
	for _, d := range domain.Buckets {
		b.WriteString(styles.Difficulty(d))
		b.WriteString("  ")
	}
	b.WriteString("\n")
	b.WriteString(styles.MutedText.Render("  A running timer adds one minute per minute to its topic."))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func bindingLine(b key.Binding) string {
	h := b.Help()
	return helpLine(h.Key, h.Desc)
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}
