package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tkbuilder/internal/adapters/tui/styles"
)

// ConfirmKeyMap defines key bindings for confirmation views
type ConfirmKeyMap struct {
	Confirm key.Binding
	Cancel  key.Binding
}

// DefaultConfirmKeys returns the default confirmation key bindings
var DefaultConfirmKeys = ConfirmKeyMap{
	Confirm: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "confirm"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("n", "esc"),
		key.WithHelp("n/esc", "cancel"),
	),
}

// ConfirmationModel asks before a destructive action (removing a layout,
// discarding the document)
type ConfirmationModel struct {
	ViewState
	Title    string
	Detail   string
	onAccept tea.Cmd
	Keys     ConfirmKeyMap
}

// NewConfirmationModel creates a new confirmation model with default keys
func NewConfirmationModel() *ConfirmationModel {
	return &ConfirmationModel{
		Keys: DefaultConfirmKeys,
	}
}

// SetTarget describes the action to confirm and what runs on acceptance
func (m *ConfirmationModel) SetTarget(title, detail string, onAccept tea.Cmd) {
	m.Title = title
	m.Detail = detail
	m.onAccept = onAccept
	m.ClearMessage()
}

// Init initializes the confirmation view
func (m *ConfirmationModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the confirmation view
func (m *ConfirmationModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Cancel):
			return m, func() tea.Msg { return SwitchToBuilderMsg{} }
		case key.Matches(msg, m.Keys.Confirm):
			if m.onAccept == nil {
				return m, func() tea.Msg { return SwitchToBuilderMsg{} }
			}
			accept := m.onAccept
			m.onAccept = nil
			return m, accept
		}
	}
	return m, nil
}

// View renders the confirmation view
func (m *ConfirmationModel) View() string {
	v := NewViewBuilder().Title(m.Title)
	if m.Detail != "" {
		v.Line(styles.InputLabel.Render(m.Detail)).BlankLine()
	}
	return v.Message(m.Message, m.MessageErr).
		Line(RenderConfirmPrompt("Continue?")).
		String()
}

// RenderConfirmPrompt renders the standard confirmation prompt
func RenderConfirmPrompt(question string) string {
	var b strings.Builder
	b.WriteString(question)
	b.WriteString(" ")
	b.WriteString(styles.HelpKey.Render("y"))
	b.WriteString(styles.HelpDesc.Render(" to confirm, "))
	b.WriteString(styles.HelpKey.Render("n"))
	b.WriteString(styles.HelpDesc.Render(" to cancel"))
	return b.String()
}
