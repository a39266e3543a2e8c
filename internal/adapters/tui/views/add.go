package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tkbuilder/internal/adapters/tui/styles"
	"tkbuilder/internal/application/commands"
	"tkbuilder/internal/domain"
	"tkbuilder/internal/ports"
)

// AddKeyMap defines key bindings for the widget picker
type AddKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Submit key.Binding
	Cancel key.Binding
}

var AddKeys = AddKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "add"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc", "q"),
		key.WithHelp("esc", "cancel"),
	),
}

// AddModel picks the kind of widget to append to the document or a layout
type AddModel struct {
	ViewState
	store  ports.WidgetStore
	kinds  []domain.WidgetType
	cursor int
	target int
	label  string
	Keys   AddKeyMap
}

// NewAddModel creates a new widget picker
func NewAddModel(store ports.WidgetStore) *AddModel {
	return &AddModel{
		store: store,
		kinds: domain.WidgetTypes(),
		Keys:  AddKeys,
	}
}

// SetTarget sets the container the new widget goes into
func (m *AddModel) SetTarget(target int, label string) {
	m.target = target
	m.label = label
	m.cursor = 0
	m.ClearMessage()
}

// Init initializes the picker
func (m *AddModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker
func (m *AddModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case FormErrMsg:
		m.SetMessage(msg.Err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Cancel):
			return m, func() tea.Msg { return SwitchToBuilderMsg{} }
		case key.Matches(msg, m.Keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.Keys.Down):
			if m.cursor < len(m.kinds)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.Keys.Submit):
			return m, m.add(m.kinds[m.cursor])
		}
	}
	return m, nil
}

// add appends the widget and selects it
func (m *AddModel) add(kind domain.WidgetType) tea.Cmd {
	target := m.target
	return submit(func(ctx context.Context) (string, error) {
		res, err := commands.NewAddWidgetCommand(m.store, target, string(kind)).Execute(ctx)
		if err != nil {
			return "", err
		}
		if _, err := commands.NewSelectWidgetCommand(m.store, res.Widget.WidgetIndex()).Execute(ctx); err != nil {
			return "", err
		}
		return res.Message, nil
	})
}

// View renders the picker
func (m *AddModel) View() string {
	var b strings.Builder
	for i, kind := range m.kinds {
		name := lipgloss.NewStyle().Foreground(styles.KindColor(kind)).Render(string(kind))
		if i == m.cursor {
			name = styles.NodeSelected.Render(string(kind))
		}
		b.WriteString(fmt.Sprintf("  %s\n", name))
	}

	return NewViewBuilder().
		Title("Add widget").
		Line(RenderLabelValue("Into", m.label)).
		BlankLine().
		Raw(b.String()).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Help(m.Keys.Up, m.Keys.Down, m.Keys.Submit, m.Keys.Cancel).
		String()
}
