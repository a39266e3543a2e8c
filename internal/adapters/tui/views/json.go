package views

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"tkbuilder/internal/application/commands"
	"tkbuilder/internal/ports"
)

// JSONKeyMap defines key bindings for the JSON pane
type JSONKeyMap struct {
	Copy  key.Binding
	Close key.Binding
}

var JSONKeys = JSONKeyMap{
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "v"),
		key.WithHelp("esc", "back"),
	),
}

// JSONModel shows the exchange JSON of the current document
type JSONModel struct {
	ViewState
	store    ports.WidgetStore
	viewport viewport.Model
	data     []byte
	Keys     JSONKeyMap
}

// NewJSONModel creates a new JSON pane
func NewJSONModel(store ports.WidgetStore) *JSONModel {
	return &JSONModel{
		store:    store,
		viewport: viewport.New(80, 20),
		Keys:     JSONKeys,
	}
}

// Load exports the current document into the pane
func (m *JSONModel) Load() error {
	res, err := commands.NewExportCommand(m.store, commands.DefaultIndent).Execute(context.Background())
	if err != nil {
		return err
	}
	m.data = res.Data
	m.viewport.SetContent(string(res.Data))
	m.viewport.GotoTop()
	m.ClearMessage()
	return nil
}

// Content returns the JSON currently shown
func (m *JSONModel) Content() string {
	return string(m.data)
}

// Init initializes the pane
func (m *JSONModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the pane
func (m *JSONModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case StatusMsg:
		m.SetMessage(msg.Message, msg.Err)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.Keys.Close):
			return m, func() tea.Msg { return SwitchToBuilderMsg{} }
		case key.Matches(msg, m.Keys.Copy):
			return m, func() tea.Msg { return CopyJSONMsg{} }
		}
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// SetSize updates the view dimensions and the viewport
func (m *JSONModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	// App padding, title block, message and help lines
	m.viewport.Width = max(width-4, 20)
	m.viewport.Height = max(height-9, 5)
}

// View renders the pane
func (m *JSONModel) View() string {
	return NewViewBuilder().
		Title("Document JSON").
		Line(m.viewport.View()).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Help(m.Keys.Copy, m.Keys.Close).
		String()
}
