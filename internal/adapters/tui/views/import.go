package views

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"tkbuilder/internal/application/commands"
	"tkbuilder/internal/ports"
)

// ImportKeyMap defines key bindings for the import box
type ImportKeyMap struct {
	Submit key.Binding
	Cancel key.Binding
}

var ImportKeys = ImportKeyMap{
	Submit: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "import"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "cancel"),
	),
}

// ImportModel takes pasted exchange JSON and replaces the document with it
type ImportModel struct {
	ViewState
	store    ports.WidgetStore
	textarea textarea.Model
	Keys     ImportKeyMap
}

// NewImportModel creates a new import box
func NewImportModel(store ports.WidgetStore) *ImportModel {
	ta := textarea.New()
	ta.Placeholder = `{"title": "...", "geometry": "300x250", "version": "0.1.0", "content": []}`
	ta.ShowLineNumbers = false
	ta.CharLimit = 0
	ta.MaxHeight = 0
	ta.MaxWidth = 0
	ta.SetWidth(80)
	ta.SetHeight(15)

	return &ImportModel{
		store:    store,
		textarea: ta,
		Keys:     ImportKeys,
	}
}

// Reset clears the box and focuses it
func (m *ImportModel) Reset() tea.Cmd {
	m.textarea.Reset()
	m.ClearMessage()
	return m.textarea.Focus()
}

// SetValue replaces the text in the box
func (m *ImportModel) SetValue(s string) {
	m.textarea.SetValue(s)
}

// Init initializes the import box
func (m *ImportModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages for the import box
func (m *ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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
			m.textarea.Blur()
			return m, func() tea.Msg { return SwitchToBuilderMsg{} }
		case key.Matches(msg, m.Keys.Submit):
			return m, m.importText(m.textarea.Value())
		}
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

func (m *ImportModel) importText(text string) tea.Cmd {
	return submit(func(ctx context.Context) (string, error) {
		res, err := commands.NewImportCommand(m.store, "pasted text", []byte(text)).Execute(ctx)
		if err != nil {
			return "", err
		}
		return res.Message, nil
	})
}

// SetSize updates the view dimensions and the text area
func (m *ImportModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	m.textarea.SetWidth(max(width-4, 20))
	m.textarea.SetHeight(max(height-10, 5))
}

// View renders the import box
func (m *ImportModel) View() string {
	return NewViewBuilder().
		Title("Import JSON").
		Muted("Paste a document. Importing replaces the current one.").
		BlankLine().
		Line(m.textarea.View()).
		BlankLine().
		Message(m.Message, m.MessageErr).
		Help(m.Keys.Submit, m.Keys.Cancel).
		String()
}
