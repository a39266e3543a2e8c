package views

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tkbuilder/internal/application/commands"
	"tkbuilder/internal/domain"
	"tkbuilder/internal/ports"
)

const (
	fieldTitle    = "title"
	fieldGeometry = "geometry"
	fieldVersion  = "version"
)

// DocumentModel edits the window title, geometry and version
type DocumentModel struct {
	ViewState
	store ports.WidgetStore
	form  *InputForm
}

// NewDocumentModel creates a new document properties form
func NewDocumentModel(store ports.WidgetStore) *DocumentModel {
	m := &DocumentModel{store: store}
	m.Load()
	return m
}

// Load fills the form from the current document
func (m *DocumentModel) Load() {
	doc := m.store.Document()
	m.form = NewInputForm(
		NewInputField(fieldTitle, "Title", doc.Title, 0),
		NewInputField(fieldGeometry, "Geometry (WIDTHxHEIGHT)", doc.Geometry, 16),
		NewInputField(fieldVersion, "Version", doc.Version, 32),
	)
	m.ClearMessage()
}

// Properties reads the form back as a full properties update
func (m *DocumentModel) Properties() domain.Properties {
	title, _ := m.form.Value(fieldTitle)
	geometry, _ := m.form.Value(fieldGeometry)
	version, _ := m.form.Value(fieldVersion)
	return domain.Properties{
		Title:    &title,
		Geometry: &geometry,
		Version:  &version,
	}
}

// Init initializes the form
func (m *DocumentModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the form
func (m *DocumentModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case FormErrMsg:
		m.SetMessage(msg.Err.Error(), true)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.form.Keys.Cancel):
			return m, func() tea.Msg { return SwitchToBuilderMsg{} }
		case key.Matches(msg, m.form.Keys.Submit):
			return m, m.save()
		}
	}

	_, cmd := m.form.Update(msg)
	return m, cmd
}

func (m *DocumentModel) save() tea.Cmd {
	cmd := commands.NewSetPropertiesCommand(m.store, m.Properties())
	if err := cmd.Validate(); err != nil {
		m.SetMessage(err.Error(), true)
		return nil
	}
	return submit(func(ctx context.Context) (string, error) {
		res, err := cmd.Execute(ctx)
		if err != nil {
			return "", err
		}
		return res.Message, nil
	})
}

// View renders the form
func (m *DocumentModel) View() string {
	return NewViewBuilder().
		Title("Document properties").
		Message(m.Message, m.MessageErr).
		Raw(m.form.Render("save")).
		String()
}
