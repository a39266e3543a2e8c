package views

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tkbuilder/internal/application/commands"
	"tkbuilder/internal/domain"
	"tkbuilder/internal/ports"
)

// EditModel is the property form of one widget. It shows only the fields
// the widget's kind carries.
type EditModel struct {
	ViewState
	store   ports.WidgetStore
	index   int
	summary string
	form    *InputForm
}

// NewEditModel creates a new widget property form
func NewEditModel(store ports.WidgetStore) *EditModel {
	return &EditModel{
		store: store,
		form:  NewInputForm(),
	}
}

// SetWidget loads the form from the widget with the given index
func (m *EditModel) SetWidget(index int) error {
	w, err := m.store.Get(index)
	if err != nil {
		return err
	}

	attrs := w.Attributes()
	var fields []InputField
	for _, f := range w.Type().Fields() {
		fields = append(fields, NewInputField(string(f), fieldLabel(f), fieldValue(attrs, f), 0))
	}

	m.index = index
	m.summary = domain.Summary(w)
	m.form = NewInputForm(fields...)
	m.ClearMessage()
	return nil
}

func fieldLabel(f domain.Field) string {
	switch f {
	case domain.FieldText:
		return "Text"
	case domain.FieldID:
		return "Id"
	case domain.FieldExecute:
		return "Execute (callback name)"
	case domain.FieldOptions:
		return "Options (comma separated)"
	case domain.FieldOrientation:
		return "Orientation (vertical or horizontal)"
	default:
		return string(f)
	}
}

func fieldValue(attrs domain.Attributes, f domain.Field) string {
	switch f {
	case domain.FieldText:
		return deref(attrs.Text)
	case domain.FieldID:
		return deref(attrs.ID)
	case domain.FieldExecute:
		return deref(attrs.Execute)
	case domain.FieldOptions:
		if attrs.Options == nil {
			return ""
		}
		return strings.Join(*attrs.Options, ", ")
	case domain.FieldOrientation:
		if attrs.Orientation == nil {
			return ""
		}
		return string(*attrs.Orientation)
	}
	return ""
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Attributes reads the form back as a partial update
func (m *EditModel) Attributes() domain.Attributes {
	var attrs domain.Attributes
	for _, field := range m.form.Fields {
		value, _ := m.form.Value(field.Key)
		switch domain.Field(field.Key) {
		case domain.FieldText:
			attrs = attrs.WithText(value)
		case domain.FieldID:
			attrs = attrs.WithID(value)
		case domain.FieldExecute:
			attrs = attrs.WithExecute(value)
		case domain.FieldOptions:
			attrs = attrs.WithOptions(splitOptions(value))
		case domain.FieldOrientation:
			attrs = attrs.WithOrientation(domain.Orientation(strings.ToLower(value)))
		}
	}
	return attrs
}

// splitOptions parses a comma separated option list, dropping empty entries
func splitOptions(s string) []string {
	options := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			options = append(options, part)
		}
	}
	return options
}

// Init initializes the form
func (m *EditModel) Init() tea.Cmd {
	return m.form.Init()
}

// Update handles messages for the form
func (m *EditModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m *EditModel) save() tea.Cmd {
	cmd := commands.NewUpdateWidgetCommand(m.store, m.index, m.Attributes())
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
func (m *EditModel) View() string {
	v := NewViewBuilder().
		Title("Edit widget").
		Subtitle(m.summary)
	if len(m.form.Fields) == 0 {
		v.Muted("This widget has no editable fields").BlankLine()
	}
	return v.Message(m.Message, m.MessageErr).
		Raw(m.form.Render("save")).
		String()
}
