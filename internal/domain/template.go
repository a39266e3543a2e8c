package domain

import (
	"fmt"
	"strings"
)

// Template describes how a new widget of a kind is built
type Template struct {
	Type     WidgetType
	Defaults Attributes
}

// DefaultTemplates returns the built-in template of every widget kind.
// None of them carries an id, so id kinds always get a synthesized one.
func DefaultTemplates() []Template {
	return []Template{
		{Type: WidgetLabel},
		{Type: WidgetInput},
		{Type: WidgetButton, Defaults: Attributes{}.WithText("New Button").WithExecute("button_func")},
		{Type: WidgetCheckBox, Defaults: Attributes{}.WithText("New Checkbox")},
		{Type: WidgetRadioButton, Defaults: Attributes{}.WithText("New Radio")},
		{Type: WidgetSelectMenu, Defaults: Attributes{}.WithText("Select Menu").WithOptions([]string{"Option 1"})},
		{Type: WidgetLayout, Defaults: Attributes{}.WithOrientation(Vertical)},
	}
}

// DefaultTemplate returns the built-in template for a kind
func DefaultTemplate(t WidgetType) (Template, bool) {
	for _, tmpl := range DefaultTemplates() {
		if tmpl.Type == t {
			return tmpl, true
		}
	}
	return Template{}, false
}

// SynthesizedID returns the default id given to id kinds: "<lowercased-kind>_<index>"
func SynthesizedID(t WidgetType, index int) string {
	return fmt.Sprintf("%s_%d", strings.ToLower(string(t)), index)
}

// NewWidget builds a widget from a template with the given index
func NewWidget(tmpl Template, index int) (Widget, error) {
	var w Widget
	switch tmpl.Type {
	case WidgetLabel:
		w = &Label{}
	case WidgetInput:
		w = &Input{}
	case WidgetButton:
		w = &Button{}
	case WidgetCheckBox:
		w = &CheckBox{}
	case WidgetRadioButton:
		w = &RadioButton{}
	case WidgetSelectMenu:
		w = &SelectMenu{}
	case WidgetLayout:
		w = &Layout{}
	default:
		return nil, fmt.Errorf("unknown widget type %q", tmpl.Type)
	}

	w.meta().Index = index
	attrs := tmpl.Defaults
	if tmpl.Type.HasID() && attrs.ID == nil {
		attrs = attrs.WithID(SynthesizedID(tmpl.Type, index))
	}
	w.apply(attrs)
	return w, nil
}
