package domain

import (
	"slices"
	"strings"
)

// WidgetType is the kind tag of a widget, serialized as the "type" field
type WidgetType string

const (
	WidgetLabel       WidgetType = "Label"
	WidgetInput       WidgetType = "Input"
	WidgetButton      WidgetType = "Button"
	WidgetCheckBox    WidgetType = "CheckBox"
	WidgetRadioButton WidgetType = "RadioButton"
	WidgetSelectMenu  WidgetType = "SelectMenu"
	WidgetLayout      WidgetType = "Layout"
)

var widgetTypes = []WidgetType{
	WidgetLabel,
	WidgetInput,
	WidgetButton,
	WidgetCheckBox,
	WidgetRadioButton,
	WidgetSelectMenu,
	WidgetLayout,
}

// WidgetTypes returns all widget kinds in display order
func WidgetTypes() []WidgetType {
	return slices.Clone(widgetTypes)
}

// ParseWidgetType resolves a kind name, ignoring case and surrounding whitespace
func ParseWidgetType(s string) (WidgetType, bool) {
	s = strings.TrimSpace(s)
	for _, t := range widgetTypes {
		if strings.EqualFold(string(t), s) {
			return t, true
		}
	}
	return "", false
}

func (t WidgetType) String() string {
	return string(t)
}

// HasID reports whether widgets of this kind get a synthesized id on creation
func (t WidgetType) HasID() bool {
	switch t {
	case WidgetInput, WidgetCheckBox, WidgetRadioButton, WidgetSelectMenu:
		return true
	}
	return false
}

// IsContainer reports whether widgets of this kind hold children
func (t WidgetType) IsContainer() bool {
	return t == WidgetLayout
}

// Field names an editable widget attribute
type Field string

const (
	FieldText        Field = "text"
	FieldID          Field = "id"
	FieldExecute     Field = "execute"
	FieldOptions     Field = "options"
	FieldOrientation Field = "kind"
)

// Fields returns the editable attributes of a widget kind, in form order
func (t WidgetType) Fields() []Field {
	switch t {
	case WidgetLabel:
		return []Field{FieldText}
	case WidgetInput:
		return []Field{FieldID}
	case WidgetButton:
		return []Field{FieldText, FieldExecute}
	case WidgetCheckBox, WidgetRadioButton:
		return []Field{FieldText, FieldID}
	case WidgetSelectMenu:
		return []Field{FieldText, FieldID, FieldOptions}
	case WidgetLayout:
		return []Field{FieldOrientation}
	}
	return nil
}

// Orientation is the direction a Layout stacks its children
type Orientation string

const (
	Vertical   Orientation = "vertical"
	Horizontal Orientation = "horizontal"
)

// ParseOrientation resolves an orientation name
func ParseOrientation(s string) (Orientation, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case string(Vertical):
		return Vertical, true
	case string(Horizontal):
		return Horizontal, true
	}
	return "", false
}

// Meta holds the identity shared by every widget kind
type Meta struct {
	Index int // creation counter value, never reassigned
}

// WidgetIndex returns the widget's stable identity
func (m *Meta) WidgetIndex() int {
	return m.Index
}

func (m *Meta) meta() *Meta {
	return m
}

// Widget is one node of the widget tree. The concrete kinds are
// *Label, *Input, *Button, *CheckBox, *RadioButton, *SelectMenu and *Layout.
type Widget interface {
	Type() WidgetType
	WidgetIndex() int
	// Attributes returns the current values of the kind's editable fields
	Attributes() Attributes

	meta() *Meta
	apply(Attributes)
	clone() Widget
}

// Label is static text
type Label struct {
	Meta
	Text string
}

// Input is a single line text entry
type Input struct {
	Meta
	ID string
}

// Button invokes the handler named by Execute
type Button struct {
	Meta
	Text    string
	Execute string
}

// CheckBox is a boolean toggle
type CheckBox struct {
	Meta
	Text string
	ID   string
}

// RadioButton is one choice of the radio group keyed by ID
type RadioButton struct {
	Meta
	Text string
	ID   string
}

// SelectMenu is a drop-down over Options
type SelectMenu struct {
	Meta
	ID      string
	Text    string
	Options []string
}

// Layout is the only container kind
type Layout struct {
	Meta
	Orientation Orientation
	Content     []Widget
}

func (*Label) Type() WidgetType       { return WidgetLabel }
func (*Input) Type() WidgetType       { return WidgetInput }
func (*Button) Type() WidgetType      { return WidgetButton }
func (*CheckBox) Type() WidgetType    { return WidgetCheckBox }
func (*RadioButton) Type() WidgetType { return WidgetRadioButton }
func (*SelectMenu) Type() WidgetType  { return WidgetSelectMenu }
func (*Layout) Type() WidgetType      { return WidgetLayout }

// Children returns the nested widgets
func (l *Layout) Children() []Widget {
	return l.Content
}

func (w *Label) Attributes() Attributes {
	return Attributes{}.WithText(w.Text)
}

func (w *Input) Attributes() Attributes {
	return Attributes{}.WithID(w.ID)
}

func (w *Button) Attributes() Attributes {
	return Attributes{}.WithText(w.Text).WithExecute(w.Execute)
}

func (w *CheckBox) Attributes() Attributes {
	return Attributes{}.WithText(w.Text).WithID(w.ID)
}

func (w *RadioButton) Attributes() Attributes {
	return Attributes{}.WithText(w.Text).WithID(w.ID)
}

func (w *SelectMenu) Attributes() Attributes {
	return Attributes{}.WithText(w.Text).WithID(w.ID).WithOptions(w.Options)
}

func (w *Layout) Attributes() Attributes {
	return Attributes{}.WithOrientation(w.Orientation)
}

func (w *Label) apply(a Attributes) {
	setString(&w.Text, a.Text)
}

func (w *Input) apply(a Attributes) {
	setString(&w.ID, a.ID)
}

func (w *Button) apply(a Attributes) {
	setString(&w.Text, a.Text)
	setString(&w.Execute, a.Execute)
}

func (w *CheckBox) apply(a Attributes) {
	setString(&w.Text, a.Text)
	setString(&w.ID, a.ID)
}

func (w *RadioButton) apply(a Attributes) {
	setString(&w.Text, a.Text)
	setString(&w.ID, a.ID)
}

func (w *SelectMenu) apply(a Attributes) {
	setString(&w.Text, a.Text)
	setString(&w.ID, a.ID)
	if a.Options != nil {
		w.Options = orNil(slices.Clone(*a.Options))
	}
}

// Unknown orientations are ignored; callers validate before merging.
func (w *Layout) apply(a Attributes) {
	if a.Orientation == nil {
		return
	}
	if o, ok := ParseOrientation(string(*a.Orientation)); ok {
		w.Orientation = o
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// clone copies the widget itself; a Layout's child slice is copied but the
// children are shared.
func (w *Label) clone() Widget       { c := *w; return &c }
func (w *Input) clone() Widget       { c := *w; return &c }
func (w *Button) clone() Widget      { c := *w; return &c }
func (w *CheckBox) clone() Widget    { c := *w; return &c }
func (w *RadioButton) clone() Widget { c := *w; return &c }

func (w *SelectMenu) clone() Widget {
	c := *w
	c.Options = orNil(slices.Clone(w.Options))
	return &c
}

func (w *Layout) clone() Widget {
	c := *w
	c.Content = orNil(slices.Clone(w.Content))
	return &c
}

// orNil stores empty sequences as nil, the form decoding produces.
func orNil[S ~[]E, E any](s S) S {
	if len(s) == 0 {
		return nil
	}
	return s
}

// Merge returns a copy of w with the set fields of attrs applied over it.
// Fields that do not belong to w's kind are ignored; index and kind never change.
func Merge(w Widget, attrs Attributes) Widget {
	c := w.clone()
	c.apply(attrs)
	return c
}

// DeepClone copies w and, for a Layout, its whole subtree
func DeepClone(w Widget) Widget {
	c := w.clone()
	if l, ok := c.(*Layout); ok {
		l.Content = DeepCloneAll(l.Content)
	}
	return c
}

// DeepCloneAll deep-copies a child sequence
func DeepCloneAll(content []Widget) []Widget {
	if len(content) == 0 {
		return nil
	}
	out := make([]Widget, len(content))
	for i, w := range content {
		out[i] = DeepClone(w)
	}
	return out
}

// Summary returns the short "Type - text" caption used in tree listings
func Summary(w Widget) string {
	var b strings.Builder
	b.WriteString(string(w.Type()))
	attrs := w.Attributes()
	if attrs.Text != nil && *attrs.Text != "" {
		b.WriteString(" - ")
		b.WriteString(*attrs.Text)
	}
	if attrs.Orientation != nil && *attrs.Orientation != "" {
		b.WriteString(" - ")
		b.WriteString(string(*attrs.Orientation))
	}
	return b.String()
}
