package domain

import "slices"

// Attributes is a partial set of widget fields. A nil field is unset and
// leaves the widget's value alone when merged.
type Attributes struct {
	Text        *string
	ID          *string
	Execute     *string
	Options     *[]string
	Orientation *Orientation
}

func (a Attributes) WithText(s string) Attributes {
	a.Text = &s
	return a
}

func (a Attributes) WithID(s string) Attributes {
	a.ID = &s
	return a
}

func (a Attributes) WithExecute(s string) Attributes {
	a.Execute = &s
	return a
}

func (a Attributes) WithOptions(opts []string) Attributes {
	c := slices.Clone(opts)
	a.Options = &c
	return a
}

func (a Attributes) WithOrientation(o Orientation) Attributes {
	a.Orientation = &o
	return a
}

// IsEmpty reports whether no field is set
func (a Attributes) IsEmpty() bool {
	return a.Text == nil && a.ID == nil && a.Execute == nil && a.Options == nil && a.Orientation == nil
}

// Over returns a with every field set in b taking precedence
func (a Attributes) Over(b Attributes) Attributes {
	if b.Text != nil {
		a.Text = b.Text
	}
	if b.ID != nil {
		a.ID = b.ID
	}
	if b.Execute != nil {
		a.Execute = b.Execute
	}
	if b.Options != nil {
		a.Options = b.Options
	}
	if b.Orientation != nil {
		a.Orientation = b.Orientation
	}
	return a
}

// Has reports whether the given field is set
func (a Attributes) Has(f Field) bool {
	switch f {
	case FieldText:
		return a.Text != nil
	case FieldID:
		return a.ID != nil
	case FieldExecute:
		return a.Execute != nil
	case FieldOptions:
		return a.Options != nil
	case FieldOrientation:
		return a.Orientation != nil
	}
	return false
}
