package domain

import (
	"reflect"
	"testing"
)

func TestNewWidget(t *testing.T) {
	tests := []struct {
		wt   WidgetType
		want Widget
	}{
		{WidgetLabel, &Label{Meta: Meta{Index: 4}}},
		{WidgetInput, &Input{Meta: Meta{Index: 4}, ID: "input_4"}},
		{WidgetButton, &Button{Meta: Meta{Index: 4}, Text: "New Button", Execute: "button_func"}},
		{WidgetCheckBox, &CheckBox{Meta: Meta{Index: 4}, Text: "New Checkbox", ID: "checkbox_4"}},
		{WidgetRadioButton, &RadioButton{Meta: Meta{Index: 4}, Text: "New Radio", ID: "radiobutton_4"}},
		{WidgetSelectMenu, &SelectMenu{Meta: Meta{Index: 4}, Text: "Select Menu", ID: "selectmenu_4", Options: []string{"Option 1"}}},
		{WidgetLayout, &Layout{Meta: Meta{Index: 4}, Orientation: Vertical}},
	}

	for _, tt := range tests {
		t.Run(string(tt.wt), func(t *testing.T) {
			tmpl, ok := DefaultTemplate(tt.wt)
			if !ok {
				t.Fatalf("missing default template")
			}
			got, err := NewWidget(tmpl, 4)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NewWidget() = %#v, want %#v", got, tt.want)
			}
		})
	}

	if _, err := NewWidget(Template{Type: "Canvas"}, 1); err == nil {
		t.Error("expected error for unknown type")
	}
}

func TestNewWidget_TemplateOptionsAreCopied(t *testing.T) {
	opts := []string{"a"}
	tmpl := Template{Type: WidgetSelectMenu, Defaults: Attributes{}.WithOptions(opts)}
	w, err := NewWidget(tmpl, 1)
	if err != nil {
		t.Fatal(err)
	}
	opts[0] = "changed"
	(*tmpl.Defaults.Options)[0] = "changed"
	if w.(*SelectMenu).Options[0] != "a" {
		t.Error("widget shares its options with the template")
	}
}

func TestMerge(t *testing.T) {
	orig := &SelectMenu{Meta: Meta{Index: 2}, ID: "s", Text: "t", Options: []string{"x"}}

	merged := Merge(orig, Attributes{}.WithText("new").WithOptions([]string{"a", "b"}))
	sm := merged.(*SelectMenu)
	if sm.Text != "new" || sm.ID != "s" || !reflect.DeepEqual(sm.Options, []string{"a", "b"}) {
		t.Errorf("unexpected merge: %+v", sm)
	}
	if sm.Index != 2 {
		t.Errorf("index changed to %d", sm.Index)
	}
	if orig.Text != "t" || orig.Options[0] != "x" {
		t.Error("original was modified")
	}

	same := Merge(orig, Attributes{})
	if !reflect.DeepEqual(same, orig) {
		t.Error("empty merge should be a no-op")
	}
}

func TestMerge_Orientation(t *testing.T) {
	tests := []struct {
		name string
		in   Orientation
		want Orientation
	}{
		{"exact", Horizontal, Horizontal},
		{"padded", " horizontal ", Horizontal},
		{"upper case", "VERTICAL", Vertical},
		{"unknown is ignored", "diagonal", Vertical},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := &Layout{Meta: Meta{Index: 1}, Orientation: Vertical}
			got := Merge(l, Attributes{}.WithOrientation(tt.in)).(*Layout)
			if got.Orientation != tt.want {
				t.Errorf("Orientation = %q, want %q", got.Orientation, tt.want)
			}
		})
	}
}

func TestMerge_EmptyOptions(t *testing.T) {
	orig := &SelectMenu{Meta: Meta{Index: 2}, Options: []string{"x"}}
	sm := Merge(orig, Attributes{}.WithOptions([]string{})).(*SelectMenu)
	if sm.Options != nil {
		t.Errorf("Options = %#v, want nil", sm.Options)
	}
}

func TestParseWidgetType(t *testing.T) {
	tests := []struct {
		in     string
		want   WidgetType
		wantOK bool
	}{
		{"Button", WidgetButton, true},
		{"selectmenu", WidgetSelectMenu, true},
		{" layout ", WidgetLayout, true},
		{"Frame", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseWidgetType(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("ParseWidgetType(%q) = %q %v, want %q %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestWidgetType_Fields(t *testing.T) {
	if got := WidgetInput.Fields(); !reflect.DeepEqual(got, []Field{FieldID}) {
		t.Errorf("Input fields = %v", got)
	}
	if got := WidgetLayout.Fields(); !reflect.DeepEqual(got, []Field{FieldOrientation}) {
		t.Errorf("Layout fields = %v", got)
	}
	for _, wt := range WidgetTypes() {
		if wt.HasID() != containsField(wt.Fields(), FieldID) {
			t.Errorf("%s: HasID and Fields disagree", wt)
		}
	}
}

func containsField(fields []Field, f Field) bool {
	for _, x := range fields {
		if x == f {
			return true
		}
	}
	return false
}

func TestSummary(t *testing.T) {
	tests := []struct {
		w    Widget
		want string
	}{
		{&Label{}, "Label"},
		{&Button{Text: "Go"}, "Button - Go"},
		{&Layout{Orientation: Horizontal}, "Layout - horizontal"},
	}
	for _, tt := range tests {
		if got := Summary(tt.w); got != tt.want {
			t.Errorf("Summary() = %q, want %q", got, tt.want)
		}
	}
}

func TestDeepClone(t *testing.T) {
	l := &Layout{Meta: Meta{Index: 1}, Content: []Widget{&Label{Meta: Meta{Index: 2}, Text: "a"}}}
	c := DeepClone(l).(*Layout)
	c.Content[0].(*Label).Text = "b"
	if l.Content[0].(*Label).Text != "a" {
		t.Error("deep clone shares children")
	}
}
