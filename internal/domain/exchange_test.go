package domain

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
)

func sampleDocument() Document {
	d := NewDocument("Form", "600x300", "1.2.0")
	d.Content = []Widget{
		&Label{Meta: Meta{Index: 1}, Text: "Name"},
		&Input{Meta: Meta{Index: 2}, ID: "input_2"},
		&Layout{Meta: Meta{Index: 3}, Orientation: Horizontal, Content: []Widget{
			&Button{Meta: Meta{Index: 4}, Text: "Save", Execute: "save"},
			&CheckBox{Meta: Meta{Index: 5}, Text: "Remember", ID: "checkbox_5"},
			&RadioButton{Meta: Meta{Index: 6}, Text: "A", ID: "radiobutton_6"},
			&SelectMenu{Meta: Meta{Index: 7}, ID: "selectmenu_7", Text: "Pick", Options: []string{"x", "y"}},
			&Layout{Meta: Meta{Index: 8}, Orientation: Vertical},
		}},
	}
	return d
}

func TestExchange_RoundTrip(t *testing.T) {
	doc := sampleDocument()

	for _, indent := range []string{"", "  "} {
		data, err := MarshalDocument(doc, indent)
		if err != nil {
			t.Fatalf("MarshalDocument() error = %v", err)
		}
		got, err := UnmarshalDocument(data)
		if err != nil {
			t.Fatalf("UnmarshalDocument() error = %v", err)
		}
		if !reflect.DeepEqual(got, doc) {
			t.Errorf("round trip with indent %q changed the document\n got: %#v\nwant: %#v", indent, got, doc)
		}
	}
}

func TestExchange_RoundTripEmptySequences(t *testing.T) {
	doc := NewDocument("Empty", "200x100", "1.0.0")
	doc.Content = []Widget{
		&SelectMenu{Meta: Meta{Index: 1}, ID: "selectmenu_1", Options: []string{}},
		&Layout{Meta: Meta{Index: 2}, Orientation: Vertical, Content: []Widget{}},
	}

	data, err := MarshalDocument(doc, "")
	if err != nil {
		t.Fatalf("MarshalDocument() error = %v", err)
	}
	got, err := UnmarshalDocument(data)
	if err != nil {
		t.Fatalf("UnmarshalDocument() error = %v", err)
	}
	if !reflect.DeepEqual(got, doc.Clone()) {
		t.Errorf("round trip changed the document\n got: %#v\nwant: %#v", got, doc.Clone())
	}
	if got.Content[0].(*SelectMenu).Options != nil || got.Content[1].(*Layout).Content != nil {
		t.Error("empty sequences should decode as nil")
	}
}

func TestUnmarshalDocument_NormalizesKind(t *testing.T) {
	doc, err := UnmarshalDocument([]byte(`{"title":"t","geometry":"10x10","version":"1","content":[{"type":"Layout","index":1,"kind":" Horizontal ","content":[]}]}`))
	if err != nil {
		t.Fatalf("UnmarshalDocument() error = %v", err)
	}
	if got := doc.Content[0].(*Layout).Orientation; got != Horizontal {
		t.Errorf("kind = %q, want %q", got, Horizontal)
	}
}

func TestExchange_FieldsPerType(t *testing.T) {
	data, err := MarshalDocument(sampleDocument(), "")
	if err != nil {
		t.Fatal(err)
	}

	var raw struct {
		Content []map[string]any `json:"content"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatal(err)
	}

	label := raw.Content[0]
	if _, ok := label["id"]; ok {
		t.Error("Label should not carry an id")
	}
	input := raw.Content[1]
	if _, ok := input["text"]; ok {
		t.Error("Input should not carry text")
	}
	layout := raw.Content[2]
	if layout["kind"] != "horizontal" {
		t.Errorf("layout kind = %v", layout["kind"])
	}
	children := layout["content"].([]any)
	empty := children[4].(map[string]any)
	if c, ok := empty["content"].([]any); !ok || len(c) != 0 {
		t.Errorf("empty layout should emit content: [], got %v", empty["content"])
	}
}

func TestExchange_EmptyDocument(t *testing.T) {
	data, err := MarshalDocument(DefaultDocument(), "")
	if err != nil {
		t.Fatal(err)
	}
	want := `{"title":"My Tkinter App","geometry":"300x250","version":"0.1.0","content":[]}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}

func TestUnmarshalDocument_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		errText string
	}{
		{"not json", "{", "unexpected end"},
		{"unknown type", `{"content":[{"type":"Canvas","index":1}]}`, "unknown type"},
		{"nested unknown type", `{"content":[{"type":"Layout","index":1,"content":[{"type":"Frame","index":2}]}]}`, "unknown type"},
		{"wrong shape", `{"content":{}}`, "cannot unmarshal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalDocument([]byte(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.errText) {
				t.Errorf("error %q should contain %q", err, tt.errText)
			}
		})
	}
}

func TestUnmarshalDocument_MissingFields(t *testing.T) {
	doc, err := UnmarshalDocument([]byte(`{"title":"T","content":[{"type":"Input","index":3}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if doc.Geometry != "" || doc.Version != "" {
		t.Error("missing properties should stay empty")
	}
	in := doc.Content[0].(*Input)
	if in.ID != "" || in.Index != 3 {
		t.Errorf("unexpected input: %+v", in)
	}
}

func TestDocument_JSONMethods(t *testing.T) {
	doc := sampleDocument()
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatal(err)
	}
	var got Document
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, doc) {
		t.Error("json.Marshal/Unmarshal should use the exchange format")
	}
}

func TestExchangeSchema(t *testing.T) {
	s := ExchangeSchema()
	if s == nil {
		t.Fatal("schema is nil")
	}
	data, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"tkbuilder document", "ExchangeNode", "SelectMenu"} {
		if !strings.Contains(string(data), want) {
			t.Errorf("schema should mention %q", want)
		}
	}
}

func TestMarshalWidget(t *testing.T) {
	data, err := MarshalWidget(&Button{Meta: Meta{Index: 4}, Text: "Go", Execute: "go"}, "")
	if err != nil {
		t.Fatal(err)
	}
	want := `{"type":"Button","index":4,"text":"Go","execute":"go"}`
	if string(data) != want {
		t.Errorf("got %s, want %s", data, want)
	}
}
