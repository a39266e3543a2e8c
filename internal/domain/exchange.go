package domain

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// ExchangeDocument is the JSON shape handed to the code generator
type ExchangeDocument struct {
	Title    string         `json:"title" jsonschema:"description=Window title"`
	Geometry string         `json:"geometry" jsonschema:"description=Window size as WIDTHxHEIGHT,pattern=^[0-9]+x[0-9]+$"`
	Version  string         `json:"version" jsonschema:"description=Free-form application version"`
	Content  []ExchangeNode `json:"content"`
}

// ExchangeNode is one serialized widget. Fields that do not apply to the
// node's type are omitted.
type ExchangeNode struct {
	Type    WidgetType      `json:"type" jsonschema:"enum=Label,enum=Input,enum=Button,enum=CheckBox,enum=RadioButton,enum=SelectMenu,enum=Layout"`
	Index   int             `json:"index" jsonschema:"minimum=1"`
	ID      string          `json:"id,omitempty"`
	Text    string          `json:"text,omitempty"`
	Execute string          `json:"execute,omitempty" jsonschema:"description=Name of the handler function a Button calls"`
	Options []string        `json:"options,omitempty"`
	Kind    Orientation     `json:"kind,omitempty" jsonschema:"enum=vertical,enum=horizontal"`
	Content *[]ExchangeNode `json:"content,omitempty"`
}

// MarshalDocument serializes d in the exchange format. A non-empty indent
// pretty-prints the output.
func MarshalDocument(d Document, indent string) ([]byte, error) {
	ex := toExchange(d)
	if indent != "" {
		return json.MarshalIndent(ex, "", indent)
	}
	return json.Marshal(ex)
}

// MarshalWidget serializes a single widget, with its subtree, as an exchange node
func MarshalWidget(w Widget, indent string) ([]byte, error) {
	n := toExchangeNode(w)
	if indent != "" {
		return json.MarshalIndent(n, "", indent)
	}
	return json.Marshal(n)
}

// UnmarshalDocument parses exchange text. Missing optional fields are left unset.
func UnmarshalDocument(data []byte) (Document, error) {
	var ex ExchangeDocument
	if err := json.Unmarshal(data, &ex); err != nil {
		return Document{}, err
	}
	return fromExchange(ex)
}

// MarshalJSON implements json.Marshaler using the exchange format
func (d Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(toExchange(d))
}

// UnmarshalJSON implements json.Unmarshaler using the exchange format
func (d *Document) UnmarshalJSON(data []byte) error {
	doc, err := UnmarshalDocument(data)
	if err != nil {
		return err
	}
	*d = doc
	return nil
}

// ExchangeSchema returns the JSON Schema of the exchange format
func ExchangeSchema() *jsonschema.Schema {
	r := &jsonschema.Reflector{}
	s := r.Reflect(&ExchangeDocument{})
	s.Title = "tkbuilder document"
	return s
}

func toExchange(d Document) ExchangeDocument {
	content := toExchangeNodes(d.Content)
	if content == nil {
		content = []ExchangeNode{}
	}
	return ExchangeDocument{
		Title:    d.Title,
		Geometry: d.Geometry,
		Version:  d.Version,
		Content:  content,
	}
}

func toExchangeNodes(content []Widget) []ExchangeNode {
	if len(content) == 0 {
		return nil
	}
	nodes := make([]ExchangeNode, 0, len(content))
	for _, w := range content {
		nodes = append(nodes, toExchangeNode(w))
	}
	return nodes
}

func toExchangeNode(w Widget) ExchangeNode {
	n := ExchangeNode{Type: w.Type(), Index: w.WidgetIndex()}
	switch w := w.(type) {
	case *Label:
		n.Text = w.Text
	case *Input:
		n.ID = w.ID
	case *Button:
		n.Text = w.Text
		n.Execute = w.Execute
	case *CheckBox:
		n.Text = w.Text
		n.ID = w.ID
	case *RadioButton:
		n.Text = w.Text
		n.ID = w.ID
	case *SelectMenu:
		n.ID = w.ID
		n.Text = w.Text
		n.Options = w.Options
	case *Layout:
		n.Kind = w.Orientation
		children := toExchangeNodes(w.Content)
		if children == nil {
			children = []ExchangeNode{}
		}
		n.Content = &children
	}
	return n
}

func fromExchange(ex ExchangeDocument) (Document, error) {
	content, err := fromExchangeNodes(ex.Content)
	if err != nil {
		return Document{}, err
	}
	return Document{
		Title:    ex.Title,
		Geometry: ex.Geometry,
		Version:  ex.Version,
		Content:  content,
	}, nil
}

func fromExchangeNodes(nodes []ExchangeNode) ([]Widget, error) {
	if len(nodes) == 0 {
		return nil, nil
	}
	content := make([]Widget, 0, len(nodes))
	for _, n := range nodes {
		w, err := fromExchangeNode(n)
		if err != nil {
			return nil, err
		}
		content = append(content, w)
	}
	return content, nil
}

func fromExchangeNode(n ExchangeNode) (Widget, error) {
	t, ok := ParseWidgetType(string(n.Type))
	if !ok {
		return nil, fmt.Errorf("widget %d: unknown type %q", n.Index, n.Type)
	}

	meta := Meta{Index: n.Index}
	switch t {
	case WidgetLabel:
		return &Label{Meta: meta, Text: n.Text}, nil
	case WidgetInput:
		return &Input{Meta: meta, ID: n.ID}, nil
	case WidgetButton:
		return &Button{Meta: meta, Text: n.Text, Execute: n.Execute}, nil
	case WidgetCheckBox:
		return &CheckBox{Meta: meta, Text: n.Text, ID: n.ID}, nil
	case WidgetRadioButton:
		return &RadioButton{Meta: meta, Text: n.Text, ID: n.ID}, nil
	case WidgetSelectMenu:
		var opts []string
		if len(n.Options) > 0 {
			opts = n.Options
		}
		return &SelectMenu{Meta: meta, ID: n.ID, Text: n.Text, Options: opts}, nil
	default:
		l := &Layout{Meta: meta, Orientation: n.Kind}
		if o, ok := ParseOrientation(string(n.Kind)); ok {
			l.Orientation = o
		}
		if n.Content != nil {
			children, err := fromExchangeNodes(*n.Content)
			if err != nil {
				return nil, err
			}
			l.Content = children
		}
		return l, nil
	}
}
