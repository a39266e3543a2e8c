package domain

import "fmt"

// PreviewNode is one widget as the preview draws it
type PreviewNode struct {
	Index       int
	Type        WidgetType
	Caption     string      // text shown on the control, with a per-kind placeholder
	Options     []string    // SelectMenu entries, never empty
	Orientation Orientation // Layout only
	Children    []PreviewNode
}

// Preview is a render-ready view of a document window
type Preview struct {
	Title string
	Size  Geometry
	Nodes []PreviewNode
}

// SizeLabel returns the "Window size: WxH" caption; unreadable sizes print as NaN
func (p Preview) SizeLabel() string {
	return fmt.Sprintf("Window size: %vx%v", p.Size.Width, p.Size.Height)
}

// BuildPreview derives the preview of d. It reads nothing but the document.
func BuildPreview(d Document) Preview {
	return Preview{
		Title: d.Title,
		Size:  d.Size(),
		Nodes: previewNodes(d.Content),
	}
}

func previewNodes(content []Widget) []PreviewNode {
	nodes := make([]PreviewNode, 0, len(content))
	for _, w := range content {
		nodes = append(nodes, previewNode(w))
	}
	return nodes
}

func previewNode(w Widget) PreviewNode {
	n := PreviewNode{Index: w.WidgetIndex(), Type: w.Type()}
	switch w := w.(type) {
	case *Label:
		n.Caption = orDefault(w.Text, "Label")
	case *Input:
		n.Caption = orDefault(w.ID, "Input")
	case *Button:
		n.Caption = orDefault(w.Text, "Button")
	case *CheckBox:
		n.Caption = orDefault(w.Text, "Checkbox")
	case *RadioButton:
		n.Caption = orDefault(w.Text, "Radio Button")
	case *SelectMenu:
		n.Caption = w.Text
		n.Options = w.Options
		if len(n.Options) == 0 {
			n.Options = []string{"Select..."}
		}
	case *Layout:
		n.Orientation = w.Orientation
		n.Children = previewNodes(w.Content)
	}
	return n
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
