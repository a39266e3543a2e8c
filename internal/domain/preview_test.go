package domain

import (
	"reflect"
	"testing"
)

func TestBuildPreview(t *testing.T) {
	d := NewDocument("Login", "600x300", "1.0")
	d.Content = []Widget{
		&Label{Meta: Meta{Index: 1}},
		&Layout{Meta: Meta{Index: 2}, Orientation: Horizontal, Content: []Widget{
			&Input{Meta: Meta{Index: 3}},
			&Button{Meta: Meta{Index: 4}, Text: "Go"},
			&SelectMenu{Meta: Meta{Index: 5}},
		}},
	}

	p := BuildPreview(d)
	if p.Title != "Login" || p.Size.Width != 600 || p.Size.Height != 300 {
		t.Errorf("unexpected header: %+v", p)
	}
	if p.SizeLabel() != "Window size: 600x300" {
		t.Errorf("SizeLabel() = %q", p.SizeLabel())
	}
	if p.Nodes[0].Caption != "Label" {
		t.Errorf("empty label caption = %q", p.Nodes[0].Caption)
	}

	row := p.Nodes[1]
	if row.Orientation != Horizontal || len(row.Children) != 3 {
		t.Fatalf("unexpected layout node: %+v", row)
	}
	if row.Children[0].Caption != "Input" || row.Children[1].Caption != "Go" {
		t.Errorf("unexpected captions: %q %q", row.Children[0].Caption, row.Children[1].Caption)
	}
	if !reflect.DeepEqual(row.Children[2].Options, []string{"Select..."}) {
		t.Errorf("empty select menu options = %v", row.Children[2].Options)
	}
}

func TestPreview_UnreadableGeometry(t *testing.T) {
	p := BuildPreview(NewDocument("x", "wide", ""))
	if p.Size.Valid() {
		t.Error("geometry should not be valid")
	}
	if p.SizeLabel() != "Window size: NaNxNaN" {
		t.Errorf("SizeLabel() = %q", p.SizeLabel())
	}
}
