package domain

import (
	"reflect"
	"testing"
)

// sampleTree builds:
//
//	Label(1)
//	Layout(2)
//	  Button(3)
//	  Layout(4)
//	    Input(5)
//	Label(6)
func sampleTree() []Widget {
	return []Widget{
		&Label{Meta: Meta{Index: 1}, Text: "title"},
		&Layout{Meta: Meta{Index: 2}, Orientation: Vertical, Content: []Widget{
			&Button{Meta: Meta{Index: 3}, Text: "ok"},
			&Layout{Meta: Meta{Index: 4}, Orientation: Horizontal, Content: []Widget{
				&Input{Meta: Meta{Index: 5}, ID: "input_5"},
			}},
		}},
		&Label{Meta: Meta{Index: 6}},
	}
}

func TestLocate(t *testing.T) {
	tests := []struct {
		name     string
		index    int
		wantPath []int
		wantPos  int
		wantOK   bool
	}{
		{"root level first", 1, []int{}, 0, true},
		{"root level layout", 2, []int{}, 1, true},
		{"nested", 3, []int{1}, 0, true},
		{"nested layout", 4, []int{1}, 1, true},
		{"deep", 5, []int{1, 1}, 0, true},
		{"root level last", 6, []int{}, 2, true},
		{"missing", 9, nil, -1, false},
	}

	content := sampleTree()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, pos, ok := Locate(content, tt.index)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !reflect.DeepEqual(path, tt.wantPath) {
				t.Errorf("path = %v, want %v", path, tt.wantPath)
			}
			if pos != tt.wantPos {
				t.Errorf("pos = %d, want %d", pos, tt.wantPos)
			}
		})
	}
}

func TestChildrenAt(t *testing.T) {
	content := sampleTree()

	children, ok := ChildrenAt(content, []int{1, 1})
	if !ok || len(children) != 1 || children[0].WidgetIndex() != 5 {
		t.Errorf("unexpected children at [1 1]: %v %v", children, ok)
	}

	if _, ok := ChildrenAt(content, []int{0}); ok {
		t.Error("a label has no children")
	}
	if _, ok := ChildrenAt(content, []int{7}); ok {
		t.Error("out of range path should fail")
	}
}

func TestReplaceChildren_CopiesOnlyThePath(t *testing.T) {
	content := sampleTree()
	original := DeepCloneAll(content)

	out, ok := ReplaceChildren(content, []int{1, 1}, func(children []Widget) []Widget {
		return append(children, &Label{Meta: Meta{Index: 7}})
	})
	if !ok {
		t.Fatal("ReplaceChildren failed")
	}

	if !reflect.DeepEqual(content, original) {
		t.Error("input content was modified")
	}
	if out[0] != content[0] || out[2] != content[2] {
		t.Error("widgets off the path should be shared")
	}
	if out[1] == content[1] {
		t.Error("layouts on the path should be copied")
	}
	inner, _ := ChildrenAt(out, []int{1, 1})
	if len(inner) != 2 || inner[1].WidgetIndex() != 7 {
		t.Errorf("unexpected rewritten children: %v", inner)
	}

	if _, ok := ReplaceChildren(content, []int{0}, func(c []Widget) []Widget { return c }); ok {
		t.Error("path through a label should fail")
	}
}

func TestMaxIndex(t *testing.T) {
	tests := []struct {
		name    string
		content []Widget
		want    int
	}{
		{"empty", nil, 0},
		{"sample", sampleTree(), 6},
		{
			name: "layout newer than its children",
			content: []Widget{
				&Label{Meta: Meta{Index: 1}},
				&Layout{Meta: Meta{Index: 9}, Content: []Widget{
					&Label{Meta: Meta{Index: 2}},
				}},
			},
			want: 9,
		},
		{
			name:    "empty layout",
			content: []Widget{&Layout{Meta: Meta{Index: 4}}},
			want:    4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaxIndex(tt.content); got != tt.want {
				t.Errorf("MaxIndex() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFlatten(t *testing.T) {
	rows := Flatten(sampleTree())

	var got []int
	var depths []int
	for _, r := range rows {
		got = append(got, r.Widget.WidgetIndex())
		depths = append(depths, r.Depth)
	}
	if !reflect.DeepEqual(got, []int{1, 2, 3, 4, 5, 6}) {
		t.Errorf("order = %v", got)
	}
	if !reflect.DeepEqual(depths, []int{0, 0, 1, 1, 2, 0}) {
		t.Errorf("depths = %v", depths)
	}
	if !rows[0].IsFirst() || rows[0].IsLast() {
		t.Error("row 0 should be first but not last")
	}
	if !rows[4].IsFirst() || !rows[4].IsLast() {
		t.Error("only child should be first and last")
	}
}

func TestDuplicateIndex(t *testing.T) {
	if _, found := DuplicateIndex(sampleTree()); found {
		t.Error("sample tree has unique indices")
	}

	content := append(sampleTree(), &Input{Meta: Meta{Index: 4}})
	dup, found := DuplicateIndex(content)
	if !found || dup != 4 {
		t.Errorf("expected duplicate 4, got %d %v", dup, found)
	}
}

func TestFillIndices(t *testing.T) {
	content := []Widget{
		&Label{Meta: Meta{Index: 3}},
		&Layout{Content: []Widget{&Button{}}},
	}
	next := 3
	filled := FillIndices(content, func() int {
		next++
		return next
	})
	if filled != 2 {
		t.Errorf("filled = %d, want 2", filled)
	}
	if content[1].WidgetIndex() != 4 {
		t.Errorf("layout index = %d, want 4", content[1].WidgetIndex())
	}
	if content[1].(*Layout).Content[0].WidgetIndex() != 5 {
		t.Error("nested button should get index 5")
	}
}

func TestParseDirection(t *testing.T) {
	for in, want := range map[string]Direction{"up": DirectionUp, " DOWN ": DirectionDown} {
		got, ok := ParseDirection(in)
		if !ok || got != want {
			t.Errorf("ParseDirection(%q) = %v %v", in, got, ok)
		}
	}
	if _, ok := ParseDirection("left"); ok {
		t.Error("left is not a direction")
	}
}
