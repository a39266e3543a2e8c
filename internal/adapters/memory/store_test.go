package memory

import (
	"errors"
	"reflect"
	"sync"
	"testing"

	"tkbuilder/internal/application"
	"tkbuilder/internal/domain"
)

func template(t *testing.T, wt domain.WidgetType) domain.Template {
	t.Helper()
	tmpl, ok := domain.DefaultTemplate(wt)
	if !ok {
		t.Fatalf("no default template for %s", wt)
	}
	return tmpl
}

func add(t *testing.T, s *Store, target int, wt domain.WidgetType) domain.Widget {
	t.Helper()
	w, err := s.Add(target, template(t, wt))
	if err != nil {
		t.Fatalf("Add(%d, %s) failed: %v", target, wt, err)
	}
	return w
}

func indices(content []domain.Widget) []int {
	var out []int
	for _, w := range content {
		out = append(out, w.WidgetIndex())
	}
	return out
}

func TestStore_ExampleScenario(t *testing.T) {
	s := NewStore(domain.DefaultDocument())

	a := add(t, s, domain.RootIndex, domain.WidgetButton)
	b := add(t, s, domain.RootIndex, domain.WidgetLayout)
	c := add(t, s, b.WidgetIndex(), domain.WidgetButton)

	if a.WidgetIndex() != 1 || b.WidgetIndex() != 2 || c.WidgetIndex() != 3 {
		t.Fatalf("expected indices 1, 2, 3, got %d, %d, %d", a.WidgetIndex(), b.WidgetIndex(), c.WidgetIndex())
	}

	moved, err := s.Move(3, domain.DirectionUp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if moved {
		t.Error("expected move of an only child to be a no-op")
	}

	if err := s.Remove(2); err != nil {
		t.Fatalf("Remove(2) failed: %v", err)
	}

	if _, err := s.Parent(3); !errors.Is(err, application.ErrNodeNotFound) {
		t.Errorf("expected ErrNodeNotFound for removed child, got %v", err)
	}
	if got := indices(s.Document().Content); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("expected only widget 1 left, got %v", got)
	}
}

func TestStore_Add(t *testing.T) {
	t.Run("indices strictly increase", func(t *testing.T) {
		s := NewStore(domain.DefaultDocument())
		layout := add(t, s, domain.RootIndex, domain.WidgetLayout)

		last := layout.WidgetIndex()
		seen := map[int]bool{last: true}
		for i, wt := range domain.WidgetTypes() {
			target := domain.RootIndex
			if i%2 == 0 {
				target = layout.WidgetIndex()
			}
			w := add(t, s, target, wt)
			if w.WidgetIndex() <= last {
				t.Fatalf("index %d not greater than previous %d", w.WidgetIndex(), last)
			}
			if seen[w.WidgetIndex()] {
				t.Fatalf("index %d assigned twice", w.WidgetIndex())
			}
			seen[w.WidgetIndex()] = true
			last = w.WidgetIndex()
		}
	})

	t.Run("synthesizes ids", func(t *testing.T) {
		s := NewStore(domain.DefaultDocument())
		add(t, s, domain.RootIndex, domain.WidgetLabel)
		w := add(t, s, domain.RootIndex, domain.WidgetCheckBox)

		cb, ok := w.(*domain.CheckBox)
		if !ok {
			t.Fatalf("expected *domain.CheckBox, got %T", w)
		}
		if cb.ID != "checkbox_2" {
			t.Errorf("expected id checkbox_2, got %q", cb.ID)
		}
		if cb.Text != "New Checkbox" {
			t.Errorf("expected default text, got %q", cb.Text)
		}
	})

	t.Run("keeps template id", func(t *testing.T) {
		s := NewStore(domain.DefaultDocument())
		tmpl := domain.Template{Type: domain.WidgetRadioButton, Defaults: domain.Attributes{}.WithID("group_a")}
		w, err := s.Add(domain.RootIndex, tmpl)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := w.(*domain.RadioButton).ID; got != "group_a" {
			t.Errorf("expected template id group_a, got %q", got)
		}
	})

	t.Run("non-layout target", func(t *testing.T) {
		s := NewStore(domain.DefaultDocument())
		label := add(t, s, domain.RootIndex, domain.WidgetLabel)

		_, err := s.Add(label.WidgetIndex(), template(t, domain.WidgetButton))
		if !errors.Is(err, application.ErrInvalidTarget) {
			t.Fatalf("expected ErrInvalidTarget, got %v", err)
		}
		if s.Counter() != 1 {
			t.Errorf("failed add must not consume an index, counter = %d", s.Counter())
		}
		if n := domain.Count(s.Document().Content); n != 1 {
			t.Errorf("expected 1 widget, got %d", n)
		}
	})

	t.Run("missing target", func(t *testing.T) {
		s := NewStore(domain.DefaultDocument())
		_, err := s.Add(42, template(t, domain.WidgetButton))
		if !errors.Is(err, application.ErrNodeNotFound) {
			t.Fatalf("expected ErrNodeNotFound, got %v", err)
		}
	})

	t.Run("nested append order", func(t *testing.T) {
		s := NewStore(domain.DefaultDocument())
		outer := add(t, s, domain.RootIndex, domain.WidgetLayout)
		inner := add(t, s, outer.WidgetIndex(), domain.WidgetLayout)
		add(t, s, inner.WidgetIndex(), domain.WidgetLabel)
		add(t, s, inner.WidgetIndex(), domain.WidgetInput)

		children, err := s.ContentAt([]int{0, 0})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := indices(children); !reflect.DeepEqual(got, []int{3, 4}) {
			t.Errorf("expected [3 4], got %v", got)
		}
	})
}

func TestStore_Remove(t *testing.T) {
	s := NewStore(domain.DefaultDocument())
	add(t, s, domain.RootIndex, domain.WidgetLabel)
	add(t, s, domain.RootIndex, domain.WidgetButton)
	add(t, s, domain.RootIndex, domain.WidgetInput)

	if err := s.Remove(2); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if got := indices(s.Document().Content); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("siblings must keep their indices, got %v", got)
	}

	err := s.Remove(2)
	if !errors.Is(err, application.ErrNodeNotFound) {
		t.Errorf("expected ErrNodeNotFound on second remove, got %v", err)
	}
	if got := indices(s.Document().Content); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("second remove changed the document: %v", got)
	}

	w := add(t, s, domain.RootIndex, domain.WidgetLabel)
	if w.WidgetIndex() != 4 {
		t.Errorf("removed indices must not be reused, got %d", w.WidgetIndex())
	}
}

func TestStore_RemoveClearsSelection(t *testing.T) {
	s := NewStore(domain.DefaultDocument())
	layout := add(t, s, domain.RootIndex, domain.WidgetLayout)
	add(t, s, layout.WidgetIndex(), domain.WidgetButton)
	other := add(t, s, domain.RootIndex, domain.WidgetLabel)

	if _, err := s.Select(other.WidgetIndex()); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if err := s.Remove(layout.WidgetIndex()); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if sel, ok := s.Selected(); !ok || sel.WidgetIndex() != other.WidgetIndex() {
		t.Errorf("unrelated selection should survive, got %v %v", sel, ok)
	}

	layout = add(t, s, domain.RootIndex, domain.WidgetLayout)
	child := add(t, s, layout.WidgetIndex(), domain.WidgetButton)
	if _, err := s.Select(child.WidgetIndex()); err != nil {
		t.Fatalf("Select failed: %v", err)
	}
	if err := s.Remove(layout.WidgetIndex()); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, ok := s.Selected(); ok {
		t.Error("selection inside the removed subtree should be cleared")
	}
}

func TestStore_Update(t *testing.T) {
	s := NewStore(domain.DefaultDocument())
	layout := add(t, s, domain.RootIndex, domain.WidgetLayout)
	btn := add(t, s, layout.WidgetIndex(), domain.WidgetButton)
	before := s.Document()

	if _, err := s.Select(btn.WidgetIndex()); err != nil {
		t.Fatalf("Select failed: %v", err)
	}

	updated, err := s.Update(btn.WidgetIndex(), domain.Attributes{}.WithText("X"))
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	b, ok := updated.(*domain.Button)
	if !ok {
		t.Fatalf("kind changed to %T", updated)
	}
	if b.Text != "X" || b.Execute != "button_func" || b.Index != btn.WidgetIndex() {
		t.Errorf("unexpected merge result: %+v", b)
	}

	got, err := s.Get(btn.WidgetIndex())
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.(*domain.Button).Text != "X" {
		t.Errorf("expected stored text X, got %q", got.(*domain.Button).Text)
	}

	sel, ok := s.Selected()
	if !ok || sel.(*domain.Button).Text != "X" {
		t.Errorf("selection should observe the update, got %v", sel)
	}

	inner := before.Content[0].(*domain.Layout).Content[0].(*domain.Button)
	if inner.Text != "New Button" {
		t.Errorf("earlier snapshot was modified: %q", inner.Text)
	}

	if _, err := s.Update(99, domain.Attributes{}.WithText("Y")); !errors.Is(err, application.ErrNodeNotFound) {
		t.Errorf("expected ErrNodeNotFound, got %v", err)
	}
}

func TestStore_UpdateEmptyIsNoop(t *testing.T) {
	s := NewStore(domain.DefaultDocument())
	add(t, s, domain.RootIndex, domain.WidgetSelectMenu)
	before := s.Document()

	if _, err := s.Update(1, domain.Attributes{}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !reflect.DeepEqual(before, s.Document()) {
		t.Error("merging empty attributes changed the document")
	}
}

func TestStore_UpdateIgnoresForeignFields(t *testing.T) {
	s := NewStore(domain.DefaultDocument())
	add(t, s, domain.RootIndex, domain.WidgetLabel)

	w, err := s.Update(1, domain.Attributes{}.WithText("hi").WithOrientation(domain.Horizontal).WithID("x"))
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	label, ok := w.(*domain.Label)
	if !ok {
		t.Fatalf("expected *domain.Label, got %T", w)
	}
	if label.Text != "hi" {
		t.Errorf("expected text hi, got %q", label.Text)
	}
}

func TestStore_Move(t *testing.T) {
	newStore := func(t *testing.T) *Store {
		s := NewStore(domain.DefaultDocument())
		layout := add(t, s, domain.RootIndex, domain.WidgetLayout)
		add(t, s, layout.WidgetIndex(), domain.WidgetLabel)
		add(t, s, layout.WidgetIndex(), domain.WidgetButton)
		add(t, s, layout.WidgetIndex(), domain.WidgetInput)
		add(t, s, domain.RootIndex, domain.WidgetLabel)
		return s
	}

	tests := []struct {
		name      string
		index     int
		dir       domain.Direction
		wantMoved bool
		wantInner []int
		wantRoot  []int
	}{
		{"middle up", 3, domain.DirectionUp, true, []int{3, 2, 4}, []int{1, 5}},
		{"middle down", 3, domain.DirectionDown, true, []int{2, 4, 3}, []int{1, 5}},
		{"first up", 2, domain.DirectionUp, false, []int{2, 3, 4}, []int{1, 5}},
		{"last down", 4, domain.DirectionDown, false, []int{2, 3, 4}, []int{1, 5}},
		{"root down", 1, domain.DirectionDown, true, []int{2, 3, 4}, []int{5, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(t)
			moved, err := s.Move(tt.index, tt.dir)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if moved != tt.wantMoved {
				t.Errorf("moved = %v, want %v", moved, tt.wantMoved)
			}

			root := s.Document().Content
			if got := indices(root); !reflect.DeepEqual(got, tt.wantRoot) {
				t.Errorf("root order = %v, want %v", got, tt.wantRoot)
			}
			inner, err := s.ContentAt(mustPath(t, s, 1))
			if err != nil {
				t.Fatalf("ContentAt failed: %v", err)
			}
			if got := indices(inner); !reflect.DeepEqual(got, tt.wantInner) {
				t.Errorf("layout order = %v, want %v", got, tt.wantInner)
			}
		})
	}

	t.Run("round trip", func(t *testing.T) {
		s := newStore(t)
		before := s.Document()
		if _, err := s.Move(3, domain.DirectionUp); err != nil {
			t.Fatal(err)
		}
		if _, err := s.Move(3, domain.DirectionDown); err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(before, s.Document()) {
			t.Error("up then down should restore the original order")
		}
	})

	t.Run("missing index", func(t *testing.T) {
		s := newStore(t)
		before := s.Document()
		moved, err := s.Move(77, domain.DirectionUp)
		if moved || !errors.Is(err, application.ErrNodeNotFound) {
			t.Errorf("expected no move and ErrNodeNotFound, got %v %v", moved, err)
		}
		if !reflect.DeepEqual(before, s.Document()) {
			t.Error("document changed")
		}
	})
}

// mustPath returns the positional path of the layout's own children
func mustPath(t *testing.T, s *Store, layoutIndex int) []int {
	t.Helper()
	path, err := s.IndexPath(layoutIndex)
	if err != nil {
		t.Fatalf("IndexPath failed: %v", err)
	}
	positions, err := s.PathTo(layoutIndex)
	if err != nil {
		t.Fatalf("PathTo failed: %v", err)
	}
	if path[len(path)-1] != layoutIndex {
		t.Fatalf("IndexPath should end with the index, got %v", path)
	}
	root, err := s.ContentAt(positions)
	if err != nil {
		t.Fatalf("ContentAt failed: %v", err)
	}
	for i, w := range root {
		if w.WidgetIndex() == layoutIndex {
			return append(positions, i)
		}
	}
	t.Fatalf("layout %d not found", layoutIndex)
	return nil
}

func TestStore_ParentAndPath(t *testing.T) {
	s := NewStore(domain.DefaultDocument())
	add(t, s, domain.RootIndex, domain.WidgetLabel)
	outer := add(t, s, domain.RootIndex, domain.WidgetLayout)
	add(t, s, outer.WidgetIndex(), domain.WidgetLabel)
	inner := add(t, s, outer.WidgetIndex(), domain.WidgetLayout)
	leaf := add(t, s, inner.WidgetIndex(), domain.WidgetButton)

	parent, err := s.Parent(1)
	if err != nil {
		t.Fatalf("Parent failed: %v", err)
	}
	if _, ok := parent.(*domain.Document); !ok {
		t.Errorf("root-level parent should be the document, got %T", parent)
	}

	parent, err = s.Parent(leaf.WidgetIndex())
	if err != nil {
		t.Fatalf("Parent failed: %v", err)
	}
	l, ok := parent.(*domain.Layout)
	if !ok || l.Index != inner.WidgetIndex() {
		t.Errorf("expected layout %d, got %#v", inner.WidgetIndex(), parent)
	}

	tests := []struct {
		index int
		want  []int
	}{
		{1, []int{}},
		{outer.WidgetIndex(), []int{}},
		{inner.WidgetIndex(), []int{1}},
		{leaf.WidgetIndex(), []int{1, 1}},
	}
	for _, tt := range tests {
		got, err := s.PathTo(tt.index)
		if err != nil {
			t.Fatalf("PathTo(%d) failed: %v", tt.index, err)
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("PathTo(%d) = %v, want %v", tt.index, got, tt.want)
		}
	}

	ip, err := s.IndexPath(leaf.WidgetIndex())
	if err != nil {
		t.Fatalf("IndexPath failed: %v", err)
	}
	if !reflect.DeepEqual(ip, []int{1, 1, leaf.WidgetIndex()}) {
		t.Errorf("IndexPath = %v", ip)
	}

	if _, err := s.PathTo(404); !errors.Is(err, application.ErrNodeNotFound) {
		t.Errorf("expected ErrNodeNotFound, got %v", err)
	}
	if _, err := s.ContentAt([]int{0}); err == nil {
		t.Error("a path through a label should fail")
	}
}

func TestStore_Replace(t *testing.T) {
	s := NewStore(domain.DefaultDocument())
	add(t, s, domain.RootIndex, domain.WidgetLabel)
	if _, err := s.Select(1); err != nil {
		t.Fatal(err)
	}

	imported := domain.Document{
		Title:    "Imported",
		Geometry: "600x300",
		Version:  "2",
		Content: []domain.Widget{
			&domain.Label{Meta: domain.Meta{Index: 7}, Text: "a"},
			&domain.Layout{Meta: domain.Meta{Index: 12}, Orientation: domain.Horizontal, Content: []domain.Widget{
				&domain.Button{Meta: domain.Meta{Index: 9}, Text: "b"},
			}},
		},
	}

	if err := s.Replace(imported); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}
	if _, ok := s.Selected(); ok {
		t.Error("import should clear the selection")
	}
	if s.Counter() < 12 {
		t.Errorf("counter %d below imported maximum 12", s.Counter())
	}
	w := add(t, s, domain.RootIndex, domain.WidgetLabel)
	if w.WidgetIndex() != 13 {
		t.Errorf("expected next index 13, got %d", w.WidgetIndex())
	}
}

func TestStore_ReplaceRejectsDuplicates(t *testing.T) {
	s := NewStore(domain.DefaultDocument())
	add(t, s, domain.RootIndex, domain.WidgetLabel)
	before := s.Document()

	dup := domain.Document{Content: []domain.Widget{
		&domain.Label{Meta: domain.Meta{Index: 3}},
		&domain.Layout{Meta: domain.Meta{Index: 4}, Content: []domain.Widget{
			&domain.Input{Meta: domain.Meta{Index: 3}},
		}},
	}}
	err := s.Replace(dup)
	if !errors.Is(err, application.ErrDuplicateIndex) {
		t.Fatalf("expected ErrDuplicateIndex, got %v", err)
	}
	if !reflect.DeepEqual(before, s.Document()) {
		t.Error("rejected import changed the document")
	}
}

func TestStore_ReplaceFillsMissingIndices(t *testing.T) {
	s := NewStore(domain.DefaultDocument())
	doc := domain.Document{Content: []domain.Widget{
		&domain.Label{Meta: domain.Meta{Index: 5}},
		&domain.Label{},
		&domain.Layout{Content: []domain.Widget{&domain.Input{ID: "name"}}},
	}}
	if err := s.Replace(doc); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	got := s.Document()
	if dup, found := domain.DuplicateIndex(got.Content); found {
		t.Fatalf("duplicate index %d after fill", dup)
	}
	domain.Walk(got.Content, func(w domain.Widget, _ int) bool {
		if w.WidgetIndex() == 0 {
			t.Errorf("widget %s left without index", w.Type())
		}
		return true
	})
	if s.Counter() != 8 {
		t.Errorf("expected counter 8, got %d", s.Counter())
	}
}

func TestStore_CounterIsMonotonic(t *testing.T) {
	s := NewStore(domain.DefaultDocument())
	for range 5 {
		add(t, s, domain.RootIndex, domain.WidgetLabel)
	}
	s.Reset(domain.DefaultDocument())
	if s.Counter() != 5 {
		t.Errorf("reset must not lower the counter, got %d", s.Counter())
	}
	if w := add(t, s, domain.RootIndex, domain.WidgetLabel); w.WidgetIndex() != 6 {
		t.Errorf("expected index 6, got %d", w.WidgetIndex())
	}
}

func TestStore_SnapshotsAreIsolated(t *testing.T) {
	s := NewStore(domain.DefaultDocument())
	add(t, s, domain.RootIndex, domain.WidgetLabel)

	doc := s.Document()
	doc.Content[0].(*domain.Label).Text = "mutated"
	doc.Title = "mutated"

	fresh := s.Document()
	if fresh.Content[0].(*domain.Label).Text == "mutated" || fresh.Title == "mutated" {
		t.Error("callers must not be able to mutate store state")
	}
}

func TestStore_SetProperties(t *testing.T) {
	s := NewStore(domain.DefaultDocument())
	title := "Calculator"
	doc := s.SetProperties(domain.Properties{Title: &title})
	if doc.Title != "Calculator" || doc.Geometry != domain.DefaultGeometry {
		t.Errorf("unexpected document: %+v", doc)
	}
}

func TestStore_ConcurrentUse(t *testing.T) {
	s := NewStore(domain.DefaultDocument())
	layout := add(t, s, domain.RootIndex, domain.WidgetLayout)
	tmpl := template(t, domain.WidgetButton)

	const workers, rounds = 8, 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < rounds; j++ {
				w, err := s.Add(layout.WidgetIndex(), tmpl)
				if err != nil {
					t.Errorf("Add failed: %v", err)
					return
				}
				if _, err := s.Select(w.WidgetIndex()); err != nil {
					t.Errorf("Select(%d) failed: %v", w.WidgetIndex(), err)
					return
				}
				s.Selected()
				s.MaxIndex()
				if err := s.Remove(w.WidgetIndex()); err != nil {
					t.Errorf("Remove(%d) failed: %v", w.WidgetIndex(), err)
					return
				}
				_ = s.Document()
			}
		}()
	}
	wg.Wait()

	if got, want := s.Counter(), 1+workers*rounds; got != want {
		t.Errorf("Counter() = %d, want %d", got, want)
	}
	doc := s.Document()
	if l := doc.Content[0].(*domain.Layout); len(l.Content) != 0 {
		t.Errorf("layout should be empty, has %v", indices(l.Content))
	}
	if idx, dup := domain.DuplicateIndex(doc.Content); dup {
		t.Errorf("duplicate index %d", idx)
	}
}
