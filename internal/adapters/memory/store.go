package memory

import (
	"fmt"
	"slices"
	"sync"

	"tkbuilder/internal/application"
	"tkbuilder/internal/domain"
	"tkbuilder/internal/ports"
)

// Store implements ports.WidgetStore in memory.
//
// Published widgets are never modified: every mutation rebuilds the
// containers on the path to the affected widget and swaps the new root
// content in once it is complete, so a failed operation leaves the document
// as it was. Everything handed out is a deep copy.
type Store struct {
	mu       sync.Mutex
	doc      domain.Document
	selected int // index of the selected widget, 0 when nothing is selected
	counter  int // last index handed out
}

// Ensure Store implements WidgetStore
var _ ports.WidgetStore = (*Store)(nil)

// NewStore creates a store holding doc, with the counter seeded past its indices
func NewStore(doc domain.Document) *Store {
	s := &Store{}
	s.reset(doc.Clone())
	return s
}

// Document returns a copy of the current document
func (s *Store) Document() domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clone()
}

// Reset starts over with doc, keeping the counter monotonic
func (s *Store) Reset(doc domain.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset(doc.Clone())
}

// Replace swaps in an imported document. Widgets without an index are given
// fresh ones; a document that repeats an index is rejected untouched.
func (s *Store) Replace(doc domain.Document) error {
	doc = doc.Clone()
	if dup, found := domain.DuplicateIndex(doc.Content); found {
		return &application.DuplicateIndexError{Index: dup}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.reset(doc)
	domain.FillIndices(s.doc.Content, func() int {
		s.counter++
		return s.counter
	})
	return nil
}

func (s *Store) reset(doc domain.Document) {
	s.doc = doc
	s.selected = 0
	s.counter = max(s.counter, domain.MaxIndex(doc.Content))
}

// SetProperties edits the title, geometry or version
func (s *Store) SetProperties(props domain.Properties) domain.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc = props.Apply(s.doc)
	return s.doc.Clone()
}

// Add appends a widget built from tmpl to the document (target RootIndex)
// or to the layout with index target.
func (s *Store) Add(target int, tmpl domain.Template) (domain.Widget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var path []int
	if target != domain.RootIndex {
		p, pos, ok := domain.Locate(s.doc.Content, target)
		if !ok {
			return nil, &application.NodeError{Op: "add", Index: target}
		}
		siblings, _ := domain.ChildrenAt(s.doc.Content, p)
		if t := siblings[pos].Type(); !t.IsContainer() {
			return nil, &application.TargetError{Index: target, Type: t.String()}
		}
		path = append(p, pos)
	}

	w, err := domain.NewWidget(tmpl, s.counter+1)
	if err != nil {
		return nil, &application.ValidationError{Field: "widgetType", Message: err.Error()}
	}

	content, ok := domain.ReplaceChildren(s.doc.Content, path, func(children []domain.Widget) []domain.Widget {
		return append(children, w)
	})
	if !ok {
		return nil, fmt.Errorf("add: container path %v is stale", path)
	}

	s.counter++
	s.doc.Content = content
	return domain.DeepClone(w), nil
}

// Remove deletes the widget and its subtree. The selection is cleared when
// it pointed into the removed subtree.
func (s *Store) Remove(index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, pos, ok := domain.Locate(s.doc.Content, index)
	if !ok {
		return &application.NodeError{Op: "remove", Index: index}
	}

	content, ok := domain.ReplaceChildren(s.doc.Content, path, func(children []domain.Widget) []domain.Widget {
		return slices.Delete(children, pos, pos+1)
	})
	if !ok {
		return fmt.Errorf("remove: container path %v is stale", path)
	}

	s.doc.Content = content
	if s.selected != 0 {
		if _, found := domain.Find(content, s.selected); !found {
			s.selected = 0
		}
	}
	return nil
}

// Update merges attrs over the widget's fields and returns the result
func (s *Store) Update(index int, attrs domain.Attributes) (domain.Widget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, pos, ok := domain.Locate(s.doc.Content, index)
	if !ok {
		return nil, &application.NodeError{Op: "update", Index: index}
	}
	siblings, _ := domain.ChildrenAt(s.doc.Content, path)
	merged := domain.Merge(siblings[pos], attrs)

	content, ok := domain.ReplaceChildren(s.doc.Content, path, func(children []domain.Widget) []domain.Widget {
		children[pos] = merged
		return children
	})
	if !ok {
		return nil, fmt.Errorf("update: container path %v is stale", path)
	}

	s.doc.Content = content
	return domain.DeepClone(merged), nil
}

// Move swaps the widget with its neighbour in dir. It reports false without
// changing anything when the widget is already first (up) or last (down).
func (s *Store) Move(index int, dir domain.Direction) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, pos, ok := domain.Locate(s.doc.Content, index)
	if !ok {
		return false, &application.NodeError{Op: "move", Index: index}
	}
	siblings, _ := domain.ChildrenAt(s.doc.Content, path)

	swap := pos - 1
	if dir == domain.DirectionDown {
		swap = pos + 1
	}
	if swap < 0 || swap >= len(siblings) {
		return false, nil
	}

	content, ok := domain.ReplaceChildren(s.doc.Content, path, func(children []domain.Widget) []domain.Widget {
		children[pos], children[swap] = children[swap], children[pos]
		return children
	})
	if !ok {
		return false, fmt.Errorf("move: container path %v is stale", path)
	}

	s.doc.Content = content
	return true, nil
}

// Get returns the widget with the given index
func (s *Store) Get(index int) (domain.Widget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := domain.Find(s.doc.Content, index)
	if !ok {
		return nil, &application.NodeError{Op: "get", Index: index}
	}
	return domain.DeepClone(w), nil
}

// Parent returns the direct container of the widget: a *domain.Document for
// root-level widgets, otherwise a *domain.Layout.
func (s *Store) Parent(index int) (domain.Container, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, _, ok := domain.Locate(s.doc.Content, index)
	if !ok {
		return nil, &application.NodeError{Op: "parent", Index: index}
	}
	if len(path) == 0 {
		doc := s.doc.Clone()
		return &doc, nil
	}
	l, _ := domain.ContainerAt(s.doc.Content, path)
	return domain.DeepClone(l).(*domain.Layout), nil
}

// PathTo returns the sibling positions of the widget's ancestors, root first
func (s *Store) PathTo(index int) ([]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path, _, ok := domain.Locate(s.doc.Content, index)
	if !ok {
		return nil, &application.NodeError{Op: "path", Index: index}
	}
	return path, nil
}

// IndexPath returns PathTo followed by the widget's own index
func (s *Store) IndexPath(index int) ([]int, error) {
	path, err := s.PathTo(index)
	if err != nil {
		return nil, err
	}
	return append(path, index), nil
}

// ContentAt returns the children of the container addressed by path
func (s *Store) ContentAt(path []int) ([]domain.Widget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	children, ok := domain.ChildrenAt(s.doc.Content, path)
	if !ok {
		return nil, &application.ValidationError{
			Field:   "path",
			Message: fmt.Sprintf("%v does not address a layout", path),
		}
	}
	return domain.DeepCloneAll(children), nil
}

// MaxIndex returns the largest index in the document
func (s *Store) MaxIndex() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.MaxIndex(s.doc.Content)
}

// Counter returns how many indices have been handed out this session
func (s *Store) Counter() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.counter
}

// Select binds the selection to the widget with the given index
func (s *Store) Select(index int) (domain.Widget, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := domain.Find(s.doc.Content, index)
	if !ok {
		return nil, &application.NodeError{Op: "select", Index: index}
	}
	s.selected = index
	return domain.DeepClone(w), nil
}

// Selected returns the live state of the selected widget
func (s *Store) Selected() (domain.Widget, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == 0 {
		return nil, false
	}
	w, ok := domain.Find(s.doc.Content, s.selected)
	if !ok {
		s.selected = 0
		return nil, false
	}
	return domain.DeepClone(w), true
}

// ClearSelection empties the selection
func (s *Store) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = 0
}
