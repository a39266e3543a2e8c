package domain

import (
	"slices"
	"strings"
)

// Locate finds the widget with the given index by depth-first search.
// path holds the positions of its ancestors from the root down, pos its
// position within its direct container.
func Locate(content []Widget, index int) (path []int, pos int, ok bool) {
	for i, w := range content {
		if w.WidgetIndex() == index {
			return []int{}, i, true
		}
		if l, isLayout := w.(*Layout); isLayout {
			if sub, p, found := Locate(l.Content, index); found {
				return append([]int{i}, sub...), p, true
			}
		}
	}
	return nil, -1, false
}

// Find returns the widget with the given index
func Find(content []Widget, index int) (Widget, bool) {
	path, pos, ok := Locate(content, index)
	if !ok {
		return nil, false
	}
	children, _ := ChildrenAt(content, path)
	return children[pos], true
}

// ChildrenAt resolves a positional path to the child sequence of the
// container it addresses. An empty path is the root content.
func ChildrenAt(content []Widget, path []int) ([]Widget, bool) {
	current := content
	for _, p := range path {
		if p < 0 || p >= len(current) {
			return nil, false
		}
		l, ok := current[p].(*Layout)
		if !ok {
			return nil, false
		}
		current = l.Content
	}
	return current, true
}

// ContainerAt returns the container addressed by path: the layout at the end
// of a non-empty path, or nil for the root.
func ContainerAt(content []Widget, path []int) (*Layout, bool) {
	if len(path) == 0 {
		return nil, true
	}
	parent, ok := ChildrenAt(content, path[:len(path)-1])
	if !ok {
		return nil, false
	}
	last := path[len(path)-1]
	if last < 0 || last >= len(parent) {
		return nil, false
	}
	l, ok := parent[last].(*Layout)
	return l, ok
}

// ReplaceChildren returns a copy of content in which the child sequence at
// path has been replaced by fn's result. Only the containers along path are
// copied; everything else is shared with content.
func ReplaceChildren(content []Widget, path []int, fn func(children []Widget) []Widget) ([]Widget, bool) {
	if len(path) == 0 {
		return orNil(fn(slices.Clone(content))), true
	}
	p := path[0]
	if p < 0 || p >= len(content) {
		return nil, false
	}
	l, ok := content[p].(*Layout)
	if !ok {
		return nil, false
	}
	inner, ok := ReplaceChildren(l.Content, path[1:], fn)
	if !ok {
		return nil, false
	}
	cp := l.clone().(*Layout)
	cp.Content = inner
	out := slices.Clone(content)
	out[p] = cp
	return out, true
}

// MaxIndex returns the largest index in the subtree, counting layouts as
// well as their descendants. An empty subtree yields 0.
func MaxIndex(content []Widget) int {
	highest := 0
	for _, w := range content {
		highest = max(highest, w.WidgetIndex())
		if l, ok := w.(*Layout); ok {
			highest = max(highest, MaxIndex(l.Content))
		}
	}
	return highest
}

// Walk visits every widget depth-first in document order. Returning false
// from fn skips the widget's children.
func Walk(content []Widget, fn func(w Widget, depth int) bool) {
	walk(content, 0, fn)
}

func walk(content []Widget, depth int, fn func(Widget, int) bool) {
	for _, w := range content {
		if !fn(w, depth) {
			continue
		}
		if l, ok := w.(*Layout); ok {
			walk(l.Content, depth+1, fn)
		}
	}
}

// Count returns the number of widgets in the subtree
func Count(content []Widget) int {
	n := 0
	Walk(content, func(Widget, int) bool {
		n++
		return true
	})
	return n
}

// DuplicateIndex returns the first index that appears more than once
func DuplicateIndex(content []Widget) (int, bool) {
	seen := make(map[int]bool)
	dup, found := 0, false
	Walk(content, func(w Widget, _ int) bool {
		if found {
			return false
		}
		idx := w.WidgetIndex()
		if idx != 0 && seen[idx] {
			dup, found = idx, true
			return false
		}
		seen[idx] = true
		return true
	})
	return dup, found
}

// Row is one line of a flattened tree listing
type Row struct {
	Widget   Widget
	Depth    int
	Position int // position among siblings
	Siblings int // number of siblings including the widget itself
}

// IsFirst reports whether the widget cannot move up
func (r Row) IsFirst() bool {
	return r.Position == 0
}

// IsLast reports whether the widget cannot move down
func (r Row) IsLast() bool {
	return r.Position == r.Siblings-1
}

// Flatten returns every widget in document order with its depth (for list rendering)
func Flatten(content []Widget) []Row {
	var rows []Row
	flattenRecursive(content, 0, &rows)
	return rows
}

func flattenRecursive(content []Widget, depth int, rows *[]Row) {
	for i, w := range content {
		*rows = append(*rows, Row{Widget: w, Depth: depth, Position: i, Siblings: len(content)})
		if l, ok := w.(*Layout); ok {
			flattenRecursive(l.Content, depth+1, rows)
		}
	}
}

// Direction is the way a widget moves among its siblings
type Direction int

const (
	DirectionUp Direction = iota
	DirectionDown
)

func (d Direction) String() string {
	if d == DirectionUp {
		return "up"
	}
	return "down"
}

// ParseDirection resolves "up" or "down"
func ParseDirection(s string) (Direction, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return DirectionUp, true
	case "down":
		return DirectionDown, true
	}
	return 0, false
}

// FillIndices gives every widget whose index is unset (0) the value returned
// by next, modifying the widgets in place. It returns how many were filled.
func FillIndices(content []Widget, next func() int) int {
	filled := 0
	Walk(content, func(w Widget, _ int) bool {
		if w.WidgetIndex() == 0 {
			w.meta().Index = next()
			filled++
		}
		return true
	})
	return filled
}
