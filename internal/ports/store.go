package ports

import "tkbuilder/internal/domain"

// WidgetStore holds one editing session: the document, the selection and
// the creation counter. Every method is applied atomically.
type WidgetStore interface {
	// Document access
	Document() domain.Document
	Reset(doc domain.Document)
	Replace(doc domain.Document) error
	SetProperties(props domain.Properties) domain.Document

	// Mutations
	Add(target int, tmpl domain.Template) (domain.Widget, error)
	Remove(index int) error
	Update(index int, attrs domain.Attributes) (domain.Widget, error)
	Move(index int, dir domain.Direction) (bool, error)

	// Queries
	Get(index int) (domain.Widget, error)
	Parent(index int) (domain.Container, error)
	PathTo(index int) ([]int, error)
	IndexPath(index int) ([]int, error)
	ContentAt(path []int) ([]domain.Widget, error)
	MaxIndex() int
	Counter() int

	// Selection
	Select(index int) (domain.Widget, error)
	Selected() (domain.Widget, bool)
	ClearSelection()
}
