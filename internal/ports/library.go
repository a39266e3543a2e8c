package ports

import (
	"time"

	"tkbuilder/internal/domain"
)

// Snapshot is a named export kept in the snapshot library
type Snapshot struct {
	ID        string
	Name      string
	Title     string
	Widgets   int
	CreatedAt time.Time
}

// SnapshotLibrary stores explicit, named exports of a document
type SnapshotLibrary interface {
	// Lifecycle
	Open(path string) error
	Close() error

	Save(name string, doc domain.Document) (*Snapshot, error)
	Load(name string) (domain.Document, error)
	List() ([]Snapshot, error)
	Delete(name string) error
}
