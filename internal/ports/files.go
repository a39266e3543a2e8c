package ports

import "tkbuilder/internal/domain"

// DocumentFiles reads and writes exchange documents on disk
type DocumentFiles interface {
	// Read returns the raw exchange text stored at path
	Read(path string) ([]byte, error)
	Load(path string) (domain.Document, error)
	Save(path string, doc domain.Document) error
	Exists(path string) bool
}
