package filesystem

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"tkbuilder/internal/application"
	"tkbuilder/internal/domain"
	"tkbuilder/internal/ports"
)

// Indent is used for every document written to disk
const Indent = "  "

// Documents implements ports.DocumentFiles. Relative paths are resolved
// against the base directory.
type Documents struct {
	baseDir string
}

// Ensure Documents implements DocumentFiles
var _ ports.DocumentFiles = (*Documents)(nil)

// NewDocuments creates a document store rooted at baseDir ("" for the
// working directory)
func NewDocuments(baseDir string) *Documents {
	return &Documents{baseDir: ExpandHome(baseDir)}
}

// ExpandHome replaces a leading ~ with the user's home directory
func ExpandHome(path string) string {
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[1:])
	}
	return path
}

// Resolve returns the absolute location of path
func (d *Documents) Resolve(path string) string {
	path = ExpandHome(path)
	if !filepath.IsAbs(path) && d.baseDir != "" {
		path = filepath.Join(d.baseDir, path)
	}
	return filepath.Clean(path)
}

// Read returns the raw contents of the document file
func (d *Documents) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(d.Resolve(path))
	if err != nil {
		return nil, &application.TransportError{Source: path, Err: err}
	}
	return data, nil
}

// Load reads and decodes the document file
func (d *Documents) Load(path string) (domain.Document, error) {
	data, err := d.Read(path)
	if err != nil {
		return domain.Document{}, err
	}
	doc, err := domain.UnmarshalDocument(data)
	if err != nil {
		return domain.Document{}, &application.TransportError{Source: path, Err: err}
	}
	return doc, nil
}

// Save writes doc as indented exchange JSON. The file is replaced
// atomically so a failed write never leaves half a document behind.
func (d *Documents) Save(path string, doc domain.Document) error {
	data, err := domain.MarshalDocument(doc, Indent)
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	return d.Write(path, append(data, '\n'))
}

// Write replaces the file at path with data
func (d *Documents) Write(path string, data []byte) error {
	target := d.Resolve(path)
	dir := filepath.Dir(target)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(target)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := os.Rename(tmp.Name(), target); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

// Exists reports whether a file is present at path
func (d *Documents) Exists(path string) bool {
	_, err := os.Stat(d.Resolve(path))
	return !errors.Is(err, fs.ErrNotExist)
}
