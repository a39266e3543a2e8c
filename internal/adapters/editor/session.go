package editor

import (
	"bytes"
	"fmt"
	"os"
)

// Session is a document exported to a temporary file for editing by hand.
// Read the file back with Result once the editor has exited, then Close.
type Session struct {
	path     string
	original []byte
}

// NewSession writes data to a fresh temporary .json file
func NewSession(data []byte) (*Session, error) {
	f, err := os.CreateTemp("", "tkbuilder-*.json")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		os.Remove(f.Name())
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}

	return &Session{path: f.Name(), original: bytes.Clone(data)}, nil
}

// Path returns the temporary file to hand to the editor
func (s *Session) Path() string {
	return s.path
}

// Result returns the edited contents and whether they differ from what was
// written
func (s *Session) Result() ([]byte, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, false, fmt.Errorf("failed to read edited document: %w", err)
	}
	return data, !bytes.Equal(bytes.TrimSpace(data), bytes.TrimSpace(s.original)), nil
}

// Close removes the temporary file
func (s *Session) Close() error {
	return os.Remove(s.path)
}
