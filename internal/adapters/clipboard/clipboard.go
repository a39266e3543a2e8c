package clipboard

import (
	"errors"
	"strings"

	"github.com/atotto/clipboard"

	"tkbuilder/internal/application"
	"tkbuilder/internal/ports"
)

// ErrUnavailable is returned when no clipboard utility is installed
var ErrUnavailable = errors.New("no clipboard utility found (install xclip, xsel or wl-clipboard)")

// System implements ports.Clipboard using the OS clipboard
type System struct{}

// Ensure System implements Clipboard
var _ ports.Clipboard = (*System)(nil)

// NewSystem creates a new system clipboard
func NewSystem() *System {
	return &System{}
}

// ReadText returns the clipboard contents
func (s *System) ReadText() (string, error) {
	if !s.IsAvailable() {
		return "", &application.TransportError{Source: "clipboard", Err: ErrUnavailable}
	}
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", &application.TransportError{Source: "clipboard", Err: err}
	}
	if strings.TrimSpace(text) == "" {
		return "", &application.TransportError{Source: "clipboard", Err: errors.New("clipboard is empty")}
	}
	return text, nil
}

// WriteText replaces the clipboard contents
func (s *System) WriteText(text string) error {
	if !s.IsAvailable() {
		return ErrUnavailable
	}
	return clipboard.WriteAll(text)
}

// IsAvailable reports whether a clipboard utility was found
func (s *System) IsAvailable() bool {
	return !clipboard.Unsupported
}

// Memory implements ports.Clipboard in process, for headless sessions
type Memory struct {
	text string
}

// Ensure Memory implements Clipboard
var _ ports.Clipboard = (*Memory)(nil)

// ReadText returns the last written text
func (m *Memory) ReadText() (string, error) {
	if strings.TrimSpace(m.text) == "" {
		return "", &application.TransportError{Source: "clipboard", Err: errors.New("clipboard is empty")}
	}
	return m.text, nil
}

// WriteText stores text
func (m *Memory) WriteText(text string) error {
	m.text = text
	return nil
}

// IsAvailable always reports true
func (m *Memory) IsAvailable() bool {
	return true
}

// Detect returns the system clipboard when it is usable and an in-process
// one otherwise
func Detect() ports.Clipboard {
	sys := NewSystem()
	if sys.IsAvailable() {
		return sys
	}
	return &Memory{}
}
