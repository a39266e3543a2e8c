package clipboard

import (
	"errors"
	"testing"

	"tkbuilder/internal/application"
)

func TestMemory(t *testing.T) {
	m := &Memory{}

	if _, err := m.ReadText(); !errors.Is(err, application.ErrTransport) {
		t.Errorf("empty clipboard: expected ErrTransport, got %v", err)
	}

	if err := m.WriteText(`{"title":"x"}`); err != nil {
		t.Fatal(err)
	}
	got, err := m.ReadText()
	if err != nil {
		t.Fatal(err)
	}
	if got != `{"title":"x"}` {
		t.Errorf("ReadText() = %q", got)
	}
}

func TestDetect(t *testing.T) {
	if Detect() == nil {
		t.Fatal("Detect() returned nil")
	}
}
