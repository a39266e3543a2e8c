package commands

import (
	"context"
	"fmt"
	"strings"

	"tkbuilder/internal/application"
	"tkbuilder/internal/domain"
	"tkbuilder/internal/ports"
)

// NewDocumentResult contains the result of starting a new document
type NewDocumentResult struct {
	Document domain.Document
	Message  string
}

// NewDocumentCommand replaces the session with an empty document.
// Empty fields fall back to the defaults.
type NewDocumentCommand struct {
	store    ports.WidgetStore
	Title    string
	Geometry string
	Version  string
}

// NewNewDocumentCommand creates a new NewDocumentCommand
func NewNewDocumentCommand(store ports.WidgetStore, title, geometry, version string) *NewDocumentCommand {
	return &NewDocumentCommand{
		store:    store,
		Title:    title,
		Geometry: geometry,
		Version:  version,
	}
}

// Validate checks the geometry when one is given
func (c *NewDocumentCommand) Validate() error {
	if c.Geometry != "" {
		return application.ValidateGeometry(c.Geometry)
	}
	return nil
}

// Execute runs the new document command
func (c *NewDocumentCommand) Execute(ctx context.Context) (*NewDocumentResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	doc := domain.NewDocument(
		withDefault(c.Title, domain.DefaultTitle),
		withDefault(strings.TrimSpace(c.Geometry), domain.DefaultGeometry),
		withDefault(c.Version, domain.DefaultVersion),
	)
	c.store.Reset(doc)

	return &NewDocumentResult{
		Document: doc,
		Message:  fmt.Sprintf("New document: %s (%s)", doc.Title, doc.Geometry),
	}, nil
}

func withDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
