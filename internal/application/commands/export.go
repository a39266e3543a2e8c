package commands

import (
	"context"
	"fmt"

	"tkbuilder/internal/domain"
	"tkbuilder/internal/ports"
)

// DefaultIndent is the indentation used by the JSON pane and file exports
const DefaultIndent = "  "

// ExportResult contains the serialized document
type ExportResult struct {
	Document domain.Document
	Data     []byte
	Message  string
}

// ExportCommand serializes the session's document in the exchange format
type ExportCommand struct {
	store  ports.WidgetStore
	Indent string // empty for compact output
}

// NewExportCommand creates a new ExportCommand
func NewExportCommand(store ports.WidgetStore, indent string) *ExportCommand {
	return &ExportCommand{
		store:  store,
		Indent: indent,
	}
}

// Validate is a no-op; every document can be exported
func (c *ExportCommand) Validate() error {
	return nil
}

// Execute runs the export command
func (c *ExportCommand) Execute(ctx context.Context) (*ExportResult, error) {
	doc := c.store.Document()

	data, err := domain.MarshalDocument(doc, c.Indent)
	if err != nil {
		return nil, fmt.Errorf("failed to export document: %w", err)
	}

	return &ExportResult{
		Document: doc,
		Data:     data,
		Message:  fmt.Sprintf("Exported %s (%d bytes)", doc.Title, len(data)),
	}, nil
}
