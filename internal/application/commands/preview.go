package commands

import (
	"context"

	"tkbuilder/internal/domain"
	"tkbuilder/internal/ports"
)

// PreviewResult holds the render-ready window preview
type PreviewResult struct {
	Preview domain.Preview
	Message string
}

// PreviewCommand derives the window preview from the current document
type PreviewCommand struct {
	store ports.WidgetStore
}

// NewPreviewCommand creates a new PreviewCommand
func NewPreviewCommand(store ports.WidgetStore) *PreviewCommand {
	return &PreviewCommand{store: store}
}

// Execute runs the preview command
func (c *PreviewCommand) Execute(ctx context.Context) (*PreviewResult, error) {
	p := domain.BuildPreview(c.store.Document())
	return &PreviewResult{
		Preview: p,
		Message: p.SizeLabel(),
	}, nil
}
