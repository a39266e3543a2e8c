package commands

import (
	"context"
	"fmt"

	"tkbuilder/internal/domain"
	"tkbuilder/internal/ports"
)

// TreeResult is the document flattened for display
type TreeResult struct {
	Document domain.Document
	Rows     []domain.Row
	Selected int // index of the selected widget, 0 when none
	Counter  int
	MaxIndex int // highest index in the tree, can trail Counter after removals
	Message  string
}

// TreeCommand lists the widget tree depth-first
type TreeCommand struct {
	store ports.WidgetStore
}

// NewTreeCommand creates a new TreeCommand
func NewTreeCommand(store ports.WidgetStore) *TreeCommand {
	return &TreeCommand{store: store}
}

// Execute runs the tree command
func (c *TreeCommand) Execute(ctx context.Context) (*TreeResult, error) {
	doc := c.store.Document()
	rows := domain.Flatten(doc.Content)

	selected := 0
	if w, ok := c.store.Selected(); ok {
		selected = w.WidgetIndex()
	}

	return &TreeResult{
		Document: doc,
		Rows:     rows,
		Selected: selected,
		Counter:  c.store.Counter(),
		MaxIndex: c.store.MaxIndex(),
		Message:  fmt.Sprintf("%d widgets, %d created", len(rows), c.store.Counter()),
	}, nil
}
