package commands

import (
	"context"
	"fmt"

	"tkbuilder/internal/application"
	"tkbuilder/internal/ports"
)

// RemoveWidgetResult contains the result of removing a widget
type RemoveWidgetResult struct {
	Index   int
	Message string
}

// RemoveWidgetCommand deletes a widget together with its subtree
type RemoveWidgetCommand struct {
	store ports.WidgetStore
	Index int
}

// NewRemoveWidgetCommand creates a new RemoveWidgetCommand
func NewRemoveWidgetCommand(store ports.WidgetStore, index int) *RemoveWidgetCommand {
	return &RemoveWidgetCommand{
		store: store,
		Index: index,
	}
}

// Validate checks if the remove operation is valid
func (c *RemoveWidgetCommand) Validate() error {
	return application.ValidateIndex("index", c.Index)
}

// Execute runs the remove widget command
func (c *RemoveWidgetCommand) Execute(ctx context.Context) (*RemoveWidgetResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	w, err := c.store.Get(c.Index)
	if err != nil {
		return nil, fmt.Errorf("failed to remove widget: %w", err)
	}
	if err := c.store.Remove(c.Index); err != nil {
		return nil, fmt.Errorf("failed to remove widget: %w", err)
	}

	return &RemoveWidgetResult{
		Index:   c.Index,
		Message: fmt.Sprintf("Removed %s %d", w.Type(), c.Index),
	}, nil
}
