package commands

import (
	"context"
	"fmt"

	"tkbuilder/internal/application"
	"tkbuilder/internal/domain"
	"tkbuilder/internal/ports"
)

// SelectWidgetResult contains the result of changing the selection
type SelectWidgetResult struct {
	Widget  domain.Widget // nil when the selection was cleared
	Path    []int         // IndexPath of the selected widget
	Message string
}

// SelectWidgetCommand binds the selection to a widget. Index 0 clears it.
type SelectWidgetCommand struct {
	store ports.WidgetStore
	Index int
}

// NewSelectWidgetCommand creates a new SelectWidgetCommand
func NewSelectWidgetCommand(store ports.WidgetStore, index int) *SelectWidgetCommand {
	return &SelectWidgetCommand{
		store: store,
		Index: index,
	}
}

// Validate checks if the select operation is valid
func (c *SelectWidgetCommand) Validate() error {
	if c.Index < 0 {
		return &application.ValidationError{
			Field:   "index",
			Message: fmt.Sprintf("index must not be negative, got: %d", c.Index),
		}
	}
	return nil
}

// Execute runs the select widget command
func (c *SelectWidgetCommand) Execute(ctx context.Context) (*SelectWidgetResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if c.Index == 0 {
		c.store.ClearSelection()
		return &SelectWidgetResult{Message: "Selection cleared"}, nil
	}

	w, err := c.store.Select(c.Index)
	if err != nil {
		return nil, fmt.Errorf("failed to select widget: %w", err)
	}
	path, err := c.store.IndexPath(c.Index)
	if err != nil {
		return nil, fmt.Errorf("failed to select widget: %w", err)
	}

	return &SelectWidgetResult{
		Widget:  w,
		Path:    path,
		Message: fmt.Sprintf("Selected %s", domain.Summary(w)),
	}, nil
}
