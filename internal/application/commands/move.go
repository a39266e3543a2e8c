package commands

import (
	"context"
	"fmt"

	"tkbuilder/internal/application"
	"tkbuilder/internal/domain"
	"tkbuilder/internal/ports"
)

// MoveWidgetResult contains the result of moving a widget
type MoveWidgetResult struct {
	Index     int
	Direction domain.Direction
	Moved     bool // false when the widget was already at that end
	Message   string
}

// MoveWidgetCommand swaps a widget with its previous or next sibling
type MoveWidgetCommand struct {
	store     ports.WidgetStore
	Index     int
	Direction string
}

// NewMoveWidgetCommand creates a new MoveWidgetCommand
func NewMoveWidgetCommand(store ports.WidgetStore, index int, direction string) *MoveWidgetCommand {
	return &MoveWidgetCommand{
		store:     store,
		Index:     index,
		Direction: direction,
	}
}

// Validate checks if the move operation is valid
func (c *MoveWidgetCommand) Validate() error {
	if err := application.ValidateIndex("index", c.Index); err != nil {
		return err
	}
	if _, ok := domain.ParseDirection(c.Direction); !ok {
		return &application.ValidationError{
			Field:   "direction",
			Message: fmt.Sprintf("expected up or down, got: %q", c.Direction),
		}
	}
	return nil
}

// Execute runs the move widget command
func (c *MoveWidgetCommand) Execute(ctx context.Context) (*MoveWidgetResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	dir, _ := domain.ParseDirection(c.Direction)

	moved, err := c.store.Move(c.Index, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to move widget: %w", err)
	}

	msg := fmt.Sprintf("Moved widget %d %s", c.Index, dir)
	if !moved {
		end := "first"
		if dir == domain.DirectionDown {
			end = "last"
		}
		msg = fmt.Sprintf("Widget %d is already %s", c.Index, end)
	}

	return &MoveWidgetResult{
		Index:     c.Index,
		Direction: dir,
		Moved:     moved,
		Message:   msg,
	}, nil
}
