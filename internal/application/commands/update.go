package commands

import (
	"context"
	"fmt"

	"tkbuilder/internal/application"
	"tkbuilder/internal/domain"
	"tkbuilder/internal/ports"
)

// UpdateWidgetResult contains the result of editing a widget
type UpdateWidgetResult struct {
	Widget  domain.Widget
	Message string
}

// UpdateWidgetCommand merges attribute edits into a widget. Fields the
// widget's kind does not have are ignored.
type UpdateWidgetCommand struct {
	store      ports.WidgetStore
	Index      int
	Attributes domain.Attributes
}

// NewUpdateWidgetCommand creates a new UpdateWidgetCommand
func NewUpdateWidgetCommand(store ports.WidgetStore, index int, attrs domain.Attributes) *UpdateWidgetCommand {
	return &UpdateWidgetCommand{
		store:      store,
		Index:      index,
		Attributes: attrs,
	}
}

// Validate checks if the update operation is valid
func (c *UpdateWidgetCommand) Validate() error {
	if err := application.ValidateIndex("index", c.Index); err != nil {
		return err
	}
	return application.ValidateAttributes(c.Attributes)
}

// Execute runs the update widget command
func (c *UpdateWidgetCommand) Execute(ctx context.Context) (*UpdateWidgetResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	w, err := c.store.Update(c.Index, c.Attributes)
	if err != nil {
		return nil, fmt.Errorf("failed to update widget: %w", err)
	}

	msg := fmt.Sprintf("Updated %s", domain.Summary(w))
	if c.Attributes.IsEmpty() {
		msg = fmt.Sprintf("Nothing to update on %s %d", w.Type(), w.WidgetIndex())
	}

	return &UpdateWidgetResult{
		Widget:  w,
		Message: msg,
	}, nil
}
