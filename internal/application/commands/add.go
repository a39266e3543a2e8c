package commands

import (
	"context"
	"fmt"

	"tkbuilder/internal/application"
	"tkbuilder/internal/domain"
	"tkbuilder/internal/ports"
)

// AddWidgetResult contains the result of adding a widget
type AddWidgetResult struct {
	Widget  domain.Widget
	Target  int
	Message string
}

// AddWidgetCommand appends a widget built from a kind's default template
// to the document or to a layout
type AddWidgetCommand struct {
	store      ports.WidgetStore
	Target     int // domain.RootIndex for the document
	WidgetType string
	Overrides  domain.Attributes // applied over the template defaults
}

// NewAddWidgetCommand creates a new AddWidgetCommand
func NewAddWidgetCommand(store ports.WidgetStore, target int, widgetType string) *AddWidgetCommand {
	return &AddWidgetCommand{
		store:      store,
		Target:     target,
		WidgetType: widgetType,
	}
}

// Validate checks if the add operation is valid
func (c *AddWidgetCommand) Validate() error {
	if err := application.ValidateRequired("widgetType", c.WidgetType); err != nil {
		return err
	}
	if _, err := application.ValidateWidgetType("widgetType", c.WidgetType); err != nil {
		return err
	}
	if c.Target < 0 {
		return &application.ValidationError{
			Field:   "targetIndex",
			Message: fmt.Sprintf("target index must not be negative, got: %d", c.Target),
		}
	}
	return application.ValidateAttributes(c.Overrides)
}

// Template returns the template the widget will be built from
func (c *AddWidgetCommand) Template() (domain.Template, error) {
	t, err := application.ValidateWidgetType("widgetType", c.WidgetType)
	if err != nil {
		return domain.Template{}, err
	}
	tmpl, _ := domain.DefaultTemplate(t)
	tmpl.Defaults = tmpl.Defaults.Over(c.Overrides)
	return tmpl, nil
}

// Execute runs the add widget command
func (c *AddWidgetCommand) Execute(ctx context.Context) (*AddWidgetResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	tmpl, err := c.Template()
	if err != nil {
		return nil, err
	}

	w, err := c.store.Add(c.Target, tmpl)
	if err != nil {
		return nil, fmt.Errorf("failed to add widget: %w", err)
	}

	where := "document"
	if c.Target != domain.RootIndex {
		where = fmt.Sprintf("layout %d", c.Target)
	}

	return &AddWidgetResult{
		Widget:  w,
		Target:  c.Target,
		Message: fmt.Sprintf("Added %s %d to %s", w.Type(), w.WidgetIndex(), where),
	}, nil
}
