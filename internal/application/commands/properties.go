package commands

import (
	"context"
	"fmt"
	"strings"

	"tkbuilder/internal/application"
	"tkbuilder/internal/domain"
	"tkbuilder/internal/ports"
)

// SetPropertiesResult contains the document after the edit
type SetPropertiesResult struct {
	Document domain.Document
	Message  string
}

// SetPropertiesCommand edits the window title, geometry or version
type SetPropertiesCommand struct {
	store      ports.WidgetStore
	Properties domain.Properties
}

// NewSetPropertiesCommand creates a new SetPropertiesCommand
func NewSetPropertiesCommand(store ports.WidgetStore, props domain.Properties) *SetPropertiesCommand {
	return &SetPropertiesCommand{
		store:      store,
		Properties: props,
	}
}

// Validate checks the new geometry, if any
func (c *SetPropertiesCommand) Validate() error {
	if c.Properties.Geometry != nil {
		return application.ValidateGeometry(*c.Properties.Geometry)
	}
	return nil
}

// Execute runs the set properties command
func (c *SetPropertiesCommand) Execute(ctx context.Context) (*SetPropertiesResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	props := c.Properties
	if props.Geometry != nil {
		g := strings.TrimSpace(*props.Geometry)
		props.Geometry = &g
	}
	doc := c.store.SetProperties(props)

	return &SetPropertiesResult{
		Document: doc,
		Message:  fmt.Sprintf("%s (%s) v%s", doc.Title, doc.Geometry, doc.Version),
	}, nil
}
