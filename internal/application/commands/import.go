package commands

import (
	"context"
	"fmt"

	"tkbuilder/internal/application"
	"tkbuilder/internal/domain"
	"tkbuilder/internal/ports"
)

// ImportResult contains the result of importing a document
type ImportResult struct {
	Document domain.Document
	Widgets  int
	Counter  int
	Message  string
}

// ImportCommand replaces the session with a document parsed from exchange
// text. The creation counter is reseeded past every imported index.
type ImportCommand struct {
	store  ports.WidgetStore
	Source string // where the text came from, for error messages
	Data   []byte
}

// NewImportCommand creates a new ImportCommand
func NewImportCommand(store ports.WidgetStore, source string, data []byte) *ImportCommand {
	return &ImportCommand{
		store:  store,
		Source: source,
		Data:   data,
	}
}

// Validate checks that there is something to import
func (c *ImportCommand) Validate() error {
	if err := application.ValidateRequired("document", string(c.Data)); err != nil {
		return &application.TransportError{Source: c.Source, Err: err}
	}
	return nil
}

// Execute runs the import command. A parse failure leaves the session as it was.
func (c *ImportCommand) Execute(ctx context.Context) (*ImportResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	doc, err := domain.UnmarshalDocument(c.Data)
	if err != nil {
		return nil, &application.TransportError{Source: c.Source, Err: err}
	}

	if err := c.store.Replace(doc); err != nil {
		return nil, &application.TransportError{Source: c.Source, Err: err}
	}

	current := c.store.Document()
	widgets := domain.Count(current.Content)

	return &ImportResult{
		Document: current,
		Widgets:  widgets,
		Counter:  c.store.Counter(),
		Message:  fmt.Sprintf("Imported %s with %d widgets", current.Title, widgets),
	}, nil
}
