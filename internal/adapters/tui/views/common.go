package views

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// commandTimeout bounds a single store command issued from a view
const commandTimeout = 5 * time.Second

// ViewState contains common state shared by all view models.
// Embed this struct in view models to get width/height and message handling.
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets a message to display in the view
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// ClearMessage clears the current message
func (s *ViewState) ClearMessage() {
	s.Message = ""
	s.MessageErr = false
}

// run executes fn with a bounded context and reports its outcome as a StatusMsg
func run(fn func(ctx context.Context) (string, error)) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		message, err := fn(ctx)
		if err != nil {
			return StatusMsg{Message: err.Error(), Err: true}
		}
		return StatusMsg{Message: message}
	}
}

// submit is run for forms: failures come back as FormErrMsg so the form
// stays open, success returns to the builder as a StatusMsg
func submit(fn func(ctx context.Context) (string, error)) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
		defer cancel()
		message, err := fn(ctx)
		if err != nil {
			return FormErrMsg{Err: err}
		}
		return StatusMsg{Message: message}
	}
}

// Messages for view switching
type SwitchToBuilderMsg struct{}

type SwitchToAddMsg struct {
	Target int // domain.RootIndex for the document
	Label  string
}

type SwitchToEditMsg struct {
	Index int
}

type SwitchToDocumentMsg struct{}

type SwitchToJSONMsg struct{}

type SwitchToImportMsg struct{}

type SwitchToHelpMsg struct{}

type SwitchToConfirmMsg struct {
	Title    string
	Detail   string
	OnAccept tea.Cmd
}

// StatusMsg reports the outcome of a command back to the builder
type StatusMsg struct {
	Message string
	Err     bool
}

// FormErrMsg reports a failed submission to the view that issued it
type FormErrMsg struct {
	Err error
}

// Requests the App fulfils with its adapters
type (
	CopyJSONMsg     struct{}
	PasteImportMsg  struct{}
	EditExternalMsg struct{}
	SaveDocumentMsg struct{}
)
