package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"tkbuilder/internal/adapters/editor"
	"tkbuilder/internal/adapters/tui/views"
	"tkbuilder/internal/application/commands"
	"tkbuilder/internal/domain"
	"tkbuilder/internal/ports"
)

// ViewState represents the current view
type ViewState int

const (
	ViewBuilder ViewState = iota
	ViewAdd
	ViewEdit
	ViewDocument
	ViewJSON
	ViewImport
	ViewConfirm
	ViewHelp
)

// Options carries the adapters the App needs beyond the store. Any of
// them may be nil; the matching actions then report an error.
type Options struct {
	Files        ports.DocumentFiles
	Clipboard    ports.Clipboard
	Editor       ports.EditorOpener
	DocumentPath string          // where the write action saves
	Blank        domain.Document // what the new-document action starts from
}

// App is the main TUI application model
type App struct {
	store ports.WidgetStore
	opts  Options

	state    ViewState
	builder  *views.BuilderModel
	add      *views.AddModel
	edit     *views.EditModel
	document *views.DocumentModel
	json     *views.JSONModel
	importer *views.ImportModel
	confirm  *views.ConfirmationModel
	help     *views.HelpModel

	width  int
	height int
}

// NewApp creates a new TUI application
func NewApp(store ports.WidgetStore, opts Options) *App {
	return &App{
		store:    store,
		opts:     opts,
		state:    ViewBuilder,
		builder:  views.NewBuilderModel(store, opts.Blank),
		add:      views.NewAddModel(store),
		edit:     views.NewEditModel(store),
		document: views.NewDocumentModel(store),
		json:     views.NewJSONModel(store),
		importer: views.NewImportModel(store),
		confirm:  views.NewConfirmationModel(),
		help:     views.NewHelpModel(),
	}
}

// State returns the view currently shown
func (a *App) State() ViewState {
	return a.state
}

// Init initializes the application
func (a *App) Init() tea.Cmd {
	return a.builder.Init()
}

// Update handles messages for the application
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.builder.SetSize(msg.Width, msg.Height)
		a.add.SetSize(msg.Width, msg.Height)
		a.edit.SetSize(msg.Width, msg.Height)
		a.document.SetSize(msg.Width, msg.Height)
		a.json.SetSize(msg.Width, msg.Height)
		a.importer.SetSize(msg.Width, msg.Height)
		a.confirm.SetSize(msg.Width, msg.Height)
		a.help.SetSize(msg.Width, msg.Height)
		return a, nil

	// View switching messages
	case views.SwitchToBuilderMsg:
		a.state = ViewBuilder
		return a, a.builder.Reload()

	case views.SwitchToAddMsg:
		a.state = ViewAdd
		a.add.SetTarget(msg.Target, msg.Label)
		return a, nil

	case views.SwitchToEditMsg:
		if err := a.edit.SetWidget(msg.Index); err != nil {
			return a, status(err)
		}
		a.state = ViewEdit
		return a, a.edit.Init()

	case views.SwitchToDocumentMsg:
		a.document.Load()
		a.state = ViewDocument
		return a, a.document.Init()

	case views.SwitchToJSONMsg:
		if err := a.json.Load(); err != nil {
			return a, status(err)
		}
		a.state = ViewJSON
		return a, nil

	case views.SwitchToImportMsg:
		a.state = ViewImport
		return a, a.importer.Reset()

	case views.SwitchToConfirmMsg:
		a.confirm.SetTarget(msg.Title, msg.Detail, msg.OnAccept)
		a.state = ViewConfirm
		return a, nil

	case views.SwitchToHelpMsg:
		a.state = ViewHelp
		return a, nil

	// Command outcomes always land on the builder, except in the JSON
	// pane where the copy result is shown in place
	case views.StatusMsg:
		if a.state == ViewJSON {
			_, cmd := a.json.Update(msg)
			return a, cmd
		}
		a.state = ViewBuilder
		_, cmd := a.builder.Update(msg)
		return a, cmd

	// Requests that need adapters
	case views.CopyJSONMsg:
		return a, a.copyJSON()

	case views.PasteImportMsg:
		return a, a.pasteImport()

	case views.SaveDocumentMsg:
		return a, a.saveDocument()

	case views.EditExternalMsg:
		return a, a.openEditor()

	case editorFinishedMsg:
		return a, a.importEdited(msg)
	}

	// Delegate to current view
	var cmd tea.Cmd
	switch a.state {
	case ViewBuilder:
		_, cmd = a.builder.Update(msg)
	case ViewAdd:
		_, cmd = a.add.Update(msg)
	case ViewEdit:
		_, cmd = a.edit.Update(msg)
	case ViewDocument:
		_, cmd = a.document.Update(msg)
	case ViewJSON:
		_, cmd = a.json.Update(msg)
	case ViewImport:
		_, cmd = a.importer.Update(msg)
	case ViewConfirm:
		_, cmd = a.confirm.Update(msg)
	case ViewHelp:
		_, cmd = a.help.Update(msg)
	}

	return a, cmd
}

func status(err error) tea.Cmd {
	return func() tea.Msg {
		return views.StatusMsg{Message: err.Error(), Err: true}
	}
}

func (a *App) export(ctx context.Context) ([]byte, error) {
	res, err := commands.NewExportCommand(a.store, commands.DefaultIndent).Execute(ctx)
	if err != nil {
		return nil, err
	}
	return res.Data, nil
}

func (a *App) copyJSON() tea.Cmd {
	return func() tea.Msg {
		if a.opts.Clipboard == nil {
			return views.StatusMsg{Message: "No clipboard available", Err: true}
		}
		data, err := a.export(context.Background())
		if err != nil {
			return views.StatusMsg{Message: err.Error(), Err: true}
		}
		if err := a.opts.Clipboard.WriteText(string(data)); err != nil {
			return views.StatusMsg{Message: err.Error(), Err: true}
		}
		return views.StatusMsg{Message: fmt.Sprintf("Copied %d bytes of JSON to the clipboard", len(data))}
	}
}

func (a *App) pasteImport() tea.Cmd {
	return func() tea.Msg {
		if a.opts.Clipboard == nil {
			return views.StatusMsg{Message: "No clipboard available", Err: true}
		}
		text, err := a.opts.Clipboard.ReadText()
		if err != nil {
			return views.StatusMsg{Message: err.Error(), Err: true}
		}
		res, err := commands.NewImportCommand(a.store, "clipboard", []byte(text)).Execute(context.Background())
		if err != nil {
			return views.StatusMsg{Message: err.Error(), Err: true}
		}
		return views.StatusMsg{Message: res.Message}
	}
}

func (a *App) saveDocument() tea.Cmd {
	return func() tea.Msg {
		if a.opts.Files == nil || a.opts.DocumentPath == "" {
			return views.StatusMsg{Message: "No document file configured", Err: true}
		}
		if err := a.opts.Files.Save(a.opts.DocumentPath, a.store.Document()); err != nil {
			return views.StatusMsg{Message: err.Error(), Err: true}
		}
		return views.StatusMsg{Message: fmt.Sprintf("Saved %s", a.opts.DocumentPath)}
	}
}

type editorFinishedMsg struct {
	session *editor.Session
	err     error
}

// openEditor writes the document to a scratch file and hands the terminal
// to the editor. The file is imported back when the editor exits.
func (a *App) openEditor() tea.Cmd {
	if a.opts.Editor == nil {
		return status(fmt.Errorf("no editor available"))
	}

	data, err := a.export(context.Background())
	if err != nil {
		return status(err)
	}
	session, err := editor.NewSession(data)
	if err != nil {
		return status(err)
	}

	cmd, err := a.opts.Editor.Command(session.Path())
	if err != nil {
		session.Close()
		return status(err)
	}

	return tea.ExecProcess(cmd, func(err error) tea.Msg {
		return editorFinishedMsg{session: session, err: err}
	})
}

func (a *App) importEdited(msg editorFinishedMsg) tea.Cmd {
	return func() tea.Msg {
		defer msg.session.Close()
		if msg.err != nil {
			return views.StatusMsg{Message: fmt.Sprintf("Editor failed: %v", msg.err), Err: true}
		}

		data, changed, err := msg.session.Result()
		if err != nil {
			return views.StatusMsg{Message: err.Error(), Err: true}
		}
		if !changed {
			return views.StatusMsg{Message: "No changes from the editor"}
		}

		res, err := commands.NewImportCommand(a.store, "editor", data).Execute(context.Background())
		if err != nil {
			return views.StatusMsg{Message: err.Error(), Err: true}
		}
		return views.StatusMsg{Message: res.Message}
	}
}

// View renders the current view
func (a *App) View() string {
	switch a.state {
	case ViewAdd:
		return a.add.View()
	case ViewEdit:
		return a.edit.View()
	case ViewDocument:
		return a.document.View()
	case ViewJSON:
		return a.json.View()
	case ViewImport:
		return a.importer.View()
	case ViewConfirm:
		return a.confirm.View()
	case ViewHelp:
		return a.help.View()
	default:
		return a.builder.View()
	}
}
