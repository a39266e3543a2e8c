package views

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tkbuilder/internal/adapters/tui/styles"
	"tkbuilder/internal/application/commands"
	"tkbuilder/internal/domain"
	"tkbuilder/internal/ports"
)

// BuilderKeyMap defines key bindings for the builder view
type BuilderKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Add      key.Binding
	AddChild key.Binding
	Edit     key.Binding
	Remove   key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
	Deselect key.Binding
	Document key.Binding
	New      key.Binding
	JSON     key.Binding
	Copy     key.Binding
	Import   key.Binding
	Paste    key.Binding
	External key.Binding
	Save     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

var BuilderKeys = BuilderKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("pgup"),
		key.WithHelp("pgup", "previous page"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("pgdown"),
		key.WithHelp("pgdown", "next page"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add"),
	),
	AddChild: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "add child"),
	),
	Edit: key.NewBinding(
		key.WithKeys("enter", "e"),
		key.WithHelp("enter", "edit"),
	),
	Remove: key.NewBinding(
		key.WithKeys("x", "delete"),
		key.WithHelp("x", "remove"),
	),
	MoveUp: key.NewBinding(
		key.WithKeys("K", "shift+up"),
		key.WithHelp("K", "move up"),
	),
	MoveDown: key.NewBinding(
		key.WithKeys("J", "shift+down"),
		key.WithHelp("J", "move down"),
	),
	Deselect: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "deselect"),
	),
	Document: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "properties"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new"),
	),
	JSON: key.NewBinding(
		key.WithKeys("v"),
		key.WithHelp("v", "json"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy json"),
	),
	Import: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "import"),
	),
	Paste: key.NewBinding(
		key.WithKeys("I"),
		key.WithHelp("I", "import clipboard"),
	),
	External: key.NewBinding(
		key.WithKeys("E"),
		key.WithHelp("E", "edit in $EDITOR"),
	),
	Save: key.NewBinding(
		key.WithKeys("w", "ctrl+s"),
		key.WithHelp("w", "write file"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// BuilderModel is the main editing view: the widget tree on the left and
// the window preview on the right. Moving the cursor selects the widget.
type BuilderModel struct {
	ViewState
	store   ports.WidgetStore
	blank   domain.Document
	tree    *commands.TreeResult
	preview domain.Preview
	path    []int // IndexPath of the selection
	pager   *Paginator
	Keys    BuilderKeyMap
}

// NewBuilderModel creates a new builder model. blank is the document the
// new-document action starts from.
func NewBuilderModel(store ports.WidgetStore, blank domain.Document) *BuilderModel {
	m := &BuilderModel{
		store: store,
		blank: blank,
		pager: NewPaginator(10),
		Keys:  BuilderKeys,
	}
	m.SetSize(0, 0)
	return m
}

// Init initializes the builder
func (m *BuilderModel) Init() tea.Cmd {
	return m.loadTree
}

func (m *BuilderModel) loadTree() tea.Msg {
	ctx := context.Background()
	tree, err := commands.NewTreeCommand(m.store).Execute(ctx)
	if err != nil {
		return StatusMsg{Message: err.Error(), Err: true}
	}
	preview, err := commands.NewPreviewCommand(m.store).Execute(ctx)
	if err != nil {
		return StatusMsg{Message: err.Error(), Err: true}
	}
	return treeLoadedMsg{tree: tree, preview: preview.Preview}
}

type treeLoadedMsg struct {
	tree    *commands.TreeResult
	preview domain.Preview
}

// Update handles messages for the builder
func (m *BuilderModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case treeLoadedMsg:
		m.tree = msg.tree
		m.preview = msg.preview
		m.pager.SetTotal(len(m.tree.Rows))
		m.followSelection()
		return m, nil

	case StatusMsg:
		m.SetMessage(msg.Message, msg.Err)
		return m, m.loadTree

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *BuilderModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.tree == nil {
		if key.Matches(msg, m.Keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.Keys.Up):
		if m.pager.CursorUp() {
			m.selectAtCursor()
		}
		return m, nil

	case key.Matches(msg, m.Keys.Down):
		if m.pager.CursorDown() {
			m.selectAtCursor()
		}
		return m, nil

	case key.Matches(msg, m.Keys.PageUp):
		if m.pager.PrevPage() {
			m.selectAtCursor()
		}
		return m, nil

	case key.Matches(msg, m.Keys.PageDown):
		if m.pager.NextPage() {
			m.selectAtCursor()
		}
		return m, nil

	case key.Matches(msg, m.Keys.Deselect):
		m.selectIndex(domain.RootIndex)
		return m, nil

	case key.Matches(msg, m.Keys.Add):
		return m, func() tea.Msg {
			return SwitchToAddMsg{Target: domain.RootIndex, Label: "document"}
		}

	case key.Matches(msg, m.Keys.AddChild):
		w := m.selectedWidget()
		if w == nil || !w.Type().IsContainer() {
			m.SetMessage("Select a layout to add a child", true)
			return m, nil
		}
		return m, func() tea.Msg {
			return SwitchToAddMsg{Target: w.WidgetIndex(), Label: domain.Summary(w)}
		}

	case key.Matches(msg, m.Keys.Edit):
		w := m.selectedWidget()
		if w == nil {
			m.SetMessage("Nothing selected", true)
			return m, nil
		}
		return m, func() tea.Msg { return SwitchToEditMsg{Index: w.WidgetIndex()} }

	case key.Matches(msg, m.Keys.Remove):
		return m, m.removeSelected()

	case key.Matches(msg, m.Keys.MoveUp):
		return m, m.moveSelected("up")

	case key.Matches(msg, m.Keys.MoveDown):
		return m, m.moveSelected("down")

	case key.Matches(msg, m.Keys.Document):
		return m, func() tea.Msg { return SwitchToDocumentMsg{} }

	case key.Matches(msg, m.Keys.New):
		return m, func() tea.Msg {
			return SwitchToConfirmMsg{
				Title:    "New document",
				Detail:   fmt.Sprintf("Discard %q and its %d widgets?", m.tree.Document.Title, len(m.tree.Rows)),
				OnAccept: m.newDocument(),
			}
		}

	case key.Matches(msg, m.Keys.JSON):
		return m, func() tea.Msg { return SwitchToJSONMsg{} }

	case key.Matches(msg, m.Keys.Copy):
		return m, func() tea.Msg { return CopyJSONMsg{} }

	case key.Matches(msg, m.Keys.Import):
		return m, func() tea.Msg { return SwitchToImportMsg{} }

	case key.Matches(msg, m.Keys.Paste):
		return m, func() tea.Msg { return PasteImportMsg{} }

	case key.Matches(msg, m.Keys.External):
		return m, func() tea.Msg { return EditExternalMsg{} }

	case key.Matches(msg, m.Keys.Save):
		return m, func() tea.Msg { return SaveDocumentMsg{} }

	case key.Matches(msg, m.Keys.Help):
		return m, func() tea.Msg { return SwitchToHelpMsg{} }
	}

	return m, nil
}

func (m *BuilderModel) removeSelected() tea.Cmd {
	w := m.selectedWidget()
	if w == nil {
		m.SetMessage("Nothing selected", true)
		return nil
	}

	index := w.WidgetIndex()
	remove := run(func(ctx context.Context) (string, error) {
		res, err := commands.NewRemoveWidgetCommand(m.store, index).Execute(ctx)
		if err != nil {
			return "", err
		}
		return res.Message, nil
	})

	if l, ok := w.(*domain.Layout); ok && len(l.Content) > 0 {
		nested := domain.Count(l.Content)
		return func() tea.Msg {
			return SwitchToConfirmMsg{
				Title:    "Remove widget",
				Detail:   fmt.Sprintf("%s and its %d nested widgets", domain.Summary(w), nested),
				OnAccept: remove,
			}
		}
	}
	return remove
}

func (m *BuilderModel) moveSelected(direction string) tea.Cmd {
	w := m.selectedWidget()
	if w == nil {
		m.SetMessage("Nothing selected", true)
		return nil
	}

	index := w.WidgetIndex()
	return run(func(ctx context.Context) (string, error) {
		res, err := commands.NewMoveWidgetCommand(m.store, index, direction).Execute(ctx)
		if err != nil {
			return "", err
		}
		return res.Message, nil
	})
}

func (m *BuilderModel) newDocument() tea.Cmd {
	blank := m.blank
	return run(func(ctx context.Context) (string, error) {
		res, err := commands.NewNewDocumentCommand(m.store, blank.Title, blank.Geometry, blank.Version).Execute(ctx)
		if err != nil {
			return "", err
		}
		return res.Message, nil
	})
}

// selectAtCursor binds the selection to the widget under the cursor
func (m *BuilderModel) selectAtCursor() {
	cursor := m.pager.Cursor()
	if cursor < 0 || cursor >= len(m.tree.Rows) {
		return
	}
	m.selectIndex(m.tree.Rows[cursor].Widget.WidgetIndex())
}

func (m *BuilderModel) selectIndex(index int) {
	res, err := commands.NewSelectWidgetCommand(m.store, index).Execute(context.Background())
	if err != nil {
		m.SetMessage(err.Error(), true)
		return
	}
	m.tree.Selected = index
	m.path = res.Path
	if index == domain.RootIndex {
		m.SetMessage(res.Message, false)
	} else {
		m.ClearMessage()
	}
}

// followSelection puts the cursor on the selected widget after a reload
func (m *BuilderModel) followSelection() {
	m.path = nil
	if m.tree.Selected == domain.RootIndex {
		return
	}
	for i, row := range m.tree.Rows {
		if row.Widget.WidgetIndex() == m.tree.Selected {
			m.pager.SetCursor(i)
			m.path, _ = m.store.IndexPath(m.tree.Selected)
			return
		}
	}
}

func (m *BuilderModel) selectedWidget() domain.Widget {
	if m.tree == nil || m.tree.Selected == domain.RootIndex {
		return nil
	}
	for _, row := range m.tree.Rows {
		if row.Widget.WidgetIndex() == m.tree.Selected {
			return row.Widget
		}
	}
	return nil
}

// Selected returns the index of the selected widget, 0 when none
func (m *BuilderModel) Selected() int {
	if m.tree == nil {
		return domain.RootIndex
	}
	return m.tree.Selected
}

// paneSize returns the outer size of each of the two panes
func (m *BuilderModel) paneSize() (treeWidth, previewWidth, height int) {
	width, h := m.Width, m.Height
	if width == 0 || h == 0 {
		width, h = 100, 30
	}
	// App padding plus the header, message and help lines
	usable := max(width-4, 20)
	height = max(h-9, 8)
	treeWidth = usable * 2 / 5
	previewWidth = usable - treeWidth - 1
	return treeWidth, previewWidth, height
}

// View renders the builder
func (m *BuilderModel) View() string {
	if m.tree == nil {
		return "Loading..."
	}

	treeWidth, previewWidth, height := m.paneSize()

	doc := m.tree.Document
	v := NewViewBuilder().
		Raw(RenderTitle("tkbuilder")).
		Line("").
		Line(RenderSubtitle(fmt.Sprintf("%s (%s) v%s", doc.Title, doc.Geometry, doc.Version))).
		BlankLine()

	panes := lipgloss.JoinHorizontal(lipgloss.Top,
		RenderPane("Widgets", m.renderTree(), treeWidth, height, true),
		" ",
		RenderPane("Preview", RenderPreview(m.preview, m.tree.Selected, previewWidth-4, height-3), previewWidth, height, false),
	)
	v.Line(panes)

	if w := m.selectedWidget(); w != nil {
		v.Line(RenderLabelValue("Selected", fmt.Sprintf("%s  path %v", domain.Summary(w), m.path)))
	} else {
		v.Muted("Nothing selected")
	}

	if m.Message != "" {
		v.Line(RenderMessage(m.Message, m.MessageErr))
	} else {
		v.BlankLine()
	}

	v.Help(m.Keys.Add, m.Keys.AddChild, m.Keys.Edit, m.Keys.Remove, m.Keys.MoveUp,
		m.Keys.MoveDown, m.Keys.Document, m.Keys.JSON, m.Keys.Help, m.Keys.Quit)
	return v.String()
}

func (m *BuilderModel) renderTree() string {
	var b strings.Builder

	if len(m.tree.Rows) == 0 {
		b.WriteString(RenderMuted("No widgets yet. Press a to add one."))
		b.WriteString("\n")
	}

	start, end := m.pager.VisibleRange()
	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(m.tree.Rows[i], i == m.pager.Cursor()))
		b.WriteString("\n")
	}

	counter := fmt.Sprintf("%d widgets • %d created", len(m.tree.Rows), m.tree.Counter)
	if m.pager.TotalPages() > 1 {
		counter += fmt.Sprintf(" • page %d/%d", m.pager.CurrentPage(), m.pager.TotalPages())
	}
	b.WriteString(RenderMuted(counter))
	return b.String()
}

func (m *BuilderModel) renderRow(row domain.Row, atCursor bool) string {
	indent := strings.Repeat(styles.TreeSpace, row.Depth)

	branch := styles.TreeMiddle
	if row.IsLast() {
		branch = styles.TreeLast
	}

	text := fmt.Sprintf("%s %s",
		styles.NodeIndex.Render(fmt.Sprintf("#%d", row.Widget.WidgetIndex())),
		lipgloss.NewStyle().Foreground(styles.KindColor(row.Widget.Type())).Render(domain.Summary(row.Widget)),
	)
	if row.Widget.WidgetIndex() == m.tree.Selected {
		text = styles.NodeSelected.Render(fmt.Sprintf("#%d %s", row.Widget.WidgetIndex(), domain.Summary(row.Widget)))
	}

	cursor := "  "
	if atCursor {
		cursor = styles.HelpKey.Render("› ")
	}

	return cursor + indent + styles.TreeBranch.Render(branch) + text
}

// SetSize updates the view dimensions and the number of visible tree rows
func (m *BuilderModel) SetSize(width, height int) {
	m.ViewState.SetSize(width, height)
	_, _, paneHeight := m.paneSize()
	// Pane border and title line plus the counter line
	m.pager.SetPageSize(max(paneHeight-4, 1))
}

// Reload reloads the tree from the store
func (m *BuilderModel) Reload() tea.Cmd {
	return m.loadTree
}
