package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tkbuilder/internal/adapters/tui/styles"
)

// HelpKeyMap defines key bindings for the help view
type HelpKeyMap struct {
	Close key.Binding
}

var HelpKeys = HelpKeyMap{
	Close: key.NewBinding(
		key.WithKeys("esc", "q", "?"),
		key.WithHelp("esc/q/?", "close"),
	),
}

// HelpModel is the model for the help view
type HelpModel struct {
	ViewState
}

// NewHelpModel creates a new help view model
func NewHelpModel() *HelpModel {
	return &HelpModel{}
}

// Init initializes the help view
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the help view
func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, HelpKeys.Close) {
			return m, func() tea.Msg {
				return SwitchToBuilderMsg{}
			}
		}
	}

	return m, nil
}

// View renders the help view
func (m *HelpModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Title.Render("tkbuilder Help"))
	b.WriteString("\n\n")

	b.WriteString(styles.Subtitle.Render("Tkinter window builder"))
	b.WriteString("\n\n")

	b.WriteString(styles.InputLabel.Render("Navigation"))
	b.WriteString("\n")
	b.WriteString(helpLine("j / k / ↑ / ↓", "Move and select"))
	b.WriteString(helpLine("pgup / pgdown", "Previous / next page"))
	b.WriteString(helpLine("esc", "Clear the selection"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Widgets"))
	b.WriteString("\n")
	b.WriteString(helpLine("a", "Add a widget to the window"))
	b.WriteString(helpLine("c", "Add a widget to the selected layout"))
	b.WriteString(helpLine("enter / e", "Edit the selected widget"))
	b.WriteString(helpLine("x / delete", "Remove the selected widget"))
	b.WriteString(helpLine("K / J", "Move among siblings"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("Document"))
	b.WriteString("\n")
	b.WriteString(helpLine("p", "Title, geometry and version"))
	b.WriteString(helpLine("n", "Start a new document"))
	b.WriteString(helpLine("v", "Show the JSON"))
	b.WriteString(helpLine("y", "Copy the JSON to the clipboard"))
	b.WriteString(helpLine("i", "Import pasted JSON"))
	b.WriteString(helpLine("I", "Import JSON from the clipboard"))
	b.WriteString(helpLine("E", "Edit the JSON in $EDITOR"))
	b.WriteString(helpLine("w / Ctrl+S", "Write the document file"))
	b.WriteString("\n")

	b.WriteString(styles.InputLabel.Render("General"))
	b.WriteString("\n")
	b.WriteString(helpLine("?", "Toggle help"))
	b.WriteString(helpLine("q / Ctrl+C", "Quit"))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpDesc.Render("Press "))
	b.WriteString(styles.HelpKey.Render("esc"))
	b.WriteString(styles.HelpDesc.Render(" or "))
	b.WriteString(styles.HelpKey.Render("?"))
	b.WriteString(styles.HelpDesc.Render(" to close"))

	return styles.App.Render(b.String())
}

func helpLine(key, desc string) string {
	return "  " + styles.HelpKey.Render(padRight(key, 20)) + styles.HelpDesc.Render(desc) + "\n"
}

func padRight(s string, length int) string {
	n := len([]rune(s))
	if n >= length {
		return s
	}
	return s + strings.Repeat(" ", length-n)
}
