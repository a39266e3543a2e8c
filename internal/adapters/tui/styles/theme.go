package styles

import (
	"github.com/charmbracelet/lipgloss"

	"tkbuilder/internal/domain"
)

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Warning   = lipgloss.Color("#F59E0B") // Amber
	Error     = lipgloss.Color("#EF4444") // Red
	White     = lipgloss.Color("#FFFFFF")
	Black     = lipgloss.Color("#000000")

	// Widget kind colors
	KindLayout  = lipgloss.Color("#60A5FA") // Blue
	KindControl = lipgloss.Color("#F472B6") // Pink
	KindInput   = lipgloss.Color("#FBBF24") // Yellow
	KindText    = lipgloss.Color("#E5E7EB") // Light gray

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	// Tree styles
	NodeSelected = lipgloss.NewStyle().
			Background(Primary).
			Foreground(White).
			Bold(true)

	NodeIndex = lipgloss.NewStyle().
			Foreground(Muted)

	TreeBranch = lipgloss.NewStyle().Foreground(Muted)
	TreeMiddle = "├─ "
	TreeLast   = "└─ "
	TreePipe   = "│  "
	TreeSpace  = "   "

	// Panes
	Pane = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(0, 1)

	PaneFocused = Pane.
			BorderForeground(Primary)

	// Preview window
	Window = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(KindText)

	WindowTitle = lipgloss.NewStyle().
			Background(lipgloss.Color("#374151")).
			Foreground(White).
			Bold(true)

	DashedBorder = lipgloss.Border{
		Top:         "╌",
		Bottom:      "╌",
		Left:        "╎",
		Right:       "╎",
		TopLeft:     "┌",
		TopRight:    "┐",
		BottomLeft:  "└",
		BottomRight: "┘",
	}

	PreviewLayout = lipgloss.NewStyle().
			Border(DashedBorder).
			BorderForeground(Muted)

	PreviewButton = lipgloss.NewStyle().
			Background(lipgloss.Color("#4B5563")).
			Foreground(White).
			Padding(0, 1)

	PreviewInput = lipgloss.NewStyle().
			Underline(true).
			Foreground(Muted)

	PreviewSelected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// Status bar
	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#1F2937")).
			Foreground(White).
			Padding(0, 1)

	StatusText = lipgloss.NewStyle().
			Foreground(Muted)

	// Input styles
	InputLabel = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	InputField = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(0, 1)

	InputFocused = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	HelpSeparator = lipgloss.NewStyle().
			Foreground(Muted).
			SetString(" • ")

	// Message styles
	Success = lipgloss.NewStyle().
		Foreground(Secondary).
		Bold(true)

	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// KindColor returns the tree color for a widget kind
func KindColor(t domain.WidgetType) lipgloss.Color {
	switch t {
	case domain.WidgetLayout:
		return KindLayout
	case domain.WidgetButton, domain.WidgetCheckBox, domain.WidgetRadioButton:
		return KindControl
	case domain.WidgetInput, domain.WidgetSelectMenu:
		return KindInput
	default:
		return KindText
	}
}
