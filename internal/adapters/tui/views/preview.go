package views

import (
	"math"

	"github.com/charmbracelet/lipgloss"

	"tkbuilder/internal/adapters/tui/styles"
	"tkbuilder/internal/domain"
)

// Window pixels per terminal cell, roughly an 8x16 font
const (
	pixelsPerColumn = 8
	pixelsPerRow    = 16
	minPreviewCols  = 12
	minPreviewRows  = 3
	inputCells      = 16
)

// RenderPreview draws a scaled mock of the application window. The widget
// with index selected is highlighted. The result fits in maxWidth x maxHeight.
func RenderPreview(p domain.Preview, selected, maxWidth, maxHeight int) string {
	cols, rows := previewCells(p.Size, maxWidth, maxHeight)

	lines := make([]string, 0, len(p.Nodes))
	for _, n := range p.Nodes {
		lines = append(lines, renderPreviewNode(n, selected))
	}

	title := styles.WindowTitle.Width(cols).MaxWidth(cols).Render(" " + p.Title)
	body := lipgloss.NewStyle().
		Width(cols).
		Height(rows).
		MaxWidth(cols).
		MaxHeight(rows).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))

	window := styles.Window.Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
	return lipgloss.JoinVertical(lipgloss.Left, window, styles.MutedText.Render(p.SizeLabel()))
}

// previewCells scales the window geometry to terminal cells. Unreadable
// geometry falls back to the default window size.
func previewCells(size domain.Geometry, maxWidth, maxHeight int) (cols, rows int) {
	if !size.Valid() {
		size = domain.ParseGeometry(domain.DefaultGeometry)
	}
	cols = int(math.Round(size.Width / pixelsPerColumn))
	rows = int(math.Round(size.Height / pixelsPerRow))

	// Window border takes two columns and the title bar plus borders three rows
	cols = clamp(cols, minPreviewCols, max(maxWidth-2, minPreviewCols))
	rows = clamp(rows, minPreviewRows, max(maxHeight-4, minPreviewRows))
	return cols, rows
}

func renderPreviewNode(n domain.PreviewNode, selected int) string {
	isSelected := n.Index == selected && selected != domain.RootIndex

	if n.Type == domain.WidgetLayout {
		return renderPreviewLayout(n, selected, isSelected)
	}

	var out string
	switch n.Type {
	case domain.WidgetInput:
		out = styles.PreviewInput.Render(padRight(n.Caption, inputCells))
	case domain.WidgetButton:
		out = styles.PreviewButton.Render(n.Caption)
	case domain.WidgetCheckBox:
		out = "☐ " + n.Caption
	case domain.WidgetRadioButton:
		out = "○ " + n.Caption
	case domain.WidgetSelectMenu:
		menu := styles.PreviewButton.Render(n.Options[0] + " ▾")
		if n.Caption == "" {
			out = menu
		} else {
			out = lipgloss.JoinHorizontal(lipgloss.Center, n.Caption+" ", menu)
		}
	default:
		out = n.Caption
	}

	if isSelected {
		return styles.PreviewSelected.Render("▸ ") + out
	}
	return out
}

func renderPreviewLayout(n domain.PreviewNode, selected int, isSelected bool) string {
	style := styles.PreviewLayout
	if isSelected {
		style = style.BorderForeground(styles.Primary)
	}

	if len(n.Children) == 0 {
		return style.Render(styles.MutedText.Render("empty " + string(n.Orientation) + " layout"))
	}

	parts := make([]string, 0, len(n.Children)*2)
	for i, c := range n.Children {
		if i > 0 && n.Orientation == domain.Horizontal {
			parts = append(parts, " ")
		}
		parts = append(parts, renderPreviewNode(c, selected))
	}

	if n.Orientation == domain.Horizontal {
		return style.Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...))
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}
