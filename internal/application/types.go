package application

import "tkbuilder/internal/domain"

// Re-export domain types for use by adapters
type (
	Document    = domain.Document
	Widget      = domain.Widget
	WidgetType  = domain.WidgetType
	Attributes  = domain.Attributes
	Template    = domain.Template
	Direction   = domain.Direction
	Orientation = domain.Orientation
	Row         = domain.Row
)

const (
	DirectionUp   = domain.DirectionUp
	DirectionDown = domain.DirectionDown
	RootIndex     = domain.RootIndex
)

// ParseWidgetType resolves a widget kind name
func ParseWidgetType(s string) (WidgetType, bool) {
	return domain.ParseWidgetType(s)
}

// ParseDirection resolves "up" or "down"
func ParseDirection(s string) (Direction, bool) {
	return domain.ParseDirection(s)
}
