package application

import (
	"fmt"
	"regexp"
	"strings"

	"tkbuilder/internal/domain"
)

var geometryRegex = regexp.MustCompile(`^([1-9][0-9]*)x([1-9][0-9]*)$`)

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		displayName := formatFieldName(fieldName)
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", displayName),
		}
	}
	return nil
}

// formatFieldName converts camelCase field names to space-separated words
// for more readable error messages (e.g., "widgetType" -> "widget type")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"widgetType":  "widget type",
		"index":       "index",
		"targetIndex": "target index",
		"direction":   "direction",
		"geometry":    "geometry",
		"snapshot":    "snapshot name",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ValidateIndex checks that a widget index could have been assigned
func ValidateIndex(fieldName string, index int) error {
	if index <= 0 {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must be positive, got: %d", formatFieldName(fieldName), index),
		}
	}
	return nil
}

// ValidateGeometry checks the strict "<width>x<height>" form with positive integers
func ValidateGeometry(geometry string) error {
	if !geometryRegex.MatchString(strings.TrimSpace(geometry)) {
		return &ValidationError{
			Field:   "geometry",
			Message: fmt.Sprintf("expected WIDTHxHEIGHT, got: %q", geometry),
		}
	}
	return nil
}

// ValidateWidgetType checks that a kind name is one of the seven widget kinds
func ValidateWidgetType(fieldName, name string) (domain.WidgetType, error) {
	t, ok := domain.ParseWidgetType(name)
	if !ok {
		return "", &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("unknown %s: %q", formatFieldName(fieldName), name),
		}
	}
	return t, nil
}

// ValidateAttributes checks the values of a partial update
func ValidateAttributes(attrs domain.Attributes) error {
	if attrs.Orientation != nil {
		if _, ok := domain.ParseOrientation(string(*attrs.Orientation)); !ok {
			return &ValidationError{
				Field:   "kind",
				Message: fmt.Sprintf("expected vertical or horizontal, got: %q", *attrs.Orientation),
			}
		}
	}
	return nil
}
