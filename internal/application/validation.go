package application

import (
	"fmt"
	"strings"

	"roadmap/internal/domain"
)

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
// for more readable error messages (e.g., "timeEstimate" -> "time estimate")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"title":        "title",
		"timeEstimate": "time estimate",
		"sectionIndex": "section index",
		"itemIndex":    "item index",
		"difficulty":   "difficulty",
		"path":         "path",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}

	return fieldName
}

// ValidateIndex checks that an index is not negative
func ValidateIndex(fieldName string, index int) error {
	if index < 0 {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s must not be negative, got: %d", formatFieldName(fieldName), index),
		}
	}
	return nil
}

// ValidateDifficulty parses a difficulty, reporting unknown values as a ValidationError
func ValidateDifficulty(value string) (domain.Difficulty, error) {
	d, err := domain.ParseDifficulty(value)
	if err != nil {
		return domain.DifficultyNone, &ValidationError{
			Field:   "difficulty",
			Message: err.Error(),
		}
	}
	return d, nil
}

// ValidateCoordinate checks that at resolves to a topic in c
func ValidateCoordinate(c domain.Catalog, at domain.Coordinate) error {
	if !c.Contains(at) {
		return &OutOfRangeError{Section: at.Section, Item: at.Item}
	}
	return nil
}
