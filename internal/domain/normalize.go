package domain

import "strings"

// NormalizeName trims surrounding whitespace from a required name field.
// Returns a ValidationError when nothing remains after trimming.
func NormalizeName(field, raw string) (string, error) {
	name := strings.TrimSpace(raw)
	if name == "" {
		return "", &ValidationError{Field: field, Reason: "must not be empty"}
	}
	return name, nil
}

// NormalizeOptional trims an optional string field. An empty result means
// the field is absent and is stored as null.
func NormalizeOptional(raw string) string {
	return strings.TrimSpace(raw)
}
