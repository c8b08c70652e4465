// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UMLKit Contributors

package model

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Validation limits for caller-supplied input.
const (
	MaxNameLength     = 255
	MaxTypeNameLength = 255
)

// ValidationError represents an input validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateName checks a caller-supplied element name. Element names are
// optional in the model itself (member ends are unnamed by default), so
// empty names are valid; non-empty names must be valid UTF-8, free of
// control characters, and within the length limit.
func ValidateName(name string) error {
	if name == "" {
		return nil
	}
	if !utf8.ValidString(name) {
		return &ValidationError{Field: "name", Message: "must be valid UTF-8"}
	}
	if len(name) > MaxNameLength {
		return &ValidationError{Field: "name", Message: fmt.Sprintf("exceeds maximum length of %d", MaxNameLength)}
	}
	if hasControlChars(name) {
		return &ValidationError{Field: "name", Message: "cannot contain control characters"}
	}
	return nil
}

// ValidateTypeName checks a caller-supplied primitive type name.
func ValidateTypeName(name string) error {
	if name == "" {
		return &ValidationError{Field: "type", Message: "cannot be empty"}
	}
	if !utf8.ValidString(name) {
		return &ValidationError{Field: "type", Message: "must be valid UTF-8"}
	}
	if len(name) > MaxTypeNameLength {
		return &ValidationError{Field: "type", Message: fmt.Sprintf("exceeds maximum length of %d", MaxTypeNameLength)}
	}
	if hasControlChars(name) {
		return &ValidationError{Field: "type", Message: "cannot contain control characters"}
	}
	return nil
}

func hasControlChars(s string) bool {
	for _, r := range s {
		if unicode.IsControl(r) {
			return true
		}
	}
	return false
}
