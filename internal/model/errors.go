// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 UMLKit Contributors

package model

import "errors"

// Sentinel errors for the kernel's failure taxonomy. Call sites wrap these
// with oops context (element IDs, kinds, roles); callers match with errors.Is.
var (
	// ErrNotFound is returned when a lookup by ID or a single-match query
	// finds no element.
	ErrNotFound = errors.New("element not found")

	// ErrAmbiguous is returned when a single-match query finds more than
	// one candidate.
	ErrAmbiguous = errors.New("ambiguous element query")

	// ErrInvalidArgument is returned when a recipe or projection receives
	// an element of the wrong kind for its role.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrPresentationMissing is returned when a relationship is dropped on
	// a diagram before both of its endpoints have a presentation there.
	ErrPresentationMissing = errors.New("endpoint presentation missing on diagram")

	// ErrInvariantViolation indicates that ownership back-references and
	// container membership disagree. Unreachable when elements are mutated
	// only through collections and recipes.
	ErrInvariantViolation = errors.New("model invariant violated")
)
