package models

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the domain layer. Controllers translate
// these into HTTP responses at the request boundary.
var (
	// ErrDuplicateSlug is returned when a slug is already taken by another
	// record in the same table.
	ErrDuplicateSlug = errors.New("shop: slug already in use")

	// ErrInvalidName is returned when a name normalizes to an empty slug.
	ErrInvalidName = errors.New("shop: name does not produce a valid slug")

	// ErrNotFound is returned when a referenced record does not exist.
	ErrNotFound = errors.New("shop: record not found")
)

// ValidationKind identifies which write-time rule a value violated.
type ValidationKind string

const (
	InvalidPrice      ValidationKind = "invalid_price"
	InvalidDiscount   ValidationKind = "invalid_discount"
	InvalidRating     ValidationKind = "invalid_rating"
	InvalidQuantity   ValidationKind = "invalid_quantity"
	InsufficientStock ValidationKind = "insufficient_stock"
)

// ValidationError is a field-level, user-correctable rejection. It is
// deterministic: the same input always fails the same way, so no retries
// apply.
type ValidationError struct {
	Kind    ValidationKind
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed on %s: %s", e.Field, e.Message)
}

func newValidationError(kind ValidationKind, field, message string) *ValidationError {
	return &ValidationError{Kind: kind, Field: field, Message: message}
}
