// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a card request fails validation.
	// Every ValidationError wraps it, so callers can check with errors.Is.
	ErrValidation = errors.New("validation failed")

	// ErrGeneration is returned when an identifier, clock, or number
	// generator cannot produce a value for a new card.
	ErrGeneration = errors.New("generation failed")
)

// ValidationError names the first request field that failed validation and
// echoes the raw value the caller sent for it.
type ValidationError struct {
	FieldName     string `json:"fieldName"`
	InputtedValue string `json:"inputtedValue"`
}

// NewValidationError creates a ValidationError for the given field and raw value.
func NewValidationError(fieldName, inputtedValue string) *ValidationError {
	return &ValidationError{
		FieldName:     fieldName,
		InputtedValue: inputtedValue,
	}
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("Value \"%s\" is not valid for field \"%s\"", e.InputtedValue, e.FieldName)
}

// Unwrap returns ErrValidation to support errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// GenerationError reports which generator failed while assembling a card.
type GenerationError struct {
	Generator string
	Err       error
}

// Error implements the error interface for GenerationError.
func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generator failed: %v", e.Generator, e.Err)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Is reports ErrGeneration as a match so callers need not know the generator.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGeneration
}
