package npy

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrInvalidFormat   = errors.New("invalid npy format")
	ErrUnsupportedType = errors.New("unsupported npy data type")
	ErrDataSize        = errors.New("data size does not match shape and data type")
)

// FormatError describes a malformed part of an npy file.
type FormatError struct {
	Field   string // Part of the file (e.g., "magic", "descr", "shape")
	Details string // Additional details
}

// Error implements the error interface.
func (e *FormatError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidFormat, e.Field, e.Details)
}

// Unwrap allows errors.Is(err, ErrInvalidFormat).
func (e *FormatError) Unwrap() error {
	return ErrInvalidFormat
}

func formatErrorf(field, format string, args ...any) error {
	return &FormatError{Field: field, Details: fmt.Sprintf(format, args...)}
}
