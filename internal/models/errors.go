package models

import (
	"errors"
	"fmt"
)

var (
	// ErrGroupNotFound is returned when a group has no record in the data source
	ErrGroupNotFound = errors.New("group not found")
	// ErrInvalidSnapshot is wrapped by every ValidationError
	ErrInvalidSnapshot = errors.New("invalid snapshot")
)

// ValidationError describes a malformed record rejected at the boundary
type ValidationError struct {
	Kind   string // "loan" or "member"
	Index  int
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s[%d]: field %q %s", e.Kind, e.Index, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidSnapshot
}
