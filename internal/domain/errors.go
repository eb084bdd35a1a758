// Package domain provides shared domain-level sentinel errors.
package domain

import "errors"

// ErrNotFound indicates the requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrValidation indicates the request failed input validation.
var ErrValidation = errors.New("validation failed")

// ErrClinicUnresolved indicates an operation that requires a resolved clinic
// was attempted before any clinic was loaded. Callers must not fall through
// to a write with a missing foreign key.
var ErrClinicUnresolved = errors.New("clinic not resolved")
