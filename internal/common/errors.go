// Package common defines the sentinel errors shared by the storage, service
// and transport layers of repovault. Callers should use errors.Is to match
// these values; every layer wraps them with fmt.Errorf("...: %w", err).
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound     = errors.New("not found")
	ErrInconsistent = errors.New("inconsistent data: more than one row for a unique lookup")

	// Validation errors (empty required fields, malformed encodings, unscoped search).
	ErrInvalidArgument = errors.New("invalid argument")

	// Permission gate denied the requested operation.
	ErrPermissionDenied = errors.New("permission denied")

	// Row-store connectivity or query failure.
	ErrUpstream = errors.New("db error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
