// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import "errors"

// Severity names the handling policy of an error category.
type Severity int

const (
	// SeverityFatal errors fail the current operation and are shown to the
	// user. Remote client errors are fatal for the call that produced them.
	SeverityFatal Severity = iota
	// SeverityRecoverable errors have already been logged and absorbed; the
	// caller may use them to reconcile state but must not surface them.
	// Local storage errors are recoverable.
	SeverityRecoverable
)

func (s Severity) String() string {
	switch s {
	case SeverityRecoverable:
		return "recoverable"
	default:
		return "fatal"
	}
}

// PolicyError tags an error with its handling policy.
type PolicyError struct {
	Severity Severity
	Err      error
}

func (e *PolicyError) Error() string {
	return e.Severity.String() + ": " + e.Err.Error()
}

func (e *PolicyError) Unwrap() error {
	return e.Err
}

// Recoverable tags err as recoverable. It returns nil for a nil err.
func Recoverable(err error) error {
	if err == nil {
		return nil
	}
	return &PolicyError{Severity: SeverityRecoverable, Err: err}
}

// Fatal tags err as fatal. It returns nil for a nil err.
func Fatal(err error) error {
	if err == nil {
		return nil
	}
	return &PolicyError{Severity: SeverityFatal, Err: err}
}

// IsRecoverable reports whether err carries the recoverable policy.
// Untagged errors are treated as fatal.
func IsRecoverable(err error) bool {
	var pe *PolicyError
	if errors.As(err, &pe) {
		return pe.Severity == SeverityRecoverable
	}
	return false
}
