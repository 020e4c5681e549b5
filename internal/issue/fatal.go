// SPDX-License-Identifier: MPL-2.0

package issue

import "errors"

// ErrFatal is the sentinel wrapped by every FatalError. Callers test for
// it with errors.Is to decide whether a configuration pass must abort.
var ErrFatal = errors.New("fatal configuration error")

// FatalError marks an ActionableError as unrecoverable: the configuration
// pass it occurred in produced no valid result and must stop. Soft misses
// are never wrapped in a FatalError; they are reported as absent values.
type FatalError struct {
	Err *ActionableError
}

// Fatal wraps an ActionableError as a fatal, pass-aborting error.
// Returns nil if ae is nil.
func Fatal(ae *ActionableError) error {
	if ae == nil {
		return nil
	}
	return &FatalError{Err: ae}
}

// Error implements the error interface.
func (e *FatalError) Error() string {
	return e.Err.Error()
}

// Unwrap exposes both ErrFatal and the wrapped ActionableError to
// errors.Is/As traversal.
func (e *FatalError) Unwrap() []error {
	return []error{ErrFatal, e.Err}
}

// IsFatal reports whether err (anywhere in its chain) aborts the pass.
func IsFatal(err error) bool {
	return errors.Is(err, ErrFatal)
}
