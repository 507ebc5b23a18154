// Package errs provides standardized error types for the delivery application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The taxonomy mirrors how callers react:
//   - ObjectNotFoundError: a referenced entity id does not resolve
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError: malformed input
//   - InvalidStateError: the operation is illegal for the entity's current status
//   - ConflictError: another entity's state blocks the operation
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is classifies against the sentinel
//
// All lifecycle errors are value-level: handlers validate fully before any
// write, nothing is retried inside the core, and the HTTP adapter decides
// status-code mapping from the sentinel.
package errs
