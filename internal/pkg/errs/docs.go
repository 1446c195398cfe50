// Package errs provides the standardized error types used across the
// parcels application.
//
// Every error scenario follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound) for errors.Is checks
//   - a struct type carrying the error details
//   - constructors with and without an underlying cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// The error families map directly onto the failure taxonomy of the HTTP
// surface: ValueIsRequired/ValueIsInvalid (validation, 400), ObjectNotFound
// (404), Conflict (uniqueness violations, 409) and NotAuthorized (403).
package errs
