// Package errs provides the standardized error types used across the order
// portal. Each error type follows one pattern:
//   - a sentinel error variable (e.g. ErrValueIsRequired) for errors.Is checks
//   - a struct carrying the error details
//   - constructors with and without a cause
//   - Error() for formatting and Unwrap() for classification
//
// The types cover the recurring failure shapes of the application: a required
// value is missing (ValueIsRequiredError), a value is present but invalid
// (ValueIsInvalidError), a value falls outside an allowed range
// (ValueIsOutOfRangeError), and a requested object does not exist
// (ObjectNotFoundError). Domain-specific errors such as illegal status
// transitions live in their own domain packages.
package errs
