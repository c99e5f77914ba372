// Package errs defines the error taxonomy shared by the domain model,
// use case handlers, and adapters.
//
// Four categories cover the failures the application distinguishes:
//
//   - ValueIsRequiredError: a mandatory value is missing or zero
//   - ValueIsInvalidError: a value is present but malformed
//   - ValueIsOutOfRangeError: a numeric value lies outside its allowed bounds
//   - ObjectNotFoundError: a lookup by identifier found nothing
//
// Each category pairs a sentinel (e.g. ErrObjectNotFound) with a struct
// carrying the offending parameter name and, optionally, an underlying cause.
// Constructors exist in plain and WithCause variants, and every type
// implements Unwrap so callers can classify failures with errors.Is. The
// HTTP layer relies on this to map domain errors to status codes without
// inspecting message strings.
package errs
