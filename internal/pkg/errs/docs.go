// Package errs provides the error types shared by the bakery services.
//
// Each type follows the same shape:
//   - a sentinel error variable (e.g., ErrValueIsRequired) usable with errors.Is
//   - a struct carrying the offending parameter and an optional cause
//   - constructors with and without cause
//   - Error() for formatting and Unwrap() returning the sentinel
//
// Domain constructors combine these with errors.Join so a single call reports
// every invalid field at once.
package errs
