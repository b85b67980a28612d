// Package errs provides the error taxonomy shared by the domain model, the
// application layer, and the HTTP adapter. Every constructed error unwraps to
// one of four sentinels (value required, value invalid, object not found,
// conflict) so callers classify with errors.Is instead of matching messages.
package errs
