package services

// Typed errors returned by the service layer. Handlers map these to wire
// statuses in handleServiceError; anything else becomes a generic 500.

type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string { return "Validation error" }

type ConflictError struct{ Message string }

func (e *ConflictError) Error() string { return e.Message }

type NotFoundError struct{ Message string }

func (e *NotFoundError) Error() string { return e.Message }

type QuotaError struct{ Message string }

func (e *QuotaError) Error() string { return e.Message }

// ExternalError wraps a failure from the completion service. It is logged
// distinctly but surfaces to the client as a generic server error.
type ExternalError struct{ Err error }

func (e *ExternalError) Error() string { return e.Err.Error() }

func (e *ExternalError) Unwrap() error { return e.Err }
