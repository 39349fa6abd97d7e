// Package validation implements the notification-based validation protocol
// shared by every catalog aggregate. A Handler either accumulates every rule
// violation found during a validation pass (Notification) or stops at the
// first one (FailFast); validators are agnostic to which variant is in use.
package validation

// Error is a single domain rule violation.
type Error struct {
	Message string
}

// NewError creates a validation error with the given message.
func NewError(message string) Error {
	return Error{Message: message}
}

// Validation is one unit of validation run through a Handler.
type Validation func() error

// Handler receives rule violations from validators.
type Handler interface {
	// Append records a single violation.
	Append(err Error) Handler

	// AppendHandler merges every violation collected by another handler.
	AppendHandler(other Handler) Handler

	// Validate runs one unit of validation, capturing any failure it returns.
	Validate(v Validation) Handler

	// Errors returns the recorded violations in append order.
	Errors() []Error
}

// HasError reports whether the handler recorded any violation.
func HasError(h Handler) bool {
	return len(h.Errors()) > 0
}

// FirstError returns the first recorded violation, or nil.
func FirstError(h Handler) *Error {
	errs := h.Errors()
	if len(errs) == 0 {
		return nil
	}
	return &errs[0]
}

// Validator runs an aggregate's rule set against a Handler.
type Validator interface {
	Validate()
}
