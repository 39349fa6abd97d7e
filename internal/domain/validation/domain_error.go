package validation

import (
	"fmt"
	"strings"
)

// DomainError carries the ordered list of violations found in one validation
// pass. Use cases return it whole so callers can report every problem at once.
type DomainError struct {
	message string
	errs    []Error
}

// NewDomainError creates a domain error from a message and its violations.
func NewDomainError(message string, errs []Error) *DomainError {
	return &DomainError{message: message, errs: errs}
}

// DomainErrorFrom creates a domain error from the violations collected by a handler.
func DomainErrorFrom(message string, h Handler) *DomainError {
	return NewDomainError(message, h.Errors())
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if len(e.errs) == 0 {
		return e.message
	}
	msgs := make([]string, len(e.errs))
	for i, err := range e.errs {
		msgs[i] = err.Message
	}
	return fmt.Sprintf("%s: %s", e.message, strings.Join(msgs, "; "))
}

// Message returns the headline message without the violation list.
func (e *DomainError) Message() string {
	return e.message
}

// Errors returns the violations in the order they were recorded.
func (e *DomainError) Errors() []Error {
	return e.errs
}

// FirstError returns the first violation, or nil.
func (e *DomainError) FirstError() *Error {
	if len(e.errs) == 0 {
		return nil
	}
	return &e.errs[0]
}
