package validation

import "errors"

// Notification is the collecting Handler variant. It never stops a validation
// pass; every violation from every validator is accumulated in append order.
type Notification struct {
	errs []Error
}

// NewNotification creates an empty notification.
func NewNotification() *Notification {
	return &Notification{}
}

// NotificationOf creates a notification seeded with one violation.
func NotificationOf(err Error) *Notification {
	n := NewNotification()
	n.Append(err)
	return n
}

// Append records a violation.
func (n *Notification) Append(err Error) Handler {
	n.errs = append(n.errs, err)
	return n
}

// AppendHandler merges every violation collected by another handler.
func (n *Notification) AppendHandler(other Handler) Handler {
	n.errs = append(n.errs, other.Errors()...)
	return n
}

// Validate runs the given unit of validation. A DomainError contributes all of
// its violations; any other failure contributes its message as a single one.
func (n *Notification) Validate(v Validation) Handler {
	err := v()
	if err == nil {
		return n
	}

	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		n.errs = append(n.errs, domainErr.Errors()...)
		return n
	}

	n.errs = append(n.errs, NewError(err.Error()))
	return n
}

// Errors returns the recorded violations in append order.
func (n *Notification) Errors() []Error {
	return n.errs
}

// HasError reports whether any violation was recorded.
func (n *Notification) HasError() bool {
	return len(n.errs) > 0
}
