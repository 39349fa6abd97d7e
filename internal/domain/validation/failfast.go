package validation

// FailFast is the short-circuiting Handler variant. Only the first violation
// is kept; once tripped, further validation units are skipped. Callers surface
// the result through Err instead of inspecting the error list.
type FailFast struct {
	err *Error
}

// NewFailFast creates a fail-fast handler.
func NewFailFast() *FailFast {
	return &FailFast{}
}

// Append records the violation if none has been recorded yet.
func (f *FailFast) Append(err Error) Handler {
	if f.err == nil {
		f.err = &err
	}
	return f
}

// AppendHandler records the other handler's first violation, if any.
func (f *FailFast) AppendHandler(other Handler) Handler {
	if first := FirstError(other); first != nil {
		f.Append(*first)
	}
	return f
}

// Validate runs the given unit of validation unless a violation was already
// recorded.
func (f *FailFast) Validate(v Validation) Handler {
	if f.err != nil {
		return f
	}
	if err := v(); err != nil {
		f.Append(NewError(err.Error()))
	}
	return f
}

// Errors returns the recorded violation, if any.
func (f *FailFast) Errors() []Error {
	if f.err == nil {
		return nil
	}
	return []Error{*f.err}
}

// Err returns the recorded violation as a DomainError, or nil.
func (f *FailFast) Err() error {
	if f.err == nil {
		return nil
	}
	return NewDomainError(f.err.Message, []Error{*f.err})
}
