package category

import (
	"strings"
	"unicode/utf8"

	"github.com/kinotek/catalog/internal/domain/validation"
)

const (
	nameMinLength = 3
	nameMaxLength = 255
)

type validator struct {
	category *Category
	handler  validation.Handler
}

func newValidator(c *Category, handler validation.Handler) *validator {
	return &validator{category: c, handler: handler}
}

// Validate appends at most one violation per field; once a rule fires for a
// field the remaining rules for that field are skipped.
func (v *validator) Validate() {
	v.checkNameConstraints()
}

func (v *validator) checkNameConstraints() {
	name := v.category.Name
	if name == "" {
		v.handler.Append(validation.NewError("'name' should not be null"))
		return
	}
	if strings.TrimSpace(name) == "" {
		v.handler.Append(validation.NewError("'name' should not be empty"))
		return
	}
	if length := utf8.RuneCountInString(strings.TrimSpace(name)); length < nameMinLength || length > nameMaxLength {
		v.handler.Append(validation.NewError("'name' must be between 3 and 255 characters"))
	}
}
