package castmember

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
	member  *CastMember
	handler validation.Handler
}

func newValidator(m *CastMember, handler validation.Handler) *validator {
	return &validator{member: m, handler: handler}
}

func (v *validator) Validate() {
	v.checkNameConstraints()
	v.checkTypeConstraints()
}

func (v *validator) checkNameConstraints() {
	name := v.member.Name
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

func (v *validator) checkTypeConstraints() {
	if _, ok := TypeOf(string(v.member.Type)); !ok {
		v.handler.Append(validation.NewError("'type' should not be null"))
	}
}
