package genre

import (
	"strings"
	"unicode/utf8"

	"github.com/kinotek/catalog/internal/domain/validation"
)

const (
	nameMinLength = 1
	nameMaxLength = 255
)

type validator struct {
	genre   *Genre
	handler validation.Handler
}

func newValidator(g *Genre, handler validation.Handler) *validator {
	return &validator{genre: g, handler: handler}
}

func (v *validator) Validate() {
	v.checkNameConstraints()
}

func (v *validator) checkNameConstraints() {
	name := v.genre.Name
	if name == "" {
		v.handler.Append(validation.NewError("'name' should not be null"))
		return
	}
	if strings.TrimSpace(name) == "" {
		v.handler.Append(validation.NewError("'name' should not be empty"))
		return
	}
	if length := utf8.RuneCountInString(strings.TrimSpace(name)); length < nameMinLength || length > nameMaxLength {
		v.handler.Append(validation.NewError("'name' must be between 1 and 255 characters"))
	}
}
