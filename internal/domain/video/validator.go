package video

import (
	"strings"
	"unicode/utf8"

	"github.com/kinotek/catalog/internal/domain/validation"
)

const (
	titleMaxLength       = 255
	descriptionMaxLength = 4000
)

type validator struct {
	video   *Video
	handler validation.Handler
}

func newValidator(v *Video, handler validation.Handler) *validator {
	return &validator{video: v, handler: handler}
}

func (v *validator) Validate() {
	v.checkTitleConstraints()
	v.checkDescriptionConstraints()
	v.checkLaunchedAtConstraints()
	v.checkRatingConstraints()
	v.checkDurationConstraints()
}

func (v *validator) checkTitleConstraints() {
	title := v.video.Title
	if title == "" {
		v.handler.Append(validation.NewError("'title' should not be null"))
		return
	}
	if strings.TrimSpace(title) == "" {
		v.handler.Append(validation.NewError("'title' should not be empty"))
		return
	}
	if utf8.RuneCountInString(strings.TrimSpace(title)) > titleMaxLength {
		v.handler.Append(validation.NewError("'title' must be between 1 and 255 characters"))
	}
}

func (v *validator) checkDescriptionConstraints() {
	description := v.video.Description
	if strings.TrimSpace(description) == "" {
		v.handler.Append(validation.NewError("'description' should not be empty"))
		return
	}
	if utf8.RuneCountInString(strings.TrimSpace(description)) > descriptionMaxLength {
		v.handler.Append(validation.NewError("'description' must be between 1 and 4000 characters"))
	}
}

func (v *validator) checkLaunchedAtConstraints() {
	if v.video.LaunchedAt == nil {
		v.handler.Append(validation.NewError("'launchedAt' should not be null"))
	}
}

func (v *validator) checkRatingConstraints() {
	if _, ok := RatingOf(string(v.video.Rating)); !ok {
		v.handler.Append(validation.NewError("'rating' should not be null"))
	}
}

func (v *validator) checkDurationConstraints() {
	if v.video.Duration <= 0 {
		v.handler.Append(validation.NewError("'duration' must be greater than zero"))
	}
}
