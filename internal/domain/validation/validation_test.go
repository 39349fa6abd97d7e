package validation_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinotek/catalog/internal/domain/validation"
)

func TestNotification_CollectsEveryViolation(t *testing.T) {
	n := validation.NewNotification()

	n.Append(validation.NewError("first"))
	n.Append(validation.NewError("second"))
	n.Append(validation.NewError("third"))

	require.True(t, n.HasError())
	require.Len(t, n.Errors(), 3)
	assert.Equal(t, "first", n.Errors()[0].Message)
	assert.Equal(t, "second", n.Errors()[1].Message)
	assert.Equal(t, "third", n.Errors()[2].Message)
}

func TestNotification_ValidateAbsorbsDomainError(t *testing.T) {
	n := validation.NewNotification()

	n.Validate(func() error {
		return validation.NewDomainError("invalid", []validation.Error{
			validation.NewError("first"),
			validation.NewError("second"),
		})
	})

	require.Len(t, n.Errors(), 2)
	assert.Equal(t, "first", n.Errors()[0].Message)
	assert.Equal(t, "second", n.Errors()[1].Message)
}

func TestNotification_ValidatePlainError(t *testing.T) {
	n := validation.NewNotification()

	n.Validate(func() error { return errors.New("boom") })
	n.Validate(func() error { return nil })

	require.Len(t, n.Errors(), 1)
	assert.Equal(t, "boom", n.Errors()[0].Message)
}

func TestNotification_AppendHandlerMergesInOrder(t *testing.T) {
	first := validation.NotificationOf(validation.NewError("a"))
	second := validation.NewNotification()
	second.Append(validation.NewError("b"))
	second.Append(validation.NewError("c"))

	first.AppendHandler(second)

	require.Len(t, first.Errors(), 3)
	assert.Equal(t, "a", first.Errors()[0].Message)
	assert.Equal(t, "b", first.Errors()[1].Message)
	assert.Equal(t, "c", first.Errors()[2].Message)
}

func TestFailFast_KeepsOnlyFirstViolation(t *testing.T) {
	f := validation.NewFailFast()

	f.Append(validation.NewError("first"))
	f.Append(validation.NewError("second"))

	require.Len(t, f.Errors(), 1)
	assert.Equal(t, "first", f.Errors()[0].Message)
}

func TestFailFast_SkipsValidationOnceTripped(t *testing.T) {
	f := validation.NewFailFast()
	ran := false

	f.Validate(func() error { return errors.New("first") })
	f.Validate(func() error {
		ran = true
		return errors.New("second")
	})

	assert.False(t, ran)
	require.Error(t, f.Err())
	assert.Contains(t, f.Err().Error(), "first")
}

func TestFailFast_ErrNilWithoutViolations(t *testing.T) {
	f := validation.NewFailFast()
	f.Validate(func() error { return nil })

	assert.NoError(t, f.Err())
	assert.False(t, validation.HasError(f))
}

func TestDomainError_MessageAndList(t *testing.T) {
	err := validation.NewDomainError("Could not create Aggregate Category", []validation.Error{
		validation.NewError("'name' should not be null"),
	})

	assert.Equal(t, "Could not create Aggregate Category", err.Message())
	assert.Equal(t, "Could not create Aggregate Category: 'name' should not be null", err.Error())
	require.NotNil(t, err.FirstError())
	assert.Equal(t, "'name' should not be null", err.FirstError().Message)
}
