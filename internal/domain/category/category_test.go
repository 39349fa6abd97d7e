package category_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kinotek/catalog/internal/domain/category"
	"github.com/kinotek/catalog/internal/domain/validation"
)

func TestNewCategory_Active(t *testing.T) {
	c := category.NewCategory("Movies", "Feature films", true)

	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "Movies", c.Name)
	assert.Equal(t, "Feature films", c.Description)
	assert.True(t, c.Active)
	assert.Nil(t, c.DeletedAt)
	assert.Equal(t, c.CreatedAt, c.UpdatedAt)
}

func TestNewCategory_InactiveStartsDeleted(t *testing.T) {
	c := category.NewCategory("Movies", "", false)

	assert.False(t, c.Active)
	require.NotNil(t, c.DeletedAt)
	assert.Equal(t, c.CreatedAt, *c.DeletedAt)
}

func TestCategory_ValidateName(t *testing.T) {
	cases := []struct {
		name     string
		value    string
		expected string
	}{
		{"null name", "", "'name' should not be null"},
		{"blank name", "   ", "'name' should not be empty"},
		{"too short", "ab", "'name' must be between 3 and 255 characters"},
		{"too short multibyte", "áé", "'name' must be between 3 and 255 characters"},
		{"too long", strings.Repeat("a", 256), "'name' must be between 3 and 255 characters"},
		{"too long multibyte", strings.Repeat("é", 256), "'name' must be between 3 and 255 characters"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := category.NewCategory(tc.value, "", true)
			n := validation.NewNotification()

			c.Validate(n)

			require.Len(t, n.Errors(), 1)
			assert.Equal(t, tc.expected, n.Errors()[0].Message)
		})
	}
}

func TestCategory_ValidateNameBoundaries(t *testing.T) {
	// Bounds count characters, not bytes, so multibyte names sit on the
	// same boundaries as ASCII ones.
	for _, value := range []string{"abc", "áéí", strings.Repeat("a", 255), strings.Repeat("é", 255)} {
		c := category.NewCategory(value, "", true)
		n := validation.NewNotification()

		c.Validate(n)

		assert.Empty(t, n.Errors())
	}
}

func TestCategory_DeactivateIsIdempotentOnDeletedAt(t *testing.T) {
	c := category.NewCategory("Movies", "", true)

	c.Deactivate()
	require.NotNil(t, c.DeletedAt)
	firstDeletedAt := *c.DeletedAt
	firstUpdatedAt := c.UpdatedAt

	c.Deactivate()

	assert.Equal(t, firstDeletedAt, *c.DeletedAt)
	assert.False(t, c.UpdatedAt.Before(firstUpdatedAt))
	assert.False(t, c.Active)
}

func TestCategory_ActivateClearsDeletedAt(t *testing.T) {
	c := category.NewCategory("Movies", "", false)
	require.NotNil(t, c.DeletedAt)

	c.Activate()

	assert.True(t, c.Active)
	assert.Nil(t, c.DeletedAt)
}

func TestCategory_Update(t *testing.T) {
	c := category.NewCategory("Movies", "old", true)

	c.Update("Series", "new", false)

	assert.Equal(t, "Series", c.Name)
	assert.Equal(t, "new", c.Description)
	assert.False(t, c.Active)
	assert.NotNil(t, c.DeletedAt)
}
