package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	cases := map[string]Category{
		"":         CategoryAll,
		"All":      CategoryAll,
		"all":      CategoryAll,
		" ALL ":    CategoryAll,
		"tech":     CategoryTech,
		"Business": CategoryBusiness,
		"SCIENCE":  CategoryScience,
		"ai":       CategoryAI,
	}
	for in, want := range cases {
		got, err := ParseCategory(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestParseCategoryUnknown(t *testing.T) {
	_, err := ParseCategory("sports")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownCategory))
}

func TestCategoryLabel(t *testing.T) {
	assert.Equal(t, "All", CategoryAll.Label())
	assert.Equal(t, "AI", CategoryAI.Label())
}
