package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsflash/internal/domain"
)

func TestNewState(t *testing.T) {
	s := NewState()
	assert.Equal(t, domain.CategoryAll, s.Category)
	assert.Equal(t, 1, s.Page)
}

func TestSelectCategoryResetsPage(t *testing.T) {
	s := State{Category: domain.CategoryAll, Page: 4}

	for _, c := range domain.Categories {
		next := s.SelectCategory(c)
		assert.Equal(t, c, next.Category)
		assert.Equal(t, 1, next.Page)
	}
}

func TestMoreStopsAtLastPage(t *testing.T) {
	const total = 3
	s := NewState()

	for want := 2; want <= total; want++ {
		require.True(t, s.HasMore(total))
		next, err := s.More(total)
		require.NoError(t, err)
		assert.Equal(t, want, next.Page)
		s = next
	}

	assert.False(t, s.HasMore(total))
	for i := 0; i < 5; i++ {
		next, err := s.More(total)
		assert.True(t, errors.Is(err, ErrNoMorePages))
		assert.Equal(t, total, next.Page)
	}
}

func TestMoreWithNoPages(t *testing.T) {
	s := NewState()
	assert.False(t, s.HasMore(0))
	_, err := s.More(0)
	assert.ErrorIs(t, err, ErrNoMorePages)
}
