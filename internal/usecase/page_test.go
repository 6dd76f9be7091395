package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"newsflash/internal/domain"
)

func TestBuildPageEmpty(t *testing.T) {
	page := BuildPage([]domain.Article{}, false, NewState())

	assert.False(t, page.Loading)
	assert.Empty(t, page.Items)
	assert.False(t, page.HasMore)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 0, page.TotalPages)
}

func TestBuildPageThirtyOneArticles(t *testing.T) {
	articles := makeArticles(31)
	state := NewState()

	first := BuildPage(articles, false, state)
	require.Len(t, first.Items, 30)
	assert.Equal(t, 1, first.Items[0].Rank)
	assert.Equal(t, 30, first.Items[29].Rank)
	assert.True(t, first.HasMore)
	assert.Equal(t, 2, first.NextPage)
	assert.Equal(t, 2, first.TotalPages)

	state, err := state.More(first.TotalPages)
	require.NoError(t, err)

	second := BuildPage(articles, false, state)
	require.Len(t, second.Items, 1)
	assert.Equal(t, 31, second.Items[0].Rank)
	assert.Equal(t, "Story 31", second.Items[0].Title)
	assert.False(t, second.HasMore)
	assert.Zero(t, second.NextPage)
	assert.Equal(t, 2, second.CurrentPage)
	assert.Equal(t, 2, second.TotalPages)
}

func TestBuildPageRankFollowsFilteredList(t *testing.T) {
	articles := makeArticles(70)
	for i := range articles {
		if i%2 == 0 {
			articles[i].Title += " in Tech"
		}
	}

	page := BuildPage(articles, false, State{Category: domain.CategoryTech, Page: 2})
	require.Len(t, page.Items, 5)
	assert.Equal(t, 31, page.Items[0].Rank)
	assert.Equal(t, "Story 61 in Tech", page.Items[0].Title)
	assert.Equal(t, 35, page.TotalItems)
}

func TestBuildPageCategoryTabs(t *testing.T) {
	page := BuildPage(nil, false, NewState().SelectCategory(domain.CategoryScience))

	require.Len(t, page.Categories, len(domain.Categories))
	for _, tab := range page.Categories {
		assert.Equal(t, tab.Category == domain.CategoryScience, tab.Active, tab.Label)
	}
	assert.Equal(t, "All", page.Categories[0].Label)
}

func TestBuildPageLoadingHasNoItems(t *testing.T) {
	page := BuildPage(makeArticles(5), true, NewState())
	assert.True(t, page.Loading)
	assert.Empty(t, page.Items)
}

func TestItemByline(t *testing.T) {
	assert.Equal(t, "by Sam 7/4/2024", Item{Author: "Sam", Date: "7/4/2024"}.Byline())
	assert.Equal(t, "by Sam", Item{Author: "Sam"}.Byline())
	assert.Equal(t, "7/4/2024", Item{Date: "7/4/2024"}.Byline())
	assert.Empty(t, Item{}.Byline())
}

func TestBuildPageItemFields(t *testing.T) {
	published := time.Date(2024, 7, 4, 12, 0, 0, 0, time.Local)
	articles := []domain.Article{
		{Title: "With author", URL: "https://techcrunch.com:443/2024/07/04/x", Author: "Sam", PublishedAt: published},
		{Title: "Broken", URL: "://nope"},
	}

	page := BuildPage(articles, false, NewState())
	require.Len(t, page.Items, 2)

	assert.Equal(t, "techcrunch.com", page.Items[0].Host)
	assert.Equal(t, "Sam", page.Items[0].Author)
	assert.Equal(t, "7/4/2024", page.Items[0].Date)

	assert.Empty(t, page.Items[1].Host)
	assert.Empty(t, page.Items[1].Author)
	assert.Empty(t, page.Items[1].Date)
}
