package usecase

import (
	"strings"

	"newsflash/internal/domain"
)

// PageSize is the number of articles shown per page.
const PageSize = 30

// Filter keeps articles whose title contains the category name, ignoring case.
// CategoryAll returns articles unchanged.
func Filter(articles []domain.Article, category domain.Category) []domain.Article {
	if category == domain.CategoryAll {
		return articles
	}

	needle := strings.ToLower(string(category))
	filtered := make([]domain.Article, 0, len(articles))
	for _, a := range articles {
		if strings.Contains(strings.ToLower(a.Title), needle) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// TotalPages is ceil(n/size).
func TotalPages(n, size int) int {
	if n <= 0 || size <= 0 {
		return 0
	}
	return (n + size - 1) / size
}

// Paginate returns the half-open slice for a 1-based page and its start offset.
// A short last page is returned as is; pages out of range are empty.
func Paginate(articles []domain.Article, page, size int) ([]domain.Article, int) {
	if page < 1 || size <= 0 {
		return []domain.Article{}, 0
	}
	start := (page - 1) * size
	if start >= len(articles) {
		return []domain.Article{}, start
	}
	end := start + size
	if end > len(articles) {
		end = len(articles)
	}
	return articles[start:end], start
}
