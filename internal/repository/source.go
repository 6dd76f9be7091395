package repository

import (
	"context"

	"newsflash/internal/domain"
)

// ArticleSource fetches the full article list in a single call.
type ArticleSource interface {
	Fetch(ctx context.Context) ([]domain.Article, error)
}
