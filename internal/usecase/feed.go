package usecase

import (
	"context"
	"log"
	"sync"

	"newsflash/internal/domain"
	"newsflash/internal/repository"
)

// Feed holds the article collection fetched once per process.
type Feed struct {
	logger *log.Logger

	once     sync.Once
	mu       sync.RWMutex
	articles []domain.Article
	loading  bool
}

func NewFeed(logger *log.Logger) *Feed {
	if logger == nil {
		logger = log.Default()
	}
	return &Feed{
		logger:   logger,
		articles: []domain.Article{},
		loading:  true,
	}
}

// Load fetches from source exactly once; later calls return immediately.
// Failures are logged and leave the collection empty.
func (f *Feed) Load(ctx context.Context, source repository.ArticleSource) {
	f.once.Do(func() {
		defer func() {
			f.mu.Lock()
			f.loading = false
			f.mu.Unlock()
		}()

		articles, err := source.Fetch(ctx)
		if err != nil {
			f.logger.Printf("❌ Error fetching news: %v", err)
			return
		}
		if articles == nil {
			articles = []domain.Article{}
		}

		f.mu.Lock()
		f.articles = articles
		f.mu.Unlock()

		f.logger.Printf("✅ %d articles loaded", len(articles))
	})
}

// Snapshot returns the current collection and whether the fetch is still pending.
// The returned slice must not be modified.
func (f *Feed) Snapshot() ([]domain.Article, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.articles, f.loading
}
