package httpapi

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	ginlimiter "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"newsflash/internal/usecase"
	"newsflash/internal/view"
)

// NewRouter wires the reader routes. The JSON route is rate limited per client IP.
// Forwarded headers are only honoured from trustedProxies; nil trusts none.
func NewRouter(feed *usecase.Feed, rate limiter.Rate, trustedProxies []string) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(trustedProxies); err != nil {
		return nil, fmt.Errorf("invalid trusted proxies: %w", err)
	}
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.SetHTMLTemplate(view.Template())

	h := NewReaderHandler(feed)

	r.GET("/", h.HandlePage)
	r.GET("/healthz", h.HandleHealth)

	api := r.Group("/api")
	api.Use(rateLimitMiddleware(rate))
	{
		api.GET("/articles", h.HandleArticles)
	}
	return r, nil
}

func rateLimitMiddleware(rate limiter.Rate) gin.HandlerFunc {
	store := memory.NewStore()
	instance := limiter.New(store, rate)
	return ginlimiter.NewMiddleware(instance)
}
