package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"newsflash/internal/adapter/httpclient"
	"newsflash/internal/adapter/newsapi"
	"newsflash/internal/config"
	"newsflash/internal/handler/httpapi"
	"newsflash/internal/usecase"
)

func main() {
	config.LoadEnv()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	client := newsapi.NewClient(
		httpclient.NewHTTPClient(cfg.HTTPClientTimeout),
		cfg.NewsAPIURL,
		cfg.NewsAPIKey,
		cfg.NewsDomains,
	)

	// The single upstream fetch runs in the background; pages show "Loading..." until it settles.
	feed := usecase.NewFeed(log.Default())
	go feed.Load(context.Background(), client)

	router, err := httpapi.NewRouter(feed, cfg.RateLimit, cfg.TrustedProxies)
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Printf("🚀 Newsflash running at http://localhost%s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("❌ Server failed: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("⚠️  Shutdown failed: %v", err)
	}
	log.Println("👋 Server stopped.")
}
