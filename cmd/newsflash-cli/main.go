package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"newsflash/internal/adapter/httpclient"
	"newsflash/internal/adapter/newsapi"
	"newsflash/internal/config"
	"newsflash/internal/domain"
	"newsflash/internal/usecase"
)

func main() {
	categoryFlag := flag.String("category", "All", "Initial category: All, Tech, Business, Science or AI.")
	flag.Parse()

	category, err := domain.ParseCategory(*categoryFlag)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

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

	feed := usecase.NewFeed(log.New(os.Stderr, "", log.LstdFlags))
	session := newSession(feed, os.Stdout)
	session.state = session.state.SelectCategory(category)

	session.render()
	feed.Load(context.Background(), client)
	session.render()

	if err := session.run(os.Stdin); err != nil {
		log.Fatalf("❌ %v", err)
	}
}

func init() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [-category name]\n\nCommands: all, tech, business, science, ai, more, help, quit\n", os.Args[0])
		flag.PrintDefaults()
	}
}
