package newsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"newsflash/internal/domain"
)

const DefaultEndpoint = "https://newsapi.org/v2/everything"

var DefaultDomains = []string{"techcrunch.com", "thenextweb.com"}

// response mirrors the newsapi.org envelope; only the fields we read.
type response struct {
	Status       string        `json:"status"`
	TotalResults int           `json:"totalResults"`
	Articles     []articleJSON `json:"articles"`
}

type articleJSON struct {
	Title       string  `json:"title"`
	URL         string  `json:"url"`
	Author      *string `json:"author"`
	PublishedAt string  `json:"publishedAt"`
}

type Client struct {
	client   *http.Client
	endpoint string
	apiKey   string
	domains  []string
}

func NewClient(client *http.Client, endpoint, apiKey string, domains []string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if len(domains) == 0 {
		domains = DefaultDomains
	}
	return &Client{
		client:   client,
		endpoint: endpoint,
		apiKey:   apiKey,
		domains:  domains,
	}
}

// Fetch requests one page of "everything" for the configured domains.
func (c *Client) Fetch(ctx context.Context) ([]domain.Article, error) {
	endpoint, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid newsapi endpoint %q: %w", c.endpoint, err)
	}

	params := endpoint.Query()
	params.Set("domains", strings.Join(c.domains, ","))
	params.Set("apiKey", c.apiKey)
	endpoint.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", "Mozilla/5.0 (compatible; Newsflash/1.0)")
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("newsapi request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP error! status: %d", resp.StatusCode)
	}

	var body response
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode newsapi response: %w", err)
	}

	articles := make([]domain.Article, 0, len(body.Articles))
	for _, a := range body.Articles {
		articles = append(articles, toDomain(a))
	}
	return articles, nil
}

func toDomain(a articleJSON) domain.Article {
	article := domain.Article{
		Title: a.Title,
		URL:   a.URL,
	}
	if a.Author != nil {
		article.Author = *a.Author
	}
	// Unparseable timestamps stay zero and render without a date.
	if t, err := time.Parse(time.RFC3339, a.PublishedAt); err == nil {
		article.PublishedAt = t
	}
	return article
}
