package usecase

import (
	"net/url"
	"strings"
	"time"

	"newsflash/internal/domain"
)

const dateLayout = "1/2/2006"

type CategoryTab struct {
	Category domain.Category `json:"category"`
	Label    string          `json:"label"`
	Active   bool            `json:"active"`
}

// Item is one rendered article row. Rank runs across pages.
type Item struct {
	Rank   int    `json:"rank"`
	Title  string `json:"title"`
	URL    string `json:"url"`
	Host   string `json:"host"`
	Author string `json:"author,omitempty"`
	Date   string `json:"date"`
}

// Byline is "by <author> <date>" with absent parts left out.
func (it Item) Byline() string {
	var parts []string
	if it.Author != "" {
		parts = append(parts, "by "+it.Author)
	}
	if it.Date != "" {
		parts = append(parts, it.Date)
	}
	return strings.Join(parts, " ")
}

// PageView is everything a renderer needs for one screen.
type PageView struct {
	Loading     bool            `json:"loading"`
	Category    domain.Category `json:"category"`
	Categories  []CategoryTab   `json:"categories"`
	Items       []Item          `json:"items"`
	TotalItems  int             `json:"total_items"`
	CurrentPage int             `json:"current_page"`
	TotalPages  int             `json:"total_pages"`
	HasMore     bool            `json:"has_more"`
	NextPage    int             `json:"next_page,omitempty"`
}

// BuildPage filters and slices articles for state.
func BuildPage(articles []domain.Article, loading bool, state State) PageView {
	view := PageView{
		Loading:     loading,
		Category:    state.Category,
		Categories:  make([]CategoryTab, 0, len(domain.Categories)),
		Items:       []Item{},
		CurrentPage: state.Page,
	}
	for _, c := range domain.Categories {
		view.Categories = append(view.Categories, CategoryTab{
			Category: c,
			Label:    c.Label(),
			Active:   c == state.Category,
		})
	}

	filtered := Filter(articles, state.Category)
	view.TotalItems = len(filtered)
	view.TotalPages = TotalPages(len(filtered), PageSize)
	view.HasMore = state.HasMore(view.TotalPages)
	if view.HasMore {
		view.NextPage = state.Page + 1
	}
	if loading {
		return view
	}

	page, start := Paginate(filtered, state.Page, PageSize)
	for i, a := range page {
		view.Items = append(view.Items, Item{
			Rank:   start + i + 1,
			Title:  a.Title,
			URL:    a.URL,
			Host:   Hostname(a.URL),
			Author: a.Author,
			Date:   FormatDate(a.PublishedAt),
		})
	}
	return view
}

// Hostname returns the host of rawURL without port, or "" if it does not parse.
func Hostname(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Local().Format(dateLayout)
}
