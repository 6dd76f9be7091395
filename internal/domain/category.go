package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Category is a filter label matched against article titles.
type Category string

// CategoryAll is the sentinel that disables filtering.
const CategoryAll Category = "all"

const (
	CategoryTech     Category = "Tech"
	CategoryBusiness Category = "Business"
	CategoryScience  Category = "Science"
	CategoryAI       Category = "AI"
)

var ErrUnknownCategory = errors.New("unknown category")

// Categories lists the selectable categories in display order.
var Categories = []Category{CategoryAll, CategoryTech, CategoryBusiness, CategoryScience, CategoryAI}

// ParseCategory matches name case-insensitively. An empty name means All.
func ParseCategory(name string) (Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return CategoryAll, nil
	}
	for _, c := range Categories {
		if strings.EqualFold(string(c), name) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, name)
}

// Label is the name shown to the reader.
func (c Category) Label() string {
	if c == CategoryAll {
		return "All"
	}
	return string(c)
}
