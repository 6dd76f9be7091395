package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"newsflash/internal/usecase"
)

var (
	orange = color.RGB(255, 102, 0).Add(color.Bold)
	muted  = color.New(color.FgHiBlack)
	bold   = color.New(color.Bold)
)

// Text renders page for a terminal.
func Text(w io.Writer, page usecase.PageView) error {
	var b strings.Builder

	b.WriteString(bold.Sprint("Newsflash"))
	b.WriteString("  " + strings.Join(navLinks, " | ") + "  login\n")

	tabs := make([]string, 0, len(page.Categories))
	for _, t := range page.Categories {
		if t.Active {
			tabs = append(tabs, orange.Sprint(t.Label))
		} else {
			tabs = append(tabs, muted.Sprint(t.Label))
		}
	}
	b.WriteString(strings.Join(tabs, "  ") + "\n")
	b.WriteString(strings.Repeat("-", 60) + "\n")

	if page.Loading {
		b.WriteString("Loading...\n")
	} else {
		for _, it := range page.Items {
			fmt.Fprintf(&b, "%3d. %s", it.Rank, it.Title)
			if it.Host != "" {
				b.WriteString(" " + muted.Sprintf("(%s)", it.Host))
			}
			b.WriteString("\n     ")
			meta := "discuss"
			if byline := it.Byline(); byline != "" {
				meta = byline + " | " + meta
			}
			b.WriteString(muted.Sprint(meta) + "\n")
			b.WriteString("     " + it.URL + "\n")
		}
	}

	b.WriteString("\n")
	if page.HasMore {
		b.WriteString("[more]  ")
	}
	b.WriteString(muted.Sprintf("Page %d of %d", page.CurrentPage, page.TotalPages) + "\n")
	b.WriteString(muted.Sprint(strings.Join(footerLinks, " | ")) + "\n")

	_, err := io.WriteString(w, b.String())
	return err
}
