package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"newsflash/internal/domain"
	"newsflash/internal/usecase"
	"newsflash/internal/view"
)

var errInvalidPage = errors.New("invalid page")

// ReaderHandler serves the reader page and its JSON form from a shared Feed.
type ReaderHandler struct {
	feed *usecase.Feed
}

func NewReaderHandler(feed *usecase.Feed) *ReaderHandler {
	return &ReaderHandler{feed: feed}
}

// HandlePage renders the HTML reader.
func (h *ReaderHandler) HandlePage(c *gin.Context) {
	page, err := h.buildPage(c)
	if err != nil {
		c.String(http.StatusBadRequest, err.Error())
		return
	}
	c.HTML(http.StatusOK, view.PageTemplate, view.Data(page))
}

// HandleArticles returns the same page as JSON.
func (h *ReaderHandler) HandleArticles(c *gin.Context) {
	page, err := h.buildPage(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, page)
}

func (h *ReaderHandler) HandleHealth(c *gin.Context) {
	_, loading := h.feed.Snapshot()
	c.JSON(http.StatusOK, gin.H{"status": "ok", "loading": loading})
}

func (h *ReaderHandler) buildPage(c *gin.Context) (usecase.PageView, error) {
	state, err := parseState(c)
	if err != nil {
		return usecase.PageView{}, err
	}

	articles, loading := h.feed.Snapshot()

	// A page number in the URL stands for repeated "More" clicks, which stop at the last page.
	total := usecase.TotalPages(len(usecase.Filter(articles, state.Category)), usecase.PageSize)
	switch {
	case total == 0:
		state.Page = 1
	case state.Page > total:
		state.Page = total
	}
	return usecase.BuildPage(articles, loading, state), nil
}

func parseState(c *gin.Context) (usecase.State, error) {
	category, err := domain.ParseCategory(c.Query("category"))
	if err != nil {
		return usecase.State{}, err
	}
	state := usecase.NewState().SelectCategory(category)

	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return usecase.State{}, errInvalidPage
		}
		state.Page = page
	}
	return state, nil
}
