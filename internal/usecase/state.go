package usecase

import "newsflash/internal/domain"

// State is the reader's position: selected category and 1-based page.
type State struct {
	Category domain.Category
	Page     int
}

func NewState() State {
	return State{Category: domain.CategoryAll, Page: 1}
}

// SelectCategory switches category and always resets to page 1.
func (s State) SelectCategory(c domain.Category) State {
	return State{Category: c, Page: 1}
}

func (s State) HasMore(totalPages int) bool {
	return s.Page < totalPages
}

// More advances one page. It fails with ErrNoMorePages on the last page.
func (s State) More(totalPages int) (State, error) {
	if !s.HasMore(totalPages) {
		return s, ErrNoMorePages
	}
	s.Page++
	return s, nil
}
