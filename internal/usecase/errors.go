package usecase

import "errors"

var (
	ErrNoMorePages = errors.New("no more pages: current page is the last one")
)
