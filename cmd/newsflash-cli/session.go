package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"newsflash/internal/domain"
	"newsflash/internal/usecase"
	"newsflash/internal/view"
)

// session is the terminal reader: one feed, one state, commands from a reader.
type session struct {
	feed  *usecase.Feed
	state usecase.State
	out   io.Writer
}

func newSession(feed *usecase.Feed, out io.Writer) *session {
	return &session{feed: feed, state: usecase.NewState(), out: out}
}

func (s *session) page() usecase.PageView {
	articles, loading := s.feed.Snapshot()
	return usecase.BuildPage(articles, loading, s.state)
}

func (s *session) render() {
	if err := view.Text(s.out, s.page()); err != nil {
		log.Printf("⚠️  render failed: %v", err)
	}
}

// run reads commands until quit or EOF.
func (s *session) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(s.out, "> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		quit, err := s.exec(scanner.Text())
		if err != nil {
			fmt.Fprintln(s.out, err)
			continue
		}
		if quit {
			return nil
		}
	}
}

// exec applies one command. It reports whether the session should end.
func (s *session) exec(line string) (bool, error) {
	cmd := strings.ToLower(strings.TrimSpace(line))
	switch cmd {
	case "":
		return false, nil
	case "q", "quit", "exit":
		return true, nil
	case "h", "help", "?":
		fmt.Fprintln(s.out, "Commands: all, tech, business, science, ai, more, help, quit")
		return false, nil
	case "m", "more":
		next, err := s.state.More(s.page().TotalPages)
		if err != nil {
			return false, err
		}
		s.state = next
		s.render()
		return false, nil
	}

	category, err := domain.ParseCategory(cmd)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownCategory) {
			return false, fmt.Errorf("unknown command %q, type help", cmd)
		}
		return false, err
	}
	s.state = s.state.SelectCategory(category)
	s.render()
	return false, nil
}
