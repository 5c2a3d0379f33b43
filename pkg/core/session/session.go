package session

import (
	"errors"
	"fmt"

	"github.com/jakechorley/party-planner/pkg/core/model"
)

var (
	// ErrNoOptions is returned when a session is started without any generated options
	ErrNoOptions = errors.New("no options to choose from")

	// ErrOutOfRange is returned for option, seat or team indexes outside the arrangement
	ErrOutOfRange = errors.New("index out of range")

	// ErrCommitIncomplete means the previous arrangement was deleted but the new one was
	// not inserted, so the item may have no stored arrangement at all
	ErrCommitIncomplete = errors.New("commit incomplete: previous arrangement deleted but new arrangement not stored")
)

// Arrangement is a seating or team partition that can be deep-copied
type Arrangement[T any] interface {
	Clone() T
	ClearAdjusted()
}

// Session holds the ranked options of one optimization run and the arrangement being
// edited. It is owned by a single caller and is not safe for concurrent use.
type Session[T Arrangement[T]] struct {
	options  []model.ScoredOption[T]
	current  int
	working  T
	original T
}

func newSession[T Arrangement[T]](options []model.ScoredOption[T]) (*Session[T], error) {
	if len(options) == 0 {
		return nil, ErrNoOptions
	}
	return &Session[T]{
		options:  options,
		working:  options[0].Arrangement.Clone(),
		original: options[0].Arrangement.Clone(),
	}, nil
}

// Options returns the ranked options, best first
func (s *Session[T]) Options() []model.ScoredOption[T] {
	return s.options
}

// CurrentIndex returns the index of the option the working arrangement came from
func (s *Session[T]) CurrentIndex() int {
	return s.current
}

// Working returns the arrangement being edited
func (s *Session[T]) Working() T {
	return s.working
}

// Original returns the arrangement reset restores
func (s *Session[T]) Original() T {
	return s.original
}

// Score returns the generated score of the current option. Manual edits are not re-scored.
func (s *Session[T]) Score() float64 {
	return s.options[s.current].Score
}

// SelectOption replaces the working arrangement with a fresh copy of option i
func (s *Session[T]) SelectOption(i int) error {
	if i < 0 || i >= len(s.options) {
		return fmt.Errorf("%w: option %d of %d", ErrOutOfRange, i, len(s.options))
	}
	s.current = i
	s.working = s.options[i].Arrangement.Clone()
	return nil
}

// Next moves to the following option. Returns false when already on the last one.
func (s *Session[T]) Next() bool {
	if s.current >= len(s.options)-1 {
		return false
	}
	_ = s.SelectOption(s.current + 1)
	return true
}

// Prev moves to the preceding option. Returns false when already on the first one.
func (s *Session[T]) Prev() bool {
	if s.current == 0 {
		return false
	}
	_ = s.SelectOption(s.current - 1)
	return true
}

// Reset restores the best generated option and discards every manual edit
func (s *Session[T]) Reset() {
	s.working = s.original.Clone()
	s.working.ClearAdjusted()
	s.current = 0
}
