package validator

import (
	"fmt"

	"github.com/arcanaland/quill/internal/card"
	"github.com/arcanaland/quill/internal/deck"
)

// Format is a named set of deck legality rules. Validate returns nil for a
// legal deck, or the first rule the deck breaks as one of the
// *InsufficientCardsError, *TooManyInksError or *TooManyCopiesError types.
type Format interface {
	Name() string
	Validate(d *deck.Deck) error
}

const (
	testingMinCards = 10

	standardMinCards  = 60
	standardMaxInks   = 2
	standardMaxCopies = 4
)

// Testing is a small format for trying out decks: ten cards, nothing else.
type Testing struct{}

func (Testing) Name() string { return "testing" }

func (Testing) Validate(d *deck.Deck) error {
	return checkMinCards(d, testingMinCards)
}

// Standard is the tournament format.
type Standard struct{}

func (Standard) Name() string { return "standard" }

// Validate checks, in order, the deck size, the ink count and the copy limit.
func (Standard) Validate(d *deck.Deck) error {
	if err := checkMinCards(d, standardMinCards); err != nil {
		return err
	}

	if inks := d.Inks(); len(inks) > standardMaxInks {
		return &TooManyInksError{Max: standardMaxInks, Actual: inks}
	}

	for _, e := range d.Breakdown() {
		if e.Count > standardMaxCopies {
			return &TooManyCopiesError{Card: e.Card, Count: e.Count}
		}
	}

	return nil
}

func checkMinCards(d *deck.Deck, required int) error {
	if n := d.CardCount(); n < required {
		return &InsufficientCardsError{Required: required, Actual: n}
	}
	return nil
}

// InsufficientCardsError reports a deck below a format's minimum size.
type InsufficientCardsError struct {
	Required int
	Actual   int
}

func (e *InsufficientCardsError) Error() string {
	return fmt.Sprintf("deck needs at least %d cards, but has %d", e.Required, e.Actual)
}

func (e *InsufficientCardsError) Unwrap() error { return ErrInvalidDeck }

// TooManyInksError reports a deck spanning more inks than allowed.
type TooManyInksError struct {
	Max    int
	Actual []card.InkType
}

func (e *TooManyInksError) Error() string {
	return fmt.Sprintf("deck needs at most %d inks, but has %v", e.Max, e.Actual)
}

func (e *TooManyInksError) Unwrap() error { return ErrInvalidDeck }

// TooManyCopiesError reports a card identity over the copy limit.
type TooManyCopiesError struct {
	Card  card.Card
	Count int
}

func (e *TooManyCopiesError) Error() string {
	return fmt.Sprintf("too many copies of %s: %d", e.Card, e.Count)
}

func (e *TooManyCopiesError) Unwrap() error { return ErrInvalidDeck }
