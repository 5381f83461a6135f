package meld

import (
	"errors"
	"fmt"

	"github.com/arcanaland/buraco/internal/card"
	"github.com/arcanaland/buraco/internal/stack"
)

// MinLength is the smallest run that may be laid down.
const MinLength = 3

// ErrMeldViolation is returned when cards do not form, or do not extend, a legal run.
var ErrMeldViolation = errors.New("meld violation")

// Error describes why a card or a proposed run was refused.
type Error struct {
	Sequence int // index on the table side, -1 for a proposed sequence
	Card     *card.Card
	Reason   string
}

func (e *Error) Error() string {
	where := "new sequence"
	if e.Sequence >= 0 {
		where = fmt.Sprintf("sequence %d", e.Sequence)
	}
	if e.Card != nil {
		return fmt.Sprintf("%v: %s: %s %s", ErrMeldViolation, where, e.Card, e.Reason)
	}
	return fmt.Sprintf("%v: %s: %s", ErrMeldViolation, where, e.Reason)
}

func (e *Error) Unwrap() error { return ErrMeldViolation }

func violation(c *card.Card, format string, args ...any) *Error {
	return &Error{Sequence: -1, Card: c, Reason: fmt.Sprintf(format, args...)}
}

// End says which side of a run a card attaches to.
type End int

const (
	Bottom End = iota
	Top
)

func (e End) String() string {
	if e == Bottom {
		return "bottom"
	}
	return "top"
}

// Span summarizes a run by its suit and the ranks at both ends.
type Span struct {
	Suit   card.Suit
	Bottom int
	Top    int
}

// Extend reports where c would attach and the span that results.
func (sp Span) Extend(c card.Card) (Span, End, error) {
	if c.Suit != sp.Suit {
		return sp, 0, violation(&c, "does not match suit %s", sp.Suit.Name())
	}
	switch c.Rank {
	case sp.Bottom - 1:
		sp.Bottom = c.Rank
		return sp, Bottom, nil
	case sp.Top + 1:
		sp.Top = c.Rank
		return sp, Top, nil
	}
	return sp, 0, violation(&c, "is not adjacent to %d..%d", sp.Bottom, sp.Top)
}

// Len returns the number of cards the span covers.
func (sp Span) Len() int { return sp.Top - sp.Bottom + 1 }

// Sequence is a run of at least three same-suit cards in strictly ascending,
// consecutive rank order from bottom to top.
type Sequence struct {
	cards *stack.Stack
	span  Span
}

// New validates cards as a run and takes ownership of them. Cards must be given
// bottom first. Runs whose two leading cards differ in suit are refused as
// ambiguous.
func New(cards []card.Card) (*Sequence, error) {
	if len(cards) < MinLength {
		return nil, violation(nil, "needs at least %d cards, got %d", MinLength, len(cards))
	}
	if cards[0].Suit != cards[1].Suit {
		return nil, violation(nil, "ambiguous suit: leading cards %s and %s differ", cards[0], cards[1])
	}

	span := Span{Suit: cards[0].Suit, Bottom: cards[0].Rank, Top: cards[0].Rank}
	for i := 1; i < len(cards); i++ {
		c := cards[i]
		if c.Suit != span.Suit {
			return nil, violation(&c, "does not match suit %s", span.Suit.Name())
		}
		if c.Rank != span.Top+1 {
			return nil, violation(&c, "breaks the run after %d", span.Top)
		}
		span.Top = c.Rank
	}

	return &Sequence{
		cards: stack.New("sequence", cards, true, false),
		span:  span,
	}, nil
}

// Append adds c at whichever end it continues.
func (s *Sequence) Append(c card.Card) (End, error) {
	span, end, err := s.span.Extend(c)
	if err != nil {
		return 0, err
	}
	if end == Bottom {
		s.cards.AddOnBottom(c)
	} else {
		s.cards.AddOnTop(c)
	}
	s.span = span
	return end, nil
}

func (s *Sequence) Span() Span         { return s.span }
func (s *Sequence) Suit() card.Suit    { return s.span.Suit }
func (s *Sequence) Len() int           { return s.cards.Size() }
func (s *Sequence) IsFaceUp() bool     { return s.cards.IsFaceUp() }
func (s *Sequence) Cards() []card.Card { return s.cards.Cards() }

func (s *Sequence) String() string {
	return card.Format(s.cards.Cards())
}
