// Package stack implements the ordered card container every pile in the game
// is built on. Cards are kept bottom to top: index 0 is the bottom card and the
// last element is the top.
package stack

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/arcanaland/buraco/internal/card"
)

var (
	// ErrSpreadOut is returned by position-sensitive operations on a spread-out stack.
	ErrSpreadOut = errors.New("operation needs a top card but the stack is spread out")
	// ErrEmptyPile is returned when reading or taking from an empty stack.
	ErrEmptyPile = errors.New("stack is empty")
	// ErrInsufficientCards is returned when more cards are requested than the stack holds.
	ErrInsufficientCards = errors.New("insufficient cards")
	// ErrInvalidQuantity is returned for a card count below one.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
	// ErrCardNotFound is returned when an identity lookup finds nothing.
	ErrCardNotFound = errors.New("card not found")
)

// Error describes a failed stack operation.
type Error struct {
	Op   string
	Pile string
	Card *card.Card
	Want int
	Have int
	Err  error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s %s", e.Pile, e.Op)
	if e.Card != nil {
		msg += " " + e.Card.String()
	}
	if errors.Is(e.Err, ErrInsufficientCards) || errors.Is(e.Err, ErrInvalidQuantity) {
		return fmt.Sprintf("%s: %v (requested %d, have %d)", msg, e.Err, e.Want, e.Have)
	}
	return fmt.Sprintf("%s: %v", msg, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Stack is an ordered collection of cards with two orientation flags.
type Stack struct {
	name      string
	cards     []card.Card
	faceUp    bool
	spreadOut bool
}

// New returns a stack owning cards. The slice is copied.
func New(name string, cards []card.Card, faceUp, spreadOut bool) *Stack {
	return &Stack{
		name:      name,
		cards:     slices.Clone(cards),
		faceUp:    faceUp,
		spreadOut: spreadOut,
	}
}

func (s *Stack) Name() string      { return s.name }
func (s *Stack) IsFaceUp() bool    { return s.faceUp }
func (s *Stack) IsSpreadOut() bool { return s.spreadOut }
func (s *Stack) IsEmpty() bool     { return len(s.cards) == 0 }
func (s *Stack) Size() int         { return len(s.cards) }

// Cards returns a copy of the cards, bottom first.
func (s *Stack) Cards() []card.Card {
	return slices.Clone(s.cards)
}

func (s *Stack) fail(op string, err error) error {
	return &Error{Op: op, Pile: s.name, Err: err}
}

func (s *Stack) AddOnTop(c card.Card) {
	s.cards = append(s.cards, c)
}

// AddManyOnTop appends cards in order: cards[0] lands directly above the old top.
func (s *Stack) AddManyOnTop(cards []card.Card) {
	s.cards = append(s.cards, cards...)
}

func (s *Stack) AddOnBottom(c card.Card) {
	s.cards = slices.Insert(s.cards, 0, c)
}

// AddManyOnBottom inserts cards as the new bottom segment, keeping their order:
// cards[0] becomes the new bottom card.
func (s *Stack) AddManyOnBottom(cards []card.Card) {
	for i := len(cards) - 1; i >= 0; i-- {
		s.AddOnBottom(cards[i])
	}
}

// MergeOnTop drains other and places its cards above the current top.
func (s *Stack) MergeOnTop(other *Stack) {
	if other == s {
		return
	}
	s.AddManyOnTop(other.TakeAll())
}

// MergeOnBottom drains other and places its cards below the current bottom.
func (s *Stack) MergeOnBottom(other *Stack) {
	if other == s {
		return
	}
	s.AddManyOnBottom(other.TakeAll())
}

// TakeByIdentity removes and returns the first card equal to c, searching from the bottom.
// It is legal on spread-out stacks.
func (s *Stack) TakeByIdentity(c card.Card) (card.Card, error) {
	i := slices.Index(s.cards, c)
	if i < 0 {
		return card.Card{}, &Error{Op: "take", Pile: s.name, Card: &c, Err: ErrCardNotFound}
	}
	s.cards = slices.Delete(s.cards, i, i+1)
	return c, nil
}

// Contains reports whether at least one card equal to c is in the stack.
func (s *Stack) Contains(c card.Card) bool {
	return slices.Contains(s.cards, c)
}

// Count returns how many cards equal to c are in the stack.
func (s *Stack) Count(c card.Card) int {
	n := 0
	for _, have := range s.cards {
		if have == c {
			n++
		}
	}
	return n
}

func (s *Stack) TakeTop() (card.Card, error) {
	if s.spreadOut {
		return card.Card{}, s.fail("take top", ErrSpreadOut)
	}
	if len(s.cards) == 0 {
		return card.Card{}, s.fail("take top", ErrEmptyPile)
	}
	last := len(s.cards) - 1
	c := s.cards[last]
	s.cards = s.cards[:last]
	return c, nil
}

// TakeTopN removes the n top cards and returns them bottom first. It never
// returns fewer than n cards.
func (s *Stack) TakeTopN(n int) ([]card.Card, error) {
	if s.spreadOut {
		return nil, s.fail("take top", ErrSpreadOut)
	}
	if n < 1 {
		return nil, &Error{Op: "take top", Pile: s.name, Want: n, Have: len(s.cards), Err: ErrInvalidQuantity}
	}
	if n > len(s.cards) {
		return nil, &Error{Op: "take top", Pile: s.name, Want: n, Have: len(s.cards), Err: ErrInsufficientCards}
	}
	cut := len(s.cards) - n
	taken := slices.Clone(s.cards[cut:])
	s.cards = s.cards[:cut]
	return taken, nil
}

// TakeAll drains the stack and returns its cards in their original order.
func (s *Stack) TakeAll() []card.Card {
	cards := s.cards
	s.cards = nil
	if cards == nil {
		return []card.Card{}
	}
	return cards
}

func (s *Stack) PeekTop() (card.Card, error) {
	if len(s.cards) == 0 {
		return card.Card{}, s.fail("peek top", ErrEmptyPile)
	}
	return s.cards[len(s.cards)-1], nil
}

func (s *Stack) PeekBottom() (card.Card, error) {
	if len(s.cards) == 0 {
		return card.Card{}, s.fail("peek bottom", ErrEmptyPile)
	}
	return s.cards[0], nil
}

// Shuffle randomizes the order in place using r.
func (s *Stack) Shuffle(r *rand.Rand) {
	r.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
}

func (s *Stack) String() string {
	return fmt.Sprintf("%s[%s]", s.name, card.Format(s.cards))
}
