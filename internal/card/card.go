package card

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Suit is the one-letter suit code used in card identities.
type Suit byte

const (
	Hearts   Suit = 'C' // copas
	Spades   Suit = 'E' // espadas
	Clubs    Suit = 'P' // paus
	Diamonds Suit = 'O' // ouros
)

// Suits lists every suit in deck order.
var Suits = []Suit{Hearts, Spades, Clubs, Diamonds}

const (
	MinRank = 1
	MaxRank = 13
)

// ErrInvalidCard is returned when a rank or suit falls outside the legal alphabet.
var ErrInvalidCard = errors.New("invalid card parameters")

// Card represents a playing card. Cards are plain values: two cards with the
// same rank and suit are equal.
type Card struct {
	Rank int
	Suit Suit
}

// InvalidCardError carries the offending rank and suit.
type InvalidCardError struct {
	Rank int
	Suit Suit
}

func (e *InvalidCardError) Error() string {
	if !e.Suit.Valid() {
		return fmt.Sprintf("%v: suit %q must be one of C, E, P, O", ErrInvalidCard, string(e.Suit))
	}
	return fmt.Sprintf("%v: rank %d must be between %d and %d", ErrInvalidCard, e.Rank, MinRank, MaxRank)
}

func (e *InvalidCardError) Unwrap() error { return ErrInvalidCard }

// New returns a card after checking rank and suit.
func New(rank int, suit Suit) (Card, error) {
	if rank < MinRank || rank > MaxRank || !suit.Valid() {
		return Card{}, &InvalidCardError{Rank: rank, Suit: suit}
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// MustNew is like New but panics on invalid input. Intended for literals in tests and tables.
func MustNew(rank int, suit Suit) Card {
	c, err := New(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

// Valid reports whether s is one of the four suit codes.
func (s Suit) Valid() bool {
	switch s {
	case Hearts, Spades, Clubs, Diamonds:
		return true
	}
	return false
}

// Name returns the English suit name.
func (s Suit) Name() string {
	switch s {
	case Hearts:
		return "hearts"
	case Spades:
		return "spades"
	case Clubs:
		return "clubs"
	case Diamonds:
		return "diamonds"
	default:
		return "unknown"
	}
}

// Symbol returns the unicode pip for the suit.
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	default:
		return "•"
	}
}

// IsRed reports whether the suit is printed in red.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

func (s Suit) String() string { return string(s) }

// Valid reports whether c has a legal rank and suit.
func (c Card) Valid() bool {
	return c.Rank >= MinRank && c.Rank <= MaxRank && c.Suit.Valid()
}

// String returns the card identity in "<rank>-<suit>" form, the same form Parse accepts.
func (c Card) String() string {
	return strconv.Itoa(c.Rank) + "-" + string(c.Suit)
}

// Face returns the rank as printed on the card (A, 2..10, J, Q, K).
func (c Card) Face() string {
	switch c.Rank {
	case 1:
		return "A"
	case 11:
		return "J"
	case 12:
		return "Q"
	case 13:
		return "K"
	default:
		return strconv.Itoa(c.Rank)
	}
}

// Label returns a short human label such as "Q♥".
func (c Card) Label() string {
	return c.Face() + c.Suit.Symbol()
}

// ParseError reports a card identity that is not of the form "<rank>-<suit>".
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("cannot parse card %q: %v", e.Input, e.Err)
	}
	return fmt.Sprintf("cannot parse card %q: expected <rank>-<suit> such as 7-P", e.Input)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Parse reads a card identity such as "7-P" or "13-c". The rank is a base-10
// integer and the suit one of C, E, P, O (case-insensitive).
func Parse(s string) (Card, error) {
	trimmed := strings.TrimSpace(s)
	rankPart, suitPart, ok := strings.Cut(trimmed, "-")
	if !ok || rankPart == "" || len(suitPart) != 1 {
		return Card{}, &ParseError{Input: s}
	}

	rank, err := strconv.Atoi(rankPart)
	if err != nil {
		return Card{}, &ParseError{Input: s, Err: err}
	}

	c, err := New(rank, Suit(strings.ToUpper(suitPart)[0]))
	if err != nil {
		return Card{}, &ParseError{Input: s, Err: err}
	}
	return c, nil
}

// ParseList parses every identity in ids, stopping at the first failure.
func ParseList(ids []string) ([]Card, error) {
	cards := make([]Card, 0, len(ids))
	for _, id := range ids {
		c, err := Parse(id)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Format joins card identities with spaces.
func Format(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
