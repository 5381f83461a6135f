// Package pile holds the game's specialized stacks. Each type wraps a
// stack.Stack and only exposes the moves its role allows.
package pile

import (
	"github.com/arcanaland/buraco/internal/card"
	"github.com/arcanaland/buraco/internal/stack"
)

// Hand is a player's private cards. Order carries no meaning for the rules.
type Hand struct {
	s *stack.Stack
}

func NewHand(owner string) *Hand {
	return &Hand{s: stack.New("hand of "+owner, nil, false, false)}
}

func (h *Hand) Add(c card.Card)           { h.s.AddOnTop(c) }
func (h *Hand) AddMany(cards []card.Card) { h.s.AddManyOnTop(cards) }
func (h *Hand) Size() int                 { return h.s.Size() }
func (h *Hand) IsEmpty() bool             { return h.s.IsEmpty() }
func (h *Hand) Cards() []card.Card        { return h.s.Cards() }
func (h *Hand) Count(c card.Card) int     { return h.s.Count(c) }

// Take removes one card matching c.
func (h *Hand) Take(c card.Card) (card.Card, error) {
	return h.s.TakeByIdentity(c)
}

// BuyingStack is the shared face-down draw pile.
type BuyingStack struct {
	s *stack.Stack
}

func NewBuyingStack(cards []card.Card) *BuyingStack {
	return &BuyingStack{s: stack.New("buying stack", cards, false, false)}
}

// Buy draws the top card. stack.ErrEmptyPile signals exhaustion.
func (b *BuyingStack) Buy() (card.Card, error) {
	return b.s.TakeTop()
}

// Absorb moves every card of dead into the buying stack.
func (b *BuyingStack) Absorb(dead *DeadHand) error {
	cards, err := dead.Release()
	if err != nil {
		return err
	}
	b.s.AddManyOnTop(cards)
	return nil
}

func (b *BuyingStack) Size() int     { return b.s.Size() }
func (b *BuyingStack) IsEmpty() bool { return b.s.IsEmpty() }

// TrashStack is the face-up, spread-out discard pile.
type TrashStack struct {
	s *stack.Stack
}

func NewTrashStack() *TrashStack {
	return &TrashStack{s: stack.New("trash", nil, true, true)}
}

func (t *TrashStack) Discard(c card.Card) { t.s.AddOnTop(c) }

// Buy takes the whole pile, oldest discard first.
func (t *TrashStack) Buy() ([]card.Card, error) {
	if t.s.IsEmpty() {
		return nil, &stack.Error{Op: "buy", Pile: t.s.Name(), Err: stack.ErrEmptyPile}
	}
	return t.s.TakeAll(), nil
}

// Top returns the most recent discard.
func (t *TrashStack) Top() (card.Card, error) { return t.s.PeekTop() }

func (t *TrashStack) Cards() []card.Card { return t.s.Cards() }
func (t *TrashStack) Size() int          { return t.s.Size() }
func (t *TrashStack) IsEmpty() bool      { return t.s.IsEmpty() }

// DeadHand (morto) is a reserve set aside at deal time and released as a unit.
type DeadHand struct {
	s *stack.Stack
}

func NewDeadHand(name string, cards []card.Card) *DeadHand {
	return &DeadHand{s: stack.New(name, cards, false, false)}
}

// Release hands over every card at once. A released dead hand stays empty.
func (d *DeadHand) Release() ([]card.Card, error) {
	if d.s.IsEmpty() {
		return nil, &stack.Error{Op: "release", Pile: d.s.Name(), Err: stack.ErrEmptyPile}
	}
	return d.s.TakeAll(), nil
}

func (d *DeadHand) Name() string  { return d.s.Name() }
func (d *DeadHand) Size() int     { return d.s.Size() }
func (d *DeadHand) IsEmpty() bool { return d.s.IsEmpty() }
