package deck

import (
	"math/rand/v2"

	"github.com/arcanaland/buraco/internal/card"
	"github.com/arcanaland/buraco/internal/stack"
)

// Size is the number of cards in one deck.
const Size = 52

// Deck represents a shuffled 52-card deck, face down and stacked.
type Deck struct {
	*stack.Stack
}

// New builds every (rank, suit) combination and shuffles it with r.
func New(r *rand.Rand) *Deck {
	d := &Deck{Stack: stack.New("deck", fresh(), false, false)}
	d.Shuffle(r)
	return d
}

// NewDouble combines two decks into one shuffled 104-card source.
func NewDouble(r *rand.Rand) *stack.Stack {
	source := stack.New("source", nil, false, false)
	source.MergeOnTop(New(r).Stack)
	source.MergeOnTop(New(r).Stack)
	source.Shuffle(r)
	return source
}

// NewRand returns a PCG source for seed. Equal seeds give equal shuffles.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// fresh returns the 52 cards in suit then rank order.
func fresh() []card.Card {
	cards := make([]card.Card, 0, Size)
	for _, suit := range card.Suits {
		for rank := card.MinRank; rank <= card.MaxRank; rank++ {
			cards = append(cards, card.Card{Rank: rank, Suit: suit})
		}
	}
	return cards
}
