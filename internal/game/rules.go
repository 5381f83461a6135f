package game

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/arcanaland/buraco/internal/deck"
)

const (
	DefaultHandSize     = 11
	DefaultDeadHandSize = 11
	DeadHands           = 2
)

// DefaultPlayerNames seats players in this order when no names are given.
var DefaultPlayerNames = []string{"Jack", "Bob", "James", "Barbara"}

// Rules configures a single game.
type Rules struct {
	Players      []string
	HandSize     int
	DeadHandSize int
	// AllowMeldAfterTrashBuy lets a player meld cards bought from the trash in
	// the same turn they were bought.
	AllowMeldAfterTrashBuy bool
	// Seed drives the shuffle. Zero seeds from the clock.
	Seed uint64
}

// DefaultRules returns a two-player game with the usual deal sizes.
func DefaultRules() Rules {
	return Rules{
		Players:                slices.Clone(DefaultPlayerNames[:2]),
		HandSize:               DefaultHandSize,
		DeadHandSize:           DefaultDeadHandSize,
		AllowMeldAfterTrashBuy: true,
	}
}

// PlayersFor returns the default names for n players.
func PlayersFor(n int) []string {
	if n < 0 || n > len(DefaultPlayerNames) {
		return nil
	}
	return slices.Clone(DefaultPlayerNames[:n])
}

// Validate checks that the rules describe a playable game.
func (r Rules) Validate() error {
	n := len(r.Players)
	if n != 2 && n != 4 {
		return fmt.Errorf("%w: %d players, expected 2 or 4", ErrInvalidRules, n)
	}
	seen := make(map[string]bool, n)
	for _, name := range r.Players {
		if name == "" {
			return fmt.Errorf("%w: player names must not be empty", ErrInvalidRules)
		}
		if seen[name] {
			return fmt.Errorf("%w: duplicate player name %q", ErrInvalidRules, name)
		}
		seen[name] = true
	}
	if r.HandSize < 1 || r.DeadHandSize < 1 {
		return fmt.Errorf("%w: hand and dead hand sizes must be positive", ErrInvalidRules)
	}
	if need := n*r.HandSize + DeadHands*r.DeadHandSize; need >= 2*deck.Size {
		return fmt.Errorf("%w: dealing needs %d cards, only %d available", ErrInvalidRules, need, 2*deck.Size)
	}
	return nil
}

// Option customizes a Game.
type Option func(*Game)

// WithLogger sets the logger used for state transitions.
func WithLogger(log *zap.Logger) Option {
	return func(g *Game) {
		if log != nil {
			g.log = log
		}
	}
}

// WithRand overrides the random source built from Rules.Seed.
func WithRand(r *rand.Rand) Option {
	return func(g *Game) { g.rng = r }
}

// WithKnockHook is called once when a player goes out and the game ends.
func WithKnockHook(fn func(Snapshot)) Option {
	return func(g *Game) { g.onKnock = fn }
}

func seedFor(r Rules) uint64 {
	if r.Seed != 0 {
		return r.Seed
	}
	return uint64(time.Now().UnixNano())
}
