// Package game runs a Buraco match: the deal, the draw/act/discard turn cycle,
// dead-hand promotion and the two end conditions. It reads no input itself;
// callers feed it decisions and render the snapshots it returns.
package game

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"go.uber.org/zap"

	"github.com/arcanaland/buraco/internal/card"
	"github.com/arcanaland/buraco/internal/deck"
	"github.com/arcanaland/buraco/internal/meld"
	"github.com/arcanaland/buraco/internal/pile"
)

// Phase is the step of the active player's turn.
type Phase int

const (
	PhaseDraw Phase = iota
	PhaseAct
	PhaseDiscard
	PhaseOver
)

func (p Phase) String() string {
	switch p {
	case PhaseDraw:
		return "draw"
	case PhaseAct:
		return "act"
	case PhaseDiscard:
		return "discard"
	case PhaseOver:
		return "over"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// EndReason says how a finished game ended.
type EndReason int

const (
	NotEnded EndReason = iota
	// EndExhausted means a draw found the buying stack and both dead hands empty.
	EndExhausted
	// EndKnock means a player discarded their last card with no dead hand left to claim.
	EndKnock
)

func (r EndReason) String() string {
	switch r {
	case EndExhausted:
		return "exhausted"
	case EndKnock:
		return "knock"
	default:
		return "not ended"
	}
}

// Player is a seat at the table.
type Player struct {
	Name string
	Seat int
	Side int
	hand *pile.Hand
}

// Game holds every pile of one match. It is not safe for concurrent use.
type Game struct {
	rules   Rules
	log     *zap.Logger
	rng     *rand.Rand
	onKnock func(Snapshot)

	players   []*Player
	sides     []*meld.TableSide
	claimed   []bool
	buying    *pile.BuyingStack
	trash     *pile.TrashStack
	deadHands [DeadHands]*pile.DeadHand

	current int
	phase   Phase
	ended   EndReason
	winner  string

	// cards bought from the trash during the current turn
	fromTrash map[card.Card]int
}

// New validates rules and deals a fresh game.
func New(rules Rules, opts ...Option) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		rules:     rules,
		log:       zap.NewNop(),
		fromTrash: map[card.Card]int{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = deck.NewRand(seedFor(rules))
	}

	if err := g.deal(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) deal() error {
	source := deck.NewDouble(g.rng)

	nSides := 2
	for i := 0; i < nSides; i++ {
		var names []string
		for seat := i; seat < len(g.rules.Players); seat += nSides {
			names = append(names, g.rules.Players[seat])
		}
		g.sides = append(g.sides, meld.NewTableSide(strings.Join(names, " & ")))
	}
	g.claimed = make([]bool, nSides)

	for seat, name := range g.rules.Players {
		p := &Player{Name: name, Seat: seat, Side: seat % nSides, hand: pile.NewHand(name)}
		cards, err := source.TakeTopN(g.rules.HandSize)
		if err != nil {
			return fmt.Errorf("dealing to %s: %w", name, err)
		}
		p.hand.AddMany(cards)
		g.players = append(g.players, p)
	}

	for i := range g.deadHands {
		cards, err := source.TakeTopN(g.rules.DeadHandSize)
		if err != nil {
			return fmt.Errorf("carving dead hand %d: %w", i+1, err)
		}
		g.deadHands[i] = pile.NewDeadHand(fmt.Sprintf("dead hand %d", i+1), cards)
	}

	g.buying = pile.NewBuyingStack(source.TakeAll())
	g.trash = pile.NewTrashStack()
	g.phase = PhaseDraw

	g.log.Info("dealt new game",
		zap.Strings("players", g.rules.Players),
		zap.Int("hand_size", g.rules.HandSize),
		zap.Int("buying_stack", g.buying.Size()),
	)
	return nil
}

func (g *Game) active() *Player { return g.players[g.current] }

// Phase returns the current turn step.
func (g *Game) Phase() Phase { return g.phase }

// Over reports whether an end condition has been reached.
func (g *Game) Over() bool { return g.phase == PhaseOver }

// EndReason returns how the game ended, or NotEnded.
func (g *Game) EndReason() EndReason { return g.ended }

// ActivePlayer returns the name of the player whose turn it is.
func (g *Game) ActivePlayer() string { return g.active().Name }

// Players returns the names in seat order.
func (g *Game) Players() []string {
	names := make([]string, len(g.players))
	for i, p := range g.players {
		names[i] = p.Name
	}
	return names
}

// Rules returns the rules the game was created with.
func (g *Game) Rules() Rules { return g.rules }

// nextDeadHand returns the first dead hand still holding cards.
func (g *Game) nextDeadHand() *pile.DeadHand {
	for _, d := range g.deadHands {
		if !d.IsEmpty() {
			return d
		}
	}
	return nil
}

// claimDeadHand gives p's side its dead hand if it has not had one yet.
func (g *Game) claimDeadHand(p *Player) bool {
	if g.claimed[p.Side] {
		return false
	}
	dead := g.nextDeadHand()
	if dead == nil {
		return false
	}
	cards, err := dead.Release()
	if err != nil {
		return false
	}
	p.hand.AddMany(cards)
	g.claimed[p.Side] = true
	g.log.Info("dead hand claimed",
		zap.String("player", p.Name),
		zap.String("dead_hand", dead.Name()),
		zap.Int("size", len(cards)),
	)
	return true
}

// canClaimDeadHand reports whether claimDeadHand would succeed for p.
func (g *Game) canClaimDeadHand(p *Player) bool {
	return !g.claimed[p.Side] && g.nextDeadHand() != nil
}

func (g *Game) end(reason EndReason) {
	g.phase = PhaseOver
	g.ended = reason
	g.log.Info("game over",
		zap.Stringer("reason", reason),
		zap.String("player", g.active().Name),
	)
}
