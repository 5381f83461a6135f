package game

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/arcanaland/buraco/internal/card"
	"github.com/arcanaland/buraco/internal/meld"
	"github.com/arcanaland/buraco/internal/stack"
)

// DrawSource is the pile a turn starts from.
type DrawSource int

const (
	BuyingPile DrawSource = iota
	DiscardPile
)

func (s DrawSource) String() string {
	switch s {
	case BuyingPile:
		return "buying pile"
	case DiscardPile:
		return "discard pile"
	default:
		return fmt.Sprintf("source(%d)", int(s))
	}
}

// DrawResult reports what a draw did.
type DrawResult struct {
	Cards []card.Card
	// Promoted is set when a dead hand had to refill the buying stack first.
	Promoted bool
	// Ended is set when the draw found every reserve empty and finished the game.
	Ended bool
}

// Action is the optional middle step of a turn.
type Action interface {
	action() string
}

// StartSequence lays down a new run, bottom card first.
type StartSequence struct {
	Cards []card.Card
}

// ExtendSequences adds cards to runs already on the player's table side.
// Extensions are applied in order, all or none.
type ExtendSequences struct {
	Extensions []Extension
}

// Extension adds Card to the sequence at index Sequence.
type Extension struct {
	Sequence int
	Card     card.Card
}

func (StartSequence) action() string   { return "start a sequence" }
func (ExtendSequences) action() string { return "extend sequences" }

func (g *Game) expect(action string, phases ...Phase) error {
	if slices.Contains(phases, g.phase) {
		return nil
	}
	switch g.phase {
	case PhaseOver:
		return g.illegal(action, "the game is over", nil)
	case PhaseDraw:
		return g.illegal(action, "must draw first", nil)
	case PhaseAct:
		return g.illegal(action, "already drew this turn", nil)
	default:
		return g.illegal(action, "already played this turn", nil)
	}
}

// Draw starts the active player's turn. Buying from the discard pile takes the
// whole pile. An empty buying stack is refilled from a dead hand; when none is
// left the game ends and the result has Ended set.
func (g *Game) Draw(src DrawSource) (DrawResult, error) {
	if err := g.expect("draw", PhaseDraw); err != nil {
		return DrawResult{}, err
	}

	switch src {
	case BuyingPile:
		return g.drawFromBuying()
	case DiscardPile:
		return g.drawFromTrash()
	default:
		return DrawResult{}, g.illegal("draw", fmt.Sprintf("unknown source %v", src), nil)
	}
}

func (g *Game) drawFromBuying() (DrawResult, error) {
	p := g.active()
	var res DrawResult
	for {
		c, err := g.buying.Buy()
		if err == nil {
			p.hand.Add(c)
			g.phase = PhaseAct
			res.Cards = []card.Card{c}
			g.log.Debug("drew card",
				zap.String("player", p.Name),
				zap.Stringer("source", BuyingPile),
				zap.Stringer("card", c),
			)
			return res, nil
		}
		if !errors.Is(err, stack.ErrEmptyPile) {
			return DrawResult{}, err
		}

		dead := g.nextDeadHand()
		if dead == nil {
			g.end(EndExhausted)
			res.Ended = true
			return res, nil
		}
		if err := g.buying.Absorb(dead); err != nil {
			return DrawResult{}, fmt.Errorf("promoting %s: %w", dead.Name(), err)
		}
		res.Promoted = true
		g.log.Info("dead hand promoted to buying stack",
			zap.String("dead_hand", dead.Name()),
			zap.Int("size", g.buying.Size()),
		)
	}
}

func (g *Game) drawFromTrash() (DrawResult, error) {
	if g.trash.IsEmpty() {
		return DrawResult{}, g.illegal("draw", "the discard pile is empty", stack.ErrEmptyPile)
	}
	cards, err := g.trash.Buy()
	if err != nil {
		return DrawResult{}, g.illegal("draw", "cannot buy the discard pile", err)
	}

	p := g.active()
	p.hand.AddMany(cards)
	for _, c := range cards {
		g.fromTrash[c]++
	}
	g.phase = PhaseAct
	g.log.Debug("bought discard pile",
		zap.String("player", p.Name),
		zap.Int("size", len(cards)),
	)
	return DrawResult{Cards: cards}, nil
}

// Play performs the turn's single optional action. Skipping Play and going
// straight to Discard is the discard-only action.
func (g *Game) Play(a Action) error {
	if a == nil {
		return g.illegal("play", "no action given", nil)
	}
	if err := g.expect(a.action(), PhaseAct); err != nil {
		return err
	}

	var err error
	switch act := a.(type) {
	case StartSequence:
		err = g.startSequence(act)
	case *StartSequence:
		err = g.startSequence(*act)
	case ExtendSequences:
		err = g.extendSequences(act)
	case *ExtendSequences:
		err = g.extendSequences(*act)
	default:
		return g.illegal("play", fmt.Sprintf("unsupported action %T", a), nil)
	}
	if err != nil {
		return err
	}

	g.phase = PhaseDiscard
	p := g.active()
	if p.hand.IsEmpty() {
		g.claimDeadHand(p)
	}
	return nil
}

// checkHand verifies the active player holds every card in cards and may meld them now.
func (g *Game) checkHand(action string, cards []card.Card) error {
	p := g.active()
	need := map[card.Card]int{}
	for _, c := range cards {
		need[c]++
	}
	for c, n := range need {
		have := p.hand.Count(c)
		if have < n {
			return g.illegal(action, fmt.Sprintf("%s is not in hand", c), stack.ErrCardNotFound)
		}
		if !g.rules.AllowMeldAfterTrashBuy && have-g.fromTrash[c] < n {
			return g.illegal(action, fmt.Sprintf("%s was bought from the discard pile this turn", c), nil)
		}
	}
	if len(cards) >= p.hand.Size() && !g.canClaimDeadHand(p) {
		return g.illegal(action, "must keep a card to discard", nil)
	}
	return nil
}

func (g *Game) takeFromHand(cards []card.Card) error {
	p := g.active()
	for _, c := range cards {
		if _, err := p.hand.Take(c); err != nil {
			return fmt.Errorf("taking %s from %s: %w", c, p.Name, err)
		}
	}
	return nil
}

func (g *Game) startSequence(act StartSequence) error {
	const action = "start a sequence"
	if err := g.checkHand(action, act.Cards); err != nil {
		return err
	}
	seq, err := meld.New(act.Cards)
	if err != nil {
		return err
	}
	if err := g.takeFromHand(act.Cards); err != nil {
		return err
	}

	p := g.active()
	side := g.sides[p.Side]
	idx, err := side.AddSequence(seq)
	if err != nil {
		return err
	}
	g.log.Debug("sequence started",
		zap.String("player", p.Name),
		zap.Int("sequence", idx),
		zap.Stringer("cards", seq),
	)
	return nil
}

func (g *Game) extendSequences(act ExtendSequences) error {
	const action = "extend sequences"
	if len(act.Extensions) == 0 {
		return g.illegal(action, "no cards given", nil)
	}

	p := g.active()
	side := g.sides[p.Side]

	cards := make([]card.Card, len(act.Extensions))
	for i, ext := range act.Extensions {
		cards[i] = ext.Card
	}
	if err := g.checkHand(action, cards); err != nil {
		return err
	}

	// Dry run on spans so a bad card leaves every sequence untouched.
	spans := map[int]meld.Span{}
	for _, ext := range act.Extensions {
		sp, ok := spans[ext.Sequence]
		if !ok {
			seq, err := side.Sequence(ext.Sequence)
			if err != nil {
				return g.illegal(action, "no such sequence", err)
			}
			sp = seq.Span()
		}
		next, _, err := sp.Extend(ext.Card)
		if err != nil {
			var me *meld.Error
			if errors.As(err, &me) {
				me.Sequence = ext.Sequence
			}
			return err
		}
		spans[ext.Sequence] = next
	}

	if err := g.takeFromHand(cards); err != nil {
		return err
	}
	for _, ext := range act.Extensions {
		seq, _ := side.Sequence(ext.Sequence)
		end, err := seq.Append(ext.Card)
		if err != nil {
			return fmt.Errorf("extending sequence %d after dry run: %w", ext.Sequence, err)
		}
		g.log.Debug("sequence extended",
			zap.String("player", p.Name),
			zap.Int("sequence", ext.Sequence),
			zap.Stringer("card", ext.Card),
			zap.Stringer("end", end),
		)
	}
	return nil
}

// Discard ends the turn by moving one card from hand to the discard pile.
// Emptying the hand claims the side's dead hand if one is left, otherwise the
// player knocks and the game ends.
func (g *Game) Discard(c card.Card) error {
	const action = "discard"
	if err := g.expect(action, PhaseAct, PhaseDiscard); err != nil {
		return err
	}

	p := g.active()
	taken, err := p.hand.Take(c)
	if err != nil {
		return g.illegal(action, fmt.Sprintf("%s is not in hand", c), err)
	}
	g.trash.Discard(taken)
	g.log.Debug("discarded",
		zap.String("player", p.Name),
		zap.Stringer("card", taken),
	)

	if p.hand.IsEmpty() && !g.claimDeadHand(p) {
		g.winner = p.Name
		g.end(EndKnock)
		if g.onKnock != nil {
			g.onKnock(g.Snapshot())
		}
		return nil
	}

	g.current = (g.current + 1) % len(g.players)
	g.phase = PhaseDraw
	clear(g.fromTrash)
	return nil
}
