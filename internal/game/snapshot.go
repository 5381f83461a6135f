package game

import "github.com/arcanaland/buraco/internal/card"

// Snapshot is a read-only copy of what the active player may see.
type Snapshot struct {
	Active     string
	ActiveSeat int
	Phase      Phase
	Hand       []card.Card
	Trash      []card.Card
	Sides      []SideSnapshot
	Seats      []SeatSnapshot
	BuyingSize int
	DeadHands  []int
	EndReason  EndReason
	// KnockedBy names the player who went out, when EndReason is EndKnock.
	KnockedBy string
}

// SideSnapshot is one partnership's table.
type SideSnapshot struct {
	Name            string
	Sequences       [][]card.Card
	ClaimedDeadHand bool
}

// SeatSnapshot is the public view of a player.
type SeatSnapshot struct {
	Name     string
	Side     int
	HandSize int
}

func (s Snapshot) Over() bool { return s.Phase == PhaseOver }

// Snapshot copies the current state. Mutating the result does not affect the game.
func (g *Game) Snapshot() Snapshot {
	p := g.active()
	snap := Snapshot{
		Active:     p.Name,
		ActiveSeat: p.Seat,
		Phase:      g.phase,
		Hand:       p.hand.Cards(),
		Trash:      g.trash.Cards(),
		BuyingSize: g.buying.Size(),
		EndReason:  g.ended,
		KnockedBy:  g.winner,
	}

	for i, side := range g.sides {
		ss := SideSnapshot{Name: side.Name(), ClaimedDeadHand: g.claimed[i]}
		for _, seq := range side.Sequences() {
			ss.Sequences = append(ss.Sequences, seq.Cards())
		}
		snap.Sides = append(snap.Sides, ss)
	}
	for _, pl := range g.players {
		snap.Seats = append(snap.Seats, SeatSnapshot{Name: pl.Name, Side: pl.Side, HandSize: pl.hand.Size()})
	}
	for _, d := range g.deadHands {
		snap.DeadHands = append(snap.DeadHands, d.Size())
	}
	return snap
}
