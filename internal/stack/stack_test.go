package stack

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/arcanaland/buraco/internal/card"
)

func cards(ids ...string) []card.Card {
	out, err := card.ParseList(ids)
	if err != nil {
		panic(err)
	}
	return out
}

func TestAddOnTopAndBottom(t *testing.T) {
	s := New("test", cards("5-C"), false, false)
	s.AddOnTop(card.MustNew(6, card.Hearts))
	s.AddManyOnTop(cards("7-C", "8-C"))
	s.AddOnBottom(card.MustNew(4, card.Hearts))
	s.AddManyOnBottom(cards("2-C", "3-C"))

	want := cards("2-C", "3-C", "4-C", "5-C", "6-C", "7-C", "8-C")
	if diff := cmp.Diff(want, s.Cards()); diff != "" {
		t.Errorf("cards mismatch (-want +got):\n%s", diff)
	}
}

func TestMerge(t *testing.T) {
	s := New("main", cards("5-P", "6-P"), false, false)
	top := New("top", cards("7-P", "8-P"), false, false)
	bottom := New("bottom", cards("3-P", "4-P"), false, false)

	s.MergeOnTop(top)
	s.MergeOnBottom(bottom)

	if !top.IsEmpty() || !bottom.IsEmpty() {
		t.Fatalf("merged stacks must be drained, got top=%d bottom=%d", top.Size(), bottom.Size())
	}
	want := cards("3-P", "4-P", "5-P", "6-P", "7-P", "8-P")
	if diff := cmp.Diff(want, s.Cards()); diff != "" {
		t.Errorf("cards mismatch (-want +got):\n%s", diff)
	}
}

func TestTakeAllRoundTrip(t *testing.T) {
	orig := cards("9-O", "1-E", "13-C", "2-P")
	s := New("round", orig, false, false)

	taken := s.TakeAll()
	if !s.IsEmpty() {
		t.Fatalf("expected empty stack after TakeAll, size %d", s.Size())
	}
	s.AddManyOnTop(taken)

	if diff := cmp.Diff(orig, s.Cards()); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestTakeAllOnSpreadOut(t *testing.T) {
	s := New("trash", cards("1-C", "2-C"), true, true)
	if got := s.TakeAll(); len(got) != 2 {
		t.Fatalf("expected 2 cards, got %d", len(got))
	}
	if got := s.TakeAll(); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestTakeTop(t *testing.T) {
	s := New("pile", cards("1-C", "2-C"), false, false)
	c, err := s.TakeTop()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c != card.MustNew(2, card.Hearts) {
		t.Errorf("expected 2-C, got %v", c)
	}
	if _, err := s.TakeTop(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := s.TakeTop(); !errors.Is(err, ErrEmptyPile) {
		t.Errorf("expected ErrEmptyPile, got %v", err)
	}
}

func TestPositionalOpsRejectedWhenSpreadOut(t *testing.T) {
	s := New("trash", cards("1-C", "2-C", "3-C"), true, true)

	if _, err := s.TakeTop(); !errors.Is(err, ErrSpreadOut) {
		t.Errorf("TakeTop: expected ErrSpreadOut, got %v", err)
	}
	if _, err := s.TakeTopN(1); !errors.Is(err, ErrSpreadOut) {
		t.Errorf("TakeTopN: expected ErrSpreadOut, got %v", err)
	}
	if s.Size() != 3 {
		t.Errorf("failed operations must not mutate, size %d", s.Size())
	}

	c, err := s.TakeByIdentity(card.MustNew(2, card.Hearts))
	if err != nil {
		t.Fatalf("TakeByIdentity on spread-out stack: %v", err)
	}
	if c.Rank != 2 {
		t.Errorf("got %v", c)
	}
}

func TestTakeTopN(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		want    []card.Card
		wantErr error
	}{
		{name: "two of three", n: 2, want: cards("2-O", "3-O")},
		{name: "all three", n: 3, want: cards("1-O", "2-O", "3-O")},
		{name: "more than available", n: 5, wantErr: ErrInsufficientCards},
		{name: "zero", n: 0, wantErr: ErrInvalidQuantity},
		{name: "negative", n: -1, wantErr: ErrInvalidQuantity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New("pile", cards("1-O", "2-O", "3-O"), false, false)
			got, err := s.TakeTopN(tt.n)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if got != nil {
					t.Errorf("expected no cards on failure, got %v", got)
				}
				if s.Size() != 3 {
					t.Errorf("failed TakeTopN must not mutate, size %d", s.Size())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("cards mismatch (-want +got):\n%s", diff)
			}
			if s.Size() != 3-tt.n {
				t.Errorf("expected %d left, got %d", 3-tt.n, s.Size())
			}
		})
	}
}

func TestTakeTopNErrorDetail(t *testing.T) {
	s := New("deck", cards("1-O", "2-O", "3-O"), false, false)
	_, err := s.TakeTopN(5)

	var se *Error
	if !errors.As(err, &se) {
		t.Fatalf("expected *Error, got %T", err)
	}
	if se.Want != 5 || se.Have != 3 || se.Pile != "deck" {
		t.Errorf("unexpected detail: %+v", se)
	}
}

func TestTakeByIdentity(t *testing.T) {
	s := New("hand", cards("4-P", "5-E", "4-P"), false, false)

	if _, err := s.TakeByIdentity(card.MustNew(4, card.Clubs)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Count(card.MustNew(4, card.Clubs)) != 1 {
		t.Errorf("only the first match should be removed")
	}
	if diff := cmp.Diff(cards("5-E", "4-P"), s.Cards()); diff != "" {
		t.Errorf("cards mismatch (-want +got):\n%s", diff)
	}

	_, err := s.TakeByIdentity(card.MustNew(9, card.Diamonds))
	if !errors.Is(err, ErrCardNotFound) {
		t.Errorf("expected ErrCardNotFound, got %v", err)
	}
}

func TestPeek(t *testing.T) {
	s := New("pile", nil, false, false)
	if _, err := s.PeekTop(); !errors.Is(err, ErrEmptyPile) {
		t.Errorf("PeekTop: expected ErrEmptyPile, got %v", err)
	}
	if _, err := s.PeekBottom(); !errors.Is(err, ErrEmptyPile) {
		t.Errorf("PeekBottom: expected ErrEmptyPile, got %v", err)
	}

	s.AddManyOnTop(cards("1-E", "2-E", "3-E"))
	top, _ := s.PeekTop()
	bottom, _ := s.PeekBottom()
	if top.Rank != 3 || bottom.Rank != 1 {
		t.Errorf("got top %v bottom %v", top, bottom)
	}
	if s.Size() != 3 {
		t.Errorf("peek must not remove cards")
	}
}

func TestShuffleIsReproducible(t *testing.T) {
	orig := cards("1-C", "2-C", "3-C", "4-C", "5-C", "6-C", "7-C", "8-C", "9-C", "10-C")
	a := New("a", orig, false, false)
	b := New("b", orig, false, false)

	a.Shuffle(rand.New(rand.NewPCG(42, 7)))
	b.Shuffle(rand.New(rand.NewPCG(42, 7)))

	if diff := cmp.Diff(a.Cards(), b.Cards()); diff != "" {
		t.Errorf("same seed should give same order (-a +b):\n%s", diff)
	}
	if a.Size() != len(orig) {
		t.Errorf("shuffle changed size to %d", a.Size())
	}
}

func TestCardsReturnsCopy(t *testing.T) {
	s := New("pile", cards("1-C"), false, false)
	got := s.Cards()
	got[0] = card.MustNew(13, card.Spades)
	top, _ := s.PeekTop()
	if top.Rank != 1 {
		t.Errorf("Cards must not expose internal storage")
	}
}
