package card

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		rank    int
		suit    Suit
		wantErr bool
	}{
		{name: "ace of hearts", rank: 1, suit: Hearts},
		{name: "king of diamonds", rank: 13, suit: Diamonds},
		{name: "rank zero", rank: 0, suit: Clubs, wantErr: true},
		{name: "rank fourteen", rank: 14, suit: Spades, wantErr: true},
		{name: "unknown suit", rank: 5, suit: 'X', wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := New(tt.rank, tt.suit)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidCard) {
					t.Fatalf("expected ErrInvalidCard, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if c.Rank != tt.rank || c.Suit != tt.suit {
				t.Errorf("got %v, want %d-%c", c, tt.rank, tt.suit)
			}
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input   string
		want    Card
		wantErr bool
	}{
		{input: "7-P", want: Card{Rank: 7, Suit: Clubs}},
		{input: "13-c", want: Card{Rank: 13, Suit: Hearts}},
		{input: " 1-O ", want: Card{Rank: 1, Suit: Diamonds}},
		{input: "10-E", want: Card{Rank: 10, Suit: Spades}},
		{input: "7P", wantErr: true},
		{input: "x-P", wantErr: true},
		{input: "7-", wantErr: true},
		{input: "7-PP", wantErr: true},
		{input: "0-P", wantErr: true},
		{input: "7-Z", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				var pe *ParseError
				if !errors.As(err, &pe) {
					t.Fatalf("expected *ParseError, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseRejectsBadSuitAsInvalidCard(t *testing.T) {
	_, err := Parse("4-X")
	if !errors.Is(err, ErrInvalidCard) {
		t.Fatalf("expected wrapped ErrInvalidCard, got %v", err)
	}
}

func TestStringRoundTrip(t *testing.T) {
	for _, s := range Suits {
		for r := MinRank; r <= MaxRank; r++ {
			c := MustNew(r, s)
			back, err := Parse(c.String())
			if err != nil {
				t.Fatalf("parse %q: %v", c.String(), err)
			}
			if back != c {
				t.Errorf("round trip of %v gave %v", c, back)
			}
		}
	}
}

func TestLabel(t *testing.T) {
	if got := MustNew(12, Hearts).Label(); got != "Q♥" {
		t.Errorf("got %q", got)
	}
	if got := MustNew(1, Clubs).Label(); got != "A♣" {
		t.Errorf("got %q", got)
	}
	if got := MustNew(10, Spades).Label(); got != "10♠" {
		t.Errorf("got %q", got)
	}
}
