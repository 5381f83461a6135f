package console

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/arcanaland/buraco/internal/card"
	"github.com/arcanaland/buraco/internal/game"
)

func prompter(input string) (*Prompter, *strings.Builder) {
	out := &strings.Builder{}
	return NewPrompter(strings.NewReader(input), out), out
}

func TestDrawChoice(t *testing.T) {
	p, out := prompter("m\n L \nx\n")

	src, err := p.DrawChoice()
	if err != nil || src != game.BuyingPile {
		t.Fatalf("got %v, %v", src, err)
	}
	src, err = p.DrawChoice()
	if err != nil || src != game.DiscardPile {
		t.Fatalf("got %v, %v", src, err)
	}
	if _, err := p.DrawChoice(); !errors.Is(err, ErrBadAnswer) {
		t.Fatalf("expected ErrBadAnswer, got %v", err)
	}
	if _, err := p.DrawChoice(); !errors.Is(err, io.EOF) {
		t.Fatalf("expected io.EOF, got %v", err)
	}
	if !strings.Contains(out.String(), "buying pile (m)") {
		t.Errorf("prompt not written: %q", out.String())
	}
}

func TestActionChoice(t *testing.T) {
	p, _ := prompter("b\na\nD\nq\n")
	for _, want := range []ActionKind{NewSequence, AddToSequences, DiscardOnly} {
		got, err := p.ActionChoice()
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
	if _, err := p.ActionChoice(); !errors.Is(err, ErrBadAnswer) {
		t.Fatalf("expected ErrBadAnswer, got %v", err)
	}
}

func TestCards(t *testing.T) {
	p, _ := prompter("3-C, 4-c 5-C\n\n3-X\n")

	got, err := p.Cards()
	if err != nil {
		t.Fatal(err)
	}
	want := []card.Card{card.MustNew(3, card.Hearts), card.MustNew(4, card.Hearts), card.MustNew(5, card.Hearts)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("cards mismatch (-want +got):\n%s", diff)
	}

	if _, err := p.Cards(); !errors.Is(err, ErrBadAnswer) {
		t.Errorf("expected ErrBadAnswer for empty line, got %v", err)
	}
	if _, err := p.Cards(); !errors.Is(err, card.ErrInvalidCard) {
		t.Errorf("expected ErrInvalidCard, got %v", err)
	}
}

func TestExtensions(t *testing.T) {
	p, _ := prompter("0:6-C 1:2-P\n6-C\n-1:6-C\nx:6-C\n")

	got, err := p.Extensions()
	if err != nil {
		t.Fatal(err)
	}
	want := []game.Extension{
		{Sequence: 0, Card: card.MustNew(6, card.Hearts)},
		{Sequence: 1, Card: card.MustNew(2, card.Clubs)},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("extensions mismatch (-want +got):\n%s", diff)
	}

	for range 3 {
		if _, err := p.Extensions(); !errors.Is(err, ErrBadAnswer) {
			t.Errorf("expected ErrBadAnswer, got %v", err)
		}
	}
}

func TestCard(t *testing.T) {
	p, _ := prompter("13-o\nking\n")
	c, err := p.Card()
	if err != nil {
		t.Fatal(err)
	}
	if c != card.MustNew(13, card.Diamonds) {
		t.Errorf("got %v", c)
	}
	if _, err := p.Card(); err == nil {
		t.Error("expected parse error")
	}
}
