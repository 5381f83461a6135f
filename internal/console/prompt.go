// Package console reads player decisions from a line-oriented terminal.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arcanaland/buraco/internal/card"
	"github.com/arcanaland/buraco/internal/game"
)

// ActionKind is the choice made after drawing.
type ActionKind int

const (
	NewSequence ActionKind = iota
	AddToSequences
	DiscardOnly
)

// ErrBadAnswer is wrapped by every answer the prompter cannot interpret.
var ErrBadAnswer = errors.New("unrecognized answer")

// Prompter asks questions on out and reads answers from in, one per line.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// ask prints question and returns the next line, trimmed. io.EOF is returned
// once input runs out.
func (p *Prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// DrawChoice asks where to draw from: m for the buying pile, l for the trash.
func (p *Prompter) DrawChoice() (game.DrawSource, error) {
	answer, err := p.ask("Draw from the buying pile (m) or the trash (l)? ")
	if err != nil {
		return 0, err
	}
	switch strings.ToLower(answer) {
	case "m":
		return game.BuyingPile, nil
	case "l":
		return game.DiscardPile, nil
	}
	return 0, fmt.Errorf("%w: %q, expected m or l", ErrBadAnswer, answer)
}

// ActionChoice asks what to do before discarding.
func (p *Prompter) ActionChoice() (ActionKind, error) {
	answer, err := p.ask("Start a sequence (b), add to sequences (a) or just discard (d)? ")
	if err != nil {
		return 0, err
	}
	switch strings.ToLower(answer) {
	case "b":
		return NewSequence, nil
	case "a":
		return AddToSequences, nil
	case "d":
		return DiscardOnly, nil
	}
	return 0, fmt.Errorf("%w: %q, expected b, a or d", ErrBadAnswer, answer)
}

// Cards asks for a list of card identities separated by spaces or commas.
func (p *Prompter) Cards() ([]card.Card, error) {
	answer, err := p.ask("Cards, lowest first (e.g. 3-C 4-C 5-C): ")
	if err != nil {
		return nil, err
	}
	fields := splitFields(answer)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no cards given", ErrBadAnswer)
	}
	return card.ParseList(fields)
}

// Extensions asks for items of the form index:rank-code.
func (p *Prompter) Extensions() ([]game.Extension, error) {
	answer, err := p.ask("Extensions as sequence:card (e.g. 0:6-C 1:2-P): ")
	if err != nil {
		return nil, err
	}
	fields := splitFields(answer)
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no extensions given", ErrBadAnswer)
	}

	exts := make([]game.Extension, 0, len(fields))
	for _, f := range fields {
		idx, id, ok := strings.Cut(f, ":")
		if !ok {
			return nil, fmt.Errorf("%w: %q, expected sequence:card", ErrBadAnswer, f)
		}
		n, err := strconv.Atoi(idx)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: bad sequence index %q", ErrBadAnswer, idx)
		}
		c, err := card.Parse(id)
		if err != nil {
			return nil, err
		}
		exts = append(exts, game.Extension{Sequence: n, Card: c})
	}
	return exts, nil
}

// Card asks for the card to discard.
func (p *Prompter) Card() (card.Card, error) {
	answer, err := p.ask("Card to discard: ")
	if err != nil {
		return card.Card{}, err
	}
	return card.Parse(answer)
}

func splitFields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}
