// Package render turns engine snapshots into terminal text.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/pterm/pterm"
	"golang.org/x/term"

	"github.com/arcanaland/buraco/internal/card"
	"github.com/arcanaland/buraco/internal/game"
)

const defaultWidth = 80

// Printer formats cards and game state for one output stream.
type Printer struct {
	out       io.Writer
	color     bool
	trueColor bool
	width     int
}

// NewPrinter builds a printer for out. mode is auto, always or never.
func NewPrinter(out io.Writer, mode string, trueColor bool) *Printer {
	p := &Printer{out: out, width: defaultWidth, trueColor: trueColor}

	f, isFile := out.(*os.File)
	isTerm := isFile && term.IsTerminal(int(f.Fd()))
	switch mode {
	case "always":
		p.color = true
	case "never":
		p.color = false
	default:
		p.color = isTerm
	}
	if isTerm {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			p.width = w
		}
	}
	if p.color {
		pterm.EnableColor()
	} else {
		pterm.DisableColor()
		p.trueColor = false
	}
	return p
}

// Color reports whether escape sequences are emitted.
func (p *Printer) Color() bool { return p.color }

func (p *Printer) paint(attrs []colorize.Attribute, s string) string {
	c := colorize.New(attrs...)
	if p.color {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.Sprint(s)
}

func suitAttrs(s card.Suit) []colorize.Attribute {
	if s.IsRed() {
		return []colorize.Attribute{colorize.FgHiRed, colorize.Bold}
	}
	return []colorize.Attribute{colorize.FgHiWhite, colorize.Bold}
}

// Card renders one card as its label followed by the identity players type.
func (p *Printer) Card(c card.Card) string {
	return p.paint(suitAttrs(c.Suit), c.Label()) + p.paint([]colorize.Attribute{colorize.Faint}, "("+c.String()+")")
}

// Cards renders cards on one line.
func (p *Printer) Cards(cards []card.Card) string {
	if len(cards) == 0 {
		return p.paint([]colorize.Attribute{colorize.Faint}, "(none)")
	}
	tokens := make([]string, len(cards))
	for i, c := range cards {
		tokens[i] = p.Card(c)
	}
	return strings.Join(tokens, " ")
}

// WrappedCards renders cards over as many lines as the terminal width needs.
func (p *Printer) WrappedCards(cards []card.Card, indent int) []string {
	if len(cards) == 0 {
		return []string{p.Cards(nil)}
	}
	tokens := make([]string, len(cards))
	for i, c := range cards {
		tokens[i] = p.Card(c)
	}
	return wrapTokens(tokens, p.width-indent-4)
}

func (p *Printer) label(s string) string {
	return p.paint([]colorize.Attribute{colorize.FgCyan}, s)
}

// Report renders the situation shown before every decision.
func (p *Printer) Report(snap game.Snapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s (%s)\n", p.label("Player:"), snap.Active, snap.Phase)
	fmt.Fprintf(&b, "%s %d   %s %s\n",
		p.label("Buying stack:"), snap.BuyingSize,
		p.label("Dead hands:"), joinInts(snap.DeadHands))

	b.WriteString(p.label("Trash:") + "\n")
	for _, line := range p.WrappedCards(snap.Trash, 2) {
		b.WriteString("  " + line + "\n")
	}

	for _, side := range snap.Sides {
		title := side.Name
		if side.ClaimedDeadHand {
			title += " (dead hand taken)"
		}
		b.WriteString(p.label("Table "+title+":") + "\n")
		if len(side.Sequences) == 0 {
			b.WriteString("  " + p.Cards(nil) + "\n")
		}
		for i, seq := range side.Sequences {
			fmt.Fprintf(&b, "  %d: %s\n", i, p.Cards(seq))
		}
	}

	var seats []string
	for _, s := range snap.Seats {
		seats = append(seats, fmt.Sprintf("%s %d", s.Name, s.HandSize))
	}
	fmt.Fprintf(&b, "%s %s\n", p.label("Cards held:"), strings.Join(seats, ", "))

	b.WriteString(p.label("Your hand:") + "\n")
	for _, line := range p.WrappedCards(snap.Hand, 2) {
		b.WriteString("  " + line + "\n")
	}

	return p.box(" "+snap.Active+" ", strings.TrimRight(b.String(), "\n"))
}

// GameOver renders the final panel.
func (p *Printer) GameOver(snap game.Snapshot) string {
	var b strings.Builder
	switch snap.EndReason {
	case game.EndKnock:
		fmt.Fprintf(&b, "%s went out.\n", snap.KnockedBy)
	case game.EndExhausted:
		b.WriteString("The buying stack and both dead hands are exhausted.\n")
	}
	for _, side := range snap.Sides {
		n := 0
		for _, seq := range side.Sequences {
			n += len(seq)
		}
		fmt.Fprintf(&b, "%s: %d sequences, %d cards on the table\n", side.Name, len(side.Sequences), n)
	}
	b.WriteString("Scoring is left to the players.")
	return p.box(" GAME OVER ", b.String())
}

func (p *Printer) box(title, body string) string {
	box := pterm.DefaultBox.
		WithHorizontalPadding(2).
		WithTitle(p.paint([]colorize.Attribute{colorize.FgYellow, colorize.Bold}, title)).
		WithTitleTopCenter()
	return box.Sprint(body)
}

// Println writes s and a newline to the printer's output.
func (p *Printer) Println(s string) {
	fmt.Fprintln(p.out, s)
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = fmt.Sprint(n)
	}
	return strings.Join(parts, " / ")
}

// wrapTokens packs tokens into lines no wider than width visible columns
func wrapTokens(tokens []string, width int) []string {
	if width < 10 {
		width = 40
	}

	var result []string
	var current string
	currentWidth := 0
	for _, tok := range tokens {
		w := visibleWidth(tok)
		if currentWidth == 0 {
			current, currentWidth = tok, w
		} else if currentWidth+1+w <= width {
			current += " " + tok
			currentWidth += 1 + w
		} else {
			result = append(result, current)
			current, currentWidth = tok, w
		}
	}
	if current != "" {
		result = append(result, current)
	}
	return result
}

// narrow measures suit pips as one column regardless of locale
var narrow = &runewidth.Condition{EastAsianWidth: false}

// visibleWidth returns the terminal columns s occupies outside ANSI escape sequences
func visibleWidth(s string) int {
	var plain strings.Builder
	inEscape := false
	for _, c := range s {
		if inEscape {
			if c == 'm' {
				inEscape = false
			}
		} else if c == '\033' {
			inEscape = true
		} else {
			plain.WriteRune(c)
		}
	}
	return narrow.StringWidth(plain.String())
}
