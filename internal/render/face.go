package render

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/arcanaland/buraco/internal/card"
)

const (
	faceWidth  = 11
	faceHeight = 7
)

var (
	paper    = colorful.Color{R: 0.97, G: 0.96, B: 0.92}
	inkRed   = colorful.Color{R: 0.78, G: 0.12, B: 0.15}
	inkBlack = colorful.Color{R: 0.10, G: 0.10, B: 0.12}
)

func ink(s card.Suit) colorful.Color {
	if s.IsRed() {
		return inkRed
	}
	return inkBlack
}

// CardFace draws a card as a small block of text. With truecolor enabled the
// paper is shaded from the suit ink toward white, top to bottom.
func (p *Printer) CardFace(c card.Card) string {
	face := c.Face()
	rows := make([]string, faceHeight)
	rows[0] = padRight(face, faceWidth)
	rows[faceHeight/2] = center(c.Suit.Symbol(), faceWidth)
	rows[faceHeight-1] = padLeft(face, faceWidth)
	for i, r := range rows {
		if r == "" {
			rows[i] = strings.Repeat(" ", faceWidth)
		}
	}

	var b strings.Builder
	border := "+" + strings.Repeat("-", faceWidth) + "+"
	b.WriteString(border + "\n")
	for i, r := range rows {
		b.WriteString("|")
		if p.trueColor {
			bg := ink(c.Suit).BlendLab(paper, 0.85+0.15*float64(i)/float64(faceHeight-1)).Clamped()
			b.WriteString(trueColorString(r, ink(c.Suit), bg))
		} else {
			b.WriteString(p.paint(suitAttrs(c.Suit), r))
		}
		b.WriteString("|\n")
	}
	b.WriteString(border)
	return b.String()
}

// trueColorString wraps s in 24-bit foreground and background escapes
func trueColorString(s string, fg, bg colorful.Color) string {
	r1, g1, b1 := fg.RGB255()
	r2, g2, b2 := bg.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%s\x1b[0m", r1, g1, b1, r2, g2, b2, s)
}

func padRight(s string, width int) string {
	return " " + s + strings.Repeat(" ", width-1-visibleWidth(s))
}

func padLeft(s string, width int) string {
	return strings.Repeat(" ", width-1-visibleWidth(s)) + s + " "
}

func center(s string, width int) string {
	left := (width - visibleWidth(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-left-visibleWidth(s))
}
