package cmd

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/arcanaland/buraco/internal/console"
	"github.com/arcanaland/buraco/internal/game"
	"github.com/arcanaland/buraco/internal/render"
)

func newSession(t *testing.T, g *game.Game, input string) (*session, *bytes.Buffer) {
	t.Helper()
	out := &bytes.Buffer{}
	return &session{
		game:    g,
		prompt:  console.NewPrompter(strings.NewReader(input), out),
		printer: render.NewPrinter(out, "never", false),
		log:     zaptest.NewLogger(t),
	}, out
}

func seededGame(t *testing.T) *game.Game {
	t.Helper()
	rules := game.DefaultRules()
	rules.Seed = 11
	g, err := game.New(rules)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestSessionPlaysATurn(t *testing.T) {
	g := seededGame(t)
	first := g.ActivePlayer()
	discard := g.Snapshot().Hand[0]

	// an illegal draw from the empty trash, a typo, then a full turn
	input := "l\nzz\nm\nd\n" + discard.String() + "\n"
	s, out := newSession(t, g, input)

	err := s.run()
	if err == nil || !strings.Contains(err.Error(), "input closed") {
		t.Fatalf("expected input closed error, got %v", err)
	}

	if g.ActivePlayer() == first {
		t.Errorf("turn did not pass from %s", first)
	}
	if g.Phase() != game.PhaseDraw {
		t.Errorf("expected draw phase, got %v", g.Phase())
	}
	trash := g.Snapshot().Trash
	if len(trash) != 1 || trash[0] != discard {
		t.Errorf("expected trash [%v], got %v", discard, trash)
	}

	text := out.String()
	for _, want := range []string{"✗", "unrecognized answer", "Drew "} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestSessionRejectsBadDiscardAndReprompts(t *testing.T) {
	g := seededGame(t)
	hand := g.Snapshot().Hand
	s, _ := newSession(t, g, "m\nd\n99-C\nd\n"+hand[1].String()+"\n")

	_ = s.run()
	if len(g.Snapshot().Trash) != 1 {
		t.Fatalf("expected one discarded card after retry, trash %v", g.Snapshot().Trash)
	}
}

func TestRootRegistersCommands(t *testing.T) {
	for _, name := range []string{"play", "show", "validate", "config"} {
		if c, _, err := RootCmd.Find([]string{name}); err != nil || c.Name() != name {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestShowCommand(t *testing.T) {
	out := &bytes.Buffer{}
	RootCmd.SetOut(out)
	RootCmd.SetArgs([]string{"--config", t.TempDir() + "/config.toml", "show", "--no-color", "12-c"})
	defer RootCmd.SetArgs(nil)

	if err := RootCmd.Execute(); err != nil {
		t.Fatalf("show: %v", err)
	}
	for _, want := range []string{"Q♥", "12-C", "hearts"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("show output missing %q:\n%s", want, out.String())
		}
	}
}
