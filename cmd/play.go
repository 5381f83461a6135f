package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arcanaland/buraco/internal/console"
	"github.com/arcanaland/buraco/internal/game"
	"github.com/arcanaland/buraco/internal/logging"
	"github.com/arcanaland/buraco/internal/render"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game at this terminal",
	Long: `Play deals a new game and passes the terminal between players. Each turn
you draw from the buying pile (m) or take the whole trash (l), optionally start
or extend sequences, then discard one card.

Cards are typed as <rank>-<code>, e.g. 7-P or 12-C.

Examples:
  buraco play
  buraco play --players 4
  buraco play --names Ana,Bia --seed 42`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig(cmd)
		rules := cfg.Rules()

		if cmd.Flags().Changed("players") {
			n, _ := cmd.Flags().GetInt("players")
			rules.Players = game.PlayersFor(n)
		}
		if cmd.Flags().Changed("names") {
			rules.Players, _ = cmd.Flags().GetStringSlice("names")
		}
		if cmd.Flags().Changed("seed") {
			rules.Seed, _ = cmd.Flags().GetUint64("seed")
		}
		mode := cfg.Display.Color
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			mode = "never"
		}

		log, err := logging.New(cfg.Log.Level, os.Stderr)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		printer := render.NewPrinter(cmd.OutOrStdout(), mode, cfg.Display.TrueColor)
		g, err := game.New(rules,
			game.WithLogger(log),
			game.WithKnockHook(func(snap game.Snapshot) {
				printer.Println(fmt.Sprintf("%s knocks!", snap.KnockedBy))
			}),
		)
		if err != nil {
			return err
		}

		s := &session{
			game:    g,
			prompt:  console.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
			printer: printer,
			log:     log,
		}
		return s.run()
	},
}

func init() {
	playCmd.Flags().Int("players", 2, "number of players (2 or 4)")
	playCmd.Flags().StringSlice("names", nil, "comma-separated player names, in seat order")
	playCmd.Flags().Uint64("seed", 0, "shuffle seed (0 seeds from the clock)")
	playCmd.Flags().Bool("no-color", false, "disable colored output")
}

// session drives one game from console input
type session struct {
	game    *game.Game
	prompt  *console.Prompter
	printer *render.Printer
	log     *zap.Logger
}

func (s *session) run() error {
	for !s.game.Over() {
		s.printer.Println(s.printer.Report(s.game.Snapshot()))

		err := s.step()
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("input closed before the game ended")
		}
		if err != nil {
			s.log.Debug("rejected input", zap.Error(err))
			s.printer.Println("✗ " + err.Error())
		}
	}
	s.printer.Println(s.printer.GameOver(s.game.Snapshot()))
	return nil
}

// step performs the next decision for the active player
func (s *session) step() error {
	switch s.game.Phase() {
	case game.PhaseDraw:
		return s.draw()
	case game.PhaseAct:
		kind, err := s.prompt.ActionChoice()
		if err != nil {
			return err
		}
		switch kind {
		case console.NewSequence:
			cards, err := s.prompt.Cards()
			if err != nil {
				return err
			}
			return s.game.Play(game.StartSequence{Cards: cards})
		case console.AddToSequences:
			exts, err := s.prompt.Extensions()
			if err != nil {
				return err
			}
			return s.game.Play(game.ExtendSequences{Extensions: exts})
		default:
			return s.discard()
		}
	case game.PhaseDiscard:
		return s.discard()
	}
	return nil
}

func (s *session) draw() error {
	src, err := s.prompt.DrawChoice()
	if err != nil {
		return err
	}
	res, err := s.game.Draw(src)
	if err != nil {
		return err
	}
	if res.Promoted {
		s.printer.Println("The buying stack ran out; a dead hand takes its place.")
	}
	if !res.Ended {
		s.printer.Println("Drew " + s.printer.Cards(res.Cards))
	}
	return nil
}

func (s *session) discard() error {
	c, err := s.prompt.Card()
	if err != nil {
		return err
	}
	return s.game.Discard(c)
}
