package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/buraco/internal/card"
	"github.com/arcanaland/buraco/internal/render"
)

var showCmd = &cobra.Command{
	Use:   "show <rank>-<code>",
	Short: "Display a single card",
	Long: `Show draws one card using the identity typed during play: the rank
(1 to 13) and the suit code joined by a dash.

Suit codes: C hearts (copas), E spades, P clubs, O diamonds.

Examples:
  buraco show 1-C
  buraco show 12-p`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := card.Parse(args[0])
		if err != nil {
			return err
		}

		cfg := loadConfig(cmd)
		mode := cfg.Display.Color
		if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
			mode = "never"
		}

		p := render.NewPrinter(cmd.OutOrStdout(), mode, cfg.Display.TrueColor)
		face := strings.Split(p.CardFace(c), "\n")
		info := []string{
			"Card: " + c.Label(),
			"ID:   " + c.String(),
			"Suit: " + c.Suit.Name() + " · " + c.Suit.Symbol(),
			fmt.Sprintf("Rank: %d", c.Rank),
		}

		// face on the left, details beside it
		for i, line := range face {
			if i > 0 && i-1 < len(info) {
				line += "    " + info[i-1]
			}
			p.Println(line)
		}
		return nil
	},
}

func init() {
	showCmd.Flags().Bool("no-color", false, "disable colored output")
}
