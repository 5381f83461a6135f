package cmd

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/arcanaland/buraco/internal/config"
)

// configCmd represents the config command group
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the buraco config file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the config file with defaults if it does not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolvedConfigPath()
		if _, err := config.LoadConfigFrom(path); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Config file initialized at:", path)
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolvedConfigPath()
		cfg, err := config.LoadConfigFrom(path)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "# %s\n", path)
		return toml.NewEncoder(cmd.OutOrStdout()).Encode(cfg)
	},
}

var configSetPlayersCmd = &cobra.Command{
	Use:   "set-players <name> <name> [<name> <name>]",
	Short: "Set the player names, seated in the order given",
	Long: `Set-players stores two or four player names. Partners sit opposite each
other: with four names the first and third play together against the second
and fourth.`,
	Args: cobra.RangeArgs(2, 4),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := resolvedConfigPath()
		if err := config.SetPlayers(path, args); err != nil {
			return fmt.Errorf("error setting players: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Players set to %s in %s\n", strings.Join(args, ", "), path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetPlayersCmd)
}

// loadConfig reads the config file, falling back to defaults with a notice
// when it cannot be created (read-only home, for instance)
func loadConfig(cmd *cobra.Command) *config.Config {
	cfg, err := config.LoadConfigFrom(resolvedConfigPath())
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v; using defaults\n", err)
		return config.Default()
	}
	return cfg
}
