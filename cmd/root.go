package cmd

import (
	"github.com/spf13/cobra"

	"github.com/arcanaland/buraco/internal/config"
)

var configPath string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "buraco",
	Short: "Play Buraco at the terminal",
	Long: `Buraco is a console rendition of the Brazilian rummy game played with
two 52-card decks, two dead hands and runs of same-suit cards.

Settings live in $XDG_CONFIG_HOME/buraco/config.toml and are created on first use.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $XDG_CONFIG_HOME/buraco/config.toml)")

	RootCmd.AddCommand(playCmd)
	RootCmd.AddCommand(showCmd)
	RootCmd.AddCommand(validateCmd)
	RootCmd.AddCommand(configCmd)
}

// resolvedConfigPath returns the --config value or the XDG default
func resolvedConfigPath() string {
	if configPath != "" {
		return configPath
	}
	return config.GetConfigFilePath()
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}
