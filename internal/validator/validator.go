package validator

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/arcanaland/buraco/internal/config"
	"github.com/arcanaland/buraco/internal/logging"
)

type ValidationResults struct {
	Errors   []string
	Warnings []string
}

type Validator struct {
	ConfigPath string
	Results    ValidationResults

	config *config.Config
	meta   toml.MetaData
}

func NewValidator(configPath string) *Validator {
	return &Validator{
		ConfigPath: configPath,
		Results:    ValidationResults{},
	}
}

func (v *Validator) Validate() (ValidationResults, error) {
	if err := v.decode(); err != nil {
		return v.Results, err
	}

	v.validateUndecodedKeys()
	v.validatePlayers()
	v.validateDisplay()
	v.validateLog()
	v.validateSeed()

	return v.Results, nil
}

func (v *Validator) decode() error {
	if _, err := os.Stat(v.ConfigPath); os.IsNotExist(err) {
		return fmt.Errorf("config file not found: %s", v.ConfigPath)
	}

	cfg := config.Default()
	meta, err := toml.DecodeFile(v.ConfigPath, cfg)
	if err != nil {
		return fmt.Errorf("error parsing %s: %w", v.ConfigPath, err)
	}
	v.config = cfg
	v.meta = meta
	return nil
}

func (v *Validator) errorf(format string, args ...any) {
	v.Results.Errors = append(v.Results.Errors, fmt.Sprintf(format, args...))
}

func (v *Validator) warnf(format string, args ...any) {
	v.Results.Warnings = append(v.Results.Warnings, fmt.Sprintf(format, args...))
}

// validateUndecodedKeys warns about keys the game does not read, usually typos
func (v *Validator) validateUndecodedKeys() {
	for _, key := range v.meta.Undecoded() {
		v.warnf("unknown key: %s", key.String())
	}
}

func (v *Validator) validatePlayers() {
	if !v.meta.IsDefined("game", "players") {
		v.warnf("game.players not set, using %s", strings.Join(v.config.Game.Players, ", "))
	}

	players := v.config.Game.Players
	if n := len(players); n != 2 && n != 4 {
		v.errorf("game.players must list 2 or 4 names, found %d", n)
	}

	seen := map[string]bool{}
	for i, name := range players {
		if strings.TrimSpace(name) == "" {
			v.errorf("game.players[%d] is empty", i)
			continue
		}
		if seen[name] {
			v.errorf("game.players[%d]: duplicate name %q", i, name)
		}
		seen[name] = true
	}

	// Anything the engine itself refuses that the checks above missed
	if len(v.Results.Errors) == 0 {
		if err := v.config.Rules().Validate(); err != nil {
			v.errorf("game: %v", err)
		}
	}
}

func (v *Validator) validateDisplay() {
	switch v.config.Display.Color {
	case "auto", "always", "never":
	default:
		v.errorf("display.color must be auto, always or never, found %q", v.config.Display.Color)
	}
}

func (v *Validator) validateLog() {
	if _, err := logging.ParseLevel(v.config.Log.Level); err != nil {
		v.errorf("log.level: %v", err)
	}
	if v.config.Log.Level == "debug" {
		v.warnf("log.level is debug; every move is logged to stderr")
	}
}

func (v *Validator) validateSeed() {
	if v.config.Game.Seed != 0 {
		v.warnf("game.seed is fixed at %d; every game deals the same cards", v.config.Game.Seed)
	}
}
