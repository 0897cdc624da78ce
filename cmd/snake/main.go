// snake is a terminal snake game.
//
// Usage:
//
//	snake play              - Play with the configured skin
//	snake menu              - Pick a skin interactively, then play
//	snake skins             - List configured skins
//	snake sim [script]      - Replay an input script headlessly
//
// Global flags:
//
//	--config <path>       - Custom config YAML
//	--seed <value>        - RNG seed for reproducible food placement
//	--skin <name>         - Skin to play with
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-file <path>     - Write logs to a file
//	--debug               - Enable debug logging
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/skin"
)

var (
	// Global flags
	flagConfig     string
	flagSeed       int64
	flagSkin       string
	flagDifficulty string
	flagLogFile    string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake - the classic grid game in your terminal",
	Long: `Snake is a terminal version of the classic grid game: steer the snake,
eat food to grow, and avoid the walls and your own tail.

Available commands:
  play     - Play with the configured skin
  menu     - Pick a skin, then play
  skins    - List configured skins
  sim      - Replay an input script without a terminal UI

Examples:
  snake play
  snake play --difficulty hard --skin ascii
  snake menu
  snake sim --seed 42 script.txt`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagSkin, "skin", "", "Skin name (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(skinsCmd)
	rootCmd.AddCommand(simCmd)
}

// loadConfig loads the configuration, applies the command line overrides and
// registers the configured skins.
func loadConfig() (config.SnakeConfig, error) {
	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplySnakePreset(&cfg, preset)

	if flagSkin != "" {
		cfg.Skin = flagSkin
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	registry.Reset()
	for _, s := range cfg.Skins {
		if err := registry.Register(s); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// newLogger builds the process logger. The terminal belongs to the game, so
// logs go to --log-file or nowhere.
func newLogger(path string, debug bool) (*log.Logger, func(), error) {
	var out io.Writer = io.Discard
	closeFn := func() {}

	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, closeFn, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() {
			//nolint:errcheck // Best-effort close on exit
			f.Close()
		}
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}

// resolveSkin returns the named skin, or nil if it is not registered. A nil
// skin is not fatal: the session reports it as a missing skin.
func resolveSkin(name string, logger *log.Logger) *skin.Skin {
	sk, err := registry.Lookup(name)
	if err != nil {
		logger.Error("skin not available", "skin", name, "error", err)
		return nil
	}
	return sk
}

// resolveSeed returns the --seed value, or a time-based seed for 0.
func resolveSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return time.Now().UnixNano()
}

// exitOnError prints err and exits with status 1.
func exitOnError(prefix string, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", prefix, err)
	os.Exit(1)
}
