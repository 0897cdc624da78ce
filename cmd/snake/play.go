package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake",
	Long: `Start a game with the configured skin.

Controls:
  Any key          - Start (Ready) / reset (Game Over)
  Arrows/WASD/hjkl - Steer
  ?                - Toggle help
  Q/Esc/Ctrl+C     - Quit

Difficulty options:
  easy   - 300ms per move
  normal - 200ms per move
  hard   - 120ms per move
  fixed  - Keep the config's tick_interval

Examples:
  snake play
  snake play --skin ascii
  snake play --difficulty hard
  snake play --config ./my-snake.yaml --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	exitOnError("config", err)

	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	exitOnError("log", err)
	defer closeLog()

	warnIfTooSmall(cfg)
	playWithSkin(cfg, cfg.Skin, logger)
}

// playWithSkin runs one interactive game until the player quits.
func playWithSkin(cfg config.SnakeConfig, skinName string, logger *log.Logger) {
	sk := resolveSkin(skinName, logger)
	sessionCfg := cfg.Session(resolveSeed())

	logger.Info("starting game",
		"grid", fmt.Sprintf("%dx%d", sessionCfg.Width, sessionCfg.Height),
		"tick", sessionCfg.TickInterval,
		"skin", skinName,
		"seed", sessionCfg.Seed,
	)

	if err := tui.Run(sessionCfg, sk, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// warnIfTooSmall prints a warning when the terminal cannot show the whole board.
func warnIfTooSmall(cfg config.SnakeConfig) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return
	}
	needW, needH := tui.RequiredSize(core.Size{W: cfg.Grid.Width, H: cfg.Grid.Height})
	if width < needW || height < needH {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the board needs %dx%d\n",
			width, height, needW, needH)
	}
}
