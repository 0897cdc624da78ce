package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a skin, then play",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to choose a skin, Enter to play.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play with the skin
  Q/Esc        - Quit

Examples:
  snake menu
  snake menu --difficulty easy`,
	Args: cobra.NoArgs,
	Run:  runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	exitOnError("config", err)

	logger, closeLog, err := newLogger(flagLogFile, flagDebug)
	exitOnError("log", err)
	defer closeLog()

	current := cfg.Skin
	for {
		width, height := 80, 24
		if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			width, height = w, h
		}

		name, ok, err := tui.RunMenu(current, width, height)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running menu: %v\n", err)
			os.Exit(1)
		}
		if !ok {
			return
		}

		current = name
		logger.Debug("skin selected", "skin", name)
		playWithSkin(cfg, name, logger)
	}
}
