package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/registry"
)

var skinsCmd = &cobra.Command{
	Use:   "skins",
	Short: "List configured skins",
	Long:  `Shows the skins defined in the configuration. The active one is marked with *.`,
	Args:  cobra.NoArgs,
	Run:   runSkins,
}

func runSkins(_ *cobra.Command, _ []string) {
	cfg, err := loadConfig()
	exitOnError("config", err)

	skins := registry.List()
	if len(skins) == 0 {
		fmt.Println("No skins configured.")
		return
	}

	fmt.Println("Available skins:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, s := range skins {
		maxNameLen = max(maxNameLen, len(s.Name))
	}

	fmt.Printf("    %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("    %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, s := range skins {
		mark := " "
		if s.Name == cfg.Skin {
			mark = "*"
		}
		fmt.Printf("  %s %-*s  %s\n", mark, maxNameLen, s.Name, s.Description)
	}

	if !registry.Exists(cfg.Skin) {
		fmt.Println()
		fmt.Printf("Warning: selected skin %q is not defined.\n", cfg.Skin)
	}

	fmt.Println()
	fmt.Println("Run 'snake play --skin <name>' to play with a skin.")
}
