package main

import (
	"os"

	"github.com/KornelijusGlinskas/keyboard-claude/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
