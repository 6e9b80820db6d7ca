package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/cuadra-dev/cuadra/internal/commands"
)

func main() {
	// Optional .env for CUADRA_CONFIG and friends; missing file is fine.
	_ = godotenv.Load()

	if err := commands.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
