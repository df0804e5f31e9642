package main

import (
	"os"

	"github.com/abhisek/classroom/cmd"
	"github.com/joho/godotenv"
)

func main() {
	// Local .env is optional; real environments set variables directly.
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
