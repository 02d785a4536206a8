package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/sliitsesc/event-navigation-dashboard/internal/cli"
)

func main() {
	loadLocalEnv()
	cli.Execute()
}

// loadLocalEnv loads a .env file when present so local runs can set
// EXPOCTL_* variables without exporting them.
func loadLocalEnv() {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}
}
