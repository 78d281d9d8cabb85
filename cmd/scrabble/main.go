package main

import (
	"github.com/joho/godotenv"

	"github.com/mcoot/scrabble-go/internal/cli"
)

func main() {
	// A .env file is optional; real environment variables take precedence
	_ = godotenv.Load()

	cli.Execute()
}
