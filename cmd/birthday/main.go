// Package main provides the birthday CLI.
package main

import (
	"os"

	"github.com/joho/godotenv"
)

func main() {
	// A .env file is optional; it only seeds environment overrides.
	_ = godotenv.Load()

	os.Exit(run(os.Args[1:], newApp(os.Stdout, os.Stderr)))
}
