// Package main provides the replay CLI tool for importing chess game
// records and turning them into playback frames.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
