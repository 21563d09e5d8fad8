package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/discochess/replay/internal/library"
)

var (
	// Global flags.
	configFile  string
	libraryFlag string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "replay",
	Short: "Turn chess game records into playback frames",
	Long: `Replay parses FEN-like game records, standard or French piece
alphabet, and derives the board after every move for playback.

Games can be imported from PGN files, archives and object storage into
a local library, then shown, summarized or served over HTTP.

Examples:
  # Show a record directly
  replay show "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1 1. e4 e5 2. Nf3"

  # Import a Lichess archive into the library
  replay import https://database.lichess.org/standard/sample.pgn.zst

  # Summarize every imported game
  replay stats

  # Serve replays as JSON
  replay serve --addr :8080`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to the config file (default ~/.config/replay.json)")
	rootCmd.PersistentFlags().StringVarP(&libraryFlag, "library", "l", "", "path to the replay library database")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// libraryPath resolves the library database path: flag, then config
// file, then the built-in default.
func libraryPath() string {
	if libraryFlag != "" {
		return libraryFlag
	}
	return configValue("library")
}

// openLibrary opens the configured replay library.
func openLibrary() (*library.Library, error) {
	path := libraryPath()
	lib, err := library.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening library %q: %w", path, err)
	}
	return lib, nil
}

// newLogger builds the CLI logger; verbose switches on debug output.
func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
