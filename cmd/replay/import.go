package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync/atomic"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/discochess/replay/internal/fetch"
	"github.com/discochess/replay/internal/library"
	"github.com/discochess/replay/pgn"
)

var importCmd = &cobra.Command{
	Use:   "import SOURCE...",
	Short: "Import PGN games into the replay library",
	Long: `Import chess games from PGN sources into the local library.

Sources can be local files, http(s) URLs, or gs:// and s3:// objects.
Archives compressed with zstd (.zst) or gzip (.gz) are unpacked on the
fly. Legacy Windows-1252 PGN files are converted to UTF-8.

Examples:
  # A local file
  replay import ./games.pgn

  # A compressed Lichess dump
  replay import https://database.lichess.org/standard/sample.pgn.zst

  # Several archives in parallel
  replay import gs://dumps/jan.pgn.zst gs://dumps/feb.pgn.zst --workers 8`,
	Args: cobra.MinimumNArgs(1),
	RunE: runImport,
}

var importWorkers int

func init() {
	importCmd.Flags().IntVar(&importWorkers, "workers", 0, "parallel imports (default from config import.workers)")
	rootCmd.AddCommand(importCmd)
}

func runImport(cmd *cobra.Command, args []string) error {
	workers := importWorkers
	if workers <= 0 {
		workers = configInt("import.workers")
	}
	if workers <= 0 {
		workers = 1
	}

	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer lib.Close()

	var imported atomic.Int64

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(workers)
	for _, ref := range args {
		g.Go(func() error {
			n, err := importSource(ctx, lib, ref, len(args) == 1)
			if err != nil {
				return fmt.Errorf("importing %s: %w", ref, err)
			}
			imported.Add(int64(n))
			fmt.Printf("%s: %d game(s)\n", ref, n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	fmt.Printf("imported %d game(s) into %s\n", imported.Load(), libraryPath())
	return nil
}

// importSource fetches one source and saves every game it contains.
// Progress is only printed for a lone source; interleaved progress
// lines from parallel fetches would be unreadable.
func importSource(ctx context.Context, lib *library.Library, ref string, showProgress bool) (int, error) {
	var opts []fetch.Option
	if showProgress {
		opts = append(opts, fetch.WithProgress(printProgress))
	}

	rc, err := fetch.Open(ctx, ref, opts...)
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	rc, err = fetch.Decompress(rc, ref)
	if err != nil {
		return 0, err
	}

	data, err := io.ReadAll(rc)
	if err != nil {
		return 0, fmt.Errorf("reading: %w", err)
	}
	if showProgress {
		fmt.Println()
	}

	text, err := pgn.DecodeText(data)
	if err != nil {
		return 0, err
	}

	games, err := pgn.ExtractGames(strings.NewReader(text))
	if err != nil {
		return 0, err
	}

	for _, game := range games {
		_, err := lib.Save(ctx, library.Entry{
			White:  game.White,
			Black:  game.Black,
			Event:  game.Event,
			Record: game.Record,
			Plies:  game.Plies,
		})
		if err != nil {
			return 0, err
		}
	}

	return len(games), nil
}

func printProgress(read, total int64) {
	if total > 0 {
		fmt.Printf("\r[Download] %s / %s (%.1f%%)",
			formatBytes(read), formatBytes(total), float64(read)/float64(total)*100)
		return
	}
	fmt.Printf("\r[Download] %s", formatBytes(read))
}

func formatBytes(bytes int64) string {
	const unit = 1024
	if bytes < unit {
		return fmt.Sprintf("%d B", bytes)
	}
	div, exp := int64(unit), 0
	for n := bytes / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(bytes)/float64(div), "KMGTPE"[exp])
}
