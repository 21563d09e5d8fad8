package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/discochess/replay"
	"github.com/discochess/replay/analysis"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize the games in the replay library",
	Long: `Generate every game in the library and print summary statistics:
game lengths, captures, castling and unresolved-move rates.

With --parquet the per-game metrics are also exported for analysis in
external tools.`,
	RunE: runStats,
}

var parquetPath string

func init() {
	statsCmd.Flags().StringVar(&parquetPath, "parquet", "", "export per-game metrics to this parquet file")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	lib, err := openLibrary()
	if err != nil {
		return err
	}
	defer lib.Close()

	entries, err := lib.List(cmd.Context())
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("Library is empty. Run 'replay import' to add games.")
		return nil
	}

	gen, err := replay.New()
	if err != nil {
		return fmt.Errorf("creating generator: %w", err)
	}

	var metrics []analysis.GameMetrics
	var rejected int
	for _, e := range entries {
		rep, err := gen.Generate(e.Record)
		if err != nil {
			rejected++
			continue
		}
		metrics = append(metrics, analysis.Measure(e.ID, rep))
	}

	s := analysis.Summarize(metrics)
	fmt.Printf("Games:        %d\n", s.Games)
	if rejected > 0 {
		fmt.Printf("Rejected:     %d (malformed records)\n", rejected)
	}
	fmt.Printf("Plies:        mean %.1f, stddev %.1f, median %.0f, p90 %.0f\n",
		s.MeanPlies, s.StdDevPlies, s.MedianPlies, s.P90Plies)
	fmt.Printf("Captures:     %.1f per game\n", s.CapturesPerGame)
	fmt.Printf("Castling:     %.0f%% of games\n", s.CastlingRate*100)
	fmt.Printf("Unresolved:   %.2f%% of plies\n", s.UnresolvedRate*100)

	if parquetPath != "" {
		if err := analysis.WriteParquet(parquetPath, metrics); err != nil {
			return fmt.Errorf("exporting parquet: %w", err)
		}
		fmt.Printf("Metrics written to %s\n", parquetPath)
	}

	return nil
}
