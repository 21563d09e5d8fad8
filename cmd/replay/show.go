package main

import (
	"fmt"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/discochess/replay"
)

var showCmd = &cobra.Command{
	Use:   "show [RECORD]",
	Short: "Show the playback frames for a game record",
	Long: `Show the board after every move of a game record.

The record can be given directly, looked up in the library by id with
--id, or picked interactively from the library when neither is given.

Examples:
  # A record given directly, French alphabet accepted
  replay show "tcfdrfct/pppppppp/8/8/8/8/PPPPPPPP/TCFDRFCT w KQkq - 0 1 1. e4 e5"

  # A previously imported game
  replay show --id 1f6f5c8a-...`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

var showID string

func init() {
	showCmd.Flags().StringVar(&showID, "id", "", "show the library entry with this id")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	record, err := resolveRecord(cmd, args)
	if err != nil {
		return err
	}

	gen, err := replay.New()
	if err != nil {
		return fmt.Errorf("creating generator: %w", err)
	}

	rep, err := gen.Generate(record)
	if err != nil {
		return fmt.Errorf("generating replay: %w", err)
	}

	fmt.Printf("start  %s  (%s to move)\n", rep.Record.Position, rep.Record.ActiveColor)
	for _, frame := range rep.Frames {
		if frame.Move == nil {
			fmt.Printf("%4d  %-8s %s  (unresolved)\n", frame.Ply, frame.Token, frame.Position)
			continue
		}
		fmt.Printf("%4d  %-8s %s\n", frame.Ply, frame.Token, frame.Position)
	}
	if failed := rep.Failed(); len(failed) > 0 {
		fmt.Printf("%d move(s) could not be resolved\n", len(failed))
	}

	return nil
}

// resolveRecord picks the record to show: the argument, the --id lookup,
// or an interactive selection from the library.
func resolveRecord(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	lib, err := openLibrary()
	if err != nil {
		return "", err
	}
	defer lib.Close()

	if showID != "" {
		entry, err := lib.Get(cmd.Context(), showID)
		if err != nil {
			return "", err
		}
		return entry.Record, nil
	}

	entries, err := lib.List(cmd.Context())
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "", fmt.Errorf("library is empty; run 'replay import' first or pass a record")
	}

	items := make([]string, len(entries))
	for i, e := range entries {
		items[i] = fmt.Sprintf("%s - %s (%s, %d plies)", e.White, e.Black, e.Event, e.Plies)
	}

	prompt := promptui.Select{
		Label: "Which game do you want to replay?",
		Items: items,
		Size:  10,
	}
	idx, _, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("selecting game: %w", err)
	}

	return entries[idx].Record, nil
}
