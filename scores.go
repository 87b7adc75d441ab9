package main

import (
	"fmt"
	"strings"

	"github.com/milk9111/jumpdontdie/storage"
	"github.com/spf13/cobra"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show the best runs",
	Long: `Display the ten longest runs for a level, or for every level that
has been played when no level is given.

Examples:
  jumpdontdie scores
  jumpdontdie scores default`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func runScores(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	var names []string
	if len(args) == 1 {
		names = []string{strings.TrimSuffix(args[0], ".yaml")}
	} else if names, err = store.Levels(); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(names) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}
	for _, name := range names {
		runs, err := store.Top(name, 10)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "High Scores - %s\n\n", name)
		if len(runs) == 0 {
			fmt.Fprintln(out, "  No runs recorded yet.")
			fmt.Fprintln(out)
			continue
		}
		fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %s\n", "Rank", "Distance", "Jumps", "Date")
		fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %s\n", "----", "--------", "-----", "----")
		for i, r := range runs {
			fmt.Fprintf(out, "  %-4d  %-8s  %-5d  %s\n", i+1, fmt.Sprintf("%d m", r.Distance), r.Jumps, r.CreatedAt.Format("2006-01-02 15:04"))
		}
		fmt.Fprintln(out)
	}
	return nil
}
