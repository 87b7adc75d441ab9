package main

import (
	"fmt"

	"github.com/milk9111/jumpdontdie/levels"
	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the available levels",
	Long:  `Lists the bundled levels and any extra ones found in ./levels.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		for _, name := range levels.Names() {
			lvl, err := levels.Load(name)
			if err != nil {
				fmt.Fprintf(out, "  %-20s  invalid: %v\n", name, err)
				continue
			}
			fmt.Fprintf(out, "  %-20s  %2d floors  %2d spikes\n", name, len(lvl.Floors), len(lvl.Spikes))
		}
		return nil
	},
}
