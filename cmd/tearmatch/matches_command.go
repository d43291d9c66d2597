package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newMatchesCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "matches",
		Short: "Show the recorded match set",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, matches, err := ctx.loadState()
			if err != nil {
				return err
			}
			if matches.Len() == 0 {
				fmt.Println("no matches recorded")
				return nil
			}

			pairs := matches.All()
			names := make([]string, 0, len(pairs))
			for name := range pairs {
				names = append(names, name)
			}
			sort.Strings(names)

			// Each mutual pair appears under both names; print it once,
			// and keep one-sided entries visible since the greedy resolve
			// policy can produce them.
			seen := make(map[string]bool, len(names))
			rows := make([][]string, 0, len(names)/2+1)
			for _, name := range names {
				partner := pairs[name]
				if seen[name] {
					continue
				}
				note := ""
				if pairs[partner] == name {
					seen[partner] = true
				} else {
					note = "one-sided"
				}
				rows = append(rows, []string{name, partner, note})
			}

			fmt.Println(renderTable([]string{"Fragment", "Best Match", ""}, rows))
			return nil
		},
	}
}
