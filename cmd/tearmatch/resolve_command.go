package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"tearmatch/internal/match"
)

func newResolveCommand(ctx *commandContext) *cobra.Command {
	var mutual bool

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Find best matches across the whole collection",
		Long: `Pair every unmatched signature in the collection with its nearest
neighbor and record the matches.

The default policy is greedy: names are visited in insertion order and
already-matched names are skipped, which can leave a name referenced as
someone's partner without a pass of its own. --mutual records only pairs
that are each other's nearest neighbor.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			collection, matches, err := ctx.loadState()
			if err != nil {
				return err
			}

			matcher := match.NewMatcherWith(collection, matches)
			if mutual {
				err = matcher.ResolveAllMutual()
			} else {
				err = matcher.ResolveAll()
			}
			if err != nil {
				return err
			}

			if err := ctx.saveMatches(matches); err != nil {
				return err
			}
			fmt.Printf("resolved %d signatures into %d match entries\n", collection.Len(), matches.Len())
			return nil
		},
	}

	cmd.Flags().BoolVar(&mutual, "mutual", false, "Record only mutual nearest-neighbor pairs")
	return cmd
}
