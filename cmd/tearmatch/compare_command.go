package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"tearmatch/internal/match"
)

func newCompareCommand(ctx *commandContext) *cobra.Command {
	var nameFlag string
	var noInsert bool

	cmd := &cobra.Command{
		Use:   "compare <image>",
		Short: "Compare one fragment against the collection",
		Long: `Extract the photo's signature, find the nearest signature in the
collection, and record the match in both directions. Unless --no-insert is
given, the new signature is added to the collection after the comparison,
so it never matches itself.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			collection, matches, err := ctx.loadState()
			if err != nil {
				return err
			}

			img, err := ctx.loader.Load(args[0])
			if err != nil {
				return err
			}
			sig, err := ctx.extractor().Extract(img)
			if err != nil {
				return err
			}

			name := nameFlag
			if name == "" {
				name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0]))
			}

			matcher := match.NewMatcherWith(collection, matches)
			best, found, err := matcher.Compare(name, sig, !noInsert)
			if err != nil {
				return err
			}

			if !noInsert {
				if err := ctx.saveCollection(collection); err != nil {
					return err
				}
			}
			if found {
				if err := ctx.saveMatches(matches); err != nil {
					return err
				}
				fmt.Printf("%s matches %s\n", name, best)
			} else {
				fmt.Println("collection is empty, no matches found")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&nameFlag, "name", "n", "", "Entry name (default: file stem)")
	cmd.Flags().BoolVar(&noInsert, "no-insert", false, "Compare only, do not add the signature to the collection")
	return cmd
}
