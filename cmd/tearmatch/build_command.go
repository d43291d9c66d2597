package main

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"tearmatch/internal/match"
)

func newBuildCommand(ctx *commandContext) *cobra.Command {
	var nameFlag string

	cmd := &cobra.Command{
		Use:   "build <image>...",
		Short: "Extract signatures and add them to the collection",
		Long: `Extract a tear-edge signature from each photo and store it in the
signature collection without performing any comparisons. Run this over the
reference fragments (e.g. every page stub in a notebook) before comparing.

Entries are named after the photo's file stem unless --name is given. A
name that already exists in the collection gets a short unique suffix
instead of overwriting.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if nameFlag != "" && len(args) > 1 {
				return fmt.Errorf("--name only applies to a single image")
			}

			collection, _, err := ctx.loadState()
			if err != nil {
				return err
			}
			matcher := match.NewMatcherWith(collection, nil)
			extractor := ctx.extractor()

			failed := 0
			for _, path := range args {
				img, err := ctx.loader.Load(path)
				if err != nil {
					slog.Error("skipping fragment", "path", path, "error", err)
					failed++
					continue
				}
				sig, err := extractor.Extract(img)
				if err != nil {
					slog.Error("extraction failed", "path", path, "error", err)
					failed++
					continue
				}

				name := nameFlag
				if name == "" {
					name = entryName(collection, path)
				}
				matcher.Build(name, sig)
				fmt.Printf("added %s\n", name)
			}

			if err := ctx.saveCollection(collection); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d fragments failed", failed, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&nameFlag, "name", "n", "", "Entry name (single image only; default: file stem)")
	return cmd
}

// entryName derives a collection key from the photo's file stem,
// suffixing a short uuid when the stem is already taken.
func entryName(c *match.Collection, path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	if _, exists := c.Get(stem); !exists {
		return stem
	}
	return stem + "-" + uuid.NewString()[:8]
}
