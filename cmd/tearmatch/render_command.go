package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"tearmatch/internal/imaging"
)

func newRenderCommand(ctx *commandContext) *cobra.Command {
	var outFlag string

	cmd := &cobra.Command{
		Use:   "render <image>",
		Short: "Render an extraction overlay for visual inspection",
		Long: `Run the extraction pipeline on a photo and write a PNG showing the
edge map with the interpolated tear profile drawn over it, colored by
displacement from the mean. Useful for checking thresholds against a new
batch of photos before building a collection.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := ctx.loader.Load(args[0])
			if err != nil {
				return err
			}

			res, err := ctx.extractor().Run(img)
			if err != nil {
				return err
			}

			overlay, err := imaging.RenderOverlay(res.Edges, res.Profile)
			if err != nil {
				return err
			}

			f, err := os.Create(outFlag)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := png.Encode(f, overlay); err != nil {
				return fmt.Errorf("encode overlay: %w", err)
			}

			fmt.Printf("wrote %s\n", outFlag)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outFlag, "out", "o", "overlay.png", "Output PNG path")
	return cmd
}
