package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skypies/launchdb/chart"
	"github.com/skypies/launchdb/fpdf"
)

func newPdfCmd(gf *globalFlags) *cobra.Command {
	sf := &selectionFlags{}
	var output string

	cmd := &cobra.Command{
		Use:   "pdf",
		Short: "Write both charts to a PDF page",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg,d,err := gf.loadDashboard(cmd.Context())
			if err != nil { return err }

			pie := chart.SuccessPie(d.Launches, sf.Site)
			rng := sf.Range(cmd, d.Launches).ClampTo(d.Layout.Slider.Extent())
			sc := chart.PayloadScatter(d.Launches, sf.Site, rng)

			f,err := os.Create(output)
			if err != nil { return err }
			if err := fpdf.WriteDashboard(f, cfg.Title, pie, sc); err != nil {
				f.Close()
				return fmt.Errorf("pdf: %w", err)
			}
			if err := f.Close(); err != nil { return err }

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d points)\n", output, sc.NumPoints())
			return nil
		},
	}
	addSelectionFlags(cmd, sf, true)
	cmd.Flags().StringVarP(&output, "output", "o", "launches.pdf", "output file")

	return cmd
}
