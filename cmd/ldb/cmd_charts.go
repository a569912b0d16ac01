package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skypies/launchdb/chart"
)

func newPieCmd(gf *globalFlags) *cobra.Command {
	sf := &selectionFlags{}
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "pie",
		Short: "Print the success pie chart for a site (or all sites)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_,d,err := gf.loadDashboard(cmd.Context())
			if err != nil { return err }

			pie := chart.SuccessPie(d.Launches, sf.Site)
			if asJSON {
				return writeJSON(cmd, pie.Figure())
			}
			fmt.Fprint(cmd.OutOrStdout(), pie)
			return nil
		},
	}
	addSelectionFlags(cmd, sf, false)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the figure JSON instead")

	return cmd
}

func newScatterCmd(gf *globalFlags) *cobra.Command {
	sf := &selectionFlags{}
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "scatter",
		Short: "Print the payload vs. outcome scatter chart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_,d,err := gf.loadDashboard(cmd.Context())
			if err != nil { return err }

			sc := chart.PayloadScatter(d.Launches, sf.Site, sf.Range(cmd, d.Launches))
			if asJSON {
				return writeJSON(cmd, sc.Figure())
			}
			fmt.Fprint(cmd.OutOrStdout(), sc)
			return nil
		},
	}
	addSelectionFlags(cmd, sf, true)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the figure JSON instead")

	return cmd
}

func writeJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", " ")
	return enc.Encode(v)
}
