package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skypies/launchdb/ref"
)

func newSitesCmd(gf *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "sites",
		Short: "List the launch sites, busiest first, with their nearest neighbours",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_,d,err := gf.loadDashboard(cmd.Context())
			if err != nil { return err }

			for _,si := range ref.SortedByLaunches(ref.SiteInfos(d.Launches)) {
				fmt.Fprintln(cmd.OutOrStdout(), si)
			}
			return nil
		},
	}
}
