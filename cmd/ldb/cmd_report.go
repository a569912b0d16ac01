package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	_ "github.com/skypies/launchdb/analysis" // populate the reports registry
	"github.com/skypies/launchdb/report"
)

func newReportCmd(gf *globalFlags) *cobra.Command {
	sf := &selectionFlags{}
	var name string
	var asCSV, list, verbose bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run a report over the selected launches",
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if list {
				for _,e := range report.ListReports() {
					fmt.Fprintf(out, "%-10s %s\n", e.Name, e.Description)
				}
				return nil
			}

			_,d,err := gf.loadDashboard(cmd.Context())
			if err != nil { return err }

			rep,err := report.SetupReport(report.Options{
				Name: name,
				Site: sf.Site,
				Range: sf.Range(cmd, d.Launches),
				ReportLogLevel: report.INFO,
			})
			if err != nil { return err }
			if verbose { rep.Options.ReportLogLevel = report.DEBUG }

			if err := rep.Run(d.Launches); err != nil { return err }

			if asCSV {
				return rep.WriteCSV(out)
			}

			fmt.Fprintf(out, "--{ %s }--\n", rep.Options)
			for _,row := range rep.MetadataTable() {
				fmt.Fprintf(out, " %-44s %s\n", stripTags(string(row[0])), row[1])
			}
			fmt.Fprintf(out, "\n%s\n", strings.Join(rep.HeadersText, " | "))
			for _,row := range rep.RowsText {
				fmt.Fprintf(out, "%s\n", strings.Join(row, " | "))
			}
			if verbose {
				fmt.Fprintf(out, "\n%s", rep.Log)
			}
			return nil
		},
	}
	addSelectionFlags(cmd, sf, true)
	cmd.Flags().StringVar(&name, "rep", report.DefaultReport, "report name (see --list)")
	cmd.Flags().BoolVar(&asCSV, "csv", false, "output rows as CSV")
	cmd.Flags().BoolVar(&list, "list", false, "list the known reports")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "include the report's log")

	return cmd
}

func stripTags(s string) string {
	return strings.NewReplacer("<b>", "", "</b>", "").Replace(s)
}
