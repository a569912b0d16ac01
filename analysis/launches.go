package analysis

import(
	"fmt"
	"html"

	ldb "github.com/skypies/launchdb"
	"github.com/skypies/launchdb/report"
)

func init() {
	report.HandleReport("launches", LaunchList, "Every launch matching {site} and {payload range}")
}

func LaunchList(r *report.Report, l ldb.Launch) (report.LaunchReportOutcome, error) {
	r.SetHeaders([]string{"Flight Number", "Launch Site", "Payload Mass (kg)", "Booster Version",
		"Booster Version Category", "class"})

	textRow := []string{
		flightNumber(l),
		l.Site,
		fmt.Sprintf("%.2f", l.PayloadKG),
		l.BoosterVersion,
		l.BoosterCategory,
		l.Class.Label(),
	}

	if r.Options.MaxRows > 0 && len(r.RowsHTML) >= r.Options.MaxRows {
		r.I["[H] rows left out of the HTML table"]++
		r.AddRow(nil, &textRow)
		return report.Accepted, nil
	}

	htmlRow := []string{
		flightNumber(l),
		r.SiteLink(l),
		kg(l.PayloadKG),
		report.Code(l.BoosterVersion),
		html.EscapeString(l.BoosterCategory),
		outcomeCell(l),
	}
	r.AddRow(&htmlRow, &textRow)

	return report.Accepted, nil
}

func flightNumber(l ldb.Launch) string {
	if l.FlightNumber == 0 { return "" }
	return fmt.Sprintf("%d", l.FlightNumber)
}
