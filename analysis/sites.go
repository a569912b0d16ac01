package analysis

import(
	"fmt"

	ldb "github.com/skypies/launchdb"
	"github.com/skypies/launchdb/ref"
	"github.com/skypies/launchdb/report"
)

func init() {
	report.HandleReport("sites", SiteTally, "Per launch site: launches, success rate, nearest other site")
	report.SummarizeReport("sites", SiteSummary)
}

func SiteTally(r *report.Report, l ldb.Launch) (report.LaunchReportOutcome, error) {
	if _,exists := r.Blobs["sites"]; !exists {
		r.Blobs["sites"] = ldb.LaunchSet{}
	}
	r.Blobs["sites"] = append(r.Blobs["sites"].(ldb.LaunchSet), l)
	return report.Accepted, nil
}

func SiteSummary(r *report.Report) {
	r.SetHeaders([]string{"Launch Site", "Launches", "Successes", "Success rate (%)",
		"Nearest site", "Distance (km)"})

	blob,exists := r.Blobs["sites"]
	if !exists { return }

	for _,si := range ref.SiteInfos(blob.(ldb.LaunchSet)) {
		dist := ""
		if si.NearestSite != "" { dist = fmt.Sprintf("%.1f", si.NearestKM) }

		textRow := []string{
			si.Name,
			fmt.Sprintf("%d", si.Launches),
			fmt.Sprintf("%d", si.Successes),
			fmt.Sprintf("%.1f", si.SuccessRate()),
			si.NearestSite,
			dist,
		}
		htmlRow := []string{
			r.SiteLink(ldb.Launch{Site:si.Name}),
			textRow[1], textRow[2], textRow[3],
			report.Code(si.NearestSite),
			dist,
		}
		r.AddRow(&htmlRow, &textRow)
	}
}
