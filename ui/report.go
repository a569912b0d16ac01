package ui

import(
	"context"
	"fmt"
	"net/http"

	ldb "github.com/skypies/launchdb"
	"github.com/skypies/launchdb/report"
)

// {{{ d.reportHandler

// /report?rep=launches&site=..&lo=..&hi=..[&format=csv[&download=1]]
func (d *Dashboard)reportHandler(ctx context.Context, ls ldb.LaunchSet, w http.ResponseWriter, r *http.Request) {
	opt,_ := GetUIOptions(ctx)

	rep,err := report.SetupReport(opt.ReportOptions())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := rep.Run(ls); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if r.FormValue("debug") != "" {
		str := ""
		for _,row := range rep.MetadataTable() {
			str += fmt.Sprintf("-> %v <-\n", row)
		}
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(fmt.Sprintf("OK\n%s\n%s\n--\n%s\n--\n%s", rep.Options, rep.Options.ToCGIArgs(), str, rep.Log)))
		return
	}

	if opt.CSV {
		rep.OutputAsCSV(w, opt.Download)
		return
	}

	var params = map[string]interface{}{
		"R": rep,
		"Opt": opt,
		"Metadata": rep.MetadataTable(),
		"Reports": report.ListReports(),
		"Sites": d.Layout.Sites,
		"Title": d.Layout.Title,
	}
	if err := d.Templates.ExecuteTemplate(w, "report", params); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
