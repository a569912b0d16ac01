package ui

import(
	"context"
	"encoding/json"
	"html/template"
	"net/http"

	ldb "github.com/skypies/launchdb"
	"github.com/skypies/launchdb/chart"
)

// {{{ d.dashboardHandler

// The page is rendered with both figures already in it, for whatever the URL selects; after
// that, the page fetches new figures from /api/pie and /api/scatter.
func (d *Dashboard)dashboardHandler(ctx context.Context, ls ldb.LaunchSet, w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	opt,_ := GetUIOptions(ctx)

	pieJSON,err := json.Marshal(chart.SuccessPie(ls, opt.Site).Figure())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	scatterJSON,err := json.Marshal(chart.PayloadScatter(ls, opt.Site, opt.Range).Figure())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var params = map[string]interface{}{
		"Title": d.Layout.Title,
		"Layout": d.Layout,
		"Opt": opt,
		"NumLaunches": len(ls),
		"PieJSON": template.JS(pieJSON),
		"ScatterJSON": template.JS(scatterJSON),
	}

	if err := d.Templates.ExecuteTemplate(w, "dashboard", params); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
