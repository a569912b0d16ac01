package ui

import(
	"context"
	"net/http"

	ldb "github.com/skypies/launchdb"
	"github.com/skypies/launchdb/chart"
	"github.com/skypies/launchdb/ref"
)

// {{{ pieHandler

// /api/pie?site=KSC+LC-39A
func pieHandler(ctx context.Context, ls ldb.LaunchSet, w http.ResponseWriter, r *http.Request) {
	opt,_ := GetUIOptions(ctx)
	writeJSON(w, chart.SuccessPie(ls, opt.Site).Figure())
}

// }}}
// {{{ scatterHandler

// /api/scatter?site=All+Sites&lo=2500&hi=7500
func scatterHandler(ctx context.Context, ls ldb.LaunchSet, w http.ResponseWriter, r *http.Request) {
	opt,_ := GetUIOptions(ctx)
	writeJSON(w, chart.PayloadScatter(ls, opt.Site, opt.Range).Figure())
}

// }}}
// {{{ d.sitesHandler

type siteJSON struct {
	Name        string   `json:"name"`
	Lat         *float64 `json:"lat,omitempty"`
	Long        *float64 `json:"long,omitempty"`
	Launches    int      `json:"launches"`
	Successes   int      `json:"successes"`
	NearestSite string   `json:"nearest_site,omitempty"`
	NearestKM   float64  `json:"nearest_km,omitempty"`
}

// /api/sites
func (d *Dashboard)sitesHandler(ctx context.Context, ls ldb.LaunchSet, w http.ResponseWriter, r *http.Request) {
	sites := []siteJSON{}
	for _,si := range ref.SiteInfos(ls) {
		sj := siteJSON{
			Name: si.Name,
			Launches: si.Launches,
			Successes: si.Successes,
			NearestSite: si.NearestSite,
			NearestKM: si.NearestKM,
		}
		if si.Known {
			lat,long := si.Latlong.Lat, si.Latlong.Long
			sj.Lat, sj.Long = &lat, &long
		}
		sites = append(sites, sj)
	}

	writeJSON(w, map[string]interface{}{
		"options": d.Layout.Sites,
		"sites": sites,
	})
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
