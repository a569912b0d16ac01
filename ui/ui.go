// Package ui serves the dashboard: the page itself, the JSON figure endpoints the page calls
// whenever a control changes, and the report and PDF views of the same selection.
package ui

import(
	"embed"
	"html/template"
	"net/http"

	_ "github.com/skypies/launchdb/analysis" // populate the reports registry
	ldb "github.com/skypies/launchdb"
)

//go:embed templates/*.html
var templateFS embed.FS

// Dashboard holds everything the handlers need. None of it changes after NewDashboard.
type Dashboard struct {
	Launches  ldb.LaunchSet
	Layout    Layout
	Templates *template.Template
}

func NewDashboard(ls ldb.LaunchSet, layout Layout) (*Dashboard, error) {
	tmpl,err := template.New("").Funcs(TemplateFuncMap()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Launches: ls,
		Layout: layout,
		Templates: tmpl,
	}, nil
}

func (d *Dashboard)Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/", d.WithLaunchesOpt(d.dashboardHandler))
	mux.HandleFunc("/api/pie", d.WithLaunchesOpt(pieHandler))
	mux.HandleFunc("/api/scatter", d.WithLaunchesOpt(scatterHandler))
	mux.HandleFunc("/api/sites", d.WithLaunchesOpt(d.sitesHandler))
	mux.HandleFunc("/report", d.WithLaunchesOpt(d.reportHandler))
	mux.HandleFunc("/pdf", d.WithLaunchesOpt(d.pdfHandler))

	return WithLogging(mux)
}
