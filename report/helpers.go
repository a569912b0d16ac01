package report

import(
	"fmt"
	"html"
	"net/url"

	ldb "github.com/skypies/launchdb"
)

// A few helper functions to make writing report routines a bit less cut-n-pasto

// SiteLink links to the dashboard, preselecting the launch's site and the report's range.
func (r *Report)SiteLink(l ldb.Launch) string {
	v := url.Values{}
	v.Set("site", l.Site)
	v.Set("lo", fmt.Sprintf("%.0f", r.Options.Range.Lo))
	v.Set("hi", fmt.Sprintf("%.0f", r.Options.Range.Hi))
	return fmt.Sprintf("<a href=\"/?%s\">%s</a>", html.EscapeString(v.Encode()), html.EscapeString(l.Site))
}

func Code(s string) string { return "<code>" + html.EscapeString(s) + "</code>" }

func percent(n, d int) float64 {
	if d == 0 { return 0 }
	return 100.0 * float64(n) / float64(d)
}
