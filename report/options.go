package report

// All reports share this same options struct. The UI fills it in from the same form values
// that drive the charts, plus the report name.

import(
	"fmt"
	"net/url"

	ldb "github.com/skypies/launchdb"
)

type Options struct {
	Name             string
	Site             string           // may be ldb.AllSites
	Range            ldb.PayloadRange // inclusive
	MaxRows          int              // cap on HTML rows; zero means no cap. CSV output is never capped.
	ReportLogLevel
}

func (o Options)String() string {
	return fmt.Sprintf("rep=%s site=%q payload=%s", o.Name, o.Site, o.Range)
}

// A bare minimum of args, so the report page can link back to the charts for the same selection
func (o Options)ToCGIArgs() string {
	v := url.Values{}
	v.Set("rep", o.Name)
	v.Set("site", o.Site)
	v.Set("lo", fmt.Sprintf("%.0f", o.Range.Lo))
	v.Set("hi", fmt.Sprintf("%.0f", o.Range.Hi))
	return v.Encode()
}
