package ui

import(
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/skypies/util/widget"

	ldb "github.com/skypies/launchdb"
	"github.com/skypies/launchdb/report"
)

// Common parameters for UI rendering, as parsed from CGI params. These are the whole of the
// dashboard's state; the charts are a pure function of these plus the launch table.
type UIOptions struct {
	Site        string           // ldb.AllSites if not specified
	Range       ldb.PayloadRange // inclusive

	ReportName  string
	MaxRows     int
	CSV         bool             // &format=csv
	Download    bool             // CSV as an attachment, rather than inline
}

func (opt UIOptions)String() string {
	return fmt.Sprintf("site=%q payload=%s rep=%q maxrows=%d csv=%v download=%v", opt.Site, opt.Range,
		opt.ReportName, opt.MaxRows, opt.CSV, opt.Download)
}

func (opt UIOptions)ReportOptions() report.Options {
	return report.Options{
		Name: opt.ReportName,
		Site: opt.Site,
		Range: opt.Range,
		MaxRows: opt.MaxRows,
		ReportLogLevel: report.INFO,
	}
}

// {{{ FormValueUIOptions

// Parse a full set of UI Options. The payload range defaults to dflt, and can be given as
//  &lo=2500&hi=7500    OR    &range=2500,7500
// with lo/hi taking priority over range. A malformed number is an error.
func FormValueUIOptions(r *http.Request, dflt ldb.PayloadRange) (UIOptions, error) {
	opt := UIOptions{
		Site: strings.TrimSpace(r.FormValue("site")),
		Range: dflt,
		ReportName: r.FormValue("rep"),
		MaxRows: int(widget.FormValueInt64(r, "maxrows")),
		CSV: r.FormValue("format") == "csv",
		Download: widget.FormValueCheckbox(r, "download"),
	}
	if opt.Site == "" { opt.Site = ldb.AllSites }

	if vals := nonEmpty(widget.FormValueCommaSepStrings(r, "range")); len(vals) > 0 {
		if len(vals) != 2 {
			return opt, fmt.Errorf("range: want 'lo,hi', got %q", r.FormValue("range"))
		}
		var err error
		if opt.Range.Lo,err = parseKG("range", vals[0]); err != nil { return opt, err }
		if opt.Range.Hi,err = parseKG("range", vals[1]); err != nil { return opt, err }
	}

	if s := r.FormValue("lo"); s != "" {
		kg,err := parseKG("lo", s)
		if err != nil { return opt, err }
		opt.Range.Lo = kg
	}
	if s := r.FormValue("hi"); s != "" {
		kg,err := parseKG("hi", s)
		if err != nil { return opt, err }
		opt.Range.Hi = kg
	}

	if opt.MaxRows < 0 {
		return opt, fmt.Errorf("maxrows: %d is negative", opt.MaxRows)
	}

	return opt, nil
}

// }}}

func parseKG(name, s string) (float64, error) {
	kg,err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(kg) || math.IsInf(kg, 0) {
		return 0, fmt.Errorf("%s: %q is not a number", name, s)
	}
	return kg, nil
}

func nonEmpty(in []string) []string {
	out := []string{}
	for _,s := range in {
		if s = strings.TrimSpace(s); s != "" { out = append(out, s) }
	}
	return out
}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
