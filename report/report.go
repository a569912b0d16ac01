package report

import(
	"fmt"
	"html"
	"html/template"
	"sort"
	"time"

	"github.com/skypies/util/histogram"

	ldb "github.com/skypies/launchdb"
)

type LaunchReportOutcome int
const(
	RejectedByFilter LaunchReportOutcome = iota
	RejectedByReport
	Accepted
)
type ReportFunc func(*Report, ldb.Launch)(LaunchReportOutcome,error)
type SummarizeFunc func(*Report)

type ReportLogLevel int
const(
	DEBUG = iota
	INFO
)

type Report struct {
	Name              string
	Options           // embedded
	Func              ReportFunc
	SummarizeFunc     // embedded, but just to avoid a more confusing name

	// Private state a report might accumulate
	Blobs map[string]interface{}

	// Output state
	RowsHTML  [][]template.HTML
	RowsText  [][]string

	HeadersText []string

	I         map[string]int
	F         map[string]float64
	S         map[string]string
	H         histogram.Histogram // payload masses of the matched launches, in kg

	Stats histogram.Set // internal performance counters
	Log string
}

func BlankReport() Report {
	return Report{
		I: map[string]int{},
		F: map[string]float64{},
		S: map[string]string{},
		H: histogram.Histogram{ValMin:0, ValMax:10000, NumBuckets:20},
		RowsHTML: [][]template.HTML{},
		RowsText: [][]string{},
		HeadersText: []string{},
		Blobs: map[string]interface{}{},
		Stats: histogram.NewSet(10000),  // maxval, in micros
	}
}

func (r *Report)Logger(level ReportLogLevel, s string) {
	if level < r.Options.ReportLogLevel { return }
	r.Log += s
}
func (r *Report)Infof(s string,args ...interface{}) { r.Logger(INFO, fmt.Sprintf(s,args...)) }
func (r *Report)Debugf(s string,args ...interface{}) { r.Logger(DEBUG, fmt.Sprintf(s,args...)) }
func (r *Report)Info(s string) { r.Infof(s) }
func (r *Report)Debug(s string) { r.Debugf(s) }

func (r *Report)SetHeaders(headers []string) {
	if len(r.HeadersText) == 0 { r.HeadersText = headers }
}
func (r *Report)AddRow(html *[]string, text *[]string) {
	if html != nil {
		htmlRow := []template.HTML{}
		for _,s  := range *html { htmlRow = append(htmlRow, template.HTML(s)) }
		r.RowsHTML = append(r.RowsHTML, htmlRow)
	}
	if text != nil { r.RowsText = append(r.RowsText, *text) }
}

// {{{ r.PreProcess

// Ensure the launch matches the dashboard filters (payload range, then site). This is the
// same selection the scatter chart plots.
func (r *Report)PreProcess(l ldb.Launch) bool {
	r.I["[A] Considered"]++

	if !r.Options.Range.Contains(l.PayloadKG) {
		r.I[fmt.Sprintf("[B] Eliminated: payload outside %s", r.Options.Range)]++
		return false
	}
	if r.Options.Site != ldb.AllSites && l.Site != r.Options.Site {
		r.I["[B] Eliminated: other launch site"]++
		return false
	}

	r.I["[C] <b>Matched</b>"]++
	if l.Succeeded() {
		r.I["[D] Successes"]++
	} else {
		r.I["[D] Failures"]++
	}
	r.I["[E] site: "+html.EscapeString(l.Site)]++
	r.I["[F] booster: "+html.EscapeString(l.BoosterCategory)]++

	r.H.Add(histogram.ScalarVal(int(l.PayloadKG)))

	return true
}

// }}}
// {{{ r.Process, Run

func (r *Report)Process(l ldb.Launch) (LaunchReportOutcome, error) {
	if !r.PreProcess(l) { return RejectedByFilter,nil }
	if r.Func == nil { return Accepted,nil }
	return r.Func(r, l)
}

// Run feeds every launch through the report, then summarizes.
func (r *Report)Run(ls ldb.LaunchSet) error {
	r.Infof("**** Stage: run over %d launches, site=%q, payload=%s\n", len(ls), r.Options.Site,
		r.Options.Range)

	for _,l := range ls {
		tStart := time.Now()
		outcome,err := r.Process(l)
		r.Stats.RecordValue("process", time.Since(tStart).Nanoseconds()/1000)
		if err != nil {
			return fmt.Errorf("report %s: %s: %w", r.Name, l, err)
		}
		if outcome == RejectedByReport {
			r.Debugf("rejected by report: %s\n", l)
		}
	}

	r.FinishSummary()
	return nil
}

func (r *Report)FinishSummary() {
	if matched := r.I["[C] <b>Matched</b>"]; matched > 0 {
		r.F["[G] Success rate (%)"] = percent(r.I["[D] Successes"], matched)
	}

	r.Info("**** Stage: all done\n")
	r.Debug("* (DEBUG)\n")
	if r.SummarizeFunc != nil { r.SummarizeFunc(r) }
	r.Infof("Stats (in micros):-\n%s", r.Stats)
}

// }}}
// {{{ r.Matched, Successes, Failures

func (r *Report)Matched() int   { return r.I["[C] <b>Matched</b>"] }
func (r *Report)Successes() int { return r.I["[D] Successes"] }
func (r *Report)Failures() int  { return r.I["[D] Failures"] }

// }}}
// {{{ r.MetadataTable

func (r *Report)MetadataTable()[][]template.HTML {
	all := map[string]string{}

	for k,v := range r.I { all[k] = fmt.Sprintf("%d", v) }
	for k,v := range r.F { all[k] = fmt.Sprintf("%.1f", v) }
	for k,v := range r.S { all[k] = v }

	if stats,valid := r.H.Stats(); valid {
		all["[Z] payload, <b>N</b>"] = fmt.Sprintf("%v", stats.N)
		all["[Z] payload, Mean"] = fmt.Sprintf("%.0f", stats.Mean)
		all["[Z] payload, Stddev"] = fmt.Sprintf("%.0f", stats.Stddev)
		all["[Z] payload, 50%ile"] = fmt.Sprintf("%v", stats.Percentile50)
		all["[Z] payload, 90%ile"] = fmt.Sprintf("%v", stats.Percentile90)
	}

	keys := []string{}
	for k := range all { keys = append(keys, k) }
	sort.Strings(keys)

	out := [][]template.HTML{}
	for _,k := range keys {
		out = append(out, []template.HTML{ template.HTML(k), template.HTML(all[k]) })
	}

	return out
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
