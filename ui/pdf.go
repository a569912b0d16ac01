package ui

import(
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"

	ldb "github.com/skypies/launchdb"
	"github.com/skypies/launchdb/chart"
	"github.com/skypies/launchdb/fpdf"
)

// /pdf?site=..&lo=..&hi=..  (the range is clamped to the slider/data extent)
func (d *Dashboard)pdfHandler(ctx context.Context, ls ldb.LaunchSet, w http.ResponseWriter, r *http.Request) {
	opt,_ := GetUIOptions(ctx)

	pie := chart.SuccessPie(ls, opt.Site)
	rng := opt.Range.ClampTo(d.Layout.Slider.Extent())
	sc := chart.PayloadScatter(ls, opt.Site, rng)

	// Render fully before writing anything, so a failure can still be a 500
	var buf bytes.Buffer
	if err := fpdf.WriteDashboard(&buf, d.Layout.Title, pie, sc); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("launches-%s-%.0f:%.0f.pdf",
		strings.ReplaceAll(strings.ToLower(opt.Site), " ", "-"), rng.Lo, rng.Hi)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("inline; filename=\"%s\"", filename))
	w.Write(buf.Bytes())
}
