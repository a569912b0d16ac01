package fpdf

import (
	"fmt"
	"math"

	"github.com/jung-kurt/gofpdf"
)

// Describes a grid we're going to plot over, and the location of its top-left corner in PDF space
type BaseGrid struct {
	*gofpdf.Fpdf        // Embed the thing we're writing to

	// Describe the portion of PDF page space the grid will be drawn over (labels go outside of this)
	OffsetU     float64 // where the origin (top-left) should be, in PDF coords
	OffsetV     float64 // where the origin (top-left) should be, in PDF coords
	W,H         float64 // width and height of the grid, in PDF units (should be mm)

	// Control how (x,y) vals are mapped into (u,v) vals; the origin is bottom-left
	MinX,MinY,MaxX,MaxY float64 // the range of values that should be scaled onto the grid.

	// Where to draw gridlines, and how to label them. Ticks outside [Min,Max] are skipped.
	XTicks, YTicks     []float64
	XTickFmt, YTickFmt string  // Will be passed a float64 via fmt.Sprintf; blank==none
	YTickLabels        map[float64]string // overrides YTickFmt for specific ticks

	XLabel, YLabel     string

	// Other formatting
	LineColor []int // rgb, each [0,255] - frame, axis labels and Y tick labels
}

// {{{ bg.U, V, UV

// the bools are whether the coords are out-of-bounds for the grid.
func (bg BaseGrid)U(x float64) (float64, bool) {
	// Scale the X value to [0.0, 1.0], then map into PDF coords
	xRatio := (x - bg.MinX) / (bg.MaxX - bg.MinX)
	u := bg.OffsetU + (xRatio * bg.W)
	return u, xRatio<0 || xRatio>1
}

func (bg BaseGrid)V(y float64) (float64, bool) {
	yRatio := (y - bg.MinY) / (bg.MaxY - bg.MinY)
	v := bg.OffsetV + (bg.H - (yRatio * bg.H))  // PDF's v axis runs down the page
	return v, yRatio<0 || yRatio>1
}

func (bg BaseGrid)UV(x,y float64) (float64, float64, bool) {
	u,oobU := bg.U(x)
	v,oobV := bg.V(y)
	return u, v, (oobU || oobV)
}

// }}}
// {{{ bg.MoveBy

func (bg BaseGrid)MoveBy(u,v float64) {
	currU,currV := bg.GetXY()
	bg.Fpdf.MoveTo(currU+u, currV+v)
}

// }}}
// {{{ bg.MaybeSet{Draw|Text}Color

func (bg BaseGrid)MaybeSetDrawColor() {
	if len(bg.LineColor) == 3 {
		bg.SetDrawColor(bg.LineColor[0], bg.LineColor[1], bg.LineColor[2])
	}
}

func (bg BaseGrid)MaybeSetTextColor() {
	if len(bg.LineColor) == 3 {
		bg.SetTextColor(bg.LineColor[0], bg.LineColor[1], bg.LineColor[2])
	}
}

// }}}

// {{{ bg.MoveTo, LineTo, Point

// We submit coords in gridspace (e.g. x,y), and the grid transforms them into PDFspace.
func (bg BaseGrid)MoveTo(x,y float64) bool {
	u,v,oob := bg.UV(x,y)
	bg.Fpdf.MoveTo(u,v)
	return oob
}

func (bg BaseGrid)LineTo(x,y float64) bool {
	u,v,oob := bg.UV(x,y)
	bg.Fpdf.LineTo(u,v)
	return oob
}

// Point draws a filled circle of radius r (in mm) at (x,y). Points outside the grid are skipped,
// and the return value says whether it was drawn.
func (bg BaseGrid)Point(x,y,r float64) bool {
	u,v,oob := bg.UV(x,y)
	if oob { return false }
	bg.Circle(u, v, r, "FD")
	return true
}

// }}}

// {{{ NiceStep, XTicksEvery

// MaxTicks caps how many gridlines a single axis will ever get.
const MaxTicks = 50

// NiceStep picks a 1, 2, 2.5 or 5 (times a power of ten) step that puts roughly n ticks
// over [min,max]. Zero means no sensible step exists.
func NiceStep(min, max float64, n int) float64 {
	width := max - min
	if n <= 0 || width <= 0 || math.IsInf(width, 0) || math.IsNaN(width) { return 0 }

	raw := width / float64(n)
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	for _,m := range []float64{1, 2, 2.5, 5} {
		if raw <= m*mag { return m*mag }
	}
	return 10*mag
}

// XTicksEvery returns the multiples of step that lie in [min,max], stopping at MaxTicks.
func XTicksEvery(min, max, step float64) []float64 {
	ticks := []float64{}
	if step <= 0 || !isFinite(min) || !isFinite(max) || !isFinite(step) { return ticks }

	first := math.Ceil(min/step)
	for i := 0; i < MaxTicks; i++ {
		x := (first + float64(i)) * step
		if x > max { break }
		ticks = append(ticks, x)
	}
	return ticks
}

func isFinite(f float64) bool { return !math.IsInf(f, 0) && !math.IsNaN(f) }

// }}}
// {{{ bg.DrawFrame

func (bg BaseGrid)DrawFrame() {
	bg.SetLineWidth(0.2)
	bg.SetDrawColor(0x80, 0x80, 0x80)
	bg.MaybeSetDrawColor()
	bg.Rect(bg.OffsetU, bg.OffsetV, bg.W, bg.H, "D")
}

// }}}
// {{{ bg.DrawGridlines

func (bg BaseGrid)DrawGridlines() {
	bg.SetFont("Arial", "", 8)
	bg.SetLineWidth(0.03)
	bg.SetDrawColor(0xe0, 0xe0, 0xe0)

	for _,x := range bg.XTicks {
		if x < bg.MinX || x > bg.MaxX { continue }
		bg.MoveTo(x, bg.MinY)
		bg.LineTo(x, bg.MaxY)
		bg.DrawPath("D")

		if bg.XTickFmt != "" {
			bg.MoveTo(x,bg.MinY)
			bg.MoveBy(-8, 1)  // Offset in MM
			bg.SetTextColor(0,0,0)
			bg.CellFormat(16, 4, fmt.Sprintf(bg.XTickFmt, x), "", 0, "C", false, 0, "")
		}
	}

	for _,y := range bg.YTicks {
		if y < bg.MinY || y > bg.MaxY { continue }
		bg.MoveTo(bg.MinX, y)
		bg.LineTo(bg.MaxX, y)
		bg.DrawPath("D")

		label := ""
		if l,exists := bg.YTickLabels[y]; exists {
			label = l
		} else if bg.YTickFmt != "" {
			label = fmt.Sprintf(bg.YTickFmt, y)
		}
		if label != "" {
			bg.MoveTo(bg.MinX, y)
			bg.MoveBy(-19, -2)
			bg.MaybeSetTextColor()
			bg.CellFormat(18, 4, label, "", 0, "R", false, 0, "")
		}
	}
}

// }}}
// {{{ bg.DrawAxisLabels

func (bg BaseGrid)DrawAxisLabels() {
	bg.SetFont("Arial", "", 9)
	bg.SetTextColor(0,0,0)
	bg.MaybeSetTextColor()

	if bg.XLabel != "" {
		bg.Fpdf.MoveTo(bg.OffsetU, bg.OffsetV+bg.H+6)
		bg.CellFormat(bg.W, 5, bg.XLabel, "", 0, "C", false, 0, "")
	}
	if bg.YLabel != "" {
		bg.Fpdf.MoveTo(bg.OffsetU-20, bg.OffsetV-6)
		bg.CellFormat(20, 5, bg.YLabel, "", 0, "R", false, 0, "")
	}
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
