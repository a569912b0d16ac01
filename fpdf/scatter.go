package fpdf

import(
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/skypies/launchdb/chart"
)

// Class labels for the y axis, and the colour for the frame and axis labels.
var(
	ClassTickLabels = map[float64]string{0:"0 (failure)", 1:"1 (success)"}
	AxisColor       = []int{0x50, 0x3D, 0x36}
)

// ScatterGrid lays out a BaseGrid for the chart's payload range. The y axis only ever holds
// the two outcome classes, so it gets some headroom either side. A range that can't be drawn
// (non-finite, or too wide to subtract) falls back to 0-10000kg.
func ScatterGrid(pdf *gofpdf.Fpdf, sc chart.ScatterChart) BaseGrid {
	minX,maxX := sc.Range.Lo, sc.Range.Hi
	if maxX <= minX { maxX = minX + 1000 }
	if !isFinite(minX) || !isFinite(maxX) || !isFinite(maxX-minX) || maxX <= minX {
		minX,maxX = 0, 10000
	}

	return BaseGrid{
		Fpdf: pdf,
		OffsetU: ScatterOffsetU,
		OffsetV: ScatterOffsetV,
		W: ScatterWidth,
		H: ScatterHeight,
		MinX: minX,
		MaxX: maxX,
		MinY: -0.25,
		MaxY: 1.25,
		XTicks: XTicksEvery(minX, maxX, NiceStep(minX, maxX, 10)),
		YTicks: []float64{0, 1},
		XTickFmt: "%.0f",
		YTickFmt: "%.0f",
		YTickLabels: ClassTickLabels,
		XLabel: sc.XLabel,
		YLabel: sc.YLabel,
		LineColor: AxisColor,
	}
}

func DrawScatter(pdf *gofpdf.Fpdf, sc chart.ScatterChart) int {
	drawSubtitle(pdf, ScatterOffsetU, ScatterOffsetV-14, ScatterWidth, sc.Title)

	bg := ScatterGrid(pdf, sc)
	bg.DrawFrame()
	bg.DrawGridlines()
	bg.DrawAxisLabels()

	n := 0
	pdf.SetLineWidth(0.1)
	for i,s := range sc.Series {
		rgb := chart.RGB(chart.Color(i))
		pdf.SetFillColor(rgb[0], rgb[1], rgb[2])
		pdf.SetDrawColor(0x40, 0x40, 0x40)
		for _,p := range s.Points {
			if bg.Point(p.X, p.Y, PointRadius) { n++ }
		}
	}

	if sc.LegendTitle != "" && len(sc.Series) > 0 {
		pdf.SetFont("Arial", "B", 9)
		pdf.SetTextColor(0,0,0)
		pdf.MoveTo(ScatterOffsetU, ScatterLegendV)
		pdf.Cell(60, LegendRowHeight, sc.LegendTitle)
	}
	for i,s := range sc.Series {
		v := ScatterLegendV + float64(i+1)*LegendRowHeight
		drawLegendEntry(pdf, ScatterOffsetU, v, chart.RGB(chart.Color(i)), fmt.Sprintf("%s (%d)", s.Name, len(s.Points)))
	}

	return n
}
