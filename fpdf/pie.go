package fpdf

import(
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/skypies/launchdb/chart"
)

// DrawPie draws the slices clockwise from twelve o'clock, in the order given (the same as the
// browser draws them), with a legend underneath.
func DrawPie(pdf *gofpdf.Fpdf, pie chart.PieChart) {
	drawSubtitle(pdf, PieCenterU-PieRadius, PieCenterV-PieRadius-12, 2*PieRadius, pie.Title)

	total := pie.Total()
	if total <= 0 {
		pdf.SetFont("Arial", "", 10)
		pdf.SetTextColor(0x80,0x80,0x80)
		pdf.MoveTo(PieCenterU-PieRadius, PieCenterV-3)
		pdf.CellFormat(2*PieRadius, 6, "No data", "", 0, "C", false, 0, "")
		return
	}

	pdf.SetLineWidth(0.3)
	pdf.SetDrawColor(0xff, 0xff, 0xff)

	// gofpdf angles run counter-clockwise from three o'clock
	deg := 90.0
	for i,s := range pie.Slices {
		sweep := 360.0 * s.Value / total
		if sweep <= 0 { continue }

		rgb := chart.RGB(chart.Color(i))
		pdf.SetFillColor(rgb[0], rgb[1], rgb[2])
		pdf.MoveTo(PieCenterU, PieCenterV)
		pdf.ArcTo(PieCenterU, PieCenterV, PieRadius, PieRadius, 0, deg-sweep, deg)
		pdf.ClosePath()
		pdf.DrawPath("FD")
		deg -= sweep
	}

	for i,s := range pie.Slices {
		text := fmt.Sprintf("%s: %.0f (%.1f%%)", s.Label, s.Value, 100.0*s.Value/total)
		drawLegendEntry(pdf, PieLegendU, PieLegendV+float64(i)*LegendRowHeight, chart.RGB(chart.Color(i)), text)
	}
}
