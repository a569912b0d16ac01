// Provides routines to render the dashboard's charts as a PDF page
package fpdf

import(
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/skypies/launchdb/chart"
)

// https://godoc.org/github.com/jung-kurt/gofpdf

// {{{ var()

// Page layout, in mm on landscape A4 (297x210). The pie sits on the left, the scatter on the right.
var(
	PageMargin = 10.0
	TitleHeight = 12.0

	PieCenterU = 65.0
	PieCenterV = 95.0
	PieRadius = 45.0
	PieLegendU = 20.0
	PieLegendV = 150.0

	ScatterOffsetU = 150.0
	ScatterOffsetV = 40.0
	ScatterWidth = 130.0
	ScatterHeight = 100.0
	ScatterLegendV = 160.0

	PointRadius = 1.2
	LegendRowHeight = 5.0
)

// }}}

// {{{ DrawTitle

func DrawTitle(pdf *gofpdf.Fpdf, title string) {
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Arial", "B", 16)
	pdf.SetTextColor(0,0,0)
	pdf.MoveTo(PageMargin, PageMargin)
	w,_ := pdf.GetPageSize()
	pdf.CellFormat(w-2*PageMargin, TitleHeight, tr(title), "", 0, "C", false, 0, "")
}

// }}}
// {{{ drawSubtitle

func drawSubtitle(pdf *gofpdf.Fpdf, u, v, w float64, text string) {
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFont("Arial", "B", 11)
	pdf.SetTextColor(0,0,0)
	pdf.MoveTo(u, v)
	pdf.CellFormat(w, 6, tr(text), "", 0, "C", false, 0, "")
}

// }}}
// {{{ drawLegendEntry

func drawLegendEntry(pdf *gofpdf.Fpdf, u, v float64, rgb []int, text string) {
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetFillColor(rgb[0], rgb[1], rgb[2])
	pdf.Rect(u, v+0.5, 4, LegendRowHeight-1, "F")
	pdf.MoveTo(u+6, v)
	pdf.SetFont("Arial", "", 9)
	pdf.SetTextColor(0,0,0)
	pdf.Cell(60, LegendRowHeight, tr(text))
}

// }}}

// {{{ NewDashboardPdf

func NewDashboardPdf(title string, pie chart.PieChart, sc chart.ScatterChart) *gofpdf.Fpdf {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.AddPage()
	pdf.SetFont("Arial", "", 10)

	DrawTitle(pdf, title)
	DrawPie(pdf, pie)
	DrawScatter(pdf, sc)

	return pdf
}

// }}}
// {{{ WriteDashboard

func WriteDashboard(output io.Writer, title string, pie chart.PieChart, sc chart.ScatterChart) error {
	pdf := NewDashboardPdf(title, pie, sc)
	return pdf.Output(output)
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
