// Package chart computes the dashboard's two figures from the launch table. Everything in
// here is a pure function of the table and the current UI state.
package chart

import(
	"fmt"

	ldb "github.com/skypies/launchdb"
)

const(
	AllSitesPieTitle = "Total Successful Launches by Site"
	ScatterTitle     = "Payload vs. Success for Launches"

	PayloadAxisLabel = "Payload Mass (kg)"
	ClassAxisLabel   = "class"
	BoosterLegend    = "Booster Version Category"
)

type Slice struct {
	Label string
	Value float64
}

type PieChart struct {
	Title   string
	Slices  []Slice
}

func (p PieChart)Total() float64 {
	t := 0.0
	for _,s := range p.Slices { t += s.Value }
	return t
}

func (p PieChart)IsEmpty() bool { return len(p.Slices) == 0 }

func (p PieChart)String() string {
	str := fmt.Sprintf("--{ %s }--\n", p.Title)
	for _,s := range p.Slices {
		pct := 0.0
		if t := p.Total(); t > 0 { pct = 100.0 * s.Value / t }
		str += fmt.Sprintf(" %-20.20s %6.0f  (%5.1f%%)\n", s.Label, s.Value, pct)
	}
	return str
}

type Point struct {
	X,Y  float64
	Text string // hover text
}

// A Series is all the points for one booster category; each series gets its own colour.
type Series struct {
	Name   string
	Points []Point
}

type ScatterChart struct {
	Title          string
	XLabel, YLabel string
	LegendTitle    string
	Range          ldb.PayloadRange // the x-range that was requested
	Series       []Series
}

func (sc ScatterChart)NumPoints() int {
	n := 0
	for _,s := range sc.Series { n += len(s.Points) }
	return n
}

func (sc ScatterChart)IsEmpty() bool { return sc.NumPoints() == 0 }

func (sc ScatterChart)String() string {
	str := fmt.Sprintf("--{ %s, %s, %d points }--\n", sc.Title, sc.Range, sc.NumPoints())
	for _,s := range sc.Series {
		str += fmt.Sprintf(" [%s] %d points\n", s.Name, len(s.Points))
		for _,p := range s.Points {
			str += fmt.Sprintf("   %8.1f %.0f  %s\n", p.X, p.Y, p.Text)
		}
	}
	return str
}

// {{{ SuccessPie

// SuccessPie is the pie-chart handler. For AllSites, it is the number of successes per site;
// for one site, it is the count of each outcome class seen at that site. An unknown site is
// not an error, it just has no slices.
func SuccessPie(ls ldb.LaunchSet, site string) PieChart {
	if site == ldb.AllSites {
		p := PieChart{Title:AllSitesPieTitle, Slices:[]Slice{}}
		for _,sc := range ls.SuccessesBySite() {
			p.Slices = append(p.Slices, Slice{Label:sc.Site, Value:float64(sc.Count)})
		}
		return p
	}

	p := PieChart{Title:fmt.Sprintf("Success vs. Failure for %s", site), Slices:[]Slice{}}
	for _,oc := range ls.BySite(site).OutcomeCounts() {
		p.Slices = append(p.Slices, Slice{Label:oc.Outcome.Label(), Value:float64(oc.Count)})
	}
	return p
}

// }}}
// {{{ PayloadScatter

// PayloadScatter is the scatter-chart handler: payload against outcome class, for the
// launches inside the (inclusive) payload range, optionally for just one site. There is one
// series per booster category, in order of first appearance.
func PayloadScatter(ls ldb.LaunchSet, site string, r ldb.PayloadRange) ScatterChart {
	sc := ScatterChart{
		Title: ScatterTitle,
		XLabel: PayloadAxisLabel,
		YLabel: ClassAxisLabel,
		LegendTitle: BoosterLegend,
		Range: r,
		Series: []Series{},
	}

	filtered := ls.InPayloadRange(r).BySite(site)

	index := map[string]int{}
	for _,l := range filtered {
		i,exists := index[l.BoosterCategory]
		if !exists {
			i = len(sc.Series)
			index[l.BoosterCategory] = i
			sc.Series = append(sc.Series, Series{Name:l.BoosterCategory})
		}
		sc.Series[i].Points = append(sc.Series[i].Points, Point{
			X: l.PayloadKG,
			Y: float64(l.Class),
			Text: hoverText(l),
		})
	}

	return sc
}

func hoverText(l ldb.Launch) string {
	str := l.Site
	if l.FlightNumber > 0 {
		str = fmt.Sprintf("Flight %d, %s", l.FlightNumber, str)
	}
	if l.BoosterVersion != "" {
		str += " (" + l.BoosterVersion + ")"
	}
	return str
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
