package ui

import(
	ldb "github.com/skypies/launchdb"
	"github.com/skypies/launchdb/config"
)

const SitePlaceholder = "Select a Launch Site"

type DropdownOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

type Mark struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

type Slider struct {
	Min, Max, Step float64
	Marks        []Mark
	Value          ldb.PayloadRange // the initial selection
}

// Extent covers both the slider's track and the data, which is as far as a chart ever
// needs to reach.
func (s Slider)Extent() ldb.PayloadRange {
	return ldb.PayloadRange{Lo:s.Min, Hi:s.Max}.Union(s.Value)
}

// Layout is the static description of the page. It is built once, at startup.
type Layout struct {
	Title        string
	Placeholder  string
	Searchable   bool
	Sites      []DropdownOption
	DefaultSite  string
	Slider       Slider
}

// NewLayout offers AllSites first, then each site in the order it first appears in the table.
// The slider starts out selecting the table's full payload range.
func NewLayout(title string, ls ldb.LaunchSet, cs config.Slider) Layout {
	l := Layout{
		Title: title,
		Placeholder: SitePlaceholder,
		Searchable: true,
		Sites: []DropdownOption{{Label:ldb.AllSites, Value:ldb.AllSites}},
		DefaultSite: ldb.AllSites,
		Slider: Slider{
			Min: cs.Min,
			Max: cs.Max,
			Step: cs.Step,
			Marks: []Mark{},
			Value: ls.PayloadBounds(),
		},
	}

	for _,site := range ls.Sites() {
		l.Sites = append(l.Sites, DropdownOption{Label:site, Value:site})
	}
	for _,m := range cs.Marks {
		l.Slider.Marks = append(l.Slider.Marks, Mark{Value:m.Value, Label:m.Label})
	}

	return l
}
