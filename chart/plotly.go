package chart

// A Figure is the JSON document that Plotly.react() wants: a list of traces, and a layout.

type Figure struct {
	Data   []Trace `json:"data"`
	Layout  Layout `json:"layout"`
}

type Trace struct {
	Type          string    `json:"type"`
	Name          string    `json:"name,omitempty"`

	// pie
	Labels        []string  `json:"labels,omitempty"`
	Values        []float64 `json:"values,omitempty"`
	Sort         *bool      `json:"sort,omitempty"`

	// scatter
	Mode          string    `json:"mode,omitempty"`
	X             []float64 `json:"x,omitempty"`
	Y             []float64 `json:"y,omitempty"`
	Text          []string  `json:"text,omitempty"`

	Marker       *Marker    `json:"marker,omitempty"`
	HoverTemplate string    `json:"hovertemplate,omitempty"`
}

type Marker struct {
	Color   string   `json:"color,omitempty"`
	Colors  []string `json:"colors,omitempty"`
	Size    int      `json:"size,omitempty"`
}

type Title struct {
	Text string `json:"text"`
}

type Axis struct {
	Title  Title     `json:"title"`
	Range  []float64 `json:"range,omitempty"`
	TickVals []float64 `json:"tickvals,omitempty"`
}

type Legend struct {
	Title Title `json:"title"`
}

type Layout struct {
	Title   Title   `json:"title"`
	XAxis  *Axis    `json:"xaxis,omitempty"`
	YAxis  *Axis    `json:"yaxis,omitempty"`
	Legend *Legend  `json:"legend,omitempty"`
}

// Figure renders the pie as a single trace. An empty pie still has its (empty) trace, so the
// browser clears the old slices.
func (p PieChart)Figure() Figure {
	noSort := false
	t := Trace{
		Type: "pie",
		Labels: []string{},
		Values: []float64{},
		Sort: &noSort, // keep our slice order
		Marker: &Marker{Colors:[]string{}},
	}
	for i,s := range p.Slices {
		t.Labels = append(t.Labels, s.Label)
		t.Values = append(t.Values, s.Value)
		t.Marker.Colors = append(t.Marker.Colors, Color(i))
	}

	return Figure{
		Data: []Trace{t},
		Layout: Layout{Title:Title{p.Title}},
	}
}

// Figure renders one marker trace per series.
func (sc ScatterChart)Figure() Figure {
	f := Figure{
		Data: []Trace{},
		Layout: Layout{
			Title: Title{sc.Title},
			XAxis: &Axis{Title:Title{sc.XLabel}},
			YAxis: &Axis{Title:Title{sc.YLabel}, TickVals:[]float64{0,1}},
			Legend: &Legend{Title:Title{sc.LegendTitle}},
		},
	}

	for i,s := range sc.Series {
		t := Trace{
			Type: "scatter",
			Mode: "markers",
			Name: s.Name,
			X: []float64{},
			Y: []float64{},
			Text: []string{},
			Marker: &Marker{Color:Color(i), Size:9},
			HoverTemplate: "%{text}<br>payload=%{x} kg<br>class=%{y}<extra>"+s.Name+"</extra>",
		}
		for _,p := range s.Points {
			t.X = append(t.X, p.X)
			t.Y = append(t.Y, p.Y)
			t.Text = append(t.Text, p.Text)
		}
		f.Data = append(f.Data, t)
	}

	return f
}
