package chart

import "strconv"

var(
	// Plotly's default qualitative palette, so the PDF matches what the browser draws.
	palette = []string{
		"#636EFA",
		"#EF553B",
		"#00CC96",
		"#AB63FA",
		"#FFA15A",
		"#19D3F3",
		"#FF6692",
		"#B6E880",
		"#FF97FF",
		"#FECB52",
	}
)

// Color returns the palette entry for the i'th slice or series; it wraps around.
func Color(i int) string {
	if i < 0 { i = -i }
	return palette[i % len(palette)]
}

// RGB splits a "#RRGGBB" string into its components, each [0,255]. Malformed input is black.
func RGB(hex string) []int {
	if len(hex) != 7 || hex[0] != '#' { return []int{0,0,0} }
	rgb := []int{}
	for i:=1; i<7; i+=2 {
		v,err := strconv.ParseUint(hex[i:i+2], 16, 8)
		if err != nil { return []int{0,0,0} }
		rgb = append(rgb, int(v))
	}
	return rgb
}
