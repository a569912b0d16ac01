package ref

import(
	"fmt"
	"math"
	"sort"

	"github.com/skypies/geo"

	ldb "github.com/skypies/launchdb"
)

// Pad coordinates for the sites that appear in the launch records.
var KnownSites = map[string]geo.Latlong{
	"CCAFS LC-40":  {Lat:28.562302, Long:-80.577356},
	"CCAFS SLC-40": {Lat:28.563197, Long:-80.576820},
	"KSC LC-39A":   {Lat:28.573255, Long:-80.646895},
	"VAFB SLC-4E":  {Lat:34.632834, Long:-120.610745},
}

// SiteInfo is the per-site panel that goes alongside the dropdown.
type SiteInfo struct {
	Name        string
	Latlong     geo.Latlong
	Known       bool    // false if we have no coordinates for this site

	Launches    int
	Successes   int

	NearestSite string  // the closest other known site, if any
	NearestKM   float64
}

func (si SiteInfo)SuccessRate() float64 {
	if si.Launches == 0 { return 0 }
	return 100.0 * float64(si.Successes) / float64(si.Launches)
}

func (si SiteInfo)String() string {
	str := fmt.Sprintf("%-14.14s %3d launches, %3d ok (%5.1f%%)", si.Name, si.Launches, si.Successes,
		si.SuccessRate())
	if si.Known {
		str += fmt.Sprintf(" @%.4f,%.4f", si.Latlong.Lat, si.Latlong.Long)
	}
	if si.NearestSite != "" {
		str += fmt.Sprintf(", %.1fkm from %s", si.NearestKM, si.NearestSite)
	}
	return str
}

// SiteInfos builds the panel for every site in the table, in dropdown order. Nearest-site
// distances are only computed between sites that appear in the table.
func SiteInfos(ls ldb.LaunchSet) []SiteInfo {
	out := []SiteInfo{}
	for _,site := range ls.Sites() {
		subset := ls.BySite(site)
		pos,known := KnownSites[site]
		out = append(out, SiteInfo{
			Name: site,
			Latlong: pos,
			Known: known,
			Launches: len(subset),
			Successes: subset.Successes(),
		})
	}

	for i := range out {
		if !out[i].Known { continue }
		best := math.Inf(1)
		for j := range out {
			if i == j || !out[j].Known { continue }
			if d := out[i].Latlong.DistKM(out[j].Latlong); d < best {
				best = d
				out[i].NearestSite = out[j].Name
				out[i].NearestKM = d
			}
		}
	}

	return out
}

// SortedByLaunches is for the CLI; busiest site first.
func SortedByLaunches(infos []SiteInfo) []SiteInfo {
	out := append([]SiteInfo{}, infos...)
	sort.SliceStable(out, func(i,j int) bool { return out[i].Launches > out[j].Launches })
	return out
}
