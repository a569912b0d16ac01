package launchdb

// go test -v github.com/skypies/launchdb

import(
	"testing"

	"github.com/google/go-cmp/cmp"
)

var testLaunches = LaunchSet{
	{FlightNumber:1, Site:"CCAFS LC-40",  PayloadKG:0,      BoosterCategory:"v1.0", Class:Failure},
	{FlightNumber:2, Site:"CCAFS LC-40",  PayloadKG:525,    BoosterCategory:"v1.0", Class:Failure},
	{FlightNumber:3, Site:"VAFB SLC-4E",  PayloadKG:500,    BoosterCategory:"v1.1", Class:Failure},
	{FlightNumber:4, Site:"CCAFS LC-40",  PayloadKG:3170,   BoosterCategory:"v1.1", Class:Success},
	{FlightNumber:5, Site:"KSC LC-39A",   PayloadKG:2490,   BoosterCategory:"FT",   Class:Success},
	{FlightNumber:6, Site:"KSC LC-39A",   PayloadKG:5300,   BoosterCategory:"FT",   Class:Success},
	{FlightNumber:7, Site:"VAFB SLC-4E",  PayloadKG:9600,   BoosterCategory:"FT",   Class:Success},
	{FlightNumber:8, Site:"CCAFS SLC-40", PayloadKG:6070,   BoosterCategory:"B4",   Class:Failure},
	{FlightNumber:9, Site:"CCAFS SLC-40", PayloadKG:2500,   BoosterCategory:"B5",   Class:Success},
	{FlightNumber:10, Site:"KSC LC-39A",  PayloadKG:7500,   BoosterCategory:"B5",   Class:Failure},
}

func TestSitesAndCategoriesInFirstSeenOrder(t *testing.T) {
	sites := testLaunches.Sites()
	if diff := cmp.Diff([]string{"CCAFS LC-40","VAFB SLC-4E","KSC LC-39A","CCAFS SLC-40"}, sites); diff != "" {
		t.Errorf("Sites() mismatch (-want +got):\n%s", diff)
	}

	cats := testLaunches.BoosterCategories()
	if diff := cmp.Diff([]string{"v1.0","v1.1","FT","B4","B5"}, cats); diff != "" {
		t.Errorf("BoosterCategories() mismatch (-want +got):\n%s", diff)
	}
}

func TestPayloadBounds(t *testing.T) {
	if got := testLaunches.PayloadBounds(); got != (PayloadRange{0, 9600}) {
		t.Errorf("bounds: got %s", got)
	}
	if got := (LaunchSet{}).PayloadBounds(); got != (PayloadRange{}) {
		t.Errorf("empty bounds: got %s", got)
	}
}

func TestPayloadRangeIsInclusive(t *testing.T) {
	tests := []struct{
		R       PayloadRange
		Flights []int
	}{
		{PayloadRange{2500, 7500}, []int{4,6,8,9,10}},
		{PayloadRange{525, 525},   []int{2}},
		{PayloadRange{0, 10000},   []int{1,2,3,4,5,6,7,8,9,10}},
		{PayloadRange{10001, 20000}, []int{}},
		{PayloadRange{7500, 2500}, []int{}}, // inverted
	}

	for _,test := range tests {
		got := []int{}
		for _,l := range testLaunches.InPayloadRange(test.R) {
			if !(test.R.Lo <= l.PayloadKG && l.PayloadKG <= test.R.Hi) {
				t.Errorf("%s: %s is out of range", test.R, l)
			}
			got = append(got, l.FlightNumber)
		}
		if diff := cmp.Diff(test.Flights, got); diff != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", test.R, diff)
		}
	}
}

func TestBySite(t *testing.T) {
	if n := len(testLaunches.BySite("KSC LC-39A")); n != 3 {
		t.Errorf("KSC LC-39A: expected 3, got %d", n)
	}
	if n := len(testLaunches.BySite("Boca Chica")); n != 0 {
		t.Errorf("unknown site: expected 0, got %d", n)
	}

	// Picking a site, then going back to all sites, is the same as never filtering
	r := PayloadRange{500, 6000}
	all := testLaunches.BySite(AllSites).InPayloadRange(r)
	if diff := cmp.Diff(testLaunches.InPayloadRange(r), all); diff != "" {
		t.Errorf("AllSites filter changed the set (-want +got):\n%s", diff)
	}
}

func TestSuccessesBySite(t *testing.T) {
	want := []SiteCount{
		{"CCAFS LC-40", 1},
		{"CCAFS SLC-40", 1},
		{"KSC LC-39A", 2},
		{"VAFB SLC-4E", 1},
	}
	got := testLaunches.SuccessesBySite()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SuccessesBySite mismatch (-want +got):\n%s", diff)
	}

	total := 0
	for _,sc := range got { total += sc.Count }
	if total != testLaunches.Successes() {
		t.Errorf("sum over sites %d != total successes %d", total, testLaunches.Successes())
	}
}

func TestOutcomeCounts(t *testing.T) {
	tests := []struct{
		Site string
		Want []OutcomeCount
	}{
		{"CCAFS LC-40", []OutcomeCount{{Failure,2}, {Success,1}}},
		{"KSC LC-39A",  []OutcomeCount{{Success,2}, {Failure,1}}},
		{"CCAFS SLC-40", []OutcomeCount{{Success,1}, {Failure,1}}}, // tie: success first
		{"Boca Chica",  []OutcomeCount{}},
	}

	for _,test := range tests {
		subset := testLaunches.BySite(test.Site)
		got := subset.OutcomeCounts()
		if diff := cmp.Diff(test.Want, got); diff != "" {
			t.Errorf("%s: mismatch (-want +got):\n%s", test.Site, diff)
		}
		n := 0
		for _,oc := range got { n += oc.Count }
		if n != len(subset) {
			t.Errorf("%s: counts sum to %d, site has %d records", test.Site, n, len(subset))
		}
	}
}

func TestParseOutcome(t *testing.T) {
	tests := []struct{
		In   string
		Want Outcome
		Err  bool
	}{
		{"1", Success, false},
		{"0", Failure, false},
		{" 1.0 ", Success, false},
		{"2", Failure, true},
		{"yes", Failure, true},
	}
	for _,test := range tests {
		got,err := ParseOutcome(test.In)
		if (err != nil) != test.Err {
			t.Errorf("%q: err=%v, expected err=%v", test.In, err, test.Err)
		}
		if got != test.Want {
			t.Errorf("%q: got %v, expected %v", test.In, got, test.Want)
		}
	}
}

func TestPayloadRangeClampAndUnion(t *testing.T) {
	extent := PayloadRange{0, 10000}.Union(PayloadRange{0, 9600})
	if extent != (PayloadRange{0, 10000}) {
		t.Errorf("union: got %s", extent)
	}

	tests := []struct{
		In, Want PayloadRange
	}{
		{PayloadRange{2500, 7500}, PayloadRange{2500, 7500}},
		{PayloadRange{-100, 1e11}, PayloadRange{0, 10000}},
		{PayloadRange{20000, 30000}, PayloadRange{20000, 10000}}, // no overlap
	}
	for _,test := range tests {
		got := test.In.ClampTo(extent)
		if got != test.Want {
			t.Errorf("%s: got %s, expected %s", test.In, got, test.Want)
		}
	}
	if !(PayloadRange{20000, 30000}).ClampTo(extent).IsEmpty() {
		t.Errorf("disjoint clamp should be empty")
	}
}
