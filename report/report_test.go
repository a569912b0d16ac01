package report

// go test -v github.com/skypies/launchdb/report

import(
	"bytes"
	"strings"
	"testing"

	ldb "github.com/skypies/launchdb"
)

var launches = ldb.LaunchSet{
	{FlightNumber:1, Site:"CCAFS LC-40",  PayloadKG:0,    BoosterCategory:"v1.0", Class:ldb.Failure},
	{FlightNumber:2, Site:"CCAFS LC-40",  PayloadKG:525,  BoosterCategory:"v1.0", Class:ldb.Failure},
	{FlightNumber:3, Site:"VAFB SLC-4E",  PayloadKG:500,  BoosterCategory:"v1.1", Class:ldb.Failure},
	{FlightNumber:4, Site:"CCAFS LC-40",  PayloadKG:3170, BoosterCategory:"v1.1", Class:ldb.Success},
	{FlightNumber:5, Site:"KSC LC-39A",   PayloadKG:2490, BoosterCategory:"FT",   Class:ldb.Success},
	{FlightNumber:6, Site:"KSC LC-39A",   PayloadKG:5300, BoosterCategory:"FT",   Class:ldb.Success},
	{FlightNumber:7, Site:"VAFB SLC-4E",  PayloadKG:9600, BoosterCategory:"FT",   Class:ldb.Success},
	{FlightNumber:8, Site:"KSC LC-39A",   PayloadKG:7500, BoosterCategory:"B5",   Class:ldb.Failure},
}

func runReport(t *testing.T, site string, r ldb.PayloadRange) Report {
	rep := BlankReport()
	rep.Name = "test"
	rep.Options = Options{Name:"test", Site:site, Range:r}
	if err := rep.Run(launches); err != nil { t.Fatal(err) }
	return rep
}

func TestCountersAddUp(t *testing.T) {
	ranges := []ldb.PayloadRange{{Lo:0,Hi:10000}, {Lo:500,Hi:5300}, {Lo:7500,Hi:2500}, {Lo:525,Hi:525}}
	sites := append([]string{ldb.AllSites, "Boca Chica"}, launches.Sites()...)

	for _,pr := range ranges {
		for _,site := range sites {
			rep := runReport(t, site, pr)

			if rep.Successes() + rep.Failures() != rep.Matched() {
				t.Errorf("%s/%s: %d+%d != %d", site, pr, rep.Successes(), rep.Failures(), rep.Matched())
			}
			if want := len(launches.InPayloadRange(pr).BySite(site)); rep.Matched() != want {
				t.Errorf("%s/%s: matched %d, expected %d", site, pr, rep.Matched(), want)
			}
			if rep.I["[A] Considered"] != len(launches) {
				t.Errorf("%s/%s: considered %d", site, pr, rep.I["[A] Considered"])
			}

			perSite := 0
			for k,v := range rep.I {
				if strings.HasPrefix(k, "[E] site: ") { perSite += v }
			}
			if perSite != rep.Matched() {
				t.Errorf("%s/%s: per-site counts sum to %d, matched %d", site, pr, perSite, rep.Matched())
			}
		}
	}
}

func TestSuccessRate(t *testing.T) {
	rep := runReport(t, "KSC LC-39A", ldb.PayloadRange{Lo:0, Hi:10000})
	if rate := rep.F["[G] Success rate (%)"]; rate < 66.6 || rate > 66.7 {
		t.Errorf("success rate %.2f", rate)
	}

	rep = runReport(t, "Boca Chica", ldb.PayloadRange{Lo:0, Hi:10000})
	if _,exists := rep.F["[G] Success rate (%)"]; exists {
		t.Errorf("no matches, but a success rate was set")
	}
}

func TestMetadataTable(t *testing.T) {
	rep := runReport(t, ldb.AllSites, ldb.PayloadRange{Lo:0, Hi:10000})
	tbl := rep.MetadataTable()

	keys := map[string]string{}
	for _,row := range tbl { keys[string(row[0])] = string(row[1]) }

	if keys["[C] <b>Matched</b>"] != "8" {
		t.Errorf("matched: %q", keys["[C] <b>Matched</b>"])
	}
	if keys["[Z] payload, <b>N</b>"] != "8" {
		t.Errorf("histogram N: %q", keys["[Z] payload, <b>N</b>"])
	}
	for i := 1; i < len(tbl); i++ {
		if tbl[i-1][0] > tbl[i][0] {
			t.Errorf("metadata not sorted at %d: %s > %s", i, tbl[i-1][0], tbl[i][0])
		}
	}
}

func TestRegistry(t *testing.T) {
	called := 0
	HandleReport("counting", func(r *Report, l ldb.Launch) (LaunchReportOutcome, error) {
		called++
		r.SetHeaders([]string{"site"})
		r.AddRow(&[]string{l.Site}, &[]string{l.Site})
		return Accepted, nil
	}, "counts calls")
	SummarizeReport("counting", func(r *Report) { r.S["[S] summarized"] = "yes" })

	rep,err := SetupReport(Options{Name:"counting", Site:"VAFB SLC-4E", Range:ldb.PayloadRange{Lo:0,Hi:10000}})
	if err != nil { t.Fatal(err) }
	if err := rep.Run(launches); err != nil { t.Fatal(err) }

	if called != 2 {
		t.Errorf("report func called %d times, expected 2 (filter runs first)", called)
	}
	if rep.S["[S] summarized"] != "yes" {
		t.Errorf("summarize func not run")
	}

	found := false
	for _,e := range ListReports() { if e.Name == "counting" { found = true } }
	if !found { t.Errorf("ListReports missing 'counting'") }

	if _,err := SetupReport(Options{Name:"nosuchreport"}); err == nil {
		t.Errorf("expected an error for an unknown report")
	}

	var buf bytes.Buffer
	if err := rep.WriteCSV(&buf); err != nil { t.Fatal(err) }
	if got := buf.String(); got != "site\nVAFB SLC-4E\nVAFB SLC-4E\n" {
		t.Errorf("csv output: %q", got)
	}
}

func TestOptions(t *testing.T) {
	o := Options{Name:"launches", Site:ldb.AllSites, Range:ldb.PayloadRange{Lo:2500, Hi:7500}}
	if got := o.ToCGIArgs(); got != "hi=7500&lo=2500&rep=launches&site=All+Sites" {
		t.Errorf("cgi args: %q", got)
	}

	rep := BlankReport()
	rep.Name = "launches"
	rep.Options = o
	if got := rep.CSVFilename(); got != "report-launches-all-sites-2500:7500.csv" {
		t.Errorf("csv filename: %q", got)
	}
}
