package ref

// go test -v github.com/skypies/launchdb/ref

import(
	"testing"

	ldb "github.com/skypies/launchdb"
)

var launches = ldb.LaunchSet{
	{Site:"CCAFS LC-40",  PayloadKG:500,  BoosterCategory:"v1.0", Class:ldb.Failure},
	{Site:"KSC LC-39A",   PayloadKG:2490, BoosterCategory:"FT",   Class:ldb.Success},
	{Site:"VAFB SLC-4E",  PayloadKG:9600, BoosterCategory:"FT",   Class:ldb.Success},
	{Site:"CCAFS SLC-40", PayloadKG:5200, BoosterCategory:"B4",   Class:ldb.Success},
	{Site:"CCAFS LC-40",  PayloadKG:4696, BoosterCategory:"FT",   Class:ldb.Success},
	{Site:"Kwajalein",    PayloadKG:165,  BoosterCategory:"F1",   Class:ldb.Failure},
}

func TestSiteInfos(t *testing.T) {
	infos := SiteInfos(launches)
	if len(infos) != 5 {
		t.Fatalf("expected 5 sites, got %d", len(infos))
	}

	byName := map[string]SiteInfo{}
	for _,si := range infos { byName[si.Name] = si }

	lc40 := byName["CCAFS LC-40"]
	if lc40.Launches != 2 || lc40.Successes != 1 || lc40.SuccessRate() != 50 {
		t.Errorf("CCAFS LC-40 counts: %s", lc40)
	}
	// LC-40 and SLC-40 are the same pad complex, well under a km apart
	if lc40.NearestSite != "CCAFS SLC-40" || lc40.NearestKM > 1.0 {
		t.Errorf("CCAFS LC-40 nearest: %s", lc40)
	}

	vafb := byName["VAFB SLC-4E"]
	if vafb.NearestKM < 3300 || vafb.NearestKM > 4300 {
		t.Errorf("VAFB should be ~3800km from Florida: %s", vafb)
	}

	kwaj := byName["Kwajalein"]
	if kwaj.Known || kwaj.NearestSite != "" {
		t.Errorf("unknown site should have no position: %s", kwaj)
	}
	if kwaj.Launches != 1 || kwaj.SuccessRate() != 0 {
		t.Errorf("Kwajalein counts: %s", kwaj)
	}
}

func TestSortedByLaunches(t *testing.T) {
	sorted := SortedByLaunches(SiteInfos(launches))
	if sorted[0].Name != "CCAFS LC-40" {
		t.Errorf("busiest site first: got %s", sorted[0].Name)
	}
}
