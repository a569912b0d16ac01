package analysis

import(
	"fmt"
	"html"

	ldb "github.com/skypies/launchdb"
	"github.com/skypies/launchdb/report"
)

func init() {
	report.HandleReport("boosters", BoosterTally, "Per booster category: launches, success rate, mean payload")
	report.SummarizeReport("boosters", BoosterSummary)
}

type boosterTally struct {
	Order  []string
	Counts map[string]*tally
}

type tally struct {
	N, Successes int
	TotalKG      float64
}

func (t tally)Rate() float64 {
	if t.N == 0 { return 0 }
	return 100.0 * float64(t.Successes) / float64(t.N)
}
func (t tally)MeanKG() float64 {
	if t.N == 0 { return 0 }
	return t.TotalKG / float64(t.N)
}

func (t *tally)Add(l ldb.Launch) {
	t.N++
	t.TotalKG += l.PayloadKG
	if l.Succeeded() { t.Successes++ }
}

func BoosterTally(r *report.Report, l ldb.Launch) (report.LaunchReportOutcome, error) {
	if _,exists := r.Blobs["boosters"]; !exists {
		r.Blobs["boosters"] = &boosterTally{Counts: map[string]*tally{}}
	}
	bt := r.Blobs["boosters"].(*boosterTally)

	if _,exists := bt.Counts[l.BoosterCategory]; !exists {
		bt.Order = append(bt.Order, l.BoosterCategory)
		bt.Counts[l.BoosterCategory] = &tally{}
	}
	bt.Counts[l.BoosterCategory].Add(l)

	return report.Accepted, nil
}

// Rows come out in first-seen order, the same order as the scatter chart's legend.
func BoosterSummary(r *report.Report) {
	r.SetHeaders([]string{"Booster Version Category", "Launches", "Successes", "Success rate (%)",
		"Mean payload (kg)"})

	blob,exists := r.Blobs["boosters"]
	if !exists { return }
	bt := blob.(*boosterTally)

	for _,cat := range bt.Order {
		t := bt.Counts[cat]
		textRow := []string{
			cat,
			fmt.Sprintf("%d", t.N),
			fmt.Sprintf("%d", t.Successes),
			fmt.Sprintf("%.1f", t.Rate()),
			kg(t.MeanKG()),
		}
		htmlRow := append([]string{html.EscapeString(cat)}, textRow[1:]...)
		r.AddRow(&htmlRow, &textRow)
	}
}
