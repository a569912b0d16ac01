package launchdb

import(
	"math"
	"sort"
)

// LaunchSet is the in-memory table. It is built once, by the loader, and then only ever read;
// all the filters return fresh slices and never write to the receiver.
type LaunchSet []Launch

type SiteCount struct {
	Site  string
	Count int
}

type OutcomeCount struct {
	Outcome
	Count int
}

// {{{ ls.Filter, BySite, InPayloadRange

func (ls LaunchSet)Filter(keep func(Launch) bool) LaunchSet {
	out := LaunchSet{}
	for _,l := range ls {
		if keep(l) { out = append(out, l) }
	}
	return out
}

// BySite returns the launches from the named site; AllSites is a no-op. Site names are not
// validated, so an unknown site just comes back empty.
func (ls LaunchSet)BySite(site string) LaunchSet {
	if site == AllSites { return ls }
	return ls.Filter(func(l Launch) bool { return l.Site == site })
}

func (ls LaunchSet)InPayloadRange(r PayloadRange) LaunchSet {
	return ls.Filter(func(l Launch) bool { return r.Contains(l.PayloadKG) })
}

// }}}
// {{{ ls.Sites, BoosterCategories

// Sites lists the distinct sites, in order of first appearance.
func (ls LaunchSet)Sites() []string {
	return ls.distinct(func(l Launch) string { return l.Site })
}

// BoosterCategories lists the distinct booster categories, in order of first appearance.
func (ls LaunchSet)BoosterCategories() []string {
	return ls.distinct(func(l Launch) string { return l.BoosterCategory })
}

func (ls LaunchSet)distinct(key func(Launch) string) []string {
	seen := map[string]bool{}
	out := []string{}
	for _,l := range ls {
		k := key(l)
		if seen[k] { continue }
		seen[k] = true
		out = append(out, k)
	}
	return out
}

// }}}
// {{{ ls.PayloadBounds

// PayloadBounds returns the smallest range holding every payload in the set; the zero range
// for an empty set.
func (ls LaunchSet)PayloadBounds() PayloadRange {
	if len(ls) == 0 { return PayloadRange{} }

	r := PayloadRange{Lo:math.Inf(1), Hi:math.Inf(-1)}
	for _,l := range ls {
		if l.PayloadKG < r.Lo { r.Lo = l.PayloadKG }
		if l.PayloadKG > r.Hi { r.Hi = l.PayloadKG }
	}
	return r
}

// }}}
// {{{ ls.Successes, SuccessesBySite, OutcomeCounts

func (ls LaunchSet)Successes() int {
	n := 0
	for _,l := range ls {
		if l.Succeeded() { n++ }
	}
	return n
}

// SuccessesBySite sums the class column per site. Every site in the set gets an entry, even
// if it never succeeded; entries are sorted by site name.
func (ls LaunchSet)SuccessesBySite() []SiteCount {
	counts := map[string]int{}
	for _,l := range ls {
		counts[l.Site] += int(l.Class)
	}

	out := []SiteCount{}
	for site,n := range counts {
		out = append(out, SiteCount{Site:site, Count:n})
	}
	sort.Slice(out, func(i,j int) bool { return out[i].Site < out[j].Site })
	return out
}

// OutcomeCounts tallies records per outcome class. Only classes that actually occur are
// listed; the biggest count comes first, and ties put success ahead of failure.
func (ls LaunchSet)OutcomeCounts() []OutcomeCount {
	counts := map[Outcome]int{}
	for _,l := range ls {
		counts[l.Class]++
	}

	out := []OutcomeCount{}
	for o,n := range counts {
		out = append(out, OutcomeCount{Outcome:o, Count:n})
	}
	sort.Slice(out, func(i,j int) bool {
		if out[i].Count != out[j].Count { return out[i].Count > out[j].Count }
		return out[i].Outcome > out[j].Outcome
	})
	return out
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
