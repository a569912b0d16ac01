package report

import(
	"fmt"
	"sort"
)

// A simple registry of all known reports.
type ReportEntry struct {
	ReportFunc
	SummarizeFunc
	Name, Description string
}

var reportRegistry = map[string]ReportEntry{}

const DefaultReport = "launches"

func HandleReport(name string, f ReportFunc, description string) {
	reportRegistry[name] = ReportEntry{
		ReportFunc: f,
		Name: name,
		Description: description,
	}
}
func SummarizeReport(name string, sf SummarizeFunc) {
	entry := reportRegistry[name]
	entry.SummarizeFunc = sf
	reportRegistry[name] = entry
}

func ListReports() []ReportEntry {
	out := []ReportEntry{}

	keys := []string{}
	for k := range reportRegistry { keys = append(keys, k) }
	sort.Strings(keys)

	for _,k := range keys {
		out = append(out, reportRegistry[k])
	}
	return out
}

func SetupReport(opt Options) (Report, error) {
	if opt.Name == "" { opt.Name = DefaultReport }

	rep,err := InstantiateReport(opt.Name)
	if err != nil { return Report{}, err }

	rep.Options = opt
	return rep, nil
}

func InstantiateReport(name string) (Report,error) {
	r := BlankReport()
	r.Name = name

	entry,exists := reportRegistry[name]
	if !exists {
		return r, fmt.Errorf("report '%s' not known", name)
	}

	r.Func = entry.ReportFunc
	r.SummarizeFunc = entry.SummarizeFunc
	return r, nil
}
