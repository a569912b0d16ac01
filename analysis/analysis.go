// Package analysis holds the reports. Each file registers one report with the report package
// from an init() func; import this package for its side effects.
package analysis

import(
	"fmt"

	ldb "github.com/skypies/launchdb"
)

func kg(f float64) string { return fmt.Sprintf("%.0f", f) }

func outcomeCell(l ldb.Launch) string {
	if l.Succeeded() { return "<b>"+l.Class.Label()+"</b>" }
	return l.Class.Label()
}
