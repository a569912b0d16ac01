package launchdb

import(
	"fmt"
	"strconv"
	"strings"
)

// Outcome is the binary 'class' column: 1 for a successful launch, 0 for a failure.
type Outcome int
const(
	Failure Outcome = iota
	Success
)

func (o Outcome)String() string {
	switch o {
	case Failure: return "failure"
	case Success: return "success"
	default:      return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Label is the class value as it appears in the source data ("0" or "1").
func (o Outcome)Label() string { return strconv.Itoa(int(o)) }

// ParseOutcome accepts "0" and "1", and also their float renderings ("1.0"), since
// exports from dataframes sometimes promote the column.
func ParseOutcome(s string) (Outcome, error) {
	f,err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return Failure, fmt.Errorf("class %q: %w", s, err)
	}
	switch f {
	case 0: return Failure, nil
	case 1: return Success, nil
	}
	return Failure, fmt.Errorf("class %q: not 0 or 1", s)
}

// Launch is a single row of the launch records table. Never modified after loading.
type Launch struct {
	FlightNumber     int     // zero if the source had no 'Flight Number' column
	Site             string
	PayloadKG        float64
	BoosterVersion   string  // e.g. "F9 v1.1 B1011"; may be blank
	BoosterCategory  string  // e.g. "v1.1", "FT", "B4"
	Class            Outcome
}

func (l Launch)Succeeded() bool { return l.Class == Success }

func (l Launch)String() string {
	return fmt.Sprintf("#%-3d %-14.14s %8.1fkg %-5.5s %s", l.FlightNumber, l.Site, l.PayloadKG,
		l.BoosterCategory, l.Class)
}
