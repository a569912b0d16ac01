package launchdata

import(
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	ldb "github.com/skypies/launchdb"
)

// {{{ notes

/* The launch records come as CSV rows, typically exported from a dataframe (so there is
   often an unnamed index column at the front). We only look at columns by header name.

[0]"", [1]Flight Number, [2]Launch Site, [3]class, [4]Payload Mass (kg),
  [5]Booster Version, [6]Booster Version Category

E.g.:

0,1,CCAFS LC-40,0,0.0,F9 v1.0  B0003,v1.0
1,2,CCAFS LC-40,0,0.0,F9 v1.0  B0004,v1.0
2,3,CCAFS LC-40,0,525.0,F9 v1.0  B0005,v1.0

 */

// }}}

const(
	ColSite            = "Launch Site"
	ColPayload         = "Payload Mass (kg)"
	ColBoosterCategory = "Booster Version Category"
	ColClass           = "class"

	// Optional
	ColFlightNumber    = "Flight Number"
	ColBoosterVersion  = "Booster Version"
)

var RequiredColumns = []string{ColSite, ColPayload, ColBoosterCategory, ColClass}

type RowReader struct {
	csvreader *csv.Reader
	headers   []string
	line      int // of the most recently read row, counting the header as line 1
}

// NewRowReader consumes the header row, and fails if any required column is missing.
func NewRowReader(ioreader io.Reader) (*RowReader, error) {
	rdr := RowReader{
		csvreader: csv.NewReader(ioreader),
	}
	rdr.csvreader.FieldsPerRecord = -1 // we check the count ourselves, for a better error
	rdr.csvreader.TrimLeadingSpace = true

	headers,err := rdr.csvreader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("no header row")
	} else if err != nil {
		return nil, fmt.Errorf("header row: %w", err)
	}
	rdr.line = 1

	for i,h := range headers {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}
	rdr.headers = headers

	have := map[string]bool{}
	for _,h := range headers { have[h] = true }
	for _,col := range RequiredColumns {
		if !have[col] {
			return nil, fmt.Errorf("missing column %q (have %q)", col, headers)
		}
	}

	return &rdr, nil
}

func (r *RowReader)Line() int { return r.line }

// {{{ rdr.Read()

func (r *RowReader)Read() (Row,error) {
	m := Row{}

	vals,err := r.csvreader.Read()
	if err != nil {
		return m,err
	}
	r.line++
	if len(r.headers) != len(vals) {
		return m, fmt.Errorf("line %d: header/val mismatch (%d/%d)", r.line, len(r.headers), len(vals))
	}

	for i := range vals {
		m[r.headers[i]] = vals[i]
	}

	return m,nil
}

// }}}

type Row map[string]string

// {{{ row.ToLaunch

func (r Row)ToLaunch() (ldb.Launch, error) {
	l := ldb.Launch{
		Site: strings.TrimSpace(r[ColSite]),
		BoosterCategory: strings.TrimSpace(r[ColBoosterCategory]),
		BoosterVersion: strings.Join(strings.Fields(r[ColBoosterVersion]), " "),
	}

	kg,err := strconv.ParseFloat(strings.TrimSpace(r[ColPayload]), 64)
	if err != nil {
		return l, fmt.Errorf("%s %q: %w", ColPayload, r[ColPayload], err)
	}
	l.PayloadKG = kg

	if l.Class,err = ldb.ParseOutcome(r[ColClass]); err != nil {
		return l, err
	}

	if s := strings.TrimSpace(r[ColFlightNumber]); s != "" {
		n,err := strconv.Atoi(s)
		if err != nil {
			return l, fmt.Errorf("%s %q: %w", ColFlightNumber, s, err)
		}
		l.FlightNumber = n
	}

	return l, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
