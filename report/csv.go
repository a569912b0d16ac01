package report

import(
	"encoding/csv"
	"fmt"
	"io"
	"net/http"
	"strings"
)

func (r *Report)CSVFilename() string {
	site := strings.ReplaceAll(strings.ToLower(r.Options.Site), " ", "-")
	return fmt.Sprintf("report-%s-%s-%.0f:%.0f.csv", r.Name, site, r.Options.Range.Lo, r.Options.Range.Hi)
}

func (r *Report)WriteCSV(w io.Writer) error {
	csvWriter := csv.NewWriter(w)
	if err := csvWriter.Write(r.HeadersText); err != nil { return err }
	for _,row := range r.RowsText {
		if err := csvWriter.Write(row); err != nil { return err }
	}
	csvWriter.Flush()
	return csvWriter.Error()
}

// If download is set, the browser gets a save-as dialog; otherwise it's shown inline.
func (r *Report)OutputAsCSV(w http.ResponseWriter, download bool) {
	if download {
		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", r.CSVFilename()))
	} else {
		w.Header().Set("Content-Type", "text/plain")
	}

	if err := r.WriteCSV(w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
