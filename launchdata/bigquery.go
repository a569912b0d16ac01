package launchdata

import(
	"context"
	"fmt"
	"strings"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"

	ldb "github.com/skypies/launchdb"
)

// BigQuery column names can't have spaces or parens, so tables use these names instead of the
// CSV headers.
var bigQueryColumns = map[string]string{
	"launch_site":              ColSite,
	"payload_mass_kg":          ColPayload,
	"booster_version_category": ColBoosterCategory,
	"class":                    ColClass,
	"flight_number":            ColFlightNumber,
	"booster_version":          ColBoosterVersion,
}

// bq://project.dataset.table, or bq://dataset.table (which uses the default project)
func parseBigQueryURI(uri, defaultProject string) (string, string, string, error) {
	bits := strings.Split(strings.TrimPrefix(uri, "bq://"), ".")
	for _,b := range bits {
		if b == "" { return "", "", "", fmt.Errorf("bad BigQuery uri %q", uri) }
	}

	switch len(bits) {
	case 3:
		return bits[0], bits[1], bits[2], nil
	case 2:
		if defaultProject == "" {
			return "", "", "", fmt.Errorf("BigQuery uri %q has no project, and none configured", uri)
		}
		return defaultProject, bits[0], bits[1], nil
	}
	return "", "", "", fmt.Errorf("bad BigQuery uri %q, want bq://[project.]dataset.table", uri)
}

// bigQueryRowToRow renames the columns we know about, and stringifies their values, so that
// BigQuery rows go through the same conversion as CSV rows.
func bigQueryRowToRow(vals map[string]bigquery.Value) Row {
	row := Row{}
	for bqName,v := range vals {
		col,known := bigQueryColumns[strings.ToLower(bqName)]
		if !known { continue }
		if v == nil {
			row[col] = ""
		} else {
			row[col] = fmt.Sprint(v)
		}
	}
	return row
}

func (l Loader)loadBigQuery(ctx context.Context, project, dataset, table string) (ldb.LaunchSet, error) {
	name := fmt.Sprintf("bq://%s.%s.%s", project, dataset, table)

	client,err := bigquery.NewClient(ctx, project, l.ClientOptions...)
	if err != nil { return nil, fmt.Errorf("%s: client: %w", name, err) }
	defer client.Close()

	ls := ldb.LaunchSet{}
	it := client.Dataset(dataset).Table(table).Read(ctx)
	for i:=1; ; i++ {
		var vals map[string]bigquery.Value
		err := it.Next(&vals)
		if err == iterator.Done {
			break
		} else if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", name, i, err)
		}

		launch,err := bigQueryRowToRow(vals).ToLaunch()
		if err != nil {
			return nil, fmt.Errorf("%s: row %d: %w", name, i, err)
		}
		ls = append(ls, launch)
	}

	return ls, nil
}
