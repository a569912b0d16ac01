// Package launchdata loads the launch records table, from CSV files (local or in GCS, maybe
// gzipped) or from a BigQuery table.
package launchdata

import(
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"
	"google.golang.org/api/option"

	ldb "github.com/skypies/launchdb"
)

// A Loader knows how to fetch each kind of source. ProjectID is only needed for BigQuery
// sources that don't name their own project.
type Loader struct {
	ProjectID      string
	ClientOptions  []option.ClientOption
}

// {{{ ReadFrom

// ReadFrom parses a whole CSV stream into a LaunchSet. Any bad row aborts the read; the error
// names the source and the line.
func ReadFrom(ctx context.Context, name string, rdr io.Reader) (ldb.LaunchSet, error) {
	rowReader,err := NewRowReader(rdr)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	ls := ldb.LaunchSet{}
	for {
		if err := ctx.Err(); err != nil { return nil, err }

		row,err := rowReader.Read()
		if err == io.EOF { break }
		if err != nil { return nil, fmt.Errorf("%s: %w", name, err) }

		l,err := row.ToLaunch()
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", name, rowReader.Line(), err)
		}
		ls = append(ls, l)
	}

	return ls, nil
}

// }}}
// {{{ l.Load

// Load fetches a single source:
//   /path/to/file.csv[.gz]
//   gs://bucket/path/to/file.csv[.gz]
//   bq://[project.]dataset.table
func (l Loader)Load(ctx context.Context, uri string) (ldb.LaunchSet, error) {
	switch {
	case strings.HasPrefix(uri, "bq://"):
		project,dataset,table,err := parseBigQueryURI(uri, l.ProjectID)
		if err != nil { return nil, err }
		return l.loadBigQuery(ctx, project, dataset, table)

	case strings.HasPrefix(uri, "gs://"):
		bucket,object,err := parseGCSURI(uri)
		if err != nil { return nil, err }
		rc,err := l.openGCS(ctx, bucket, object)
		if err != nil { return nil, err }
		defer rc.Close()
		return readMaybeGzipped(ctx, uri, rc)

	default:
		f,err := os.Open(uri)
		if err != nil { return nil, err }
		defer f.Close()
		return readMaybeGzipped(ctx, uri, f)
	}
}

func readMaybeGzipped(ctx context.Context, name string, rdr io.Reader) (ldb.LaunchSet, error) {
	if strings.HasSuffix(name, ".gz") {
		gzipReader,err := gzip.NewReader(rdr)
		if err != nil {
			return nil, fmt.Errorf("%s: gzip: %w", name, err)
		}
		defer gzipReader.Close()
		rdr = gzipReader
	}
	return ReadFrom(ctx, name, rdr)
}

// }}}
// {{{ l.LoadAll

// LoadAll fetches all the sources concurrently, and concatenates them in the order given. If
// any one fails, the whole load fails.
func (l Loader)LoadAll(ctx context.Context, uris []string) (ldb.LaunchSet, error) {
	if len(uris) == 0 {
		return nil, fmt.Errorf("no data sources")
	}

	results := make([]ldb.LaunchSet, len(uris))
	g,gCtx := errgroup.WithContext(ctx)
	for i,uri := range uris {
		i,uri := i,uri
		g.Go(func() error {
			ls,err := l.Load(gCtx, uri)
			if err != nil { return err }
			results[i] = ls
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	all := ldb.LaunchSet{}
	for _,ls := range results {
		all = append(all, ls...)
	}
	return all, nil
}

// }}}

// {{{ -------------------------={ E N D }=----------------------------------

// Local variables:
// folded-file: t
// end:

// }}}
