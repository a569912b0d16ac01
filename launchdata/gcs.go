package launchdata

import(
	"context"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
)

// gs://bucket/some/object.csv
func parseGCSURI(uri string) (string, string, error) {
	bits := strings.SplitN(strings.TrimPrefix(uri, "gs://"), "/", 2)
	if len(bits) != 2 || bits[0] == "" || bits[1] == "" {
		return "", "", fmt.Errorf("bad GCS uri %q, want gs://bucket/object", uri)
	}
	return bits[0], bits[1], nil
}

// Closing the reader also closes the client it came from.
type gcsReadCloser struct {
	*storage.Reader
	client *storage.Client
}

func (rc gcsReadCloser)Close() error {
	err := rc.Reader.Close()
	if cerr := rc.client.Close(); err == nil { err = cerr }
	return err
}

func (l Loader)openGCS(ctx context.Context, bucketName, fileName string) (io.ReadCloser, error) {
	client, err := storage.NewClient(ctx, l.ClientOptions...)
	if err != nil { return nil, fmt.Errorf("GCS client: %w", err) }

	gcsReader,err := client.Bucket(bucketName).Object(fileName).NewReader(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("GCS-Open %s|%s: %w", bucketName, fileName, err)
	}

	return gcsReadCloser{Reader:gcsReader, client:client}, nil
}
