package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
)

// gcsObject ties an object reader to the client it was opened with so
// closing the reader releases both.
type gcsObject struct {
	io.ReadCloser
	client *storage.Client
}

func (o *gcsObject) Close() error {
	err := o.ReadCloser.Close()
	if cerr := o.client.Close(); err == nil {
		err = cerr
	}
	return err
}

func openGCS(ctx context.Context, ref string) (io.ReadCloser, error) {
	bucket, key, err := splitObjectRef(ref, "gs://")
	if err != nil {
		return nil, err
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating GCS client: %w", err)
	}

	reader, err := client.Bucket(bucket).Object(key).NewReader(ctx)
	if err != nil {
		client.Close()
		if errors.Is(err, storage.ErrObjectNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, ref)
		}
		return nil, fmt.Errorf("opening %s: %w", ref, err)
	}

	return &gcsObject{ReadCloser: reader, client: client}, nil
}
