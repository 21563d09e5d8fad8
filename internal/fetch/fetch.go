// Package fetch opens game-record inputs by reference: local paths,
// http(s) URLs, and gs:// or s3:// objects. Compressed inputs are
// unwrapped by extension.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// ErrNotFound indicates the referenced object does not exist.
var ErrNotFound = errors.New("fetch: not found")

// DefaultResponseHeaderTimeout is the default timeout for receiving
// response headers on HTTP fetches.
const DefaultResponseHeaderTimeout = 30 * time.Second

// ProgressFunc is called periodically while an HTTP body streams. total
// is -1 when the server does not announce a content length.
type ProgressFunc func(read, total int64)

// Option configures a fetch.
type Option func(*fetcher)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(f *fetcher) {
		f.client = client
	}
}

// WithProgress reports streaming progress for HTTP fetches. Other
// sources ignore it.
func WithProgress(fn ProgressFunc) Option {
	return func(f *fetcher) {
		f.progress = fn
	}
}

type fetcher struct {
	client   *http.Client
	progress ProgressFunc
}

func newFetcher(opts ...Option) *fetcher {
	f := &fetcher{
		client: &http.Client{
			Timeout: 0, // No overall timeout - large dumps stream for a while.
			Transport: &http.Transport{
				ResponseHeaderTimeout: DefaultResponseHeaderTimeout,
				IdleConnTimeout:       90 * time.Second,
				TLSHandshakeTimeout:   10 * time.Second,
				ExpectContinueTimeout: 1 * time.Second,
			},
		},
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Open opens the referenced input for reading. The scheme selects the
// source: gs:// and s3:// read from object storage, http:// and
// https:// fetch over the network, anything else is a local path. The
// caller owns the returned reader and must close it.
func Open(ctx context.Context, ref string, opts ...Option) (io.ReadCloser, error) {
	f := newFetcher(opts...)

	switch {
	case strings.HasPrefix(ref, "gs://"):
		return openGCS(ctx, ref)
	case strings.HasPrefix(ref, "s3://"):
		return openS3(ctx, ref)
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return f.openHTTP(ctx, ref)
	}

	file, err := os.Open(ref)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, ref)
		}
		return nil, fmt.Errorf("opening %s: %w", ref, err)
	}
	return file, nil
}

func (f *fetcher) openHTTP(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	if resp.StatusCode == http.StatusNotFound {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s", ErrNotFound, url)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("fetching %s: unexpected status %s", url, resp.Status)
	}

	if f.progress == nil {
		return resp.Body, nil
	}
	return &progressReader{
		rc:       resp.Body,
		total:    resp.ContentLength,
		progress: f.progress,
	}, nil
}

// progressReader reports bytes read through an HTTP body.
type progressReader struct {
	rc       io.ReadCloser
	read     int64
	total    int64
	progress ProgressFunc
}

func (pr *progressReader) Read(p []byte) (int, error) {
	n, err := pr.rc.Read(p)
	if n > 0 {
		pr.read += int64(n)
		pr.progress(pr.read, pr.total)
	}
	return n, err
}

func (pr *progressReader) Close() error {
	return pr.rc.Close()
}

// splitObjectRef splits "scheme://bucket/key" into bucket and key.
func splitObjectRef(ref, scheme string) (bucket, key string, err error) {
	rest := strings.TrimPrefix(ref, scheme)
	bucket, key, ok := strings.Cut(rest, "/")
	if !ok || bucket == "" || key == "" {
		return "", "", fmt.Errorf("fetch: invalid object reference %q, want %sbucket/key", ref, scheme)
	}
	return bucket, key, nil
}
