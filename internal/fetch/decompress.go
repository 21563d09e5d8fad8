package fetch

import (
	"compress/gzip"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Decompress unwraps compressed input, choosing the codec by the
// reference's extension: .zst for zstd, .gz for gzip. Anything else
// passes through unchanged. Closing the returned reader closes rc.
func Decompress(rc io.ReadCloser, ref string) (io.ReadCloser, error) {
	switch {
	case strings.HasSuffix(ref, ".zst"):
		decoder, err := zstd.NewReader(rc)
		if err != nil {
			rc.Close()
			return nil, fmt.Errorf("creating zstd reader: %w", err)
		}
		return &wrappedReader{Reader: decoder.IOReadCloser(), inner: rc}, nil

	case strings.HasSuffix(ref, ".gz"):
		gz, err := gzip.NewReader(rc)
		if err != nil {
			rc.Close()
			return nil, fmt.Errorf("creating gzip reader: %w", err)
		}
		return &wrappedReader{Reader: gz, inner: rc}, nil
	}

	return rc, nil
}

// wrappedReader closes the decompressor and the source beneath it.
type wrappedReader struct {
	io.Reader
	inner io.ReadCloser
}

func (w *wrappedReader) Close() error {
	var err error
	if c, ok := w.Reader.(io.Closer); ok {
		err = c.Close()
	}
	if cerr := w.inner.Close(); err == nil {
		err = cerr
	}
	return err
}
