package fetch

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
)

func TestOpen_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "games.pgn")
	if err := os.WriteFile(path, []byte("1. e4 e5"), 0644); err != nil {
		t.Fatal(err)
	}

	rc, err := Open(context.Background(), path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("reading: %v", err)
	}
	if string(data) != "1. e4 e5" {
		t.Errorf("read %q, want %q", data, "1. e4 e5")
	}
}

func TestOpen_FileNotFound(t *testing.T) {
	_, err := Open(context.Background(), filepath.Join(t.TempDir(), "missing.pgn"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Open() error = %v, want ErrNotFound", err)
	}
}

func TestOpen_HTTP(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "movetext")
	}))
	defer server.Close()

	var lastRead, lastTotal int64
	rc, err := Open(context.Background(), server.URL, WithProgress(func(read, total int64) {
		lastRead, lastTotal = read, total
	}))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("reading: %v", err)
	}
	if string(data) != "movetext" {
		t.Errorf("read %q, want %q", data, "movetext")
	}
	if lastRead != int64(len("movetext")) {
		t.Errorf("progress read = %d, want %d", lastRead, len("movetext"))
	}
	if lastTotal != int64(len("movetext")) {
		t.Errorf("progress total = %d, want %d", lastTotal, len("movetext"))
	}
}

func TestOpen_HTTPStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	_, err := Open(context.Background(), server.URL)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Open() error = %v, want ErrNotFound", err)
	}
}

func TestSplitObjectRef(t *testing.T) {
	tests := []struct {
		name       string
		ref        string
		scheme     string
		wantBucket string
		wantKey    string
		wantErr    bool
	}{
		{name: "gs", ref: "gs://dumps/lichess/2024-01.pgn.zst", scheme: "gs://", wantBucket: "dumps", wantKey: "lichess/2024-01.pgn.zst"},
		{name: "s3", ref: "s3://archive/games.pgn", scheme: "s3://", wantBucket: "archive", wantKey: "games.pgn"},
		{name: "missing key", ref: "gs://dumps", scheme: "gs://", wantErr: true},
		{name: "empty bucket", ref: "s3:///games.pgn", scheme: "s3://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bucket, key, err := splitObjectRef(tt.ref, tt.scheme)
			if (err != nil) != tt.wantErr {
				t.Fatalf("splitObjectRef() error = %v, wantErr %v", err, tt.wantErr)
			}
			if bucket != tt.wantBucket || key != tt.wantKey {
				t.Errorf("splitObjectRef() = (%q, %q), want (%q, %q)", bucket, key, tt.wantBucket, tt.wantKey)
			}
		})
	}
}

func TestDecompress(t *testing.T) {
	payload := []byte("[Event \"Test\"]\n\n1. e4 e5 *\n")

	var gzBuf bytes.Buffer
	gw := gzip.NewWriter(&gzBuf)
	gw.Write(payload)
	gw.Close()

	var zstBuf bytes.Buffer
	zw, err := zstd.NewWriter(&zstBuf)
	if err != nil {
		t.Fatal(err)
	}
	zw.Write(payload)
	zw.Close()

	tests := []struct {
		name string
		ref  string
		data []byte
	}{
		{name: "plain", ref: "games.pgn", data: payload},
		{name: "gzip", ref: "games.pgn.gz", data: gzBuf.Bytes()},
		{name: "zstd", ref: "games.pgn.zst", data: zstBuf.Bytes()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rc, err := Decompress(io.NopCloser(bytes.NewReader(tt.data)), tt.ref)
			if err != nil {
				t.Fatalf("Decompress() error = %v", err)
			}
			defer rc.Close()

			got, err := io.ReadAll(rc)
			if err != nil {
				t.Fatalf("reading: %v", err)
			}
			if !bytes.Equal(got, payload) {
				t.Errorf("read %q, want %q", got, payload)
			}
		})
	}
}
