// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package netutil

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
)

func TestReadResponse(t *testing.T) {
	t.Run("normal body", func(t *testing.T) {
		data, err := ReadResponse(bytes.NewReader([]byte(`[{"name":"a"}]`)))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != `[{"name":"a"}]` {
			t.Fatalf("got %q", data)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		data, err := ReadResponse(bytes.NewReader(nil))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(data) != 0 {
			t.Fatalf("expected empty, got %d bytes", len(data))
		}
	})

	t.Run("oversized body", func(t *testing.T) {
		_, err := readLimited(io.LimitReader(zeroReader{}, 17), 16)
		if !errors.Is(err, ErrResponseTooLarge) {
			t.Fatalf("expected ErrResponseTooLarge, got %v", err)
		}
		data, err := readLimited(io.LimitReader(zeroReader{}, 16), 16)
		if err != nil || len(data) != 16 {
			t.Fatalf("body at the limit: got %d bytes, err %v", len(data), err)
		}
	})

	t.Run("read error propagates", func(t *testing.T) {
		if _, err := ReadResponse(&failReader{}); err == nil {
			t.Fatal("expected error from failing reader")
		}
	})
}

func gzipBytes(t *testing.T, plain string) []byte {
	t.Helper()
	var buffer bytes.Buffer
	writer := gzip.NewWriter(&buffer)
	if _, err := writer.Write([]byte(plain)); err != nil {
		t.Fatalf("gzip write: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("gzip close: %v", err)
	}
	return buffer.Bytes()
}

func response(body []byte, contentEncoding string) *http.Response {
	header := http.Header{}
	if contentEncoding != "" {
		header.Set("Content-Encoding", contentEncoding)
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     header,
		Body:       io.NopCloser(bytes.NewReader(body)),
	}
}

func TestReadBody(t *testing.T) {
	t.Run("identity encoding", func(t *testing.T) {
		data, err := ReadBody(response([]byte(`{"data":[]}`), ""))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != `{"data":[]}` {
			t.Fatalf("got %q", data)
		}
	})

	t.Run("gzip encoding", func(t *testing.T) {
		data, err := ReadBody(response(gzipBytes(t, `{"voters":[{"name":"a"}]}`), "gzip"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != `{"voters":[{"name":"a"}]}` {
			t.Fatalf("got %q", data)
		}
	})

	t.Run("gzip header is case-insensitive", func(t *testing.T) {
		data, err := ReadBody(response(gzipBytes(t, `[]`), " GZIP "))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != `[]` {
			t.Fatalf("got %q", data)
		}
	})

	t.Run("corrupt gzip", func(t *testing.T) {
		if _, err := ReadBody(response([]byte("not gzip at all"), "gzip")); err == nil {
			t.Fatal("expected error for corrupt gzip body")
		}
	})
}

func TestErrorBody(t *testing.T) {
	t.Run("returns trimmed body", func(t *testing.T) {
		got := ErrorBody(strings.NewReader("  upstream timeout\n"))
		if got != "upstream timeout" {
			t.Fatalf("got %q", got)
		}
	})

	t.Run("truncates long bodies", func(t *testing.T) {
		got := ErrorBody(strings.NewReader(strings.Repeat("x", errorExcerptSize*3)))
		if len(got) != errorExcerptSize {
			t.Fatalf("excerpt length = %d, want %d", len(got), errorExcerptSize)
		}
	})

	t.Run("read error returns empty", func(t *testing.T) {
		if got := ErrorBody(&failReader{}); got != "" {
			t.Fatalf("expected empty from failing reader, got %q", got)
		}
	})
}

// failReader always returns an error on Read.
type failReader struct{}

func (*failReader) Read([]byte) (int, error) {
	return 0, fmt.Errorf("simulated read failure")
}

// zeroReader produces an endless stream of zero bytes.
type zeroReader struct{}

func (zeroReader) Read(buffer []byte) (int, error) {
	clear(buffer)
	return len(buffer), nil
}
