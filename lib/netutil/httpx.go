// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package netutil provides HTTP body helpers for the dataset loader.
//
// Every read is bounded at MaxResponseSize so a misbehaving server
// cannot exhaust memory. The bound applies to the decoded size: a
// gzip-encoded body is decompressed with klauspost/compress before the
// limit is checked.
package netutil

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// MaxResponseSize is the bound on decoded response bodies: 256 MB. A
// full ward roll is a few tens of megabytes of JSON; the bound exists
// only to stop a pathological response.
const MaxResponseSize int64 = 256 << 20

// errorExcerptSize caps how much of an error body is kept for logs.
const errorExcerptSize = 512

// ErrResponseTooLarge is returned when a decoded body exceeds
// MaxResponseSize.
var ErrResponseTooLarge = errors.New("response body exceeds size limit")

// ReadResponse reads body up to MaxResponseSize bytes. A body longer
// than the limit returns ErrResponseTooLarge rather than a silently
// truncated document.
func ReadResponse(body io.Reader) ([]byte, error) {
	return readLimited(body, MaxResponseSize)
}

func readLimited(body io.Reader, limit int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(body, limit+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > limit {
		return nil, ErrResponseTooLarge
	}
	return data, nil
}

// ReadBody reads an HTTP response body, undoing a gzip
// Content-Encoding when the server applied one. Requests that set
// Accept-Encoding explicitly disable net/http's transparent
// decompression, so callers that ask for gzip must read through here.
func ReadBody(response *http.Response) ([]byte, error) {
	body := io.Reader(response.Body)
	if strings.EqualFold(strings.TrimSpace(response.Header.Get("Content-Encoding")), "gzip") {
		reader, err := gzip.NewReader(response.Body)
		if err != nil {
			return nil, fmt.Errorf("opening gzip body: %w", err)
		}
		defer reader.Close()
		body = reader
	}
	return ReadResponse(body)
}

// ErrorBody reads the start of an error response body for diagnostic
// messages. Read errors are ignored; a partial body is still useful.
func ErrorBody(body io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(body, errorExcerptSize))
	return strings.TrimSpace(string(data))
}
