// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package voterstore

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/zeebo/blake3"

	"github.com/bureau-foundation/voterlookup/lib/voter"
)

const (
	// DefaultEndpoint is the upstream voter API, asking for the
	// complete unpaginated roll.
	DefaultEndpoint = "https://prabhag7-cmz1.vercel.app/api/voters?limit=all"

	// DefaultTimeout bounds the whole request, body included. The
	// full roll is large and the upstream is a cold-starting
	// serverless function, hence the generous bound.
	DefaultTimeout = 180 * time.Second
)

// FailureMessage is the only text shown to the user when the dataset
// cannot be loaded.
const FailureMessage = "Data load नहीं हो पाया। कृपया refresh करें।"

// Loader fetches and parses the voter dataset. Implementations perform
// exactly one fetch per call; [Store] makes sure they are called once.
type Loader interface {
	Load(ctx context.Context) (LoadResult, error)
}

// LoadResult describes a successfully loaded dataset.
type LoadResult struct {
	// Records is the normalized record list in upstream order. Never
	// nil on success; empty for an unrecognized document shape.
	Records []voter.Record

	// Shape is the response layout the records were found in.
	Shape voter.Shape

	// Source identifies where the data came from (URL or file path).
	Source string

	// Bytes is the decoded body size.
	Bytes int

	// Digest is the hex BLAKE3-256 of the decoded body, so log lines
	// from different sessions can tell whether they saw the same roll.
	Digest string

	// Elapsed is the wall time from request start to parsed records.
	Elapsed time.Duration
}

// Stage identifies which step of a load failed.
type Stage string

const (
	// StageRequest covers building the request and the transport
	// round trip, including connect and header timeouts.
	StageRequest Stage = "request"
	// StageStatus is a non-2xx HTTP status.
	StageStatus Stage = "status"
	// StageRead covers reading and decompressing the body.
	StageRead Stage = "read"
	// StageDecode is a body that is not a usable JSON document.
	StageDecode Stage = "decode"
)

// ErrLoadFailed matches every [*LoadError] under errors.Is.
var ErrLoadFailed = errors.New("voter dataset load failed")

// LoadError reports a failed load and the stage it failed at.
type LoadError struct {
	Stage Stage
	Err   error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("voter dataset load failed at %s stage: %v", e.Stage, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrLoadFailed) true for every LoadError.
func (e *LoadError) Is(target error) bool { return target == ErrLoadFailed }

// Timeout reports whether the failure was the client-side deadline.
func (e *LoadError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// parseBody turns a fetched body into a LoadResult. Shared by every
// loader so all sources accept the same document shapes.
func parseBody(data []byte, source string, started time.Time) (LoadResult, error) {
	records, shape, err := voter.ParseDataset(data)
	if err != nil {
		return LoadResult{}, &LoadError{Stage: StageDecode, Err: err}
	}
	digest := blake3.Sum256(data)
	return LoadResult{
		Records: records,
		Shape:   shape,
		Source:  source,
		Bytes:   len(data),
		Digest:  hex.EncodeToString(digest[:]),
		Elapsed: time.Since(started),
	}, nil
}
