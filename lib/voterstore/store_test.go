// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package voterstore

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/bureau-foundation/voterlookup/lib/voter"
)

// countingLoader records how many times Load runs.
type countingLoader struct {
	calls  atomic.Int32
	result LoadResult
	err    error
}

func (loader *countingLoader) Load(context.Context) (LoadResult, error) {
	loader.calls.Add(1)
	return loader.result, loader.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestStoreLoadsOnce(t *testing.T) {
	loader := &countingLoader{result: LoadResult{
		Records: []voter.Record{{FirstNameEnglish: "a"}, {FirstNameEnglish: "b"}},
		Shape:   voter.ShapeList,
	}}
	store := NewStore(loader, discardLogger())

	first, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("first Load: %v", err)
	}
	second, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("second Load: %v", err)
	}

	if loader.calls.Load() != 1 {
		t.Errorf("loader ran %d times, want 1", loader.calls.Load())
	}
	if len(first.Records) != 2 || len(second.Records) != 2 {
		t.Errorf("records = %d/%d, want 2/2", len(first.Records), len(second.Records))
	}
}

func TestStoreConcurrentLoadsShareOneFetch(t *testing.T) {
	loader := &countingLoader{result: LoadResult{Records: []voter.Record{}}}
	store := NewStore(loader, discardLogger())

	var group sync.WaitGroup
	for range 16 {
		group.Add(1)
		go func() {
			defer group.Done()
			store.Load(context.Background())
		}()
	}
	group.Wait()

	if loader.calls.Load() != 1 {
		t.Errorf("loader ran %d times under concurrency, want 1", loader.calls.Load())
	}
}

func TestStoreFailureIsTerminal(t *testing.T) {
	loader := &countingLoader{err: &LoadError{Stage: StageRequest, Err: errors.New("dial tcp: connection refused")}}
	var logs bytes.Buffer
	store := NewStore(loader, slog.New(slog.NewTextHandler(&logs, nil)))

	for attempt := range 3 {
		result, err := store.Load(context.Background())
		if !errors.Is(err, ErrLoadFailed) {
			t.Fatalf("attempt %d: expected ErrLoadFailed, got %v", attempt, err)
		}
		if len(result.Records) != 0 {
			t.Errorf("attempt %d: failed load should carry no records", attempt)
		}
	}
	if loader.calls.Load() != 1 {
		t.Errorf("loader ran %d times, want 1 (no retry)", loader.calls.Load())
	}
	if !strings.Contains(logs.String(), "stage=request") {
		t.Errorf("failure log should carry the stage, got %q", logs.String())
	}
}

func TestStoreWarnsOnUnknownShape(t *testing.T) {
	loader := &countingLoader{result: LoadResult{Records: []voter.Record{}, Shape: voter.ShapeUnknown}}
	var logs bytes.Buffer
	store := NewStore(loader, slog.New(slog.NewTextHandler(&logs, nil)))

	if _, err := store.Load(context.Background()); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !strings.Contains(logs.String(), "level=WARN") {
		t.Errorf("unknown shape should log a warning, got %q", logs.String())
	}
}

func TestLoadErrorMessage(t *testing.T) {
	err := &LoadError{Stage: StageStatus, Err: errors.New("HTTP 502: bad gateway")}
	want := "voter dataset load failed at status stage: HTTP 502: bad gateway"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
