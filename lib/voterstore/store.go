// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package voterstore

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/bureau-foundation/voterlookup/lib/voter"
)

// Store holds the session's voter dataset. The underlying Loader runs
// at most once; every Load call after the first returns the same
// result and error.
type Store struct {
	loader Loader
	logger *slog.Logger

	once   sync.Once
	result LoadResult
	err    error
}

// NewStore wraps loader. Outcomes are logged to logger.
func NewStore(loader Loader, logger *slog.Logger) *Store {
	return &Store{loader: loader, logger: logger}
}

// Load runs the loader on the first call and records the outcome.
// Concurrent first calls block until the single load finishes.
func (store *Store) Load(ctx context.Context) (LoadResult, error) {
	store.once.Do(func() {
		store.result, store.err = store.loader.Load(ctx)
		store.logOutcome()
	})
	return store.result, store.err
}

func (store *Store) logOutcome() {
	if store.err != nil {
		attrs := []any{"error", store.err}
		var loadErr *LoadError
		if errors.As(store.err, &loadErr) {
			attrs = append(attrs, "stage", string(loadErr.Stage), "timeout", loadErr.Timeout())
		}
		store.logger.Error("voter dataset load failed", attrs...)
		return
	}

	store.logger.Info("voter dataset loaded",
		"source", store.result.Source,
		"records", len(store.result.Records),
		"shape", store.result.Shape.String(),
		"bytes", store.result.Bytes,
		"digest", store.result.Digest,
		"elapsed", store.result.Elapsed,
	)
	if store.result.Shape == voter.ShapeUnknown {
		store.logger.Warn("voter dataset has no recognized record list; showing an empty roll",
			"source", store.result.Source,
			"bytes", store.result.Bytes,
		)
	}
}
