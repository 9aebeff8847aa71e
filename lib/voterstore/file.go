// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package voterstore

import (
	"context"
	"os"
	"time"

	"github.com/tidwall/jsonc"
)

// FileLoader reads the dataset from a local file in any of the shapes
// the API may return. Comments and trailing commas are stripped first,
// so hand-edited fixtures can be annotated.
type FileLoader struct {
	path string
}

// NewFileLoader creates a loader that reads path.
func NewFileLoader(path string) *FileLoader {
	return &FileLoader{path: path}
}

// Path returns the file this loader reads.
func (loader *FileLoader) Path() string { return loader.path }

// Load reads and parses the file. The context is checked before the
// read; the read itself is not interruptible.
func (loader *FileLoader) Load(ctx context.Context) (LoadResult, error) {
	started := time.Now()
	if err := ctx.Err(); err != nil {
		return LoadResult{}, &LoadError{Stage: StageRequest, Err: err}
	}

	data, err := os.ReadFile(loader.path)
	if err != nil {
		return LoadResult{}, &LoadError{Stage: StageRead, Err: err}
	}

	return parseBody(jsonc.ToJSON(data), loader.path, started)
}
