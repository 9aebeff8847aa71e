// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package voterstore

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/bureau-foundation/voterlookup/lib/netutil"
)

// HTTPLoader fetches the dataset with a single GET request.
type HTTPLoader struct {
	endpoint string
	client   *http.Client
}

// NewHTTPLoader creates a loader for endpoint whose requests are
// bounded by timeout end to end. A non-positive timeout selects
// [DefaultTimeout].
func NewHTTPLoader(endpoint string, timeout time.Duration) *HTTPLoader {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPLoader{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Endpoint returns the URL this loader fetches.
func (loader *HTTPLoader) Endpoint() string { return loader.endpoint }

// Load issues the GET and parses the body. There is no retry: any
// transport error, timeout, non-2xx status, or undecodable body is
// returned as a [*LoadError].
func (loader *HTTPLoader) Load(ctx context.Context) (LoadResult, error) {
	started := time.Now()

	request, err := http.NewRequestWithContext(ctx, http.MethodGet, loader.endpoint, nil)
	if err != nil {
		return LoadResult{}, &LoadError{Stage: StageRequest, Err: err}
	}
	request.Header.Set("Accept", "application/json")
	request.Header.Set("Accept-Encoding", "gzip")

	response, err := loader.client.Do(request)
	if err != nil {
		return LoadResult{}, &LoadError{Stage: StageRequest, Err: err}
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return LoadResult{}, &LoadError{
			Stage: StageStatus,
			Err:   fmt.Errorf("HTTP %d: %s", response.StatusCode, netutil.ErrorBody(response.Body)),
		}
	}

	data, err := netutil.ReadBody(response)
	if err != nil {
		return LoadResult{}, &LoadError{Stage: StageRead, Err: err}
	}

	return parseBody(data, loader.endpoint, started)
}
