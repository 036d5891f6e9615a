// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package animtex

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Fetcher retrieves the raw bytes of an animation asset by source
// identifier. Implementations report failure with *FetchError; the adapter
// performs no retries — a failed fetch leaves the previous content intact
// and the caller decides whether to retry.
type Fetcher interface {
	Fetch(ctx context.Context, source string) ([]byte, error)
}

// HTTPFetcher fetches asset bytes over HTTP(S) with a plain GET.
// The zero value uses http.DefaultClient.
type HTTPFetcher struct {
	// Client is the HTTP client to use. Nil means http.DefaultClient.
	Client *http.Client
}

// Fetch performs a single GET for source. A non-2xx status or a transport
// fault is reported as *FetchError carrying the source and status for
// diagnostics.
func (f *HTTPFetcher) Fetch(ctx context.Context, source string) ([]byte, error) {
	client := f.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, &FetchError{Source: source, Err: err}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &FetchError{Source: source, Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Source: source, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Source: source, Err: fmt.Errorf("reading body: %w", err)}
	}
	return data, nil
}
