// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package animtex

import (
	"errors"
	"fmt"
)

// Common errors returned by Adapter operations.
var (
	// ErrDestroyed is returned when operations are attempted on a destroyed adapter.
	ErrDestroyed = errors.New("animtex: adapter is destroyed")

	// ErrNilHost is returned when a nil Host is passed to New.
	ErrNilHost = errors.New("animtex: nil Host")

	// ErrNilEngine is returned when a nil Engine is passed to New.
	ErrNilEngine = errors.New("animtex: nil Engine")

	// ErrEmptySource is returned when an empty source identifier is given.
	ErrEmptySource = errors.New("animtex: empty source identifier")

	// ErrInvalidSize is returned when a logical size is not positive.
	ErrInvalidSize = errors.New("animtex: logical size must be positive")

	// ErrSuperseded is returned from a load whose result was discarded
	// because a newer SetSource replaced it before it completed.
	// The newer request's outcome is authoritative.
	ErrSuperseded = errors.New("animtex: load superseded by newer request")
)

// FetchError reports a failure to fetch asset bytes for a source.
// StatusCode is the transport status when the transport reported one,
// or zero for transport-level faults.
type FetchError struct {
	Source     string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("animtex: fetch %q: status %d", e.Source, e.StatusCode)
	}
	return fmt.Sprintf("animtex: fetch %q: %v", e.Source, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// EngineCreateError reports that the animation engine rejected asset bytes
// or failed to bind to the draw surface.
type EngineCreateError struct {
	Source string
	Err    error
}

func (e *EngineCreateError) Error() string {
	return fmt.Sprintf("animtex: engine create for %q: %v", e.Source, e.Err)
}

func (e *EngineCreateError) Unwrap() error { return e.Err }

// DisposalError reports a failure while releasing a resource during cleanup.
// Disposal never fails observably: these errors are logged by the adapter
// and never interrupt the surrounding operation. The type exists so hosts
// and engines can return diagnostics from their teardown paths.
type DisposalError struct {
	Op  string
	Err error
}

func (e *DisposalError) Error() string {
	return fmt.Sprintf("animtex: dispose %s: %v", e.Op, e.Err)
}

func (e *DisposalError) Unwrap() error { return e.Err }
