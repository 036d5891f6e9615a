// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package animtex

import (
	"errors"
	"strings"
	"testing"
)

func TestFetchErrorFormatting(t *testing.T) {
	withStatus := &FetchError{Source: "a.anim", StatusCode: 404}
	if msg := withStatus.Error(); !strings.Contains(msg, "404") || !strings.Contains(msg, "a.anim") {
		t.Errorf("Error() = %q, want source and status", msg)
	}

	cause := errors.New("connection refused")
	withCause := &FetchError{Source: "a.anim", Err: cause}
	if msg := withCause.Error(); !strings.Contains(msg, "connection refused") {
		t.Errorf("Error() = %q, want cause", msg)
	}
	if !errors.Is(withCause, cause) {
		t.Error("FetchError does not unwrap to its cause")
	}
}

func TestEngineCreateErrorUnwrap(t *testing.T) {
	cause := errors.New("bad magic")
	err := &EngineCreateError{Source: "a.anim", Err: cause}
	if !errors.Is(err, cause) {
		t.Error("EngineCreateError does not unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "a.anim") {
		t.Errorf("Error() = %q, want source", err.Error())
	}
}

func TestDisposalErrorUnwrap(t *testing.T) {
	cause := errors.New("device lost")
	err := &DisposalError{Op: "texture", Err: cause}
	if !errors.Is(err, cause) {
		t.Error("DisposalError does not unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "texture") {
		t.Errorf("Error() = %q, want op", err.Error())
	}
}
