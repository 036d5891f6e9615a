// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package animtex

import (
	"log/slog"
)

// blit copies the current pixel content of the draw surface into the
// display surface. It is a straight copy with no scaling: the pair
// invariant guarantees both surfaces share physical dimensions.
//
// Returns false (a silent skip, logged at debug only) when the pair is nil
// or either dimension is zero — both can legitimately occur transiently
// during a resize. blit never blocks on the GPU; the caller is responsible
// for marking the host texture dirty afterwards.
func blit(pair *SurfacePair) bool {
	if pair == nil {
		return false
	}
	w, h := pair.Width(), pair.Height()
	if w == 0 || h == 0 || pair.Draw.width != w || pair.Draw.height != h {
		Logger().Debug("animtex: blit skipped", slog.Int("width", w), slog.Int("height", h))
		return false
	}
	copy(pair.Display.data, pair.Draw.data)
	return true
}
