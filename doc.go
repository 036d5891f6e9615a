// Package animtex synchronizes an external animation engine with a host
// renderer's frame loop, exposing the engine's output as a host texture.
//
// # Overview
//
// animtex bridges two collaborators it does not implement itself: an
// animation engine that rasterizes frames into a pixel surface, and a host
// renderer that owns a GPU texture and a per-frame clock. The adapter
// provisions a pair of raster surfaces (one the engine draws into, one the
// host texture reads from), binds the engine to the draw surface, and copies
// fresh pixels across once per host frame, marking the texture dirty so the
// host uploads it on its next render pass.
//
// # Quick Start
//
//	import "github.com/gogpu/animtex"
//
//	a, err := animtex.New(host, engine, "https://example.com/spinner.anim",
//	    animtex.WithLogicalSize(256))
//	if err != nil {
//	    return err
//	}
//	if err := a.Start(ctx); err != nil {
//	    return err
//	}
//	defer a.Destroy()
//
// After Start returns the adapter is ready: the first frame is already
// present in the display surface and the frame pump is running. Swap the
// animation at runtime with SetSource; a failed swap leaves the previous
// content playing.
//
// # Collaborators
//
// The host side is a minimal capability interface (Host, Texture,
// FrameClock) so the core works against any renderer. Ready-made hosts live
// in integration/gpuhost (gogpu/gpucontext device providers) and
// integration/ebitenhost (Ebitengine). The engine side is the Engine
// interface; engine/flipbook provides a small reference implementation.
//
// # Architecture
//
// The package is organized into:
//   - Public API: Adapter, Surface, SurfacePair, Engine, Host
//   - Integrations: integration/gpuhost, integration/ebitenhost
//   - Reference engine: engine/flipbook
package animtex
