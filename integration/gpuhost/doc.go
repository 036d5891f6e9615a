// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gpuhost adapts a gogpu/gpucontext device provider into an
// animtex.Host.
//
// The host realizes GPU textures lazily: animtex marks a texture dirty
// once per frame, and the application uploads and draws it during its own
// render pass via [Texture.RenderTo]. The application also owns the frame
// clock — call [Host.Step] once per rendered frame:
//
//	host, _ := gpuhost.New(app.GPUContextProvider())
//	a, _ := animtex.New(host, engine, source)
//	_ = a.Start(ctx)
//
//	app.OnFrame(func(dc *gogpu.Context, dt time.Duration) {
//	    host.Step(dt)
//	    _ = a.Texture().(*gpuhost.Texture).RenderTo(dc.AsTextureDrawer(), 0, 0)
//	})
package gpuhost
