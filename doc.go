// Package canvas provides a software backend for nanovg-style 2D vector
// drawing.
//
// # Overview
//
// The Renderer interface is the backend contract: path construction,
// fill and stroke, paints and gradients, affine transforms, scissoring,
// images and text. Context implements it on the CPU. Curves are flattened
// in device space, strokes are expanded into outline polygons, and
// polygons are filled with exact-area anti-aliased coverage, shaded per
// pixel and composited with blend factors.
//
// # Quick Start
//
//	import "github.com/gogpu/canvas"
//
//	ctx, _ := canvas.New()
//	defer ctx.Close()
//
//	ctx.BeginFrame(512, 512, 1)
//	ctx.BeginPath()
//	ctx.RoundedRect(64, 64, 384, 384, 24)
//	ctx.FillPaint(ctx.LinearGradient(64, 64, 448, 448,
//	    canvas.RGB(40, 120, 220), canvas.RGB(10, 30, 80)))
//	_ = ctx.Fill()
//	ctx.EndFrame()
//
//	_ = ctx.Pixmap().SavePNG("output.png")
//
// # Architecture
//
// The library is organized into:
//   - Public API: Renderer, Context, Transform, Color, Paint, Pixmap
//   - Text: fonts, shaping, layout, line breaking and the glyph atlas (text/)
//   - Internal: path (flattening), stroke (outlines), raster (coverage),
//     blend (compositing), image (textures), filter (blur), handle (resource tables)
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
//
// Colors are straight alpha; frame buffers store premultiplied alpha.
//
// # Frames
//
// Drawing happens between BeginFrame and EndFrame. A frame starts as a
// copy of the previous one of the same size; CancelFrame discards it.
package canvas

// Version is the current version of the library.
const Version = "0.1.0"
