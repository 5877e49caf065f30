package canvas

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/canvas/internal/blend"
	"github.com/gogpu/canvas/internal/handle"
	texture "github.com/gogpu/canvas/internal/image"
	"github.com/gogpu/canvas/internal/path"
	"github.com/gogpu/canvas/internal/raster"
	"github.com/gogpu/canvas/internal/stroke"
	"github.com/gogpu/canvas/text"
)

// distTolerance merges path points closer than this many device pixels.
const distTolerance = 0.01

// Context is the software Renderer. It owns the drawing state stack, the
// current path, the image and font tables and the frame buffers.
//
// A Context is not safe for concurrent use; separate Contexts are
// independent. Context implements io.Closer.
type Context struct {
	cfg Config

	states []state // states[len-1] is current

	path    *path.Path
	stroker *stroke.Expander
	raster  *raster.Rasterizer

	images     *handle.Table[*texture.Texture]
	fonts      *text.FontSet
	atlas      *text.Atlas
	atlasImage int

	front   *Pixmap // last completed frame
	back    *Pixmap // frame in progress
	inFrame bool
	ratio   float64

	colors []blend.Color
	closed bool
}

var _ io.Closer = (*Context)(nil)

// New creates a Context.
//
//	ctx, err := canvas.New()
//	if err != nil {
//	    return err
//	}
//	defer ctx.Close()
//
//	ctx.BeginFrame(320, 240, 1)
//	ctx.BeginPath()
//	ctx.Circle(160, 120, 50)
//	ctx.FillColor(canvas.RGB(255, 192, 0))
//	_ = ctx.Fill()
//	ctx.EndFrame()
//	_ = ctx.Pixmap().SavePNG("circle.png")
func New(opts ...Option) (*Context, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.config.Validate(); err != nil {
		return nil, err
	}

	atlas, err := text.NewAtlas(o.config.AtlasWidth, o.config.AtlasHeight, o.config.GlyphCacheSize)
	if err != nil {
		return nil, fmt.Errorf("canvas: %w", err)
	}
	fonts := o.fonts
	if fonts == nil {
		fonts = text.NewFontSetLanguage(o.config.Language)
	}

	c := &Context{
		cfg:     o.config,
		path:    path.New(o.config.Tolerance, distTolerance),
		stroker: stroke.NewExpander(stroke.DefaultStyle()),
		raster:  raster.NewRasterizer(image.Rectangle{}),
		images:  handle.NewTable[*texture.Texture](),
		fonts:   fonts,
		atlas:   atlas,
		front:   o.pixmap,
		ratio:   1,
	}
	c.stroker.SetTolerance(o.config.Tolerance)
	c.atlasImage = c.images.Add(atlas.Texture())
	c.states = []state{defaultState(c.cfg.AntiAlias)}
	return c, nil
}

// Config returns the settings the Context was created with.
func (c *Context) Config() Config {
	return c.cfg
}

// Fonts returns the Context's font set.
func (c *Context) Fonts() *text.FontSet {
	return c.fonts
}

// Pixmap returns the last completed frame, or nil before the first
// EndFrame when no pixmap was supplied.
func (c *Context) Pixmap() *Pixmap {
	return c.front
}

// Image returns the last completed frame as an image.
func (c *Context) Image() image.Image {
	if c.front == nil {
		return image.NewRGBA(image.Rectangle{})
	}
	return c.front.ToImage()
}

// BeginFrame starts drawing a frame of windowWidth×windowHeight logical
// pixels. The frame buffer holds windowWidth·ratio × windowHeight·ratio
// device pixels and starts as a copy of the last completed frame of that
// size. The state stack is reset to a single default state.
func (c *Context) BeginFrame(windowWidth, windowHeight, devicePixelRatio float64) {
	if c.closed {
		Logger().Warn("canvas: begin frame on closed context")
		return
	}
	if devicePixelRatio <= 0 || math.IsNaN(devicePixelRatio) {
		devicePixelRatio = 1
	}
	fw := math.Ceil(math.Max(0, windowWidth) * devicePixelRatio)
	fh := math.Ceil(math.Max(0, windowHeight) * devicePixelRatio)
	if !pixmapFits(fw, fh) {
		Logger().Warn("canvas: frame too large",
			"width", windowWidth, "height", windowHeight, "ratio", devicePixelRatio)
		c.back = nil
		c.inFrame = false
		return
	}
	w, h := int(fw), int(fh)

	if c.front != nil && c.front.Width() == w && c.front.Height() == h {
		c.back = c.front.clone()
	} else {
		c.back = NewPixmap(w, h)
	}
	c.ratio = devicePixelRatio
	c.inFrame = true
	c.states = append(c.states[:0], defaultState(c.cfg.AntiAlias))
	c.path.Reset()
}

// CancelFrame discards the frame in progress.
func (c *Context) CancelFrame() {
	c.back = nil
	c.inFrame = false
}

// EndFrame completes the frame in progress; it becomes the Pixmap.
func (c *Context) EndFrame() {
	if !c.inFrame {
		return
	}
	c.front = c.back
	c.back = nil
	c.inFrame = false
}

// Close releases fonts and images. Further drawing fails with ErrClosed.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.CancelFrame()
	c.images.Clear()
	return c.fonts.Close()
}
