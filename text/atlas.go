package text

import (
	"fmt"
	"image"
	"math"

	lru "github.com/hashicorp/golang-lru"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/canvas/internal/filter"
	texture "github.com/gogpu/canvas/internal/image"
	"github.com/gogpu/canvas/internal/path"
	"github.com/gogpu/canvas/internal/raster"
)

// blurSigma converts a blur radius into a Gaussian sigma.
const blurSigma = 0.57735

// glyphTolerance is the flattening tolerance of glyph outlines in pixels.
const glyphTolerance = 0.1

// glyphKey identifies a rasterized glyph. Size and blur are quantized to
// tenths of a pixel.
type glyphKey struct {
	src  *FontSource
	id   uint16
	size int32
	blur int32
}

// AtlasGlyph locates a glyph mask inside the atlas.
type AtlasGlyph struct {
	X, Y, W, H int // mask rectangle in the atlas
	OffX, OffY int // mask origin relative to the pen position
}

// Atlas packs glyph masks into an alpha texture.
//
// Masks are placed on shelves, left to right and top to bottom. Glyph
// lookups go through an LRU cache; when the texture runs out of space the
// atlas is cleared and repacking starts over.
//
// Atlas is not safe for concurrent use.
type Atlas struct {
	tex   *texture.Texture
	mask  *image.Alpha
	cache *lru.Cache

	shelfX, shelfY, shelfH int

	path   *path.Path
	raster *raster.Rasterizer
	resets int
}

// NewAtlas creates an empty w×h atlas remembering up to cacheSize glyphs.
func NewAtlas(w, h, cacheSize int) (*Atlas, error) {
	tex, err := texture.New(w, h, texture.FormatAlpha, 0, nil)
	if err != nil {
		return nil, fmt.Errorf("text: atlas: %w", err)
	}
	cache, err := lru.New(cacheSize)
	if err != nil {
		return nil, fmt.Errorf("text: atlas cache: %w", err)
	}
	return &Atlas{
		tex:    tex,
		mask:   image.NewAlpha(image.Rect(0, 0, w, h)),
		cache:  cache,
		path:   path.New(glyphTolerance, 0.01),
		raster: raster.NewRasterizer(image.Rectangle{}),
	}, nil
}

// Texture returns the atlas texture.
func (a *Atlas) Texture() *texture.Texture {
	return a.tex
}

// Size returns the atlas dimensions.
func (a *Atlas) Size() (w, h int) {
	return a.tex.Size()
}

// Resets returns how many times the atlas has been cleared.
func (a *Atlas) Resets() int {
	return a.resets
}

// Reset clears every glyph. The shelves and cache are cleared even when
// the texture upload fails.
func (a *Atlas) Reset() error {
	clear(a.mask.Pix)
	err := a.tex.Update(a.mask.Pix)
	a.cache.Purge()
	a.shelfX, a.shelfY, a.shelfH = 0, 0, 0
	a.resets++
	if err != nil {
		return fmt.Errorf("text: atlas reset: %w", err)
	}
	return nil
}

// Glyph returns the atlas location of glyph id of src rendered at size
// pixels with the given blur, rasterizing it on first use. ok is false when
// the glyph has no ink, does not fit even in an empty atlas, or could not be
// uploaded to the texture.
func (a *Atlas) Glyph(src *FontSource, id uint16, size, blur float64) (g AtlasGlyph, ok bool) {
	key := glyphKey{
		src:  src,
		id:   id,
		size: int32(math.Round(size * 10)),
		blur: int32(math.Round(blur * 10)),
	}
	if v, hit := a.cache.Get(key); hit {
		g = v.(AtlasGlyph)
		return g, g.W > 0
	}

	mask, offX, offY, inked := a.render(src, id, float64(key.size)/10, float64(key.blur)/10)
	if !inked {
		a.cache.Add(key, AtlasGlyph{})
		return AtlasGlyph{}, false
	}
	w, h := mask.Rect.Dx(), mask.Rect.Dy()
	x, y, placed := a.alloc(w, h)
	if !placed {
		if a.Reset() != nil {
			return AtlasGlyph{}, false
		}
		if x, y, placed = a.alloc(w, h); !placed {
			return AtlasGlyph{}, false
		}
	}

	for row := range h {
		copy(a.mask.Pix[(y+row)*a.mask.Stride+x:], mask.Pix[row*mask.Stride:row*mask.Stride+w])
	}
	if err := a.tex.UpdateRegion(x, y, w, h, a.mask.Pix); err != nil {
		// Not cached, so the next call retries the upload.
		return AtlasGlyph{}, false
	}

	g = AtlasGlyph{X: x, Y: y, W: w, H: h, OffX: offX, OffY: offY}
	a.cache.Add(key, g)
	return g, true
}

// alloc reserves a w×h rectangle on the shelves.
func (a *Atlas) alloc(w, h int) (x, y int, ok bool) {
	aw, ah := a.tex.Size()
	if w > aw || h > ah {
		return 0, 0, false
	}
	if a.shelfX+w > aw {
		a.shelfY += a.shelfH
		a.shelfX, a.shelfH = 0, 0
	}
	if a.shelfY+h > ah {
		return 0, 0, false
	}
	x, y = a.shelfX, a.shelfY
	a.shelfX += w
	a.shelfH = max(a.shelfH, h)
	return x, y, true
}

// render rasterizes a glyph outline into a padded mask. offX and offY give
// the mask origin relative to the pen position.
func (a *Atlas) render(src *FontSource, id uint16, size, blur float64) (mask *image.Alpha, offX, offY int, ok bool) {
	minX, minY, maxX, maxY, inked := src.inkBounds(id, size)
	if !inked {
		return nil, 0, 0, false
	}
	segs, err := src.outline(id, size)
	if err != nil || len(segs) == 0 {
		return nil, 0, 0, false
	}

	sigma := blur * blurSigma
	pad := 1 + filter.KernelRadius(sigma)
	offX = int(math.Floor(minX)) - pad
	offY = int(math.Floor(minY)) - pad
	w := int(math.Ceil(maxX)) - int(math.Floor(minX)) + 2*pad
	h := int(math.Ceil(maxY)) - int(math.Floor(minY)) + 2*pad

	pt := func(p [3]fixed.Point26_6, i int) path.Point {
		return path.Point{X: fixedToFloat(p[i].X) - float64(offX), Y: fixedToFloat(p[i].Y) - float64(offY)}
	}
	a.path.Reset()
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			a.path.MoveTo(pt(seg.Args, 0))
		case sfnt.SegmentOpLineTo:
			a.path.LineTo(pt(seg.Args, 0))
		case sfnt.SegmentOpQuadTo:
			a.path.QuadTo(pt(seg.Args, 0), pt(seg.Args, 1))
		case sfnt.SegmentOpCubeTo:
			a.path.CubicTo(pt(seg.Args, 0), pt(seg.Args, 1), pt(seg.Args, 2))
		}
	}

	// Glyph contours keep their own orientation; counters wind the other way.
	a.raster.Reset(image.Rect(0, 0, w, h))
	for _, sp := range a.path.Subpaths() {
		a.raster.AddPolygon(sp.Points)
	}
	mask = image.NewAlpha(image.Rect(0, 0, w, h))
	a.raster.Rasterize(raster.FillRuleNonZero, true, func(y, x0 int, cov []float32) {
		row := mask.Pix[y*mask.Stride+x0:]
		for i, c := range cov {
			row[i] = uint8(c*255 + 0.5)
		}
	})
	if sigma > 0 {
		filter.BlurAlpha(mask, sigma)
	}
	return mask, offX, offY, true
}
