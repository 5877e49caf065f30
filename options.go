package canvas

import "github.com/gogpu/canvas/text"

// Option configures a Context during creation.
//
// Example:
//
//	// Default settings
//	ctx, err := canvas.New()
//
//	// Settings from a file, drawing over an existing pixmap
//	cfg, _ := canvas.LoadConfig("canvas.yaml")
//	ctx, err := canvas.New(canvas.WithConfig(cfg), canvas.WithPixmap(pm))
type Option func(*options)

// options holds optional configuration for Context creation.
type options struct {
	config Config
	pixmap *Pixmap
	fonts  *text.FontSet
}

// defaultOptions returns the default context options.
func defaultOptions() options {
	return options{config: DefaultConfig()}
}

// WithConfig replaces the engine settings.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// WithPixmap sets the initial frame contents. The first frame whose pixel
// size matches the pixmap draws over it.
func WithPixmap(pm *Pixmap) Option {
	return func(o *options) {
		o.pixmap = pm
	}
}

// WithFontSet makes the Context use fonts instead of creating its own font
// set. The Context takes ownership and closes it on Close.
func WithFontSet(fonts *text.FontSet) Option {
	return func(o *options) {
		o.fonts = fonts
	}
}
