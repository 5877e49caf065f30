// Command canvasdemo renders a sample frame with the canvas software renderer.
package main

import (
	"flag"
	"log"
	"log/slog"
	"math"
	"os"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/canvas"
)

func main() {
	var (
		width   = flag.Float64("width", 800, "frame width in logical pixels")
		height  = flag.Float64("height", 600, "frame height in logical pixels")
		ratio   = flag.Float64("ratio", 1, "device pixel ratio")
		output  = flag.String("output", "demo.png", "output file")
		config  = flag.String("config", "", "YAML or TOML settings file")
		verbose = flag.Bool("v", false, "log engine diagnostics")
	)
	flag.Parse()

	if *verbose {
		canvas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := canvas.DefaultConfig()
	if *config != "" {
		var err error
		if cfg, err = canvas.LoadConfig(*config); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	ctx, err := canvas.New(canvas.WithConfig(cfg))
	if err != nil {
		log.Fatalf("Failed to create context: %v", err)
	}
	defer ctx.Close()

	if ctx.CreateFontMem("sans", goregular.TTF, false) == 0 ||
		ctx.CreateFontMem("sans-bold", gobold.TTF, false) == 0 {
		log.Fatal("Failed to load fonts")
	}

	ctx.BeginFrame(*width, *height, *ratio)
	drawBackground(ctx, *width, *height)
	drawShapes(ctx)
	drawStrokes(ctx)
	drawTransforms(ctx)
	drawText(ctx)
	ctx.EndFrame()

	if err := ctx.Pixmap().SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, ctx.Pixmap().Width(), ctx.Pixmap().Height())
}

func fill(ctx *canvas.Context) {
	if err := ctx.Fill(); err != nil {
		log.Printf("fill: %v", err)
	}
}

func stroke(ctx *canvas.Context) {
	if err := ctx.Stroke(); err != nil {
		log.Printf("stroke: %v", err)
	}
}

func drawBackground(ctx *canvas.Context, w, h float64) {
	ctx.BeginPath()
	ctx.Rect(0, 0, w, h)
	ctx.FillPaint(ctx.LinearGradient(0, 0, 0, h, canvas.Hex("#1d2b4f"), canvas.Hex("#4a6fa5")))
	fill(ctx)
}

func drawShapes(ctx *canvas.Context) {
	// Drop shadow under a rounded panel.
	ctx.BeginPath()
	ctx.Rect(40, 40, 340, 220)
	ctx.FillPaint(ctx.BoxGradient(50, 54, 320, 200, 12, 20, canvas.RGBA(0, 0, 0, 128), canvas.Transparent))
	fill(ctx)

	ctx.BeginPath()
	ctx.RoundedRect(50, 50, 320, 200, 12)
	ctx.FillColor(canvas.RGBA(255, 255, 255, 40))
	fill(ctx)

	// Overlapping translucent circles.
	for i, col := range []canvas.Color{canvas.RGBA(255, 80, 80, 200), canvas.RGBA(80, 255, 80, 200), canvas.RGBA(80, 80, 255, 200)} {
		a := float64(i) * 2 * math.Pi / 3
		ctx.BeginPath()
		ctx.Circle(150+30*math.Cos(a), 150+30*math.Sin(a), 50)
		ctx.FillColor(col)
		fill(ctx)
	}

	// A glowing orb with a hole.
	ctx.BeginPath()
	ctx.Circle(290, 150, 60)
	ctx.Circle(290, 150, 25)
	ctx.PathWinding(canvas.Hole)
	ctx.FillPaint(ctx.RadialGradient(290, 150, 25, 60, canvas.HSL(0.12, 1, 0.6), canvas.HSLA(0.95, 1, 0.4, 0)))
	fill(ctx)
}

func drawStrokes(ctx *canvas.Context) {
	joins := []canvas.LineJoin{canvas.LineJoinMiter, canvas.LineJoinRound, canvas.LineJoinBevel}
	caps := []canvas.LineCap{canvas.LineCapButt, canvas.LineCapRound, canvas.LineCapSquare}
	ctx.StrokeColor(canvas.RGB(255, 220, 120))
	ctx.StrokeWidth(10)
	for i := range joins {
		x := 440 + float64(i)*110
		ctx.LineJoin(joins[i])
		ctx.LineCap(caps[i])
		ctx.BeginPath()
		ctx.MoveTo(x, 120)
		ctx.LineTo(x+40, 60)
		ctx.LineTo(x+80, 120)
		stroke(ctx)
	}

	// Curves and hairlines.
	ctx.LineCap(canvas.LineCapRound)
	ctx.StrokeWidth(3)
	ctx.StrokeColor(canvas.White)
	ctx.BeginPath()
	ctx.MoveTo(440, 200)
	ctx.BezierTo(500, 140, 600, 260, 660, 180)
	ctx.QuadTo(700, 140, 760, 200)
	stroke(ctx)

	ctx.StrokeWidth(0.5)
	for i := range 10 {
		y := 220 + float64(i)*3
		ctx.BeginPath()
		ctx.MoveTo(440, y)
		ctx.LineTo(760, y)
		stroke(ctx)
	}
}

func drawTransforms(ctx *canvas.Context) {
	ctx.Save()
	defer ctx.Restore()

	ctx.Translate(200, 420)
	ctx.Scissor(-140, -110, 280, 220)
	for i := range 12 {
		ctx.Save()
		ctx.Rotate(float64(i) * math.Pi / 6)
		ctx.BeginPath()
		ctx.RoundedRectVarying(20, -8, 110, 16, 8, 0, 8, 0)
		ctx.FillColor(canvas.HSLA(float64(i)/12, 0.8, 0.6, 220))
		fill(ctx)
		ctx.Restore()
	}

	ctx.ResetScissor()
	ctx.GlobalCompositeOperation(canvas.Lighter)
	ctx.BeginPath()
	ctx.Ellipse(0, 0, 60, 30)
	ctx.FillColor(canvas.RGBA(60, 60, 120, 255))
	fill(ctx)
}

const sample = "The canvas renderer draws paths, gradients and text into a frame buffer. " +
	"Text boxes wrap at word boundaries and break long words between characters."

func drawText(ctx *canvas.Context) {
	ctx.FontFace("sans-bold")
	ctx.FontSize(28)
	ctx.FillColor(canvas.White)
	ctx.TextAlign(canvas.AlignLeft | canvas.AlignTop)
	ctx.Text(420, 300, "Canvas")

	ctx.FontFace("sans")
	ctx.FontSize(16)
	ctx.TextLineHeight(1.3)
	bounds := ctx.TextBoxBounds(420, 345, 340, sample)
	ctx.BeginPath()
	ctx.RoundedRect(bounds[0]-10, bounds[1]-10, bounds[2]-bounds[0]+20, bounds[3]-bounds[1]+20, 6)
	ctx.FillColor(canvas.RGBA(0, 0, 0, 90))
	fill(ctx)

	ctx.FillColor(canvas.RGB(230, 236, 255))
	ctx.TextBox(420, 345, 340, sample)

	ctx.FontBlur(4)
	ctx.FillColor(canvas.RGBA(0, 0, 0, 160))
	ctx.TextAlign(canvas.AlignCenter | canvas.AlignBaseline)
	ctx.Text(592, 560, "software rendered")
	ctx.FontBlur(0)
	ctx.FillColor(canvas.White)
	ctx.Text(590, 558, "software rendered")
}
