// Command geomdemo evaluates a geom scene file and prints what collides and
// what the rays hit, optionally rendering the result to a PNG.
//
// Usage:
//
//	geomdemo -scene level.yaml [-png out.png] [-scale 40] [-labels] [-lang en] [-v]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/geom"
	"github.com/gogpu/geom/internal/raster"
	"github.com/gogpu/geom/scene"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, "geomdemo:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("geomdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		scenePath = fs.String("scene", "", "scene file (YAML)")
		pngPath   = fs.String("png", "", "write a rendering to this PNG file")
		scale     = fs.Float64("scale", 40, "pixels per world unit in the rendering")
		labels    = fs.Bool("labels", false, "draw shape names in the rendering")
		lang      = fs.String("lang", "en", "language tag for number formatting")
		verbose   = fs.Bool("v", false, "debug logging")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *scenePath == "" {
		fs.Usage()
		return errors.New("-scene is required")
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	geom.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer geom.SetLogger(nil)

	tag, err := language.Parse(*lang)
	if err != nil {
		return fmt.Errorf("-lang: %w", err)
	}

	cfg, err := scene.LoadFile(*scenePath)
	if err != nil {
		return err
	}
	s, err := cfg.Build()
	if err != nil {
		return err
	}
	rep, err := scene.Evaluate(ctx, s)
	if err != nil {
		return err
	}

	printReport(message.NewPrinter(tag), stdout, rep)

	if *pngPath != "" {
		img, err := raster.Render(s, rep, raster.Options{Scale: *scale, Labels: *labels})
		if err != nil {
			return err
		}
		if err := writeFile(*pngPath, func(w io.Writer) error { return raster.WritePNG(w, img) }); err != nil {
			return err
		}
		geom.Logger().Info("rendering saved", "path", *pngPath,
			"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func printReport(p *message.Printer, w io.Writer, rep *scene.Report) {
	p.Fprintf(w, "Shapes (%d)\n", len(rep.Shapes))
	for _, sh := range rep.Shapes {
		b := sh.Bounds
		p.Fprintf(w, "  %-12s %-8v area %10.3f  bounds (%.2f, %.2f) %.2f x %.2f\n",
			sh.Name, sh.Kind, sh.Area, b.Pos.X, b.Pos.Y, b.Width, b.Height)
	}

	p.Fprintf(w, "Collisions (%d)\n", len(rep.Collisions))
	for _, c := range rep.Collisions {
		if c.HasMTV {
			p.Fprintf(w, "  %s x %s  mtv (%.3f, %.3f)\n", c.A, c.B, c.MTV.X, c.MTV.Y)
		} else {
			p.Fprintf(w, "  %s x %s\n", c.A, c.B)
		}
	}

	p.Fprintf(w, "Rays (%d)\n", len(rep.Rays))
	for _, r := range rep.Rays {
		if !r.Hit {
			p.Fprintf(w, "  %-12s no hit\n", r.Name)
			continue
		}
		p.Fprintf(w, "  %-12s hit %s at (%.3f, %.3f) fraction %.3f normal (%.3f, %.3f)\n",
			r.Name, r.Target, r.Point.X, r.Point.Y, r.Fraction, r.Normal.X, r.Normal.Y)
	}

	p.Fprintf(w, "Grids (%d)\n", len(rep.Grids))
	for _, g := range rep.Grids {
		if !g.Hit {
			p.Fprintf(w, "  %-12s no hit\n", g.Name)
			continue
		}
		p.Fprintf(w, "  %-12s hit cell (%.0f, %.0f) at (%.3f, %.3f) fraction %.3f\n",
			g.Name, g.GridPos.X, g.GridPos.Y, g.Point.X, g.Point.Y, g.Fraction)
	}
}
