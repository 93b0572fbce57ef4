// Command shapes draws a scene of random shapes and saves it as an image.
//
// The scene consists of a fixed rectangle and triangle, followed by random
// lines, points and circles.  Use -seed to reproduce a picture.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	"seehuhn.de/go/shapes"
	"seehuhn.de/go/shapes/internal/config"
	"seehuhn.de/go/shapes/internal/output"
	"seehuhn.de/go/shapes/internal/preview"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	conf, err := config.Load(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	} else if err != nil {
		fmt.Fprintln(stderr, "shapes:", err)
		return 2
	}

	level := slog.LevelInfo
	if conf.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	shapes.SetLogger(logger)
	defer shapes.SetLogger(nil)

	if err := render(conf, stdout, logger); err != nil {
		logger.Error("rendering failed", "error", err)
		return 1
	}
	return 0
}

// render draws the scene described by conf and writes the output file.
func render(conf config.Config, stdout io.Writer, logger *slog.Logger) error {
	bg, err := conf.BackgroundColor()
	if err != nil {
		return err
	}

	seed := conf.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	logger.Info("drawing", "width", conf.Width, "height", conf.Height, "seed", seed)
	rng := rand.New(rand.NewPCG(seed, seed))

	canvas := shapes.NewCanvas(conf.Width, conf.Height)
	canvas.Fill(bg)

	var dst shapes.Surface = canvas
	var pv *preview.Braille
	if conf.Preview {
		cols := conf.PreviewWidth
		rows := max(1, cols*conf.Height/(2*conf.Width))
		pv = preview.NewBraille(conf.Width, conf.Height, cols, rows)
		dst = shapes.Tee(canvas, pv)
	}

	for _, s := range scene(conf, rng) {
		logger.Debug("shape", "type", fmt.Sprintf("%T", s), "bounds", s.Bounds())
		s.Draw(dst, rng)
	}

	if err := output.Save(conf.Output, canvas.Image(), conf.Scale); err != nil {
		return err
	}
	logger.Info("saved", "file", conf.Output, "scale", conf.Scale)

	if pv != nil {
		if _, err := io.WriteString(stdout, pv.String()); err != nil {
			return err
		}
	}
	return nil
}

// scene returns the shapes to draw, in drawing order.
func scene(conf config.Config, rng *rand.Rand) []shapes.Shape {
	w, h := conf.Width, conf.Height
	res := []shapes.Shape{
		shapes.NewRectangle(shapes.Pt(150, 300), shapes.Pt(50, 60)),
		shapes.NewTriangle(shapes.Pt(500, 500), shapes.Pt(250, 700), shapes.Pt(700, 800)),
	}
	for range conf.Lines {
		res = append(res, shapes.RandomLine(rng, w, h))
	}
	for range conf.Points {
		res = append(res, shapes.RandomPoint(rng, w, h))
	}
	for range conf.Circles {
		res = append(res, shapes.RandomCircle(rng, w, h))
	}
	return res
}
