// Package config holds the settings of the shapes command.
//
// Settings are read from an optional JSON file and then overridden by
// command-line flags.  Only flags which are given on the command line
// override the file.
package config

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalid is wrapped by all validation errors.
var ErrInvalid = errors.New("invalid configuration")

// Config describes the scene to draw and where to write it.
type Config struct {
	Width  int `json:"width"`
	Height int `json:"height"`

	// Seed initialises the random number generator.  Zero picks a seed
	// from the global generator.
	Seed uint64 `json:"seed"`

	Points  int `json:"points"`
	Lines   int `json:"lines"`
	Circles int `json:"circles"`

	Output     string `json:"output"`
	Scale      int    `json:"scale"`
	Background string `json:"background"`

	Preview      bool `json:"preview"`
	PreviewWidth int  `json:"preview_width"`

	Verbose bool `json:"verbose"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Width:        1000,
		Height:       1000,
		Points:       1,
		Lines:        1,
		Circles:      50,
		Output:       "image.png",
		Scale:        1,
		Background:   "#000000",
		PreviewWidth: 80,
	}
}

// Load parses the command-line arguments (without the program name).
// If a configuration file is named with -f, it is read first.
func Load(args []string, stderr io.Writer) (Config, error) {
	fs := flag.NewFlagSet("shapes", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fl := Default()
	file := fs.String("f", "", "JSON configuration file")
	fs.IntVar(&fl.Width, "width", fl.Width, "image width")
	fs.IntVar(&fl.Height, "height", fl.Height, "image height")
	fs.Uint64Var(&fl.Seed, "seed", fl.Seed, "random seed (0 for a random seed)")
	fs.IntVar(&fl.Points, "points", fl.Points, "number of random points")
	fs.IntVar(&fl.Lines, "lines", fl.Lines, "number of random lines")
	fs.IntVar(&fl.Circles, "circles", fl.Circles, "number of random circles")
	fs.StringVar(&fl.Output, "o", fl.Output, "output file (.png, .bmp or .tiff)")
	fs.IntVar(&fl.Scale, "scale", fl.Scale, "integer upscaling factor for the output")
	fs.StringVar(&fl.Background, "bg", fl.Background, "background colour as hex")
	fs.BoolVar(&fl.Preview, "preview", fl.Preview, "print a braille preview to stdout")
	fs.IntVar(&fl.PreviewWidth, "preview-width", fl.PreviewWidth, "preview width in terminal cells")
	fs.BoolVar(&fl.Verbose, "v", fl.Verbose, "log every shape")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	conf := Default()
	if *file != "" {
		var err error
		conf, err = readFile(*file, conf)
		if err != nil {
			return Config{}, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			conf.Width = fl.Width
		case "height":
			conf.Height = fl.Height
		case "seed":
			conf.Seed = fl.Seed
		case "points":
			conf.Points = fl.Points
		case "lines":
			conf.Lines = fl.Lines
		case "circles":
			conf.Circles = fl.Circles
		case "o":
			conf.Output = fl.Output
		case "scale":
			conf.Scale = fl.Scale
		case "bg":
			conf.Background = fl.Background
		case "preview":
			conf.Preview = fl.Preview
		case "preview-width":
			conf.PreviewWidth = fl.PreviewWidth
		case "v":
			conf.Verbose = fl.Verbose
		}
	})

	if err := conf.Validate(); err != nil {
		return Config{}, err
	}
	return conf, nil
}

// readFile decodes the JSON file fn on top of conf.
func readFile(fn string, conf Config) (Config, error) {
	file, err := os.Open(fn)
	if err != nil {
		return conf, err
	}
	defer file.Close()

	dec := json.NewDecoder(file)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&conf); err != nil {
		return conf, fmt.Errorf("%s: %w", fn, err)
	}
	return conf, nil
}

// Validate checks that the configuration describes a drawable scene.
func (c Config) Validate() error {
	switch {
	case c.Width < 2 || c.Height < 2:
		return fmt.Errorf("%w: image size %dx%d, need at least 2x2", ErrInvalid, c.Width, c.Height)
	case c.Points < 0 || c.Lines < 0 || c.Circles < 0:
		return fmt.Errorf("%w: negative shape count", ErrInvalid)
	case c.Scale < 1:
		return fmt.Errorf("%w: scale %d", ErrInvalid, c.Scale)
	case c.Preview && c.PreviewWidth < 1:
		return fmt.Errorf("%w: preview width %d", ErrInvalid, c.PreviewWidth)
	case c.Output == "":
		return fmt.Errorf("%w: no output file", ErrInvalid)
	}
	if _, err := c.BackgroundColor(); err != nil {
		return err
	}
	return nil
}

// BackgroundColor returns the parsed background colour.
func (c Config) BackgroundColor() (color.RGBA, error) {
	bg, err := colorful.Hex(c.Background)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: background %q: %v", ErrInvalid, c.Background, err)
	}
	r, g, b := bg.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
