package config

import (
	"errors"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	conf, err := Load(nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if conf != Default() {
		t.Errorf("got %+v, want %+v", conf, Default())
	}
}

func TestLoadFlags(t *testing.T) {
	conf, err := Load([]string{"-width", "320", "-height", "200", "-seed", "9",
		"-circles", "0", "-o", "x.bmp", "-scale", "3", "-bg", "#102030", "-v"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	want := Default()
	want.Width, want.Height, want.Seed = 320, 200, 9
	want.Circles, want.Output, want.Scale = 0, "x.bmp", 3
	want.Background, want.Verbose = "#102030", true
	if conf != want {
		t.Errorf("got %+v, want %+v", conf, want)
	}
}

func TestLoadFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "conf.json")
	data := `{"width": 640, "height": 480, "lines": 7, "output": "file.png"}`
	if err := os.WriteFile(fn, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	conf, err := Load([]string{"-f", fn, "-lines", "3"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if conf.Width != 640 || conf.Height != 480 || conf.Output != "file.png" {
		t.Errorf("file values not applied: %+v", conf)
	}
	if conf.Lines != 3 {
		t.Errorf("lines = %d, want the flag value 3", conf.Lines)
	}
	if conf.Circles != Default().Circles {
		t.Errorf("circles = %d, want the default", conf.Circles)
	}
}

func TestLoadFileErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load([]string{"-f", filepath.Join(dir, "missing.json")}, io.Discard); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got %v", err)
	}

	fn := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(fn, []byte(`{"colour": 1}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load([]string{"-f", fn}, io.Discard); err == nil {
		t.Error("unknown field accepted")
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		edit func(*Config)
	}{
		{"narrow", func(c *Config) { c.Width = 1 }},
		{"flat", func(c *Config) { c.Height = 0 }},
		{"negative_points", func(c *Config) { c.Points = -1 }},
		{"scale", func(c *Config) { c.Scale = 0 }},
		{"preview_width", func(c *Config) { c.Preview, c.PreviewWidth = true, 0 }},
		{"no_output", func(c *Config) { c.Output = "" }},
		{"background", func(c *Config) { c.Background = "purple" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			conf := Default()
			tc.edit(&conf)
			if err := conf.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("got %v, want ErrInvalid", err)
			}
		})
	}

	if err := Default().Validate(); err != nil {
		t.Errorf("default configuration: %v", err)
	}
}

func TestBackgroundColor(t *testing.T) {
	conf := Default()
	conf.Background = "#ff8000"
	c, err := conf.BackgroundColor()
	if err != nil {
		t.Fatal(err)
	}
	if want := (color.RGBA{R: 255, G: 128, A: 255}); c != want {
		t.Errorf("got %v, want %v", c, want)
	}
}
