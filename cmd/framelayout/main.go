// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"gioui.org/framelayout/font/gofont"
	"gioui.org/framelayout/font/opentype"
	"gioui.org/framelayout/layout"
	"gioui.org/framelayout/paint"
	"gioui.org/framelayout/scene"
	"gioui.org/framelayout/text"
)

var (
	width    = flag.Float64("width", -1, "explicit root width.")
	height   = flag.Float64("height", -1, "explicit root height.")
	fontName = flag.String("font", "go", "text font (go, gomono, basic).")
	fontSize = flag.Float64("size", 12, "font size of the go fonts.")
	format   = flag.String("format", "text", "output format (text, json).")
	pngDir   = flag.String("png", "", "directory to write scene renderings to.")
	jobs     = flag.Int("j", runtime.NumCPU(), "number of scenes laid out concurrently.")
	verbose  = flag.Bool("v", false, "trace layout resolution.")
)

// sceneLayout is a laid out scene file.
type sceneLayout struct {
	path   string
	root   scene.Node
	result layout.Result
}

func main() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, mainUsage)
		flag.PrintDefaults()
	}
	flag.Parse()
	if err := mainErr(); err != nil {
		fmt.Fprintf(os.Stderr, "framelayout: %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}

func mainErr() error {
	paths := flag.Args()
	if len(paths) == 0 {
		return errors.New("specify one or more scene files")
	}
	switch *format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid -format %s", *format)
	}
	if *jobs < 1 {
		return fmt.Errorf("invalid -j %d", *jobs)
	}
	ts, desc, err := typesetter(*fontName, float32(*fontSize))
	if err != nil {
		return err
	}
	if *verbose {
		log.Printf("measuring text with %s", desc)
	}
	measurer := text.NewCache(ts)
	layouts := make([]*sceneLayout, len(paths))
	var g errgroup.Group
	g.SetLimit(*jobs)
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			l, err := layoutFile(path, measurer)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			if *pngDir != "" {
				if err := render(l, ts); err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
			}
			layouts[i] = l
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	if *format == "json" {
		return writeJSON(os.Stdout, layouts)
	}
	return writeText(os.Stdout, layouts)
}

// typesetter returns the named typesetter along with a description
// of its font.
func typesetter(name string, size float32) (paint.Typesetter, string, error) {
	var f *opentype.Font
	switch name {
	case "go":
		f = gofont.Regular()
	case "gomono":
		f = gofont.Mono()
	case "basic":
		return paint.Basic, "basicfont 7x13", nil
	default:
		return nil, "", fmt.Errorf("invalid -font %s", name)
	}
	face, err := f.Face(size)
	if err != nil {
		return nil, "", err
	}
	return face, fmt.Sprintf("%s %g", f.Name(), size), nil
}

func layoutFile(path string, m text.Measurer) (*sceneLayout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	sc, err := scene.Decode(f)
	if err != nil {
		return nil, err
	}
	e := &layout.Engine{Measurer: m}
	if *verbose {
		e.Logger = log.New(os.Stderr, filepath.Base(path)+": ", 0)
	}
	res, err := e.Layout(sc.Root, constraints(sc, *width, *height))
	if err != nil {
		return nil, err
	}
	return &sceneLayout{path: path, root: sc.Root, result: res}, nil
}

// constraints returns the root constraints of f, overridden by
// non-negative flag values.
func constraints(f *scene.File, w, h float64) layout.Constraints {
	var cs layout.Constraints
	if f.Width >= 0 {
		cs.Width = layout.Exact(f.Width)
	}
	if f.Height >= 0 {
		cs.Height = layout.Exact(f.Height)
	}
	if w >= 0 {
		cs.Width = layout.Exact(float32(w))
	}
	if h >= 0 {
		cs.Height = layout.Exact(float32(h))
	}
	return cs
}

func render(l *sceneLayout, ts paint.Typesetter) (err error) {
	img, err := paint.Image(l.root, l.result, paint.Options{
		Typesetter:     ts,
		Background:     color.White,
		TextBackground: color.NRGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff},
	})
	if err != nil {
		return err
	}
	name := strings.TrimSuffix(filepath.Base(l.path), filepath.Ext(l.path)) + ".png"
	w, err := os.Create(filepath.Join(*pngDir, name))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()
	return png.Encode(w, img)
}
