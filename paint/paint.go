// SPDX-License-Identifier: Unlicense OR MIT

/*
Package paint draws a laid out scene into an image.

Frames and boxes are filled with their Paint color, text is drawn in
its rectangle, wrapped the way it was measured. Rectangles in a
layout.Result are relative to their parent, so the drawing origin
moves to every frame before its children are drawn.
*/
package paint

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"gioui.org/framelayout/layout"
	"gioui.org/framelayout/scene"
	"gioui.org/framelayout/text"
)

// Typesetter measures and draws text.
type Typesetter interface {
	text.Measurer
	// DrawString draws s with its baseline at (x, y).
	DrawString(dst draw.Image, src image.Image, x, y float32, s string)
}

// Options configure drawing. The zero Options draw text with Basic
// on a transparent background.
type Options struct {
	Typesetter Typesetter
	// Background fills the image before drawing, if not nil.
	Background color.Color
	// Text is the color of text. Nil means black.
	Text color.Color
	// TextBackground fills text rectangles, if not nil.
	TextBackground color.Color
}

// Basic is a Typesetter using the 7×13 pixel basicfont face.
var Basic Typesetter = basic{text.Monospace{Advance: 7, LineHeight: 13}}

type basic struct {
	text.Monospace
}

func (basic) DrawString(dst draw.Image, src image.Image, x, y float32, s string) {
	face := basicfont.Face7x13
	d := font.Drawer{
		Dst:  dst,
		Src:  src,
		Face: face,
		Dot:  fixed.P(round(x), round(y)),
	}
	d.DrawString(s)
}

// Image returns a new image the size of the root of res with the scene
// drawn into it.
func Image(root scene.Node, res layout.Result, opts Options) (*image.RGBA, error) {
	r, ok := res[root.ID()]
	if !ok {
		return nil, fmt.Errorf("paint: no layout for %q", root.ID())
	}
	dst := image.NewRGBA(image.Rect(0, 0, ceil(r.Width), ceil(r.Height)))
	if err := Draw(dst, root, res, opts); err != nil {
		return nil, err
	}
	return dst, nil
}

// Draw draws the scene rooted at root into dst.
func Draw(dst draw.Image, root scene.Node, res layout.Result, opts Options) error {
	if opts.Typesetter == nil {
		opts.Typesetter = Basic
	}
	if opts.Text == nil {
		opts.Text = color.Black
	}
	if opts.Background != nil {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)
	}
	p := &painter{dst: dst, res: res, opts: opts}
	return p.node(root, 0, 0)
}

type painter struct {
	dst  draw.Image
	res  layout.Result
	opts Options
}

// node draws n, whose parent is at (x, y).
func (p *painter) node(n scene.Node, x, y float32) error {
	r, ok := p.res[n.ID()]
	if !ok {
		return fmt.Errorf("paint: no layout for %q", n.ID())
	}
	x, y = x+r.X, y+r.Y
	bounds := image.Rect(round(x), round(y), round(x+r.Width), round(y+r.Height))
	switch n := n.(type) {
	case *scene.Frame:
		p.fill(bounds, n.Paint)
		for _, c := range n.Children {
			if err := p.node(c, x, y); err != nil {
				return err
			}
		}
	case *scene.Box:
		p.fill(bounds, n.Paint)
	case *scene.Text:
		return p.text(n, bounds, x, y, r.Width)
	}
	return nil
}

func (p *painter) fill(r image.Rectangle, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	draw.Draw(p.dst, r, image.NewUniform(c), image.Point{}, draw.Over)
}

func (p *painter) text(t *scene.Text, bounds image.Rectangle, x, y, width float32) error {
	if bg := p.opts.TextBackground; bg != nil {
		draw.Draw(p.dst, bounds, image.NewUniform(bg), image.Point{}, draw.Over)
	}
	var opts text.Options
	if t.Width.Mode != scene.Hug {
		opts = text.Options{MaxWidth: width, Wrap: true}
	}
	l, err := p.opts.Typesetter.Measure(t.Content, opts)
	if err != nil {
		return err
	}
	src := image.NewUniform(p.opts.Text)
	for i, line := range l.Lines {
		p.opts.Typesetter.DrawString(p.dst, src, x, baseline(y, l.LineHeight, i), line)
	}
	return nil
}

// baseline returns the baseline of line i of text whose top is at y.
func baseline(y, lineHeight float32, i int) float32 {
	return y + lineHeight*(float32(i)+0.8)
}

func round(v float32) int {
	return int(math.Round(float64(v)))
}

func ceil(v float32) int {
	return int(math.Ceil(float64(v)))
}
