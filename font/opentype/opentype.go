// SPDX-License-Identifier: Unlicense OR MIT

// Package opentype measures and draws text with OpenType and
// TrueType fonts.
package opentype

import (
	"fmt"
	"image"
	"image/draw"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"gioui.org/framelayout/text"
)

// Font is a parsed font file. It is safe for concurrent use.
type Font struct {
	font *sfnt.Font
}

// Face is a Font at a particular size. It implements text.Measurer
// and is safe for concurrent use.
type Face struct {
	mu         sync.Mutex
	face       font.Face
	lineHeight float32
}

// Parse constructs a Font from source bytes.
func Parse(src []byte) (*Font, error) {
	f, err := opentype.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("failed parsing truetype font: %w", err)
	}
	return &Font{font: f}, nil
}

// Name returns the family name of the font.
func (f *Font) Name() string {
	var buf sfnt.Buffer
	name, err := f.font.Name(&buf, sfnt.NameIDFamily)
	if err != nil {
		return ""
	}
	return name
}

// Face returns a face of f whose em square is size layout units.
func (f *Font) Face(size float32) (*Face, error) {
	face, err := opentype.NewFace(f.font, &opentype.FaceOptions{
		Size:    float64(size),
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("opentype: size %g: %w", size, err)
	}
	m := face.Metrics()
	return &Face{
		face:       face,
		lineHeight: fromFixed(m.Height),
	}, nil
}

// Measure implements text.Measurer.
func (f *Face) Measure(s string, opts text.Options) (text.Layout, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return text.LayoutString(s, opts, f.advance, f.lineHeight), nil
}

func (f *Face) advance(s string) float32 {
	return fromFixed(font.MeasureString(f.face, s))
}

// DrawString draws s onto dst, filled with src, with its baseline at
// (x, y).
func (f *Face) DrawString(dst draw.Image, src image.Image, x, y float32, s string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d := font.Drawer{
		Dst:  dst,
		Src:  src,
		Face: f.face,
		Dot:  fixed.Point26_6{X: toFixed(x), Y: toFixed(y)},
	}
	d.DrawString(s)
}

func fromFixed(v fixed.Int26_6) float32 {
	return float32(v) / 64
}

func toFixed(v float32) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}
