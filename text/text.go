// SPDX-License-Identifier: Unlicense OR MIT

/*
Package text defines how the layout resolver measures strings.

A Measurer turns a string and an optional maximum width into wrapped
lines. Implementations are expected to be pure: the same string and
options always produce the same Layout. Measurers in this module are
Monospace, Cache and the font faces in package opentype.
*/
package text

import "strings"

// Options specify the constraints of a text layout.
type Options struct {
	// MaxWidth is the wrapping width. It is ignored unless Wrap is
	// set.
	MaxWidth float32
	// Wrap requests breaking the text into lines no wider than
	// MaxWidth. Without Wrap the text is laid out on a single line
	// at its natural width.
	Wrap bool
}

// Layout contains the measurements of a body of text.
type Layout struct {
	// Lines are the wrapped lines, without the spaces at which the
	// text was broken.
	Lines      []string
	LineHeight float32
	// Width is MaxWidth for wrapped text and the natural width of
	// the single line otherwise.
	Width  float32
	Height float32
}

// Measurer measures text.
type Measurer interface {
	Measure(s string, opts Options) (Layout, error)
}

// MeasurerFunc adapts a function to the Measurer interface.
type MeasurerFunc func(s string, opts Options) (Layout, error)

func (f MeasurerFunc) Measure(s string, opts Options) (Layout, error) {
	return f(s, opts)
}

// LayoutString lays out s with the given advance function and line
// height.
//
// Without Wrap, the result is a single line with width advance(s).
// With Wrap, s is split at single spaces and words accumulate on a
// line as long as the line including the next word measures less than
// MaxWidth; otherwise the word starts a new line. A word wider than
// MaxWidth occupies a line of its own. The width of a wrapped layout
// is MaxWidth regardless of its longest line.
func LayoutString(s string, opts Options, advance func(string) float32, lineHeight float32) Layout {
	if !opts.Wrap {
		return Layout{
			Lines:      []string{s},
			LineHeight: lineHeight,
			Width:      advance(s),
			Height:     lineHeight,
		}
	}
	words := strings.Split(s, " ")
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if next := line + " " + w; advance(next) < opts.MaxWidth {
			line = next
		} else {
			lines = append(lines, line)
			line = w
		}
	}
	lines = append(lines, line)
	return Layout{
		Lines:      lines,
		LineHeight: lineHeight,
		Width:      opts.MaxWidth,
		Height:     float32(len(lines)) * lineHeight,
	}
}
