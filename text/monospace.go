// SPDX-License-Identifier: Unlicense OR MIT

package text

import "github.com/mattn/go-runewidth"

// Monospace measures text in a fixed-pitch font. Wide runes, such as
// most East Asian ideographs, occupy two cells.
type Monospace struct {
	// Advance is the width of a single cell.
	Advance float32
	// LineHeight is the distance between two baselines.
	LineHeight float32
}

func (m Monospace) Measure(s string, opts Options) (Layout, error) {
	return LayoutString(s, opts, m.width, m.LineHeight), nil
}

func (m Monospace) width(s string) float32 {
	return float32(runewidth.StringWidth(s)) * m.Advance
}
