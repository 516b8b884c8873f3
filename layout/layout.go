// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout resolves the position and size of every node in a
scene.

The resolver works in two phases. Measurement computes sizes bottom
up: a Frame measures its children before it knows its own size, and
hands the space left along its main axis to children that Grow.
Arrangement then walks the tree top down, feeding every container
its final size and placing its children one after another, separated
by the frame's Gap and inset by its Padding.

Text is the one kind of content whose height depends on a width that
may only be known after arrangement. When arrangement changes the
width of a text node after its height was used to size an ancestor,
the layout is recomputed with the corrected width. At most two such
reflow passes run.

Coordinates in a Result are relative to the parent's origin; the root
is at (0, 0).
*/
package layout

import (
	"fmt"
	"strconv"

	"github.com/samber/lo"
	"golang.org/x/exp/slices"
)

// Length is an optional length in layout units.
type Length struct {
	V float32
	// Valid reports whether the length is known.
	Valid bool
}

// Constraints are the optional explicit size of a root node.
type Constraints struct {
	Width, Height Length
}

// Rect is the position and size of a node.
type Rect struct {
	X, Y          float32
	Width, Height float32
}

// Result maps node identifiers to their resolved rectangles.
type Result map[string]Rect

// Exact returns a known length.
func Exact(v float32) Length {
	return Length{V: v, Valid: true}
}

// ExactConstraints returns the Constraints fixing both dimensions.
func ExactConstraints(w, h float32) Constraints {
	return Constraints{Width: Exact(w), Height: Exact(h)}
}

// IDs returns the identifiers of r in sorted order.
func (r Result) IDs() []string {
	ids := lo.Keys(r)
	slices.Sort(ids)
	return ids
}

func (l Length) String() string {
	if !l.Valid {
		return "-"
	}
	return strconv.FormatFloat(float64(l.V), 'g', -1, 32)
}

func (r Rect) String() string {
	return fmt.Sprintf("(%g,%g)-(%g×%g)", r.X, r.Y, r.Width, r.Height)
}
