// SPDX-License-Identifier: Unlicense OR MIT

/*
Package scene describes the tree of boxes consumed by the layout
resolver.

A scene is built from three kinds of node: Frame arranges its children
in sequence along an axis, Box is a leaf of fixed content, and Text is
a leaf whose size follows from its wrapped string. Every node carries
a Sizing per axis that tells the resolver whether the length is Fixed,
grows into the space left by its parent, or hugs its content.

Nodes are plain structs; a scene is not modified by layout and may be
laid out any number of times.
*/
package scene

import (
	"fmt"
	"image/color"
)

// Axis is the Horizontal or Vertical direction.
type Axis uint8

const (
	// Horizontal lays out children left to right; the main axis is
	// the width.
	Horizontal Axis = iota
	// Vertical lays out children top to bottom; the main axis is the
	// height.
	Vertical
)

// SizingMode selects how a node derives its length along one axis.
type SizingMode uint8

const (
	// Hug derives the length from the node's content. The zero
	// Sizing hugs.
	Hug SizingMode = iota
	// Fixed is an exact length.
	Fixed
	// Grow claims a share of the space its parent has left.
	Grow
)

// Sizing is a SizingMode along with the length of a Fixed mode.
type Sizing struct {
	Mode SizingMode
	// Value is the length of a Fixed sizing; it is ignored for the
	// other modes.
	Value float32
}

// Node is a Frame, Box or Text.
type Node interface {
	// ID returns the identifier naming the node in a layout result.
	ID() string
	// Size returns the width and height sizing of the node.
	Size() (w, h Sizing)
}

// Frame arranges its children one after another along Axis.
type Frame struct {
	Name string
	Axis Axis
	// Padding is the inset on all four sides of the frame.
	Padding float32
	// Gap is the space between two consecutive children.
	Gap      float32
	Width    Sizing
	Height   Sizing
	Paint    color.NRGBA
	Children []Node
}

// Box is a leaf with no content to hug. Its width and height are
// either Fixed or Grow.
type Box struct {
	Name   string
	Width  Sizing
	Height Sizing
	Paint  color.NRGBA
}

// Text is a leaf sized by its wrapped content. A Hug width lays the
// string out on a single line; a Fixed or Grow width wraps it.
type Text struct {
	Name    string
	Content string
	Width   Sizing
	Height  Sizing
}

// FixedSize returns a Fixed sizing of length v.
func FixedSize(v float32) Sizing {
	return Sizing{Mode: Fixed, Value: v}
}

// GrowSize returns a Grow sizing.
func GrowSize() Sizing {
	return Sizing{Mode: Grow}
}

// HugSize returns a Hug sizing.
func HugSize() Sizing {
	return Sizing{Mode: Hug}
}

func (f *Frame) ID() string { return f.Name }
func (f *Frame) Size() (w, h Sizing) { return f.Width, f.Height }
func (b *Box) ID() string { return b.Name }
func (b *Box) Size() (w, h Sizing) { return b.Width, b.Height }
func (t *Text) ID() string { return t.Name }
func (t *Text) Size() (w, h Sizing) { return t.Width, t.Height }

// Main returns the sizing along the frame's axis.
func (f *Frame) Main() Sizing {
	if f.Axis == Horizontal {
		return f.Width
	}
	return f.Height
}

// Cross returns the sizing across the frame's axis.
func (f *Frame) Cross() Sizing {
	if f.Axis == Horizontal {
		return f.Height
	}
	return f.Width
}

// Along returns the sizing of n along the main axis of a, followed by
// the sizing along the cross axis.
func Along(a Axis, n Node) (main, cross Sizing) {
	w, h := n.Size()
	if a == Horizontal {
		return w, h
	}
	return h, w
}

// Walk calls fn for n and its descendants in document order. Walk
// stops at the first error returned by fn.
func Walk(n Node, fn func(n Node, depth int) error) error {
	return walk(n, 0, fn)
}

func walk(n Node, depth int, fn func(Node, int) error) error {
	if err := fn(n, depth); err != nil {
		return err
	}
	if f, ok := n.(*Frame); ok {
		for _, c := range f.Children {
			if c == nil {
				continue
			}
			if err := walk(c, depth+1, fn); err != nil {
				return err
			}
		}
	}
	return nil
}

// Kind returns "frame", "box" or "text".
func Kind(n Node) string {
	switch n.(type) {
	case *Frame:
		return "frame"
	case *Box:
		return "box"
	case *Text:
		return "text"
	default:
		return fmt.Sprintf("%T", n)
	}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}

func (m SizingMode) String() string {
	switch m {
	case Hug:
		return "Hug"
	case Fixed:
		return "Fixed"
	case Grow:
		return "Grow"
	default:
		panic("unreachable")
	}
}

func (s Sizing) String() string {
	switch s.Mode {
	case Fixed:
		return fmt.Sprintf("fixed(%g)", s.Value)
	case Grow:
		return "grow"
	default:
		return "hug"
	}
}
