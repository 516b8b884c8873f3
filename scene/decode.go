// SPDX-License-Identifier: Unlicense OR MIT

package scene

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"golang.org/x/image/colornames"
)

// File is a decoded scene file.
type File struct {
	// Width and Height are the optional explicit root size. They are
	// -1 when absent; Decode rejects negative sizes in a file.
	Width, Height float32
	Root          Node
}

type fileSpec struct {
	Width  *float64  `toml:"width"`
	Height *float64  `toml:"height"`
	Root   *nodeSpec `toml:"root"`
}

type nodeSpec struct {
	Type     string      `toml:"type"`
	ID       string      `toml:"id"`
	Axis     string      `toml:"axis"`
	Padding  float64     `toml:"padding"`
	Gap      float64     `toml:"gap"`
	Width    interface{} `toml:"width"`
	Height   interface{} `toml:"height"`
	Color    string      `toml:"color"`
	Text     string      `toml:"text"`
	Children []nodeSpec  `toml:"children"`
}

// Decode reads a TOML scene from r and validates it. A scene file
// holds an optional root width and height and a [root] table; nested
// nodes are [[...children]] arrays:
//
//	width = 320
//
//	[root]
//	type = "frame"
//	id = "root"
//	axis = "vertical"
//	padding = 4
//	height = "hug"
//
//	[[root.children]]
//	type = "text"
//	id = "title"
//	text = "Hello"
//	width = "grow"
//
// Lengths are numbers, "grow" or "hug"; an absent length hugs.
// Colors are "#rgb", "#rrggbb" or SVG color names.
func Decode(r io.Reader) (*File, error) {
	var fs fileSpec
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fs); err != nil {
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) && len(serr.Errors) > 0 {
			e := serr.Errors[0]
			row, col := e.Position()
			return nil, fmt.Errorf("scene: %d:%d: unknown field %q", row, col, strings.Join(e.Key(), "."))
		}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			row, col := derr.Position()
			return nil, fmt.Errorf("scene: %d:%d: %w", row, col, err)
		}
		return nil, fmt.Errorf("scene: %w", err)
	}
	if fs.Root == nil {
		return nil, errors.New("scene: missing [root] table")
	}
	f := &File{Width: -1, Height: -1}
	if fs.Width != nil {
		if !(*fs.Width >= 0) {
			return nil, fmt.Errorf("scene: invalid root width %g", *fs.Width)
		}
		f.Width = float32(*fs.Width)
	}
	if fs.Height != nil {
		if !(*fs.Height >= 0) {
			return nil, fmt.Errorf("scene: invalid root height %g", *fs.Height)
		}
		f.Height = float32(*fs.Height)
	}
	root, err := fs.Root.node()
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if err := Validate(root); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	f.Root = root
	return f, nil
}

func (s *nodeSpec) node() (Node, error) {
	w, err := parseSizing(s.Width)
	if err != nil {
		return nil, fmt.Errorf("%s: width: %w", s.ID, err)
	}
	h, err := parseSizing(s.Height)
	if err != nil {
		return nil, fmt.Errorf("%s: height: %w", s.ID, err)
	}
	var paint color.NRGBA
	if s.Color != "" {
		if paint, err = ParseColor(s.Color); err != nil {
			return nil, fmt.Errorf("%s: %w", s.ID, err)
		}
	}
	switch s.Type {
	case "frame":
		f := &Frame{
			Name:    s.ID,
			Padding: float32(s.Padding),
			Gap:     float32(s.Gap),
			Width:   w,
			Height:  h,
			Paint:   paint,
		}
		switch s.Axis {
		case "", "horizontal":
			f.Axis = Horizontal
		case "vertical":
			f.Axis = Vertical
		default:
			return nil, fmt.Errorf("%s: unknown axis %q", s.ID, s.Axis)
		}
		for i := range s.Children {
			c, err := s.Children[i].node()
			if err != nil {
				return nil, err
			}
			f.Children = append(f.Children, c)
		}
		return f, nil
	case "box":
		return &Box{Name: s.ID, Width: w, Height: h, Paint: paint}, nil
	case "text":
		return &Text{Name: s.ID, Content: s.Text, Width: w, Height: h}, nil
	default:
		return nil, fmt.Errorf("%s: unknown node type %q", s.ID, s.Type)
	}
}

func parseSizing(v interface{}) (Sizing, error) {
	switch v := v.(type) {
	case nil:
		return HugSize(), nil
	case int64:
		return FixedSize(float32(v)), nil
	case float64:
		return FixedSize(float32(v)), nil
	case string:
		switch strings.ToLower(v) {
		case "grow":
			return GrowSize(), nil
		case "hug":
			return HugSize(), nil
		}
		if n, err := strconv.ParseFloat(v, 32); err == nil {
			return FixedSize(float32(n)), nil
		}
		return Sizing{}, fmt.Errorf("unknown sizing %q", v)
	default:
		return Sizing{}, fmt.Errorf("unsupported sizing %v (%T)", v, v)
	}
}

// ParseColor parses "#rgb", "#rrggbb" or an SVG color name such as
// "lightsteelblue".
func ParseColor(s string) (color.NRGBA, error) {
	if !strings.HasPrefix(s, "#") {
		c, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return color.NRGBA{}, fmt.Errorf("unknown color %q", s)
		}
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
