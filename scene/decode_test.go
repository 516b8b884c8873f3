// SPDX-License-Identifier: Unlicense OR MIT

package scene

import (
	"errors"
	"image/color"
	"strings"
	"testing"
)

const card = `
width = 320

[root]
type = "frame"
id = "card"
axis = "vertical"
padding = 8
gap = 4.5
height = "hug"
color = "#eee"

[[root.children]]
type = "text"
id = "title"
text = "Hello, world"
width = "grow"

[[root.children]]
type = "frame"
id = "row"
width = "grow"

[[root.children.children]]
type = "box"
id = "swatch"
width = 16
height = 16
color = "tomato"
`

func TestDecode(t *testing.T) {
	f, err := Decode(strings.NewReader(card))
	if err != nil {
		t.Fatal(err)
	}
	if f.Width != 320 || f.Height != -1 {
		t.Errorf("got root size %v×%v; want 320×-1", f.Width, f.Height)
	}
	root, ok := f.Root.(*Frame)
	if !ok {
		t.Fatalf("root is %T; want *Frame", f.Root)
	}
	if root.Axis != Vertical || root.Padding != 8 || root.Gap != 4.5 {
		t.Errorf("got frame %+v", root)
	}
	if want := (color.NRGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}); root.Paint != want {
		t.Errorf("got paint %v; want %v", root.Paint, want)
	}
	if len(root.Children) != 2 {
		t.Fatalf("got %d children; want 2", len(root.Children))
	}
	title := root.Children[0].(*Text)
	if title.Content != "Hello, world" || title.Width != GrowSize() || title.Height != HugSize() {
		t.Errorf("got text %+v", title)
	}
	row := root.Children[1].(*Frame)
	if row.Axis != Horizontal {
		t.Errorf("got axis %v; want Horizontal", row.Axis)
	}
	swatch := row.Children[0].(*Box)
	if swatch.Width != FixedSize(16) || swatch.Paint != (color.NRGBA{R: 0xff, G: 0x63, B: 0x47, A: 0xff}) {
		t.Errorf("got box %+v", swatch)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"width = 1", "missing [root]"},
		{"width = -5\n[root]\ntype = \"box\"\nid = \"x\"\nwidth = 1\nheight = 1", "invalid root width -5"},
		{"height = -0.5\n[root]\ntype = \"box\"\nid = \"x\"\nwidth = 1\nheight = 1", "invalid root height -0.5"},
		{"[root]\ntype = \"oval\"\nid = \"x\"", "unknown node type"},
		{"[root]\ntype = \"box\"\nid = \"x\"\nwidth = \"wide\"", "unknown sizing"},
		{"[root]\ntype = \"box\"\nid = \"x\"\ncolour = \"red\"", "unknown field \"root.colour\""},
		{"[root]\ntype = \"frame\"\nid = \"x\"\naxis = \"diagonal\"", "unknown axis"},
	}
	for _, test := range tests {
		_, err := Decode(strings.NewReader(test.src))
		if err == nil || !strings.Contains(err.Error(), test.want) {
			t.Errorf("Decode(%q): got %v; want error containing %q", test.src, err, test.want)
		}
	}
}

func TestDecodeValidates(t *testing.T) {
	src := `
[root]
type = "frame"
id = "root"

[[root.children]]
type = "box"
id = "b"
width = "grow"
height = 10
`
	_, err := Decode(strings.NewReader(src))
	if !errors.Is(err, ErrConfig) {
		t.Errorf("got %v; want a configuration error", err)
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
	}{
		{"#f00", color.NRGBA{R: 0xff, A: 0xff}},
		{"#102030", color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0xff}},
		{"Black", color.NRGBA{A: 0xff}},
	}
	for _, test := range tests {
		got, err := ParseColor(test.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", test.in, err)
			continue
		}
		if got != test.want {
			t.Errorf("ParseColor(%q) = %v; want %v", test.in, got, test.want)
		}
	}
	if _, err := ParseColor("#12345"); err == nil {
		t.Error("ParseColor(#12345) succeeded")
	}
}
