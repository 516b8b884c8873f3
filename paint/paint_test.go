// SPDX-License-Identifier: Unlicense OR MIT

package paint

import (
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/draw"

	"gioui.org/framelayout/layout"
	"gioui.org/framelayout/scene"
	"gioui.org/framelayout/text"
)

var (
	red  = color.NRGBA{R: 0xff, A: 0xff}
	blue = color.NRGBA{B: 0xff, A: 0xff}
	grey = color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
)

func testScene() (scene.Node, *scene.Text) {
	label := &scene.Text{Name: "label", Content: "Hi"}
	root := &scene.Frame{
		Name:    "root",
		Axis:    scene.Horizontal,
		Padding: 5,
		Gap:     5,
		Paint:   grey,
		Children: []scene.Node{
			&scene.Box{Name: "a", Width: scene.FixedSize(10), Height: scene.FixedSize(20), Paint: red},
			&scene.Frame{
				Name:    "inner",
				Axis:    scene.Vertical,
				Padding: 2,
				Children: []scene.Node{
					&scene.Box{Name: "b", Width: scene.FixedSize(10), Height: scene.FixedSize(10), Paint: blue},
					label,
				},
			},
		},
	}
	return root, label
}

func TestImage(t *testing.T) {
	root, _ := testScene()
	res, err := layout.Compute(root, Basic, layout.Constraints{})
	if err != nil {
		t.Fatal(err)
	}
	img, err := Image(root, res, Options{})
	if err != nil {
		t.Fatal(err)
	}
	rr := res["root"]
	if got, want := img.Bounds(), image.Rect(0, 0, int(rr.Width), int(rr.Height)); got != want {
		t.Errorf("got bounds %v; want %v", got, want)
	}
	// The inner frame is at (20, 5); b is inset by its padding.
	tests := []struct {
		x, y int
		want color.NRGBA
	}{
		{1, 1, grey},
		{6, 6, red},
		{23, 8, blue},
		{21, 6, grey},
	}
	for _, test := range tests {
		got := color.NRGBAModel.Convert(img.At(test.x, test.y)).(color.NRGBA)
		if got != test.want {
			t.Errorf("(%d,%d): got %v; want %v", test.x, test.y, got, test.want)
		}
	}
}

func TestText(t *testing.T) {
	root, label := testScene()
	res, err := layout.Compute(root, Basic, layout.Constraints{})
	if err != nil {
		t.Fatal(err)
	}
	img, err := Image(root, res, Options{Background: color.White, Text: color.Black})
	if err != nil {
		t.Fatal(err)
	}
	inner, lr := res["inner"], res[label.Name]
	r := image.Rect(int(inner.X+lr.X), int(inner.Y+lr.Y), int(inner.X+lr.X+lr.Width), int(inner.Y+lr.Y+lr.Height))
	dark := 0
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if c := color.GrayModel.Convert(img.At(x, y)).(color.Gray); c.Y < 0x40 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Errorf("no text drawn in %v", r)
	}
}

// recorder is a Typesetter that records where lines are drawn.
type recorder struct {
	text.Monospace
	lines []image.Point
}

func (r *recorder) DrawString(dst draw.Image, src image.Image, x, y float32, s string) {
	r.lines = append(r.lines, image.Pt(int(math.Round(float64(x))), int(math.Round(float64(y)))))
}

func TestBaselines(t *testing.T) {
	root := &scene.Frame{
		Name:    "root",
		Axis:    scene.Vertical,
		Padding: 5,
		Children: []scene.Node{
			&scene.Text{Name: "t", Content: "aa bb cc", Width: scene.FixedSize(30)},
		},
	}
	ts := &recorder{Monospace: text.Monospace{Advance: 10, LineHeight: 10}}
	res, err := layout.Compute(root, ts, layout.Constraints{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := Image(root, res, Options{Typesetter: ts}); err != nil {
		t.Fatal(err)
	}
	want := []image.Point{{5, 13}, {5, 23}, {5, 33}}
	if len(ts.lines) != len(want) {
		t.Fatalf("drew lines at %v; want %v", ts.lines, want)
	}
	for i, p := range ts.lines {
		if p != want[i] {
			t.Errorf("line %d: baseline at %v; want %v", i, p, want[i])
		}
	}
}

func TestMissingLayout(t *testing.T) {
	root, _ := testScene()
	res := layout.Result{"root": {Width: 10, Height: 10}}
	if _, err := Image(root, res, Options{}); err == nil {
		t.Error("drew a scene without a complete layout")
	}
}
