// SPDX-License-Identifier: Unlicense OR MIT

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"gioui.org/framelayout/layout"
	"gioui.org/framelayout/scene"
)

var (
	fileStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	kindStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(6)
	idStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	rectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// writeText prints every scene as an indented tree, one node per
// line.
func writeText(w io.Writer, layouts []*sceneLayout) error {
	for i, l := range layouts {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, fileStyle.Render(l.path))
		err := scene.Walk(l.root, func(n scene.Node, depth int) error {
			r := l.result[n.ID()]
			_, err := fmt.Fprintf(w, "%s%s %s %s\n",
				strings.Repeat("  ", depth),
				kindStyle.Render(scene.Kind(n)),
				idStyle.Render(n.ID()),
				rectStyle.Render(formatRect(r)),
			)
			return err
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func formatRect(r layout.Rect) string {
	return fmt.Sprintf("%g,%g %g×%g", r.X, r.Y, r.Width, r.Height)
}

type jsonRect struct {
	X      float32 `json:"x"`
	Y      float32 `json:"y"`
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

// writeJSON prints an object mapping each scene file to the
// rectangles of its nodes.
func writeJSON(w io.Writer, layouts []*sceneLayout) error {
	out := make(map[string]map[string]jsonRect, len(layouts))
	for _, l := range layouts {
		rects := make(map[string]jsonRect, len(l.result))
		for id, r := range l.result {
			rects[id] = jsonRect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
		}
		out[l.path] = rects
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
