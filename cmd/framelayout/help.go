// SPDX-License-Identifier: Unlicense OR MIT

package main

const mainUsage = `The framelayout command lays out scene files and prints the
position and size of every node.

Usage:

	framelayout [flags] <scene.toml>...

Scene files are TOML documents describing a tree of frames, boxes and
text; see package gioui.org/framelayout/scene for the format. Several
files are laid out concurrently and printed in argument order.

The -width and -height flags give the root an explicit size,
overriding the width and height keys of the scene file. A negative
value leaves the size to the scene.

The -font flag selects the font text is measured with: go (Go
Regular), gomono (Go Mono) or basic (a 7x13 pixel bitmap font). The
-size flag sets the size of the Go fonts.

The -format flag selects the output: text for an indented tree, json
for an object mapping each file to its rectangles.

The -png flag names a directory to write a rendering of each scene
to, as <scene>.png.

The -v flag traces the resolution of every node to standard error.

Flags:

`
