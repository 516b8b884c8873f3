// SPDX-License-Identifier: Unlicense OR MIT

// Package gofont exports the Go fonts for measuring text.
//
// See https://blog.golang.org/go-fonts for a description of the
// fonts, and the golang.org/x/image/font/gofont packages for the
// font data.
package gofont

import (
	"fmt"
	"sync"

	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"gioui.org/framelayout/font/opentype"
)

var (
	regOnce  sync.Once
	reg      *opentype.Font
	monoOnce sync.Once
	mono     *opentype.Font
)

// Regular returns the Go Regular font.
func Regular() *opentype.Font {
	regOnce.Do(func() {
		reg = parse(goregular.TTF)
	})
	return reg
}

// Mono returns the Go Mono font.
func Mono() *opentype.Font {
	monoOnce.Do(func() {
		mono = parse(gomono.TTF)
	})
	return mono
}

func parse(ttf []byte) *opentype.Font {
	f, err := opentype.Parse(ttf)
	if err != nil {
		panic(fmt.Errorf("failed to parse font: %v", err))
	}
	return f
}
