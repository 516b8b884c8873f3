// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"reflect"
	"testing"
)

func TestLayoutString(t *testing.T) {
	mono := Monospace{Advance: 10, LineHeight: 12}
	tests := []struct {
		s     string
		opts  Options
		lines []string
		w, h  float32
	}{
		{"hello world", Options{}, []string{"hello world"}, 110, 12},
		{"hello world", Options{MaxWidth: 50, Wrap: true}, []string{"hello", "world"}, 50, 24},
		// "ab cd" measures exactly 50 and does not fit.
		{"ab cd ef", Options{MaxWidth: 50, Wrap: true}, []string{"ab", "cd", "ef"}, 50, 36},
		{"ab cd ef", Options{MaxWidth: 51, Wrap: true}, []string{"ab cd", "ef"}, 51, 24},
		{"extraordinary", Options{MaxWidth: 20, Wrap: true}, []string{"extraordinary"}, 20, 12},
		{"", Options{MaxWidth: 20, Wrap: true}, []string{""}, 20, 12},
		{"a b", Options{MaxWidth: 1000, Wrap: true}, []string{"a b"}, 1000, 12},
	}
	for _, test := range tests {
		l, err := mono.Measure(test.s, test.opts)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(l.Lines, test.lines) {
			t.Errorf("%q %+v: got lines %q; want %q", test.s, test.opts, l.Lines, test.lines)
		}
		if l.Width != test.w || l.Height != test.h {
			t.Errorf("%q %+v: got %v×%v; want %v×%v", test.s, test.opts, l.Width, l.Height, test.w, test.h)
		}
		if l.LineHeight != 12 {
			t.Errorf("%q: got line height %v; want 12", test.s, l.LineHeight)
		}
	}
}

func TestMonospaceWide(t *testing.T) {
	mono := Monospace{Advance: 8, LineHeight: 16}
	l, _ := mono.Measure("日本", Options{})
	if l.Width != 32 {
		t.Errorf("got width %v; want 32", l.Width)
	}
}
