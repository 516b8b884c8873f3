// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"errors"

	"gioui.org/framelayout/scene"
	"gioui.org/framelayout/text"
)

var errNoMeasurer = errors.New("layout: no text measurer")

// measureBox returns the size of b. Fixed lengths have already
// replaced the given size, so b takes whatever it was given; a Grow
// length without a given size stays unknown.
func measureBox(b *scene.Box, given size) size {
	return size{w: given.w, h: given.h}
}

// measureText returns the size of t along with the width it was
// wrapped at, if any.
//
// A Grow width that is not given yet cannot be measured and yields
// an unknown size, counted as zero by the enclosing frame until a
// later visit supplies the width.
func (r *resolver) measureText(t *scene.Text, given size) (size, Length, error) {
	wb := bound(t.Width, given.w)
	hb := bound(t.Height, given.h)
	if t.Width.Mode == scene.Grow && !wb.Valid {
		return size{}, Length{}, nil
	}
	if wb.Valid && hb.Valid {
		return size{w: wb, h: hb}, wb, nil
	}
	if r.measurer == nil {
		return size{}, Length{}, errNoMeasurer
	}
	var opts text.Options
	if wb.Valid {
		opts = text.Options{MaxWidth: wb.V, Wrap: true}
	}
	l, err := r.measurer.Measure(t.Content, opts)
	if err != nil {
		return size{}, Length{}, err
	}
	sz := size{w: Exact(l.Width), h: Exact(l.Height)}
	if hb.Valid {
		sz.h = hb
	}
	return sz, wb, nil
}

// bound returns the length text is constrained to along an axis with
// sizing s. Hug is unconstrained.
func bound(s scene.Sizing, given Length) Length {
	if s.Mode == scene.Hug {
		return Length{}
	}
	return given
}
