// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"

	"github.com/samber/lo"

	"gioui.org/framelayout/scene"
)

// size is a width and height, either of which may be unknown.
type size struct {
	w, h Length
}

// measureFrame computes the size of f under the given size. Children
// not growing along the main axis are measured first; those that grow
// then share the main axis space that is left.
func (r *resolver) measureFrame(f *scene.Frame, given size) (size, error) {
	a := f.Axis
	pad := f.Padding
	gaps := f.Gap * float32(max(len(f.Children)-1, 0))
	givenMain := axisMain(a, given)
	innerCross := inset(axisCross(a, given), 2*pad)
	growing := func(c scene.Node) bool {
		main, _ := scene.Along(a, c)
		return main.Mode == scene.Grow
	}
	crosses := make([]Length, len(f.Children))
	var mainSize Length
	switch f.Main().Mode {
	case scene.Hug:
		var sum float32
		for i, c := range f.Children {
			if growing(c) {
				return size{}, &scene.ConfigError{
					ID:     c.ID(),
					Reason: fmt.Sprintf("grow along the main axis of hugging frame %q", f.Name),
				}
			}
			sz, err := r.resolve(c, axisSize(a, Length{}, innerCross), false)
			if err != nil {
				return size{}, err
			}
			sum += axisMain(a, sz).V
			crosses[i] = axisCross(a, sz)
		}
		mainSize = Exact(sum + gaps + 2*pad)
	default:
		// Lay out children of known size.
		var used float32
		for i, c := range f.Children {
			if growing(c) {
				continue
			}
			sz, err := r.resolve(c, axisSize(a, Length{}, innerCross), false)
			if err != nil {
				return size{}, err
			}
			used += axisMain(a, sz).V
			crosses[i] = axisCross(a, sz)
		}
		// Share the remaining space among growing children.
		var share Length
		if n := lo.CountBy(f.Children, growing); n > 0 {
			if inner := inset(givenMain, 2*pad+gaps); inner.Valid {
				share = Exact(max(inner.V-used, 0) / float32(n))
			}
		}
		for i, c := range f.Children {
			if !growing(c) {
				continue
			}
			sz, err := r.resolve(c, axisSize(a, share, innerCross), false)
			if err != nil {
				return size{}, err
			}
			crosses[i] = axisCross(a, sz)
		}
		mainSize = givenMain
	}
	crossSize := axisCross(a, given)
	if f.Cross().Mode == scene.Hug {
		widest := lo.MaxBy(crosses, func(x, y Length) bool { return x.V > y.V })
		crossSize = Exact(widest.V + 2*pad)
	}
	return axisSize(a, mainSize, crossSize), nil
}

// arrange places the children of f, whose final size is sz. Children
// that grow along the cross axis are stretched to the inner cross size
// of f.
func (r *resolver) arrange(f *scene.Frame, sz size) error {
	a := f.Axis
	innerCross := inset(axisCross(a, sz), 2*f.Padding)
	main := f.Padding
	for _, c := range f.Children {
		rec, err := r.memo.lookup(c)
		if err != nil {
			return err
		}
		if rec == nil {
			return &InvariantError{ID: c.ID(), Reason: "arranged before measurement"}
		}
		measured := rec.size
		given := rec.given
		_, cross := scene.Along(a, c)
		stretched := cross.Mode == scene.Grow && innerCross.Valid
		if stretched {
			given = axisSize(a, axisMain(a, given), innerCross)
			// The next pass measures c at its stretched size.
			if !sameLength(axisCross(a, r.initial[c.ID()]), innerCross) {
				r.hint(c, axisSize(a, Length{}, innerCross))
			}
		}
		csz, err := r.resolve(c, given, true)
		if err != nil {
			return err
		}
		if !csz.w.Valid || !csz.h.Valid {
			return &InvariantError{
				ID:     c.ID(),
				Reason: fmt.Sprintf("size %v×%v unresolved at arrangement", csz.w, csz.h),
			}
		}
		if !sameLength(axisMain(a, measured), axisMain(a, csz)) {
			// f was sized with a stale extent of c.
			r.markDirty(c, "main extent %v changed to %v", axisMain(a, measured), axisMain(a, csz))
		}
		if !stretched && f.Cross().Mode == scene.Hug && !sameLength(axisCross(a, measured), axisCross(a, csz)) {
			// f hugs a stale cross extent of c.
			r.markDirty(c, "cross extent %v changed to %v", axisCross(a, measured), axisCross(a, csz))
		}
		x, y := axisPoint(a, main, f.Padding)
		r.result[c.ID()] = Rect{X: x, Y: y, Width: csz.w.V, Height: csz.h.V}
		main += axisMain(a, csz).V + f.Gap
	}
	return nil
}

// inset shrinks l by d, clamping at zero.
func inset(l Length, d float32) Length {
	if !l.Valid {
		return l
	}
	return Exact(max(l.V-d, 0))
}

func axisPoint(a scene.Axis, main, cross float32) (x, y float32) {
	if a == scene.Horizontal {
		return main, cross
	} else {
		return cross, main
	}
}

func axisMain(a scene.Axis, sz size) Length {
	if a == scene.Horizontal {
		return sz.w
	} else {
		return sz.h
	}
}

func axisCross(a scene.Axis, sz size) Length {
	if a == scene.Horizontal {
		return sz.h
	} else {
		return sz.w
	}
}

func axisSize(a scene.Axis, main, cross Length) size {
	if a == scene.Horizontal {
		return size{w: main, h: cross}
	} else {
		return size{w: cross, h: main}
	}
}
