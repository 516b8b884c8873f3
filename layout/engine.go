// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"
	"log"
	"strings"

	"gioui.org/framelayout/scene"
	"gioui.org/framelayout/text"
)

// Engine lays out scenes. The zero Engine is ready to lay out scenes
// without text. An Engine holds no state between calls and is safe
// for concurrent use if its Measurer is.
type Engine struct {
	// Measurer measures the content of Text nodes.
	Measurer text.Measurer
	// Logger, if not nil, receives a trace of every node visit.
	Logger *log.Logger
}

// maxReflows bounds the number of passes rerun after a node changed
// size during arrangement.
const maxReflows = 2

// resolver holds the state of one Layout call.
type resolver struct {
	measurer text.Measurer
	logger   *log.Logger
	depth    int

	memo   memo
	result Result
	// hints are sizes learned in arrangement that replace the given
	// size of growing nodes when they are measured in the next pass.
	hints map[string]size
	next  map[string]size
	// initial holds the size every node was first measured under
	// in the current pass.
	initial map[string]size
	// dirty names the first node whose size changed in
	// arrangement.
	dirty string
}

// Compute lays out the scene rooted at root, measuring text with m.
func Compute(root scene.Node, m text.Measurer, cs Constraints) (Result, error) {
	e := &Engine{Measurer: m}
	return e.Layout(root, cs)
}

// Layout resolves the rectangle of every node of the scene rooted at
// root. The constraints are the size given to the root: they size a
// root that grows, and bound the children of a root frame along its
// cross axis.
//
// Layout returns a *scene.ConfigError for an invalid scene, an
// *InvariantError if resolution failed, and errors from the Measurer
// unchanged. No Result is returned with an error.
func (e *Engine) Layout(root scene.Node, cs Constraints) (Result, error) {
	if err := scene.Validate(root); err != nil {
		return nil, err
	}
	w, h := root.Size()
	if w.Mode == scene.Grow && !cs.Width.Valid || h.Mode == scene.Grow && !cs.Height.Valid {
		return nil, &scene.ConfigError{ID: root.ID(), Reason: "growing root without constraints"}
	}
	r := &resolver{
		measurer: e.Measurer,
		logger:   e.Logger,
		hints:    make(map[string]size),
	}
	for pass := 1; ; pass++ {
		res, err := r.pass(root, cs, pass)
		if err != nil {
			return nil, err
		}
		if r.dirty == "" {
			return res, nil
		}
		if pass > maxReflows {
			return nil, &InvariantError{
				ID:     r.dirty,
				Reason: fmt.Sprintf("still changing after %d passes", pass),
				Err:    ErrReflowLimit,
			}
		}
		r.logf("reflow: %s changed size", r.dirty)
	}
}

// pass measures the tree, then feeds the measured root size back to
// arrange it.
func (r *resolver) pass(root scene.Node, cs Constraints, n int) (Result, error) {
	for id, h := range r.next {
		r.hints[id] = h
	}
	r.memo = make(memo)
	r.result = make(Result)
	r.next = make(map[string]size)
	r.initial = make(map[string]size)
	r.dirty = ""
	r.logf("pass %d measure", n)
	first, err := r.resolve(root, size{w: cs.Width, h: cs.Height}, false)
	if err != nil {
		return nil, err
	}
	r.logf("pass %d arrange", n)
	sz, err := r.resolve(root, first, true)
	if err != nil {
		return nil, err
	}
	if !sz.w.Valid || !sz.h.Valid {
		return nil, &InvariantError{
			ID:     root.ID(),
			Reason: fmt.Sprintf("root size %v×%v unresolved", sz.w, sz.h),
		}
	}
	r.result[root.ID()] = Rect{Width: sz.w.V, Height: sz.h.V}
	return r.result, nil
}

// resolve returns the size of n under the given size, and places the
// descendants of n if arrange is set.
func (r *resolver) resolve(n scene.Node, given size, arrange bool) (size, error) {
	id := n.ID()
	w, h := n.Size()
	var hint size
	if !arrange {
		hint = r.hints[id]
	}
	given.w = override(w, given.w, hint.w)
	given.h = override(h, given.h, hint.h)
	rec, err := r.memo.lookup(n)
	if err != nil {
		return size{}, err
	}
	if rec != nil {
		if !given.w.Valid {
			given.w = rec.size.w
		}
		if !given.h.Valid {
			given.h = rec.size.h
		}
		if rec.matches(given, arrange) {
			return rec.size, nil
		}
	}
	r.logf("visit %s given %v,%v", id, given.w, given.h)
	r.depth++
	defer func() { r.depth-- }()
	if _, ok := r.initial[id]; !ok && !arrange {
		r.initial[id] = given
	}
	rec = &record{node: n, given: given, arranged: arrange}
	switch n := n.(type) {
	case *scene.Box:
		rec.size = measureBox(n, given)
	case *scene.Text:
		rec.size, rec.wrap, err = r.measureText(n, given)
		if err != nil {
			return size{}, err
		}
		if arrange && rec.wrap.Valid && !sameLength(rec.wrap, rec.size.w) {
			// The height was computed for another width.
			r.hint(n, size{w: rec.size.w})
			r.markDirty(n, "wrapped at %v but %v wide", rec.wrap, rec.size.w)
		}
	case *scene.Frame:
		rec.size, err = r.measureFrame(n, given)
		if err != nil {
			return size{}, err
		}
	default:
		return size{}, fmt.Errorf("layout: unknown node type %T", n)
	}
	r.memo[id] = rec
	r.logf("measured %s => %v,%v", id, rec.size.w, rec.size.h)
	if f, ok := n.(*scene.Frame); ok && arrange {
		if err := r.arrange(f, rec.size); err != nil {
			return size{}, err
		}
	}
	return rec.size, nil
}

// override returns the length a node with sizing s is resolved under
// when given l: a Fixed length wins, then a hint for a Grow length.
func override(s scene.Sizing, l, hint Length) Length {
	switch {
	case s.Mode == scene.Fixed:
		return Exact(s.Value)
	case s.Mode == scene.Grow && hint.Valid:
		return hint
	default:
		return l
	}
}

// hint records sz as the size n should be given in the next pass.
func (r *resolver) hint(n scene.Node, sz size) {
	h := r.next[n.ID()]
	if sz.w.Valid {
		h.w = sz.w
	}
	if sz.h.Valid {
		h.h = sz.h
	}
	r.next[n.ID()] = h
}

func (r *resolver) markDirty(n scene.Node, format string, args ...interface{}) {
	r.logf("dirty %s: "+format, append([]interface{}{n.ID()}, args...)...)
	if r.dirty == "" {
		r.dirty = n.ID()
	}
}

func (r *resolver) logf(format string, args ...interface{}) {
	if r.logger == nil {
		return
	}
	r.logger.Printf(strings.Repeat("  ", r.depth)+format, args...)
}
