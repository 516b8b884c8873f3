// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"math"

	"gioui.org/framelayout/scene"
)

// eps is the tolerance for comparing lengths.
const eps = 0.001

// record is the outcome of the latest visit to a node.
type record struct {
	node scene.Node
	// given is the size the node was resolved under.
	given size
	// arranged reports whether the node's children were placed.
	arranged bool
	size     size
	// wrap is the width a text node was wrapped at.
	wrap Length
}

// memo holds the records of a single layout pass, keyed by node
// identifier.
type memo map[string]*record

// lookup returns the record of n, or nil if n has not been visited.
func (m memo) lookup(n scene.Node) (*record, error) {
	rec, ok := m[n.ID()]
	if !ok {
		return nil, nil
	}
	if rec.node != n {
		return nil, &InvariantError{ID: n.ID(), Reason: "cached record belongs to another node"}
	}
	return rec, nil
}

// matches reports whether rec can answer a visit under given. A
// measurement cannot answer a visit that arranges.
func (rec *record) matches(given size, arrange bool) bool {
	return sameLength(rec.given.w, given.w) &&
		sameLength(rec.given.h, given.h) &&
		(rec.arranged || !arrange)
}

func sameLength(a, b Length) bool {
	if a.Valid != b.Valid {
		return false
	}
	return !a.Valid || near(a.V, b.V)
}

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < eps
}
