// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"errors"
	"fmt"
)

var (
	// ErrInvariant is matched by every *InvariantError.
	ErrInvariant = errors.New("layout: internal invariant violated")
	// ErrReflowLimit is wrapped by the InvariantError reported when
	// text reflow does not settle.
	ErrReflowLimit = errors.New("reflow limit exceeded")
)

// InvariantError reports a failure of the resolver itself rather
// than of its input.
type InvariantError struct {
	ID     string
	Reason string
	Err    error
}

func (e *InvariantError) Error() string {
	msg := fmt.Sprintf("layout: node %q: %s", e.ID, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *InvariantError) Is(target error) bool {
	return target == ErrInvariant
}

func (e *InvariantError) Unwrap() error {
	return e.Err
}
