// SPDX-License-Identifier: Unlicense OR MIT

package scene

import (
	"errors"
	"fmt"
)

// ErrConfig is matched by every error reported for an invalid scene.
var ErrConfig = errors.New("invalid scene")

// ConfigError describes a scene that cannot be laid out.
type ConfigError struct {
	// ID of the offending node. It is empty for a node without an
	// identifier.
	ID     string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("node %q: %s", e.ID, e.Reason)
}

// Is reports whether target is ErrConfig.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// Validate checks the tree rooted at root for configuration errors:
// missing or duplicate identifiers, negative lengths, a Hug Box, and
// Grow children along the main axis of a Hug frame. The first
// problem found is returned as a *ConfigError.
func Validate(root Node) error {
	if root == nil {
		return &ConfigError{Reason: "nil root"}
	}
	seen := make(map[string]bool)
	return Walk(root, func(n Node, _ int) error {
		id := n.ID()
		if id == "" {
			return &ConfigError{Reason: fmt.Sprintf("%s without identifier", Kind(n))}
		}
		if seen[id] {
			return &ConfigError{ID: id, Reason: "duplicate identifier"}
		}
		seen[id] = true
		w, h := n.Size()
		if err := checkSizing(id, "width", w); err != nil {
			return err
		}
		if err := checkSizing(id, "height", h); err != nil {
			return err
		}
		switch n := n.(type) {
		case *Box:
			if w.Mode == Hug || h.Mode == Hug {
				return &ConfigError{ID: id, Reason: "box has no content to hug"}
			}
		case *Frame:
			return checkFrame(n)
		}
		return nil
	})
}

func checkSizing(id, axis string, s Sizing) error {
	if s.Mode == Fixed && !(s.Value >= 0) {
		return &ConfigError{ID: id, Reason: fmt.Sprintf("negative %s %g", axis, s.Value)}
	}
	return nil
}

func checkFrame(f *Frame) error {
	if !(f.Padding >= 0) {
		return &ConfigError{ID: f.Name, Reason: fmt.Sprintf("negative padding %g", f.Padding)}
	}
	if !(f.Gap >= 0) {
		return &ConfigError{ID: f.Name, Reason: fmt.Sprintf("negative gap %g", f.Gap)}
	}
	hug := f.Main().Mode == Hug
	for i, c := range f.Children {
		if c == nil {
			return &ConfigError{ID: f.Name, Reason: fmt.Sprintf("nil child %d", i)}
		}
		if main, _ := Along(f.Axis, c); hug && main.Mode == Grow {
			return &ConfigError{
				ID:     c.ID(),
				Reason: fmt.Sprintf("grow along the main axis of hugging frame %q", f.Name),
			}
		}
	}
	return nil
}
