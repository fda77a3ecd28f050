// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tree

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-diff-tree/models"
)

// CheckInvariants validates the subtree under root:
//   - aggregate flags match the children,
//   - every non-root node is out-of-sync or holds children,
//   - no key appears twice.
func CheckInvariants(root *Node) error {
	var errs []error
	seen := make(map[models.NodeKey]struct{})

	Walk(root, func(n *Node) bool {
		if _, dup := seen[n.key]; dup {
			errs = append(errs, fmt.Errorf("%w: duplicate node %q", ErrInvariant, n.key))
		}
		seen[n.key] = struct{}{}

		var want Flags
		want.Busy = n.flags.Busy
		for _, c := range n.Children() {
			if c.parent != n {
				errs = append(errs, fmt.Errorf("%w: %q has a stale parent link", ErrInvariant, c.key))
			}
			want.DescendantConflict = want.DescendantConflict || c.Conflicting()
			want.DescendantError = want.DescendantError || c.Shown() == models.SeverityError
			want.DescendantWarning = want.DescendantWarning || c.Shown() == models.SeverityWarning
		}
		if want != n.flags {
			errs = append(errs, fmt.Errorf("%w: %q flags %+v, children imply %+v", ErrInvariant, n.key, n.flags, want))
		}

		if !n.IsRoot() && !n.IsOutOfSync() && n.ChildCount() == 0 {
			errs = append(errs, fmt.Errorf("%w: %q is neither out-of-sync nor a container of changes", ErrInvariant, n.key))
		}
		return true
	})
	return errors.Join(errs...)
}

// CheckModel validates the index of m against its tree.
func CheckModel(m *Model) error {
	var errs []error
	reachable := 0
	Walk(m.root, func(n *Node) bool {
		if n == m.root || n.set != m.root.set {
			return true
		}
		reachable++
		if indexed, ok := m.nodes[n.path]; !ok || indexed != n {
			errs = append(errs, fmt.Errorf("%w: %q is not indexed", ErrInvariant, n.key))
		}
		return true
	})
	if reachable != len(m.nodes) {
		errs = append(errs, fmt.Errorf("%w: %d nodes indexed, %d reachable", ErrInvariant, len(m.nodes), reachable))
	}
	return errors.Join(errs...)
}
