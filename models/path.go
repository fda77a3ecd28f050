// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"path"
	"strings"
)

// ItemPath is the identity of a synchronizable item: a slash separated,
// absolute path such as "/project/src/main.go". The empty path is the
// workspace root and never names a real item.
//
// Paths are totally ordered by plain string comparison. Because every
// descendant of "/p/a" starts with "/p/a/", the descendants of a path form a
// contiguous range in that order.
type ItemPath string

// RootPath is the structural workspace root.
const RootPath ItemPath = ""

const separator = "/"

// CleanPath normalizes s into an ItemPath: it collapses duplicate
// separators, resolves "." and ".." and guarantees a leading slash.
// Empty input and "/" both yield RootPath.
func CleanPath(s string) ItemPath {
	s = strings.TrimSpace(s)
	if s == "" {
		return RootPath
	}
	cleaned := path.Clean(separator + s)
	if cleaned == separator {
		return RootPath
	}
	return ItemPath(cleaned)
}

// IsRoot reports whether p is the workspace root.
func (p ItemPath) IsRoot() bool {
	return p == RootPath
}

// Parent returns the parent path. The parent of a top-level item
// ("/project") is RootPath, and the parent of RootPath is RootPath.
func (p ItemPath) Parent() ItemPath {
	if p.IsRoot() {
		return RootPath
	}
	idx := strings.LastIndex(string(p), separator)
	if idx <= 0 {
		return RootPath
	}
	return p[:idx]
}

// Name returns the last segment of the path.
func (p ItemPath) Name() string {
	if p.IsRoot() {
		return ""
	}
	return string(p[strings.LastIndex(string(p), separator)+1:])
}

// Segments splits the path into its segments. RootPath has none.
func (p ItemPath) Segments() []string {
	if p.IsRoot() {
		return nil
	}
	return strings.Split(strings.TrimPrefix(string(p), separator), separator)
}

// Depth is the number of segments: 0 for RootPath, 1 for a project.
func (p ItemPath) Depth() int {
	if p.IsRoot() {
		return 0
	}
	return strings.Count(string(p), separator)
}

// Project returns the top-level ancestor of p (p itself when p is a
// project, RootPath when p is RootPath).
func (p ItemPath) Project() ItemPath {
	if p.IsRoot() {
		return RootPath
	}
	rest := string(p[1:])
	if idx := strings.Index(rest, separator); idx >= 0 {
		return p[:idx+1]
	}
	return p
}

// IsAncestorOf reports whether p is a strict ancestor of q.
func (p ItemPath) IsAncestorOf(q ItemPath) bool {
	if p == q {
		return false
	}
	if p.IsRoot() {
		return true
	}
	return strings.HasPrefix(string(q), string(p)+separator)
}

// DescendantPrefix returns the string every strict descendant of p starts
// with.
func (p ItemPath) DescendantPrefix() string {
	return string(p) + separator
}

// Rel returns p relative to base without a leading slash. When base is not
// an ancestor of p the full path without its leading slash is returned.
func (p ItemPath) Rel(base ItemPath) string {
	if base.IsAncestorOf(p) {
		return strings.TrimPrefix(string(p), base.DescendantPrefix())
	}
	return strings.TrimPrefix(string(p), separator)
}

// Ancestors returns the strict ancestors of p, outermost first, excluding
// RootPath.
func (p ItemPath) Ancestors() []ItemPath {
	var out []ItemPath
	for cur := p.Parent(); !cur.IsRoot(); cur = cur.Parent() {
		out = append(out, cur)
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

func (p ItemPath) String() string {
	return string(p)
}
