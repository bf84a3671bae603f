// Package sir implements the Semantic Intermediate Representation: the
// typed, name-resolved program model produced by the semantic analyzer and
// consumed by SSA generation.
package sir

import "strings"

// ModulePath is an ordered sequence of identifier segments, e.g.
// std.optional. Paths compare structurally and hash by segment.
type ModulePath struct {
	Segments []string
}

// NewModulePath builds a ModulePath from dot-separated segments.
func NewModulePath(segments ...string) ModulePath {
	return ModulePath{Segments: append([]string(nil), segments...)}
}

// ParseModulePath splits a dotted path string, e.g. "std.optional".
func ParseModulePath(s string) ModulePath {
	if s == "" {
		return ModulePath{}
	}
	return NewModulePath(strings.Split(s, ".")...)
}

func (p ModulePath) String() string { return strings.Join(p.Segments, ".") }

// Equal reports structural equality.
func (p ModulePath) Equal(other ModulePath) bool {
	if len(p.Segments) != len(other.Segments) {
		return false
	}
	for i := range p.Segments {
		if p.Segments[i] != other.Segments[i] {
			return false
		}
	}
	return true
}

// Key returns a value suitable for use as a map key (ModulePath itself
// already is comparable only when wrapping a fixed-size array, so Key
// returns the canonical dotted string instead).
func (p ModulePath) Key() string { return p.String() }

// Parent returns the path with its last segment removed, and false if p has
// no parent (is empty or a single segment).
func (p ModulePath) Parent() (ModulePath, bool) {
	if len(p.Segments) <= 1 {
		return ModulePath{}, false
	}
	return ModulePath{Segments: p.Segments[:len(p.Segments)-1]}, true
}

// Last returns the final segment, or "" if p is empty.
func (p ModulePath) Last() string {
	if len(p.Segments) == 0 {
		return ""
	}
	return p.Segments[len(p.Segments)-1]
}

// SourceLocation pairs a module path with a byte range inside it.
type SourceLocation struct {
	Module ModulePath
	Range  TextRange
}

// TextRange is an (offset, length) pair over the UTF-8 byte buffer of a
// source file.
type TextRange struct {
	Offset int
	Length int
}

func (r TextRange) End() int { return r.Offset + r.Length }
