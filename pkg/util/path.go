package util

import (
	"slices"
	"strings"
)

// Path identifies a component nested within the instance hierarchy of a
// circuit.  The head segment names a module, whilst the remaining segments
// name instances (or other components) descending from it.
type Path struct {
	// Segments in the path.
	segments []string
}

// NewPath constructs a new path from the given segments.
func NewPath(segments ...string) Path {
	return Path{segments}
}

// Depth returns the number of segments in this path (a.k.a its depth).
func (p *Path) Depth() uint {
	return uint(len(p.segments))
}

// Head returns the first (i.e. outermost) segment in this path.
func (p *Path) Head() string {
	return p.segments[0]
}

// Tail returns the last (i.e. innermost) segment in this path.
func (p *Path) Tail() string {
	n := len(p.segments) - 1
	return p.segments[n]
}

// Get returns the nth segment of this path.
func (p *Path) Get(nth uint) string {
	return p.segments[nth]
}

// Equals determines whether two paths are the same.
func (p *Path) Equals(other Path) bool {
	return slices.Equal(p.segments, other.segments)
}

// PrefixOf checks whether this path is a prefix of the other.
func (p *Path) PrefixOf(other Path) bool {
	if len(p.segments) > len(other.segments) {
		return false
	}
	//
	for i := range p.segments {
		if p.segments[i] != other.segments[i] {
			return false
		}
	}
	// Looks good
	return true
}

// Extend returns this path extended with a new innermost segment.
func (p *Path) Extend(tail string) Path {
	nsegments := make([]string, len(p.segments), len(p.segments)+1)
	copy(nsegments, p.segments)
	//
	return Path{append(nsegments, tail)}
}

// Return a string representation of this path, with segments separated by
// dots (e.g. "Top.m.m_ext").
func (p *Path) String() string {
	return strings.Join(p.segments, ".")
}
