// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"
	"strings"
)

// Topology is how the vertices of a [Construct] are assembled into triangles.
type Topology int32

const (
	// TopologyUnset is the zero value. It is never valid in a [Construct];
	// in [Options] it selects the generator's default topology.
	TopologyUnset Topology = iota

	// TriangleList is one triangle for every three consecutive vertices.
	TriangleList

	// TriangleStrip is one or more strips of vertices, with lengths given
	// by the strip lengths, where each vertex after the first two adds a triangle.
	TriangleStrip

	// IndexedTriangleList is one triangle for every three consecutive indices.
	IndexedTriangleList

	// IndexedTriangleStrip is like [TriangleStrip], over indices instead of vertices.
	IndexedTriangleStrip

	topologyN
)

var topologyNames = [...]string{"Unset", "TriangleList", "TriangleStrip", "IndexedTriangleList", "IndexedTriangleStrip"}

// TopologyValues returns all valid (set) topologies.
func TopologyValues() []Topology {
	return []Topology{TriangleList, TriangleStrip, IndexedTriangleList, IndexedTriangleStrip}
}

func (tp Topology) String() string {
	if !tp.known() {
		return fmt.Sprintf("Topology(%d)", int32(tp))
	}
	return topologyNames[tp]
}

// IsIndexed returns whether the topology draws vertices through indices.
func (tp Topology) IsIndexed() bool {
	return tp == IndexedTriangleList || tp == IndexedTriangleStrip
}

// IsStrip returns whether the topology is made of triangle strips.
func (tp Topology) IsStrip() bool {
	return tp == TriangleStrip || tp == IndexedTriangleStrip
}

func (tp Topology) known() bool {
	return tp >= TopologyUnset && tp < topologyN
}

// SetString sets the topology from its name, ignoring case.
func (tp *Topology) SetString(s string) error {
	for i, nm := range topologyNames {
		if strings.EqualFold(s, nm) {
			*tp = Topology(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Topology", s)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
func (tp Topology) MarshalText() ([]byte, error) {
	return []byte(tp.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
func (tp *Topology) UnmarshalText(text []byte) error {
	return tp.SetString(string(text))
}
