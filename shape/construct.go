// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"
	"slices"

	"cogentcore.org/prims/math32"
)

// Attributes are the vertex attribute arrays and topology data
// given to [NewConstruct]. Optional arrays are left empty when unused.
type Attributes struct {

	// Positions are the vertex positions. Must not be empty.
	Positions []math32.Vector3

	// Normals are per-vertex unit normals.
	Normals []math32.Vector3

	// TexCoords2 are 2D (u, v) texture coordinates.
	// Only one of TexCoords2 and TexCoords3 may be set.
	TexCoords2 []math32.Vector2

	// TexCoords3 are 3D texture coordinates.
	TexCoords3 []math32.Vector3

	// Colors3 are RGB colors. Only one of Colors3 and Colors4 may be set.
	Colors3 []math32.Vector3

	// Colors4 are RGBA colors.
	Colors4 []math32.Vector4

	// Indices index into Positions, for indexed topologies only.
	Indices []uint32

	// StripLengths are the number of vertices (or indices, if indexed)
	// in each strip, for strip topologies only.
	StripLengths []int
}

// Construct is a validated, immutable set of mesh vertex attributes
// with their [Topology], ready to be turned into a renderable node.
// The slices returned by its accessors are owned by the Construct
// and must not be modified.
type Construct struct {
	topology Topology
	attr     Attributes
	bbox     math32.Box3
}

// NewConstruct validates the given attributes against the topology
// and returns a [Construct] holding its own copies of the arrays, so
// later changes to attr do not affect it.
// Any inconsistency is reported as an error wrapping [ErrInvariantViolation].
func NewConstruct(topology Topology, attr Attributes) (*Construct, error) {
	return newConstruct(topology, Attributes{
		Positions:    clone(attr.Positions),
		Normals:      clone(attr.Normals),
		TexCoords2:   clone(attr.TexCoords2),
		TexCoords3:   clone(attr.TexCoords3),
		Colors3:      clone(attr.Colors3),
		Colors4:      clone(attr.Colors4),
		Indices:      clone(attr.Indices),
		StripLengths: clone(attr.StripLengths),
	})
}

// newConstruct is [NewConstruct] for arrays that no one else references
// and that do not share backing storage.
func newConstruct(topology Topology, attr Attributes) (*Construct, error) {
	if err := check(topology, &attr); err != nil {
		return nil, fmt.Errorf("shape.NewConstruct: %w", err)
	}
	cs := &Construct{topology: topology, attr: attr}
	cs.bbox.SetFromPoints(attr.Positions)
	return cs, nil
}

// clone returns a copy of s, or nil if s is empty.
func clone[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return slices.Clone(s)
}

// check enforces the topology consistency rules.
func check(topology Topology, attr *Attributes) error {
	if topology == TopologyUnset || !topology.known() {
		return fmt.Errorf("%w: topology is not set (%v)", ErrInvariantViolation, topology)
	}
	np := len(attr.Positions)
	if np == 0 {
		return fmt.Errorf("%w: positions are empty", ErrInvariantViolation)
	}
	if err := checkLen("normals", len(attr.Normals), np); err != nil {
		return err
	}
	if len(attr.TexCoords2) > 0 && len(attr.TexCoords3) > 0 {
		return fmt.Errorf("%w: both 2D and 3D texture coordinates are set", ErrInvariantViolation)
	}
	if err := checkLen("2D texture coordinates", len(attr.TexCoords2), np); err != nil {
		return err
	}
	if err := checkLen("3D texture coordinates", len(attr.TexCoords3), np); err != nil {
		return err
	}
	if len(attr.Colors3) > 0 && len(attr.Colors4) > 0 {
		return fmt.Errorf("%w: both RGB and RGBA colors are set", ErrInvariantViolation)
	}
	if err := checkLen("RGB colors", len(attr.Colors3), np); err != nil {
		return err
	}
	if err := checkLen("RGBA colors", len(attr.Colors4), np); err != nil {
		return err
	}

	ni := len(attr.Indices)
	if topology.IsIndexed() {
		if ni == 0 {
			return fmt.Errorf("%w: %v requires indices", ErrInvariantViolation, topology)
		}
		for i, ix := range attr.Indices {
			if int(ix) >= np {
				return fmt.Errorf("%w: index %d at %d is out of range for %d positions", ErrInvariantViolation, ix, i, np)
			}
		}
	} else if ni > 0 {
		return fmt.Errorf("%w: %v does not use indices, got %d", ErrInvariantViolation, topology, ni)
	}

	// number of vertices the topology draws
	nd := np
	if topology.IsIndexed() {
		nd = ni
	}
	if topology.IsStrip() {
		if len(attr.StripLengths) == 0 {
			return fmt.Errorf("%w: %v requires strip lengths", ErrInvariantViolation, topology)
		}
		sum := 0
		for i, sl := range attr.StripLengths {
			if sl < 3 {
				return fmt.Errorf("%w: strip %d has length %d, must be >= 3", ErrInvariantViolation, i, sl)
			}
			sum += sl
		}
		if sum != nd {
			return fmt.Errorf("%w: strip lengths sum to %d, want %d", ErrInvariantViolation, sum, nd)
		}
		return nil
	}
	if len(attr.StripLengths) > 0 {
		return fmt.Errorf("%w: %v does not use strip lengths", ErrInvariantViolation, topology)
	}
	if nd%3 != 0 {
		return fmt.Errorf("%w: %v has %d vertices, not a multiple of 3", ErrInvariantViolation, topology, nd)
	}
	return nil
}

func checkLen(what string, n, np int) error {
	if n != 0 && n != np {
		return fmt.Errorf("%w: %d %s for %d positions", ErrInvariantViolation, n, what, np)
	}
	return nil
}

// Topology returns how the vertices are assembled into triangles.
func (cs *Construct) Topology() Topology { return cs.topology }

// Positions returns the vertex positions.
func (cs *Construct) Positions() []math32.Vector3 { return cs.attr.Positions }

// Normals returns the vertex normals, or nil.
func (cs *Construct) Normals() []math32.Vector3 { return cs.attr.Normals }

// TexCoords2 returns the 2D texture coordinates, or nil.
func (cs *Construct) TexCoords2() []math32.Vector2 { return cs.attr.TexCoords2 }

// TexCoords3 returns the 3D texture coordinates, or nil.
func (cs *Construct) TexCoords3() []math32.Vector3 { return cs.attr.TexCoords3 }

// Colors3 returns the RGB colors, or nil.
func (cs *Construct) Colors3() []math32.Vector3 { return cs.attr.Colors3 }

// Colors4 returns the RGBA colors, or nil.
func (cs *Construct) Colors4() []math32.Vector4 { return cs.attr.Colors4 }

// Indices returns the vertex indices of an indexed topology, or nil.
func (cs *Construct) Indices() []uint32 { return cs.attr.Indices }

// StripLengths returns the strip lengths of a strip topology, or nil.
func (cs *Construct) StripLengths() []int { return cs.attr.StripLengths }

// NumVertex returns the number of vertices.
func (cs *Construct) NumVertex() int { return len(cs.attr.Positions) }

// TexCoordDim returns the width of the texture coordinates, 0 if there are none.
func (cs *Construct) TexCoordDim() int {
	switch {
	case len(cs.attr.TexCoords2) > 0:
		return 2
	case len(cs.attr.TexCoords3) > 0:
		return 3
	}
	return 0
}

// HasColor returns whether there are per-vertex colors.
func (cs *Construct) HasColor() bool {
	return len(cs.attr.Colors3) > 0 || len(cs.attr.Colors4) > 0
}

// BBox returns the bounding box of the positions.
func (cs *Construct) BBox() math32.Box3 { return cs.bbox }

// NumTriangles returns the number of triangles drawn.
func (cs *Construct) NumTriangles() int {
	if !cs.topology.IsStrip() {
		if cs.topology.IsIndexed() {
			return len(cs.attr.Indices) / 3
		}
		return len(cs.attr.Positions) / 3
	}
	n := 0
	for _, sl := range cs.attr.StripLengths {
		n += sl - 2
	}
	return n
}

// TriangleIndices returns the vertex indices of every triangle in order,
// three per triangle, regardless of topology. Strip triangles are
// returned with consistent winding, swapping the first two corners
// of every odd triangle in a strip.
func (cs *Construct) TriangleIndices() []uint32 {
	vtx := func(i int) uint32 {
		if cs.topology.IsIndexed() {
			return cs.attr.Indices[i]
		}
		return uint32(i)
	}
	tris := make([]uint32, 0, cs.NumTriangles()*3)
	if !cs.topology.IsStrip() {
		n := cs.NumTriangles() * 3
		for i := range n {
			tris = append(tris, vtx(i))
		}
		return tris
	}
	st := 0
	for _, sl := range cs.attr.StripLengths {
		for k := range sl - 2 {
			i := st + k
			if k%2 == 0 {
				tris = append(tris, vtx(i), vtx(i+1), vtx(i+2))
			} else {
				tris = append(tris, vtx(i+1), vtx(i), vtx(i+2))
			}
		}
		st += sl
	}
	return tris
}
