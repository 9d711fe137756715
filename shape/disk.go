// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"cogentcore.org/prims/math32"
)

// Disk returns a filled circle of the given radius on the XY plane,
// centered on the origin and facing +Z, as a fan of segs (>= 3)
// triangles around a center vertex, starting at (radius, 0, 0).
// Supports [IndexedTriangleList] (the default) and [TriangleList].
// Texture coordinates map the disk onto the unit square, and colors are
// the position divided by radius.
func Disk(radius float32, segs int, opts Options) (*Construct, error) {
	opts, err := opts.resolve("Disk", IndexedTriangleList, TriangleList)
	if err != nil {
		return nil, err
	}
	if segs < 3 {
		return nil, fmt.Errorf("shape.Disk: %w: segs = %d, must be >= 3", ErrInvalidParameter, segs)
	}
	unit := make([]math32.Vector3, segs+1)
	for i := range segs {
		sn, cs := math32.Sincos(2 * math32.Pi * float32(i) / float32(segs))
		unit[i+1].Set(cs, sn, 0)
	}
	idxs := make([]uint32, 0, 3*segs)
	for i := 1; i <= segs; i++ {
		next := i%segs + 1
		idxs = append(idxs, 0, uint32(i), uint32(next))
	}

	attr := planarAttributes(unit, radius, opts)
	attr.Indices = idxs
	if opts.Topology == TriangleList {
		attr = deindex(attr)
	}
	return newConstruct(opts.Topology, attr)
}

// Ring returns an annulus on the XY plane between the inner and outer
// radii, centered on the origin and facing +Z, divided into segs (>= 3)
// segments around its circumference. inner may be 0.
// Supports [TriangleStrip] (a single strip of alternating inner and
// outer vertices, the default), [IndexedTriangleStrip] and [TriangleList].
// Texture coordinates and colors are as for [Disk] with the outer radius.
func Ring(inner, outer float32, segs int, opts Options) (*Construct, error) {
	opts, err := opts.resolve("Ring", TriangleStrip, IndexedTriangleStrip, TriangleList)
	if err != nil {
		return nil, err
	}
	if segs < 3 {
		return nil, fmt.Errorf("shape.Ring: %w: segs = %d, must be >= 3", ErrInvalidParameter, segs)
	}
	if inner < 0 || inner >= outer {
		return nil, fmt.Errorf("shape.Ring: %w: radii %v, %v, must have 0 <= inner < outer", ErrInvalidParameter, inner, outer)
	}
	ir := inner / outer
	unit := make([]math32.Vector3, 2*segs)
	for i := range segs {
		sn, cs := math32.Sincos(2 * math32.Pi * float32(i) / float32(segs))
		unit[2*i].Set(ir*cs, ir*sn, 0)
		unit[2*i+1].Set(cs, sn, 0)
	}
	// the strip closes by repeating the first pair
	strip := make([]uint32, 0, 2*segs+2)
	for i := range 2*segs + 2 {
		strip = append(strip, uint32(i%(2*segs)))
	}

	attr := planarAttributes(unit, outer, opts)
	attr.Indices = strip
	switch opts.Topology {
	case IndexedTriangleStrip:
		attr.StripLengths = []int{len(strip)}
	case TriangleStrip:
		attr = deindex(attr)
		attr.StripLengths = []int{len(strip)}
	case TriangleList:
		attr.Indices = stripTriangles(strip)
		attr = deindex(attr)
	}
	return newConstruct(opts.Topology, attr)
}

// planarAttributes returns the attributes for unit points on the XY
// plane scaled by radius, with normals facing +Z.
func planarAttributes(unit []math32.Vector3, radius float32, opts Options) Attributes {
	var attr Attributes
	attr.Positions = make([]math32.Vector3, len(unit))
	for i, u := range unit {
		attr.Positions[i] = u.MulScalar(radius)
	}
	if opts.Features.Has(Normals) {
		attr.Normals = make([]math32.Vector3, len(unit))
		for i := range attr.Normals {
			attr.Normals[i] = math32.Vec3(0, 0, 1)
		}
	}
	if opts.Features.Has(TexCoords) {
		if opts.TexCoordDim == 3 {
			attr.TexCoords3 = make([]math32.Vector3, len(unit))
		} else {
			attr.TexCoords2 = make([]math32.Vector2, len(unit))
		}
		for i, u := range unit {
			uv := math32.Vec2((u.X+1)/2, (1-u.Y)/2)
			if opts.TexCoordDim == 3 {
				attr.TexCoords3[i] = math32.Vec3(uv.X, uv.Y, 0)
			} else {
				attr.TexCoords2[i] = uv
			}
		}
	}
	setUnitColors(&attr, unit, opts)
	return attr
}

// stripTriangles converts a triangle strip of indices into
// a triangle list with consistent winding.
func stripTriangles(strip []uint32) []uint32 {
	tris := make([]uint32, 0, 3*(len(strip)-2))
	for k := range len(strip) - 2 {
		if k%2 == 0 {
			tris = append(tris, strip[k], strip[k+1], strip[k+2])
		} else {
			tris = append(tris, strip[k+1], strip[k], strip[k+2])
		}
	}
	return tris
}
