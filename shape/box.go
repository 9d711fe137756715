// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"cogentcore.org/prims/math32"
)

// boxFace is one face of a box: the outward normal direction along axis
// and the directions of increasing texture u and v, with u x v = normal.
type boxFace struct {
	norm, u, v math32.Vector3
	axis       math32.Dims
}

// start with neg z as typically back
var boxFaces = [6]boxFace{
	{math32.Vec3(0, 0, -1), math32.Vec3(-1, 0, 0), math32.Vec3(0, 1, 0), math32.Z}, // nz
	{math32.Vec3(0, -1, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 0, 1), math32.Y},  // ny
	{math32.Vec3(1, 0, 0), math32.Vec3(0, 0, -1), math32.Vec3(0, 1, 0), math32.X},  // px
	{math32.Vec3(-1, 0, 0), math32.Vec3(0, 0, 1), math32.Vec3(0, 1, 0), math32.X},  // nx
	{math32.Vec3(0, 1, 0), math32.Vec3(1, 0, 0), math32.Vec3(0, 0, -1), math32.Y},  // py
	{math32.Vec3(0, 0, 1), math32.Vec3(1, 0, 0), math32.Vec3(0, 1, 0), math32.Z},   // pz
}

// dims returns the dimensions along which u and v run.
func (fc *boxFace) dims() (u, v math32.Dims) {
	a, b := math32.OtherDim(fc.axis)
	if fc.u.Dim(a) == 0 {
		return b, a
	}
	return a, b
}

// segments returns the number of segments of the face along u and v.
func (fc *boxFace) segments(segs math32.Vector3i) (nu, nv int) {
	ud, vd := fc.dims()
	return int(segs.Dim(ud)), int(segs.Dim(vd))
}

// BoxN returns the number of vertices and indices of an indexed [Box]
// with the given number of segments per axis (each at least 1).
func BoxN(segs math32.Vector3i) (numVertex, numIndex int) {
	segs.SetMaxScalar(1)
	for _, fc := range boxFaces {
		nu, nv := fc.segments(segs)
		numVertex += (nu + 1) * (nv + 1)
		numIndex += nu * nv * 6
	}
	return
}

// Box returns a rectangular solid (cuboid) centered on the origin with
// the given size along X, Y, Z. Each face is divided into segs segments
// along each of its two axes; segment counts are enforced to be at least 1.
// Supports [IndexedTriangleList] (shared vertices within each face,
// the default) and [TriangleList]. Normals are per face; 2D texture
// coordinates span each face; 3D texture coordinates and colors are the
// position scaled into the [-1, 1] cube.
func Box(width, height, depth float32, segs math32.Vector3i, opts Options) (*Construct, error) {
	opts, err := opts.resolve("Box", IndexedTriangleList, TriangleList)
	if err != nil {
		return nil, err
	}
	segs.SetMaxScalar(1)
	hsz := math32.Vec3(width, height, depth).MulScalar(0.5)
	nVtx, nIdx := BoxN(segs)

	cube := make([]math32.Vector3, 0, nVtx)
	var norms []math32.Vector3
	var tex []math32.Vector2
	if opts.Features.Has(Normals) {
		norms = make([]math32.Vector3, 0, nVtx)
	}
	if opts.Features.Has(TexCoords) && opts.TexCoordDim == 2 {
		tex = make([]math32.Vector2, 0, nVtx)
	}
	idxs := make([]uint32, 0, nIdx)

	for _, fc := range boxFaces {
		nu, nv := fc.segments(segs)
		st := uint32(len(cube))
		for j := 0; j <= nv; j++ {
			b := float32(j) / float32(nv)
			for i := 0; i <= nu; i++ {
				a := float32(i) / float32(nu)
				pt := fc.norm.Add(fc.u.MulScalar(2*a - 1)).Add(fc.v.MulScalar(2*b - 1))
				cube = append(cube, pt)
				if norms != nil {
					norms = append(norms, fc.norm)
				}
				if tex != nil {
					tex = append(tex, math32.Vec2(a, 1-b))
				}
			}
		}
		row := uint32(nu + 1)
		for j := range uint32(nv) {
			for i := range uint32(nu) {
				v00 := st + j*row + i
				v10 := v00 + 1
				v01 := v00 + row
				v11 := v01 + 1
				idxs = append(idxs, v00, v10, v11, v00, v11, v01)
			}
		}
	}

	var attr Attributes
	attr.Positions = make([]math32.Vector3, len(cube))
	for i, c := range cube {
		attr.Positions[i] = c.Mul(hsz)
	}
	attr.Normals = norms
	attr.TexCoords2 = tex
	if opts.Features.Has(TexCoords) && opts.TexCoordDim == 3 {
		attr.TexCoords3 = cube
	}
	setUnitColors(&attr, cube, opts)
	attr.Indices = idxs
	if opts.Topology == TriangleList {
		attr = deindex(attr)
	}
	return newConstruct(opts.Topology, attr)
}

// Cube returns a [Box] with all sides of the given size and one segment per face.
func Cube(size float32, opts Options) (*Construct, error) {
	return Box(size, size, size, math32.Vec3i(1, 1, 1), opts)
}

// deindex expands indexed attributes into one vertex per index,
// clearing the indices.
func deindex(attr Attributes) Attributes {
	var out Attributes
	idx := attr.Indices
	out.Positions = gather(attr.Positions, idx)
	out.Normals = gather(attr.Normals, idx)
	out.TexCoords2 = gather(attr.TexCoords2, idx)
	out.TexCoords3 = gather(attr.TexCoords3, idx)
	out.Colors3 = gather(attr.Colors3, idx)
	out.Colors4 = gather(attr.Colors4, idx)
	return out
}

func gather[T any](vals []T, idx []uint32) []T {
	if len(vals) == 0 {
		return nil
	}
	out := make([]T, len(idx))
	for i, ix := range idx {
		out[i] = vals[ix]
	}
	return out
}
