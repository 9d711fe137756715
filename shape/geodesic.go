// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"cogentcore.org/prims/math32"
)

// IcosahedronFaces is the number of faces subdivided by [GeoEllipsoidPoints].
const IcosahedronFaces = 20

// GeoEllipsoidN returns the number of triangle list points generated by
// [GeoEllipsoidPoints] for the given number of splits per face edge.
func GeoEllipsoidN(n int) int {
	return 3 * IcosahedronFaces * n * n
}

// GeoEllipsoid returns an ellipsoid with the given radii along X, Y, Z,
// built by subdividing every face of an icosahedron into n x n triangles
// projected onto the unit sphere before scaling. The poles are on the Z axis.
// n must be >= 1 for the result to have any positions.
// Only [TriangleList] is supported.
func GeoEllipsoid(rx, ry, rz float32, n int, opts Options) (*Construct, error) {
	opts, err := opts.resolve("GeoEllipsoid", TriangleList)
	if err != nil {
		return nil, err
	}
	unit, err := GeoEllipsoidPoints(n)
	if err != nil {
		return nil, err
	}
	return assemble(unit, math32.Vec3(rx, ry, rz), opts, false)
}

// GeoSphere returns a [GeoEllipsoid] with all radii equal to radius.
func GeoSphere(radius float32, n int, opts Options) (*Construct, error) {
	return GeoEllipsoid(radius, radius, radius, n, opts)
}

// GeoEllipsoidPoints returns the triangle list of a unit geodesic sphere:
// the 20 faces of an icosahedron, each subdivided by [SubdivideFace] with
// n splits per edge, for a total of [GeoEllipsoidN] points with outward
// winding. n = 0 is valid and returns no points; n < 0 is an error.
func GeoEllipsoidPoints(n int) ([]math32.Vector3, error) {
	if n < 0 {
		return nil, fmt.Errorf("shape.GeoEllipsoidPoints: %w: n = %d, must be >= 0", ErrInvalidParameter, n)
	}
	per := 3 * n * n
	pts := make([]math32.Vector3, GeoEllipsoidN(n))
	for k := range 5 {
		for s, fc := range icosahedronFaces(k) {
			SubdivideFace(fc[0], fc[1], fc[2], n, (4*k+s)*per, pts)
		}
	}
	return pts, nil
}

// icosahedronFaces returns the corners of the four faces of rotation k
// (0-4) about the Z axis: the top pole cap, the upper and lower faces of
// the middle band, and the bottom pole cap. The upper ring of vertices is
// at colatitude Pi/3 and the lower ring at 2Pi/3, rotated by Pi/5.
func icosahedronFaces(k int) [4][3]math32.Vector3 {
	const (
		upper = math32.Pi / 3
		lower = 2 * math32.Pi / 3
		step  = 2 * math32.Pi / 5
	)
	north := math32.Vec3(0, 0, 1)
	south := math32.Vec3(0, 0, -1)
	lon0 := step * float32(k)
	lon1 := step * float32((k+1)%5)
	u0 := spherical(upper, lon0)
	u1 := spherical(upper, lon1)
	l0 := spherical(lower, lon0+step/2)
	l1 := spherical(lower, lon1+step/2)
	return [4][3]math32.Vector3{
		{north, u0, u1},
		{u0, l0, u1},
		{l0, l1, u1},
		{south, l1, l0},
	}
}

// spherical returns the unit vector at the given colatitude from +Z
// and longitude from +X.
func spherical(colat, lon float32) math32.Vector3 {
	sp, cp := math32.Sincos(colat)
	sl, cl := math32.Sincos(lon)
	return math32.Vec3(sp*cl, sp*sl, cp)
}

// SubdivideFace writes the n x n triangles subdividing the spherical
// triangle a, b, c into dst, as 3*n*n points starting at offset.
// a, b, c must be unit vectors in counter-clockwise order; the output
// triangles have the same winding. Every interpolated point is projected
// onto the unit sphere; the corners themselves are used as given.
// dst must have room for the points; n <= 0 writes nothing.
func SubdivideFace(a, b, c math32.Vector3, n, offset int, dst []math32.Vector3) {
	if n <= 0 {
		return
	}
	// row i has i+1 points going from the a-b edge to the a-c edge
	var rows [2][]math32.Vector3
	rows[0] = make([]math32.Vector3, n+1)
	rows[1] = make([]math32.Vector3, n+1)
	top := rows[0][:1]
	top[0] = a
	k := offset
	for i := range n {
		bot := rows[(i+1)&1][:i+2]
		wa := float32(n - i - 1)
		for j := range bot {
			p := a.MulScalar(wa).Add(b.MulScalar(float32(i + 1 - j))).Add(c.MulScalar(float32(j)))
			bot[j] = p.Normal()
		}
		for j := range top {
			dst[k], dst[k+1], dst[k+2] = top[j], bot[j], bot[j+1]
			k += 3
			if j > 0 {
				dst[k], dst[k+1], dst[k+2] = top[j-1], bot[j], top[j]
				k += 3
			}
		}
		top = bot
	}
}
