// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"fmt"

	"cogentcore.org/prims/math32"
)

// EllipsoidN returns the number of triangle list points generated by
// [EllipsoidPoints] for the given (valid) slices and stacks.
func EllipsoidN(slices, stacks int) int {
	return 3 * slices * 2 * (stacks - 1)
}

// Ellipsoid returns an ellipsoid with the given radii along X, Y, Z,
// tessellated as a latitude / longitude grid of slices around the Z axis
// and stacks from the +Z pole to the -Z pole.
// slices must be >= 3 and stacks >= 2. Only [TriangleList] is supported.
func Ellipsoid(rx, ry, rz float32, slices, stacks int, opts Options) (*Construct, error) {
	opts, err := opts.resolve("Ellipsoid", TriangleList)
	if err != nil {
		return nil, err
	}
	unit, err := EllipsoidPoints(slices, stacks)
	if err != nil {
		return nil, err
	}
	return assemble(unit, math32.Vec3(rx, ry, rz), opts, false)
}

// Sphere returns an [Ellipsoid] with all radii equal to radius.
func Sphere(radius float32, slices, stacks int, opts Options) (*Construct, error) {
	return Ellipsoid(radius, radius, radius, slices, stacks, opts)
}

// EllipsoidPoints returns the triangle list of a unit sphere tessellated
// with the given slices (>= 3) and stacks (>= 2): exactly
// [EllipsoidN] points, three per triangle, with outward (counter-clockwise)
// winding. Corners are not shared between triangles.
func EllipsoidPoints(slices, stacks int) ([]math32.Vector3, error) {
	if slices < 3 {
		return nil, fmt.Errorf("shape.EllipsoidPoints: %w: slices = %d, must be >= 3", ErrInvalidParameter, slices)
	}
	if stacks < 2 {
		return nil, fmt.Errorf("shape.EllipsoidPoints: %w: stacks = %d, must be >= 2", ErrInvalidParameter, stacks)
	}

	// sin, cos of the colatitude of each stack row; pole rows are exact
	sinPhi := make([]float32, stacks+1)
	cosPhi := make([]float32, stacks+1)
	for j := 1; j < stacks; j++ {
		sinPhi[j], cosPhi[j] = math32.Sincos(float32(j) * math32.Pi / float32(stacks))
	}
	cosPhi[0] = 1
	cosPhi[stacks] = -1

	setColumn := func(col []math32.Vector3, i int) {
		// column slices wraps exactly onto column 0
		theta := 2 * math32.Pi * float32(i%slices) / float32(slices)
		st, ct := math32.Sincos(theta)
		for j := range col {
			col[j].Set(sinPhi[j]*ct, sinPhi[j]*st, cosPhi[j])
		}
	}

	pts := make([]math32.Vector3, 0, EllipsoidN(slices, stacks))
	var cols [2][]math32.Vector3
	cols[0] = make([]math32.Vector3, stacks+1)
	cols[1] = make([]math32.Vector3, stacks+1)
	setColumn(cols[0], 0)
	for i := range slices {
		cur := cols[i&1]
		nxt := cols[(i+1)&1]
		setColumn(nxt, i+1)
		for j := range stacks {
			if j > 0 { // zero width at the top pole
				pts = append(pts, cur[j], cur[j+1], nxt[j])
			}
			if j < stacks-1 { // zero width at the bottom pole
				pts = append(pts, nxt[j], cur[j+1], nxt[j+1])
			}
		}
	}
	return pts, nil
}

// SkySphere returns a sphere of the given radius for use as a background
// dome seen from the inside: the [Ellipsoid] tessellation with reversed
// winding, and normals pointing toward the center.
// Only [TriangleList] is supported.
func SkySphere(radius float32, slices, stacks int, opts Options) (*Construct, error) {
	opts, err := opts.resolve("SkySphere", TriangleList)
	if err != nil {
		return nil, err
	}
	unit, err := EllipsoidPoints(slices, stacks)
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(unit); i += 3 {
		unit[i+1], unit[i+2] = unit[i+2], unit[i+1]
	}
	return assemble(unit, math32.Vector3Scalar(radius), opts, true)
}
