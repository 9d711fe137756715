// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Initially copied from G3N: github.com/g3n/engine/math32
// Copyright 2016 The G3N Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.
// with modifications needed to suit Cogent Core functionality.

package math32

// Vector3i is a 3D vector/point with X, Y and Z int32 components.
// Shapes use it for per-axis segment counts.
type Vector3i struct {
	X int32
	Y int32
	Z int32
}

// Vec3i returns a new [Vector3i] with the given x, y and y components.
func Vec3i(x, y, z int32) Vector3i {
	return Vector3i{X: x, Y: y, Z: z}
}

// Dim returns this vector component
func (v Vector3i) Dim(dim Dims) int32 {
	switch dim {
	case X:
		return v.X
	case Y:
		return v.Y
	case Z:
		return v.Z
	default:
		panic("dim is out of range")
	}
}

// SetMaxScalar sets each component to be at least the given scalar.
func (v *Vector3i) SetMaxScalar(s int32) {
	v.X = max(v.X, s)
	v.Y = max(v.Y, s)
	v.Z = max(v.Z, s)
}
