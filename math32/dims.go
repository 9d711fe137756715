// Copyright 2019 Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package math32

import "fmt"

// Dims is a list of vector dimension (component) names
type Dims int32

// Vector dimension names
const (
	X Dims = iota
	Y
	Z
	W
)

var dimsNames = [...]string{"X", "Y", "Z", "W"}

func (d Dims) String() string {
	if d < 0 || int(d) >= len(dimsNames) {
		return fmt.Sprintf("Dims(%d)", int32(d))
	}
	return dimsNames[d]
}

// OtherDim returns the two dimensions other than d, in X, Y, Z order.
// This is used for laying out axis-aligned planes.
func OtherDim(d Dims) (Dims, Dims) {
	switch d {
	case X:
		return Y, Z
	case Y:
		return X, Z
	default:
		return X, Y
	}
}
