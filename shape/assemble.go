// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"slices"

	"cogentcore.org/prims/math32"
)

// Assemble turns a triangle list of unit sphere points into an ellipsoid
// [Construct], scaling each point by radii and adding the attributes
// selected by opts:
//   - [Normals]: the analytic ellipsoid normal at each point.
//   - [TexCoords]: with TexCoordDim 2, a spherical (u, v) mapping with u
//     running around the Z axis from -X and v from the +Z pole (0) to the
//     -Z pole (1); with TexCoordDim 3, the unit direction itself.
//   - [Colors]: the unscaled unit coordinates as r, g, b, with alpha 0
//     if ColorAlpha is set.
//
// unit is not retained.
func Assemble(unit []math32.Vector3, radii math32.Vector3, opts Options) (*Construct, error) {
	opts, err := opts.resolve("Assemble", TriangleList)
	if err != nil {
		return nil, err
	}
	return assemble(slices.Clone(unit), radii, opts, false)
}

// assemble is [Assemble] for resolved options, taking ownership of unit;
// inward flips the normals.
func assemble(unit []math32.Vector3, radii math32.Vector3, opts Options, inward bool) (*Construct, error) {
	var attr Attributes
	attr.Positions = make([]math32.Vector3, len(unit))
	for i, u := range unit {
		attr.Positions[i] = u.Mul(radii)
	}
	if opts.Features.Has(Normals) {
		attr.Normals = ellipsoidNormals(unit, radii, inward)
	}
	if opts.Features.Has(TexCoords) {
		if opts.TexCoordDim == 3 {
			attr.TexCoords3 = unit
		} else {
			attr.TexCoords2 = sphericalTexCoords(unit)
		}
	}
	setUnitColors(&attr, unit, opts)
	return newConstruct(opts.Topology, attr)
}

// setUnitColors sets the colors from a copy of the given unscaled
// coordinates when [Colors] is requested. RGBA colors always have alpha 0.
func setUnitColors(attr *Attributes, unit []math32.Vector3, opts Options) {
	if !opts.Features.Has(Colors) {
		return
	}
	if !opts.ColorAlpha {
		attr.Colors3 = slices.Clone(unit)
		return
	}
	attr.Colors4 = make([]math32.Vector4, len(unit))
	for i, u := range unit {
		attr.Colors4[i] = math32.Vector4FromVector3(u, 0)
	}
}

// ellipsoidNormals returns the normals of the ellipsoid with the given
// radii at the scaled unit points: (x/rx, y/ry, z/rz) normalized,
// computed as (x*ry*rz, y*rx*rz, z*rx*ry) to allow zero radii.
func ellipsoidNormals(unit []math32.Vector3, radii math32.Vector3, inward bool) []math32.Vector3 {
	sc := math32.Vec3(radii.Y*radii.Z, radii.X*radii.Z, radii.X*radii.Y)
	if inward {
		sc = sc.Negate()
	}
	norms := make([]math32.Vector3, len(unit))
	for i, u := range unit {
		norms[i] = u.Mul(sc).Normal()
	}
	return norms
}

// sphericalTexCoords maps each triangle of unit points to (u, v) texture
// coordinates, keeping every triangle continuous across the u = 0 / 1 seam
// and at the poles, where u takes the mean of the other two corners.
func sphericalTexCoords(unit []math32.Vector3) []math32.Vector2 {
	tcs := make([]math32.Vector2, len(unit))
	for t := 0; t+2 < len(unit); t += 3 {
		var pole [3]bool
		var us [3]float32
		for c := range 3 {
			p := unit[t+c]
			pole[c] = p.X == 0 && p.Y == 0
			us[c] = 0.5 + math32.Atan2(p.Y, p.X)/(2*math32.Pi)
			tcs[t+c].Y = math32.Acos(math32.Clamp(p.Z, -1, 1)) / math32.Pi
		}
		umin, umax := float32(1), float32(0)
		for c := range 3 {
			if !pole[c] {
				umin = min(umin, us[c])
				umax = max(umax, us[c])
			}
		}
		if umax-umin > 0.5 { // straddles the seam
			for c := range 3 {
				if us[c] < 0.5 {
					us[c]++
				}
			}
		}
		for c := range 3 {
			if !pole[c] {
				continue
			}
			sum, n := float32(0), 0
			for o := range 3 {
				if !pole[o] {
					sum += us[o]
					n++
				}
			}
			if n > 0 {
				us[c] = sum / float32(n)
			}
		}
		for c := range 3 {
			tcs[t+c].X = us[c]
		}
	}
	return tcs
}
