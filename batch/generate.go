// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package batch

import (
	"fmt"
	"maps"
	"slices"

	"cogentcore.org/prims/math32"
	"cogentcore.org/prims/shape"
)

// generators maps each shape kind to its generator.
var generators = map[string]func(sc *ShapeConfig) (*shape.Construct, error){
	"ellipsoid": func(sc *ShapeConfig) (*shape.Construct, error) {
		return shape.Ellipsoid(sc.Radii[0], sc.Radii[1], sc.Radii[2], sc.Slices, sc.Stacks, sc.Options())
	},
	"sphere": func(sc *ShapeConfig) (*shape.Construct, error) {
		return shape.Sphere(sc.Radius, sc.Slices, sc.Stacks, sc.Options())
	},
	"skysphere": func(sc *ShapeConfig) (*shape.Construct, error) {
		return shape.SkySphere(sc.Radius, sc.Slices, sc.Stacks, sc.Options())
	},
	"geoellipsoid": func(sc *ShapeConfig) (*shape.Construct, error) {
		return shape.GeoEllipsoid(sc.Radii[0], sc.Radii[1], sc.Radii[2], sc.Level, sc.Options())
	},
	"geosphere": func(sc *ShapeConfig) (*shape.Construct, error) {
		return shape.GeoSphere(sc.Radius, sc.Level, sc.Options())
	},
	"box": func(sc *ShapeConfig) (*shape.Construct, error) {
		segs := math32.Vec3i(sc.BoxSegments[0], sc.BoxSegments[1], sc.BoxSegments[2])
		return shape.Box(sc.Size[0], sc.Size[1], sc.Size[2], segs, sc.Options())
	},
	"cube": func(sc *ShapeConfig) (*shape.Construct, error) {
		return shape.Cube(sc.Size[0], sc.Options())
	},
	"disk": func(sc *ShapeConfig) (*shape.Construct, error) {
		return shape.Disk(sc.Radius, sc.Segments, sc.Options())
	},
	"ring": func(sc *ShapeConfig) (*shape.Construct, error) {
		return shape.Ring(sc.Inner, sc.Outer, sc.Segments, sc.Options())
	},
}

// Kinds returns the names of all shape kinds, sorted.
func Kinds() []string {
	return slices.Sorted(maps.Keys(generators))
}

// Generate builds the mesh of the given shape.
func Generate(sc *ShapeConfig) (*shape.Construct, error) {
	gen, has := generators[sc.Kind]
	if !has {
		return nil, fmt.Errorf("batch.Generate: unknown kind %q, must be one of %v", sc.Kind, Kinds())
	}
	cs, err := gen(sc)
	if err != nil {
		return nil, fmt.Errorf("batch.Generate %s: %w", sc.Name, err)
	}
	return cs, nil
}
