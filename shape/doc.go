// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package shape generates procedural 3D meshes for a retained-mode scenegraph.

Each generator is a free function taking shape parameters and an [Options]
value, and returning a validated, immutable [Construct] that holds the
vertex positions plus the optional normals, texture coordinates and
per-vertex colors selected by [Options.Features].

The ellipsoids are built on the unit sphere and then scaled per axis:
[Ellipsoid] uses a stacks x slices latitude / longitude grid, while
[GeoEllipsoid] subdivides each of the 20 faces of an icosahedron into an
N x N grid of triangles projected onto the sphere, which gives a much more
uniform triangle density. Because the scale is applied after tessellation,
triangles are uniform in sphere space, not on a strongly stretched ellipsoid.

[Box], [Cube], [Disk], [Ring] and [SkySphere] are built the same way and
support the topologies listed in their doc comments. Requesting any other
[Topology] fails with [ErrUnsupportedTopology].

All generators allocate their own scratch buffers, so they can be called
concurrently from multiple goroutines.
*/
package shape
