// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"cogentcore.org/prims/math32"
	"cogentcore.org/prims/shape"
)

func init() {
	Encoders[".stl"] = &STL{}
	Decoders[".stl"] = &STL{}
}

const (
	stlHeaderSize   = 80
	stlTriangleSize = 50
)

// STL encodes and decodes the binary STL format (*.stl).
// STL only stores triangle corners, with one normal per facet.
type STL struct{}

func (st *STL) Desc() string {
	return "binary STL format"
}

// STLSize returns the size in bytes of the binary STL encoding
// of the given number of triangles.
func STLSize(triangles int) int {
	return stlHeaderSize + 4 + stlTriangleSize*triangles
}

// Encode writes the triangles of the mesh, each with its facet normal.
// The name is stored in the header, truncated to fit, and prefixed
// with "binary " if it starts with "solid".
func (st *STL) Encode(w io.Writer, name string, cs *shape.Construct) error {
	tris := cs.TriangleIndices()
	ntri := len(tris) / 3
	buf := make([]byte, stlHeaderSize+4, max(stlHeaderSize+4, stlTriangleSize))
	putSTLHeader(buf[:stlHeaderSize], name)
	binary.LittleEndian.PutUint32(buf[stlHeaderSize:], uint32(ntri))
	if _, err := w.Write(buf); err != nil {
		return err
	}

	pos := cs.Positions()
	buf = buf[:stlTriangleSize]
	for i := range ntri {
		a, b, c := pos[tris[3*i]], pos[tris[3*i+1]], pos[tris[3*i+2]]
		var vals [12]float32
		for k, v := range [4]math32.Vector3{math32.Normal(a, b, c), a, b, c} {
			v.ToSlice(vals[:], 3*k)
		}
		for k, f := range vals {
			binary.LittleEndian.PutUint32(buf[4*k:], math32.Float32bits(f))
		}
		binary.LittleEndian.PutUint16(buf[48:], 0)
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

// putSTLHeader copies name into the header hdr. Readers take a header
// starting with "solid" as ASCII STL, so such names get a prefix.
func putSTLHeader(hdr []byte, name string) {
	if t := strings.TrimSpace(name); len(t) >= 5 && strings.EqualFold(t[:5], "solid") {
		name = "binary " + name
	}
	copy(hdr, name)
}

// Decode reads the triangles into a [shape.TriangleList] mesh with the
// facet normal on every corner. A zero facet normal is recomputed from the corners.
func (st *STL) Decode(r io.Reader) (*shape.Construct, error) {
	hdr := make([]byte, stlHeaderSize+4)
	if _, err := io.ReadFull(r, hdr); err != nil {
		return nil, fmt.Errorf("meshio: stl header: %w", err)
	}
	ntri := int(binary.LittleEndian.Uint32(hdr[stlHeaderSize:]))

	var attr shape.Attributes
	buf := make([]byte, stlTriangleSize)
	for i := range ntri {
		if _, err := io.ReadFull(r, buf); err != nil {
			return nil, fmt.Errorf("meshio: stl triangle %d of %d: %w", i, ntri, err)
		}
		var vs [4]math32.Vector3
		for k := range vs {
			for d := range 3 {
				bits := binary.LittleEndian.Uint32(buf[12*k+4*d:])
				vs[k].SetDim(math32.Dims(d), math32.Float32frombits(bits))
			}
		}
		norm := vs[0]
		if norm.LengthSquared() == 0 {
			norm = math32.Normal(vs[1], vs[2], vs[3])
		}
		attr.Positions = append(attr.Positions, vs[1], vs[2], vs[3])
		attr.Normals = append(attr.Normals, norm, norm, norm)
	}
	return shape.NewConstruct(shape.TriangleList, attr)
}
