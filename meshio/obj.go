// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cogentcore.org/prims/math32"
	"cogentcore.org/prims/shape"
)

func init() {
	Encoders[".obj"] = &OBJ{}
	Decoders[".obj"] = &OBJ{}
}

// OBJ encodes and decodes the Wavefront OBJ format (*.obj).
// Only geometry is supported: vertex positions, texture coordinates,
// normals, and faces, plus the common "v x y z r g b" vertex color
// extension. Materials are not written, and are ignored when decoding.
// Basic format info: https://en.wikipedia.org/wiki/Wavefront_.obj_file
type OBJ struct{}

func (ob *OBJ) Desc() string {
	return "Wavefront OBJ format"
}

// Encode writes the mesh as a single object of triangle faces.
// Alpha is dropped from RGBA colors.
func (ob *OBJ) Encode(w io.Writer, name string, cs *shape.Construct) error {
	ew := &errWriter{w: w}
	ew.printf("# %s, %d vertices, %d triangles\n", cs.Topology(), cs.NumVertex(), cs.NumTriangles())
	ew.printf("o %s\n", name)

	c3, c4 := cs.Colors3(), cs.Colors4()
	for i, p := range cs.Positions() {
		ew.floats("v", p.X, p.Y, p.Z)
		switch {
		case c3 != nil:
			ew.floats("", c3[i].X, c3[i].Y, c3[i].Z)
		case c4 != nil:
			ew.floats("", c4[i].X, c4[i].Y, c4[i].Z)
		}
		ew.printf("\n")
	}
	for _, tc := range cs.TexCoords2() {
		ew.floats("vt", tc.X, tc.Y)
		ew.printf("\n")
	}
	for _, tc := range cs.TexCoords3() {
		ew.floats("vt", tc.X, tc.Y, tc.Z)
		ew.printf("\n")
	}
	for _, n := range cs.Normals() {
		ew.floats("vn", n.X, n.Y, n.Z)
		ew.printf("\n")
	}

	hasTex := cs.TexCoordDim() > 0
	hasNorm := len(cs.Normals()) > 0
	tris := cs.TriangleIndices()
	for i := 0; i < len(tris); i += 3 {
		ew.printf("f")
		for _, ix := range tris[i : i+3] {
			n := ix + 1
			switch {
			case hasTex && hasNorm:
				ew.printf(" %d/%d/%d", n, n, n)
			case hasTex:
				ew.printf(" %d/%d", n, n)
			case hasNorm:
				ew.printf(" %d//%d", n, n)
			default:
				ew.printf(" %d", n)
			}
		}
		ew.printf("\n")
	}
	return ew.err
}

// errWriter keeps the first write error.
type errWriter struct {
	w   io.Writer
	err error
	buf []byte
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

// floats writes the keyword, if any, followed by the values
// with the shortest float32 representation.
func (ew *errWriter) floats(keyword string, vals ...float32) {
	if ew.err != nil {
		return
	}
	ew.buf = append(ew.buf[:0], keyword...)
	for _, v := range vals {
		ew.buf = append(ew.buf, ' ')
		ew.buf = strconv.AppendFloat(ew.buf, float64(v), 'g', -1, 32)
	}
	_, ew.err = ew.w.Write(ew.buf)
}

// objCorner is the 0-based position, texture and normal index of a face
// corner, with -1 for a missing index.
type objCorner struct {
	v, t, n int
}

// objDecoder holds the state of one decoding.
type objDecoder struct {
	verts   []math32.Vector3
	colors  []math32.Vector3
	uvs     []math32.Vector3
	uvDim   int
	norms   []math32.Vector3
	corners []objCorner
	line    int
}

// Decode reads all faces of all objects into one [shape.TriangleList]
// mesh, triangulating polygon faces as fans. Normals, texture coordinates
// and colors are kept only if every face corner (or vertex) has them.
func (ob *OBJ) Decode(r io.Reader) (*shape.Construct, error) {
	dec := &objDecoder{}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		dec.line++
		if err := dec.parseLine(strings.TrimSpace(sc.Text())); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return dec.construct()
}

func (dec *objDecoder) formatError(msg string) error {
	return fmt.Errorf("meshio: obj line %d: %s", dec.line, msg)
}

func (dec *objDecoder) parseLine(line string) error {
	if line == "" || line[0] == '#' {
		return nil
	}
	fields := strings.Fields(line)
	switch fields[0] {
	case "v":
		return dec.parseVertex(fields[1:])
	case "vt":
		return dec.parseTex(fields[1:])
	case "vn":
		vals, err := dec.parseFloats(fields[1:], 3)
		if err != nil {
			return err
		}
		dec.norms = append(dec.norms, math32.Vec3(vals[0], vals[1], vals[2]))
	case "f":
		return dec.parseFace(fields[1:])
	}
	// o, g, s, usemtl, mtllib etc carry no geometry
	return nil
}

func (dec *objDecoder) parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, dec.formatError(fmt.Sprintf("need %d values, got %d", n, len(fields)))
	}
	vals := make([]float32, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 32)
		if err != nil {
			return nil, dec.formatError(err.Error())
		}
		vals[i] = float32(v)
	}
	return vals, nil
}

func (dec *objDecoder) parseVertex(fields []string) error {
	vals, err := dec.parseFloats(fields, 3)
	if err != nil {
		return err
	}
	dec.verts = append(dec.verts, math32.Vec3(vals[0], vals[1], vals[2]))
	if len(vals) >= 6 && len(dec.colors) == len(dec.verts)-1 {
		dec.colors = append(dec.colors, math32.Vec3(vals[3], vals[4], vals[5]))
	}
	return nil
}

func (dec *objDecoder) parseTex(fields []string) error {
	vals, err := dec.parseFloats(fields, 2)
	if err != nil {
		return err
	}
	dim := min(len(vals), 3)
	if dec.uvDim == 0 {
		dec.uvDim = dim
	} else if dim != dec.uvDim {
		return dec.formatError("inconsistent texture coordinate widths")
	}
	uv := math32.Vec3(vals[0], vals[1], 0)
	if dim == 3 {
		uv.Z = vals[2]
	}
	dec.uvs = append(dec.uvs, uv)
	return nil
}

// index resolves a 1-based or negative (relative) OBJ index
// into a 0-based index for a list of length n.
func (dec *objDecoder) index(s string, n int) (int, error) {
	val, err := strconv.Atoi(s)
	if err != nil {
		return 0, dec.formatError(err.Error())
	}
	ix := val - 1
	if val < 0 {
		ix = n + val
	}
	if val == 0 || ix < 0 || ix >= n {
		return 0, dec.formatError(fmt.Sprintf("index %d out of range for %d values", val, n))
	}
	return ix, nil
}

func (dec *objDecoder) parseFace(fields []string) error {
	if len(fields) < 3 {
		return dec.formatError("face line with less than 3 fields")
	}
	face := make([]objCorner, len(fields))
	for i, f := range fields {
		// v, v/vt, v//vn, v/vt/vn
		parts := strings.Split(f, "/")
		c := objCorner{t: -1, n: -1}
		var err error
		if c.v, err = dec.index(parts[0], len(dec.verts)); err != nil {
			return err
		}
		if len(parts) > 1 && parts[1] != "" {
			if c.t, err = dec.index(parts[1], len(dec.uvs)); err != nil {
				return err
			}
		}
		if len(parts) > 2 && parts[2] != "" {
			if c.n, err = dec.index(parts[2], len(dec.norms)); err != nil {
				return err
			}
		}
		face[i] = c
	}
	for i := 1; i+1 < len(face); i++ {
		dec.corners = append(dec.corners, face[0], face[i], face[i+1])
	}
	return nil
}

func (dec *objDecoder) construct() (*shape.Construct, error) {
	hasTex, hasNorm := true, true
	for _, c := range dec.corners {
		hasTex = hasTex && c.t >= 0
		hasNorm = hasNorm && c.n >= 0
	}
	hasColor := len(dec.colors) == len(dec.verts)

	var attr shape.Attributes
	attr.Positions = make([]math32.Vector3, len(dec.corners))
	if hasNorm {
		attr.Normals = make([]math32.Vector3, len(dec.corners))
	}
	if hasTex && dec.uvDim == 3 {
		attr.TexCoords3 = make([]math32.Vector3, len(dec.corners))
	} else if hasTex {
		attr.TexCoords2 = make([]math32.Vector2, len(dec.corners))
	}
	if hasColor {
		attr.Colors3 = make([]math32.Vector3, len(dec.corners))
	}
	for i, c := range dec.corners {
		attr.Positions[i] = dec.verts[c.v]
		if hasNorm {
			attr.Normals[i] = dec.norms[c.n]
		}
		switch {
		case attr.TexCoords3 != nil:
			attr.TexCoords3[i] = dec.uvs[c.t]
		case attr.TexCoords2 != nil:
			attr.TexCoords2[i] = math32.Vec2(dec.uvs[c.t].X, dec.uvs[c.t].Y)
		}
		if hasColor {
			attr.Colors3[i] = dec.colors[c.v]
		}
	}
	return shape.NewConstruct(shape.TriangleList, attr)
}
