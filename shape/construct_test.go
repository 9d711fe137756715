// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shape

import (
	"testing"

	"cogentcore.org/prims/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quad() []math32.Vector3 {
	return []math32.Vector3{
		math32.Vec3(0, 0, 0),
		math32.Vec3(1, 0, 0),
		math32.Vec3(0, 1, 0),
		math32.Vec3(1, 1, 0),
	}
}

func TestNewConstructInvariants(t *testing.T) {
	tri := quad()[:3]
	tests := []struct {
		name string
		top  Topology
		attr Attributes
	}{
		{"unset topology", TopologyUnset, Attributes{Positions: tri}},
		{"unknown topology", Topology(42), Attributes{Positions: tri}},
		{"no positions", TriangleList, Attributes{}},
		{"indexed without indices", IndexedTriangleList, Attributes{Positions: tri}},
		{"indexed strip without indices", IndexedTriangleStrip, Attributes{Positions: quad(), StripLengths: []int{4}}},
		{"strip without lengths", TriangleStrip, Attributes{Positions: quad()}},
		{"indexed strip without lengths", IndexedTriangleStrip, Attributes{Positions: quad(), Indices: []uint32{0, 1, 2, 3}}},
		{"index out of range", IndexedTriangleList, Attributes{Positions: tri, Indices: []uint32{0, 1, 3}}},
		{"indices on list", TriangleList, Attributes{Positions: tri, Indices: []uint32{0, 1, 2}}},
		{"strip lengths on list", TriangleList, Attributes{Positions: tri, StripLengths: []int{3}}},
		{"partial triangle", TriangleList, Attributes{Positions: quad()}},
		{"short strip", TriangleStrip, Attributes{Positions: quad(), StripLengths: []int{2, 2}}},
		{"strip sum", TriangleStrip, Attributes{Positions: quad(), StripLengths: []int{3}}},
		{"normals length", TriangleList, Attributes{Positions: tri, Normals: quad()}},
		{"tex coords length", TriangleList, Attributes{Positions: tri, TexCoords2: make([]math32.Vector2, 2)}},
		{"both tex coords", TriangleList, Attributes{Positions: tri, TexCoords2: make([]math32.Vector2, 3), TexCoords3: tri}},
		{"both colors", TriangleList, Attributes{Positions: tri, Colors3: tri, Colors4: make([]math32.Vector4, 3)}},
		{"colors length", TriangleList, Attributes{Positions: tri, Colors4: make([]math32.Vector4, 4)}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cs, err := NewConstruct(test.top, test.attr)
			assert.ErrorIs(t, err, ErrInvariantViolation)
			assert.Nil(t, cs)
		})
	}
}

func TestIndexedTriangleStrip(t *testing.T) {
	_, err := NewConstruct(IndexedTriangleStrip, Attributes{Positions: quad(), Indices: []uint32{0, 1, 2, 3}})
	assert.ErrorIs(t, err, ErrInvariantViolation)

	cs, err := NewConstruct(IndexedTriangleStrip, Attributes{
		Positions:    quad(),
		Indices:      []uint32{0, 1, 2, 3},
		StripLengths: []int{4},
	})
	require.NoError(t, err)
	assert.Equal(t, IndexedTriangleStrip, cs.Topology())
	assert.Equal(t, 4, cs.NumVertex())
	assert.Equal(t, 2, cs.NumTriangles())
	assert.Equal(t, []uint32{0, 1, 2, 2, 1, 3}, cs.TriangleIndices())
}

func TestConstructAccessors(t *testing.T) {
	pos := quad()
	cs, err := NewConstruct(TriangleStrip, Attributes{
		Positions:    pos,
		Normals:      []math32.Vector3{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}, {0, 0, 1}},
		TexCoords3:   pos,
		Colors4:      make([]math32.Vector4, 4),
		StripLengths: []int{4},
	})
	require.NoError(t, err)
	assert.Equal(t, pos, cs.Positions())
	assert.Len(t, cs.Normals(), 4)
	assert.Nil(t, cs.TexCoords2())
	assert.Equal(t, 3, cs.TexCoordDim())
	assert.True(t, cs.HasColor())
	assert.Nil(t, cs.Colors3())
	assert.Len(t, cs.Colors4(), 4)
	assert.Nil(t, cs.Indices())
	assert.Equal(t, []int{4}, cs.StripLengths())
	assert.Equal(t, math32.B3(0, 0, 0, 1, 1, 0), cs.BBox())
	assert.Equal(t, []uint32{0, 1, 2, 2, 1, 3}, cs.TriangleIndices())

	cs, err = NewConstruct(IndexedTriangleList, Attributes{Positions: pos, Indices: []uint32{0, 1, 2, 2, 1, 3}})
	require.NoError(t, err)
	assert.Equal(t, 2, cs.NumTriangles())
	assert.Equal(t, 0, cs.TexCoordDim())
	assert.False(t, cs.HasColor())
	assert.Equal(t, []uint32{0, 1, 2, 2, 1, 3}, cs.TriangleIndices())

	cs, err = NewConstruct(TriangleList, Attributes{Positions: pos[:3]})
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 1, 2}, cs.TriangleIndices())
}

func TestConstructOwnsArrays(t *testing.T) {
	pos := quad()[:3]
	idx := []uint32{0, 1, 2}
	norms := []math32.Vector3{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}}
	cs, err := NewConstruct(IndexedTriangleList, Attributes{Positions: pos, Normals: norms, Indices: idx})
	require.NoError(t, err)

	idx[2] = 99
	pos[1] = math32.Vec3(5, 5, 5)
	norms[0] = math32.Vec3(1, 0, 0)
	assert.Equal(t, []uint32{0, 1, 2}, cs.Indices())
	assert.Equal(t, math32.Vec3(1, 0, 0), cs.Positions()[1])
	assert.Equal(t, math32.Vec3(0, 0, 1), cs.Normals()[0])
	assert.Equal(t, math32.B3(0, 0, 0, 1, 1, 0), cs.BBox())
	for _, ix := range cs.TriangleIndices() {
		assert.Less(t, int(ix), cs.NumVertex())
	}

	sl := []int{4}
	cs, err = NewConstruct(TriangleStrip, Attributes{Positions: quad(), StripLengths: sl})
	require.NoError(t, err)
	sl[0] = 40
	assert.Equal(t, []int{4}, cs.StripLengths())
}

func TestGeneratedArraysNotShared(t *testing.T) {
	opts := Options{Features: TexCoords | Colors, TexCoordDim: 3}
	unit, err := EllipsoidPoints(6, 3)
	require.NoError(t, err)
	keep := append([]math32.Vector3(nil), unit...)
	cs, err := Assemble(unit, math32.Vector3Scalar(1), opts)
	require.NoError(t, err)
	unit[0] = math32.Vec3(9, 9, 9)
	assert.Equal(t, keep, cs.TexCoords3())
	assert.Equal(t, keep, cs.Colors3())

	box, err := Cube(1, opts)
	require.NoError(t, err)
	ell, err := Ellipsoid(1, 1, 1, 6, 3, opts)
	require.NoError(t, err)
	for _, c := range []*Construct{cs, box, ell} {
		require.NotEmpty(t, c.Colors3())
		assert.False(t, &c.TexCoords3()[0] == &c.Colors3()[0], "3D texture coordinates and colors share storage")
	}
}

func TestTopology(t *testing.T) {
	for _, tp := range TopologyValues() {
		var got Topology
		text, err := tp.MarshalText()
		require.NoError(t, err)
		require.NoError(t, got.UnmarshalText(text))
		assert.Equal(t, tp, got)
	}
	var tp Topology
	assert.NoError(t, tp.SetString("indexedtrianglestrip"))
	assert.Equal(t, IndexedTriangleStrip, tp)
	assert.True(t, tp.IsIndexed())
	assert.True(t, tp.IsStrip())
	assert.False(t, TriangleList.IsIndexed())
	assert.False(t, TriangleList.IsStrip())
	assert.Error(t, tp.SetString("Fan"))
	assert.Equal(t, "Topology(9)", Topology(9).String())
}

func TestFeatures(t *testing.T) {
	f := Normals | Colors
	assert.Equal(t, "Normals|Colors", f.String())
	assert.True(t, f.Has(Normals))
	assert.False(t, f.Has(Normals|TexCoords))

	f.SetFlag(true, TexCoords)
	assert.Equal(t, AllFeatures, f)
	f.SetFlag(false, Normals)
	assert.Equal(t, TexCoords|Colors, f)

	var g Features
	require.NoError(t, g.UnmarshalText([]byte("texcoords, Normals")))
	assert.Equal(t, Normals|TexCoords, g)
	require.NoError(t, g.SetString(""))
	assert.Equal(t, Features(0), g)
	assert.Error(t, g.SetString("Normals|Tangents"))

	text, err := (Normals | TexCoords).MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "Normals|TexCoords", string(text))
}

func TestOptionsResolve(t *testing.T) {
	o, err := Options{}.resolve("Test", IndexedTriangleList, TriangleList)
	require.NoError(t, err)
	assert.Equal(t, IndexedTriangleList, o.Topology)

	o, err = Options{Features: TexCoords}.resolve("Test", TriangleList)
	require.NoError(t, err)
	assert.Equal(t, 2, o.TexCoordDim)

	_, err = Options{Features: TexCoords, TexCoordDim: 4}.resolve("Test", TriangleList)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Options{Topology: TriangleStrip}.resolve("Test", TriangleList)
	assert.ErrorIs(t, err, ErrUnsupportedTopology)
}
