// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package batch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"cogentcore.org/prims/meshio"
	"cogentcore.org/prims/shape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(fname, []byte(content), 0o644))
	return fname
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

const tomlConfig = `output = %q
workers = 2
format = "STL"

[[shapes]]
name = "globe"
kind = "geosphere"
radius = 1.5
level = 3
features = "normals|texcoords"

[[shapes]]
name = "egg"
kind = "ellipsoid"
radii = [1.0, 2.0, 3.0]
slices = 16
stacks = 8
topology = "TriangleList"
features = "colors"
alpha = true

[[shapes]]
name = "crate"
kind = "box"
size = [1.0, 2.0, 3.0]
box_segments = [2, 2, 1]
`

func TestLoadTOML(t *testing.T) {
	out := t.TempDir()
	cfg, err := Load(writeConfig(t, "shapes.toml", fmt.Sprintf(tomlConfig, out)))
	require.NoError(t, err)
	assert.Equal(t, out, cfg.Output)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, "stl", cfg.Format)
	require.Len(t, cfg.Shapes, 3)

	globe := cfg.Shapes[0]
	assert.Equal(t, "geosphere", globe.Kind)
	assert.Equal(t, float32(1.5), globe.Radius)
	assert.Equal(t, 3, globe.Level)
	assert.Equal(t, shape.Normals|shape.TexCoords, globe.Features)
	assert.Equal(t, shape.TopologyUnset, globe.Topology)

	egg := cfg.Shapes[1]
	assert.Equal(t, [3]float32{1, 2, 3}, egg.Radii)
	assert.Equal(t, shape.TriangleList, egg.Topology)
	assert.Equal(t, shape.Options{Topology: shape.TriangleList, Features: shape.Colors, ColorAlpha: true}, egg.Options())

	assert.Equal(t, [3]int32{2, 2, 1}, cfg.Shapes[2].BoxSegments)
	assert.Equal(t, filepath.Join(out, "crate.stl"), cfg.FileName(&cfg.Shapes[2]))
}

func TestLoadYAML(t *testing.T) {
	src := `workers: 3
shapes:
  - name: halo
    kind: ring
    inner: 0.5
    outer: 1
    segments: 24
    topology: IndexedTriangleStrip
    features: normals, texcoords
  - name: dome
    kind: skysphere
    radius: 100
    slices: 32
    stacks: 16
    features: TexCoords
    texdim: 3
`
	cfg, err := Load(writeConfig(t, "shapes.yml", src))
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.Output)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, "obj", cfg.Format)
	require.Len(t, cfg.Shapes, 2)
	assert.Equal(t, shape.IndexedTriangleStrip, cfg.Shapes[0].Topology)
	assert.Equal(t, shape.Normals|shape.TexCoords, cfg.Shapes[0].Features)
	assert.Equal(t, 24, cfg.Shapes[0].Segments)
	assert.Equal(t, 3, cfg.Shapes[1].TexDim)

	cs, err := Generate(&cfg.Shapes[1])
	require.NoError(t, err)
	assert.Equal(t, 3, cs.TexCoordDim())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "read")

	_, err = Load(writeConfig(t, "shapes.json", "{}"))
	assert.ErrorContains(t, err, "unsupported config format")

	_, err = Load(writeConfig(t, "shapes.toml", "workers = [\n"))
	assert.ErrorContains(t, err, "parse")

	_, err = Load(writeConfig(t, "shapes.toml", "[[shapes]]\nname = \"a\"\nkind = \"sphere\"\nfeatures = \"normals|wings\"\n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "shapes.toml", "format = \"ply\"\n"))
	assert.Error(t, err)

	src := `[[shapes]]
name = "a"
kind = "sphere"
[[shapes]]
name = "a"
kind = "teapot"
[[shapes]]
kind = "cube"
`
	_, err = Load(writeConfig(t, "shapes.toml", src))
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, `duplicate name "a"`)
	assert.Contains(t, msg, `unknown kind "teapot"`)
	assert.Contains(t, msg, "shape 2: name is empty")
}

func TestResolve(t *testing.T) {
	cfg := &Config{Output: "~/meshes", Format: ".OBJ"}
	require.NoError(t, cfg.Resolve())
	assert.False(t, strings.HasPrefix(cfg.Output, "~"))
	assert.True(t, strings.HasSuffix(cfg.Output, "meshes"))
	assert.Equal(t, runtime.NumCPU(), cfg.Workers)
	assert.Equal(t, "obj", cfg.Format)
}

func TestKinds(t *testing.T) {
	assert.Equal(t, []string{"box", "cube", "disk", "ellipsoid", "geoellipsoid", "geosphere", "ring", "skysphere", "sphere"}, Kinds())
}

func TestGenerate(t *testing.T) {
	shapes := []ShapeConfig{
		{Name: "e", Kind: "ellipsoid", Radii: [3]float32{1, 2, 3}, Slices: 8, Stacks: 4},
		{Name: "s", Kind: "sphere", Radius: 1, Slices: 8, Stacks: 4},
		{Name: "k", Kind: "skysphere", Radius: 10, Slices: 8, Stacks: 4},
		{Name: "g", Kind: "geoellipsoid", Radii: [3]float32{1, 2, 3}, Level: 2},
		{Name: "h", Kind: "geosphere", Radius: 1, Level: 1},
		{Name: "b", Kind: "box", Size: [3]float32{1, 2, 3}},
		{Name: "c", Kind: "cube", Size: [3]float32{2}},
		{Name: "d", Kind: "disk", Radius: 1, Segments: 8},
		{Name: "r", Kind: "ring", Inner: 0.5, Outer: 1, Segments: 8},
	}
	for _, sc := range shapes {
		cs, err := Generate(&sc)
		require.NoError(t, err, sc.Kind)
		assert.Positive(t, cs.NumTriangles(), sc.Kind)
	}

	_, err := Generate(&ShapeConfig{Name: "t", Kind: "teapot"})
	assert.ErrorContains(t, err, "unknown kind")
	_, err = Generate(&ShapeConfig{Name: "s", Kind: "sphere", Radius: 1, Slices: 2, Stacks: 4})
	assert.ErrorIs(t, err, shape.ErrInvalidParameter)
	assert.ErrorContains(t, err, "batch.Generate s")
}

func TestRun(t *testing.T) {
	cfg := &Config{
		Output:  filepath.Join(t.TempDir(), "out"),
		Workers: 2,
		Format:  "obj",
		Shapes: []ShapeConfig{
			{Name: "globe", Kind: "geosphere", Radius: 1, Level: 2, Features: shape.Normals},
			{Name: "bad", Kind: "sphere", Radius: 1, Slices: 2, Stacks: 4},
			{Name: "egg", Kind: "ellipsoid", Radii: [3]float32{1, 2, 3}, Slices: 12, Stacks: 6},
			{Name: "halo", Kind: "ring", Inner: 0.5, Outer: 1, Segments: 16},
		},
	}
	results, err := Run(context.Background(), cfg, discardLogger())
	assert.ErrorIs(t, err, shape.ErrInvalidParameter)
	require.Len(t, results, 4)

	for i, res := range results {
		assert.Equal(t, cfg.Shapes[i].Name, res.Name)
		if res.Name == "bad" {
			assert.ErrorIs(t, res.Err, shape.ErrInvalidParameter)
			assert.NoFileExists(t, res.File)
			continue
		}
		require.NoError(t, res.Err, res.Name)
		assert.Equal(t, filepath.Join(cfg.Output, res.Name+".obj"), res.File)
		cs, err := meshio.ReadFile(res.File)
		require.NoError(t, err, res.Name)
		assert.Equal(t, res.Triangles, cs.NumTriangles(), res.Name)
	}
	assert.Equal(t, 240, results[0].Vertices)
	assert.Equal(t, 32, results[3].Triangles)
}

func TestRunContinuesAfterFailure(t *testing.T) {
	cfg := &Config{
		Output:  t.TempDir(),
		Workers: 1,
		Format:  "stl",
		Shapes: []ShapeConfig{
			{Name: "bad", Kind: "disk", Radius: 1, Segments: 2},
			{Name: "a", Kind: "cube", Size: [3]float32{1}},
			{Name: "b", Kind: "cube", Size: [3]float32{2}},
		},
	}
	results, err := Run(context.Background(), cfg, discardLogger())
	assert.ErrorIs(t, err, shape.ErrInvalidParameter)
	require.Len(t, results, 3)
	assert.ErrorIs(t, results[0].Err, shape.ErrInvalidParameter)
	for _, res := range results[1:] {
		require.NoError(t, res.Err, res.Name)
		assert.FileExists(t, res.File)
		assert.Equal(t, 12, res.Triangles)
	}
}

func TestRunCanceled(t *testing.T) {
	cfg := &Config{
		Output:  t.TempDir(),
		Workers: 1,
		Format:  "stl",
		Shapes: []ShapeConfig{
			{Name: "a", Kind: "cube", Size: [3]float32{1}},
			{Name: "b", Kind: "cube", Size: [3]float32{2}},
		},
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := Run(ctx, cfg, discardLogger())
	assert.ErrorIs(t, err, context.Canceled)
	for _, res := range results {
		assert.ErrorIs(t, res.Err, context.Canceled)
		assert.NoFileExists(t, res.File)
	}
}

func TestRunOutputError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	_, err := Run(context.Background(), &Config{Output: filepath.Join(blocker, "sub"), Workers: 1, Format: "obj"}, discardLogger())
	assert.Error(t, err)
}
