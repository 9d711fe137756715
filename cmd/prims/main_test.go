// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, ctx context.Context, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(ctx)
	return out.String(), err
}

func TestInfo(t *testing.T) {
	out, err := execute(t, context.Background(), "info", "geosphere", "--level", "2", "--features", "normals|colors")
	require.NoError(t, err)
	assert.Contains(t, out, "topology:   TriangleList")
	assert.Contains(t, out, "vertices:   240")
	assert.Contains(t, out, "triangles:  80")
	assert.Contains(t, out, "attributes: normals rgb")

	out, err = execute(t, context.Background(), "info", "box", "--size", "1,2,3", "--box-segments", "2,3,1")
	require.NoError(t, err)
	assert.Contains(t, out, "topology:   IndexedTriangleList")
	assert.Contains(t, out, "vertices:   52")
	assert.Contains(t, out, "indices:    132")
	assert.Contains(t, out, "bbox:       (-0.5, -1, -1.5) - (0.5, 1, 1.5) (size (1, 2, 3))")
	assert.Contains(t, out, "center:     (0, 0, 0)")

	fname := filepath.Join(t.TempDir(), "halo.stl")
	out, err = execute(t, context.Background(), "info", "ring", "--segments", "8", "--topology", "trianglestrip", "--write", fname)
	require.NoError(t, err)
	assert.Contains(t, out, "strips:     [18]")
	assert.FileExists(t, fname)

	_, err = execute(t, context.Background(), "info", "teapot")
	assert.Error(t, err)
	_, err = execute(t, context.Background(), "info", "sphere", "--slices", "2")
	assert.Error(t, err)
	_, err = execute(t, context.Background(), "info", "sphere", "--features", "wings")
	assert.Error(t, err)
	_, err = execute(t, context.Background(), "info", "ellipsoid", "--radii", "1,2,3,4")
	assert.Error(t, err)
	_, err = execute(t, context.Background(), "info", "box", "--box-segments", "1.5,1,1")
	assert.ErrorContains(t, err, "--box-segments")
	_, err = execute(t, context.Background(), "info", "box", "--box-segments", "1,1,1,1")
	assert.Error(t, err)
}

func TestParseCounts(t *testing.T) {
	var segs [3]int32
	require.NoError(t, parseCounts("2, 3,4", segs[:]))
	assert.Equal(t, [3]int32{2, 3, 4}, segs)
	require.NoError(t, parseCounts("7", segs[:]))
	assert.Equal(t, [3]int32{7, 3, 4}, segs)
	assert.Error(t, parseCounts("2.9", segs[:]))
	assert.Error(t, parseCounts("1e9", segs[:]))
	assert.Error(t, parseCounts("4294967297", segs[:]))
}

func TestGen(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "meshes")
	cfg := filepath.Join(dir, "shapes.toml")
	src := `[[shapes]]
name = "ball"
kind = "sphere"
radius = 2.0
slices = 8
stacks = 4

[[shapes]]
name = "plate"
kind = "disk"
radius = 1.0
segments = 12
`
	require.NoError(t, os.WriteFile(cfg, []byte(src), 0o644))

	stdout, err := execute(t, context.Background(), "gen", cfg, "--output", out, "--format", "stl", "-w", "1")
	require.NoError(t, err)
	assert.Contains(t, stdout, "SHAPE")
	assert.Contains(t, stdout, "ball")
	assert.FileExists(t, filepath.Join(out, "ball.stl"))
	assert.FileExists(t, filepath.Join(out, "plate.stl"))

	_, err = execute(t, context.Background(), "gen", filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
	_, err = execute(t, context.Background(), "gen")
	assert.Error(t, err)
}

func TestWatch(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "shapes.yaml")
	write := func(name string) {
		src := fmt.Sprintf("output: %s\nshapes:\n  - name: %s\n    kind: cube\n    size: [1, 1, 1]\n", dir, name)
		require.NoError(t, os.WriteFile(cfg, []byte(src), 0o644))
	}
	write("first")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := execute(t, ctx, "watch", cfg)
		done <- err
	}()
	require.Eventually(t, func() bool {
		_, err := os.Stat(filepath.Join(dir, "first.obj"))
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)

	// the watcher is added before the first generation
	write("second")
	assert.Eventually(t, func() bool {
		_, err := os.Stat(filepath.Join(dir, "second.obj"))
		return err == nil
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop")
	}
}
