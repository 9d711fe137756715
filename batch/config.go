// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package batch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"cogentcore.org/prims/meshio"
	"cogentcore.org/prims/shape"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is a set of shapes to generate and where to write them.
type Config struct {
	// Output is the directory the mesh files are written to,
	// which may start with ~ for the home directory.
	// It defaults to the current directory.
	Output string `toml:"output" yaml:"output"`

	// Workers is the maximum number of shapes generated at once.
	// It defaults to the number of CPUs.
	Workers int `toml:"workers" yaml:"workers"`

	// Format is the mesh file format, as a file extension such as obj or stl.
	// It defaults to obj.
	Format string `toml:"format" yaml:"format"`

	// Shapes are the shapes to generate.
	Shapes []ShapeConfig `toml:"shapes" yaml:"shapes"`
}

// ShapeConfig is one shape to generate. Which of the size and count
// fields apply depends on the Kind.
type ShapeConfig struct {
	// Name is the object name, and the base name of the output file.
	Name string `toml:"name" yaml:"name"`

	// Kind is one of [Kinds].
	Kind string `toml:"kind" yaml:"kind"`

	// Radius is the radius of sphere, skysphere, geosphere and disk.
	Radius float32 `toml:"radius" yaml:"radius"`

	// Radii are the x, y, z radii of ellipsoid and geoellipsoid.
	Radii [3]float32 `toml:"radii" yaml:"radii"`

	// Size is the width, height, depth of box; cube uses the first value.
	Size [3]float32 `toml:"size" yaml:"size"`

	// Inner and Outer are the radii of ring.
	Inner float32 `toml:"inner" yaml:"inner"`
	Outer float32 `toml:"outer" yaml:"outer"`

	// Slices and Stacks are the tessellation counts of the stacks
	// and slices shapes: ellipsoid, sphere and skysphere.
	Slices int `toml:"slices" yaml:"slices"`
	Stacks int `toml:"stacks" yaml:"stacks"`

	// Level is the subdivision level of geoellipsoid and geosphere.
	Level int `toml:"level" yaml:"level"`

	// Segments is the number of rim segments of disk and ring.
	Segments int `toml:"segments" yaml:"segments"`

	// BoxSegments is the number of segments along each axis of box.
	// Zero values are treated as 1.
	BoxSegments [3]int32 `toml:"box_segments" yaml:"box_segments"`

	// Features are the vertex attributes to generate, such as "normals|texcoords".
	Features shape.Features `toml:"features" yaml:"features"`

	// Topology is the primitive topology, or the shape's default if unset.
	Topology shape.Topology `toml:"topology" yaml:"topology"`

	// Alpha generates RGBA instead of RGB colors.
	Alpha bool `toml:"alpha" yaml:"alpha"`

	// TexDim is the texture coordinate width, 2 (default) or 3.
	TexDim int `toml:"texdim" yaml:"texdim"`
}

// Options returns the generator options of the shape.
func (sc *ShapeConfig) Options() shape.Options {
	return shape.Options{
		Topology:    sc.Topology,
		Features:    sc.Features,
		ColorAlpha:  sc.Alpha,
		TexCoordDim: sc.TexDim,
	}
}

// Load reads a TOML (.toml) or YAML (.yaml, .yml) config file,
// fills in defaults and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("batch: read %s: %w", path, err)
	}
	cfg := &Config{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("batch: %s: unsupported config format %q", path, filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("batch: parse %s: %w", path, err)
	}
	if err := cfg.Resolve(); err != nil {
		return nil, fmt.Errorf("batch: %s: %w", path, err)
	}
	return cfg, nil
}

// Resolve fills in the defaults of empty fields, expands the output
// directory, and checks that every shape has a unique name and a known kind.
func (cfg *Config) Resolve() error {
	if cfg.Output == "" {
		cfg.Output = "."
	}
	out, err := homedir.Expand(cfg.Output)
	if err != nil {
		return err
	}
	cfg.Output = out
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Format == "" {
		cfg.Format = "obj"
	}
	cfg.Format = strings.TrimPrefix(strings.ToLower(cfg.Format), ".")
	if _, err := meshio.EncoderFor(cfg.Format); err != nil {
		return err
	}

	var errs []error
	names := map[string]bool{}
	for i, sc := range cfg.Shapes {
		switch {
		case sc.Name == "":
			errs = append(errs, fmt.Errorf("shape %d: name is empty", i))
		case names[sc.Name]:
			errs = append(errs, fmt.Errorf("shape %d: duplicate name %q", i, sc.Name))
		}
		names[sc.Name] = true
		if _, has := generators[sc.Kind]; !has {
			errs = append(errs, fmt.Errorf("shape %q: unknown kind %q, must be one of %v", sc.Name, sc.Kind, Kinds()))
		}
	}
	return errors.Join(errs...)
}

// FileName returns the output file path of the given shape.
func (cfg *Config) FileName(sc *ShapeConfig) string {
	return filepath.Join(cfg.Output, sc.Name+"."+cfg.Format)
}
