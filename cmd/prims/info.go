// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"cogentcore.org/prims/batch"
	"cogentcore.org/prims/meshio"
	"cogentcore.org/prims/shape"
	"github.com/spf13/cobra"
)

func (a *app) infoCmd() *cobra.Command {
	sc := batch.ShapeConfig{}
	var features, topology, write string
	var radii, size, boxSegs string
	cmd := &cobra.Command{
		Use:       "info kind",
		Short:     "Generate one shape and describe its mesh",
		Long:      "Generate one shape and describe its mesh. The kind is one of: " + strings.Join(batch.Kinds(), ", ") + ".",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: batch.Kinds(),
		RunE: func(cmd *cobra.Command, args []string) error {
			sc.Kind = args[0]
			sc.Name = args[0]
			if err := sc.Features.SetString(features); err != nil {
				return err
			}
			if topology != "" {
				if err := sc.Topology.SetString(topology); err != nil {
					return err
				}
			}
			if err := parseTriple(radii, sc.Radii[:]); err != nil {
				return fmt.Errorf("--radii: %w", err)
			}
			if err := parseTriple(size, sc.Size[:]); err != nil {
				return fmt.Errorf("--size: %w", err)
			}
			if err := parseCounts(boxSegs, sc.BoxSegments[:]); err != nil {
				return fmt.Errorf("--box-segments: %w", err)
			}
			cs, err := batch.Generate(&sc)
			if err != nil {
				return err
			}
			printInfo(cmd.OutOrStdout(), cs)
			if write != "" {
				if err := meshio.WriteFile(write, sc.Name, cs); err != nil {
					return err
				}
				a.logger.Info("wrote shape", "shape", sc.Name, "file", write)
			}
			return nil
		},
	}
	fs := cmd.Flags()
	fs.Float32VarP(&sc.Radius, "radius", "r", 1, "radius of sphere, skysphere, geosphere and disk")
	fs.StringVar(&radii, "radii", "1,1,1", "x,y,z radii of ellipsoid and geoellipsoid")
	fs.StringVar(&size, "size", "1,1,1", "width,height,depth of box; cube uses the first")
	fs.Float32Var(&sc.Inner, "inner", 0.5, "inner radius of ring")
	fs.Float32Var(&sc.Outer, "outer", 1, "outer radius of ring")
	fs.IntVar(&sc.Slices, "slices", 32, "slices of ellipsoid, sphere and skysphere")
	fs.IntVar(&sc.Stacks, "stacks", 16, "stacks of ellipsoid, sphere and skysphere")
	fs.IntVar(&sc.Level, "level", 4, "subdivision level of geoellipsoid and geosphere")
	fs.IntVar(&sc.Segments, "segments", 32, "rim segments of disk and ring")
	fs.StringVar(&boxSegs, "box-segments", "1,1,1", "x,y,z segments of box")
	fs.StringVar(&features, "features", "", "vertex attributes to generate, such as normals|texcoords|colors")
	fs.StringVar(&topology, "topology", "", "primitive topology, one of TriangleList, TriangleStrip, IndexedTriangleList, IndexedTriangleStrip")
	fs.BoolVar(&sc.Alpha, "alpha", false, "generate RGBA instead of RGB colors")
	fs.IntVar(&sc.TexDim, "texdim", 2, "texture coordinate width, 2 or 3")
	fs.StringVar(&write, "write", "", "also write the mesh to this file, in the format of its extension ("+strings.Join(meshio.Formats(), ", ")+")")
	return cmd
}

// parseTriple parses up to len(dst) comma separated numbers into dst.
func parseTriple(s string, dst []float32) error {
	fields := strings.Split(s, ",")
	if len(fields) > len(dst) {
		return fmt.Errorf("%q has more than %d values", s, len(dst))
	}
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 32)
		if err != nil {
			return err
		}
		dst[i] = float32(v)
	}
	return nil
}

// parseCounts parses up to len(dst) comma separated integers into dst.
func parseCounts(s string, dst []int32) error {
	fields := strings.Split(s, ",")
	if len(fields) > len(dst) {
		return fmt.Errorf("%q has more than %d values", s, len(dst))
	}
	for i, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 32)
		if err != nil {
			return err
		}
		dst[i] = int32(v)
	}
	return nil
}

// printInfo writes a description of the mesh to w.
func printInfo(w io.Writer, cs *shape.Construct) {
	bb := cs.BBox()
	var attrs []string
	if len(cs.Normals()) > 0 {
		attrs = append(attrs, "normals")
	}
	if dim := cs.TexCoordDim(); dim > 0 {
		attrs = append(attrs, fmt.Sprintf("texcoords%d", dim))
	}
	switch {
	case len(cs.Colors3()) > 0:
		attrs = append(attrs, "rgb")
	case len(cs.Colors4()) > 0:
		attrs = append(attrs, "rgba")
	}
	_, _ = fmt.Fprintf(w, "topology:   %v\n", cs.Topology())
	_, _ = fmt.Fprintf(w, "vertices:   %d\n", cs.NumVertex())
	if n := len(cs.Indices()); n > 0 {
		_, _ = fmt.Fprintf(w, "indices:    %d\n", n)
	}
	if sl := cs.StripLengths(); len(sl) > 0 {
		_, _ = fmt.Fprintf(w, "strips:     %v\n", sl)
	}
	_, _ = fmt.Fprintf(w, "triangles:  %d\n", cs.NumTriangles())
	_, _ = fmt.Fprintf(w, "attributes: %s\n", strings.Join(attrs, " "))
	_, _ = fmt.Fprintf(w, "bbox:       %v - %v (size %v)\n", bb.Min, bb.Max, bb.Size())
	_, _ = fmt.Fprintf(w, "center:     %v\n", bb.Center())
}
