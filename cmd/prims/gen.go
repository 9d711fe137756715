// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"cogentcore.org/prims/batch"
	"github.com/spf13/cobra"
)

func (a *app) genCmd() *cobra.Command {
	var output, format string
	var workers int
	cmd := &cobra.Command{
		Use:   "gen config.toml|config.yaml",
		Short: "Generate every shape of a config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.generate(cmd.Context(), cmd.OutOrStdout(), args[0], func(cfg *batch.Config) {
				if output != "" {
					cfg.Output = output
				}
				if format != "" {
					cfg.Format = format
				}
				if workers > 0 {
					cfg.Workers = workers
				}
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output directory, overriding the config")
	cmd.Flags().StringVarP(&format, "format", "f", "", "mesh file format (obj or stl), overriding the config")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "number of shapes generated at once, overriding the config")
	return cmd
}

// generate loads the config, applies the flag overrides and generates
// all of its shapes, printing a summary to w.
func (a *app) generate(ctx context.Context, w io.Writer, path string, override func(cfg *batch.Config)) error {
	cfg, err := batch.Load(path)
	if err != nil {
		return err
	}
	if override != nil {
		override(cfg)
		if err := cfg.Resolve(); err != nil {
			return err
		}
	}
	results, err := batch.Run(ctx, cfg, a.logger)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, "SHAPE\tVERTICES\tTRIANGLES\tFILE")
	for _, res := range results {
		if res.Err != nil {
			_, _ = fmt.Fprintf(tw, "%s\t-\t-\t%v\n", res.Name, res.Err)
			continue
		}
		_, _ = fmt.Fprintf(tw, "%s\t%d\t%d\t%s\n", res.Name, res.Vertices, res.Triangles, res.File)
	}
	_ = tw.Flush()
	return err
}
