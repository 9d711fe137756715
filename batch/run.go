// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package batch generates a configured set of shapes in parallel
// and writes each one to a mesh file.
package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"cogentcore.org/prims/meshio"
	"golang.org/x/sync/errgroup"
)

// Result is the outcome of generating one shape.
type Result struct {
	Name      string
	File      string
	Vertices  int
	Triangles int
	Err       error
}

// Run generates every shape of the config, at most cfg.Workers at once,
// and writes each to its file in cfg.Output, which is created if needed.
// A failed shape does not stop the others: the results are in config order,
// and the returned error joins the errors of all failed shapes.
// Run stops starting new shapes once ctx is done.
func Run(ctx context.Context, cfg *Config, logger *slog.Logger) ([]Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(cfg.Output, 0o755); err != nil {
		return nil, logErr(logger, fmt.Errorf("batch.Run: %w", err))
	}

	start := time.Now()
	results := make([]Result, len(cfg.Shapes))
	// g only bounds the number of shapes in flight; each shape keeps its
	// error in its Result, so one failure does not cancel the others.
	var g errgroup.Group
	g.SetLimit(max(cfg.Workers, 1))
	for i := range cfg.Shapes {
		sc := &cfg.Shapes[i]
		res := &results[i]
		res.Name = sc.Name
		res.File = cfg.FileName(sc)
		if ctx.Err() != nil {
			res.Err = ctx.Err()
			continue
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				res.Err = err
				return nil
			}
			cs, err := Generate(sc)
			if err == nil {
				res.Vertices, res.Triangles = cs.NumVertex(), cs.NumTriangles()
				err = meshio.WriteFile(res.File, sc.Name, cs)
			}
			if err != nil {
				res.Err = logErr(logger, err, "shape", sc.Name)
				return nil
			}
			logger.Debug("wrote shape", "shape", sc.Name, "file", res.File, "vertices", res.Vertices, "triangles", res.Triangles)
			return nil
		})
	}
	_ = g.Wait()

	var errs []error
	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, res.Err)
		}
	}
	logger.Info("generated shapes", "ok", len(results)-len(errs), "failed", len(errs), "output", cfg.Output, "elapsed", time.Since(start))
	return results, errors.Join(errs...)
}

// logErr logs the given error, if it is non-nil, and returns it.
func logErr(logger *slog.Logger, err error, args ...any) error {
	if err != nil {
		logger.Error(err.Error(), args...)
	}
	return err
}
