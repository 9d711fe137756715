// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// watchLag is the time within which repeated change events
// of the config only regenerate once.
const watchLag = 100 * time.Millisecond

func (a *app) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch config.toml|config.yaml",
		Short: "Generate every shape of a config, and again whenever it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			path, err := filepath.Abs(args[0])
			if err != nil {
				return err
			}
			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return err
			}
			defer watcher.Close()
			// editors often save by renaming, so watch the directory
			if err := watcher.Add(filepath.Dir(path)); err != nil {
				return fmt.Errorf("watch %s: %w", path, err)
			}

			regen := func() {
				if err := a.generate(ctx, cmd.OutOrStdout(), path, nil); err != nil {
					a.logger.Error(err.Error())
				}
			}
			regen()
			a.logger.Info("watching config", "path", path)

			var timer <-chan time.Time
			for {
				select {
				case <-ctx.Done():
					return nil
				case event, ok := <-watcher.Events:
					if !ok {
						return nil
					}
					if filepath.Clean(event.Name) != path {
						continue
					}
					if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
						timer = time.After(watchLag)
					}
				case err, ok := <-watcher.Errors:
					if !ok {
						return nil
					}
					a.logger.Error(err.Error())
				case <-timer:
					timer = nil
					a.logger.Info("config changed, regenerating", "path", path)
					regen()
				}
			}
		},
	}
}
