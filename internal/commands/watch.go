package commands

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"

	"github.com/xbind-dev/xbind/internal/config"
)

// watch re-runs generation whenever the AST file changes. Each run gets its
// own session and manifest, so collisions never leak between runs.
func (c *Controller) watch(ctx context.Context, cfg *config.Config, astPath string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory rather than the file: editors often replace the
	// file on save, which drops a direct file watch.
	if err := watcher.Add(filepath.Dir(astPath)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(astPath), err)
	}

	log.Info().Str("ast", astPath).Msg("watching for changes")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return fmt.Errorf("watcher channel closed")
			}
			if filepath.Clean(event.Name) != filepath.Clean(astPath) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}

			log.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("change detected")
			if err := c.runOnce(cfg, astPath); err != nil {
				log.Error().Err(err).Msg("generation failed")
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher error channel closed")
			}
			if err != nil {
				log.Error().Err(err).Msg("watcher error")
			}
		}
	}
}
