package config

import (
	"context"
	"fmt"
	"path/filepath"

	"griddle/internal/logging"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watch reloads path whenever it is written and passes each valid config to
// onChange. Invalid files are logged and skipped. It blocks until ctx is done.
//
// The parent directory is watched rather than the file so editors that
// replace the file on save are still seen.
func Watch(ctx context.Context, path string, logger *zap.Logger, onChange func(Config)) error {
	logger = logging.OrNop(logger)
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	defer w.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			cfg, err := Load(abs)
			if err != nil {
				logger.Warn("config reload failed", zap.String("path", abs), zap.Error(err))
				continue
			}
			logger.Debug("config reloaded", zap.String("path", abs), zap.Int("items", len(cfg.Items)))
			onChange(cfg)
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("config watcher error", zap.Error(err))
		}
	}
}
