package config

import (
	"context"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// Watch calls onChange with a freshly loaded Config each time the file at
// path is written. A reload that fails is logged and skipped, leaving the
// previous config in effect. Watch returns when ctx is cancelled.
func Watch(ctx context.Context, path string, onChange func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return err
	}
	logrus.WithField("path", path).Info("config: watching for changes")

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Atomic saves arrive as Create.
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			cfg, err := Load(path)
			if err != nil {
				logrus.WithError(err).WithField("path", path).Error("config: reload failed, keeping previous config")
				continue
			}
			logrus.WithField("path", path).Info("config: reloaded")
			onChange(cfg)

			_ = watcher.Add(path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logrus.WithError(err).Error("config: watcher error")
		}
	}
}
