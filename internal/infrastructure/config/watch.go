package config

import (
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

// Watcher re-loads the engine config whenever engine.toml changes on disk
// and hands the result to a callback. The callback runs on the watcher
// goroutine; hand the new config to the main loop yourself.
type Watcher struct {
	dir      string
	fsnotify *fsnotify.Watcher
	onChange func(*EngineConfig)
	logger   *log.Logger
	done     chan struct{}
}

// Watch starts watching the directory containing engine.toml.
func Watch(dir string, onChange func(*EngineConfig), logger *log.Logger) (*Watcher, error) {
	if logger == nil {
		logger = log.Default()
	}
	fsWatch, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsWatch.Add(dir); err != nil {
		_ = fsWatch.Close()
		return nil, err
	}

	w := &Watcher{
		dir:      dir,
		fsnotify: fsWatch,
		onChange: onChange,
		logger:   logger.With("component", "config-watcher"),
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsnotify.Close()
}

func (w *Watcher) run() {
	loader := NewLoader(w.dir)
	for {
		select {
		case <-w.done:
			return
		case e, ok := <-w.fsnotify.Events:
			if !ok {
				return
			}
			if e.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if filepath.Base(e.Name) != "engine.toml" {
				continue
			}
			cfg, err := loader.LoadEngine()
			if err != nil {
				w.logger.Warn("config reload failed", "err", err)
				continue
			}
			w.logger.Info("config reloaded", "path", e.Name)
			w.onChange(cfg)
		case err, ok := <-w.fsnotify.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", "err", err)
		}
	}
}
