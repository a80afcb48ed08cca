package wmconfig

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

// reloadDebounce absorbs the write-then-rename pair that editors and
// Store.Write itself produce, so a single save only triggers one reload.
const reloadDebounce = 250 * time.Millisecond

// Watch watches the store's backing file for external changes (a user
// hand-editing the config file while the driver is running) and calls
// Load, forwarding any per-key parse error to log, whenever the file
// changes. It runs until stop is closed.
//
// Changes made through SetString/SetVector/Write by the control socket
// itself also fire this watcher; Load is idempotent so this just
// reparses the same values it wrote.
func (s *Store) Watch(stop <-chan struct{}, log zerolog.Logger) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return err
	}

	go func() {
		defer watcher.Close()
		var timer *time.Timer
		reload := func() {
			s.Load(func(err error) {
				log.Warn().Err(err).Msg("config: dropping malformed entry on reload")
			})
			log.Info().Str("path", s.path).Msg("config: reloaded")
		}

		for {
			select {
			case <-stop:
				return
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != filepath.Clean(s.path) {
					continue
				}
				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(reloadDebounce, reload)
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Warn().Err(err).Msg("config: watcher error")
			}
		}
	}()

	return nil
}
