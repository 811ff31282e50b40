package picker

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"

	"fortio.org/log"
	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
)

// Watcher reloads the state file whenever something else writes it.
type Watcher struct {
	w      *fsnotify.Watcher
	target string
	stop   chan struct{}
	wg     sync.WaitGroup

	mu      sync.Mutex
	written []byte
}

// WatchState calls onChange with the reloaded state after each write to
// statePath that did not come from Save. The parent directory is watched
// so editors that replace the file by rename are picked up too. onChange
// runs on the watcher's goroutine.
func WatchState(statePath string, onChange func(State)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "create watcher")
	}
	target := filepath.Clean(statePath)
	if err := fw.Add(filepath.Dir(target)); err != nil {
		fw.Close()
		return nil, errors.Wrapf(err, "watch %s", filepath.Dir(target))
	}

	w := &Watcher{w: fw, target: target, stop: make(chan struct{})}
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for {
			select {
			case <-w.stop:
				log.Infof("Stopping state watcher on %s", target)
				return

			case event, ok := <-fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != target {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if s, ok := w.reload(); ok {
					onChange(s)
				}

			case err, ok := <-fw.Errors:
				if !ok {
					return
				}
				log.Warnf("state watcher error: %v", err)
			}
		}
	}()
	return w, nil
}

// reload reads the target and reports whether it holds a state worth
// applying. Our own writes and the empty file left by an editor's
// truncate are skipped.
func (w *Watcher) reload() (State, bool) {
	b, err := os.ReadFile(w.target)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warnf("state watcher: %v", err)
		}
		return State{}, false
	}
	if len(b) == 0 {
		return State{}, false
	}
	w.mu.Lock()
	own := bytes.Equal(b, w.written)
	w.mu.Unlock()
	if own {
		return State{}, false
	}
	s, err := decodeState(w.target, b)
	if err != nil {
		log.Warnf("state watcher: %v", err)
		return State{}, false
	}
	return s, true
}

// Save writes s to the watched file without it coming back through
// onChange.
func (w *Watcher) Save(s State) error {
	b, err := encodeState(s)
	if err != nil {
		return err
	}
	w.mu.Lock()
	w.written = b
	w.mu.Unlock()
	return writeState(w.target, b)
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	close(w.stop)
	err := w.w.Close()
	w.wg.Wait()
	return err
}
