package replay

import (
	"context"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/bft-labs/uireplay/pkg/codec"
	"github.com/bft-labs/uireplay/pkg/log"
)

// Watcher follows a recordings directory and tracks new recording files as
// they appear, so hosts can offer the freshest replay candidate without
// polling. Temporary ".tmp" files from in-flight saves are ignored; only
// the rename that completes a save counts.
type Watcher struct {
	dir    string
	prefix string
	log    log.Logger

	// onRecording, when set, is called from the watch goroutine for each
	// completed recording.
	onRecording func(path string)

	mu     sync.Mutex
	latest string

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWatcher creates a watcher for recordings in dir with the given file
// prefix. onRecording may be nil.
func NewWatcher(dir, prefix string, logger log.Logger, onRecording func(path string)) *Watcher {
	if logger == nil {
		logger = log.Noop{}
	}
	return &Watcher{
		dir:         dir,
		prefix:      prefix,
		log:         logger,
		onRecording: onRecording,
	}
}

// Start begins watching. The initial latest candidate is seeded from the
// directory's current contents. Watching stops when ctx is cancelled or
// Close is called.
func (w *Watcher) Start(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fsw.Add(w.dir); err != nil {
		fsw.Close()
		return err
	}

	if path, ok := codec.Discover(w.dir, w.prefix); ok {
		w.setLatest(path)
	}

	watchCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.wg.Add(1)
	go w.watchLoop(watchCtx, fsw)
	return nil
}

// Close stops the watch goroutine and waits for it to finish.
func (w *Watcher) Close() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}

// Latest returns the most recently completed recording, falling back to the
// deterministic directory pick before anything new has appeared.
func (w *Watcher) Latest() (string, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.latest, w.latest != ""
}

func (w *Watcher) setLatest(path string) {
	w.mu.Lock()
	w.latest = path
	w.mu.Unlock()
}

func (w *Watcher) watchLoop(ctx context.Context, fsw *fsnotify.Watcher) {
	defer w.wg.Done()
	defer fsw.Close()

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-fsw.Events:
			if !ok {
				return
			}
			if !w.isRecording(event.Name) {
				continue
			}
			// Saves write a .tmp file and rename it into place; the final
			// name shows up as a create.
			if event.Op&fsnotify.Create == 0 {
				continue
			}
			w.log.Debug("new recording", log.String("path", event.Name))
			w.setLatest(event.Name)
			if w.onRecording != nil {
				w.onRecording(event.Name)
			}

		case err, ok := <-fsw.Errors:
			if !ok {
				return
			}
			w.log.Error("recording watcher error", log.Err(err))
		}
	}
}

// isRecording reports whether path names a completed recording file.
func (w *Watcher) isRecording(path string) bool {
	name := filepath.Base(path)
	return strings.HasPrefix(name, w.prefix) && !strings.HasSuffix(name, ".tmp")
}
