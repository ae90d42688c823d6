package settings

import (
	_ "embed"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"
)

//go:embed sample_settings.yaml
var sampleSettings []byte

// debounceDelay is how long the store waits after the last filesystem
// event before it announces a change. Editors typically save with several
// writes (truncate, write, touch); one debounced event covers them all.
var debounceDelay = 300 * time.Millisecond

// Store keeps the settings file and its in-memory snapshot in sync.
//
// Reads never touch the disk unless an edit invalidated the snapshot; in
// that case the next reader pays for one synchronous reload. There is no
// background reload goroutine. A reload that fails to parse keeps the
// previous snapshot authoritative (stale reads beat blank reads), except
// on the very first load where there is nothing to fall back to.
type Store struct {
	path string

	mu       sync.Mutex
	invalid  bool
	doc      any      // raw yaml document, for path-based access
	settings Settings // typed snapshot of the same bytes

	watcher  *fsnotify.Watcher
	debounce *time.Timer
	done     chan struct{}

	nextSub int
	subs    map[int]func()
}

// Open loads the settings file at path (or the per-user DefaultPath when
// path is empty) and starts watching it. A missing file is first created
// from the bundled sample so there is always something to edit.
func Open(path string) (*Store, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, fmt.Errorf("cannot create settings dir: %w", err)
		}
		if err := os.WriteFile(path, sampleSettings, 0644); err != nil {
			return nil, fmt.Errorf("cannot create sample settings: %w", err)
		}
		log.Printf("created sample settings in %s", path)
	}

	s := &Store{
		path: path,
		done: make(chan struct{}),
		subs: make(map[int]func()),
	}
	if err := s.reload(); err != nil {
		// first load, there is no previous snapshot to keep showing.
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("cannot watch settings file: %w", err)
	}
	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("cannot watch settings file: %w", err)
	}
	s.watcher = watcher
	go s.watch()
	return s, nil
}

// Path returns the backing file location.
func (s *Store) Path() string { return s.path }

// Close stops the file watcher. Reads keep working on the last snapshot.
func (s *Store) Close() error {
	close(s.done)
	return s.watcher.Close()
}

// reload parses the whole file into a fresh snapshot. Callers hold no lock
// or the store lock; reload itself only touches local state and assigns at
// the end, under the caller's locking discipline.
func (s *Store) reload() error {
	content, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("cannot read settings %q: %w", s.path, err)
	}
	var doc any
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return fmt.Errorf("malformed settings %q: %w", s.path, err)
	}
	var settings Settings
	if err := yaml.Unmarshal(content, &settings); err != nil {
		return fmt.Errorf("malformed settings %q: %w", s.path, err)
	}
	s.doc = doc
	s.settings = settings
	s.invalid = false
	return nil
}

// revalidate reloads if an edit invalidated the snapshot. On failure the
// previous snapshot stays in place and the error is only logged: the file
// is mid-edit more often than it is genuinely broken.
func (s *Store) revalidate() {
	if !s.invalid {
		return
	}
	if err := s.reload(); err != nil {
		log.Printf("settings reload failed, keeping previous snapshot: %v", err)
		s.invalid = false
	}
}

// Settings returns the current typed snapshot, reloading first if the file
// changed since the last read.
func (s *Store) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revalidate()
	return s.settings
}

// Get reads one value out of the snapshot by dotted/indexed path, e.g.
// "percentageLimit.coin" or "transactions[0].coin".
func (s *Store) Get(path string) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revalidate()
	v, err := jsonpath.Get("$."+path, s.doc)
	if err != nil {
		return nil, fmt.Errorf("cannot read setting %q: %w", path, err)
	}
	return v, nil
}

// OnChange registers fn to run after each debounced settings change. It
// returns the cancel function removing the registration.
func (s *Store) OnChange(fn func()) (cancel func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// watch consumes filesystem events for the backing file. Every relevant
// event marks the snapshot invalid and re-arms the debounce timer; only
// when the timer survives its full delay does the store emit one change.
func (s *Store) watch() {
	for {
		select {
		case <-s.done:
			return
		case ev, ok := <-s.watcher.Events:
			if !ok {
				return
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}
			// editors that save by rename drop the watch on the old inode.
			if ev.Op&(fsnotify.Rename|fsnotify.Remove) != 0 {
				s.watcher.Add(s.path)
			}
			s.mu.Lock()
			s.invalid = true
			if s.debounce == nil {
				s.debounce = time.AfterFunc(debounceDelay, s.emitChanged)
			} else {
				s.debounce.Reset(debounceDelay)
			}
			s.mu.Unlock()
		case err, ok := <-s.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("settings watcher error: %v", err)
		}
	}
}

func (s *Store) emitChanged() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}
