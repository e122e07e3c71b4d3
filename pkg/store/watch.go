package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a store change notification.
type EventType int

const (
	// EventAppointmentsChanged indicates the appointments for the given day
	// changed (created, updated, or removed out-of-band).
	EventAppointmentsChanged EventType = iota

	// EventStoreInvalidated signals a change that could not be attributed to
	// a single day; callers should refresh their full view.
	EventStoreInvalidated
)

// Event is emitted by Store.Watch when underlying storage changes. Day is
// the ISO date ("2006-01-02") the change belongs to, when known.
type Event struct {
	Type EventType
	Day  string
}

// Watch streams change events until ctx is cancelled. Callers should drain
// the returned channel to avoid blocking the watcher. The channel is closed
// once ctx is done or the watcher encounters an unrecoverable error.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}

	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	dirs, err := collectDirs(p.basePath)
	if err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: enumerate directories: %w", err)
	}

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			closeWatcher()
			return nil, fmt.Errorf("store: watch %s: %w", dir, err)
		}
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		defer closeWatcher()

		// Track directories we already watch so we can add new ones at runtime
		// without duplicating watches.
		watched := make(map[string]struct{}, len(dirs))
		for _, dir := range dirs {
			watched[dir] = struct{}{}
		}

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Drop events if the consumer is not ready; a subsequent
				// refresh will pick up the changes and keeps the UI from
				// stalling during filesystem storms.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				// Surface watcher errors as a full refresh to keep clients in
				// sync even if we cannot classify the change precisely.
				throttle.Enqueue(Event{Type: EventStoreInvalidated}, send)
				_ = err
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}

				if evt.Op&fsnotify.Create == fsnotify.Create {
					// New day shards appear as directories; watch them to
					// capture subsequent appointment writes.
					if info, err := os.Stat(evt.Name); err == nil && info.IsDir() {
						absDir := filepath.Clean(evt.Name)
						if _, found := watched[absDir]; !found {
							if err := watcher.Add(absDir); err != nil {
								fmt.Fprintf(os.Stderr, "store: watch %s: %v\n", absDir, err)
							} else {
								watched[absDir] = struct{}{}
							}
						}
						throttle.Enqueue(Event{Type: EventStoreInvalidated}, send)
						continue
					}
				}

				day := p.dayForPath(evt.Name)
				if day == "" {
					throttle.Enqueue(Event{Type: EventStoreInvalidated}, send)
					continue
				}

				throttle.Enqueue(Event{Type: EventAppointmentsChanged, Day: day}, send)
			}
		}
	}()

	return events, nil
}

// collectDirs walks base and returns all directories that should be watched.
func collectDirs(base string) ([]string, error) {
	dirs := []string{base}
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() && path != base {
			dirs = append(dirs, path)
		}
		return nil
	})
	return dirs, err
}

// dayForPath derives the ISO day from a diskv path shaped yyyy/mm/dd/file.
func (p *persistence) dayForPath(path string) string {
	rel, err := filepath.Rel(p.basePath, path)
	if err != nil {
		return ""
	}
	if rel == "." || rel == patientIndexFile {
		return ""
	}
	parts := strings.Split(rel, string(os.PathSeparator))
	if len(parts) < 3 {
		return ""
	}
	day := strings.Join(parts[:3], "-")
	if _, err := time.ParseInLocation(layoutISO, day, time.Local); err != nil {
		return ""
	}
	return day
}

// eventThrottle coalesces rapid change notifications so the UI can redraw
// once per burst of filesystem activity instead of on every single write.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[EventType]map[string]struct{}
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[EventType]map[string]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	if t.pending[ev.Type] == nil {
		t.pending[ev.Type] = make(map[string]struct{})
	}
	t.pending[ev.Type][ev.Day] = struct{}{}

	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[EventType]map[string]struct{})
	t.timer = nil
	t.mu.Unlock()

	for eventType, days := range pending {
		if len(days) == 0 {
			send(Event{Type: eventType})
			continue
		}

		for day := range days {
			send(Event{Type: eventType, Day: day})
		}
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
