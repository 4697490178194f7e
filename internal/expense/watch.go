package expense

import (
	"log/slog"
	"sync"
)

// Snapshot is one full emission of the current expense collection. The store
// pushes whole snapshots, not diffs; consumers always act on the latest one
// and may discard results computed against older snapshots.
type Snapshot []*Expense

type SnapshotFunc func(Snapshot)

// Subscription detaches a snapshot consumer when cancelled.
type Subscription struct {
	id      int64
	watcher *Watcher
}

func (s *Subscription) Cancel() {
	s.watcher.unsubscribe(s.id)
}

// Watcher fans full collection snapshots out to subscribers after every
// store mutation.
type Watcher struct {
	subscribers map[int64]SnapshotFunc
	nextID      int64
	logger      *slog.Logger
	mu          sync.RWMutex
}

func NewWatcher(logger *slog.Logger) *Watcher {
	return &Watcher{
		subscribers: make(map[int64]SnapshotFunc),
		logger:      logger,
	}
}

func (w *Watcher) Subscribe(fn SnapshotFunc) *Subscription {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.nextID++
	id := w.nextID
	w.subscribers[id] = fn

	w.logger.Info("snapshot subscriber registered",
		"subscriber_id", id,
		"total_subscribers", len(w.subscribers))

	return &Subscription{id: id, watcher: w}
}

func (w *Watcher) unsubscribe(id int64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.subscribers, id)
}

// Publish delivers the snapshot to every subscriber asynchronously.
func (w *Watcher) Publish(snap Snapshot) {
	w.mu.RLock()
	subscribers := make([]SnapshotFunc, 0, len(w.subscribers))
	for _, fn := range w.subscribers {
		subscribers = append(subscribers, fn)
	}
	w.mu.RUnlock()

	if len(subscribers) == 0 {
		w.logger.Debug("no snapshot subscribers")
		return
	}

	w.logger.Debug("publishing snapshot",
		"expense_count", len(snap),
		"subscriber_count", len(subscribers))

	for _, fn := range subscribers {
		go fn(snap)
	}
}

// PublishSync delivers the snapshot to every subscriber on the calling
// goroutine, in registration-independent order.
func (w *Watcher) PublishSync(snap Snapshot) {
	w.mu.RLock()
	subscribers := make([]SnapshotFunc, 0, len(w.subscribers))
	for _, fn := range w.subscribers {
		subscribers = append(subscribers, fn)
	}
	w.mu.RUnlock()

	for _, fn := range subscribers {
		fn(snap)
	}
}
