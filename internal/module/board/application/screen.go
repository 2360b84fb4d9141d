// Package application contains the per-screen controllers: the state
// machines between the presentation layer and the resource gateways.
package application

import "sync"

// Phase is the screen-wide fetch state: Idle until the first load, then
// Loading, then Loaded or Failed.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

// Entity is anything the screen can hold in its snapshot.
type Entity interface {
	EntityID() int64
}

// Screen tracks one list view: its phase, the last-fetched snapshot, a
// form-local submitting flag, and the set of rows with an in-flight
// mutation. A closed screen silently discards late results instead of
// crashing, since a response may arrive after the view unmounted.
type Screen[T Entity] struct {
	mu         sync.Mutex
	phase      Phase
	snapshot   []T
	err        error
	pending    map[int64]struct{}
	submitting bool
	closed     bool
	subs       map[int]func()
	nextSub    int
}

// NewScreen creates an idle screen with an empty snapshot.
func NewScreen[T Entity]() *Screen[T] {
	return &Screen[T]{
		pending: make(map[int64]struct{}),
		subs:    make(map[int]func()),
	}
}

// Phase returns the current screen-wide state.
func (s *Screen[T]) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Err returns the failure that put the screen into PhaseFailed, if any.
func (s *Screen[T]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Snapshot returns a copy of the last-fetched list.
func (s *Screen[T]) Snapshot() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]T, len(s.snapshot))
	copy(out, s.snapshot)
	return out
}

// Submitting reports whether a form submit is in flight. This is
// form-local state; the screen stays interactive.
func (s *Screen[T]) Submitting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.submitting
}

// IsPending reports whether the row has an in-flight mutation, so the
// presentation layer can show a row-local spinner.
func (s *Screen[T]) IsPending(id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.pending[id]
	return ok
}

// PendingIDs returns the ids currently undergoing a row-level mutation.
func (s *Screen[T]) PendingIDs() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]int64, 0, len(s.pending))
	for id := range s.pending {
		out = append(out, id)
	}
	return out
}

// SetLoading moves the screen into the screen-wide loading state.
func (s *Screen[T]) SetLoading() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.phase = PhaseLoading
	s.err = nil
	s.mu.Unlock()
	s.notifySubs()
}

// ResolveLoaded installs a fresh snapshot. Discarded if the screen has
// been closed in the meantime.
func (s *Screen[T]) ResolveLoaded(items []T) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.phase = PhaseLoaded
	s.snapshot = items
	s.err = nil
	s.mu.Unlock()
	s.notifySubs()
}

// ResolveFailed records a fetch failure. The screen never silently shows
// a stale snapshot as loaded after a failed refresh.
func (s *Screen[T]) ResolveFailed(err error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.phase = PhaseFailed
	s.err = err
	s.mu.Unlock()
	s.notifySubs()
}

// BeginSubmit raises the form-local submitting flag.
func (s *Screen[T]) BeginSubmit() {
	s.mu.Lock()
	s.submitting = true
	s.mu.Unlock()
	s.notifySubs()
}

// EndSubmit clears the submitting flag. Runs on both outcome paths.
func (s *Screen[T]) EndSubmit() {
	s.mu.Lock()
	s.submitting = false
	s.mu.Unlock()
	s.notifySubs()
}

// BeginPending marks a row as having an in-flight mutation.
func (s *Screen[T]) BeginPending(id int64) {
	s.mu.Lock()
	s.pending[id] = struct{}{}
	s.mu.Unlock()
	s.notifySubs()
}

// EndPending removes the row marker. Callers defer this so it runs on
// success and failure alike.
func (s *Screen[T]) EndPending(id int64) {
	s.mu.Lock()
	delete(s.pending, id)
	s.mu.Unlock()
	s.notifySubs()
}

// AppendOne splices a newly created entity into the snapshot.
func (s *Screen[T]) AppendOne(item T) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.snapshot = append(s.snapshot, item)
	s.mu.Unlock()
	s.notifySubs()
}

// ReplaceOne swaps the snapshot row with the server-returned entity.
// The local copy is never patched beyond this.
func (s *Screen[T]) ReplaceOne(item T) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	for i, existing := range s.snapshot {
		if existing.EntityID() == item.EntityID() {
			s.snapshot[i] = item
			break
		}
	}
	s.mu.Unlock()
	s.notifySubs()
}

// RemoveOne drops a deleted entity from the snapshot.
func (s *Screen[T]) RemoveOne(id int64) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	for i, existing := range s.snapshot {
		if existing.EntityID() == id {
			s.snapshot = append(s.snapshot[:i], s.snapshot[i+1:]...)
			break
		}
	}
	s.mu.Unlock()
	s.notifySubs()
}

// Subscribe registers a render callback fired after every state change.
// The returned function removes the subscription.
func (s *Screen[T]) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Close marks the screen unmounted. Late results are discarded.
func (s *Screen[T]) Close() {
	s.mu.Lock()
	s.closed = true
	s.subs = make(map[int]func())
	s.mu.Unlock()
}

func (s *Screen[T]) notifySubs() {
	s.mu.Lock()
	callbacks := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		callbacks = append(callbacks, fn)
	}
	s.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}
