package session

import (
	"errors"
	"fmt"
	"sync"

	"github.com/abhisek/careerquest/internal/catalog"
)

// ErrNotFound is returned for an unknown session ID.
var ErrNotFound = errors.New("session not found")

// Action names a session lifecycle event.
type Action string

const (
	ActionStarted     Action = "started"
	ActionCompleted   Action = "completed"
	ActionInvalidated Action = "invalidated"
)

// Recorder receives session lifecycle events. Events are delivered while the
// store lock is held, so implementations must not call back into the Store.
type Recorder interface {
	RecordSession(action Action, s *Session)
}

// RecorderFunc adapts a function to Recorder.
type RecorderFunc func(action Action, s *Session)

// RecordSession implements Recorder.
func (f RecorderFunc) RecordSession(action Action, s *Session) { f(action, s) }

// Store owns every live session, keyed by session ID. Each owner (a
// terminal, an HTTP client token) has at most one session; opening with a
// different profile discards the old session entirely.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	owners   map[string]string
	opts     []Option
	recorder Recorder
}

// NewStore creates an empty store. opts are applied to every session it
// creates.
func NewStore(recorder Recorder, opts ...Option) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		owners:   make(map[string]string),
		opts:     opts,
		recorder: recorder,
	}
}

// Open returns the owner's session for profile. An existing session is
// reused only when its profile key matches; otherwise it is invalidated and a
// fresh one is created. created reports whether a new session was made.
func (st *Store) Open(owner string, profile catalog.Profile) (s *Session, created bool, err error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.openLocked(owner, profile)
}

// OpenWith is Open followed by fn on the resulting session, both under the
// store lock.
func (st *Store) OpenWith(owner string, profile catalog.Profile, fn func(*Session) error) (created bool, err error) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, created, err := st.openLocked(owner, profile)
	if err != nil {
		return false, err
	}
	return created, fn(s)
}

func (st *Store) openLocked(owner string, profile catalog.Profile) (s *Session, created bool, err error) {
	profile = profile.Normalize()
	if id, ok := st.owners[owner]; ok {
		if cur, ok := st.sessions[id]; ok {
			if cur.Profile.Key() == profile.Key() {
				return cur, false, nil
			}
			st.dropLocked(owner, cur, ActionInvalidated)
		}
	}

	s, err = New(profile, st.opts...)
	if err != nil {
		return nil, false, fmt.Errorf("create session: %w", err)
	}
	st.sessions[s.ID] = s
	st.owners[owner] = s.ID
	st.record(ActionStarted, s)
	return s, true, nil
}

// Get returns the session with the given ID.
func (st *Store) Get(id string) (*Session, bool) {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.sessions[id]
	return s, ok
}

// Update runs fn on the session while holding the store lock, so
// concurrent requests for the same session are serialized. A completion
// caused by fn is reported to the recorder.
func (st *Store) Update(id string, fn func(*Session) error) (*Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	wasCompleted := s.Completed()
	if err := fn(s); err != nil {
		return s, err
	}
	if !wasCompleted && s.Completed() {
		st.record(ActionCompleted, s)
	}
	return s, nil
}

// Invalidate discards the owner's session, if any.
func (st *Store) Invalidate(owner string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if id, ok := st.owners[owner]; ok {
		if cur, ok := st.sessions[id]; ok {
			st.dropLocked(owner, cur, ActionInvalidated)
		}
	}
}

// Delete removes a session by ID without reporting an invalidation.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
	for owner, sid := range st.owners {
		if sid == id {
			delete(st.owners, owner)
		}
	}
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.Lock()
	defer st.mu.Unlock()
	return len(st.sessions)
}

func (st *Store) dropLocked(owner string, s *Session, action Action) {
	delete(st.sessions, s.ID)
	delete(st.owners, owner)
	st.record(action, s)
}

func (st *Store) record(action Action, s *Session) {
	if st.recorder != nil {
		st.recorder.RecordSession(action, s)
	}
}
