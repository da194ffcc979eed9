// Package store holds the in-memory record collections backing the default
// repositories. Collections are insertion-ordered and unique by id; order
// doubles as display order where nothing else sorts. Contents live for the
// process lifetime only — the Postgres repositories are the durable
// alternative.
package store

import (
	"sync"

	"spontrip/internal/models/db_models"
)

type Store struct {
	mu       sync.RWMutex
	users    []db_models.User
	trips    []db_models.Trip
	memories []db_models.Memory
	friends  []db_models.Friend
}

func New() *Store {
	return &Store{}
}

func cloneTrip(t db_models.Trip) db_models.Trip {
	out := t
	if t.Collaborators != nil {
		out.Collaborators = append([]string(nil), t.Collaborators...)
	}
	if t.Comments != nil {
		out.Comments = append([]db_models.Comment(nil), t.Comments...)
	}
	return out
}

func cloneMemory(m db_models.Memory) db_models.Memory {
	out := m
	if m.Images != nil {
		out.Images = append([]string(nil), m.Images...)
	}
	return out
}

// --- users ---

func (s *Store) AddUser(u db_models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, u)
}

func (s *Store) Users() []db_models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]db_models.User(nil), s.users...)
}

// FindUser returns the first user matching pred, in insertion order.
func (s *Store) FindUser(pred func(db_models.User) bool) (db_models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if pred(u) {
			return u, true
		}
	}
	return db_models.User{}, false
}

// PatchUser applies fn to the stored user with the given id under the
// store lock and returns the resulting record.
func (s *Store) PatchUser(id string, fn func(*db_models.User)) (db_models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			fn(&s.users[i])
			s.users[i].ID = id // id is never reassigned
			return s.users[i], true
		}
	}
	return db_models.User{}, false
}

// --- trips ---

func (s *Store) AddTrip(t db_models.Trip) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trips = append(s.trips, cloneTrip(t))
}

func (s *Store) Trips() []db_models.Trip {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]db_models.Trip, 0, len(s.trips))
	for _, t := range s.trips {
		out = append(out, cloneTrip(t))
	}
	return out
}

func (s *Store) FindTrip(id string) (db_models.Trip, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, t := range s.trips {
		if t.ID == id {
			return cloneTrip(t), true
		}
	}
	return db_models.Trip{}, false
}

func (s *Store) PatchTrip(id string, fn func(*db_models.Trip)) (db_models.Trip, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.trips {
		if s.trips[i].ID == id {
			createdAt, userID := s.trips[i].CreatedAt, s.trips[i].UserID
			fn(&s.trips[i])
			// immutable fields survive any patch
			s.trips[i].ID = id
			s.trips[i].CreatedAt = createdAt
			s.trips[i].UserID = userID
			return cloneTrip(s.trips[i]), true
		}
	}
	return db_models.Trip{}, false
}

// RemoveTrip reports whether a record was actually removed, so a second
// delete of the same id yields false.
func (s *Store) RemoveTrip(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.trips {
		if s.trips[i].ID == id {
			s.trips = append(s.trips[:i], s.trips[i+1:]...)
			return true
		}
	}
	return false
}

// --- memories ---

func (s *Store) AddMemory(m db_models.Memory) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.memories = append(s.memories, cloneMemory(m))
}

func (s *Store) Memories() []db_models.Memory {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]db_models.Memory, 0, len(s.memories))
	for _, m := range s.memories {
		out = append(out, cloneMemory(m))
	}
	return out
}

// --- friends ---

func (s *Store) AddFriend(f db_models.Friend) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.friends = append(s.friends, f)
}

func (s *Store) Friends() []db_models.Friend {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]db_models.Friend(nil), s.friends...)
}
