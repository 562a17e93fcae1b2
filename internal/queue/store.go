package queue

import (
	"sync"

	"github.com/ytget/orpheus-gui/internal/model"
)

// Store is an ordered set of queue entries keyed by result ID
type Store struct {
	mu      sync.RWMutex
	entries []model.QueueEntry
	ids     map[string]struct{}
}

// NewStore creates an empty queue store
func NewStore() *Store {
	return &Store{
		entries: make([]model.QueueEntry, 0),
		ids:     make(map[string]struct{}),
	}
}

// Add appends the item unless its ID is empty or already queued
func (s *Store) Add(item model.SearchResult, mediaType model.MediaType) bool {
	if item.ID == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.ids[item.ID]; exists {
		return false
	}

	s.entries = append(s.entries, model.QueueEntry{Item: item, MediaType: mediaType})
	s.ids[item.ID] = struct{}{}
	return true
}

// RemoveAt removes the entry at index. ok is false for an out-of-range index.
func (s *Store) RemoveAt(index int) (model.QueueEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 || index >= len(s.entries) {
		return model.QueueEntry{}, false
	}

	removed := s.entries[index]
	s.entries = append(s.entries[:index], s.entries[index+1:]...)
	delete(s.ids, removed.Item.ID)
	return removed, true
}

// IsQueued reports whether an entry with the given ID is queued
func (s *Store) IsQueued(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, exists := s.ids[id]
	return exists
}

// Clear removes every entry
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = make([]model.QueueEntry, 0)
	s.ids = make(map[string]struct{})
}

// Items returns a snapshot copy of the queued entries in insertion order
func (s *Store) Items() []model.QueueEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]model.QueueEntry, len(s.entries))
	copy(items, s.entries)
	for i := range items {
		items[i].Item.Artists = append([]string(nil), s.entries[i].Item.Artists...)
		items[i].Item.Additional = append([]string(nil), s.entries[i].Item.Additional...)
	}
	return items
}

// QueuedIDs returns a copy of the set of queued IDs
func (s *Store) QueuedIDs() map[string]struct{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make(map[string]struct{}, len(s.ids))
	for id := range s.ids {
		ids[id] = struct{}{}
	}
	return ids
}

// Len returns the number of queued entries
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
