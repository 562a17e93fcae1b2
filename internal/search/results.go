package search

import (
	"sync"

	"github.com/ytget/orpheus-gui/internal/model"
)

// ResultSet holds the most recent search results
type ResultSet struct {
	mu         sync.RWMutex
	results    []model.SearchResult
	mediaType  model.MediaType
	searchType string
}

// NewResultSet creates an empty result set
func NewResultSet() *ResultSet {
	return &ResultSet{}
}

// Set replaces the results
func (rs *ResultSet) Set(results []model.SearchResult, mediaType model.MediaType, searchType string) {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.results = append([]model.SearchResult(nil), results...)
	rs.mediaType = mediaType
	rs.searchType = searchType
}

// Get returns result i as a queue entry, false when out of range
func (rs *ResultSet) Get(i int) (model.QueueEntry, bool) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	if i < 0 || i >= len(rs.results) {
		return model.QueueEntry{}, false
	}
	return model.QueueEntry{Item: rs.results[i], MediaType: rs.mediaType}, true
}

// All returns a copy of the results
func (rs *ResultSet) All() []model.SearchResult {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return append([]model.SearchResult(nil), rs.results...)
}

// Clear drops all results
func (rs *ResultSet) Clear() {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	rs.results = nil
	rs.mediaType = ""
	rs.searchType = ""
}

// Len returns the number of results
func (rs *ResultSet) Len() int {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return len(rs.results)
}

// SearchType returns the search type the results were produced for
func (rs *ResultSet) SearchType() string {
	rs.mu.RLock()
	defer rs.mu.RUnlock()
	return rs.searchType
}
