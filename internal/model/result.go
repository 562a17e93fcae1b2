package model

import (
	"fmt"
	"strings"
)

// SearchResult represents a single catalog hit returned by a module search
type SearchResult struct {
	ID              string   // stable identifier within the module
	Name            string   // display name (track/album/artist title)
	Artists         []string // ordered artist names, may be empty
	Year            string   // release year, empty if unknown
	DurationSeconds int      // track duration, 0 if unknown
	Explicit        bool
	Additional      []string // extra tags such as quality or edition
}

// QueueEntry represents one user-selected download target
type QueueEntry struct {
	Item      SearchResult
	MediaType MediaType
}

// GetDisplayName returns the name, or "Unknown" when the provider left it empty
func (r SearchResult) GetDisplayName() string {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return "Unknown"
	}
	return name
}

// GetDurationString returns the duration formatted as m:ss
func (r SearchResult) GetDurationString() string {
	seconds := r.DurationSeconds
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// Identification returns the media identification for this entry
func (e QueueEntry) Identification() MediaIdentification {
	return MediaIdentification{Type: e.MediaType, ID: e.Item.ID}
}
