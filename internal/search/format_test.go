package search

import (
	"testing"

	"github.com/ytget/orpheus-gui/internal/model"
)

func TestFormatResult(t *testing.T) {
	track := model.SearchResult{
		ID:              "123",
		Name:            "So What",
		Artists:         []string{"Miles Davis", "John Coltrane"},
		Year:            "1959",
		DurationSeconds: 562,
		Explicit:        true,
		Additional:      []string{"24bit", "96kHz"},
	}

	tests := []struct {
		name       string
		result     model.SearchResult
		searchType string
		index      int
		queued     bool
		expected   string
	}{
		{
			name:       "full track",
			result:     track,
			searchType: "track",
			index:      1,
			expected:   "1. So What - Miles Davis, John Coltrane (Year: 1959, Duration: 9:22) [Explicit] [24bit 96kHz] (ID: 123)",
		},
		{
			name:       "queued bare track",
			result:     model.SearchResult{ID: "7", DurationSeconds: 5},
			searchType: "track",
			index:      3,
			queued:     true,
			expected:   "3. Unknown Title - Unknown Artist (Year: Unknown Year, Duration: 0:05) (ID: 7) (Queued)",
		},
		{
			name:       "album",
			result:     model.SearchResult{ID: "a1", Name: "Kind of Blue", Artists: []string{"Miles Davis"}, Year: "1959", Additional: []string{"Remaster"}},
			searchType: "album",
			index:      2,
			expected:   "2. Kind of Blue - Miles Davis (Year: 1959) [Remaster] (ID: a1)",
		},
		{
			name:       "album defaults",
			result:     model.SearchResult{ID: "a2"},
			searchType: "album",
			index:      1,
			expected:   "1. Unknown Album - Unknown Artist (Year: Unknown Year) (ID: a2)",
		},
		{
			name:       "artist",
			result:     model.SearchResult{ID: "ar", Name: "Miles Davis"},
			searchType: "artist",
			index:      4,
			queued:     true,
			expected:   "4. Miles Davis (ID: ar) (Queued)",
		},
		{
			name:       "artist without name",
			result:     model.SearchResult{ID: "ar"},
			searchType: "artist",
			index:      1,
			expected:   "1. Unknown Artist (ID: ar)",
		},
		{
			name:       "playlist generic",
			result:     model.SearchResult{Name: "Mix"},
			searchType: "playlist",
			index:      5,
			expected:   "5. Mix (ID: N/A)",
		},
		{
			name:       "generic defaults",
			result:     model.SearchResult{ID: "p"},
			searchType: "label",
			index:      1,
			expected:   "1. Unknown (ID: p)",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := FormatResult(test.result, test.searchType, test.index, test.queued)
			if got != test.expected {
				t.Errorf("Expected %q, got %q", test.expected, got)
			}
		})
	}
}

func TestFormatQueueEntry(t *testing.T) {
	entry := model.QueueEntry{Item: model.SearchResult{ID: "42", Name: "Blue in Green"}, MediaType: model.MediaTypeTrack}

	if got := FormatQueueEntry(0, entry); got != "1. Blue in Green (ID: 42)" {
		t.Errorf("Unexpected queue line: %q", got)
	}
}
