package youtube

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/ytget/orpheus-gui/internal/model"
)

// searchListing is the subset of yt-dlp's --dump-single-json output we read
type searchListing struct {
	Entries []searchEntry `json:"entries"`
}

type searchEntry struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Channel     string   `json:"channel"`
	Uploader    string   `json:"uploader"`
	Artists     []string `json:"artists"`
	Duration    *float64 `json:"duration"`
	ReleaseYear *int     `json:"release_year"`
	UploadDate  string   `json:"upload_date"`
	AgeLimit    int      `json:"age_limit"`
	LiveStatus  string   `json:"live_status"`
}

// parseSearchOutput converts yt-dlp JSON output into search results.
// Entries without an ID are skipped.
func parseSearchOutput(output string) ([]model.SearchResult, error) {
	output = strings.TrimSpace(output)
	if output == "" {
		return nil, nil
	}

	var listing searchListing
	if err := json.Unmarshal([]byte(output), &listing); err != nil {
		return nil, fmt.Errorf("failed to parse yt-dlp output: %w", err)
	}

	results := make([]model.SearchResult, 0, len(listing.Entries))
	for _, entry := range listing.Entries {
		if entry.ID == "" {
			continue
		}
		results = append(results, entry.toResult())
	}
	return results, nil
}

func (e searchEntry) toResult() model.SearchResult {
	result := model.SearchResult{
		ID:       e.ID,
		Name:     e.Title,
		Artists:  e.Artists,
		Explicit: e.AgeLimit >= 18,
	}

	if len(result.Artists) == 0 {
		switch {
		case e.Channel != "":
			result.Artists = []string{e.Channel}
		case e.Uploader != "":
			result.Artists = []string{e.Uploader}
		}
	}

	if e.Duration != nil {
		result.DurationSeconds = int(*e.Duration)
	}

	switch {
	case e.ReleaseYear != nil:
		result.Year = strconv.Itoa(*e.ReleaseYear)
	case len(e.UploadDate) >= 4:
		result.Year = e.UploadDate[:4]
	}

	if e.LiveStatus == "is_live" {
		result.Additional = append(result.Additional, "LIVE")
	}

	return result
}
