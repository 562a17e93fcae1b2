package search

import (
	"fmt"
	"strings"

	"github.com/ytget/orpheus-gui/internal/model"
)

// Placeholders for missing result fields
const (
	UnknownTitle  = "Unknown Title"
	UnknownAlbum  = "Unknown Album"
	UnknownArtist = "Unknown Artist"
	UnknownYear   = "Unknown Year"
	UnknownName   = "Unknown"
	UnknownID     = "N/A"
	QueuedSuffix  = " (Queued)"
	ExplicitTag   = "Explicit"
)

// FormatResult renders a 1-based result line for the given search type
func FormatResult(result model.SearchResult, searchType string, index int, queued bool) string {
	var text string
	switch model.MediaType(searchType) {
	case model.MediaTypeTrack:
		text = formatTrack(result, index)
	case model.MediaTypeAlbum:
		text = formatAlbum(result, index)
	case model.MediaTypeArtist:
		text = formatNamed(result, index, UnknownArtist)
	default:
		text = formatNamed(result, index, UnknownName)
	}

	if queued {
		text += QueuedSuffix
	}
	return text
}

// FormatQueueEntry renders a 0-based queue position as a 1-based line
func FormatQueueEntry(index int, entry model.QueueEntry) string {
	return fmt.Sprintf("%d. %s (ID: %s)", index+1, entry.Item.Name, orDefault(entry.Item.ID, UnknownID))
}

func formatTrack(r model.SearchResult, index int) string {
	details := fmt.Sprintf(" - %s (Year: %s, Duration: %s)", artists(r), orDefault(r.Year, UnknownYear), r.GetDurationString())
	if r.Explicit {
		details += " [" + ExplicitTag + "]"
	}
	details += additional(r)
	return fmt.Sprintf("%d. %s%s (ID: %s)", index, orDefault(r.Name, UnknownTitle), details, orDefault(r.ID, UnknownID))
}

func formatAlbum(r model.SearchResult, index int) string {
	details := fmt.Sprintf(" - %s (Year: %s)", artists(r), orDefault(r.Year, UnknownYear)) + additional(r)
	return fmt.Sprintf("%d. %s%s (ID: %s)", index, orDefault(r.Name, UnknownAlbum), details, orDefault(r.ID, UnknownID))
}

func formatNamed(r model.SearchResult, index int, fallback string) string {
	return fmt.Sprintf("%d. %s (ID: %s)", index, orDefault(r.Name, fallback), orDefault(r.ID, UnknownID))
}

func artists(r model.SearchResult) string {
	if len(r.Artists) == 0 {
		return UnknownArtist
	}
	return strings.Join(r.Artists, ", ")
}

func additional(r model.SearchResult) string {
	if len(r.Additional) == 0 {
		return ""
	}
	return " [" + strings.Join(r.Additional, " ") + "]"
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
