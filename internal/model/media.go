package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMediaType is returned when a search type cannot be mapped to a MediaType
var ErrUnknownMediaType = errors.New("unknown media type")

// MediaType classifies a search result (album/track/artist/playlist). It is
// passed through unmodified to the download toolkit.
type MediaType string

const (
	MediaTypeTrack    MediaType = "track"
	MediaTypeAlbum    MediaType = "album"
	MediaTypeArtist   MediaType = "artist"
	MediaTypePlaylist MediaType = "playlist"
)

// SearchTypes lists the media types offered in the search form, in display order
var SearchTypes = []MediaType{MediaTypeTrack, MediaTypeAlbum, MediaTypeArtist, MediaTypePlaylist}

// String returns the string representation of MediaType
func (mt MediaType) String() string {
	return string(mt)
}

// ParseMediaType resolves a user supplied search type
func ParseMediaType(value string) (MediaType, error) {
	candidate := MediaType(strings.ToLower(strings.TrimSpace(value)))
	for _, known := range SearchTypes {
		if candidate == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMediaType, value)
}

// MediaIdentification is the (type, id) pair identifying a downloadable unit
type MediaIdentification struct {
	Type MediaType
	ID   string
}

// ModuleMode names a per-capability module override
type ModuleMode string

const (
	ModuleModeCovers  ModuleMode = "covers"
	ModuleModeLyrics  ModuleMode = "lyrics"
	ModuleModeCredits ModuleMode = "credits"
)

// ModuleModes lists the overridable capabilities in display order
var ModuleModes = []ModuleMode{ModuleModeCovers, ModuleModeLyrics, ModuleModeCredits}

// DefaultModuleOverride means "use the main module" for a capability
const DefaultModuleOverride = "default"

// DownloadConfig carries everything a batch run needs besides its items
type DownloadConfig struct {
	DownloadPath    string
	ModuleName      string
	ModuleOverrides map[ModuleMode]string
	SDM             string
}
