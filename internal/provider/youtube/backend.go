package youtube

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	goytdlp "github.com/lrstanley/go-ytdlp"
	ytplaylist "github.com/ytget/ytdlp/v2"

	"github.com/ytget/orpheus-gui/internal/model"
	"github.com/ytget/orpheus-gui/internal/provider"
)

// ModuleName is the name the backend registers under
const ModuleName = "youtube"

// Timeouts and intervals
const (
	DefaultPlaylistTimeout  = 60 * time.Second
	DefaultProgressInterval = time.Second
	DefaultRetryDelay       = 2 * time.Second
	DefaultMaxRetries       = 1
)

// URL templates and parsing
const (
	VideoURLTemplate = "https://www.youtube.com/watch?v=%s"
	SearchTemplate   = "ytsearch%d:%s"
	OutputTemplate   = "%(title)s.%(ext)s"
	PlaylistParam    = "list="
	ParamSeparator   = "&"
)

// ErrUnsupportedMediaType is returned for media types YouTube has no notion of
var ErrUnsupportedMediaType = errors.New("unsupported media type")

type playlistEntry struct {
	ID    string
	Title string
}

// Backend implements provider.Backend on top of yt-dlp
type Backend struct {
	search   func(ctx context.Context, target string) (string, error)
	fetch    func(ctx context.Context, url, destDir string, onProgress func(title string, percent int)) error
	playlist func(ctx context.Context, playlistID string) ([]playlistEntry, error)

	maxRetries int
	retryDelay time.Duration
}

// NewBackend creates the yt-dlp backed module
func NewBackend() *Backend {
	return &Backend{
		search:   runSearch,
		fetch:    runFetch,
		playlist: listPlaylist,

		maxRetries: DefaultMaxRetries,
		retryDelay: DefaultRetryDelay,
	}
}

// Name returns the module name
func (b *Backend) Name() string {
	return ModuleName
}

// Search queries YouTube. Tracks use yt-dlp's ytsearch; playlists accept a
// playlist URL or ID and resolve to a single result.
func (b *Backend) Search(ctx context.Context, mediaType model.MediaType, query string, limit int) ([]model.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("empty query")
	}
	if limit <= 0 {
		limit = 1
	}

	switch mediaType {
	case model.MediaTypeTrack:
		output, err := b.search(ctx, fmt.Sprintf(SearchTemplate, limit, query))
		if err != nil {
			return nil, err
		}
		return parseSearchOutput(output)

	case model.MediaTypePlaylist:
		playlistID := ExtractPlaylistID(query)
		entries, err := b.playlist(ctx, playlistID)
		if err != nil {
			return nil, err
		}
		return []model.SearchResult{playlistResult(playlistID, entries)}, nil

	default:
		return nil, fmt.Errorf("%s: %w: %s", ModuleName, ErrUnsupportedMediaType, mediaType)
	}
}

// Download fetches every media item addressed to this module. Playlist
// entries are attempted individually and their failures joined.
func (b *Backend) Download(ctx context.Context, req provider.DownloadRequest) error {
	var errs []error

	for _, ident := range req.Media[ModuleName] {
		switch ident.Type {
		case model.MediaTypeTrack:
			if err := b.fetchVideo(ctx, ident.ID, req); err != nil {
				errs = append(errs, err)
			}

		case model.MediaTypePlaylist:
			entries, err := b.playlist(ctx, ident.ID)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			req.Emit(fmt.Sprintf("Playlist %s: %d videos", ident.ID, len(entries)))
			for _, entry := range entries {
				if err := b.fetchVideo(ctx, entry.ID, req); err != nil {
					req.Emit(fmt.Sprintf("Failed: %s (%v)", entry.Title, err))
					errs = append(errs, err)
				}
			}

		default:
			errs = append(errs, fmt.Errorf("%s: %w: %s", ModuleName, ErrUnsupportedMediaType, ident.Type))
		}
	}

	return errors.Join(errs...)
}

// fetchVideo downloads one video, retrying after a short backoff
func (b *Backend) fetchVideo(ctx context.Context, videoID string, req provider.DownloadRequest) error {
	url := fmt.Sprintf(VideoURLTemplate, videoID)
	lastPercent := -1
	onProgress := func(title string, percent int) {
		if percent == lastPercent {
			return
		}
		lastPercent = percent
		if title == "" {
			title = videoID
		}
		req.Emit(fmt.Sprintf("%s: %d%%", title, percent))
	}

	var lastErr error
	for attempt := 0; attempt <= b.maxRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(b.retryDelay):
			case <-ctx.Done():
				return ctx.Err()
			}
			log.Printf("Retrying %s, attempt %d", url, attempt+1)
			req.Emit(fmt.Sprintf("Retrying %s (attempt %d)", videoID, attempt+1))
		}

		lastErr = b.fetch(ctx, url, req.DestPath, onProgress)
		if lastErr == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
	return lastErr
}

// ExtractPlaylistID returns the list= parameter of a URL, or the input itself
func ExtractPlaylistID(input string) string {
	input = strings.TrimSpace(input)
	if strings.Contains(input, PlaylistParam) {
		parts := strings.Split(input, PlaylistParam)
		if len(parts) > 1 {
			return strings.Split(parts[1], ParamSeparator)[0]
		}
	}
	return input
}

func playlistResult(playlistID string, entries []playlistEntry) model.SearchResult {
	name := "Playlist " + playlistID
	if len(entries) > 0 && entries[0].Title != "" {
		name = entries[0].Title + " and more"
	}
	return model.SearchResult{
		ID:         playlistID,
		Name:       name,
		Additional: []string{fmt.Sprintf("%d videos", len(entries))},
	}
}

// runSearch asks yt-dlp for a flat JSON listing of search hits
func runSearch(ctx context.Context, target string) (string, error) {
	result, err := goytdlp.New().
		FlatPlaylist().
		DumpSingleJSON().
		Run(ctx, target)
	if err != nil {
		return "", fmt.Errorf("yt-dlp search failed: %w", err)
	}
	return result.Stdout, nil
}

// runFetch downloads a single video as audio into destDir
func runFetch(ctx context.Context, url, destDir string, onProgress func(title string, percent int)) error {
	dl := goytdlp.New().
		ForceOverwrites().
		RestrictFilenames().
		ExtractAudio().
		Output(filepath.Join(destDir, OutputTemplate))

	dl.ProgressFunc(DefaultProgressInterval, func(update goytdlp.ProgressUpdate) {
		if update.TotalBytes <= 0 {
			return
		}
		percent := int(float64(update.DownloadedBytes) / float64(update.TotalBytes) * 100)
		title := ""
		if update.Info != nil && update.Info.Title != nil {
			title = *update.Info.Title
		}
		onProgress(title, percent)
	})

	if _, err := dl.Run(ctx, url); err != nil {
		log.Printf("yt-dlp download failed for %s: %v", url, err)
		return fmt.Errorf("yt-dlp download failed: %w", err)
	}
	return nil
}

// listPlaylist lists playlist videos through the ytdlp library
func listPlaylist(ctx context.Context, playlistID string) ([]playlistEntry, error) {
	if playlistID == "" {
		return nil, fmt.Errorf("empty playlist ID")
	}

	ctx, cancel := context.WithTimeout(ctx, DefaultPlaylistTimeout)
	defer cancel()

	items, err := ytplaylist.New().GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	entries := make([]playlistEntry, 0, len(items))
	for _, it := range items {
		entries = append(entries, playlistEntry{ID: it.VideoID, Title: it.Title})
	}
	return entries, nil
}
