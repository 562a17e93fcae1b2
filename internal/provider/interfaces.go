package provider

import (
	"context"
	"errors"

	"github.com/ytget/orpheus-gui/internal/model"
)

// ErrUnknownModule is returned when no backend owns a module name
var ErrUnknownModule = errors.New("unknown module")

// Module is a loaded toolkit module able to search its catalog.
type Module interface {
	Name() string
	Search(ctx context.Context, mediaType model.MediaType, query string, limit int) ([]model.SearchResult, error)
}

// Searcher loads modules by name.
type Searcher interface {
	LoadModule(name string) (Module, error)
}

// DownloadRequest mirrors the toolkit's global download call.
type DownloadRequest struct {
	// Media maps a module name to the media it should download
	Media           map[string][]model.MediaIdentification
	ModuleOverrides map[model.ModuleMode]string
	SDM             string
	DestPath        string

	// Output receives tool output lines; may be nil
	Output func(line string)
}

// Downloader performs the global download operation. It may fail; callers
// isolate failures per item.
type Downloader interface {
	Download(ctx context.Context, req DownloadRequest) error
}

// DownloaderFunc adapts a plain function to Downloader.
type DownloaderFunc func(ctx context.Context, req DownloadRequest) error

// Download calls f(ctx, req)
func (f DownloaderFunc) Download(ctx context.Context, req DownloadRequest) error {
	return f(ctx, req)
}

// Backend is a module that also downloads its own media.
type Backend interface {
	Module
	Downloader
}

// Toolkit serves every module name that is not a built-in backend.
type Toolkit interface {
	Downloader
	Module(name string) (Module, error)
}

// Emit sends a line to the request's output sink if one is set
func (r DownloadRequest) Emit(line string) {
	if r.Output != nil {
		r.Output(line)
	}
}
