package provider

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/ytget/orpheus-gui/internal/model"
)

// Registry routes module names to built-in backends or the external toolkit.
// It satisfies both Searcher and Downloader.
type Registry struct {
	mu       sync.RWMutex
	builtins map[string]Backend
	toolkit  Toolkit
}

// NewRegistry creates a registry. toolkit may be nil when only built-ins are available.
func NewRegistry(toolkit Toolkit) *Registry {
	return &Registry{
		builtins: make(map[string]Backend),
		toolkit:  toolkit,
	}
}

// Register adds a built-in backend under its own name
func (r *Registry) Register(backend Backend) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.builtins[backend.Name()] = backend
}

// Builtins returns the names of registered built-in modules, sorted
func (r *Registry) Builtins() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.builtins))
	for name := range r.builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadModule returns the module registered under name
func (r *Registry) LoadModule(name string) (Module, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: empty name", ErrUnknownModule)
	}

	r.mu.RLock()
	backend, ok := r.builtins[name]
	toolkit := r.toolkit
	r.mu.RUnlock()

	if ok {
		return backend, nil
	}
	if toolkit == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownModule, name)
	}
	return toolkit.Module(name)
}

// Download splits the request per module and forwards each part to its owner.
// Every part is attempted; errors are joined.
func (r *Registry) Download(ctx context.Context, req DownloadRequest) error {
	names := make([]string, 0, len(req.Media))
	for name := range req.Media {
		names = append(names, name)
	}
	sort.Strings(names)

	var errs []error
	for _, name := range names {
		downloader, err := r.downloaderFor(name)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		part := req
		part.Media = map[string][]model.MediaIdentification{name: req.Media[name]}
		if err := downloader.Download(ctx, part); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (r *Registry) downloaderFor(name string) (Downloader, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if backend, ok := r.builtins[name]; ok {
		return backend, nil
	}
	if r.toolkit != nil {
		return r.toolkit, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownModule, name)
}
