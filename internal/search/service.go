package search

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/ytget/orpheus-gui/internal/model"
	"github.com/ytget/orpheus-gui/internal/provider"
)

// DefaultTimeout bounds a single search call
const DefaultTimeout = 60 * time.Second

var (
	// ErrEmptyQuery is returned when the query is blank
	ErrEmptyQuery = errors.New("search query is empty")

	// ErrNoModule is returned when no module is selected
	ErrNoModule = errors.New("no module selected")
)

// Query describes one search request
type Query struct {
	ModuleName string
	SearchType string
	Text       string
}

// Service performs searches through loaded modules
type Service struct {
	searcher provider.Searcher
	timeout  time.Duration
}

// NewService creates a search service over searcher
func NewService(searcher provider.Searcher) *Service {
	return &Service{searcher: searcher, timeout: DefaultTimeout}
}

// Search loads the module, resolves the type and runs the search. The
// resolved media type is returned so results can be queued with it.
func (s *Service) Search(ctx context.Context, q Query, limit int) ([]model.SearchResult, model.MediaType, error) {
	moduleName := strings.TrimSpace(q.ModuleName)
	if moduleName == "" {
		return nil, "", ErrNoModule
	}
	text := strings.TrimSpace(q.Text)
	if text == "" {
		return nil, "", ErrEmptyQuery
	}

	mediaType, err := model.ParseMediaType(q.SearchType)
	if err != nil {
		return nil, "", err
	}

	module, err := s.searcher.LoadModule(moduleName)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load module %s: %w", moduleName, err)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	results, err := module.Search(ctx, mediaType, text, limit)
	if err != nil {
		return nil, "", err
	}
	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	log.Printf("Search %s/%s %q returned %d results in %s", moduleName, mediaType, text, len(results), time.Since(start).Round(time.Millisecond))
	return results, mediaType, nil
}
