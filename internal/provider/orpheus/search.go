package orpheus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/ytget/orpheus-gui/internal/model"
)

// ResultsPrefix marks the single output line that carries search results as JSON
const ResultsPrefix = "@@orpheus-gui-results "

// ErrNoResultsLine is returned when the search script exits without printing results
var ErrNoResultsLine = errors.New("toolkit printed no search results")

// searchScript loads orpheus.py from the working directory the same way the
// toolkit's own entry point does and runs one module search. Arguments:
// module, download type, query, limit.
const searchScript = `import importlib.util, json, os, sys
spec = importlib.util.spec_from_file_location("orpheus_entry", os.path.join(os.getcwd(), "orpheus.py"))
entry = importlib.util.module_from_spec(spec)
spec.loader.exec_module(entry)
name, kind, query, limit = sys.argv[1], sys.argv[2], sys.argv[3], int(sys.argv[4])
module = entry.Orpheus(False).load_module(name)
results = module.search(entry.DownloadTypeEnum[kind], query, limit=limit) or []

def text(v):
    return "" if v is None else str(v)

def texts(v):
    return [text(x) for x in v] if isinstance(v, (list, tuple)) else []

def seconds(v):
    try:
        return int(v or 0)
    except (TypeError, ValueError):
        return 0

out = [{
    "result_id": text(getattr(r, "result_id", None)),
    "name": text(getattr(r, "name", None)),
    "artists": texts(getattr(r, "artists", None)),
    "year": text(getattr(r, "year", None)),
    "duration": seconds(getattr(r, "duration", 0)),
    "explicit": bool(getattr(r, "explicit", False)),
    "additional": texts(getattr(r, "additional", None)),
} for r in results]
print(` + "\"" + ResultsPrefix + "\"" + ` + json.dumps(out), flush=True)
`

// searchHit is one result as printed by searchScript
type searchHit struct {
	ResultID   string   `json:"result_id"`
	Name       string   `json:"name"`
	Artists    []string `json:"artists"`
	Year       string   `json:"year"`
	Duration   int      `json:"duration"`
	Explicit   bool     `json:"explicit"`
	Additional []string `json:"additional"`
}

// BuildSearchArgs builds the interpreter arguments for a module search
func (c *Client) BuildSearchArgs(moduleName string, mediaType model.MediaType, query string, limit int) []string {
	return []string{"-c", searchScript, moduleName, string(mediaType), query, strconv.Itoa(limit)}
}

// Search runs a module search in a separate interpreter and decodes its results.
// Other output lines the toolkit prints are logged.
func (c *Client) Search(ctx context.Context, moduleName string, mediaType model.MediaType, query string, limit int) ([]model.SearchResult, error) {
	var payload string
	found := false
	collect := func(line string) {
		if rest, ok := strings.CutPrefix(line, ResultsPrefix); ok {
			payload = rest
			found = true
			return
		}
		if strings.TrimSpace(line) != "" {
			log.Printf("Toolkit search [%s]: %s", moduleName, line)
		}
	}

	if err := c.run(ctx, c.BuildSearchArgs(moduleName, mediaType, query, limit), collect); err != nil {
		return nil, fmt.Errorf("search with %s failed: %w", moduleName, err)
	}
	if !found {
		return nil, fmt.Errorf("%s: %w", moduleName, ErrNoResultsLine)
	}

	return ParseSearchResults(payload)
}

// ParseSearchResults decodes the JSON list printed by the search script
func ParseSearchResults(payload string) ([]model.SearchResult, error) {
	var hits []searchHit
	if err := json.Unmarshal([]byte(payload), &hits); err != nil {
		return nil, fmt.Errorf("failed to parse search results: %w", err)
	}

	results := make([]model.SearchResult, 0, len(hits))
	for _, hit := range hits {
		results = append(results, model.SearchResult{
			ID:              hit.ResultID,
			Name:            hit.Name,
			Artists:         hit.Artists,
			Year:            hit.Year,
			DurationSeconds: hit.Duration,
			Explicit:        hit.Explicit,
			Additional:      hit.Additional,
		})
	}
	return results, nil
}
