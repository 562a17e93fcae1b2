package orpheus

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ytget/orpheus-gui/internal/model"
	"github.com/ytget/orpheus-gui/internal/provider"
)

// Toolkit CLI constants
const (
	EntryScript        = "orpheus.py"
	DefaultPython      = "python3"
	DownloadMode       = "download"
	OutputFlag         = "-o"
	CoversFlag         = "-cv"
	LyricsFlag         = "-lr"
	CreditsFlag        = "-cr"
	SeparateModuleFlag = "-sd"
)

var overrideFlags = map[model.ModuleMode]string{
	model.ModuleModeCovers:  CoversFlag,
	model.ModuleModeLyrics:  LyricsFlag,
	model.ModuleModeCredits: CreditsFlag,
}

// Client drives the OrpheusDL command line from its base directory.
// It implements provider.Toolkit.
type Client struct {
	baseDir string
	python  string
}

// NewClient creates a client for the toolkit installed in baseDir
func NewClient(baseDir, python string) *Client {
	if strings.TrimSpace(python) == "" {
		python = DefaultPython
	}
	return &Client{baseDir: baseDir, python: python}
}

// Validate checks that the entry script is present
func (c *Client) Validate() error {
	script := filepath.Join(c.baseDir, EntryScript)
	if _, err := os.Stat(script); err != nil {
		return fmt.Errorf("cannot load %s from %s: %w", EntryScript, c.baseDir, err)
	}
	return nil
}

// Module returns a handle for a toolkit module
func (c *Client) Module(name string) (provider.Module, error) {
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: empty name", provider.ErrUnknownModule)
	}
	return &module{name: name, client: c}, nil
}

// Download runs one toolkit invocation per media identification, in order.
// The first failure stops the request.
func (c *Client) Download(ctx context.Context, req provider.DownloadRequest) error {
	names := make([]string, 0, len(req.Media))
	for name := range req.Media {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, moduleName := range names {
		for _, ident := range req.Media[moduleName] {
			args := c.BuildDownloadArgs(moduleName, ident, req)
			if err := c.run(ctx, args, req.Emit); err != nil {
				return err
			}
		}
	}
	return nil
}

// BuildDownloadArgs builds the toolkit arguments for a single media item.
// Overrides equal to the main module are omitted.
func (c *Client) BuildDownloadArgs(moduleName string, ident model.MediaIdentification, req provider.DownloadRequest) []string {
	args := []string{EntryScript}

	if req.DestPath != "" {
		args = append(args, OutputFlag, req.DestPath)
	}

	for _, mode := range model.ModuleModes {
		override := req.ModuleOverrides[mode]
		if override == "" || override == moduleName || override == model.DefaultModuleOverride {
			continue
		}
		args = append(args, overrideFlags[mode], override)
	}

	if req.SDM != "" && req.SDM != moduleName {
		args = append(args, SeparateModuleFlag, req.SDM)
	}

	return append(args, DownloadMode, moduleName, string(ident.Type), ident.ID)
}

// run executes the toolkit and forwards merged output line by line
func (c *Client) run(ctx context.Context, args []string, emit func(string)) error {
	cmd := exec.CommandContext(ctx, c.python, args...)
	cmd.Dir = c.baseDir

	reader, writer := io.Pipe()
	cmd.Stdout = writer
	cmd.Stderr = writer

	if err := cmd.Start(); err != nil {
		writer.Close()
		reader.Close()
		return fmt.Errorf("failed to start toolkit: %w", err)
	}

	log.Printf("Toolkit started: %s %s", c.python, describeArgs(args))

	done := make(chan string, 1)
	go func() {
		var last string
		scanner := bufio.NewScanner(reader)
		for scanner.Scan() {
			line := strings.TrimRight(scanner.Text(), "\r")
			if strings.TrimSpace(line) != "" {
				last = line
			}
			emit(line)
		}
		// keep draining so the child never blocks on a full pipe
		io.Copy(io.Discard, reader)
		done <- last
	}()

	err := cmd.Wait()
	writer.Close()
	last := <-done
	reader.Close()

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && last != "" {
			return fmt.Errorf("toolkit exited with code %d: %s", exitErr.ExitCode(), last)
		}
		return fmt.Errorf("toolkit failed: %w", err)
	}
	return nil
}

// describeArgs leaves inline scripts out of the log
func describeArgs(args []string) string {
	if len(args) > 1 && args[0] == "-c" {
		return "-c <script> " + strings.Join(args[2:], " ")
	}
	return strings.Join(args, " ")
}

// module is a toolkit module handle
type module struct {
	name   string
	client *Client
}

func (m *module) Name() string { return m.name }

func (m *module) Search(ctx context.Context, mediaType model.MediaType, query string, limit int) ([]model.SearchResult, error) {
	return m.client.Search(ctx, m.name, mediaType, query, limit)
}
