package provider

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ytget/orpheus-gui/internal/model"
)

type fakeBackend struct {
	name      string
	requests  []DownloadRequest
	failWith  error
	searchHit []model.SearchResult
}

func (f *fakeBackend) Name() string { return f.name }

func (f *fakeBackend) Search(ctx context.Context, mediaType model.MediaType, query string, limit int) ([]model.SearchResult, error) {
	return f.searchHit, nil
}

func (f *fakeBackend) Download(ctx context.Context, req DownloadRequest) error {
	f.requests = append(f.requests, req)
	return f.failWith
}

type fakeToolkit struct {
	fakeBackend
	loaded []string
}

func (f *fakeToolkit) Module(name string) (Module, error) {
	f.loaded = append(f.loaded, name)
	return &fakeBackend{name: name}, nil
}

func TestRegistry_LoadModule(t *testing.T) {
	builtin := &fakeBackend{name: "youtube"}
	toolkit := &fakeToolkit{}
	registry := NewRegistry(toolkit)
	registry.Register(builtin)

	module, err := registry.LoadModule("youtube")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if module != builtin {
		t.Error("Expected built-in backend to be returned")
	}

	module, err = registry.LoadModule("qobuz")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if module.Name() != "qobuz" {
		t.Errorf("Expected toolkit module 'qobuz', got '%s'", module.Name())
	}
	if len(toolkit.loaded) != 1 || toolkit.loaded[0] != "qobuz" {
		t.Errorf("Expected toolkit to load 'qobuz', got %v", toolkit.loaded)
	}

	if _, err := registry.LoadModule("  "); !errors.Is(err, ErrUnknownModule) {
		t.Errorf("Expected ErrUnknownModule for empty name, got %v", err)
	}
}

func TestRegistry_LoadModule_NoToolkit(t *testing.T) {
	registry := NewRegistry(nil)

	_, err := registry.LoadModule("qobuz")
	if !errors.Is(err, ErrUnknownModule) {
		t.Errorf("Expected ErrUnknownModule, got %v", err)
	}
}

func TestRegistry_Builtins(t *testing.T) {
	registry := NewRegistry(nil)
	registry.Register(&fakeBackend{name: "zeta"})
	registry.Register(&fakeBackend{name: "alpha"})

	names := registry.Builtins()
	if len(names) != 2 || names[0] != "alpha" || names[1] != "zeta" {
		t.Errorf("Expected [alpha zeta], got %v", names)
	}
}

func TestRegistry_Download_RoutesPerModule(t *testing.T) {
	builtin := &fakeBackend{name: "youtube"}
	toolkit := &fakeToolkit{}
	registry := NewRegistry(toolkit)
	registry.Register(builtin)

	req := DownloadRequest{
		Media: map[string][]model.MediaIdentification{
			"youtube": {{Type: model.MediaTypeTrack, ID: "v1"}},
			"qobuz":   {{Type: model.MediaTypeAlbum, ID: "a1"}},
		},
		SDM:      "qobuz",
		DestPath: "/tmp/out",
	}

	if err := registry.Download(context.Background(), req); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(builtin.requests) != 1 {
		t.Fatalf("Expected 1 built-in request, got %d", len(builtin.requests))
	}
	if _, ok := builtin.requests[0].Media["qobuz"]; ok {
		t.Error("Built-in backend should only receive its own media")
	}
	if builtin.requests[0].DestPath != "/tmp/out" {
		t.Errorf("Expected DestPath to be forwarded, got %s", builtin.requests[0].DestPath)
	}

	if len(toolkit.requests) != 1 {
		t.Fatalf("Expected 1 toolkit request, got %d", len(toolkit.requests))
	}
	if got := toolkit.requests[0].Media["qobuz"]; len(got) != 1 || got[0].ID != "a1" {
		t.Errorf("Expected toolkit to receive qobuz/a1, got %v", toolkit.requests[0].Media)
	}
}

func TestRegistry_Download_JoinsErrors(t *testing.T) {
	registry := NewRegistry(nil)
	registry.Register(&fakeBackend{name: "youtube", failWith: errors.New("network down")})

	req := DownloadRequest{
		Media: map[string][]model.MediaIdentification{
			"youtube": {{Type: model.MediaTypeTrack, ID: "v1"}},
			"tidal":   {{Type: model.MediaTypeTrack, ID: "t1"}},
		},
	}

	err := registry.Download(context.Background(), req)
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if !errors.Is(err, ErrUnknownModule) {
		t.Errorf("Expected joined error to contain ErrUnknownModule, got %v", err)
	}
	if !strings.Contains(err.Error(), "network down") {
		t.Errorf("Expected joined error to contain backend failure, got %v", err)
	}
}

func TestDownloaderFunc(t *testing.T) {
	called := false
	var d Downloader = DownloaderFunc(func(ctx context.Context, req DownloadRequest) error {
		called = true
		req.Emit("hello")
		return nil
	})

	var lines []string
	err := d.Download(context.Background(), DownloadRequest{Output: func(line string) {
		lines = append(lines, line)
	}})
	if err != nil || !called {
		t.Fatalf("Expected DownloaderFunc to be called without error, got %v", err)
	}
	if len(lines) != 1 || lines[0] != "hello" {
		t.Errorf("Expected output [hello], got %v", lines)
	}

	// Emit without a sink is a no-op
	DownloadRequest{}.Emit("ignored")
}
