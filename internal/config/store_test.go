package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofrs/flock"

	"github.com/ytget/orpheus-gui/internal/model"
)

func TestLoadSettingsJSON_Missing(t *testing.T) {
	store := NewStore(t.TempDir())

	if got := store.LoadSettingsJSON(); got != EmptySettingsJSON {
		t.Errorf("Expected %q for missing file, got %q", EmptySettingsJSON, got)
	}
}

func TestLoadSettingsJSON_Unreadable(t *testing.T) {
	base := t.TempDir()
	// A directory in place of the file makes the read fail
	if err := os.MkdirAll(filepath.Join(base, ConfigDirName, SettingsFileName), 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}

	got := NewStore(base).LoadSettingsJSON()
	if !strings.HasPrefix(got, "Error reading config file:") {
		t.Errorf("Expected error text, got %q", got)
	}
}

func TestSaveSettingsJSON_RoundTrip(t *testing.T) {
	store := NewStore(t.TempDir())

	contents := `{"global":{}}`
	if err := store.SaveSettingsJSON(contents); err != nil {
		t.Fatalf("Expected save to succeed, got %v", err)
	}

	if got := store.LoadSettingsJSON(); got != contents {
		t.Errorf("Expected %q, got %q", contents, got)
	}

	if _, err := os.Stat(store.SettingsPath() + lockSuffix); err != nil {
		t.Errorf("Expected lock file next to settings: %v", err)
	}
}

func TestSaveSettingsJSON_PreservesFormatting(t *testing.T) {
	store := NewStore(t.TempDir())

	contents := "{\n    \"global\": {\"general\": {\"download_path\": \"./downloads\"}}\n}\n"
	if err := store.SaveSettingsJSON(contents); err != nil {
		t.Fatalf("Expected save to succeed, got %v", err)
	}
	if got := store.LoadSettingsJSON(); got != contents {
		t.Errorf("Expected contents written byte for byte, got %q", got)
	}
}

func TestSaveSettingsJSON_InvalidLeavesFileUntouched(t *testing.T) {
	store := NewStore(t.TempDir())

	original := `{"global":{"module_defaults":{"lyrics":"genius"}}}`
	if err := store.SaveSettingsJSON(original); err != nil {
		t.Fatalf("Expected save to succeed, got %v", err)
	}

	for _, bad := range []string{"{not json", "", `{"a":1}}`} {
		if err := store.SaveSettingsJSON(bad); !errors.Is(err, ErrInvalidJSON) {
			t.Errorf("SaveSettingsJSON(%q): expected ErrInvalidJSON, got %v", bad, err)
		}
	}

	if got := store.LoadSettingsJSON(); got != original {
		t.Errorf("Expected file unchanged, got %q", got)
	}

	entries, _ := os.ReadDir(filepath.Dir(store.SettingsPath()))
	for _, entry := range entries {
		if strings.HasPrefix(entry.Name(), "."+SettingsFileName) {
			t.Errorf("Unexpected temp file left behind: %s", entry.Name())
		}
	}
}

func TestSaveSettingsJSON_InvalidDoesNotCreateFile(t *testing.T) {
	store := NewStore(t.TempDir())

	if err := store.SaveSettingsJSON("{not json"); !errors.Is(err, ErrInvalidJSON) {
		t.Fatalf("Expected ErrInvalidJSON, got %v", err)
	}
	if _, err := os.Stat(store.SettingsPath()); !os.IsNotExist(err) {
		t.Errorf("Expected no settings file, got %v", err)
	}
}

func TestSaveSettingsJSON_Locked(t *testing.T) {
	store := NewStore(t.TempDir())
	if err := store.SaveSettingsJSON(`{}`); err != nil {
		t.Fatalf("Expected save to succeed, got %v", err)
	}

	holder := flock.New(store.SettingsPath() + lockSuffix)
	if _, err := holder.TryLock(); err != nil {
		t.Fatalf("Failed to take lock: %v", err)
	}
	defer holder.Unlock()

	if err := store.SaveSettingsJSON(`{"global":{}}`); !errors.Is(err, ErrLocked) {
		t.Errorf("Expected ErrLocked, got %v", err)
	}
	if got := store.LoadSettingsJSON(); got != `{}` {
		t.Errorf("Expected file unchanged while locked, got %q", got)
	}
}

func TestDefaultModule(t *testing.T) {
	store := NewStore(t.TempDir())

	if _, ok := store.LoadDefaultModule(); ok {
		t.Error("Expected no default module initially")
	}

	if err := store.SaveDefaultModule("  qobuz \n"); err != nil {
		t.Fatalf("Expected save to succeed, got %v", err)
	}

	name, ok := store.LoadDefaultModule()
	if !ok || name != "qobuz" {
		t.Errorf("Expected qobuz, got %q (ok=%v)", name, ok)
	}

	data, _ := os.ReadFile(store.DefaultModulePath())
	if string(data) != "qobuz" {
		t.Errorf("Expected trimmed file contents, got %q", data)
	}
}

func TestInstalledModules(t *testing.T) {
	tests := []struct {
		name     string
		dirs     []string
		files    []string
		expected []string
	}{
		{
			name:     "modules dir",
			dirs:     []string{"modules/tidal", "modules/qobuz", "modules/__pycache__", "modules/example"},
			files:    []string{"modules/readme.txt"},
			expected: []string{"qobuz", "tidal"},
		},
		{
			name:     "nested fallback",
			dirs:     []string{"orpheus/modules/deezer"},
			expected: []string{"deezer"},
		},
		{
			name:     "modules dir wins over fallback",
			dirs:     []string{"modules/qobuz", "orpheus/modules/deezer"},
			expected: []string{"qobuz"},
		},
		{
			name:     "none",
			expected: []string{},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			base := t.TempDir()
			for _, dir := range test.dirs {
				if err := os.MkdirAll(filepath.Join(base, dir), 0755); err != nil {
					t.Fatalf("Failed to create %s: %v", dir, err)
				}
			}
			for _, file := range test.files {
				if err := os.WriteFile(filepath.Join(base, file), nil, 0644); err != nil {
					t.Fatalf("Failed to create %s: %v", file, err)
				}
			}

			got := NewStore(base).InstalledModules()
			if len(got) != len(test.expected) {
				t.Fatalf("Expected %v, got %v", test.expected, got)
			}
			for i := range got {
				if got[i] != test.expected[i] {
					t.Errorf("Expected %v, got %v", test.expected, got)
				}
			}
		})
	}
}

func TestModuleDefaults(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		expected map[string]string
	}{
		{"missing section", `{"global":{}}`, map[string]string{}},
		{"values", `{"global":{"module_defaults":{"lyrics":"genius","covers":"default","credits":3}}}`, map[string]string{"lyrics": "genius", "covers": "default"}},
		{"global not object", `{"global":[]}`, map[string]string{}},
		{"top-level array", `[1,2]`, map[string]string{}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			store := NewStore(t.TempDir())
			if err := store.SaveSettingsJSON(test.contents); err != nil {
				t.Fatalf("Expected save to succeed, got %v", err)
			}

			got := store.ModuleDefaults()
			if len(got) != len(test.expected) {
				t.Fatalf("Expected %v, got %v", test.expected, got)
			}
			for k, v := range test.expected {
				if got[k] != v {
					t.Errorf("Key %s: expected %s, got %s", k, v, got[k])
				}
			}
		})
	}

	if got := NewStore(t.TempDir()).ModuleDefaults(); len(got) != 0 {
		t.Errorf("Expected empty defaults without a file, got %v", got)
	}
}

func TestResolveOverrides(t *testing.T) {
	got := ResolveOverrides("qobuz", map[model.ModuleMode]string{
		model.ModuleModeCovers: "default",
		model.ModuleModeLyrics: "genius",
	})

	expected := map[model.ModuleMode]string{
		model.ModuleModeCovers:  "qobuz",
		model.ModuleModeLyrics:  "genius",
		model.ModuleModeCredits: "qobuz",
	}
	for mode, want := range expected {
		if got[mode] != want {
			t.Errorf("Mode %s: expected %s, got %s", mode, want, got[mode])
		}
	}
}
