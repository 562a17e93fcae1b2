package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gofrs/flock"

	"github.com/ytget/orpheus-gui/internal/model"
)

// Toolkit file layout relative to the base directory
const (
	ConfigDirName         = "config"
	SettingsFileName      = "settings.json"
	DefaultModuleFileName = "default_module.txt"
	ModulesDirName        = "modules"
	NestedToolkitDirName  = "orpheus"
	EmptySettingsJSON     = "{}"
	lockSuffix            = ".lock"
	filePermissions       = 0644
)

// ExcludedModuleDirs are never reported as installed modules
var ExcludedModuleDirs = []string{"__pycache__", "example"}

var (
	// ErrInvalidJSON is returned when settings contents do not parse
	ErrInvalidJSON = errors.New("invalid JSON format")

	// ErrLocked is returned when another writer holds the file lock
	ErrLocked = errors.New("configuration file is locked")
)

// Store reads and writes the toolkit's own configuration files
type Store struct {
	baseDir string
}

// NewStore creates a store rooted at the toolkit base directory
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// BaseDir returns the toolkit base directory
func (s *Store) BaseDir() string {
	return s.baseDir
}

// SettingsPath returns the path of settings.json
func (s *Store) SettingsPath() string {
	return filepath.Join(s.baseDir, ConfigDirName, SettingsFileName)
}

// DefaultModulePath returns the path of default_module.txt
func (s *Store) DefaultModulePath() string {
	return filepath.Join(s.baseDir, DefaultModuleFileName)
}

// LoadSettingsJSON returns the raw settings file. A missing file yields "{}";
// a read failure yields an error text so the editor can show it.
func (s *Store) LoadSettingsJSON() string {
	data, err := os.ReadFile(s.SettingsPath())
	if err != nil {
		if os.IsNotExist(err) {
			return EmptySettingsJSON
		}
		return fmt.Sprintf("Error reading config file: %v", err)
	}
	return string(data)
}

// SaveSettingsJSON validates contents and replaces settings.json with it
// byte for byte. Invalid JSON leaves the existing file untouched.
func (s *Store) SaveSettingsJSON(contents string) error {
	if !json.Valid([]byte(contents)) {
		return ErrInvalidJSON
	}

	configDir := filepath.Join(s.baseDir, ConfigDirName)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := writeFileLocked(s.SettingsPath(), []byte(contents)); err != nil {
		log.Printf("Error saving config file: %v", err)
		return err
	}
	return nil
}

// LoadDefaultModule returns the trimmed default module name, false if none
func (s *Store) LoadDefaultModule() (string, bool) {
	data, err := os.ReadFile(s.DefaultModulePath())
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Error reading default module file: %v", err)
		}
		return "", false
	}
	name := strings.TrimSpace(string(data))
	return name, name != ""
}

// SaveDefaultModule stores the trimmed module name
func (s *Store) SaveDefaultModule(name string) error {
	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return fmt.Errorf("failed to create base directory: %w", err)
	}
	return writeFileLocked(s.DefaultModulePath(), []byte(strings.TrimSpace(name)))
}

// InstalledModules lists module directories under <base>/modules, falling
// back to <base>/orpheus/modules. The result is sorted.
func (s *Store) InstalledModules() []string {
	dir := filepath.Join(s.baseDir, ModulesDirName)
	if !isDir(dir) {
		dir = filepath.Join(s.baseDir, NestedToolkitDirName, ModulesDirName)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return []string{}
	}

	modules := []string{}
	for _, entry := range entries {
		if !entry.IsDir() || isExcludedModule(entry.Name()) {
			continue
		}
		modules = append(modules, entry.Name())
	}
	sort.Strings(modules)
	return modules
}

// ModuleDefaults returns global.module_defaults from settings.json, empty on
// any error or non-string values.
func (s *Store) ModuleDefaults() map[string]string {
	defaults := map[string]string{}

	data, err := os.ReadFile(s.SettingsPath())
	if err != nil {
		return defaults
	}

	var settings struct {
		Global struct {
			ModuleDefaults map[string]any `json:"module_defaults"`
		} `json:"global"`
	}
	if err := json.Unmarshal(data, &settings); err != nil {
		return defaults
	}

	for mode, value := range settings.Global.ModuleDefaults {
		if name, ok := value.(string); ok {
			defaults[mode] = name
		}
	}
	return defaults
}

// ResolveOverrides maps every module mode to a concrete module: an empty or
// "default" choice becomes the main module.
func ResolveOverrides(mainModule string, choices map[model.ModuleMode]string) map[model.ModuleMode]string {
	resolved := make(map[model.ModuleMode]string, len(model.ModuleModes))
	for _, mode := range model.ModuleModes {
		choice := strings.TrimSpace(choices[mode])
		if choice == "" || choice == model.DefaultModuleOverride {
			choice = mainModule
		}
		resolved[mode] = choice
	}
	return resolved
}

// writeFileLocked writes data to a temp file and renames it over path while
// holding a lock file next to it.
func writeFileLocked(path string, data []byte) error {
	lock := flock.New(path + lockSuffix)
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("failed to lock %s: %w", path, err)
	}
	if !locked {
		return fmt.Errorf("%w: %s", ErrLocked, path)
	}
	defer lock.Unlock()

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, filePermissions); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func isExcludedModule(name string) bool {
	for _, excluded := range ExcludedModuleDirs {
		if name == excluded {
			return true
		}
	}
	return false
}
