package config

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/orpheus-gui/internal/model"
	"github.com/ytget/orpheus-gui/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyBaseDir        = "toolkit_base_directory"
	KeyDownloadDir    = "download_directory"
	KeySearchLimit    = "search_limit"
	KeySearchType     = "search_type"
	KeyLastModule     = "last_module"
	KeyCoversModule   = "override_covers_module"
	KeyLyricsModule   = "override_lyrics_module"
	KeyCreditsModule  = "override_credits_module"
	KeyLanguage       = "app_language"
	KeyPythonCommand  = "python_command"
	KeyMaxLogLines    = "max_log_lines"
	KeyConfirmOnClear = "confirm_on_clear"
)

// Default values
const (
	DefaultSearchLimit    = 20
	MinSearchLimit        = 1
	MaxSearchLimit        = 100
	DefaultSearchType     = model.MediaTypeTrack
	DefaultLanguage       = "system"
	DefaultPythonCommand  = "python3"
	DefaultMaxLogLines    = 2000
	DefaultConfirmOnClear = true
	DefaultFallbackDir    = "downloads"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetBaseDirectory returns the toolkit installation directory. When unset
// it is discovered once and stored.
func (s *Settings) GetBaseDirectory() string {
	dir := s.app.Preferences().String(KeyBaseDir)
	if dir == "" {
		found, ok := platform.FindToolkitDir()
		if !ok {
			return "."
		}
		s.SetBaseDirectory(found)
		return found
	}
	return dir
}

// SetBaseDirectory sets the toolkit installation directory
func (s *Settings) SetBaseDirectory(dir string) {
	s.app.Preferences().SetString(KeyBaseDir, dir)
}

// GetDownloadDirectory returns the configured download directory
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = DefaultFallbackDir
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the download directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetSearchLimit returns the maximum number of search results
func (s *Settings) GetSearchLimit() int {
	value := s.app.Preferences().Int(KeySearchLimit)
	if value <= 0 {
		s.SetSearchLimit(DefaultSearchLimit)
		return DefaultSearchLimit
	}
	return value
}

// SetSearchLimit sets the search limit, clamped to 1..100
func (s *Settings) SetSearchLimit(limit int) {
	if limit < MinSearchLimit {
		limit = MinSearchLimit
	}
	if limit > MaxSearchLimit {
		limit = MaxSearchLimit
	}
	s.app.Preferences().SetInt(KeySearchLimit, limit)
}

// GetSearchType returns the last used search type
func (s *Settings) GetSearchType() model.MediaType {
	mt, err := model.ParseMediaType(s.app.Preferences().String(KeySearchType))
	if err != nil {
		s.SetSearchType(DefaultSearchType)
		return DefaultSearchType
	}
	return mt
}

// SetSearchType stores the search type
func (s *Settings) SetSearchType(mt model.MediaType) {
	s.app.Preferences().SetString(KeySearchType, string(mt))
}

// GetLastModule returns the last selected module, empty if none
func (s *Settings) GetLastModule() string {
	return s.app.Preferences().String(KeyLastModule)
}

// SetLastModule stores the selected module
func (s *Settings) SetLastModule(name string) {
	s.app.Preferences().SetString(KeyLastModule, name)
}

// GetModuleOverride returns the module used for a mode, "default" if unset
func (s *Settings) GetModuleOverride(mode model.ModuleMode) string {
	key := overrideKey(mode)
	if key == "" {
		return model.DefaultModuleOverride
	}
	return s.app.Preferences().StringWithFallback(key, model.DefaultModuleOverride)
}

// SetModuleOverride stores the module used for a mode
func (s *Settings) SetModuleOverride(mode model.ModuleMode, module string) {
	key := overrideKey(mode)
	if key == "" {
		return
	}
	if module == "" {
		module = model.DefaultModuleOverride
	}
	s.app.Preferences().SetString(key, module)
}

func overrideKey(mode model.ModuleMode) string {
	switch mode {
	case model.ModuleModeCovers:
		return KeyCoversModule
	case model.ModuleModeLyrics:
		return KeyLyricsModule
	case model.ModuleModeCredits:
		return KeyCreditsModule
	}
	return ""
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetPythonCommand returns the interpreter used to run the toolkit
func (s *Settings) GetPythonCommand() string {
	return s.app.Preferences().StringWithFallback(KeyPythonCommand, DefaultPythonCommand)
}

// SetPythonCommand sets the interpreter, resetting to the default when empty
func (s *Settings) SetPythonCommand(command string) {
	if command == "" {
		command = DefaultPythonCommand
	}
	s.app.Preferences().SetString(KeyPythonCommand, command)
}

// GetMaxLogLines returns how many lines a log view keeps
func (s *Settings) GetMaxLogLines() int {
	value := s.app.Preferences().Int(KeyMaxLogLines)
	if value <= 0 {
		return DefaultMaxLogLines
	}
	return value
}

// SetMaxLogLines sets how many lines a log view keeps
func (s *Settings) SetMaxLogLines(n int) {
	s.app.Preferences().SetInt(KeyMaxLogLines, n)
}

// GetConfirmOnClear returns whether clearing the queue asks first
func (s *Settings) GetConfirmOnClear() bool {
	return s.app.Preferences().BoolWithFallback(KeyConfirmOnClear, DefaultConfirmOnClear)
}

// SetConfirmOnClear sets whether clearing the queue asks first
func (s *Settings) SetConfirmOnClear(confirm bool) {
	s.app.Preferences().SetBool(KeyConfirmOnClear, confirm)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
