package platform

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// ToolkitEntryPoint is the script that marks an OrpheusDL installation
const ToolkitEntryPoint = "orpheus.py"

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// Interpreter names tried in order
var (
	PythonCandidates = []string{"python3", "python"}
)

// ErrPythonNotFound is returned when no interpreter is on PATH
var ErrPythonNotFound = errors.New("python interpreter not found")

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if dirPath == "" {
		return fmt.Errorf("directory path is empty")
	}
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, "Downloads"), nil
}

// IsToolkitDir reports whether dir contains the toolkit entry point
func IsToolkitDir(dir string) bool {
	info, err := os.Stat(filepath.Join(dir, ToolkitEntryPoint))
	return err == nil && !info.IsDir()
}

// FindToolkitDir returns the first candidate directory holding the toolkit.
// The working directory and the executable's directory are tried after the
// explicit candidates.
func FindToolkitDir(candidates ...string) (string, bool) {
	if wd, err := os.Getwd(); err == nil {
		candidates = append(candidates, wd)
	}
	if exe, err := os.Executable(); err == nil {
		candidates = append(candidates, filepath.Dir(exe))
	}

	for _, dir := range candidates {
		if dir == "" {
			continue
		}
		if IsToolkitDir(dir) {
			abs, err := filepath.Abs(dir)
			if err != nil {
				return dir, true
			}
			return abs, true
		}
	}
	return "", false
}

// FindPython returns the first interpreter found on PATH
func FindPython() (string, error) {
	for _, name := range PythonCandidates {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", ErrPythonNotFound
}

// OpenFolder opens a directory in the system file manager
func OpenFolder(dirPath string) error {
	info, err := os.Stat(dirPath)
	if err != nil {
		return fmt.Errorf("folder does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a folder: %s", dirPath)
	}

	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, absPath).Run()
	case OSLinux:
		return openFolderLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFolderLinux tries xdg-open, then common file managers
func openFolderLinux(dir string) error {
	if err := exec.Command(XDGOpenCommand, dir).Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dir).Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}
