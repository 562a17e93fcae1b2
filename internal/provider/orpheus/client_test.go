package orpheus

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/ytget/orpheus-gui/internal/model"
	"github.com/ytget/orpheus-gui/internal/provider"
)

// writeFakePython writes a shell script standing in for the interpreter
func writeFakePython(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	path := filepath.Join(t.TempDir(), "python")
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0755); err != nil {
		t.Fatalf("Failed to write fake interpreter: %v", err)
	}
	return path
}

func TestNewClient_DefaultPython(t *testing.T) {
	client := NewClient("/opt/orpheus", "")

	if client.python != DefaultPython {
		t.Errorf("Expected python to be '%s', got '%s'", DefaultPython, client.python)
	}
	if client.baseDir != "/opt/orpheus" {
		t.Errorf("Expected baseDir to be '/opt/orpheus', got '%s'", client.baseDir)
	}
}

func TestValidate(t *testing.T) {
	dir := t.TempDir()
	client := NewClient(dir, "")

	if err := client.Validate(); err == nil {
		t.Error("Expected error when orpheus.py is missing")
	}

	if err := os.WriteFile(filepath.Join(dir, EntryScript), []byte(""), 0644); err != nil {
		t.Fatalf("Failed to create entry script: %v", err)
	}
	if err := client.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}
}

func TestBuildDownloadArgs(t *testing.T) {
	client := NewClient("/opt/orpheus", "")
	req := provider.DownloadRequest{
		DestPath: "./downloads",
		SDM:      "qobuz",
		ModuleOverrides: map[model.ModuleMode]string{
			model.ModuleModeCovers:  "qobuz",
			model.ModuleModeLyrics:  "genius",
			model.ModuleModeCredits: "default",
		},
	}

	args := client.BuildDownloadArgs("qobuz", model.MediaIdentification{Type: model.MediaTypeTrack, ID: "52151405"}, req)
	expected := []string{
		EntryScript,
		OutputFlag, "./downloads",
		LyricsFlag, "genius",
		DownloadMode, "qobuz", "track", "52151405",
	}

	if len(args) != len(expected) {
		t.Fatalf("Expected %d args, got %d: %v", len(expected), len(args), args)
	}
	for i, want := range expected {
		if args[i] != want {
			t.Errorf("Arg %d: expected %s, got %s", i, want, args[i])
		}
	}
}

func TestBuildDownloadArgs_SeparateModule(t *testing.T) {
	client := NewClient("/opt/orpheus", "")
	req := provider.DownloadRequest{SDM: "deezer"}

	args := client.BuildDownloadArgs("qobuz", model.MediaIdentification{Type: model.MediaTypeAlbum, ID: "1"}, req)
	joined := strings.Join(args, " ")

	if !strings.Contains(joined, SeparateModuleFlag+" deezer") {
		t.Errorf("Expected separate download module flag, got %s", joined)
	}
	if strings.Contains(joined, OutputFlag) {
		t.Errorf("Expected no output flag without DestPath, got %s", joined)
	}
}

func TestDownload_StreamsOutput(t *testing.T) {
	python := writeFakePython(t, `echo "mode=$4 module=$5 type=$6 id=$7"; echo "warning" 1>&2`)
	client := NewClient(t.TempDir(), python)

	var lines []string
	req := provider.DownloadRequest{
		Media: map[string][]model.MediaIdentification{
			"qobuz": {{Type: model.MediaTypeTrack, ID: "42"}},
		},
		DestPath: "out",
		Output:   func(line string) { lines = append(lines, line) },
	}

	if err := client.Download(context.Background(), req); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	joined := strings.Join(lines, "\n")
	if !strings.Contains(joined, "mode=download module=qobuz type=track id=42") {
		t.Errorf("Expected stdout line with arguments, got %q", joined)
	}
	if !strings.Contains(joined, "warning") {
		t.Errorf("Expected stderr to be merged into output, got %q", joined)
	}
}

func TestDownload_Failure(t *testing.T) {
	python := writeFakePython(t, `echo "Invalid credentials"; exit 3`)
	client := NewClient(t.TempDir(), python)

	req := provider.DownloadRequest{
		Media: map[string][]model.MediaIdentification{
			"qobuz": {{Type: model.MediaTypeTrack, ID: "42"}},
		},
	}

	err := client.Download(context.Background(), req)
	if err == nil {
		t.Fatal("Expected error for non-zero exit, got nil")
	}
	if !strings.Contains(err.Error(), "Invalid credentials") {
		t.Errorf("Expected error to carry last output line, got %v", err)
	}
}

func TestDownload_MissingInterpreter(t *testing.T) {
	client := NewClient(t.TempDir(), filepath.Join(t.TempDir(), "no-such-python"))

	req := provider.DownloadRequest{
		Media: map[string][]model.MediaIdentification{
			"qobuz": {{Type: model.MediaTypeTrack, ID: "42"}},
		},
	}

	if err := client.Download(context.Background(), req); err == nil {
		t.Error("Expected error when interpreter is missing")
	}
}

func TestModule_Search(t *testing.T) {
	body := `echo "Loading module $3"
printf '%s[{"result_id":"42","name":"%s","artists":["Miles Davis","John Coltrane"],"year":"1959","duration":562,"explicit":true,"additional":["24bit"]},{"result_id":"43","name":"%s-%s"}]\n' "` + ResultsPrefix + `" "$5" "$4" "$6"`
	python := writeFakePython(t, body)
	client := NewClient(t.TempDir(), python)

	module, err := client.Module("qobuz")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if module.Name() != "qobuz" {
		t.Errorf("Expected module name 'qobuz', got '%s'", module.Name())
	}

	results, err := module.Search(context.Background(), model.MediaTypeAlbum, "kind of blue", 5)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d: %+v", len(results), results)
	}

	first := results[0]
	if first.ID != "42" || first.Name != "kind of blue" {
		t.Errorf("Expected id 42 named after the query, got %+v", first)
	}
	if len(first.Artists) != 2 || first.Artists[1] != "John Coltrane" {
		t.Errorf("Expected two artists, got %v", first.Artists)
	}
	if first.Year != "1959" || first.DurationSeconds != 562 || !first.Explicit {
		t.Errorf("Expected year, duration and explicit flag to be decoded, got %+v", first)
	}
	if len(first.Additional) != 1 || first.Additional[0] != "24bit" {
		t.Errorf("Expected additional tags [24bit], got %v", first.Additional)
	}

	if results[1].Name != "album-5" {
		t.Errorf("Expected media type and limit to reach the script, got name %q", results[1].Name)
	}

	if _, err := client.Module(""); !errors.Is(err, provider.ErrUnknownModule) {
		t.Errorf("Expected ErrUnknownModule for empty name, got %v", err)
	}
}

func TestSearch_RunsInBaseDir(t *testing.T) {
	base := t.TempDir()
	marker := filepath.Join(base, "seen")
	python := writeFakePython(t, `touch seen; echo '`+ResultsPrefix+`[]'`)
	client := NewClient(base, python)

	results, err := client.Search(context.Background(), "tidal", model.MediaTypeTrack, "q", 1)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(results) != 0 {
		t.Errorf("Expected no results, got %d", len(results))
	}
	if _, err := os.Stat(marker); err != nil {
		t.Errorf("Expected the interpreter to run in the toolkit directory: %v", err)
	}
}

func TestSearch_Failures(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		contains string
		target   error
	}{
		{
			name:     "toolkit error",
			body:     `echo "KeyError: 'nosuchtype'" 1>&2; exit 1`,
			contains: "KeyError",
		},
		{
			name:   "no results line",
			body:   `echo "nothing here"`,
			target: ErrNoResultsLine,
		},
		{
			name:     "malformed results",
			body:     `echo '` + ResultsPrefix + `{not json'`,
			contains: "failed to parse search results",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			client := NewClient(t.TempDir(), writeFakePython(t, test.body))

			_, err := client.Search(context.Background(), "qobuz", model.MediaTypeTrack, "q", 10)
			if err == nil {
				t.Fatal("Expected error, got nil")
			}
			if test.target != nil && !errors.Is(err, test.target) {
				t.Errorf("Expected %v, got %v", test.target, err)
			}
			if test.contains != "" && !strings.Contains(err.Error(), test.contains) {
				t.Errorf("Expected error to contain %q, got %v", test.contains, err)
			}
		})
	}
}

func TestBuildSearchArgs(t *testing.T) {
	client := NewClient("/opt/orpheus", "")

	args := client.BuildSearchArgs("qobuz", model.MediaTypeArtist, "miles davis", 20)
	if len(args) != 6 {
		t.Fatalf("Expected 6 args, got %d: %v", len(args), args)
	}
	if args[0] != "-c" || args[1] != searchScript {
		t.Errorf("Expected inline search script, got %q %q", args[0], args[1])
	}
	expected := []string{"qobuz", "artist", "miles davis", "20"}
	for i, want := range expected {
		if args[i+2] != want {
			t.Errorf("Arg %d: expected %s, got %s", i+2, want, args[i+2])
		}
	}
	if got := describeArgs(args); strings.Contains(got, "importlib") {
		t.Errorf("Expected script to be left out of the log, got %q", got)
	}
}
