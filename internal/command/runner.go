package command

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/orpheus-gui/internal/progress"
)

// Output line templates
const (
	LineRunning      = "Running: %s"
	LineComplete     = "Command complete."
	LineStopped      = "Command stopped."
	LineError        = "Error: %v"
	LineEmptyCommand = "Error: empty command"
	RunIDPrefix      = "cmd-"
	maxLineSize      = 1024 * 1024

	// stopWaitDelay bounds how long children of an exited or stopped command may hold the output pipe
	stopWaitDelay = 2 * time.Second
)

// ErrRunNotFound is returned by Stop for unknown or finished runs
var ErrRunNotFound = errors.New("command run not found")

// Runner executes manual commands. Runs are independent of each other and of
// any batch download.
type Runner struct {
	progress *progress.Channel

	mu      sync.Mutex
	workDir string
	active  map[string]context.CancelFunc
}

// NewRunner creates a runner with its own progress channel
func NewRunner() *Runner {
	return &Runner{
		progress: progress.NewChannel(),
		active:   make(map[string]context.CancelFunc),
	}
}

// Progress returns the channel the UI polls for command output
func (r *Runner) Progress() *progress.Channel {
	return r.progress
}

// SetWorkDir sets the working directory for subsequent runs
func (r *Runner) SetWorkDir(dir string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.workDir = dir
}

// Active returns the number of runs still in flight
func (r *Runner) Active() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.active)
}

// Run pushes the "Running:" line and spawns args in the background. Spawn
// failures are reported as an error line, never returned. An empty argument
// list yields an error line and an empty run ID.
func (r *Runner) Run(args []string) string {
	if len(args) == 0 {
		r.progress.Push(LineEmptyCommand)
		return ""
	}

	r.progress.Push(fmt.Sprintf(LineRunning, strings.Join(args, " ")))

	ctx, cancel := context.WithCancel(context.Background())
	runID := generateRunID()

	r.mu.Lock()
	r.active[runID] = cancel
	workDir := r.workDir
	r.mu.Unlock()

	argv := append([]string(nil), args...)
	go r.execute(ctx, runID, workDir, argv)

	return runID
}

// Stop cancels a running command
func (r *Runner) Stop(runID string) error {
	r.mu.Lock()
	cancel, ok := r.active[runID]
	r.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", ErrRunNotFound, runID)
	}
	cancel()
	return nil
}

func (r *Runner) execute(ctx context.Context, runID, workDir string, args []string) {
	defer r.release(runID)

	if ctx.Err() != nil {
		r.finishStopped(runID)
		return
	}

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = workDir
	cmd.WaitDelay = stopWaitDelay

	reader, writer := io.Pipe()
	cmd.Stdout = writer
	cmd.Stderr = writer

	if err := cmd.Start(); err != nil {
		writer.Close()
		reader.Close()
		if ctx.Err() != nil {
			r.finishStopped(runID)
			return
		}
		log.Printf("Command %s failed to start: %v", runID, err)
		r.progress.Push(fmt.Sprintf(LineError, err))
		return
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		scanner := bufio.NewScanner(reader)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			r.progress.Push(strings.TrimRight(scanner.Text(), "\r"))
		}
		if err := scanner.Err(); err != nil {
			log.Printf("Command %s output truncated: %v", runID, err)
		}
		io.Copy(io.Discard, reader)
	}()

	err := cmd.Wait()
	writer.Close()
	<-done
	reader.Close()

	if ctx.Err() != nil {
		r.finishStopped(runID)
		return
	}
	if err != nil {
		log.Printf("Command %s exited: %v", runID, err)
	}
	r.progress.Push(LineComplete)
}

// finishStopped ends a run cancelled by Stop, whether or not it had spawned
func (r *Runner) finishStopped(runID string) {
	log.Printf("Command %s stopped", runID)
	r.progress.Push(LineStopped)
	r.progress.Push(LineComplete)
}

func (r *Runner) release(runID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cancel, ok := r.active[runID]; ok {
		cancel()
		delete(r.active, runID)
	}
}

// SplitCommand splits a command line on whitespace
func SplitCommand(text string) []string {
	return strings.Fields(text)
}

// generateRunID generates a unique, time-ordered run ID using UUID v7
func generateRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(RunIDPrefix+"%d", time.Now().UnixNano())
	}
	return RunIDPrefix + id.String()
}
