package command

import (
	"github.com/ytget/orpheus-gui/internal/progress"
)

// Executor defines the interface for the manual command runner.
type Executor interface {
	// Run starts args in the background and returns the run ID
	Run(args []string) string
	Stop(runID string) error
	Active() int
	Progress() *progress.Channel
	SetWorkDir(dir string)
}
