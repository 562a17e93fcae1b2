package download

import (
	"github.com/ytget/orpheus-gui/internal/model"
	"github.com/ytget/orpheus-gui/internal/progress"
)

// Batcher defines the interface for the batch download service.
type Batcher interface {
	// Start launches a run over items; false if a run is already active
	Start(items []model.QueueEntry, cfg model.DownloadConfig, onComplete func()) bool

	Status() model.BatchStatus
	IsRunning() bool
	CurrentRun() *model.BatchRun

	// Progress returns the channel the UI polls for log lines
	Progress() *progress.Channel

	SetLogCallback(func(string))
}
