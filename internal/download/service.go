package download

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ytget/orpheus-gui/internal/model"
	"github.com/ytget/orpheus-gui/internal/platform"
	"github.com/ytget/orpheus-gui/internal/progress"
	"github.com/ytget/orpheus-gui/internal/provider"
)

// Progress line templates
const (
	LineAlreadyRunning = "Download already in progress."
	LineBatchStarting  = "Starting batch download..."
	LineItemStarting   = "Downloading: %s (ID: %s)"
	LineItemComplete   = "Download complete for %s (ID: %s)."
	LineItemError      = "Error downloading %s: %v"
	LineBatchComplete  = "Batch processing complete."
	LineBatchFatal     = "Fatal error during batch download: %v"
	ToolOutputIndent   = "  "
	RunIDPrefix        = "batch-"
)

var errNoDownloader = errors.New("no download provider configured")

// Service runs at most one batch at a time
type Service struct {
	downloader provider.Downloader
	progress   *progress.Channel
	ensureDir  func(string) error

	mu     sync.Mutex
	status model.BatchStatus
	run    *model.BatchRun
	onLog  func(string) // optional mirror of progress lines
}

// NewService creates a new batch download service
func NewService(downloader provider.Downloader) *Service {
	return &Service{
		downloader: downloader,
		progress:   progress.NewChannel(),
		ensureDir:  platform.CreateDirectoryIfNotExists,
		status:     model.BatchStatusIdle,
	}
}

// SetLogCallback sets a callback that receives every progress line
func (s *Service) SetLogCallback(callback func(string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onLog = callback
}

// Progress returns the progress channel
func (s *Service) Progress() *progress.Channel {
	return s.progress
}

// Status returns the status of the current or last run
func (s *Service) Status() model.BatchStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// IsRunning reports whether the run slot is taken
func (s *Service) IsRunning() bool {
	return s.Status().IsActive()
}

// CurrentRun returns a copy of the current or last run, nil before the first run
func (s *Service) CurrentRun() *model.BatchRun {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.run.Clone()
}

// Start captures a snapshot of items and processes it in the background.
// It returns false without side effects on the active run if one is running.
func (s *Service) Start(items []model.QueueEntry, cfg model.DownloadConfig, onComplete func()) bool {
	s.mu.Lock()
	if s.status.IsActive() {
		s.mu.Unlock()
		s.emit(LineAlreadyRunning)
		return false
	}

	run := &model.BatchRun{
		ID:        generateRunID(),
		Items:     append([]model.QueueEntry(nil), items...),
		Status:    model.BatchStatusRunning,
		StartedAt: time.Now(),
	}
	s.status = model.BatchStatusRunning
	s.run = run
	s.mu.Unlock()

	log.Printf("Batch %s started with %d items", run.ID, len(run.Items))
	s.emit(LineBatchStarting)

	go s.runBatch(run, cfg, onComplete)
	return true
}

// runBatch processes the snapshot in order. The slot is always released and
// onComplete always called, even on setup failure or panic.
func (s *Service) runBatch(run *model.BatchRun, cfg model.DownloadConfig, onComplete func()) {
	defer func() {
		if r := recover(); r != nil {
			s.emit(fmt.Sprintf(LineBatchFatal, r))
		}
		s.finish(run)
		if onComplete != nil {
			onComplete()
		}
	}()

	if err := s.setup(run, cfg); err != nil {
		log.Printf("Batch %s setup failed: %v", run.ID, err)
		s.emit(fmt.Sprintf(LineBatchFatal, err))
		return
	}

	ctx := context.Background()
	for _, entry := range run.Items {
		name := entry.Item.GetDisplayName()
		s.emit(fmt.Sprintf(LineItemStarting, name, entry.Item.ID))

		if err := s.downloadItem(ctx, entry, cfg); err != nil {
			log.Printf("Batch %s item %s failed: %v", run.ID, entry.Item.ID, err)
			s.emit(fmt.Sprintf(LineItemError, name, err))
			s.count(run, false)
			continue
		}

		s.emit(fmt.Sprintf(LineItemComplete, name, entry.Item.ID))
		s.count(run, true)
	}

	s.emit(LineBatchComplete)
}

// setup validates everything that would fail every item alike
func (s *Service) setup(run *model.BatchRun, cfg model.DownloadConfig) error {
	if s.downloader == nil {
		return errNoDownloader
	}
	for _, entry := range run.Items {
		if _, err := model.ParseMediaType(string(entry.MediaType)); err != nil {
			return fmt.Errorf("%s: %w", entry.Item.ID, err)
		}
	}
	if err := s.ensureDir(cfg.DownloadPath); err != nil {
		return fmt.Errorf("failed to create download directory: %w", err)
	}
	return nil
}

// downloadItem calls the provider for one entry, turning panics into errors
func (s *Service) downloadItem(ctx context.Context, entry model.QueueEntry, cfg model.DownloadConfig) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("provider panic: %v", r)
		}
	}()

	req := provider.DownloadRequest{
		Media: map[string][]model.MediaIdentification{
			cfg.ModuleName: {entry.Identification()},
		},
		ModuleOverrides: cfg.ModuleOverrides,
		SDM:             cfg.SDM,
		DestPath:        cfg.DownloadPath,
		Output: func(line string) {
			s.emit(ToolOutputIndent + line)
		},
	}
	return s.downloader.Download(ctx, req)
}

func (s *Service) count(run *model.BatchRun, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if ok {
		run.Succeeded++
	} else {
		run.Failed++
	}
}

// finish marks the run completed and releases the slot
func (s *Service) finish(run *model.BatchRun) {
	s.mu.Lock()
	run.Status = model.BatchStatusCompleted
	run.FinishedAt = time.Now()
	s.status = model.BatchStatusCompleted
	s.mu.Unlock()

	log.Printf("Batch %s finished: %d ok, %d failed in %s", run.ID, run.Succeeded, run.Failed, run.GetElapsedString())
}

// emit pushes a line to the progress channel and the optional callback
func (s *Service) emit(line string) {
	s.progress.Push(line)

	s.mu.Lock()
	callback := s.onLog
	s.mu.Unlock()
	if callback != nil {
		callback(line)
	}
}

// generateRunID generates a unique, time-ordered run ID using UUID v7
func generateRunID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Sprintf(RunIDPrefix+"%d", time.Now().UnixNano())
	}
	return RunIDPrefix + id.String()
}
