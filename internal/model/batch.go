package model

import (
	"fmt"
	"time"
)

// BatchRun represents one execution of the batch worker over a snapshot of entries
type BatchRun struct {
	ID         string
	Items      []QueueEntry // captured at start, never mutated
	Status     BatchStatus
	Succeeded  int
	Failed     int
	StartedAt  time.Time
	FinishedAt time.Time
}

// Clone returns a deep copy safe to hand to another goroutine
func (br *BatchRun) Clone() *BatchRun {
	if br == nil {
		return nil
	}
	cp := *br
	cp.Items = append([]QueueEntry(nil), br.Items...)
	return &cp
}

// GetElapsedString returns run duration formatted as mm:ss or hh:mm:ss, or "—" if not finished
func (br *BatchRun) GetElapsedString() string {
	if br.StartedAt.IsZero() || br.FinishedAt.IsZero() {
		return "—"
	}

	total := int(br.FinishedAt.Sub(br.StartedAt).Seconds())
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}
