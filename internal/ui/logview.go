package ui

import (
	"strings"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/orpheus-gui/internal/progress"
)

// LogView is a read-only multi-line log that keeps the newest maxLines lines
type LogView struct {
	entry    *widget.Entry
	lines    []string
	maxLines int
}

// NewLogView creates a log view keeping at most maxLines lines
func NewLogView(maxLines int) *LogView {
	entry := widget.NewMultiLineEntry()
	entry.Wrapping = fyne.TextWrapWord
	entry.TextStyle = fyne.TextStyle{Monospace: true}
	entry.Disable()

	return &LogView{entry: entry, maxLines: maxLines}
}

// Widget returns the underlying widget
func (lv *LogView) Widget() fyne.CanvasObject {
	return lv.entry
}

// Append adds lines and scrolls to the end. Must run on the UI goroutine.
func (lv *LogView) Append(lines ...string) {
	if len(lines) == 0 {
		return
	}
	for _, line := range lines {
		lv.lines = append(lv.lines, strings.Split(strings.TrimRight(line, "\n"), "\n")...)
	}
	if lv.maxLines > 0 && len(lv.lines) > lv.maxLines {
		lv.lines = append([]string(nil), lv.lines[len(lv.lines)-lv.maxLines:]...)
	}
	lv.entry.SetText(strings.Join(lv.lines, "\n"))
	lv.entry.CursorRow = len(lv.lines)
	lv.entry.Refresh()
}

// Clear empties the log
func (lv *LogView) Clear() {
	lv.lines = nil
	lv.entry.SetText("")
}

// Lines returns a copy of the visible lines
func (lv *LogView) Lines() []string {
	return append([]string(nil), lv.lines...)
}

// ChannelPoller drains a progress channel into a sink on the UI goroutine
type ChannelPoller struct {
	ch   *progress.Channel
	sink func(lines []string)
	stop chan struct{}
	once sync.Once
}

// NewChannelPoller creates a poller; call Start to begin polling
func NewChannelPoller(ch *progress.Channel, sink func(lines []string)) *ChannelPoller {
	return &ChannelPoller{ch: ch, sink: sink, stop: make(chan struct{})}
}

// Start polls on a ticker and whenever the channel signals new lines
func (p *ChannelPoller) Start(interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-p.stop:
				return
			case <-ticker.C:
			case <-p.ch.Notify():
			}
			p.Flush()
		}
	}()
}

// Flush delivers any pending lines immediately
func (p *ChannelPoller) Flush() {
	lines := p.ch.Drain()
	if len(lines) == 0 {
		return
	}
	fyne.Do(func() { p.sink(lines) })
}

// Stop ends polling
func (p *ChannelPoller) Stop() {
	p.once.Do(func() { close(p.stop) })
}
