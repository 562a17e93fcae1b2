package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/orpheus-gui/internal/model"
	"github.com/ytget/orpheus-gui/internal/search"
)

// BatchTab shows the queue and the batch download log
type BatchTab struct {
	ui *RootUI

	items       []model.QueueEntry
	queueList   *widget.List
	selected    int
	removeBtn   *widget.Button
	downloadBtn *widget.Button
	clearBtn    *widget.Button
	folderBtn   *widget.Button
	log         *LogView

	content fyne.CanvasObject
}

// NewBatchTab builds the batch tab
func NewBatchTab(ui *RootUI) *BatchTab {
	bt := &BatchTab{ui: ui, selected: -1}
	bt.createUI()
	return bt
}

// Container returns the tab content
func (bt *BatchTab) Container() fyne.CanvasObject {
	return bt.content
}

func (bt *BatchTab) createUI() {
	l := bt.ui.localization

	bt.queueList = widget.NewList(
		func() int { return len(bt.items) },
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < len(bt.items) {
				obj.(*widget.Label).SetText(search.FormatQueueEntry(id, bt.items[id]))
			}
		},
	)
	bt.queueList.OnSelected = func(id widget.ListItemID) {
		bt.selected = id
		if !bt.batchRunning() {
			bt.removeBtn.Enable()
		}
	}
	bt.queueList.OnUnselected = func(widget.ListItemID) {
		bt.selected = -1
		bt.removeBtn.Disable()
	}

	bt.removeBtn = widget.NewButton(l.GetText(KeyRemoveSelected), bt.onRemove)
	bt.removeBtn.Disable()

	bt.downloadBtn = widget.NewButton(IconPlay+" "+l.GetText(KeyDownloadBatch), bt.ui.startBatch)
	bt.downloadBtn.Importance = widget.HighImportance

	bt.clearBtn = widget.NewButton(l.GetText(KeyClearQueue), bt.onClear)
	bt.folderBtn = widget.NewButton(IconFolder+" "+l.GetText(KeyOpenFolder), bt.ui.openDownloadFolder)

	bt.log = NewLogView(bt.ui.svc.Settings.GetMaxLogLines())
	logScroll := container.NewStack(bt.log.Widget())

	buttons := container.NewHBox(bt.removeBtn, bt.clearBtn, bt.folderBtn)
	queuePane := container.NewBorder(nil, container.NewBorder(nil, nil, buttons, bt.downloadBtn), nil, nil, bt.queueList)

	split := container.NewVSplit(queuePane, logScroll)
	split.SetOffset(0.45)
	bt.content = split

	bt.refresh()
	if bt.ui.svc.Batch != nil {
		bt.setRunning(bt.ui.svc.Batch.IsRunning())
	}
}

func (bt *BatchTab) onRemove() {
	if bt.selected < 0 || bt.batchRunning() {
		return
	}
	index := bt.selected
	bt.queueList.UnselectAll()
	bt.ui.removeFromQueue(index)
}

func (bt *BatchTab) onClear() {
	if bt.ui.svc.Queue.Len() == 0 {
		return
	}
	if !bt.ui.svc.Settings.GetConfirmOnClear() {
		bt.ui.clearQueue()
		return
	}
	dialog.ShowConfirm(bt.ui.localization.GetText(KeyClearQueue), bt.ui.localization.GetText(KeyConfirmClear), func(ok bool) {
		if ok {
			bt.ui.clearQueue()
		}
	}, bt.ui.window)
}

// setRunning disables queue mutation while a batch runs
func (bt *BatchTab) setRunning(running bool) {
	if running {
		bt.downloadBtn.Disable()
		bt.clearBtn.Disable()
		bt.removeBtn.Disable()
		return
	}
	bt.downloadBtn.Enable()
	bt.clearBtn.Enable()
	if bt.selected >= 0 {
		bt.removeBtn.Enable()
	}
}

func (bt *BatchTab) batchRunning() bool {
	return bt.ui.svc.Batch != nil && bt.ui.svc.Batch.IsRunning()
}

// refresh reloads the queue snapshot
func (bt *BatchTab) refresh() {
	bt.items = bt.ui.svc.Queue.Items()
	if bt.selected >= len(bt.items) {
		bt.queueList.UnselectAll()
	}
	bt.queueList.Refresh()
}

func (bt *BatchTab) refreshTexts() {
	l := bt.ui.localization
	bt.removeBtn.SetText(l.GetText(KeyRemoveSelected))
	bt.downloadBtn.SetText(IconPlay + " " + l.GetText(KeyDownloadBatch))
	bt.clearBtn.SetText(l.GetText(KeyClearQueue))
	bt.folderBtn.SetText(IconFolder + " " + l.GetText(KeyOpenFolder))
}
