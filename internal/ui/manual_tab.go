package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ManualTab runs ad-hoc commands and shows their output
type ManualTab struct {
	ui *RootUI

	commandEntry *widget.Entry
	runBtn       *widget.Button
	output       *LogView

	content fyne.CanvasObject
}

// NewManualTab builds the manual command tab
func NewManualTab(ui *RootUI) *ManualTab {
	mt := &ManualTab{ui: ui}
	mt.createUI()
	return mt
}

// Container returns the tab content
func (mt *ManualTab) Container() fyne.CanvasObject {
	return mt.content
}

func (mt *ManualTab) createUI() {
	l := mt.ui.localization

	mt.commandEntry = widget.NewEntry()
	mt.commandEntry.SetPlaceHolder(l.GetText(KeyEnterCommand))
	mt.commandEntry.OnSubmitted = func(string) { mt.onRun() }

	mt.runBtn = widget.NewButton(l.GetText(KeyRun), mt.onRun)
	mt.runBtn.Importance = widget.HighImportance

	mt.output = NewLogView(mt.ui.svc.Settings.GetMaxLogLines())

	top := container.NewBorder(nil, nil, nil, mt.runBtn, mt.commandEntry)
	mt.content = container.NewBorder(top, nil, nil, nil, mt.output.Widget())
}

func (mt *ManualTab) onRun() {
	if mt.ui.svc.Runner == nil {
		return
	}
	mt.ui.runCommand(strings.TrimSpace(mt.commandEntry.Text))
}

func (mt *ManualTab) refreshTexts() {
	mt.commandEntry.SetPlaceHolder(mt.ui.localization.GetText(KeyEnterCommand))
	mt.runBtn.SetText(mt.ui.localization.GetText(KeyRun))
}
