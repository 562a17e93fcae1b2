package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/orpheus-gui/internal/model"
	"github.com/ytget/orpheus-gui/internal/search"
)

// SearchTab lets the user search a module and queue results
type SearchTab struct {
	ui *RootUI

	moduleLabel  *widget.Label
	typeLabel    *widget.Label
	moduleSelect *widget.Select
	typeSelect   *widget.Select
	queryEntry   *widget.Entry
	searchBtn    *widget.Button
	addBtn       *widget.Button
	statusLabel  *widget.Label
	resultList   *widget.List
	selected     int

	content fyne.CanvasObject
}

// NewSearchTab builds the search tab
func NewSearchTab(ui *RootUI) *SearchTab {
	st := &SearchTab{ui: ui, selected: -1}
	st.createUI()
	return st
}

// Container returns the tab content
func (st *SearchTab) Container() fyne.CanvasObject {
	return st.content
}

func (st *SearchTab) createUI() {
	l := st.ui.localization

	modules := st.ui.moduleNames()
	st.moduleSelect = widget.NewSelect(modules, func(name string) {
		st.ui.svc.Settings.SetLastModule(name)
	})
	st.moduleSelect.PlaceHolder = NoModulesLabel
	if preferred := st.ui.preferredModule(modules); preferred != "" {
		st.moduleSelect.SetSelected(preferred)
	}

	types := make([]string, 0, len(model.SearchTypes))
	for _, mt := range model.SearchTypes {
		types = append(types, mt.String())
	}
	st.typeSelect = widget.NewSelect(types, nil)
	st.typeSelect.SetSelected(st.ui.svc.Settings.GetSearchType().String())

	st.queryEntry = widget.NewEntry()
	st.queryEntry.SetPlaceHolder(l.GetText(KeyEnterQuery))
	st.queryEntry.OnSubmitted = func(string) { st.onSearch() }

	st.searchBtn = widget.NewButton(l.GetText(KeySearch), st.onSearch)
	st.searchBtn.Importance = widget.HighImportance

	st.addBtn = widget.NewButton(l.GetText(KeyAddToBatch), st.onAdd)
	st.addBtn.Disable()

	st.statusLabel = widget.NewLabel("")

	st.resultList = widget.NewList(
		func() int { return st.ui.results.Len() },
		func() fyne.CanvasObject {
			label := widget.NewLabel("")
			label.Truncation = fyne.TextTruncateEllipsis
			return label
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(st.resultText(id))
		},
	)
	st.resultList.OnSelected = func(id widget.ListItemID) {
		st.selected = id
		st.addBtn.Enable()
	}
	st.resultList.OnUnselected = func(widget.ListItemID) {
		st.selected = -1
		st.addBtn.Disable()
	}

	st.moduleLabel = widget.NewLabel(l.GetText(KeyModule))
	st.typeLabel = widget.NewLabel(l.GetText(KeySearchType))

	form := container.NewGridWithColumns(4,
		st.moduleLabel, st.moduleSelect,
		st.typeLabel, st.typeSelect,
	)
	queryRow := container.NewBorder(nil, nil, nil, st.searchBtn, st.queryEntry)
	top := container.NewVBox(form, queryRow, st.statusLabel)
	bottom := container.NewHBox(st.addBtn)

	st.content = container.NewBorder(top, bottom, nil, nil, st.resultList)
}

// resultText renders row id with its queued marker
func (st *SearchTab) resultText(id int) string {
	entry, ok := st.ui.results.Get(id)
	if !ok {
		return ""
	}
	queued := st.ui.svc.Queue.IsQueued(entry.Item.ID)
	return search.FormatResult(entry.Item, st.ui.results.SearchType(), id+1, queued)
}

func (st *SearchTab) onSearch() {
	st.ui.runSearch(search.Query{
		ModuleName: st.moduleSelect.Selected,
		SearchType: st.typeSelect.Selected,
		Text:       strings.TrimSpace(st.queryEntry.Text),
	})
}

func (st *SearchTab) onAdd() {
	if st.selected < 0 {
		return
	}
	st.ui.addResultToQueue(st.selected)
}

// selectedModule returns the module chosen for search and download
func (st *SearchTab) selectedModule() string {
	return st.moduleSelect.Selected
}

// reloadModules refreshes the module choices, keeping the selection if possible
func (st *SearchTab) reloadModules() {
	modules := st.ui.moduleNames()
	st.moduleSelect.Options = modules
	st.moduleSelect.Refresh()

	if contains(modules, st.moduleSelect.Selected) {
		return
	}
	if preferred := st.ui.preferredModule(modules); preferred != "" {
		st.moduleSelect.SetSelected(preferred)
	} else {
		st.moduleSelect.ClearSelected()
	}
}

func (st *SearchTab) showStatus(text string) {
	st.statusLabel.SetText(text)
}

func (st *SearchTab) setBusy(busy bool) {
	if busy {
		st.searchBtn.Disable()
		st.addBtn.Disable()
		st.resultList.UnselectAll()
		return
	}
	st.searchBtn.Enable()
}

// refresh redraws the result rows, e.g. after the queue changed
func (st *SearchTab) refresh() {
	st.resultList.Refresh()
}

func (st *SearchTab) refreshTexts() {
	l := st.ui.localization
	st.moduleLabel.SetText(l.GetText(KeyModule))
	st.typeLabel.SetText(l.GetText(KeySearchType))
	st.queryEntry.SetPlaceHolder(l.GetText(KeyEnterQuery))
	st.searchBtn.SetText(l.GetText(KeySearch))
	st.addBtn.SetText(l.GetText(KeyAddToBatch))
}
