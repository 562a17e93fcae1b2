package ui

import (
	"context"
	"log"
	"sort"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/orpheus-gui/internal/command"
	"github.com/ytget/orpheus-gui/internal/config"
	"github.com/ytget/orpheus-gui/internal/download"
	"github.com/ytget/orpheus-gui/internal/model"
	"github.com/ytget/orpheus-gui/internal/platform"
	"github.com/ytget/orpheus-gui/internal/queue"
	"github.com/ytget/orpheus-gui/internal/search"
)

// errorText lets a localized message be shown through dialog.ShowError
type errorText string

func (e errorText) Error() string { return string(e) }

// Services bundles everything the UI drives
type Services struct {
	Settings *config.Settings
	Store    *config.Store
	Search   *search.Service
	Builtins []string // modules served without the toolkit
	Queue    *queue.Store
	Batch    download.Batcher
	Runner   command.Executor
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	svc          Services
	localization *Localization
	results      *search.ResultSet

	tabs        *container.AppTabs
	searchTab   *SearchTab
	batchTab    *BatchTab
	manualTab   *ManualTab
	settingsTab *SettingsTab

	batchPoller  *ChannelPoller
	manualPoller *ChannelPoller

	// openFolder is swapped in tests
	openFolder func(string) error
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, svc Services) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(svc.Settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		svc:          svc,
		localization: localization,
		results:      search.NewResultSet(),
		openFolder:   platform.OpenFolder,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	ui.startPolling()

	log.Printf("UI setup completed: %d modules available", len(ui.moduleNames()))
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.searchTab = NewSearchTab(ui)
	ui.batchTab = NewBatchTab(ui)
	ui.manualTab = NewManualTab(ui)
	ui.settingsTab = NewSettingsTab(ui)

	ui.tabs = container.NewAppTabs(
		container.NewTabItem(ui.localization.GetText(KeySearchTab), ui.searchTab.Container()),
		container.NewTabItem(ui.localization.GetText(KeyBatchTab), ui.batchTab.Container()),
		container.NewTabItem(ui.localization.GetText(KeyManualTab), ui.manualTab.Container()),
		container.NewTabItem(ui.localization.GetText(KeySettings), ui.settingsTab.Container()),
	)

	ui.tabs.OnSelected = func(item *container.TabItem) {
		if item == ui.tabs.Items[0] {
			ui.searchTab.reloadModules()
		}
	}

	ui.window.SetContent(ui.tabs)
	ui.window.Resize(fyne.NewSize(WindowMinWidth, WindowMinHeight))
}

// startPolling attaches the log views to their progress channels
func (ui *RootUI) startPolling() {
	if ui.svc.Batch != nil {
		ui.batchPoller = NewChannelPoller(ui.svc.Batch.Progress(), func(lines []string) {
			ui.batchTab.log.Append(lines...)
		})
		ui.batchPoller.Start(LogPollInterval)
	}
	if ui.svc.Runner != nil {
		ui.manualPoller = NewChannelPoller(ui.svc.Runner.Progress(), func(lines []string) {
			ui.manualTab.output.Append(lines...)
		})
		ui.manualPoller.Start(LogPollInterval)
	}
}

// Close stops background polling
func (ui *RootUI) Close() {
	if ui.batchPoller != nil {
		ui.batchPoller.Stop()
	}
	if ui.manualPoller != nil {
		ui.manualPoller.Stop()
	}
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	codes := make([]string, 0)
	for code := range ui.localization.GetAvailableLanguages() {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	names := ui.localization.GetAvailableLanguages()
	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(names[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), func() {
		if ui.tabs != nil {
			ui.tabs.SelectIndex(len(ui.tabs.Items) - 1)
		}
	})

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.svc.Settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	keys := []string{KeySearchTab, KeyBatchTab, KeyManualTab, KeySettings}
	for i, item := range ui.tabs.Items {
		item.Text = ui.localization.GetText(keys[i])
	}
	ui.tabs.Refresh()

	ui.searchTab.refreshTexts()
	ui.batchTab.refreshTexts()
	ui.manualTab.refreshTexts()
	ui.settingsTab.refreshTexts()
}

// moduleNames returns installed toolkit modules plus built-ins, sorted and unique
func (ui *RootUI) moduleNames() []string {
	seen := make(map[string]bool)
	var names []string
	add := func(name string) {
		if name != "" && !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}

	if ui.svc.Store != nil {
		for _, name := range ui.svc.Store.InstalledModules() {
			add(name)
		}
	}
	for _, name := range ui.svc.Builtins {
		add(name)
	}
	sort.Strings(names)
	return names
}

// preferredModule picks the toolkit default, then the last used module
func (ui *RootUI) preferredModule(names []string) string {
	contains := func(name string) bool {
		for _, n := range names {
			if n == name {
				return true
			}
		}
		return false
	}

	if ui.svc.Store != nil {
		if name, ok := ui.svc.Store.LoadDefaultModule(); ok && contains(name) {
			return name
		}
	}
	if last := ui.svc.Settings.GetLastModule(); contains(last) {
		return last
	}
	if len(names) > 0 {
		return names[0]
	}
	return ""
}

// runSearch performs a search off the UI goroutine
func (ui *RootUI) runSearch(q search.Query) {
	ui.results.Clear()
	ui.searchTab.showStatus(SearchingLine)
	ui.searchTab.refresh()
	ui.searchTab.setBusy(true)

	limit := ui.svc.Settings.GetSearchLimit()
	go func() {
		results, mediaType, err := ui.svc.Search.Search(context.Background(), q, limit)
		fyne.Do(func() {
			ui.searchTab.setBusy(false)
			if err != nil {
				log.Printf("Search failed: %v", err)
				ui.searchTab.showStatus("")
				dialog.ShowError(err, ui.window)
				return
			}
			ui.svc.Settings.SetLastModule(q.ModuleName)
			ui.svc.Settings.SetSearchType(mediaType)

			if len(results) == 0 {
				ui.searchTab.showStatus(NoResultsLine)
				return
			}
			ui.results.Set(results, mediaType, string(mediaType))
			ui.searchTab.showStatus("")
			ui.searchTab.refresh()
		})
	}()
}

// addResultToQueue queues result i of the current search
func (ui *RootUI) addResultToQueue(i int) {
	entry, ok := ui.results.Get(i)
	if !ok {
		dialog.ShowError(errorText(ui.localization.GetText(KeyInvalidSelection)), ui.window)
		return
	}

	if !ui.svc.Queue.Add(entry.Item, entry.MediaType) {
		dialog.ShowInformation(ui.localization.GetText(KeyAddToBatch), ui.localization.GetText(KeyAlreadyInQueue), ui.window)
		return
	}

	ui.batchTab.refresh()
	ui.searchTab.refresh()
	ui.showToast(ui.localization.GetText(KeyAddedToQueue))
}

// removeFromQueue removes queue position i
func (ui *RootUI) removeFromQueue(i int) {
	if _, ok := ui.svc.Queue.RemoveAt(i); !ok {
		return
	}
	ui.batchTab.refresh()
	ui.searchTab.refresh()
}

// clearQueue empties the queue
func (ui *RootUI) clearQueue() {
	ui.svc.Queue.Clear()
	ui.batchTab.refresh()
	ui.searchTab.refresh()
}

// startBatch hands a snapshot of the queue to the batch worker
func (ui *RootUI) startBatch() {
	if ui.svc.Queue.Len() == 0 {
		ui.showToast(ui.localization.GetText(KeyQueueEmpty))
		return
	}

	moduleName := ui.searchTab.selectedModule()
	if moduleName == "" {
		dialog.ShowError(errorText(ui.localization.GetText(KeyNoModule)), ui.window)
		return
	}

	cfg := model.DownloadConfig{
		DownloadPath:    ui.svc.Settings.GetDownloadDirectory(),
		ModuleName:      moduleName,
		ModuleOverrides: config.ResolveOverrides(moduleName, ui.settingsTab.overrideChoices()),
		SDM:             moduleName,
	}

	ui.batchTab.setRunning(true)
	if !ui.svc.Batch.Start(ui.svc.Queue.Items(), cfg, ui.onBatchComplete) {
		ui.batchTab.setRunning(ui.svc.Batch.IsRunning())
		return
	}
	log.Printf("Batch started: %d items with module %s", ui.svc.Queue.Len(), moduleName)
}

// onBatchComplete runs on the worker goroutine
func (ui *RootUI) onBatchComplete() {
	fyne.Do(func() {
		ui.clearQueue()
		ui.batchTab.setRunning(false)
		ui.showToast(ui.localization.GetText(KeyBatchFinished))
	})
}

// openDownloadFolder reveals the download directory
func (ui *RootUI) openDownloadFolder() {
	dir := ui.svc.Settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		dialog.ShowError(err, ui.window)
		return
	}
	if err := ui.openFolder(dir); err != nil {
		log.Printf("Failed to open folder %s: %v", dir, err)
		dialog.ShowError(errorText(ui.localization.GetText(KeyErrorOpeningFolder)+": "+err.Error()), ui.window)
	}
}

// runCommand runs a manual command line
func (ui *RootUI) runCommand(text string) {
	ui.svc.Runner.SetWorkDir(ui.svc.Settings.GetBaseDirectory())
	ui.svc.Runner.Run(command.SplitCommand(text))
}

// showToast shows a short-lived message in the top right corner
func (ui *RootUI) showToast(message string) {
	label := widget.NewLabel(message)
	label.Wrapping = fyne.TextWrapWord

	popup := widget.NewPopUp(container.NewPadded(label), ui.window.Canvas())
	canvasSize := ui.window.Canvas().Size()
	size := fyne.NewSize(ToastWidth, ToastHeight)
	popup.Resize(size)
	popup.Move(fyne.NewPos(canvasSize.Width-size.Width-ToastMargin, ToastMargin))
	popup.Show()

	go func() {
		<-time.After(ToastAutoHide)
		fyne.Do(popup.Hide)
	}()
}
