package ui

import (
	"errors"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/orpheus-gui/internal/config"
	"github.com/ytget/orpheus-gui/internal/model"
)

// SettingsTab edits the toolkit configuration and the app preferences
type SettingsTab struct {
	ui *RootUI

	jsonLabel     *widget.Label
	editor        *widget.Entry
	saveJSONBtn   *widget.Button
	reloadJSONBtn *widget.Button

	defaultModuleSelect *widget.Select
	saveDefaultBtn      *widget.Button
	overrideSelects     map[model.ModuleMode]*widget.Select

	downloadDirEntry *widget.Entry
	baseDirEntry     *widget.Entry
	pythonEntry      *widget.Entry
	limitEntry       *widget.Entry
	saveAppBtn       *widget.Button

	form    *widget.Form
	content fyne.CanvasObject
}

// NewSettingsTab builds the settings tab
func NewSettingsTab(ui *RootUI) *SettingsTab {
	st := &SettingsTab{
		ui:              ui,
		overrideSelects: make(map[model.ModuleMode]*widget.Select),
	}
	st.createUI()
	st.loadCurrentSettings()

	// Persist only user changes, not the initial load
	for mode, sel := range st.overrideSelects {
		m := mode
		sel.OnChanged = func(value string) {
			st.ui.svc.Settings.SetModuleOverride(m, value)
		}
	}
	return st
}

// Container returns the tab content
func (st *SettingsTab) Container() fyne.CanvasObject {
	return st.content
}

func (st *SettingsTab) createUI() {
	l := st.ui.localization

	st.jsonLabel = widget.NewLabel(l.GetText(KeySettingsJSON))
	st.editor = widget.NewMultiLineEntry()
	st.editor.TextStyle = fyne.TextStyle{Monospace: true}
	st.editor.Wrapping = fyne.TextWrapOff
	st.saveJSONBtn = widget.NewButton(l.GetText(KeySave), st.onSaveJSON)
	st.reloadJSONBtn = widget.NewButton(l.GetText(KeyReload), st.loadSettingsJSON)

	modules := st.ui.moduleNames()
	st.defaultModuleSelect = widget.NewSelect(modules, nil)
	st.saveDefaultBtn = widget.NewButton(l.GetText(KeySave), st.onSaveDefaultModule)

	overrideOptions := append([]string{model.DefaultModuleOverride}, modules...)
	for _, mode := range model.ModuleModes {
		st.overrideSelects[mode] = widget.NewSelect(overrideOptions, nil)
	}

	st.downloadDirEntry = widget.NewEntry()
	st.baseDirEntry = widget.NewEntry()
	st.pythonEntry = widget.NewEntry()
	st.limitEntry = widget.NewEntry()
	st.limitEntry.SetPlaceHolder("1-100")
	st.saveAppBtn = widget.NewButton(l.GetText(KeySave), st.onSaveApp)

	browseDownload := widget.NewButton(IconFolder, func() { st.browseInto(st.downloadDirEntry) })
	browseBase := widget.NewButton(IconFolder, func() { st.browseInto(st.baseDirEntry) })

	st.form = widget.NewForm()
	st.buildForm(browseDownload, browseBase)

	editorPane := container.NewBorder(
		st.jsonLabel,
		container.NewHBox(st.saveJSONBtn, st.reloadJSONBtn),
		nil, nil,
		st.editor,
	)

	right := container.NewVScroll(container.NewVBox(st.form, st.saveAppBtn))
	split := container.NewHSplit(editorPane, right)
	split.SetOffset(0.55)
	st.content = split
}

func (st *SettingsTab) buildForm(browseDownload, browseBase *widget.Button) {
	l := st.ui.localization
	st.form.Items = []*widget.FormItem{
		widget.NewFormItem(l.GetText(KeyDefaultModule), container.NewBorder(nil, nil, nil, st.saveDefaultBtn, st.defaultModuleSelect)),
		widget.NewFormItem(l.GetText(KeyCoversModule), st.overrideSelects[model.ModuleModeCovers]),
		widget.NewFormItem(l.GetText(KeyLyricsModule), st.overrideSelects[model.ModuleModeLyrics]),
		widget.NewFormItem(l.GetText(KeyCreditsModule), st.overrideSelects[model.ModuleModeCredits]),
		widget.NewFormItem(l.GetText(KeyDownloadDirectory), container.NewBorder(nil, nil, nil, browseDownload, st.downloadDirEntry)),
		widget.NewFormItem(l.GetText(KeyToolkitDirectory), container.NewBorder(nil, nil, nil, browseBase, st.baseDirEntry)),
		widget.NewFormItem(l.GetText(KeyPythonCommand), st.pythonEntry),
		widget.NewFormItem(l.GetText(KeySearchLimit), st.limitEntry),
	}
	st.form.Refresh()
}

// loadCurrentSettings fills every field from the stores
func (st *SettingsTab) loadCurrentSettings() {
	settings := st.ui.svc.Settings

	st.loadSettingsJSON()

	if st.ui.svc.Store != nil {
		if name, ok := st.ui.svc.Store.LoadDefaultModule(); ok && contains(st.defaultModuleSelect.Options, name) {
			st.defaultModuleSelect.SetSelected(name)
		}
	}

	var toolkitDefaults map[string]string
	if st.ui.svc.Store != nil {
		toolkitDefaults = st.ui.svc.Store.ModuleDefaults()
	}
	for _, mode := range model.ModuleModes {
		sel := st.overrideSelects[mode]
		value := settings.GetModuleOverride(mode)
		if value == model.DefaultModuleOverride && toolkitDefaults[string(mode)] != "" {
			value = toolkitDefaults[string(mode)]
		}
		if !contains(sel.Options, value) {
			value = model.DefaultModuleOverride
		}
		sel.SetSelected(value)
	}

	st.downloadDirEntry.SetText(settings.GetDownloadDirectory())
	st.baseDirEntry.SetText(settings.GetBaseDirectory())
	st.pythonEntry.SetText(settings.GetPythonCommand())
	st.limitEntry.SetText(strconv.Itoa(settings.GetSearchLimit()))
}

func (st *SettingsTab) loadSettingsJSON() {
	if st.ui.svc.Store == nil {
		return
	}
	st.editor.SetText(st.ui.svc.Store.LoadSettingsJSON())
}

func (st *SettingsTab) onSaveJSON() {
	l := st.ui.localization
	err := st.ui.svc.Store.SaveSettingsJSON(st.editor.Text)
	switch {
	case err == nil:
		dialog.ShowInformation(l.GetText(KeySettings), l.GetText(KeySettingsSaved), st.ui.window)
	case errors.Is(err, config.ErrInvalidJSON):
		dialog.ShowError(errorText(l.GetText(KeyInvalidJSON)), st.ui.window)
	default:
		dialog.ShowError(err, st.ui.window)
	}
}

func (st *SettingsTab) onSaveDefaultModule() {
	l := st.ui.localization
	name := st.defaultModuleSelect.Selected
	if name == "" {
		dialog.ShowError(errorText(l.GetText(KeyNoModule)), st.ui.window)
		return
	}
	if err := st.ui.svc.Store.SaveDefaultModule(name); err != nil {
		dialog.ShowError(err, st.ui.window)
		return
	}
	st.ui.showToast(l.GetText(KeyDefaultModuleSaved))
}

// onSaveApp stores the front-end preferences
func (st *SettingsTab) onSaveApp() {
	settings := st.ui.svc.Settings
	l := st.ui.localization

	if dir := st.downloadDirEntry.Text; dir != "" {
		settings.SetDownloadDirectory(dir)
	}
	if limit, err := strconv.Atoi(st.limitEntry.Text); err == nil {
		settings.SetSearchLimit(limit)
	}
	st.limitEntry.SetText(strconv.Itoa(settings.GetSearchLimit()))

	restart := false
	if dir := st.baseDirEntry.Text; dir != "" && dir != settings.GetBaseDirectory() {
		settings.SetBaseDirectory(dir)
		restart = true
	}
	if cmd := st.pythonEntry.Text; cmd != settings.GetPythonCommand() {
		settings.SetPythonCommand(cmd)
		restart = true
	}

	if restart {
		dialog.ShowInformation(l.GetText(KeySettings), l.GetText(KeyRestartRequired), st.ui.window)
		return
	}
	dialog.ShowInformation(l.GetText(KeySettings), l.GetText(KeySettingsSaved), st.ui.window)
}

// overrideChoices returns the raw per-mode selections
func (st *SettingsTab) overrideChoices() map[model.ModuleMode]string {
	choices := make(map[model.ModuleMode]string, len(st.overrideSelects))
	for mode, sel := range st.overrideSelects {
		choices[mode] = sel.Selected
	}
	return choices
}

func (st *SettingsTab) browseInto(entry *widget.Entry) {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		entry.SetText(uri.Path())
	}, st.ui.window)
}

func (st *SettingsTab) refreshTexts() {
	l := st.ui.localization
	st.jsonLabel.SetText(l.GetText(KeySettingsJSON))
	st.saveJSONBtn.SetText(l.GetText(KeySave))
	st.reloadJSONBtn.SetText(l.GetText(KeyReload))
	st.saveDefaultBtn.SetText(l.GetText(KeySave))
	st.saveAppBtn.SetText(l.GetText(KeySave))

	labels := []string{KeyDefaultModule, KeyCoversModule, KeyLyricsModule, KeyCreditsModule,
		KeyDownloadDirectory, KeyToolkitDirectory, KeyPythonCommand, KeySearchLimit}
	for i, item := range st.form.Items {
		item.Text = l.GetText(labels[i])
	}
	st.form.Refresh()
}

func contains(values []string, value string) bool {
	for _, v := range values {
		if v == value {
			return true
		}
	}
	return false
}
