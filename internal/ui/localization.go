package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeySearchTab          = "search_tab"
	KeyBatchTab           = "batch_tab"
	KeyManualTab          = "manual_tab"
	KeySettings           = "settings"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyModule             = "module"
	KeySearchType         = "search_type"
	KeySearch             = "search"
	KeyEnterQuery         = "enter_query"
	KeyAddToBatch         = "add_to_batch"
	KeyRemoveSelected     = "remove_selected"
	KeyDownloadBatch      = "download_batch"
	KeyClearQueue         = "clear_queue"
	KeyOpenFolder         = "open_folder"
	KeyRun                = "run"
	KeyEnterCommand       = "enter_command"
	KeySettingsJSON       = "settings_json"
	KeySave               = "save"
	KeyReload             = "reload"
	KeyDefaultModule      = "default_module"
	KeyCoversModule       = "covers_module"
	KeyLyricsModule       = "lyrics_module"
	KeyCreditsModule      = "credits_module"
	KeyDownloadDirectory  = "download_directory"
	KeyToolkitDirectory   = "toolkit_directory"
	KeyPythonCommand      = "python_command"
	KeySearchLimit        = "search_limit"
	KeyBrowse             = "browse"
	KeyCancel             = "cancel"
	KeySettingsSaved      = "settings_saved"
	KeyInvalidJSON        = "invalid_json"
	KeyDefaultModuleSaved = "default_module_saved"
	KeyAlreadyInQueue     = "already_in_queue"
	KeyInvalidSelection   = "invalid_selection"
	KeyAddedToQueue       = "added_to_queue"
	KeySearchError        = "search_error"
	KeyDownloadInProgress = "download_in_progress"
	KeyQueueEmpty         = "queue_empty"
	KeyNoModule           = "no_module"
	KeyConfirmClear       = "confirm_clear"
	KeyErrorOpeningFolder = "error_opening_folder"
	KeyBatchFinished      = "batch_finished"
	KeyRestartRequired    = "restart_required"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "Orpheus GUI",
		KeySearchTab:          "Search & Select",
		KeyBatchTab:           "Batch Queue",
		KeyManualTab:          "Manual Command",
		KeySettings:           "Settings",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyModule:             "Module",
		KeySearchType:         "Type",
		KeySearch:             "Search",
		KeyEnterQuery:         "Enter search query",
		KeyAddToBatch:         "Add to Batch",
		KeyRemoveSelected:     "Remove Selected",
		KeyDownloadBatch:      "Download Batch",
		KeyClearQueue:         "Clear Queue",
		KeyOpenFolder:         "Open Folder",
		KeyRun:                "Run",
		KeyEnterCommand:       "e.g. python3 orpheus.py search qobuz track ...",
		KeySettingsJSON:       "Toolkit settings.json",
		KeySave:               "Save",
		KeyReload:             "Reload",
		KeyDefaultModule:      "Default Module",
		KeyCoversModule:       "Covers Module",
		KeyLyricsModule:       "Lyrics Module",
		KeyCreditsModule:      "Credits Module",
		KeyDownloadDirectory:  "Download Directory",
		KeyToolkitDirectory:   "OrpheusDL Directory",
		KeyPythonCommand:      "Python Command",
		KeySearchLimit:        "Search Limit",
		KeyBrowse:             "Browse",
		KeyCancel:             "Cancel",
		KeySettingsSaved:      "Settings saved successfully!",
		KeyInvalidJSON:        "Invalid JSON: settings were not saved",
		KeyDefaultModuleSaved: "Default module saved",
		KeyAlreadyInQueue:     "This item is already in the queue.",
		KeyInvalidSelection:   "Invalid result selected.",
		KeyAddedToQueue:       "Added to queue",
		KeySearchError:        "Search Error",
		KeyDownloadInProgress: "Download already in progress.",
		KeyQueueEmpty:         "The queue is empty.",
		KeyNoModule:           "Select a module first.",
		KeyConfirmClear:       "Remove all items from the queue?",
		KeyErrorOpeningFolder: "Error opening folder",
		KeyBatchFinished:      "Batch finished",
		KeyRestartRequired:    "Restart the application to apply this change.",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Orpheus GUI",
		KeySearchTab:          "Поиск и выбор",
		KeyBatchTab:           "Очередь",
		KeyManualTab:          "Ручная команда",
		KeySettings:           "Настройки",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyModule:             "Модуль",
		KeySearchType:         "Тип",
		KeySearch:             "Найти",
		KeyEnterQuery:         "Введите запрос",
		KeyAddToBatch:         "В очередь",
		KeyRemoveSelected:     "Удалить выбранное",
		KeyDownloadBatch:      "Скачать очередь",
		KeyClearQueue:         "Очистить очередь",
		KeyOpenFolder:         "Открыть папку",
		KeyRun:                "Запустить",
		KeyEnterCommand:       "например python3 orpheus.py search qobuz track ...",
		KeySettingsJSON:       "Файл settings.json",
		KeySave:               "Сохранить",
		KeyReload:             "Перечитать",
		KeyDefaultModule:      "Модуль по умолчанию",
		KeyCoversModule:       "Модуль обложек",
		KeyLyricsModule:       "Модуль текстов",
		KeyCreditsModule:      "Модуль авторов",
		KeyDownloadDirectory:  "Папка загрузки",
		KeyToolkitDirectory:   "Папка OrpheusDL",
		KeyPythonCommand:      "Команда Python",
		KeySearchLimit:        "Лимит поиска",
		KeyBrowse:             "Обзор",
		KeyCancel:             "Отмена",
		KeySettingsSaved:      "Настройки успешно сохранены!",
		KeyInvalidJSON:        "Неверный JSON: настройки не сохранены",
		KeyDefaultModuleSaved: "Модуль по умолчанию сохранён",
		KeyAlreadyInQueue:     "Этот элемент уже в очереди.",
		KeyInvalidSelection:   "Выбран неверный результат.",
		KeyAddedToQueue:       "Добавлено в очередь",
		KeySearchError:        "Ошибка поиска",
		KeyDownloadInProgress: "Загрузка уже идёт.",
		KeyQueueEmpty:         "Очередь пуста.",
		KeyNoModule:           "Сначала выберите модуль.",
		KeyConfirmClear:       "Удалить все элементы из очереди?",
		KeyErrorOpeningFolder: "Ошибка открытия папки",
		KeyBatchFinished:      "Пакет завершён",
		KeyRestartRequired:    "Перезапустите приложение, чтобы применить изменение.",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "Orpheus GUI",
		KeySearchTab:          "Buscar e Selecionar",
		KeyBatchTab:           "Fila de Lote",
		KeyManualTab:          "Comando Manual",
		KeySettings:           "Configurações",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeyModule:             "Módulo",
		KeySearchType:         "Tipo",
		KeySearch:             "Buscar",
		KeyEnterQuery:         "Digite a busca",
		KeyAddToBatch:         "Adicionar ao Lote",
		KeyRemoveSelected:     "Remover Selecionado",
		KeyDownloadBatch:      "Baixar Lote",
		KeyClearQueue:         "Limpar Fila",
		KeyOpenFolder:         "Abrir Pasta",
		KeyRun:                "Executar",
		KeyEnterCommand:       "ex. python3 orpheus.py search qobuz track ...",
		KeySettingsJSON:       "Arquivo settings.json",
		KeySave:               "Salvar",
		KeyReload:             "Recarregar",
		KeyDefaultModule:      "Módulo Padrão",
		KeyCoversModule:       "Módulo de Capas",
		KeyLyricsModule:       "Módulo de Letras",
		KeyCreditsModule:      "Módulo de Créditos",
		KeyDownloadDirectory:  "Diretório de Download",
		KeyToolkitDirectory:   "Diretório do OrpheusDL",
		KeyPythonCommand:      "Comando Python",
		KeySearchLimit:        "Limite de Busca",
		KeyBrowse:             "Navegar",
		KeyCancel:             "Cancelar",
		KeySettingsSaved:      "Configurações salvas com sucesso!",
		KeyInvalidJSON:        "JSON inválido: configurações não salvas",
		KeyDefaultModuleSaved: "Módulo padrão salvo",
		KeyAlreadyInQueue:     "Este item já está na fila.",
		KeyInvalidSelection:   "Resultado inválido selecionado.",
		KeyAddedToQueue:       "Adicionado à fila",
		KeySearchError:        "Erro de Busca",
		KeyDownloadInProgress: "Download já em andamento.",
		KeyQueueEmpty:         "A fila está vazia.",
		KeyNoModule:           "Selecione um módulo primeiro.",
		KeyConfirmClear:       "Remover todos os itens da fila?",
		KeyErrorOpeningFolder: "Erro ao abrir pasta",
		KeyBatchFinished:      "Lote concluído",
		KeyRestartRequired:    "Reinicie o aplicativo para aplicar esta alteração.",
	}
}
