package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyFile              = "file"
	KeySettings          = "settings"
	KeyLanguage          = "language"
	KeyTheme             = "theme"
	KeyChooseFolder      = "choose_folder"
	KeyReload            = "reload"
	KeyChooseFolderHint  = "choose_folder_hint"
	KeyNoProjects        = "no_projects"
	KeyProjectsFound     = "projects_found"
	KeyNoDemoClip        = "no_demo_clip"
	KeyOpenInDAW         = "open_in_daw"
	KeyReveal            = "reveal"
	KeyPlay              = "play"
	KeyStop              = "stop"
	KeyNothingPlaying    = "nothing_playing"
	KeyAudioUnavailable  = "audio_unavailable"
	KeyErrorPlaying      = "error_playing"
	KeyErrorOpeningFile  = "error_opening_file"
	KeyErrorLoading      = "error_loading"
	KeyPollInterval      = "poll_interval"
	KeyAutoRefresh       = "auto_refresh"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeySettingsSaved     = "settings_saved"
	KeyInterfaceSettings = "interface_settings"
	KeyPlaybackSettings  = "playback_settings"
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
	}
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "DAW Project Browser",
		KeyFile:              "File",
		KeySettings:          "Settings",
		KeyLanguage:          "Language",
		KeyTheme:             "Theme",
		KeyChooseFolder:      "Choose Folder…",
		KeyReload:            "Reload",
		KeyChooseFolderHint:  "Please choose a folder that contains your DAW projects",
		KeyNoProjects:        "No projects found in this folder",
		KeyProjectsFound:     "%d projects",
		KeyNoDemoClip:        "No demo clip",
		KeyOpenInDAW:         "Open",
		KeyReveal:            "Reveal",
		KeyPlay:              "Play",
		KeyStop:              "Stop",
		KeyNothingPlaying:    "Nothing playing",
		KeyAudioUnavailable:  "Audio output is unavailable",
		KeyErrorPlaying:      "Could not play clip",
		KeyErrorOpeningFile:  "Error opening file",
		KeyErrorLoading:      "Could not load folder",
		KeyPollInterval:      "Position update interval (ms)",
		KeyAutoRefresh:       "Reload when the folder changes",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeySettingsSaved:     "Settings saved",
		KeyInterfaceSettings: "Interface",
		KeyPlaybackSettings:  "Playback",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "Браузер DAW-проектов",
		KeyFile:              "Файл",
		KeySettings:          "Настройки",
		KeyLanguage:          "Язык",
		KeyTheme:             "Тема",
		KeyChooseFolder:      "Выбрать папку…",
		KeyReload:            "Обновить",
		KeyChooseFolderHint:  "Выберите папку с вашими DAW-проектами",
		KeyNoProjects:        "В этой папке нет проектов",
		KeyProjectsFound:     "Проектов: %d",
		KeyNoDemoClip:        "Нет демо",
		KeyOpenInDAW:         "Открыть",
		KeyReveal:            "Показать",
		KeyPlay:              "Играть",
		KeyStop:              "Стоп",
		KeyNothingPlaying:    "Ничего не играет",
		KeyAudioUnavailable:  "Аудиовыход недоступен",
		KeyErrorPlaying:      "Не удалось воспроизвести",
		KeyErrorOpeningFile:  "Ошибка открытия файла",
		KeyErrorLoading:      "Не удалось загрузить папку",
		KeyPollInterval:      "Интервал обновления позиции (мс)",
		KeyAutoRefresh:       "Обновлять при изменениях в папке",
		KeySave:              "Сохранить",
		KeyCancel:            "Отмена",
		KeySettingsSaved:     "Настройки сохранены",
		KeyInterfaceSettings: "Интерфейс",
		KeyPlaybackSettings:  "Воспроизведение",
	}
}
