package ui

import (
	"fmt"
	"strings"

	"fyne.io/fyne/v2/lang"
)

// Package ui provides user interface components

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyDownload           = "download"
	KeySuggestName        = "suggest_name"
	KeyQuit               = "quit"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeyOpen               = "open"
	KeyReveal             = "reveal"
	KeyCopyPath           = "copy_path"
	KeyViewProperties     = "view_properties"
	KeyDelete             = "delete"
	KeyProperties         = "properties"
	KeyPropertiesFormat   = "properties_format"
	KeyConfirmDelete      = "confirm_delete"
	KeyConfirmDeleteTitle = "confirm_delete_title"
	KeyEnterURL           = "enter_url"
	KeyEnterFilename      = "enter_filename"
	KeyURLLabel           = "url_label"
	KeyFilenameLabel      = "filename_label"
	KeyDownloadedFiles    = "downloaded_files"
	KeyNoFiles            = "no_files"
	KeyPleaseEnterURL     = "please_enter_url"
	KeyInvalidFilename    = "invalid_filename"
	KeyNoSelection        = "no_selection"
	KeyToolUnavailable    = "tool_unavailable"
	KeyErrorOccurred      = "error_occurred"
	KeyFileDoesNotExist   = "file_does_not_exist"
	KeyCouldNotOpen       = "could_not_open"
	KeyCouldNotDelete     = "could_not_delete"
	KeyPDFSaved           = "pdf_saved"
	KeyConverting         = "converting"
	KeyFetchingTitle      = "fetching_title"
	KeyTitleNotFound      = "title_not_found"
	KeyPathCopied         = "path_copied"
	KeyFileDeleted        = "file_deleted"
	KeySuccess            = "success"
	KeyError              = "error"
	KeyDownloadCompleted  = "download_completed"
	KeyInvalidURL         = "invalid_url"
)

// DefaultLanguage is used when neither the requested nor the system language is available
const DefaultLanguage = "en"

// systemLanguage returns the OS locale, e.g. "ru-RU"
var systemLanguage = func() string {
	return string(lang.SystemLocale())
}

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: DefaultLanguage,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language. "system" resolves to the OS locale
// when a translation for it exists, English otherwise.
func (l *Localization) SetLanguage(code string) {
	if code == "system" {
		code = baseLanguage(systemLanguage())
		if _, exists := l.texts[code]; !exists {
			code = DefaultLanguage
		}
	}

	if _, exists := l.texts[code]; exists {
		l.currentLanguage = code
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
	if texts, exists := l.texts[DefaultLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns localized text for key with args substituted
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
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

// baseLanguage turns "pt-BR" or "ru_RU.UTF-8" into "pt" / "ru"
func baseLanguage(locale string) string {
	locale = strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(locale, "-_."); i >= 0 {
		locale = locale[:i]
	}
	return locale
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:           "Job Description PDF Downloader",
		KeyDownload:           "Download PDF",
		KeySuggestName:        "Suggest name",
		KeyQuit:               "Quit",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeyOpen:               "Open",
		KeyReveal:             "Show in folder",
		KeyCopyPath:           "Copy path",
		KeyViewProperties:     "View Properties",
		KeyDelete:             "Delete",
		KeyProperties:         "Properties",
		KeyPropertiesFormat:   "File: %s\nSize: %.2f KB\nLocation: %s",
		KeyConfirmDelete:      "Are you sure you want to delete %s?",
		KeyConfirmDeleteTitle: "Delete file",
		KeyEnterURL:           "https://example.com/jobs/123",
		KeyEnterFilename:      "jobdescription.pdf",
		KeyURLLabel:           "Enter the URL of the job description:",
		KeyFilenameLabel:      "Enter the desired filename (optional):",
		KeyDownloadedFiles:    "Downloaded files",
		KeyNoFiles:            "No files downloaded yet",
		KeyPleaseEnterURL:     "Please enter a valid URL.",
		KeyInvalidFilename:    "Invalid filename: %s",
		KeyNoSelection:        "Please select a file first.",
		KeyToolUnavailable:    "%s not found or not installed. Please install it.",
		KeyErrorOccurred:      "An error occurred: %s",
		KeyFileDoesNotExist:   "File does not exist.",
		KeyCouldNotOpen:       "Could not open the file: %s",
		KeyCouldNotDelete:     "Could not delete the file: %s",
		KeyPDFSaved:           "PDF saved at %s",
		KeyConverting:         "Converting %s...",
		KeyFetchingTitle:      "Fetching page title...",
		KeyTitleNotFound:      "Could not suggest a name: %s",
		KeyPathCopied:         "Path copied to clipboard",
		KeyFileDeleted:        "Deleted %s",
		KeySuccess:            "Success",
		KeyError:              "Error",
		KeyDownloadCompleted:  "Download completed",
		KeyInvalidURL:         "URL must start with http:// or https://",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:           "Загрузчик вакансий в PDF",
		KeyDownload:           "Скачать PDF",
		KeySuggestName:        "Предложить имя",
		KeyQuit:               "Выход",
		KeyFile:               "Файл",
		KeyLanguage:           "Язык",
		KeyOpen:               "Открыть",
		KeyReveal:             "Показать в папке",
		KeyCopyPath:           "Копировать путь",
		KeyViewProperties:     "Свойства",
		KeyDelete:             "Удалить",
		KeyProperties:         "Свойства",
		KeyPropertiesFormat:   "Файл: %s\nРазмер: %.2f КБ\nРасположение: %s",
		KeyConfirmDelete:      "Вы уверены, что хотите удалить %s?",
		KeyConfirmDeleteTitle: "Удаление файла",
		KeyEnterURL:           "https://example.com/jobs/123",
		KeyEnterFilename:      "jobdescription.pdf",
		KeyURLLabel:           "Введите URL описания вакансии:",
		KeyFilenameLabel:      "Введите имя файла (необязательно):",
		KeyDownloadedFiles:    "Скачанные файлы",
		KeyNoFiles:            "Файлов пока нет",
		KeyPleaseEnterURL:     "Пожалуйста, введите корректный URL.",
		KeyInvalidFilename:    "Недопустимое имя файла: %s",
		KeyNoSelection:        "Сначала выберите файл.",
		KeyToolUnavailable:    "%s не найден или не установлен. Пожалуйста, установите его.",
		KeyErrorOccurred:      "Произошла ошибка: %s",
		KeyFileDoesNotExist:   "Файл не существует.",
		KeyCouldNotOpen:       "Не удалось открыть файл: %s",
		KeyCouldNotDelete:     "Не удалось удалить файл: %s",
		KeyPDFSaved:           "PDF сохранён: %s",
		KeyConverting:         "Конвертация %s...",
		KeyFetchingTitle:      "Получение заголовка страницы...",
		KeyTitleNotFound:      "Не удалось предложить имя: %s",
		KeyPathCopied:         "Путь скопирован в буфер обмена",
		KeyFileDeleted:        "Удалён %s",
		KeySuccess:            "Готово",
		KeyError:              "Ошибка",
		KeyDownloadCompleted:  "Загрузка завершена",
		KeyInvalidURL:         "URL должен начинаться с http:// или https://",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:           "Baixador de Vagas em PDF",
		KeyDownload:           "Baixar PDF",
		KeySuggestName:        "Sugerir nome",
		KeyQuit:               "Sair",
		KeyFile:               "Arquivo",
		KeyLanguage:           "Idioma",
		KeyOpen:               "Abrir",
		KeyReveal:             "Mostrar na pasta",
		KeyCopyPath:           "Copiar caminho",
		KeyViewProperties:     "Ver Propriedades",
		KeyDelete:             "Excluir",
		KeyProperties:         "Propriedades",
		KeyPropertiesFormat:   "Arquivo: %s\nTamanho: %.2f KB\nLocal: %s",
		KeyConfirmDelete:      "Tem certeza de que deseja excluir %s?",
		KeyConfirmDeleteTitle: "Excluir arquivo",
		KeyEnterURL:           "https://example.com/jobs/123",
		KeyEnterFilename:      "jobdescription.pdf",
		KeyURLLabel:           "Digite a URL da descrição da vaga:",
		KeyFilenameLabel:      "Digite o nome do arquivo (opcional):",
		KeyDownloadedFiles:    "Arquivos baixados",
		KeyNoFiles:            "Nenhum arquivo baixado ainda",
		KeyPleaseEnterURL:     "Por favor, digite uma URL válida.",
		KeyInvalidFilename:    "Nome de arquivo inválido: %s",
		KeyNoSelection:        "Selecione um arquivo primeiro.",
		KeyToolUnavailable:    "%s não encontrado ou não instalado. Por favor, instale-o.",
		KeyErrorOccurred:      "Ocorreu um erro: %s",
		KeyFileDoesNotExist:   "O arquivo não existe.",
		KeyCouldNotOpen:       "Não foi possível abrir o arquivo: %s",
		KeyCouldNotDelete:     "Não foi possível excluir o arquivo: %s",
		KeyPDFSaved:           "PDF salvo em %s",
		KeyConverting:         "Convertendo %s...",
		KeyFetchingTitle:      "Obtendo o título da página...",
		KeyTitleNotFound:      "Não foi possível sugerir um nome: %s",
		KeyPathCopied:         "Caminho copiado para a área de transferência",
		KeyFileDeleted:        "%s excluído",
		KeySuccess:            "Sucesso",
		KeyError:              "Erro",
		KeyDownloadCompleted:  "Download concluído",
		KeyInvalidURL:         "A URL deve começar com http:// ou https://",
	}
}
