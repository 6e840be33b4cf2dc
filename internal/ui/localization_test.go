package ui

import (
	"testing"
)

func TestLocalizationDefaults(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected default language en, got %s", l.GetCurrentLanguage())
	}
	if got := l.GetText(KeyAppTitle); got != "Job Description PDF Downloader" {
		t.Errorf("Unexpected app title %q", got)
	}
	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("Expected key fallback, got %q", got)
	}
}

func TestLocalizationFormat(t *testing.T) {
	l := NewLocalization()

	tests := []struct {
		key  string
		args []any
		want string
	}{
		{KeyPDFSaved, []any{"output/June 2024/resume.pdf"}, "PDF saved at output/June 2024/resume.pdf"},
		{KeyErrorOccurred, []any{"boom"}, "An error occurred: boom"},
		{KeyCouldNotOpen, []any{"denied"}, "Could not open the file: denied"},
		{KeyToolUnavailable, []any{"wkhtmltopdf"}, "wkhtmltopdf not found or not installed. Please install it."},
		{KeyConfirmDelete, []any{"resume.pdf"}, "Are you sure you want to delete resume.pdf?"},
		{KeyPropertiesFormat, []any{"a.pdf", 2.0, "/tmp/a.pdf"}, "File: a.pdf\nSize: 2.00 KB\nLocation: /tmp/a.pdf"},
	}

	for _, tt := range tests {
		if got := l.Format(tt.key, tt.args...); got != tt.want {
			t.Errorf("Format(%s) = %q, want %q", tt.key, got, tt.want)
		}
	}
}

func TestLocalizationSetLanguage(t *testing.T) {
	l := NewLocalization()

	l.SetLanguage("ru")
	if got := l.GetText(KeyDelete); got != "Удалить" {
		t.Errorf("Expected Russian delete label, got %q", got)
	}

	// Unknown codes keep the current language
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Expected language to stay ru, got %s", l.GetCurrentLanguage())
	}
}

func TestLocalizationSystemLanguage(t *testing.T) {
	original := systemLanguage
	defer func() { systemLanguage = original }()

	tests := []struct {
		locale string
		want   string
	}{
		{"pt-BR", "pt"},
		{"ru_RU.UTF-8", "ru"},
		{"de-DE", "en"},
		{"", "en"},
	}

	for _, tt := range tests {
		systemLanguage = func() string { return tt.locale }
		l := NewLocalization()
		l.SetLanguage("ru") // start from a non-default language
		l.SetLanguage("system")
		if got := l.GetCurrentLanguage(); got != tt.want {
			t.Errorf("system locale %q: expected %s, got %s", tt.locale, tt.want, got)
		}
	}
}

func TestLocalizationCompleteness(t *testing.T) {
	l := NewLocalization()

	for code := range l.GetAvailableLanguages() {
		for key := range l.texts["en"] {
			if _, ok := l.texts[code][key]; !ok {
				t.Errorf("Language %s is missing key %s", code, key)
			}
		}
	}
}
