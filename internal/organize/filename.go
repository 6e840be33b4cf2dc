package organize

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	// DefaultFilename is used when the user leaves the filename blank
	DefaultFilename = "jobdescription.pdf"

	// PDFExtension is appended when missing
	PDFExtension = ".pdf"

	// MaxSuggestedLength caps filename stems produced from page titles
	MaxSuggestedLength = 80
)

// ErrInvalidFilename is returned for names that would leave the bucket directory
var ErrInvalidFilename = errors.New("invalid filename")

var (
	invalidFileChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots     = regexp.MustCompile(`\.+$`)
	whitespaceRuns   = regexp.MustCompile(`\s+`)
)

// NormalizeFilename returns DefaultFilename for "", otherwise name with ".pdf"
// appended unless it already ends in ".pdf" in any letter case.
func NormalizeFilename(name string) string {
	if name == "" {
		return DefaultFilename
	}
	if HasPDFExtension(name) {
		return name
	}
	return name + PDFExtension
}

// HasPDFExtension reports whether name ends in ".pdf", ignoring case
func HasPDFExtension(name string) bool {
	return len(name) >= len(PDFExtension) && strings.EqualFold(name[len(name)-len(PDFExtension):], PDFExtension)
}

// ValidateFilename rejects user input that is not a single path element.
// It runs before NormalizeFilename, so "" is accepted and becomes DefaultFilename.
func ValidateFilename(name string) error {
	switch {
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q", ErrInvalidFilename, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q contains a path separator", ErrInvalidFilename, name)
	case strings.ContainsRune(name, 0):
		return fmt.Errorf("%w: %q contains a NUL byte", ErrInvalidFilename, name)
	}
	return nil
}

// SanitizeFilename replaces characters that are invalid in file names on common
// operating systems, collapses whitespace and drops trailing dots.
func SanitizeFilename(name string) string {
	name = invalidFileChars.ReplaceAllString(name, "_")
	name = whitespaceRuns.ReplaceAllString(name, " ")
	name = strings.TrimSpace(name)
	name = trailingDots.ReplaceAllString(name, "")
	return strings.TrimSpace(name)
}

// SuggestFilename turns a page title into a filename stem (without extension)
func SuggestFilename(title string) string {
	stem := SanitizeFilename(title)
	if utf8.RuneCountInString(stem) > MaxSuggestedLength {
		runes := []rune(stem)
		stem = strings.TrimSpace(string(runes[:MaxSuggestedLength]))
		stem = trailingDots.ReplaceAllString(stem, "")
	}
	return stem
}
