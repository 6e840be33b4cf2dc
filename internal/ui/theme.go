package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// Palette
var (
	ColorAccent  = color.RGBA{R: 0, G: 105, B: 92, A: 255}  // teal, primary actions
	ColorSuccess = color.RGBA{R: 46, G: 160, B: 67, A: 255} // saved
	ColorError   = color.RGBA{R: 183, G: 28, B: 28, A: 255} // failures
	ColorWarning = color.RGBA{R: 239, G: 108, B: 0, A: 255} // missing files
	colorPaperBG = color.RGBA{R: 248, G: 248, B: 246, A: 255}
	colorInkFG   = color.RGBA{R: 30, G: 30, B: 30, A: 255}
)

// compactSizes shrinks the default theme so the 800x400 window fits a useful list
var compactSizes = map[fyne.ThemeSizeName]float32{
	theme.SizeNamePadding:         3,
	theme.SizeNameInnerPadding:    6,
	theme.SizeNameLineSpacing:     2,
	theme.SizeNameScrollBar:       12,
	theme.SizeNameText:            13,
	theme.SizeNameHeadingText:     16,
	theme.SizeNameSubHeadingText:  13,
	theme.SizeNameCaptionText:     10,
	theme.SizeNameInputRadius:     3,
	theme.SizeNameSelectionRadius: 2,
}

// AppTheme is the default theme with the application palette and compact sizing
type AppTheme struct {
	base fyne.Theme
}

// NewAppTheme creates the application theme on top of the stock theme
func NewAppTheme() fyne.Theme {
	return &AppTheme{base: theme.DefaultTheme()}
}

// Color returns theme colors
func (t *AppTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNamePrimary, theme.ColorNameFocus:
		return ColorAccent
	case theme.ColorNameSuccess:
		return ColorSuccess
	case theme.ColorNameError:
		return ColorError
	case theme.ColorNameWarning:
		return ColorWarning
	case theme.ColorNameBackground:
		if variant == theme.VariantLight {
			return colorPaperBG
		}
	case theme.ColorNameForeground:
		if variant == theme.VariantLight {
			return colorInkFG
		}
	}
	return t.base.Color(name, variant)
}

func (t *AppTheme) Font(style fyne.TextStyle) fyne.Resource {
	return t.base.Font(style)
}

func (t *AppTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return t.base.Icon(name)
}

// Size returns compact sizes where defined
func (t *AppTheme) Size(name fyne.ThemeSizeName) float32 {
	if size, ok := compactSizes[name]; ok {
		return size
	}
	return t.base.Size(name)
}
