package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

const (
	AppIcon = "jobpdf.png"
)

// LoadLogoResource loads the logo from file path
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}

// AppIconResource returns the logo next to the binary, or the stock document icon
func AppIconResource() fyne.Resource {
	if res, err := LoadLogoResource(); err == nil {
		return res
	}
	return theme.FileTextIcon()
}
