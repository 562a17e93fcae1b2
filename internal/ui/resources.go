package ui

import (
	_ "embed"
	"errors"

	"fyne.io/fyne/v2"
)

const (
	AppIcon = "orpheus-gui.png"
)

//go:embed orpheus-gui.png
var appIconData []byte

// LoadLogoResource returns the embedded application logo
func LoadLogoResource() (fyne.Resource, error) {
	if len(appIconData) == 0 {
		return nil, errors.New("application icon is empty")
	}
	return fyne.NewStaticResource(AppIcon, appIconData), nil
}
