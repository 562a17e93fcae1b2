package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CompactTheme tightens spacing so long result and log lines fit
type CompactTheme struct{}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{}
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameSuccess:
		return color.RGBA{R: 56, G: 142, B: 60, A: 255}
	case theme.ColorNameError:
		return color.RGBA{R: 198, G: 40, B: 40, A: 255}
	case theme.ColorNamePrimary:
		return color.RGBA{R: 103, G: 58, B: 183, A: 255} // deep purple
	case theme.ColorNameSelection:
		if variant == theme.VariantDark {
			return color.RGBA{R: 103, G: 58, B: 183, A: 96}
		}
		return color.RGBA{R: 103, G: 58, B: 183, A: 48}
	case theme.ColorNameDisabled:
		// Read-only logs use disabled entries; keep them legible
		if variant == theme.VariantDark {
			return color.RGBA{R: 200, G: 200, B: 200, A: 255}
		}
		return color.RGBA{R: 60, G: 60, B: 60, A: 255}
	}

	return theme.DefaultTheme().Color(name, variant)
}

// Font returns theme fonts
func (t *CompactTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *CompactTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNamePadding:
		return 3
	case theme.SizeNameInnerPadding:
		return 6
	case theme.SizeNameLineSpacing:
		return 2
	case theme.SizeNameScrollBar:
		return 10
	case theme.SizeNameText:
		return 13
	case theme.SizeNameHeadingText:
		return 16
	case theme.SizeNameSubHeadingText:
		return 14
	case theme.SizeNameCaptionText:
		return 10
	case theme.SizeNameInputRadius:
		return 3
	}

	return theme.DefaultTheme().Size(name)
}
