package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// darkTheme is the default palette: near-black background, light grey text,
// slightly raised buttons.
type darkTheme struct {
	fyne.Theme
}

func newDarkTheme() fyne.Theme {
	return &darkTheme{Theme: theme.DefaultTheme()}
}

func (t *darkTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}
	case theme.ColorNameForeground:
		return color.NRGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
	case theme.ColorNameButton:
		return color.NRGBA{R: 0x2d, G: 0x2d, B: 0x2d, A: 0xff}
	case theme.ColorNameHover:
		return color.NRGBA{R: 0x3d, G: 0x3d, B: 0x3d, A: 0xff}
	case theme.ColorNamePressed:
		return color.NRGBA{R: 0x4d, G: 0x4d, B: 0x4d, A: 0xff}
	case theme.ColorNameDisabled:
		return color.NRGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff}
	case theme.ColorNameDisabledButton:
		return color.NRGBA{R: 0x25, G: 0x25, B: 0x25, A: 0xff}
	case theme.ColorNamePlaceHolder:
		return color.NRGBA{R: 0xa0, G: 0xa0, B: 0xa0, A: 0xff}
	}
	return t.Theme.Color(name, theme.VariantDark)
}
