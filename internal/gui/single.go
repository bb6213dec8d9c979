package gui

import (
	"fmt"
	"path/filepath"

	"galleray/internal/log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// buildSingleView lays out the classic viewer: the scaled image in the
// middle, filename below it, Previous/Next underneath.
func (a *App) buildSingleView() fyne.CanvasObject {
	a.image = &canvas.Image{FillMode: canvas.ImageFillContain}
	a.message = widget.NewLabel("")
	a.message.Alignment = fyne.TextAlignCenter

	a.filenameLabel = widget.NewLabel("")
	a.filenameLabel.Alignment = fyne.TextAlignCenter

	a.prevBtn = widget.NewButton("Previous", a.previous)
	a.nextBtn = widget.NewButton("Next", a.next)
	a.prevBtn.Disable()
	a.nextBtn.Disable()

	nav := container.NewHBox(layout.NewSpacer(), a.prevBtn, a.nextBtn, layout.NewSpacer())
	bottom := container.NewVBox(a.filenameLabel, nav)

	return container.NewBorder(nil, bottom, nil, nil,
		container.NewStack(a.image, container.NewCenter(a.message)))
}

// refreshSingle renders the image under the cursor, or the relevant empty /
// error state.
func (a *App) refreshSingle() {
	path, ok := a.gallery.Current()
	if !ok {
		if a.dir == "" {
			a.showMessage("Select a folder to view images")
		} else {
			a.showMessage("No images found in folder")
		}
		return
	}

	img, err := decodeImage(path)
	if err != nil {
		// Corrupt file: placeholder instead of the image, navigation stays live.
		log.Warnf("%v", err)
		a.image.Image = nil
		a.image.Resource = theme.BrokenImageIcon()
		a.image.Show()
		a.message.SetText("Could not decode " + filepath.Base(path))
		a.message.Show()
	} else {
		a.image.Resource = nil
		a.image.Image = img
		a.image.Show()
		a.message.Hide()
	}
	a.image.Refresh()

	a.filenameLabel.SetText(filepath.Base(path))
	a.updateNavButtons()
}

// showMessage blanks the image area and shows a centered text state.
func (a *App) showMessage(msg string) {
	a.image.Image = nil
	a.image.Resource = nil
	a.image.Hide()
	a.message.SetText(msg)
	a.message.Show()
	a.filenameLabel.SetText("")
	a.counterLabel.SetText("")
	a.updateNavButtons()
}

// updateNavButtons mirrors the clamp policy: each button is disabled at its
// end of the set, both are disabled when the set is empty.
func (a *App) updateNavButtons() {
	if a.gallery.Len() == 0 {
		a.prevBtn.Disable()
		a.nextBtn.Disable()
		return
	}
	if a.gallery.AtStart() {
		a.prevBtn.Disable()
	} else {
		a.prevBtn.Enable()
	}
	if a.gallery.AtEnd() {
		a.nextBtn.Disable()
	} else {
		a.nextBtn.Enable()
	}
}

func counterText(cursor, total int) string {
	return fmt.Sprintf("%d / %d", cursor+1, total)
}
