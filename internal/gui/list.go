package gui

import (
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// buildListView shows every image path as a row; selecting one jumps the
// cursor there and switches back to single view.
func (a *App) buildListView() fyne.CanvasObject {
	a.list = widget.NewList(
		func() int { return a.gallery.Len() },
		func() fyne.CanvasObject {
			return widget.NewLabel("image name placeholder")
		},
		func(id widget.ListItemID, o fyne.CanvasObject) {
			paths := a.gallery.Paths()
			if int(id) >= len(paths) {
				return
			}
			o.(*widget.Label).SetText(filepath.Base(paths[id]))
		},
	)
	a.list.OnSelected = func(id widget.ListItemID) {
		a.list.UnselectAll()
		a.jumpTo(int(id))
	}
	return a.list
}

func (a *App) refreshList() {
	a.list.Refresh()
	if cursor := a.gallery.Cursor(); cursor >= 0 {
		a.list.ScrollTo(widget.ListItemID(cursor))
	}
}
