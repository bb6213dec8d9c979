package gui

import (
	"image"

	"galleray/internal/log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const previewEdge = 360

// buildGridView shows thumbnails in a wrapping grid. Hovering a cell pops up
// a magnified preview, tapping jumps the cursor to it.
func (a *App) buildGridView() fyne.CanvasObject {
	a.previewImage = &canvas.Image{FillMode: canvas.ImageFillContain}
	a.previewImage.SetMinSize(fyne.NewSize(previewEdge, previewEdge))

	cellSize := float32(a.cfg.Grid.ThumbnailSize)
	a.grid = widget.NewGridWrap(
		func() int { return a.gallery.Len() },
		func() fyne.CanvasObject {
			cell := newThumbCell(a)
			cell.img.SetMinSize(fyne.NewSize(cellSize, cellSize))
			return cell
		},
		func(id widget.GridWrapItemID, o fyne.CanvasObject) {
			cell := o.(*thumbCell)
			cell.index = int(id)
			paths := a.gallery.Paths()
			if cell.index >= len(paths) {
				return
			}
			cell.setPath(paths[cell.index])
		},
	)
	return a.grid
}

func (a *App) refreshGrid() {
	a.grid.Refresh()
}

// thumbFor returns a cached downscaled copy of the image, or nil when the
// file cannot be decoded. The cache lock is dropped while decoding; the
// rescan goroutine may swap the cache out underneath (see resetThumbs).
func (a *App) thumbFor(path string) image.Image {
	a.thumbsMu.Lock()
	if thumb, ok := a.thumbs[path]; ok {
		a.thumbsMu.Unlock()
		return thumb
	}
	a.thumbsMu.Unlock()

	var thumb image.Image
	if img, err := decodeImage(path); err != nil {
		log.Debugf("%v", err)
	} else {
		thumb = thumbnail(img, a.cfg.Grid.ThumbnailSize)
	}

	a.thumbsMu.Lock()
	a.thumbs[path] = thumb
	a.thumbsMu.Unlock()
	return thumb
}

// resetThumbs drops the thumbnail cache after the image set changed.
func (a *App) resetThumbs() {
	a.thumbsMu.Lock()
	a.thumbs = make(map[string]image.Image)
	a.thumbsMu.Unlock()
}

// showPreview pops up a magnified view of the hovered thumbnail.
func (a *App) showPreview(path string, pos fyne.Position) {
	img, err := decodeImage(path)
	if err != nil {
		return // missing preview is no reason for a dialog
	}

	a.previewImage.Resource = nil
	a.previewImage.Image = img
	a.previewImage.Refresh()

	if a.preview == nil {
		a.preview = widget.NewPopUp(a.previewImage, a.win.Canvas())
	}
	a.preview.ShowAtPosition(pos.AddXY(16, 16))
}

func (a *App) hidePreview() {
	if a.preview != nil {
		a.preview.Hide()
	}
}

// thumbCell is one grid entry: a thumbnail that reacts to taps and hover.
type thumbCell struct {
	widget.BaseWidget

	app   *App
	index int
	path  string
	img   *canvas.Image
}

var _ fyne.Tappable = (*thumbCell)(nil)
var _ desktop.Hoverable = (*thumbCell)(nil)

func newThumbCell(a *App) *thumbCell {
	c := &thumbCell{app: a}
	c.img = &canvas.Image{FillMode: canvas.ImageFillContain}
	c.ExtendBaseWidget(c)
	return c
}

func (c *thumbCell) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(c.img)
}

func (c *thumbCell) setPath(path string) {
	if c.path == path {
		return
	}
	c.path = path
	if thumb := c.app.thumbFor(path); thumb != nil {
		c.img.Resource = nil
		c.img.Image = thumb
	} else {
		c.img.Image = nil
		c.img.Resource = theme.BrokenImageIcon()
	}
	c.img.Refresh()
}

func (c *thumbCell) Tapped(*fyne.PointEvent) {
	c.app.jumpTo(c.index)
}

func (c *thumbCell) MouseIn(ev *desktop.MouseEvent) {
	if c.path != "" {
		c.app.showPreview(c.path, ev.AbsolutePosition)
	}
}

func (c *thumbCell) MouseMoved(*desktop.MouseEvent) {}

func (c *thumbCell) MouseOut() {
	c.app.hidePreview()
}
