package gui

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"galleray/internal/config"
	"galleray/internal/errors"
	"galleray/internal/scan"
	"galleray/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writePNG drops a tiny valid PNG at path
func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.NRGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
}

func newTestApp(t *testing.T) *App {
	t.Helper()
	cfg := config.New()
	cfg.Watch.Enabled = false // no fsnotify in widget tests

	scanner, err := scan.New()
	require.NoError(t, err)

	a := newApp(test.NewApp(), cfg, scanner)
	t.Cleanup(a.win.Close)
	return a
}

func galleryDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		writePNG(t, filepath.Join(dir, name))
	}
	return dir
}

func TestLoadDirectoryPopulatesGallery(t *testing.T) {
	a := newTestApp(t)
	dir := galleryDir(t, "a.png", "b.png", "c.png")

	require.NoError(t, a.LoadDirectory(dir))

	assert.Equal(t, 3, a.Gallery().Len())
	assert.Equal(t, 0, a.Gallery().Cursor())
	assert.Equal(t, "1 / 3", a.counterLabel.Text)
	assert.Equal(t, "a.png", a.filenameLabel.Text)
	assert.True(t, a.prevBtn.Disabled(), "previous is clamped at the first image")
	assert.False(t, a.nextBtn.Disabled())
}

func TestLoadDirectoryNotFound(t *testing.T) {
	a := newTestApp(t)

	err := a.LoadDirectory(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, errors.IsDirectoryNotFound(err))
}

func TestEmptyDirectoryShowsMessage(t *testing.T) {
	a := newTestApp(t)

	require.NoError(t, a.LoadDirectory(t.TempDir()))

	assert.Equal(t, 0, a.Gallery().Len())
	assert.Equal(t, "No images found in folder", a.message.Text)
	assert.True(t, a.prevBtn.Disabled())
	assert.True(t, a.nextBtn.Disabled())
}

func TestNavigationButtons(t *testing.T) {
	a := newTestApp(t)
	dir := galleryDir(t, "a.png", "b.png", "c.png")
	require.NoError(t, a.LoadDirectory(dir))

	test.Tap(a.nextBtn)
	assert.Equal(t, 1, a.Gallery().Cursor())
	assert.Equal(t, "b.png", a.filenameLabel.Text)
	assert.False(t, a.prevBtn.Disabled())

	test.Tap(a.nextBtn)
	assert.Equal(t, 2, a.Gallery().Cursor())
	assert.True(t, a.nextBtn.Disabled(), "next is clamped at the last image")

	test.Tap(a.prevBtn)
	assert.Equal(t, 1, a.Gallery().Cursor())
}

func TestKeyboardNavigation(t *testing.T) {
	a := newTestApp(t)
	dir := galleryDir(t, "a.png", "b.png", "c.png")
	require.NoError(t, a.LoadDirectory(dir))

	typed := a.win.Canvas().OnTypedKey()
	require.NotNil(t, typed)

	typed(&fyne.KeyEvent{Name: fyne.KeyRight})
	assert.Equal(t, 1, a.Gallery().Cursor())

	typed(&fyne.KeyEvent{Name: fyne.KeyD})
	assert.Equal(t, 2, a.Gallery().Cursor())

	typed(&fyne.KeyEvent{Name: fyne.KeyD}) // clamp at the end
	assert.Equal(t, 2, a.Gallery().Cursor())

	typed(&fyne.KeyEvent{Name: fyne.KeyLeft})
	assert.Equal(t, 1, a.Gallery().Cursor())

	typed(&fyne.KeyEvent{Name: fyne.KeyA})
	assert.Equal(t, 0, a.Gallery().Cursor())

	typed(&fyne.KeyEvent{Name: fyne.KeyA}) // clamp at the start
	assert.Equal(t, 0, a.Gallery().Cursor())
}

func TestDecodeFailureShowsPlaceholder(t *testing.T) {
	a := newTestApp(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.png"), []byte("not a png"), 0o644))

	require.NoError(t, a.LoadDirectory(dir))

	assert.Equal(t, 1, a.Gallery().Len())
	assert.Equal(t, "Could not decode broken.png", a.message.Text)
	assert.NotNil(t, a.image.Resource, "placeholder icon replaces the image")
}

func TestListSelectionJumpsToImage(t *testing.T) {
	a := newTestApp(t)
	dir := galleryDir(t, "a.png", "b.png", "c.png", "d.png", "e.png")
	require.NoError(t, a.LoadDirectory(dir))

	a.modeSelect.SetSelected(types.ViewList.String())
	assert.Equal(t, types.ViewList, a.mode)
	assert.True(t, a.listView.Visible())
	assert.False(t, a.singleView.Visible())

	a.list.Select(2)

	assert.Equal(t, 2, a.Gallery().Cursor())
	assert.Equal(t, types.ViewSingle, a.mode, "selection returns to single view")
	assert.True(t, a.singleView.Visible())
	assert.Equal(t, "c.png", a.filenameLabel.Text)
}

func TestGridCellTapJumpsToImage(t *testing.T) {
	a := newTestApp(t)
	dir := galleryDir(t, "a.png", "b.png", "c.png")
	require.NoError(t, a.LoadDirectory(dir))

	a.modeSelect.SetSelected(types.ViewGrid.String())
	assert.True(t, a.gridView.Visible())

	cell := newThumbCell(a)
	cell.index = 1
	cell.Tapped(nil)

	assert.Equal(t, 1, a.Gallery().Cursor())
	assert.Equal(t, types.ViewSingle, a.mode)
}

func TestThumbnailCache(t *testing.T) {
	a := newTestApp(t)
	dir := galleryDir(t, "a.png")
	require.NoError(t, a.LoadDirectory(dir))

	path := a.Gallery().Paths()[0]
	first := a.thumbFor(path)
	require.NotNil(t, first)
	assert.Same(t, first, a.thumbFor(path), "thumbnails are cached")

	// Unreadable files yield nil and are cached as such
	missing := filepath.Join(dir, "gone.png")
	assert.Nil(t, a.thumbFor(missing))
}

// The rescan goroutine swaps the thumbnail cache while the grid reads it;
// concurrent use must stay race-free.
func TestThumbnailCacheConcurrentReload(t *testing.T) {
	a := newTestApp(t)
	dir := galleryDir(t, "a.png", "b.png")
	require.NoError(t, a.LoadDirectory(dir))
	paths := a.Gallery().Paths()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 100; i++ {
			a.resetThumbs()
		}
	}()
	for i := 0; i < 100; i++ {
		a.thumbFor(paths[i%len(paths)])
	}
	<-done

	assert.NotNil(t, a.thumbFor(paths[0]))
}

func TestWindowMinimumSize(t *testing.T) {
	a := newTestApp(t)

	min := a.win.Content().MinSize()
	assert.GreaterOrEqual(t, min.Width, float32(800))
	assert.GreaterOrEqual(t, min.Height, float32(600))
}

func TestCounterText(t *testing.T) {
	assert.Equal(t, "1 / 3", counterText(0, 3))
	assert.Equal(t, "3 / 3", counterText(2, 3))
}

func TestShowMessageClearsState(t *testing.T) {
	a := newTestApp(t)
	dir := galleryDir(t, "a.png")
	require.NoError(t, a.LoadDirectory(dir))

	a.showMessage("Select a folder to view images")
	assert.Equal(t, "", a.filenameLabel.Text)
	assert.Equal(t, "", a.counterLabel.Text)
	assert.False(t, a.image.Visible())
}

func TestReloadTracksDirectoryChanges(t *testing.T) {
	a := newTestApp(t)
	dir := galleryDir(t, "a.png", "b.png")
	require.NoError(t, a.LoadDirectory(dir))

	a.reload(filepath.Join(dir, "missing"))
	assert.Equal(t, 0, a.Gallery().Len(), "a vanished directory empties the set")

	b := newTestApp(t)
	dir2 := galleryDir(t, "a.png", "b.png")
	require.NoError(t, b.LoadDirectory(dir2))
	writePNG(t, filepath.Join(dir2, "c.png"))
	b.Gallery().JumpTo(1)

	b.reload(dir2)
	assert.Equal(t, 3, b.Gallery().Len())
	assert.Equal(t, 1, b.Gallery().Cursor(), "cursor follows the same image across rescans")
}
