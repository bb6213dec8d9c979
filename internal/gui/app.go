// Package gui is the Fyne front-end: one window, three views over the same
// gallery cursor.
package gui

import (
	"image"
	"image/color"
	"path/filepath"
	"sync"

	"galleray/internal/config"
	"galleray/internal/errors"
	"galleray/internal/gallery"
	"galleray/internal/log"
	"galleray/internal/scan"
	"galleray/internal/watch"
	"galleray/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
)

// The window never shrinks below the classic viewer layout.
const (
	minWidth  float32 = 800
	minHeight float32 = 600
)

// App is the GUI application
type App struct {
	fyneApp fyne.App
	win     fyne.Window
	cfg     *config.Config

	scanner *scan.Scanner
	gallery *gallery.Gallery
	watcher *watch.Watcher

	mode types.ViewMode
	dir  string // currently open directory, empty before the first scan

	// Top bar
	folderBtn    *widget.Button
	counterLabel *widget.Label
	modeSelect   *widget.RadioGroup

	// Single view
	image         *canvas.Image
	message       *widget.Label // placeholder text when no image is shown
	filenameLabel *widget.Label
	prevBtn       *widget.Button
	nextBtn       *widget.Button
	singleView    fyne.CanvasObject

	// List view
	list     *widget.List
	listView fyne.CanvasObject

	// Grid view
	grid     *widget.GridWrap
	gridView fyne.CanvasObject

	// Thumbnail cache, shared between the UI and the rescan goroutine
	thumbsMu sync.Mutex
	thumbs   map[string]image.Image

	preview      *widget.PopUp
	previewImage *canvas.Image

	content *fyne.Container // stack of the three views
}

// NewApp creates the GUI application around an already constructed scanner.
func NewApp(cfg *config.Config, scanner *scan.Scanner) *App {
	fyneApp := app.NewWithID("io.github.galleray")
	if cfg.Window.DarkTheme {
		fyneApp.Settings().SetTheme(newDarkTheme())
	}

	// Optional icon shipped next to the binary; its absence is fine.
	if appIcon, err := fyne.LoadResourceFromPath("galleray.png"); err == nil {
		fyneApp.SetIcon(appIcon)
	}

	return newApp(fyneApp, cfg, scanner)
}

// newApp wires the application onto an existing fyne.App; tests pass the
// headless test driver here.
func newApp(fyneApp fyne.App, cfg *config.Config, scanner *scan.Scanner) *App {
	a := &App{
		fyneApp: fyneApp,
		cfg:     cfg,
		scanner: scanner,
		gallery: gallery.New(),
		mode:    cfg.StartMode(),
		thumbs:  make(map[string]image.Image),
	}

	if cfg.Watch.Enabled {
		watcher, err := watch.New(scanner.Accepts)
		if err != nil {
			// The viewer works without auto-rescan; keep going.
			log.Errorf("Failed to create directory watcher: %v", err)
		} else {
			a.watcher = watcher
		}
	}

	a.win = a.fyneApp.NewWindow("Galleray")
	a.win.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	a.win.SetMaster()

	a.buildUI()
	a.bindKeys()
	return a
}

// Window exposes the main window, used by tests
func (a *App) Window() fyne.Window {
	return a.win
}

// Gallery exposes the navigation state, used by tests
func (a *App) Gallery() *gallery.Gallery {
	return a.gallery
}

// buildUI assembles the static widget tree; the three views live in a stack
// and setMode toggles their visibility.
func (a *App) buildUI() {
	a.folderBtn = widget.NewButton("Open Folder", a.openFolder)
	a.counterLabel = widget.NewLabel("")

	a.singleView = a.buildSingleView()
	a.listView = a.buildListView()
	a.gridView = a.buildGridView()
	a.content = container.NewStack(a.singleView, a.listView, a.gridView)

	a.modeSelect = widget.NewRadioGroup([]string{"single", "list", "grid"}, func(selected string) {
		mode, ok := types.ParseViewMode(selected)
		if !ok {
			return
		}
		a.setMode(mode)
	})
	a.modeSelect.Horizontal = true
	// Assigning the field directly avoids firing setMode before Run.
	a.modeSelect.Selected = a.mode.String()

	topBar := container.NewBorder(nil, nil, a.folderBtn, a.counterLabel, container.NewCenter(a.modeSelect))

	// Invisible rectangle enforcing the minimum window size.
	floor := canvas.NewRectangle(color.Transparent)
	floor.SetMinSize(fyne.NewSize(minWidth, minHeight))

	a.win.SetContent(container.NewStack(floor, container.NewBorder(topBar, nil, nil, nil, a.content)))
	a.applyMode()
}

// bindKeys wires the keyboard: left/A previous, right/D next, Esc closes.
func (a *App) bindKeys() {
	a.win.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyLeft, fyne.KeyA:
			a.previous()
		case fyne.KeyRight, fyne.KeyD:
			a.next()
		case fyne.KeyEscape:
			a.win.Close()
		}
	})
}

// Run opens the window and blocks until it closes. initialDir may be empty,
// in which case the folder prompt state is shown.
func (a *App) Run(initialDir string) {
	if a.watcher != nil {
		if err := a.watcher.Start(); err != nil {
			log.Errorf("Failed to start directory watcher: %v", err)
		}
		go func() {
			for dir := range a.watcher.Rescans() {
				log.Debugf("Change detected in %s, rescanning", dir)
				a.reload(dir)
			}
		}()
		defer a.watcher.Stop()
	}

	if initialDir != "" {
		if err := a.LoadDirectory(initialDir); err != nil {
			log.Errorf("Could not open %s: %v", initialDir, err)
			a.showMessage("Could not open folder: " + err.Error())
		}
	} else {
		a.showMessage("Select a folder to view images")
	}

	a.win.ShowAndRun()
}

// openFolder shows the folder-selection dialog and scans the chosen directory.
func (a *App) openFolder() {
	dialog.ShowFolderOpen(func(list fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, a.win)
			return
		}
		if list == nil {
			return // cancelled
		}
		if err := a.LoadDirectory(list.Path()); err != nil {
			dialog.ShowError(err, a.win)
		}
	}, a.win)
}

// LoadDirectory scans dir, replaces the image set, and re-renders. Scan
// failures leave the previous state untouched.
func (a *App) LoadDirectory(dir string) error {
	paths, err := a.scanner.Paths(dir)
	if err != nil {
		return err
	}

	abs, absErr := filepath.Abs(dir)
	if absErr != nil {
		abs = dir
	}

	a.gallery.SetImages(paths)
	a.dir = abs
	a.resetThumbs()
	a.win.SetTitle("Galleray - " + filepath.Base(abs))
	log.Infof("Loaded %d images from %s", len(paths), abs)

	if a.watcher != nil {
		if err := a.watcher.Watch(abs); err != nil {
			log.Warnf("Could not watch %s: %v", abs, err)
		}
	}

	a.Refresh()
	return nil
}

// reload rebuilds the image set after the watcher reported a change, keeping
// the cursor on the same image when it survived.
func (a *App) reload(dir string) {
	current, hadCurrent := a.gallery.Current()

	paths, err := a.scanner.Paths(dir)
	if err != nil {
		if errors.IsDirectoryNotFound(err) {
			a.gallery.SetImages(nil)
			a.Refresh()
		}
		log.Warnf("Rescan of %s failed: %v", dir, err)
		return
	}

	a.gallery.SetImages(paths)
	a.resetThumbs()
	if hadCurrent {
		for i, p := range paths {
			if p == current {
				a.gallery.JumpTo(i)
				break
			}
		}
	}
	a.Refresh()
}

// next advances the cursor and re-renders; no-op at the last image.
func (a *App) next() {
	if a.gallery.Next() {
		a.Refresh()
	}
}

// previous retreats the cursor and re-renders; no-op at the first image.
func (a *App) previous() {
	if a.gallery.Previous() {
		a.Refresh()
	}
}

// jumpTo selects an image from the list or grid and shows it in single view.
func (a *App) jumpTo(i int) {
	if !a.gallery.JumpTo(i) {
		return
	}
	a.hidePreview()
	a.modeSelect.SetSelected(types.ViewSingle.String()) // triggers setMode
}

// setMode switches the visible view
func (a *App) setMode(mode types.ViewMode) {
	a.mode = mode
	a.applyMode()
	a.Refresh()
}

func (a *App) applyMode() {
	a.singleView.Hide()
	a.listView.Hide()
	a.gridView.Hide()
	switch a.mode {
	case types.ViewList:
		a.listView.Show()
	case types.ViewGrid:
		a.gridView.Show()
	default:
		a.singleView.Show()
	}
}

// Refresh re-renders the current selection in whichever view is visible.
func (a *App) Refresh() {
	a.updateCounter()
	switch a.mode {
	case types.ViewList:
		a.refreshList()
	case types.ViewGrid:
		a.refreshGrid()
	default:
		a.refreshSingle()
	}
}

func (a *App) updateCounter() {
	if a.gallery.Len() == 0 {
		a.counterLabel.SetText("")
		return
	}
	a.counterLabel.SetText(counterText(a.gallery.Cursor(), a.gallery.Len()))
}
