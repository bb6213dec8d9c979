package types

// ViewMode defines the different views in the GUI
type ViewMode int

const (
	ViewSingle ViewMode = iota
	ViewList
	ViewGrid
)

// String returns the name used for the mode in config files and logs
func (m ViewMode) String() string {
	switch m {
	case ViewList:
		return "list"
	case ViewGrid:
		return "grid"
	default:
		return "single"
	}
}

// ParseViewMode maps a config value to a ViewMode. The empty string is
// accepted as the default single view.
func ParseViewMode(s string) (ViewMode, bool) {
	switch s {
	case "single", "":
		return ViewSingle, true
	case "list":
		return ViewList, true
	case "grid":
		return ViewGrid, true
	}
	return ViewSingle, false
}
