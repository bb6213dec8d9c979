package types

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ImageFile represents a single image discovered by the scanner
type ImageFile struct {
	Path string `json:"path"`
	Size int64  `json:"size"`
}

// Name returns the base name of the file
func (f *ImageFile) Name() string {
	return filepath.Base(f.Path)
}

// Ext returns the lower-cased extension, including the dot
func (f *ImageFile) Ext() string {
	return strings.ToLower(filepath.Ext(f.Path))
}

// String returns a human-readable representation
func (f *ImageFile) String() string {
	return fmt.Sprintf("%s (%d bytes)", f.Path, f.Size)
}
