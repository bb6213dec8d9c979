// Package scan enumerates the image files of a directory.
package scan

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"galleray/internal/errors"
	"galleray/pkg/types"

	"github.com/gobwas/glob"
)

// supportedExts is the fixed set of recognized image extensions.
var supportedExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".bmp":  true,
	".webp": true,
	".tiff": true,
	".tif":  true,
}

// Supported reports whether the path carries a recognized image extension.
// The check is case-insensitive.
func Supported(path string) bool {
	return supportedExts[strings.ToLower(filepath.Ext(path))]
}

// Scanner lists the image files of a directory. Extra include patterns,
// matched against base names, may widen the fixed extension set.
type Scanner struct {
	include []glob.Glob
}

// New builds a Scanner. Invalid include patterns are rejected here so the
// per-file match loop never fails.
func New(patterns ...string) (*Scanner, error) {
	s := &Scanner{}
	for _, p := range patterns {
		g, err := glob.Compile(p)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid include pattern %q", p)
		}
		s.include = append(s.include, g)
	}
	return s, nil
}

// Scan returns the images of dir as absolute paths sorted by base name
// (case-insensitive). An empty result is not an error; missing or unreadable
// directories are.
func (s *Scanner) Scan(dir string) ([]types.ImageFile, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NewScanError("directory not found", dir, errors.DirectoryNotFound, err)
		}
		return nil, errors.NewScanError("directory not accessible", dir, errors.DirectoryUnreadable, err)
	}
	if !info.IsDir() {
		return nil, errors.NewScanError("not a directory", dir, errors.DirectoryNotFound, nil)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.NewScanError("directory not readable", dir, errors.DirectoryUnreadable, err)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}

	var images []types.ImageFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !s.Accepts(entry.Name()) {
			continue
		}
		img := types.ImageFile{Path: filepath.Join(abs, entry.Name())}
		if fi, err := entry.Info(); err == nil {
			img.Size = fi.Size()
		}
		images = append(images, img)
	}

	sort.Slice(images, func(i, j int) bool {
		a, b := strings.ToLower(images[i].Name()), strings.ToLower(images[j].Name())
		if a == b {
			return images[i].Name() < images[j].Name()
		}
		return a < b
	})
	return images, nil
}

// Paths is a convenience wrapper around Scan returning bare path strings.
func (s *Scanner) Paths(dir string) ([]string, error) {
	images, err := s.Scan(dir)
	if err != nil {
		return nil, err
	}
	paths := make([]string, len(images))
	for i, img := range images {
		paths[i] = img.Path
	}
	return paths, nil
}

// Accepts reports whether a base name belongs in the image set, by supported
// extension or a configured include pattern. The directory watcher uses the
// same predicate so pattern-matched files trigger rescans too.
func (s *Scanner) Accepts(name string) bool {
	if Supported(name) {
		return true
	}
	for _, g := range s.include {
		if g.Match(name) {
			return true
		}
	}
	return false
}
