// Package dataset locates files inside a SynScapes root directory.
package dataset

import (
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Image kinds stored under <root>/img.
const (
	KindRGB      = "rgb"
	KindClass    = "class"
	KindInstance = "instance"
	KindClassRGB = "class_rgb"
)

var (
	// ErrInvalidPath is returned when the dataset root does not exist.
	ErrInvalidPath = errors.New("invalid path")
	// ErrMissingDirectory is returned when img/ or meta/ is absent.
	ErrMissingDirectory = errors.New("missing directory")
)

// Layout is a validated SynScapes root.
type Layout struct {
	// Root is the absolute dataset root.
	Root string
	// ImgDir is <root>/img.
	ImgDir string
	// MetaDir is <root>/meta.
	MetaDir string
}

// Open validates the directory structure below root.
//
// Arguments:
// - root: Path to the SynScapes root directory, relative paths are made absolute.
//
// Returns:
// - *Layout: The resolved layout.
// - error: ErrInvalidPath or ErrMissingDirectory, wrapped with the offending path.
func Open(root string) (*Layout, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.Wrapf(err, "resolve %s", root)
	}
	if !exists(abs) {
		return nil, errors.Wrap(ErrInvalidPath, abs)
	}

	l := &Layout{
		Root:    abs,
		ImgDir:  filepath.Join(abs, "img"),
		MetaDir: filepath.Join(abs, "meta"),
	}
	for _, d := range []string{l.ImgDir, l.MetaDir} {
		if !exists(d) {
			return nil, errors.Wrap(ErrMissingDirectory, d)
		}
	}
	return l, nil
}

// ImagePath returns <root>/img/<kind>/<idx>.png.
func (l *Layout) ImagePath(kind string, idx int) string {
	return filepath.Join(l.ImgDir, kind, strconv.Itoa(idx)+".png")
}

// RGBPath returns the path of the RGB image for idx.
func (l *Layout) RGBPath(idx int) string { return l.ImagePath(KindRGB, idx) }

// ClassPath returns the path of the class id map for idx.
func (l *Layout) ClassPath(idx int) string { return l.ImagePath(KindClass, idx) }

// InstancePath returns the path of the instance id map for idx.
func (l *Layout) InstancePath(idx int) string { return l.ImagePath(KindInstance, idx) }

// ClassRGBPath returns the path of the colorized class map for idx.
func (l *Layout) ClassRGBPath(idx int) string { return l.ImagePath(KindClassRGB, idx) }

// MetaPath returns <root>/meta/<idx>.json.
func (l *Layout) MetaPath(idx int) string {
	return filepath.Join(l.MetaDir, strconv.Itoa(idx)+".json")
}

// RGBPaths maps indices to RGB image paths, preserving order.
func (l *Layout) RGBPaths(indices []int) []string {
	paths := make([]string, len(indices))
	for i, idx := range indices {
		paths[i] = l.RGBPath(idx)
	}
	return paths
}

// EnsureDir creates <root>/img/<kind> if it does not exist yet.
func (l *Layout) EnsureDir(kind string) (string, error) {
	dir := filepath.Join(l.ImgDir, kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "create %s", dir)
	}
	return dir, nil
}

// Indices lists every dataset index that has a metadata document.
//
// Files in meta/ that are not "<int>.json" are ignored. The result is sorted
// in ascending numeric order.
func (l *Layout) Indices() ([]int, error) {
	files, err := os.ReadDir(l.MetaDir)
	if err != nil {
		return nil, errors.Wrap(err, "list metadata")
	}

	var indices []int
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		name := file.Name()
		if filepath.Ext(name) != ".json" {
			continue
		}
		idx, err := strconv.Atoi(strings.TrimSuffix(name, ".json"))
		if err != nil {
			continue
		}
		indices = append(indices, idx)
	}

	sort.Ints(indices)
	return indices, nil
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
