package project

import (
	"path/filepath"

	"github.com/spf13/afero"
)

// FindEnclosingPackage walks upward from dir looking for a package.json.
// It returns the directory holding the nearest manifest, if any. A project
// created below it ends up nested inside another npm package.
func FindEnclosingPackage(fsys afero.Fs, dir string) (string, bool) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		if ok, _ := afero.Exists(fsys, filepath.Join(absDir, ManifestFile)); ok {
			return absDir, true
		}
		parent := filepath.Dir(absDir)
		if parent == absDir {
			return "", false
		}
		absDir = parent
	}
}
