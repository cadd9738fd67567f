// Package template copies the React boilerplate that every new project starts from.
package template

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

//go:embed all:boilerplate
var embedded embed.FS

// EmbeddedTemplates returns the boilerplate bundled with the binary,
// rooted at the boilerplate directory.
func EmbeddedTemplates() (fs.FS, error) {
	sub, err := fs.Sub(embedded, "boilerplate")
	if err != nil {
		return nil, fmt.Errorf("%w: embedded boilerplate: %v", ErrTemplateNotFound, err)
	}
	return sub, nil
}

// OpenTemplateDir returns an on-disk template directory as an fs.FS.
func OpenTemplateDir(dir string) (fs.FS, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTemplateNotFound, dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrTemplateNotFound, dir)
	}
	return os.DirFS(dir), nil
}
