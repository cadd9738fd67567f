package project

import (
	"fmt"
	"path/filepath"
	"regexp"

	"github.com/spf13/afero"
)

// AppEntryFile is the entry component, relative to the project directory.
const AppEntryFile = "src/App.jsx"

const (
	markerOpen  = "<div className='main'>"
	markerClose = "</div>"
)

// markerPattern matches the first main container on a single line.
var markerPattern = regexp.MustCompile(regexp.QuoteMeta(markerOpen) + `.*?` + regexp.QuoteMeta(markerClose))

// ReplaceMarker replaces the inner text of the first marker region with name.
// The name is inserted literally. It reports whether a marker was found;
// without one the content is returned unchanged.
func ReplaceMarker(content, name string) (string, bool) {
	loc := markerPattern.FindStringIndex(content)
	if loc == nil {
		return content, false
	}
	return content[:loc[0]] + markerOpen + name + markerClose + content[loc[1]:], true
}

// PatchSource writes the project name into the entry component under dir.
// The file is always rewritten, even when no marker is present.
func PatchSource(fsys afero.Fs, dir, name string) (bool, error) {
	path := filepath.Join(dir, filepath.FromSlash(AppEntryFile))

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return false, fmt.Errorf("%w: read %s: %v", ErrSourcePatch, AppEntryFile, err)
	}

	patched, found := ReplaceMarker(string(data), name)

	if err := afero.WriteFile(fsys, path, []byte(patched), 0o644); err != nil {
		return false, fmt.Errorf("%w: write %s: %v", ErrSourcePatch, AppEntryFile, err)
	}
	return found, nil
}
