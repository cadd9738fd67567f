package project

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"

	"github.com/reactcli/react-cli/internal/catalog"
	"github.com/reactcli/react-cli/internal/packagejson"
)

// ManifestFile is the npm manifest, relative to the project directory.
const ManifestFile = "package.json"

// PatchManifest sets the manifest name and upserts pkgs into dependencies.
// dependencies and devDependencies are created when absent. Existing entries
// are never removed. It returns the packages written.
func PatchManifest(fsys afero.Fs, dir, name string, pkgs []catalog.Package) ([]catalog.Package, error) {
	path := filepath.Join(dir, ManifestFile)

	doc, err := packagejson.Load(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestPatch, err)
	}

	doc.SetName(name)

	for _, key := range []string{packagejson.KeyDependencies, packagejson.KeyDevDependencies} {
		if err := doc.EnsureSection(key); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrManifestPatch, err)
		}
	}

	added := make([]catalog.Package, 0, len(pkgs))
	for _, p := range pkgs {
		if err := doc.Upsert(packagejson.KeyDependencies, p.Name, p.Version); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrManifestPatch, err)
		}
		added = append(added, p)
	}

	if err := doc.Save(fsys, path); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestPatch, err)
	}
	return added, nil
}
