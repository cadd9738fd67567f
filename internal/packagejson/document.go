// Package packagejson edits npm package.json manifests while keeping the
// original key order, so a patched manifest diffs cleanly against the template.
package packagejson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/iancoleman/orderedmap"
	"github.com/spf13/afero"
)

// Well-known manifest keys.
const (
	KeyName            = "name"
	KeyDependencies    = "dependencies"
	KeyDevDependencies = "devDependencies"
)

// Sentinel errors for the packagejson package.
var (
	// ErrInvalidManifest indicates the file is not a JSON object or a section has the wrong type.
	ErrInvalidManifest = errors.New("packagejson: invalid manifest")

	// ErrManifestNotFound indicates the manifest file does not exist.
	ErrManifestNotFound = errors.New("packagejson: manifest not found")
)

// Document is a package.json held as an insertion-ordered JSON object.
type Document struct {
	root *orderedmap.OrderedMap
}

// New returns an empty document.
func New() *Document {
	root := orderedmap.New()
	root.SetEscapeHTML(false)
	return &Document{root: root}
}

// Parse decodes a package.json document.
func Parse(data []byte) (*Document, error) {
	doc := New()
	if err := json.Unmarshal(data, doc.root); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidManifest, err)
	}
	return doc, nil
}

// Load reads and decodes the manifest at path.
func Load(fsys afero.Fs, path string) (*Document, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, path)
		}
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Name returns the manifest's name field, or "" when unset or not a string.
func (d *Document) Name() string {
	v, ok := d.root.Get(KeyName)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// SetName overwrites the name field. An existing key keeps its position.
func (d *Document) SetName(name string) {
	d.root.Set(KeyName, name)
}

// Keys returns the top-level keys in document order.
func (d *Document) Keys() []string {
	return d.root.Keys()
}

// EnsureSection creates an empty object under key when it is absent.
func (d *Document) EnsureSection(key string) error {
	if _, ok := d.root.Get(key); ok {
		_, err := d.section(key)
		return err
	}
	section := orderedmap.New()
	section.SetEscapeHTML(false)
	d.root.Set(key, *section)
	return nil
}

// Upsert sets section[pkg] = version, creating the section if needed.
// New keys are appended; existing keys are overwritten in place.
func (d *Document) Upsert(key, pkg, version string) error {
	if err := d.EnsureSection(key); err != nil {
		return err
	}
	section, err := d.section(key)
	if err != nil {
		return err
	}
	section.Set(pkg, version)
	// Nested objects are stored by value; write the updated copy back.
	d.root.Set(key, *section)
	return nil
}

// Section returns a copy of a dependency section as a plain map.
// Non-string values are skipped.
func (d *Document) Section(key string) (map[string]string, error) {
	out := make(map[string]string)
	if _, ok := d.root.Get(key); !ok {
		return out, nil
	}
	section, err := d.section(key)
	if err != nil {
		return nil, err
	}
	for _, k := range section.Keys() {
		v, _ := section.Get(k)
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out, nil
}

// SectionKeys returns a section's keys in document order.
func (d *Document) SectionKeys(key string) ([]string, error) {
	if _, ok := d.root.Get(key); !ok {
		return nil, nil
	}
	section, err := d.section(key)
	if err != nil {
		return nil, err
	}
	return section.Keys(), nil
}

// Marshal encodes the document with two-space indentation and a trailing newline.
// HTML characters are not escaped, so ranges such as ">=1.0.0" stay readable.
func (d *Document) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d.root); err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	return buf.Bytes(), nil
}

// Save writes the document to path, replacing its contents.
func (d *Document) Save(fsys afero.Fs, path string) error {
	data, err := d.Marshal()
	if err != nil {
		return err
	}
	if err := afero.WriteFile(fsys, path, data, 0o644); err != nil {
		return fmt.Errorf("write manifest %s: %w", path, err)
	}
	return nil
}

// section returns the object stored under key.
func (d *Document) section(key string) (*orderedmap.OrderedMap, error) {
	v, _ := d.root.Get(key)
	switch s := v.(type) {
	case orderedmap.OrderedMap:
		s.SetEscapeHTML(false)
		return &s, nil
	case *orderedmap.OrderedMap:
		s.SetEscapeHTML(false)
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q is %T, want an object", ErrInvalidManifest, key, v)
	}
}
