// Package catalog holds the libraries offered by the project wizard and the
// package.json entries each selection contributes. The catalog is embedded
// in the binary as YAML and validated once at load time.
package catalog

import (
	_ "embed"
	"fmt"
	"slices"
	"sync"

	"gopkg.in/yaml.v3"
)

// NoneValue is the sentinel selection meaning "add nothing from this category".
const NoneValue = "None"

// Category IDs defined by the embedded catalog.
const (
	CategoryUI     = "ui"
	CategoryState  = "state"
	CategoryCommon = "common"
)

//go:embed catalog.yaml
var rawCatalog []byte

var (
	defaultCatalog *Catalog
	loadOnce       sync.Once
	loadErr        error
)

// Package is a single package.json dependency entry.
type Package struct {
	Name    string `yaml:"name"`
	Version string `yaml:"version"`
}

// Choice is one selectable entry in a category.
type Choice struct {
	Label    string    `yaml:"label"`
	Value    string    `yaml:"value"`
	Featured bool      `yaml:"featured"`
	Packages []Package `yaml:"packages"`
}

// IsNone reports whether the choice is the opt-out sentinel.
func (c Choice) IsNone() bool {
	return c.Value == NoneValue
}

// Category is an ordered list of choices presented as one multi-select prompt.
type Category struct {
	ID      string   `yaml:"id"`
	Title   string   `yaml:"title"`
	Choices []Choice `yaml:"choices"`
}

// Choice looks up a choice by its selection value.
func (c *Category) Choice(value string) (Choice, bool) {
	for _, ch := range c.Choices {
		if ch.Value == value {
			return ch, true
		}
	}
	return Choice{}, false
}

// Resolve maps selected values to the packages they contribute.
// An empty selection, or one that contains NoneValue anywhere, yields nothing.
// Values without packages are ignored.
func (c *Category) Resolve(selected []string) []Package {
	if len(selected) == 0 || slices.Contains(selected, NoneValue) {
		return nil
	}
	var pkgs []Package
	for _, v := range selected {
		ch, ok := c.Choice(v)
		if !ok {
			continue
		}
		pkgs = mergePackages(pkgs, ch.Packages)
	}
	return pkgs
}

// Selections maps a category ID to the values chosen for it.
type Selections map[string][]string

// Catalog is the full, validated set of categories.
type Catalog struct {
	categories []Category
}

type document struct {
	Categories []Category `yaml:"categories"`
}

// Load returns the catalog embedded in the binary. It is parsed once.
func Load() (*Catalog, error) {
	loadOnce.Do(func() {
		defaultCatalog, loadErr = Parse(rawCatalog)
	})
	return defaultCatalog, loadErr
}

// Parse validates and decodes a catalog document.
func Parse(data []byte) (*Catalog, error) {
	if err := validateSchema(data); err != nil {
		return nil, err
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidCatalog, err)
	}

	cat := &Catalog{categories: doc.Categories}
	if err := cat.validate(); err != nil {
		return nil, err
	}
	return cat, nil
}

// Categories returns the categories in prompt order.
func (c *Catalog) Categories() []Category {
	return slices.Clone(c.categories)
}

// Category looks up a category by ID.
func (c *Catalog) Category(id string) (*Category, bool) {
	for i := range c.categories {
		if c.categories[i].ID == id {
			return &c.categories[i], true
		}
	}
	return nil, false
}

// ResolveAll resolves every category's selections in catalog order.
// Selections for categories the catalog does not define return ErrUnknownCategory.
func (c *Catalog) ResolveAll(sel Selections) ([]Package, error) {
	for id := range sel {
		if _, ok := c.Category(id); !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, id)
		}
	}
	var pkgs []Package
	for i := range c.categories {
		cat := &c.categories[i]
		pkgs = mergePackages(pkgs, cat.Resolve(sel[cat.ID]))
	}
	return pkgs, nil
}

// mergePackages appends add to dst. A name already present keeps its
// position and takes the newer version.
func mergePackages(dst, add []Package) []Package {
	for _, p := range add {
		idx := slices.IndexFunc(dst, func(q Package) bool { return q.Name == p.Name })
		if idx >= 0 {
			dst[idx].Version = p.Version
			continue
		}
		dst = append(dst, p)
	}
	return dst
}
