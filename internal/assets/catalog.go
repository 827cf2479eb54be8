package assets

import (
	"os"
	"path/filepath"
	"sort"

	iconerrors "github.com/Aeastr/iconkit/pkg/errors"
)

// Catalog is the allow-list of image names available to a document. It is
// built from a bundle's Assets directory, explicit configuration, or both,
// and handed to the validator at call time.
type Catalog struct {
	names map[string]struct{}
}

// NewCatalog builds a catalog from explicit names.
func NewCatalog(names ...string) *Catalog {
	catalog := &Catalog{names: make(map[string]struct{}, len(names))}
	catalog.Add(names...)
	return catalog
}

// Add registers additional names.
func (c *Catalog) Add(names ...string) {
	for _, name := range names {
		if name != "" {
			c.names[name] = struct{}{}
		}
	}
}

// Contains reports whether name is available.
func (c *Catalog) Contains(name string) bool {
	if c == nil {
		return false
	}
	_, ok := c.names[name]
	return ok
}

// Names returns the catalog contents sorted.
func (c *Catalog) Names() []string {
	out := make([]string, 0, len(c.names))
	for name := range c.names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of known assets.
func (c *Catalog) Len() int {
	return len(c.names)
}

// FromDir lists the regular files of an assets directory into a catalog.
// A missing directory yields an empty catalog rather than an error: bundles
// without assets are legal, just unlikely to validate.
func FromDir(dir string) (*Catalog, error) {
	catalog := NewCatalog()

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return catalog, nil
		}
		return nil, iconerrors.NewParseError(dir, "", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		catalog.Add(entry.Name())
	}
	return catalog, nil
}

// Unreferenced returns catalog names absent from the given referenced set.
func (c *Catalog) Unreferenced(referenced []string) []string {
	used := make(map[string]struct{}, len(referenced))
	for _, name := range referenced {
		used[name] = struct{}{}
	}

	var out []string
	for _, name := range c.Names() {
		if _, ok := used[name]; !ok {
			out = append(out, name)
		}
	}
	return out
}

// assetsDirName is the conventional subdirectory of an .icon bundle.
const assetsDirName = "Assets"

// AssetsDir returns the Assets path of a bundle directory.
func AssetsDir(bundle string) string {
	return filepath.Join(bundle, assetsDirName)
}
