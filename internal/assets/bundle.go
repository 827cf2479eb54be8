package assets

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/Aeastr/iconkit/internal/icon"
	iconerrors "github.com/Aeastr/iconkit/pkg/errors"
)

const documentFileName = "icon.json"

// Bundle is a loaded <name>.icon directory: the parsed document plus the
// catalog of its Assets directory.
type Bundle struct {
	Path     string
	Document *icon.Document
	Catalog  *Catalog
}

// LoadBundle reads a `.icon` bundle directory, or a bare icon.json file for
// documents that have not been packaged yet. Bare files get an empty catalog.
func LoadBundle(path string) (*Bundle, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, iconerrors.NewParseError(path, "", err)
	}

	if !info.IsDir() {
		doc, err := icon.DecodeFile(path)
		if err != nil {
			return nil, err
		}
		return &Bundle{Path: path, Document: doc, Catalog: NewCatalog()}, nil
	}

	doc, err := icon.DecodeFile(filepath.Join(path, documentFileName))
	if err != nil {
		return nil, err
	}

	catalog, err := FromDir(AssetsDir(path))
	if err != nil {
		return nil, err
	}

	return &Bundle{Path: path, Document: doc, Catalog: catalog}, nil
}

// Name derives the icon name from the bundle path, trimming the .icon suffix.
func (b *Bundle) Name() string {
	base := filepath.Base(b.Path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return base
}
