package assets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCatalogContainsAndNames(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog("glyph.svg", "backdrop.png")
	catalog.Add("extra.svg", "")

	require.True(t, catalog.Contains("glyph.svg"))
	require.False(t, catalog.Contains("missing.svg"))
	require.Equal(t, []string{"backdrop.png", "extra.svg", "glyph.svg"}, catalog.Names())
	require.Equal(t, 3, catalog.Len())
}

func TestNilCatalogContainsNothing(t *testing.T) {
	t.Parallel()

	var catalog *Catalog
	require.False(t, catalog.Contains("anything.svg"))
}

func TestFromDirListsRegularFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "glyph.svg"), []byte("<svg/>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "backdrop.png"), []byte{0x89}, 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested"), 0o755))

	catalog, err := FromDir(dir)
	require.NoError(t, err)
	require.Equal(t, []string{"backdrop.png", "glyph.svg"}, catalog.Names())
}

func TestFromDirMissingDirectoryYieldsEmptyCatalog(t *testing.T) {
	t.Parallel()

	catalog, err := FromDir(filepath.Join(t.TempDir(), "does-not-exist"))
	require.NoError(t, err)
	require.Equal(t, 0, catalog.Len())
}

func TestUnreferenced(t *testing.T) {
	t.Parallel()

	catalog := NewCatalog("a.svg", "b.svg", "c.svg")
	require.Equal(t, []string{"b.svg"}, catalog.Unreferenced([]string{"a.svg", "c.svg", "d.svg"}))
}
