package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

const validBundleDocument = `{
  "fill": "automatic",
  "groups": [
    {"layers": [{"name": "glyph", "image-name": "glyph.svg"}]}
  ]
}`

func writeTestBundle(t *testing.T, document string, assetNames ...string) string {
	t.Helper()

	dir := filepath.Join(t.TempDir(), "Test.icon")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "Assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "icon.json"), []byte(document), 0o644))
	for _, name := range assetNames {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "Assets", name), []byte("x"), 0o644))
	}
	return dir
}

func captureCommand() (*cobra.Command, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	return cmd, buf
}

func TestRunValidateAcceptsValidBundle(t *testing.T) {
	dir := writeTestBundle(t, validBundleDocument, "glyph.svg")
	cmd, buf := captureCommand()

	err := runValidate(cmd, &rootFlags{}, dir, &validateOptions{})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "Document is valid.")
}

func TestRunValidateJSONPayload(t *testing.T) {
	dir := writeTestBundle(t, validBundleDocument, "glyph.svg")
	cmd, buf := captureCommand()

	err := runValidate(cmd, &rootFlags{}, dir, &validateOptions{jsonOutput: true})
	require.NoError(t, err)

	var payload validateJSONPayload
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
	require.True(t, payload.OK)
	require.Empty(t, payload.Findings)
}

func TestRunValidateUsesExtraAssetsFromSettings(t *testing.T) {
	document := `{
  "fill": "automatic",
  "groups": [
    {"layers": [{"image-name": "shared-glow.png"}]}
  ]
}`
	dir := writeTestBundle(t, document)
	settingsPath := filepath.Join(filepath.Dir(dir), "iconkit.yaml")
	require.NoError(t, os.WriteFile(settingsPath, []byte("extra_assets:\n  - shared-glow.png\n"), 0o644))

	cmd, buf := captureCommand()

	err := runValidate(cmd, &rootFlags{}, dir, &validateOptions{})
	require.NoError(t, err)
	require.Contains(t, buf.String(), "Document is valid.")
}
