package main

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunAssetsTableMarksStates(t *testing.T) {
	dir := writeTestBundle(t, validBundleDocument, "glyph.svg", "orphan.png")
	cmd, buf := captureCommand()

	require.NoError(t, runAssets(cmd, &rootFlags{}, dir, &assetsOptions{}))

	output := buf.String()
	require.Contains(t, output, "glyph.svg")
	require.Contains(t, output, "ok")
	require.Contains(t, output, "orphan.png")
	require.Contains(t, output, "unreferenced")
}

func TestRunAssetsJSONPayload(t *testing.T) {
	dir := writeTestBundle(t, validBundleDocument, "glyph.svg", "orphan.png")
	cmd, buf := captureCommand()

	require.NoError(t, runAssets(cmd, &rootFlags{}, dir, &assetsOptions{jsonOutput: true}))

	var payload assetsJSONPayload
	require.NoError(t, json.Unmarshal(buf.Bytes(), &payload))
	require.Equal(t, []string{"glyph.svg", "orphan.png"}, payload.Available)
	require.Equal(t, []string{"glyph.svg"}, payload.Referenced)
	require.Empty(t, payload.Missing)
	require.Equal(t, []string{"orphan.png"}, payload.Unreferenced)
}
