package icon

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

const sampleDocument = `{
  "fill": {"solid": "srgb:0.9,0.9,0.95,1.0"},
  "fill-specializations": [
    {"appearance": "dark", "value": {"solid": "srgb:0.1,0.1,0.15,1.0"}},
    {"appearance": "dark", "idiom": "circle", "value": "system-dark"}
  ],
  "groups": [
    {
      "layers": [
        {
          "name": "glyph",
          "image-name": "glyph.svg",
          "position": {"scale": 1.2, "translation-in-points": [4, -2]},
          "opacity": 0.9,
          "opacity-specializations": [
            {"appearance": "tinted", "value": 0.5}
          ],
          "blend-mode-specializations": [
            {"appearance": "dark", "value": "multiply"}
          ]
        },
        {
          "image-name": "backdrop.svg",
          "fill": "automatic",
          "hidden-specializations": [
            {"idiom": "circle", "value": true}
          ]
        }
      ],
      "shadow": {"kind": "neutral", "opacity": 0.4},
      "translucency": {"enabled": true, "value": 0.6},
      "lighting": "individual",
      "blur-material": 0.25,
      "specular-specializations": [
        {"appearance": "light", "value": true},
        {"value": false}
      ]
    }
  ],
  "supported-platforms": {
    "circles": ["watchOS"],
    "squares": "shared"
  }
}`

func TestDecodeSampleDocument(t *testing.T) {
	t.Parallel()

	doc, err := Decode([]byte(sampleDocument))
	require.NoError(t, err)

	require.NotNil(t, doc.Fill.Plain)
	require.Equal(t, SolidFill("srgb:0.9,0.9,0.95,1.0"), *doc.Fill.Plain)
	require.Len(t, doc.Fill.Variants, 2)
	require.Equal(t, AppearanceDark, *doc.Fill.Variants[0].Appearance)
	require.Nil(t, doc.Fill.Variants[0].Idiom)

	require.Equal(t, 1, doc.GroupCount())
	group := doc.Groups[0]
	require.Len(t, group.Layers, 2)
	require.Equal(t, LightingIndividual, group.Lighting)
	require.NotNil(t, group.BlurMaterial.Plain)
	require.Equal(t, 0.25, *group.BlurMaterial.Plain)
	require.Len(t, group.Specular.Variants, 2)
	require.True(t, group.Specular.Variants[1].IsDefault())

	glyph := group.Layers[0]
	require.Equal(t, "glyph", glyph.Name)
	require.Equal(t, "glyph.svg", glyph.ImageName)
	require.NotNil(t, glyph.Position.Plain)
	require.Equal(t, 1.2, glyph.Position.Plain.Scale)
	require.Equal(t, Point{X: 4, Y: -2}, glyph.Position.Plain.Translation)

	// Plain value and specialization list coexist on opacity.
	require.NotNil(t, glyph.Opacity.Plain)
	require.Equal(t, 0.9, *glyph.Opacity.Plain)
	require.Len(t, glyph.Opacity.Variants, 1)

	require.Len(t, glyph.BlendMode.Variants, 1)
	require.Equal(t, BlendMultiply, glyph.BlendMode.Variants[0].Value)

	backdrop := group.Layers[1]
	require.NotNil(t, backdrop.Fill.Plain)
	require.Equal(t, FillSystem, backdrop.Fill.Plain.Kind)

	require.Equal(t, []string{"watchOS"}, doc.SupportedPlatforms.Circles)
	require.True(t, doc.SupportedPlatforms.Squares.Shared)
}

func TestRoundTripPreservesSemantics(t *testing.T) {
	t.Parallel()

	doc, err := Decode([]byte(sampleDocument))
	require.NoError(t, err)

	encoded, err := Encode(doc)
	require.NoError(t, err)

	reDecoded, err := Decode(encoded)
	require.NoError(t, err)
	require.Equal(t, doc, reDecoded)

	// Key order and whitespace aside, the wire content must be identical.
	var original, reEncoded any
	require.NoError(t, json.Unmarshal([]byte(sampleDocument), &original))
	require.NoError(t, json.Unmarshal(encoded, &reEncoded))
	require.Equal(t, original, reEncoded)
}

func TestDecodeRejectsMalformedDocuments(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		data string
	}{
		{name: "not json", data: `{"groups": [`},
		{name: "bad fill shape", data: `{"fill": 7, "groups": []}`},
		{name: "bad appearance token", data: `{"fill-specializations":[{"appearance":"midnight","value":"automatic"}], "groups": []}`},
		{name: "bad squares keyword", data: `{"groups": [], "supported-platforms": {"squares": "everywhere"}}`},
		{name: "bad translation arity", data: `{"groups":[{"layers":[{"image-name":"a.svg","position":{"scale":1,"translation-in-points":[1]}}]}]}`},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Decode([]byte(tc.data))
			require.Error(t, err)
		})
	}
}

func TestDecodeIsPermissiveAboutStructure(t *testing.T) {
	t.Parallel()

	// No fill anywhere, empty groups: parses fine, validation's problem.
	doc, err := Decode([]byte(`{"groups": [{"layers": []}]}`))
	require.NoError(t, err)
	require.True(t, doc.Fill.IsZero())
	require.Len(t, doc.Groups, 1)
	require.Empty(t, doc.Groups[0].Layers)
}
