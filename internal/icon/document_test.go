package icon

import (
	"testing"

	"github.com/stretchr/testify/require"

	iconerrors "github.com/Aeastr/iconkit/pkg/errors"
)

func twoGroupDocument() *Document {
	return &Document{
		Fill: Plain(SolidFill("srgb:1,1,1,1")),
		Groups: []Group{
			{Layers: []Layer{
				{Name: "front", ImageName: "front.svg"},
				{Name: "back", ImageName: "back.svg"},
			}},
			{Layers: []Layer{
				{Name: "bg", ImageName: "bg.svg"},
			}},
		},
	}
}

func TestDocumentAccessors(t *testing.T) {
	t.Parallel()

	doc := twoGroupDocument()

	require.Equal(t, 2, doc.GroupCount())

	count, err := doc.LayerCount(0)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	layer, err := doc.Layer(0, 1)
	require.NoError(t, err)
	require.Equal(t, "back", layer.Name)

	group, err := doc.Group(1)
	require.NoError(t, err)
	require.Len(t, group.Layers, 1)
}

func TestDocumentAccessorsRejectBadIndices(t *testing.T) {
	t.Parallel()

	doc := twoGroupDocument()

	cases := []struct {
		name string
		call func() error
		kind string
	}{
		{name: "group too high", call: func() error { _, err := doc.Group(2); return err }, kind: "group"},
		{name: "group negative", call: func() error { _, err := doc.Group(-1); return err }, kind: "group"},
		{name: "layer too high", call: func() error { _, err := doc.Layer(0, 5); return err }, kind: "layer"},
		{name: "layer count bad group", call: func() error { _, err := doc.LayerCount(9); return err }, kind: "group"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.call()
			var indexErr *iconerrors.IndexError
			require.ErrorAs(t, err, &indexErr)
			require.Equal(t, tc.kind, indexErr.Kind)
		})
	}
}

func TestReferencedAssetsUnionsAllLayers(t *testing.T) {
	t.Parallel()

	doc := twoGroupDocument()
	doc.Groups[1].Layers = append(doc.Groups[1].Layers, Layer{ImageName: "front.svg"})

	require.Equal(t, []string{"back.svg", "bg.svg", "front.svg"}, doc.ReferencedAssets())
}

func TestBackgroundEditingOperations(t *testing.T) {
	t.Parallel()

	doc := twoGroupDocument()

	doc.UpsertBackgroundVariant(AppearanceDark, SolidFill("srgb:0,0,0,1"))
	doc.UpsertBackgroundVariant(AppearanceDark, SolidFill("srgb:0.1,0.1,0.1,1"))
	require.Len(t, doc.Fill.Variants, 1)
	require.Equal(t, SolidFill("srgb:0.1,0.1,0.1,1"), doc.Fill.Variants[0].Value)

	doc.SetBackgroundFill(GradientFill("srgb:0.5,0.5,1,1"))
	require.Equal(t, GradientFill("srgb:0.5,0.5,1,1"), *doc.Fill.Plain)
	// Replacing the plain fill must not disturb specializations.
	require.Len(t, doc.Fill.Variants, 1)

	doc.RemoveBackgroundVariant(AppearanceDark)
	require.Empty(t, doc.Fill.Variants)
}
