package icon

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func appearancePtr(a Appearance) *Appearance { return &a }
func idiomPtr(i Idiom) *Idiom                { return &i }

func TestUpsertVariantReplacesExistingKey(t *testing.T) {
	t.Parallel()

	var fill Specializable[Fill]
	fill.UpsertVariant(appearancePtr(AppearanceDark), nil, SolidFill("srgb:0,0,0,1"))
	fill.UpsertVariant(appearancePtr(AppearanceDark), nil, SolidFill("srgb:1,1,1,1"))

	require.Len(t, fill.Variants, 1)
	require.Equal(t, SolidFill("srgb:1,1,1,1"), fill.Variants[0].Value)
}

func TestUpsertVariantDistinguishesIdiom(t *testing.T) {
	t.Parallel()

	var opacity Specializable[float64]
	opacity.UpsertVariant(appearancePtr(AppearanceDark), nil, 0.5)
	opacity.UpsertVariant(appearancePtr(AppearanceDark), idiomPtr(IdiomCircle), 0.25)

	require.Len(t, opacity.Variants, 2)
}

func TestRemoveVariantMatchesAppearanceIgnoringIdiom(t *testing.T) {
	t.Parallel()

	var fill Specializable[Fill]
	fill.UpsertVariant(appearancePtr(AppearanceDark), nil, SolidFill("srgb:0,0,0,1"))
	fill.UpsertVariant(appearancePtr(AppearanceDark), idiomPtr(IdiomCircle), SolidFill("srgb:0.1,0.1,0.1,1"))
	fill.UpsertVariant(appearancePtr(AppearanceLight), nil, SolidFill("srgb:1,1,1,1"))
	fill.UpsertVariant(nil, idiomPtr(IdiomCircle), SolidFill("srgb:0.5,0.5,0.5,1"))

	fill.RemoveVariant(appearancePtr(AppearanceDark))

	// Both dark variants go, including the idiom-specific one; the
	// idiom-only variant survives because it carries no appearance key.
	require.Len(t, fill.Variants, 2)
	for _, variant := range fill.Variants {
		if variant.Appearance != nil {
			require.Equal(t, AppearanceLight, *variant.Appearance)
		}
	}
}

func TestRemoveVariantEmptiesToNoSpecializations(t *testing.T) {
	t.Parallel()

	var hidden Specializable[bool]
	hidden.UpsertVariant(appearancePtr(AppearanceTinted), nil, true)
	hidden.RemoveVariant(appearancePtr(AppearanceTinted))

	require.True(t, hidden.IsZero())
}

func TestVariantDecodeRejectsUnknownTokens(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		data string
	}{
		{name: "bad appearance", data: `{"appearance":"dusk","value":1}`},
		{name: "bad idiom", data: `{"idiom":"hexagon","value":1}`},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var variant Variant[float64]
			err := variant.UnmarshalJSON([]byte(tc.data))
			require.Error(t, err)
		})
	}
}

func TestPlainWrapsValueWithoutVariants(t *testing.T) {
	t.Parallel()

	opacity := Plain(0.75)
	require.NotNil(t, opacity.Plain)
	require.Equal(t, 0.75, *opacity.Plain)
	require.Empty(t, opacity.Variants)
	require.False(t, opacity.IsZero())
}
