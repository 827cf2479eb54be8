package icon

import (
	"encoding/json"

	iconerrors "github.com/Aeastr/iconkit/pkg/errors"
)

// Appearance is the rendering-mode axis of a specialization.
type Appearance string

const (
	AppearanceLight  Appearance = "light"
	AppearanceDark   Appearance = "dark"
	AppearanceTinted Appearance = "tinted"
)

// Appearances lists every valid appearance in a stable order.
func Appearances() []Appearance {
	return []Appearance{AppearanceLight, AppearanceDark, AppearanceTinted}
}

// ParseAppearance validates a wire token against the closed appearance set.
func ParseAppearance(token string) (Appearance, error) {
	switch Appearance(token) {
	case AppearanceLight, AppearanceDark, AppearanceTinted:
		return Appearance(token), nil
	}
	return "", iconerrors.NewInvalidEnumError("appearance", token)
}

// Idiom is the device form-factor axis of a specialization.
type Idiom string

const (
	IdiomSquare Idiom = "square"
	IdiomCircle Idiom = "circle"
)

// Idioms lists every valid idiom in a stable order.
func Idioms() []Idiom {
	return []Idiom{IdiomSquare, IdiomCircle}
}

// ParseIdiom validates a wire token against the closed idiom set.
func ParseIdiom(token string) (Idiom, error) {
	switch Idiom(token) {
	case IdiomSquare, IdiomCircle:
		return Idiom(token), nil
	}
	return "", iconerrors.NewInvalidEnumError("idiom", token)
}

// BlendMode controls how a layer composites over the content beneath it.
// BlendNormal is the resolver's built-in default and is never serialized.
type BlendMode string

const (
	BlendNormal   BlendMode = "normal"
	BlendMultiply BlendMode = "multiply"
	BlendDarken   BlendMode = "darken"
)

// ParseBlendMode validates a wire token against the closed blend-mode set.
func ParseBlendMode(token string) (BlendMode, error) {
	switch BlendMode(token) {
	case BlendMultiply, BlendDarken:
		return BlendMode(token), nil
	}
	return "", iconerrors.NewInvalidEnumError("blend-mode", token)
}

// UnmarshalJSON validates the token, so blend modes are checked wherever they
// appear, including inside specialization values.
func (b *BlendMode) UnmarshalJSON(data []byte) error {
	var token string
	if err := json.Unmarshal(data, &token); err != nil {
		return iconerrors.NewParseError("", "blend-mode", err)
	}
	mode, err := ParseBlendMode(token)
	if err != nil {
		return err
	}
	*b = mode
	return nil
}

// ShadowKind selects the shadow tint source.
type ShadowKind string

const (
	ShadowNeutral    ShadowKind = "neutral"
	ShadowLayerColor ShadowKind = "layer-color"
)

// ParseShadowKind validates a wire token against the closed shadow-kind set.
func ParseShadowKind(token string) (ShadowKind, error) {
	switch ShadowKind(token) {
	case ShadowNeutral, ShadowLayerColor:
		return ShadowKind(token), nil
	}
	return "", iconerrors.NewInvalidEnumError("shadow kind", token)
}

// Lighting selects whether a group's layers receive a combined or individual
// lighting treatment.
type Lighting string

const (
	LightingCombined   Lighting = "combined"
	LightingIndividual Lighting = "individual"
)

// ParseLighting validates a wire token against the closed lighting set.
func ParseLighting(token string) (Lighting, error) {
	switch Lighting(token) {
	case LightingCombined, LightingIndividual:
		return Lighting(token), nil
	}
	return "", iconerrors.NewInvalidEnumError("lighting", token)
}

// UnmarshalJSON validates the token while decoding.
func (l *Lighting) UnmarshalJSON(data []byte) error {
	var token string
	if err := json.Unmarshal(data, &token); err != nil {
		return iconerrors.NewParseError("", "lighting", err)
	}
	lighting, err := ParseLighting(token)
	if err != nil {
		return err
	}
	*l = lighting
	return nil
}
