package icon

import (
	"encoding/json"
	"errors"

	iconerrors "github.com/Aeastr/iconkit/pkg/errors"
)

// Layer is a single image element inside a group. Every visual property is a
// Specializable: the wire format stores the plain form under the property key
// and the variant list under the sibling "<key>-specializations" key, and both
// may coexist.
type Layer struct {
	Name      string
	ImageName string
	Position  Specializable[Position]
	Fill      Specializable[Fill]
	Hidden    Specializable[bool]
	Opacity   Specializable[float64]
	BlendMode Specializable[BlendMode]
}

type layerWire struct {
	Name           string               `json:"name,omitempty"`
	ImageName      string               `json:"image-name"`
	Position       *Position            `json:"position,omitempty"`
	PositionSpecs  []Variant[Position]  `json:"position-specializations,omitempty"`
	Fill           *Fill                `json:"fill,omitempty"`
	FillSpecs      []Variant[Fill]      `json:"fill-specializations,omitempty"`
	Hidden         *bool                `json:"hidden,omitempty"`
	HiddenSpecs    []Variant[bool]      `json:"hidden-specializations,omitempty"`
	Opacity        *float64             `json:"opacity,omitempty"`
	OpacitySpecs   []Variant[float64]   `json:"opacity-specializations,omitempty"`
	BlendMode      *BlendMode           `json:"blend-mode,omitempty"`
	BlendModeSpecs []Variant[BlendMode] `json:"blend-mode-specializations,omitempty"`
}

// MarshalJSON maps each specializable pair back onto its two wire keys.
func (l Layer) MarshalJSON() ([]byte, error) {
	wire := layerWire{
		Name:           l.Name,
		ImageName:      l.ImageName,
		Position:       l.Position.Plain,
		PositionSpecs:  l.Position.Variants,
		Fill:           l.Fill.Plain,
		FillSpecs:      l.Fill.Variants,
		Hidden:         l.Hidden.Plain,
		HiddenSpecs:    l.Hidden.Variants,
		Opacity:        l.Opacity.Plain,
		OpacitySpecs:   l.Opacity.Variants,
		BlendMode:      l.BlendMode.Plain,
		BlendModeSpecs: l.BlendMode.Variants,
	}
	return json.Marshal(wire)
}

// UnmarshalJSON is permissive: it decodes whatever shape-valid properties are
// present and leaves structural checks to the validator.
func (l *Layer) UnmarshalJSON(data []byte) error {
	var wire layerWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return wrapDecodeErr("layer", err)
	}

	l.Name = wire.Name
	l.ImageName = wire.ImageName
	l.Position = Specializable[Position]{Plain: wire.Position, Variants: wire.PositionSpecs}
	l.Fill = Specializable[Fill]{Plain: wire.Fill, Variants: wire.FillSpecs}
	l.Hidden = Specializable[bool]{Plain: wire.Hidden, Variants: wire.HiddenSpecs}
	l.Opacity = Specializable[float64]{Plain: wire.Opacity, Variants: wire.OpacitySpecs}
	l.BlendMode = Specializable[BlendMode]{Plain: wire.BlendMode, Variants: wire.BlendModeSpecs}
	return nil
}

// wrapDecodeErr keeps already-typed errors from nested codecs intact and
// wraps raw json errors in a ParseError naming the enclosing field.
func wrapDecodeErr(field string, err error) error {
	var parseErr *iconerrors.ParseError
	var enumErr *iconerrors.InvalidEnumError
	if errors.As(err, &parseErr) || errors.As(err, &enumErr) {
		return err
	}
	return iconerrors.NewParseError("", field, err)
}
