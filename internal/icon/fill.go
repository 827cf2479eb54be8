package icon

import (
	"encoding/json"
	"fmt"

	iconerrors "github.com/Aeastr/iconkit/pkg/errors"
)

// FillKind discriminates the fill sum type.
type FillKind string

const (
	FillSolid             FillKind = "solid"
	FillAutomaticGradient FillKind = "automatic-gradient"
	FillSystem            FillKind = "system"
)

// System fill keywords. The wire format encodes these as bare strings.
const (
	SystemAutomatic = "automatic"
	SystemLight     = "system-light"
	SystemDark      = "system-dark"
)

// Fill is the paint applied to a layer or the icon background: a solid color,
// an automatic gradient derived from a color, or a system keyword. Color
// strings are opaque "colorspace:r,g,b,a" tokens and are not parsed further.
//
// The wire format carries no discriminator tag: system keywords serialize as
// bare strings, the other two as single-key objects. The codec probes shape.
type Fill struct {
	Kind    FillKind
	Color   string
	Keyword string
}

// SolidFill constructs a solid-color fill.
func SolidFill(color string) Fill {
	return Fill{Kind: FillSolid, Color: color}
}

// GradientFill constructs an automatic-gradient fill seeded by color.
func GradientFill(color string) Fill {
	return Fill{Kind: FillAutomaticGradient, Color: color}
}

// SystemFill constructs a system-keyword fill. The keyword must be one of
// SystemAutomatic, SystemLight, SystemDark.
func SystemFill(keyword string) (Fill, error) {
	switch keyword {
	case SystemAutomatic, SystemLight, SystemDark:
		return Fill{Kind: FillSystem, Keyword: keyword}, nil
	}
	return Fill{}, iconerrors.NewInvalidEnumError("fill keyword", keyword)
}

// String renders the fill for logs and CLI output.
func (f Fill) String() string {
	switch f.Kind {
	case FillSolid:
		return fmt.Sprintf("solid(%s)", f.Color)
	case FillAutomaticGradient:
		return fmt.Sprintf("automatic-gradient(%s)", f.Color)
	case FillSystem:
		return f.Keyword
	}
	return "unset"
}

type fillObject struct {
	Solid             *string `json:"solid,omitempty"`
	AutomaticGradient *string `json:"automatic-gradient,omitempty"`
}

// MarshalJSON encodes system keywords as bare strings and the color-backed
// kinds as single-key objects.
func (f Fill) MarshalJSON() ([]byte, error) {
	switch f.Kind {
	case FillSystem:
		return json.Marshal(f.Keyword)
	case FillSolid:
		return json.Marshal(fillObject{Solid: &f.Color})
	case FillAutomaticGradient:
		return json.Marshal(fillObject{AutomaticGradient: &f.Color})
	}
	return nil, iconerrors.NewParseError("", "fill", fmt.Errorf("cannot encode fill of kind %q", string(f.Kind)))
}

// UnmarshalJSON probes the value shape: try string first, then the object
// forms. Anything else is a ParseError.
func (f *Fill) UnmarshalJSON(data []byte) error {
	var keyword string
	if err := json.Unmarshal(data, &keyword); err == nil {
		fill, err := SystemFill(keyword)
		if err != nil {
			return err
		}
		*f = fill
		return nil
	}

	var obj fillObject
	if err := json.Unmarshal(data, &obj); err != nil {
		return iconerrors.NewParseError("", "fill", fmt.Errorf("value is neither a keyword string nor a fill object: %w", err))
	}

	switch {
	case obj.Solid != nil:
		*f = SolidFill(*obj.Solid)
	case obj.AutomaticGradient != nil:
		*f = GradientFill(*obj.AutomaticGradient)
	default:
		return iconerrors.NewParseError("", "fill", fmt.Errorf("object has no recognized fill key"))
	}
	return nil
}
