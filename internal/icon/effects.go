package icon

import (
	"encoding/json"

	iconerrors "github.com/Aeastr/iconkit/pkg/errors"
)

// Shadow describes a group's drop shadow.
type Shadow struct {
	Kind    ShadowKind `json:"kind"`
	Opacity float64    `json:"opacity" validate:"min=0,max=1"`
}

type shadowWire struct {
	Kind    string  `json:"kind"`
	Opacity float64 `json:"opacity"`
}

// UnmarshalJSON validates the shadow kind token while decoding.
func (s *Shadow) UnmarshalJSON(data []byte) error {
	var wire shadowWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return iconerrors.NewParseError("", "shadow", err)
	}

	kind, err := ParseShadowKind(wire.Kind)
	if err != nil {
		return err
	}

	s.Kind = kind
	s.Opacity = wire.Opacity
	return nil
}

// Translucency describes a group's translucency treatment.
type Translucency struct {
	Enabled bool    `json:"enabled"`
	Value   float64 `json:"value" validate:"min=0,max=1"`
}
