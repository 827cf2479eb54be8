package icon

import (
	"encoding/json"
	"fmt"

	iconerrors "github.com/Aeastr/iconkit/pkg/errors"
)

// Point is a translation offset in points.
type Point struct {
	X float64
	Y float64
}

// Position places a layer or group: a uniform scale plus a translation.
// Valid scale range is [0.01, 5.0], enforced by the validator, not the model.
type Position struct {
	Scale       float64 `validate:"min=0.01,max=5"`
	Translation Point
}

// IdentityPosition is the resolver's built-in fallback: unit scale, no offset.
func IdentityPosition() Position {
	return Position{Scale: 1, Translation: Point{}}
}

type positionWire struct {
	Scale       float64   `json:"scale"`
	Translation []float64 `json:"translation-in-points"`
}

// MarshalJSON encodes the translation as the wire-format [x, y] pair.
func (p Position) MarshalJSON() ([]byte, error) {
	return json.Marshal(positionWire{
		Scale:       p.Scale,
		Translation: []float64{p.Translation.X, p.Translation.Y},
	})
}

// UnmarshalJSON decodes the wire-format [x, y] translation pair.
func (p *Position) UnmarshalJSON(data []byte) error {
	var wire positionWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return iconerrors.NewParseError("", "position", err)
	}
	if len(wire.Translation) != 0 && len(wire.Translation) != 2 {
		return iconerrors.NewParseError("", "position", fmt.Errorf("translation-in-points must hold exactly two numbers, got %d", len(wire.Translation)))
	}

	p.Scale = wire.Scale
	p.Translation = Point{}
	if len(wire.Translation) == 2 {
		p.Translation = Point{X: wire.Translation[0], Y: wire.Translation[1]}
	}
	return nil
}
