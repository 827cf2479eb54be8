package icon

import (
	"encoding/json"
)

// Group is a rendering unit whose layers share effects. Within a group the
// layer at index 0 is the front-most element and the last is the back-most —
// the opposite convention from group ordering on the document.
type Group struct {
	Layers       []Layer
	Position     *Position
	Shadow       *Shadow
	Translucency *Translucency
	Lighting     Lighting
	Hidden       bool
	BlurMaterial Specializable[float64]
	Specular     Specializable[bool]
}

type groupWire struct {
	Layers            []Layer            `json:"layers"`
	Position          *Position          `json:"position,omitempty"`
	Shadow            *Shadow            `json:"shadow,omitempty"`
	Translucency      *Translucency      `json:"translucency,omitempty"`
	Lighting          Lighting           `json:"lighting,omitempty"`
	Hidden            bool               `json:"hidden,omitempty"`
	BlurMaterial      *float64           `json:"blur-material,omitempty"`
	BlurMaterialSpecs []Variant[float64] `json:"blur-material-specializations,omitempty"`
	Specular          *bool              `json:"specular,omitempty"`
	SpecularSpecs     []Variant[bool]    `json:"specular-specializations,omitempty"`
}

// MarshalJSON maps the specializable pairs onto their sibling wire keys.
func (g Group) MarshalJSON() ([]byte, error) {
	wire := groupWire{
		Layers:            g.Layers,
		Position:          g.Position,
		Shadow:            g.Shadow,
		Translucency:      g.Translucency,
		Lighting:          g.Lighting,
		Hidden:            g.Hidden,
		BlurMaterial:      g.BlurMaterial.Plain,
		BlurMaterialSpecs: g.BlurMaterial.Variants,
		Specular:          g.Specular.Plain,
		SpecularSpecs:     g.Specular.Variants,
	}
	return json.Marshal(wire)
}

// UnmarshalJSON decodes permissively; an empty layer list is left for the
// validator to flag.
func (g *Group) UnmarshalJSON(data []byte) error {
	var wire groupWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return wrapDecodeErr("group", err)
	}

	g.Layers = wire.Layers
	g.Position = wire.Position
	g.Shadow = wire.Shadow
	g.Translucency = wire.Translucency
	g.Lighting = wire.Lighting
	g.Hidden = wire.Hidden
	g.BlurMaterial = Specializable[float64]{Plain: wire.BlurMaterial, Variants: wire.BlurMaterialSpecs}
	g.Specular = Specializable[bool]{Plain: wire.Specular, Variants: wire.SpecularSpecs}
	return nil
}
