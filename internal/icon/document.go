package icon

import (
	"encoding/json"
	"os"
	"sort"

	iconerrors "github.com/Aeastr/iconkit/pkg/errors"
)

// Document is the root of a layered icon description. Groups render in index
// order, index 0 bottom-most. The background fill is the single property the
// format requires; its absence is a validation error, not a decode error,
// because generated documents are accepted permissively and checked later.
type Document struct {
	Fill               Specializable[Fill]
	Groups             []Group
	SupportedPlatforms Platforms
}

type documentWire struct {
	Fill               *Fill           `json:"fill,omitempty"`
	FillSpecs          []Variant[Fill] `json:"fill-specializations,omitempty"`
	Groups             []Group         `json:"groups"`
	SupportedPlatforms *Platforms      `json:"supported-platforms,omitempty"`
}

// MarshalJSON emits the kebab-case wire shape.
func (d Document) MarshalJSON() ([]byte, error) {
	wire := documentWire{
		Fill:      d.Fill.Plain,
		FillSpecs: d.Fill.Variants,
		Groups:    d.Groups,
	}
	if len(d.SupportedPlatforms.Circles) > 0 || d.SupportedPlatforms.Squares.Shared || len(d.SupportedPlatforms.Squares.Platforms) > 0 {
		platforms := d.SupportedPlatforms
		wire.SupportedPlatforms = &platforms
	}
	return json.Marshal(wire)
}

// UnmarshalJSON decodes permissively; structural invariants are the
// validator's job.
func (d *Document) UnmarshalJSON(data []byte) error {
	var wire documentWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return wrapDecodeErr("document", err)
	}

	d.Fill = Specializable[Fill]{Plain: wire.Fill, Variants: wire.FillSpecs}
	d.Groups = wire.Groups
	d.SupportedPlatforms = Platforms{}
	if wire.SupportedPlatforms != nil {
		d.SupportedPlatforms = *wire.SupportedPlatforms
	}
	return nil
}

// Decode parses icon.json bytes into a Document. Decode never validates
// beyond shape: a document that parses may still fail validation.
func Decode(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, wrapDecodeErr("document", err)
	}
	return &doc, nil
}

// DecodeFile reads and parses an icon.json file.
func DecodeFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, iconerrors.NewParseError(path, "", err)
	}

	doc, err := Decode(data)
	if err != nil {
		if parseErr, ok := err.(*iconerrors.ParseError); ok && parseErr.Path == "" {
			parseErr.Path = path
		}
		return nil, err
	}
	return doc, nil
}

// Encode serializes a Document to indented icon.json bytes.
func Encode(doc *Document) ([]byte, error) {
	if doc == nil {
		return nil, iconerrors.NewParseError("", "document", errNilDocument)
	}
	return json.MarshalIndent(doc, "", "  ")
}

// GroupCount returns the number of groups.
func (d *Document) GroupCount() int {
	return len(d.Groups)
}

// Group returns the group at index, bottom-most first.
func (d *Document) Group(index int) (*Group, error) {
	if index < 0 || index >= len(d.Groups) {
		return nil, iconerrors.NewIndexError("group", index, len(d.Groups))
	}
	return &d.Groups[index], nil
}

// LayerCount returns the number of layers in the group at groupIndex.
func (d *Document) LayerCount(groupIndex int) (int, error) {
	group, err := d.Group(groupIndex)
	if err != nil {
		return 0, err
	}
	return len(group.Layers), nil
}

// Layer returns the layer at layerIndex within the group at groupIndex,
// front-most first.
func (d *Document) Layer(groupIndex, layerIndex int) (*Layer, error) {
	group, err := d.Group(groupIndex)
	if err != nil {
		return nil, err
	}
	if layerIndex < 0 || layerIndex >= len(group.Layers) {
		return nil, iconerrors.NewIndexError("layer", layerIndex, len(group.Layers))
	}
	return &group.Layers[layerIndex], nil
}

// ReferencedAssets returns the sorted union of every layer's image name.
func (d *Document) ReferencedAssets() []string {
	seen := make(map[string]struct{})
	for _, group := range d.Groups {
		for _, layer := range group.Layers {
			if layer.ImageName != "" {
				seen[layer.ImageName] = struct{}{}
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetBackgroundFill replaces the plain background fill, leaving any
// specializations in place.
func (d *Document) SetBackgroundFill(fill Fill) {
	d.Fill.Plain = &fill
}

// UpsertBackgroundVariant adds or replaces the background fill variant for the
// given appearance (idiom unset, matching the editing-tool semantics).
func (d *Document) UpsertBackgroundVariant(appearance Appearance, fill Fill) {
	d.Fill.UpsertVariant(&appearance, nil, fill)
}

// RemoveBackgroundVariant removes every background fill variant tagged with
// the given appearance, regardless of idiom.
func (d *Document) RemoveBackgroundVariant(appearance Appearance) {
	d.Fill.RemoveVariant(&appearance)
}
