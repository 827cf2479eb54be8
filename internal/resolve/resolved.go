package resolve

import (
	"github.com/Aeastr/iconkit/internal/icon"
)

// ResolvedLayer is a layer with every specializable property reduced to one
// concrete value. A nil Fill means the layer paints its image unmodified.
type ResolvedLayer struct {
	Name      string
	ImageName string
	Position  icon.Position
	Fill      *icon.Fill
	Opacity   float64
	BlendMode icon.BlendMode
	Hidden    bool
}

// ResolvedGroup mirrors a group with concrete effect values. Layers keep
// document order: index 0 is front-most.
type ResolvedGroup struct {
	Layers       []ResolvedLayer
	Position     icon.Position
	Shadow       *icon.Shadow
	Translucency *icon.Translucency
	Lighting     icon.Lighting
	Hidden       bool
	BlurMaterial float64
	Specular     bool
}

// LayersInPaintOrder returns the layers back-most first, the order a renderer
// paints them. Layer storage order is front-most first, so this is reversed.
func (g ResolvedGroup) LayersInPaintOrder() []ResolvedLayer {
	ordered := make([]ResolvedLayer, len(g.Layers))
	for i, layer := range g.Layers {
		ordered[len(g.Layers)-1-i] = layer
	}
	return ordered
}

// ResolvedIcon is a document projected onto one context. Groups keep document
// order: index 0 is bottom-most, which is already paint order.
type ResolvedIcon struct {
	Context Context
	Fill    icon.Fill
	Groups  []ResolvedGroup
}

// GroupsInPaintOrder returns the groups bottom-most first. Group storage
// order already matches paint order; the method exists so callers never have
// to remember that groups and layers use opposite conventions.
func (r *ResolvedIcon) GroupsInPaintOrder() []ResolvedGroup {
	ordered := make([]ResolvedGroup, len(r.Groups))
	copy(ordered, r.Groups)
	return ordered
}
