package resolve

import (
	"github.com/Aeastr/iconkit/internal/icon"
	iconerrors "github.com/Aeastr/iconkit/pkg/errors"
)

// lookup returns the value a specializable property takes under ctx, or
// ok=false when nothing applies and the caller must fall back.
//
// Match precedence, narrowest first:
//  1. exact (appearance and idiom both match)
//  2. appearance-only
//  3. idiom-only
//  4. default entry (neither axis set)
//  5. plain value
//
// First match wins within each pass, so malformed duplicate entries degrade
// deterministically instead of failing. Appearance-only beating idiom-only is
// a compatibility contract with existing documents; do not reorder.
func lookup[T any](s icon.Specializable[T], ctx Context) (T, bool) {
	for _, v := range s.Variants {
		if v.Appearance != nil && *v.Appearance == ctx.Appearance &&
			v.Idiom != nil && *v.Idiom == ctx.Idiom {
			return v.Value, true
		}
	}
	for _, v := range s.Variants {
		if v.Appearance != nil && *v.Appearance == ctx.Appearance && v.Idiom == nil {
			return v.Value, true
		}
	}
	for _, v := range s.Variants {
		if v.Idiom != nil && *v.Idiom == ctx.Idiom && v.Appearance == nil {
			return v.Value, true
		}
	}
	for _, v := range s.Variants {
		if v.IsDefault() {
			return v.Value, true
		}
	}

	if s.Plain != nil {
		return *s.Plain, true
	}

	var zero T
	return zero, false
}

// lookupOr resolves with a built-in fallback for optional properties.
func lookupOr[T any](s icon.Specializable[T], ctx Context, fallback T) T {
	if value, ok := lookup(s, ctx); ok {
		return value
	}
	return fallback
}

// Layer resolves a single layer under ctx. Never fails: every layer property
// has a built-in default (opacity 1, blend mode normal, hidden false,
// identity position, no fill).
func Layer(layer *icon.Layer, ctx Context) ResolvedLayer {
	resolved := ResolvedLayer{
		Name:      layer.Name,
		ImageName: layer.ImageName,
		Position:  lookupOr(layer.Position, ctx, icon.IdentityPosition()),
		Opacity:   lookupOr(layer.Opacity, ctx, 1.0),
		BlendMode: lookupOr(layer.BlendMode, ctx, icon.BlendNormal),
		Hidden:    lookupOr(layer.Hidden, ctx, false),
	}
	if fill, ok := lookup(layer.Fill, ctx); ok {
		resolved.Fill = &fill
	}
	return resolved
}

// Group resolves a group and its layers under ctx.
func Group(group *icon.Group, ctx Context) ResolvedGroup {
	resolved := ResolvedGroup{
		Position:     icon.IdentityPosition(),
		Lighting:     icon.LightingCombined,
		Hidden:       group.Hidden,
		BlurMaterial: lookupOr(group.BlurMaterial, ctx, 0),
		Specular:     lookupOr(group.Specular, ctx, false),
	}
	if group.Position != nil {
		resolved.Position = *group.Position
	}
	if group.Shadow != nil {
		shadow := *group.Shadow
		resolved.Shadow = &shadow
	}
	if group.Translucency != nil {
		translucency := *group.Translucency
		resolved.Translucency = &translucency
	}
	if group.Lighting != "" {
		resolved.Lighting = group.Lighting
	}

	resolved.Layers = make([]ResolvedLayer, len(group.Layers))
	for i := range group.Layers {
		resolved.Layers[i] = Layer(&group.Layers[i], ctx)
	}
	return resolved
}

// Icon projects a whole document onto ctx. It is a pure read-only function:
// the input document is never mutated, and resolving the same document and
// context twice yields identical output. The only possible failure is a
// background fill with no applicable variant and no plain value.
func Icon(doc *icon.Document, ctx Context) (*ResolvedIcon, error) {
	fill, ok := lookup(doc.Fill, ctx)
	if !ok {
		return nil, iconerrors.NewNoVariantError("background fill", string(ctx.Appearance), string(ctx.Idiom))
	}

	resolved := &ResolvedIcon{
		Context: ctx,
		Fill:    fill,
		Groups:  make([]ResolvedGroup, len(doc.Groups)),
	}
	for i := range doc.Groups {
		resolved.Groups[i] = Group(&doc.Groups[i], ctx)
	}
	return resolved, nil
}
