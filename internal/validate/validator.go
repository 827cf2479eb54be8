package validate

import (
	"fmt"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/Aeastr/iconkit/internal/icon"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Limits are the documented structural bounds. Real generated documents
// routinely exceed them, so they are enforced as warnings, not errors.
type Limits struct {
	MaxGroups int `yaml:"max_groups" validate:"min=1"`
	MaxLayers int `yaml:"max_layers" validate:"min=1"`
}

// DefaultLimits returns the documented bounds: 4 groups, 8 layers per group.
func DefaultLimits() Limits {
	return Limits{MaxGroups: 4, MaxLayers: 8}
}

// AssetSet answers whether an image name is available. The catalog is
// caller-supplied configuration, never a process-wide singleton.
type AssetSet interface {
	Contains(name string) bool
}

// Options configure a validation pass.
type Options struct {
	Limits Limits
	// Assets is the allow-list for image references. Nil skips the check.
	Assets AssetSet
}

// Document checks a parsed document against structural limits, value ranges,
// and the asset allow-list. Every violation is collected; nothing
// short-circuits. An OK report means "acceptable to persist", not
// "render-perfect".
func Document(doc *icon.Document, opts Options) Report {
	var report Report
	if doc == nil {
		report.fail("document", "document is nil")
		return report
	}

	limits := opts.Limits
	if limits.MaxGroups == 0 {
		limits.MaxGroups = DefaultLimits().MaxGroups
	}
	if limits.MaxLayers == 0 {
		limits.MaxLayers = DefaultLimits().MaxLayers
	}

	checkBackgroundFill(doc, &report)
	specializationFindings("fill", doc.Fill, &report)

	if len(doc.Groups) > limits.MaxGroups {
		report.warn("groups", "%d groups exceeds the documented limit of %d", len(doc.Groups), limits.MaxGroups)
	}

	for g := range doc.Groups {
		checkGroup(&doc.Groups[g], g, limits, opts.Assets, &report)
	}

	return report
}

func checkBackgroundFill(doc *icon.Document, report *Report) {
	if doc.Fill.Plain != nil {
		return
	}
	for _, variant := range doc.Fill.Variants {
		if variant.IsDefault() {
			return
		}
	}
	report.fail("fill", "background fill is required: provide a plain value or a default variant")
}

func checkGroup(group *icon.Group, g int, limits Limits, assets AssetSet, report *Report) {
	field := fmt.Sprintf("groups[%d]", g)

	if len(group.Layers) == 0 {
		report.warn(field+".layers", "group has no layers")
	}
	if len(group.Layers) > limits.MaxLayers {
		report.warn(field+".layers", "%d layers exceeds the documented limit of %d", len(group.Layers), limits.MaxLayers)
	}

	checkPosition(group.Position, field+".position", report)
	if group.Shadow != nil {
		checkRange(group.Shadow.Opacity, field+".shadow.opacity", report)
	}
	if group.Translucency != nil {
		checkRange(group.Translucency.Value, field+".translucency.value", report)
	}
	specializationFindings(field+".blur-material", group.BlurMaterial, report)
	specializationFindings(field+".specular", group.Specular, report)

	for l := range group.Layers {
		checkLayer(&group.Layers[l], fmt.Sprintf("%s.layers[%d]", field, l), assets, report)
	}
}

func checkLayer(layer *icon.Layer, field string, assets AssetSet, report *Report) {
	if layer.ImageName == "" {
		report.fail(field+".image-name", "layer is missing an image name")
	} else if assets != nil && !assets.Contains(layer.ImageName) {
		report.fail(field+".image-name", "references unknown asset %q", layer.ImageName)
	}

	checkPosition(layer.Position.Plain, field+".position", report)
	for i, variant := range layer.Position.Variants {
		position := variant.Value
		checkPosition(&position, fmt.Sprintf("%s.position-specializations[%d]", field, i), report)
	}

	checkRangeSpecializable(layer.Opacity, field+".opacity", report)

	specializationFindings(field+".position", layer.Position, report)
	specializationFindings(field+".fill", layer.Fill, report)
	specializationFindings(field+".hidden", layer.Hidden, report)
	specializationFindings(field+".opacity", layer.Opacity, report)
	specializationFindings(field+".blend-mode", layer.BlendMode, report)
}

func checkPosition(position *icon.Position, field string, report *Report) {
	if position == nil {
		return
	}
	if err := validatorInstance().Struct(position); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			report.fail(field+".scale", "scale %g is outside the valid range [0.01, 5.0]", position.Scale)
			return
		}
		report.fail(field, "%v", err)
	}
}

func checkRange(value float64, field string, report *Report) {
	if err := validatorInstance().Var(value, "min=0,max=1"); err != nil {
		report.fail(field, "%g is outside the valid range [0.0, 1.0]", value)
	}
}

func checkRangeSpecializable(s icon.Specializable[float64], field string, report *Report) {
	if s.Plain != nil {
		checkRange(*s.Plain, field, report)
	}
	for i, variant := range s.Variants {
		checkRange(variant.Value, fmt.Sprintf("%s-specializations[%d]", field, i), report)
	}
}

// specializationFindings flags malformed variant lists: several default
// entries (first wins at resolution, the rest are dead) and duplicate
// (appearance, idiom) keys (only the first is ever picked).
func specializationFindings[T any](field string, s icon.Specializable[T], report *Report) {
	defaults := 0
	type key struct {
		appearance icon.Appearance
		idiom      icon.Idiom
		hasApp     bool
		hasIdiom   bool
	}
	seen := make(map[key]bool)

	for i, variant := range s.Variants {
		if variant.IsDefault() {
			defaults++
			if defaults > 1 {
				report.warn(fmt.Sprintf("%s-specializations[%d]", field, i), "extra default entry is unreachable; the first default wins")
			}
		}

		k := key{hasApp: variant.Appearance != nil, hasIdiom: variant.Idiom != nil}
		if variant.Appearance != nil {
			k.appearance = *variant.Appearance
		}
		if variant.Idiom != nil {
			k.idiom = *variant.Idiom
		}
		if seen[k] && !variant.IsDefault() {
			report.warn(fmt.Sprintf("%s-specializations[%d]", field, i), "duplicate variant key; only the first entry is used")
		}
		seen[k] = true
	}
}
