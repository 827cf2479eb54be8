package icon

import (
	"encoding/json"
	"errors"

	iconerrors "github.com/Aeastr/iconkit/pkg/errors"
)

var (
	errMissingValue = errors.New("specialization entry is missing its value")
	errNilDocument  = errors.New("document is nil")
)

// Variant is one context-dependent value of a specializable property. A nil
// Appearance or Idiom means the variant does not constrain that axis; a
// variant with both nil is the property's default entry.
type Variant[T any] struct {
	Appearance *Appearance
	Idiom      *Idiom
	Value      T
}

type variantWire struct {
	Appearance *string         `json:"appearance,omitempty"`
	Idiom      *string         `json:"idiom,omitempty"`
	Value      json.RawMessage `json:"value"`
}

// MarshalJSON emits the {appearance?, idiom?, value} wire shape.
func (v Variant[T]) MarshalJSON() ([]byte, error) {
	value, err := json.Marshal(v.Value)
	if err != nil {
		return nil, err
	}

	wire := variantWire{Value: value}
	if v.Appearance != nil {
		token := string(*v.Appearance)
		wire.Appearance = &token
	}
	if v.Idiom != nil {
		token := string(*v.Idiom)
		wire.Idiom = &token
	}
	return json.Marshal(wire)
}

// UnmarshalJSON decodes a variant entry, validating axis tokens against their
// closed sets.
func (v *Variant[T]) UnmarshalJSON(data []byte) error {
	var wire variantWire
	if err := json.Unmarshal(data, &wire); err != nil {
		return iconerrors.NewParseError("", "specialization", err)
	}

	v.Appearance = nil
	v.Idiom = nil

	if wire.Appearance != nil {
		appearance, err := ParseAppearance(*wire.Appearance)
		if err != nil {
			return err
		}
		v.Appearance = &appearance
	}
	if wire.Idiom != nil {
		idiom, err := ParseIdiom(*wire.Idiom)
		if err != nil {
			return err
		}
		v.Idiom = &idiom
	}

	if wire.Value == nil {
		return iconerrors.NewParseError("", "specialization", errMissingValue)
	}
	return json.Unmarshal(wire.Value, &v.Value)
}

// IsDefault reports whether the variant constrains neither axis.
func (v Variant[T]) IsDefault() bool {
	return v.Appearance == nil && v.Idiom == nil
}

// sameKey reports whether two (appearance, idiom) keys are identical.
func sameKey(a1 *Appearance, i1 *Idiom, a2 *Appearance, i2 *Idiom) bool {
	return sameAppearance(a1, a2) && sameIdiom(i1, i2)
}

func sameAppearance(a, b *Appearance) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func sameIdiom(a, b *Idiom) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// Specializable holds a property that may vary by rendering context: an
// optional plain value plus an ordered variant list. Both may be present at
// once; the resolver prefers a matching variant over the plain value. The
// container is passive data — match policy lives in the resolve package.
type Specializable[T any] struct {
	Plain    *T
	Variants []Variant[T]
}

// Plain wraps a bare value with no specializations.
func Plain[T any](value T) Specializable[T] {
	return Specializable[T]{Plain: &value}
}

// Specialized wraps an ordered variant list with no plain value.
func Specialized[T any](variants ...Variant[T]) Specializable[T] {
	return Specializable[T]{Variants: variants}
}

// IsZero reports whether the property carries neither a plain value nor
// variants, i.e. it was absent from the document.
func (s Specializable[T]) IsZero() bool {
	return s.Plain == nil && len(s.Variants) == 0
}

// UpsertVariant replaces the variant with the same (appearance, idiom) key,
// or appends a new one when no variant carries that key.
func (s *Specializable[T]) UpsertVariant(appearance *Appearance, idiom *Idiom, value T) {
	for i := range s.Variants {
		if sameKey(s.Variants[i].Appearance, s.Variants[i].Idiom, appearance, idiom) {
			s.Variants[i].Value = value
			return
		}
	}
	s.Variants = append(s.Variants, Variant[T]{Appearance: appearance, Idiom: idiom, Value: value})
}

// RemoveVariant deletes every variant whose appearance key equals the given
// one, ignoring idiom entirely. This matches the historical editing-tool
// semantics: removing "dark" also removes a {dark, circle} variant, and a
// variant keyed only by idiom is never removable through this path.
func (s *Specializable[T]) RemoveVariant(appearance *Appearance) {
	kept := s.Variants[:0]
	for _, variant := range s.Variants {
		if !sameAppearance(variant.Appearance, appearance) {
			kept = append(kept, variant)
		}
	}
	if len(kept) == 0 {
		s.Variants = nil
		return
	}
	s.Variants = kept
}
