package errors

import (
	"fmt"
)

// ParseError represents a document decoding failure with optional source metadata.
type ParseError struct {
	Path    string
	Field   string
	Message string
	Err     error
}

// NewParseError constructs a ParseError for a document read from path.
func NewParseError(path, field string, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Field: field, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	switch {
	case e.Path != "" && e.Field != "":
		return fmt.Sprintf("parse error: %s: %s: %s", e.Path, e.Field, e.Message)
	case e.Field != "":
		return fmt.Sprintf("parse error: %s: %s", e.Field, e.Message)
	case e.Path != "":
		return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
	default:
		return fmt.Sprintf("parse error: %s", e.Message)
	}
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError captures document validation issues surfaced as hard errors.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// InvalidEnumError indicates a token outside one of the format's closed sets
// (appearance, idiom, blend mode, shadow kind, lighting, fill keyword).
type InvalidEnumError struct {
	Kind  string
	Token string
}

// NewInvalidEnumError constructs an InvalidEnumError for the given enum kind.
func NewInvalidEnumError(kind, token string) error {
	return &InvalidEnumError{Kind: kind, Token: token}
}

func (e *InvalidEnumError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("invalid %s value %q", e.Kind, e.Token)
}

// IndexError indicates an accessor was called with an out-of-range group or
// layer index. Always a programming error in the caller, never clamped.
type IndexError struct {
	Kind  string
	Index int
	Len   int
}

// NewIndexError constructs an IndexError for the given collection kind.
func NewIndexError(kind string, index, length int) error {
	return &IndexError{Kind: kind, Index: index, Len: length}
}

func (e *IndexError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s index %d out of range [0,%d)", e.Kind, e.Index, e.Len)
}

// NoVariantError indicates a required specializable property has no applicable
// variant and no default for the requested context. Only the background fill
// can fail this way; every other property has a built-in fallback.
type NoVariantError struct {
	Property   string
	Appearance string
	Idiom      string
}

// NewNoVariantError constructs a NoVariantError for the property at the given context.
func NewNoVariantError(property, appearance, idiom string) error {
	return &NoVariantError{Property: property, Appearance: appearance, Idiom: idiom}
}

func (e *NoVariantError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("no applicable variant for %s in context {%s, %s}", e.Property, e.Appearance, e.Idiom)
}
