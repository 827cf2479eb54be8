package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/Aeastr/iconkit/internal/resolve"
	"github.com/Aeastr/iconkit/internal/validate"
	iconerrors "github.com/Aeastr/iconkit/pkg/errors"
)

// DefaultFileName is the workspace settings file looked up next to a bundle.
const DefaultFileName = "iconkit.yaml"

// Settings are the optional workspace-level knobs for the CLI: validation
// limits, the contexts resolved by default, and asset names available beyond
// the bundle's Assets directory.
type Settings struct {
	Limits      validate.Limits `yaml:"limits"`
	Contexts    []ContextSpec   `yaml:"contexts,omitempty"`
	ExtraAssets []string        `yaml:"extra_assets,omitempty"`
}

// ContextSpec is a render context as written in iconkit.yaml.
type ContextSpec struct {
	Appearance string `yaml:"appearance" validate:"required,oneof=light dark tinted"`
	Idiom      string `yaml:"idiom" validate:"required,oneof=square circle"`
}

// Context converts the spec into a resolver context.
func (c ContextSpec) Context() (resolve.Context, error) {
	return resolve.ParseContext(c.Appearance, c.Idiom)
}

// Default returns the settings used when no iconkit.yaml exists: documented
// limits and all six contexts.
func Default() *Settings {
	return &Settings{Limits: validate.DefaultLimits()}
}

// ResolveContexts returns the configured contexts, or every context when none
// are configured.
func (s *Settings) ResolveContexts() ([]resolve.Context, error) {
	if len(s.Contexts) == 0 {
		return resolve.AllContexts(), nil
	}

	contexts := make([]resolve.Context, 0, len(s.Contexts))
	for _, spec := range s.Contexts {
		ctx, err := spec.Context()
		if err != nil {
			return nil, err
		}
		contexts = append(contexts, ctx)
	}
	return contexts, nil
}

// Load reads settings from path. A missing file returns Default() without
// error; a malformed file is a ParseError.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, iconerrors.NewParseError(path, "", err)
	}

	settings := Default()
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, iconerrors.NewParseError(path, "", err)
	}

	if err := validateSettings(settings); err != nil {
		return nil, err
	}
	return settings, nil
}

var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

// settingsValidator reports field paths using yaml tag names, so findings read
// the way the file is written.
func settingsValidator() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New()
		validatorInst.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.Split(field.Tag.Get("yaml"), ",")[0]
			if name == "" || name == "-" {
				return field.Name
			}
			return name
		})
	})
	return validatorInst
}

func validateSettings(settings *Settings) error {
	err := settingsValidator().Struct(settings)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return iconerrors.NewValidationError("", err.Error(), err)
	}

	first := fieldErrors[0]
	field := strings.TrimPrefix(first.Namespace(), "Settings.")
	return iconerrors.NewValidationError(field, describeRule(first), err)
}

func describeRule(fieldErr validator.FieldError) string {
	switch fieldErr.Tag() {
	case "min":
		return fmt.Sprintf("must be at least %s", fieldErr.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fieldErr.Param())
	case "required":
		return "is required"
	}
	return fmt.Sprintf("fails the %q rule", fieldErr.Tag())
}
