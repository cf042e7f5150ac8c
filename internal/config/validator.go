package config

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/floatkit/internal/geometry"
	"github.com/alexisbeaulieu97/floatkit/internal/ui/components"
	floatkiterrors "github.com/alexisbeaulieu97/floatkit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("placement", func(fl validator.FieldLevel) bool {
			_, err := geometry.ParsePlacement(fl.Field().String())
			return err == nil
		})

		_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
			_, err := components.ThemeByName(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// Validate checks field ranges, placements and the theme name.
func Validate(cfg *Config) error {
	if cfg == nil {
		return floatkiterrors.NewValidationError("config", "configuration is nil", nil)
	}
	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}
	return nil
}

// convertValidationError reports the first failing field by its config key.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := configKey(ve)
		var msg string
		switch ve.Tag() {
		case "placement":
			msg = fmt.Sprintf("%s: unknown placement %q", field, ve.Value())
		case "theme":
			msg = fmt.Sprintf("%s: unknown theme %q (want one of %s)", field, ve.Value(), strings.Join(components.ThemeNames(), ", "))
		default:
			msg = fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		}
		return floatkiterrors.NewValidationError(field, msg, err)
	}

	return floatkiterrors.NewValidationError("config", err.Error(), err)
}

// configKey turns Config.Tooltip.Delay into tooltip.delay.
func configKey(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	keys := make([]string, 0, len(parts))
	for _, part := range parts {
		keys = append(keys, snake(part))
	}
	return strings.Join(keys, ".")
}

func snake(name string) string {
	var b strings.Builder
	for i, r := range name {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				b.WriteByte('_')
			}
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
