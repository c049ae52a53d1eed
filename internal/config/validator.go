package config

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	extmanerrors "github.com/alexisbeaulieu97/extman/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// report fields by their YAML names
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig checks the configuration against its schema.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return extmanerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if strings.TrimSpace(cfg.DataSource) == "" {
		return extmanerrors.NewValidationError("data_source", "data source cannot be blank", nil)
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := fieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		if ve.Tag() == "oneof" {
			msg = fmt.Sprintf("%s must be one of: %s (got %q)", field, ve.Param(), ve.Value())
		}
		return extmanerrors.NewValidationError(field, msg, err)
	}

	return extmanerrors.NewValidationError("config", err.Error(), err)
}

// fieldName drops the root struct name from the namespace, e.g.
// "Config.preferences.backend" becomes "preferences.backend".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return ns
}
