package config

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/repovault/internal/dbx"
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("sqlident", func(fl validator.FieldLevel) bool {
		_, err := dbx.NewSchema(fl.Field().String())
		return err == nil
	})
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	if err := validate.Struct(cfg); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError reports the first failing field.
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		e := validationErrs[0]
		if e.Field() == "SecretKey" || e.Field() == "S3RootPassword" {
			return fmt.Errorf("%s: validation failed on '%s' tag", e.Namespace(), e.Tag())
		}
		return fmt.Errorf("%s: validation failed on '%s' tag (value: %v)",
			e.Namespace(), e.Tag(), e.Value())
	}
	return err
}
