package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report koanf keys so messages match the YAML and APP_ env names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("koanf"), ",")
		if name == "" || name == "-" {
			return f.Name
		}

		return name
	})

	v.RegisterStructValidation(validateStorage, StorageConfig{})

	return v
}

// validateStorage checks the section of the selected driver and ignores the
// others, so a sqlite deployment does not need a valid redis address.
func validateStorage(sl validator.StructLevel) {
	s, ok := sl.Current().Interface().(StorageConfig)
	if !ok {
		return
	}

	var section any

	switch s.Driver {
	case DriverSQLite:
		section = s.SQLite
	case DriverRedis:
		section = s.Redis
	default:
		return
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(sl.Validator().Struct(section), &fieldErrs) {
		return
	}

	for _, fe := range fieldErrs {
		sl.ReportError(fe.Value(), s.Driver+"."+fe.Field(), fe.StructField(), fe.Tag(), fe.Param())
	}
}

// Validate checks every section and reports all failures at once.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return formatValidationErrors(err)
	}

	return nil
}

func formatValidationErrors(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	lines := make([]string, 0, len(fieldErrs))
	for _, e := range fieldErrs {
		lines = append(lines, formatFieldError(e))
	}

	return fmt.Errorf("config validation failed:\n  %s", strings.Join(lines, "\n  "))
}

func formatFieldError(e validator.FieldError) string {
	field := formatFieldPath(e.Namespace())

	switch e.Tag() {
	case "required":
		return field + " is required"
	case "required_if":
		return fmt.Sprintf("%s is required when %s", field, e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	case "url":
		return field + " must be a valid URL"
	case "startswith":
		return fmt.Sprintf("%s must start with %q", field, e.Param())
	case "hostname_port":
		return field + " must be host:port"
	default:
		return fmt.Sprintf("%s failed validation: %s", field, e.Tag())
	}
}

// formatFieldPath turns "Config.server.read_timeout" into "server.read_timeout".
func formatFieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		namespace = rest
	}

	return strings.ToLower(namespace)
}
