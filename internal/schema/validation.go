package schema

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Package-level validator used by Validate.
var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// Report YAML field names instead of Go field names.
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	if err := validate.RegisterValidation("param_name", validateParamName); err != nil {
		panic(fmt.Errorf("register validator param_name: %w", err))
	}
	validate.RegisterStructValidation(validateSchemaLevel, Schema{})
}

// validateParamName implements the "param_name" tag. A name ends at the
// first space of a line, so names with spaces or line breaks could never
// be read back from a parameter file.
func validateParamName(fl validator.FieldLevel) bool {
	return !strings.ContainsAny(fl.Field().String(), " \n\r")
}

// validDefault reports whether value reads back unchanged from a written
// parameter file: values are cut at the comment prefix and line breaks,
// and surrounding spaces are trimmed.
func validDefault(value, prefix string) bool {
	if strings.Contains(value, prefix) || strings.ContainsAny(value, "\n\r") {
		return false
	}
	return strings.Trim(value, " ") == value
}

// validateSchemaLevel checks rules that depend on other fields: unique
// names, and names and defaults that survive the comment prefix.
func validateSchemaLevel(sl validator.StructLevel) {
	s := sl.Current().Interface().(Schema)
	prefix := s.EffectiveCommentPrefix()

	seen := make(map[string]bool, len(s.Parameters))
	for i, p := range s.Parameters {
		if p.Name == "" {
			continue
		}
		field := fmt.Sprintf("parameters[%d].name", i)
		if seen[p.Name] {
			sl.ReportError(p.Name, field, "Name", "unique_name", "")
		}
		seen[p.Name] = true

		if strings.Contains(p.Name, prefix) {
			sl.ReportError(p.Name, field, "Name", "no_comment_prefix", prefix)
		}

		if p.Default != "" && !validDefault(p.Default, prefix) {
			sl.ReportError(p.Default, fmt.Sprintf("parameters[%d].default", i), "Default", "param_value", prefix)
		}
	}
}

// Validate runs tag-based and cross-field validation on s.
func (s *Schema) Validate() error {
	if err := validate.Struct(s); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// formatValidationError renders go-playground/validator errors as concise, user-facing text.
func formatValidationError(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	var messages []string
	for _, fieldError := range validationErrors {
		messages = append(messages, formatFieldError(fieldError))
	}

	return fmt.Errorf("schema validation failed:\n  - %s", strings.Join(messages, "\n  - "))
}

// formatFieldError creates user-friendly messages for field validation failures.
func formatFieldError(fieldError validator.FieldError) string {
	field := strings.TrimPrefix(fieldError.Namespace(), "Schema.")

	switch fieldError.Tag() {
	case "required":
		return fmt.Sprintf("'%s' is required", field)
	case "param_name":
		return fmt.Sprintf("'%s' must not contain spaces or line breaks, got %q", field, fieldError.Value())
	case "unique_name":
		return fmt.Sprintf("'%s' duplicates parameter %q", field, fieldError.Value())
	case "no_comment_prefix":
		return fmt.Sprintf("'%s' must not contain the comment prefix %q, got %q", field, fieldError.Param(), fieldError.Value())
	case "param_value":
		return fmt.Sprintf("'%s' must not contain the comment prefix %q, line breaks or surrounding spaces, got %q", field, fieldError.Param(), fieldError.Value())
	default:
		return fmt.Sprintf("'%s' failed validation '%s'", field, fieldError.Tag())
	}
}
