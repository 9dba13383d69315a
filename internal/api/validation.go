package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/phrazzld/cloud-task-manager/internal/domain"
)

// newValidator returns a validator that reports JSON field names and knows
// the notblank and taskstatus tags.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Registration only fails for empty tags or nil funcs.
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("taskstatus", func(fl validator.FieldLevel) bool {
		return domain.TaskStatus(fl.Field().String()).IsValid()
	})

	return v
}

// fieldMessages renders validation failures as a field -> message map.
// It understands validator.ValidationErrors and *domain.ValidationError;
// any other error yields nil.
func fieldMessages(err error) map[string]string {
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make(map[string]string, len(validationErrs))
		for _, fe := range validationErrs {
			if _, seen := fields[fe.Field()]; !seen {
				fields[fe.Field()] = tagMessage(fe)
			}
		}
		return fields
	}

	var domainErr *domain.ValidationError
	if errors.As(err, &domainErr) {
		return map[string]string{
			domainErr.Field: fieldLabel(domainErr.Field) + " " + domainErr.Message,
		}
	}

	return nil
}

// decodeFieldMessages names the field a JSON body got the wrong type for.
// Syntax errors and other decode failures carry no field and yield nil.
func decodeFieldMessages(err error) map[string]string {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) || typeErr.Field == "" {
		return nil
	}

	field := typeErr.Field
	label := fieldLabel(field)
	msg := label + " is invalid"
	switch {
	case field == "status":
		msg = label + " must be one of " + domain.JoinStatuses(", ")
	case typeErr.Type != nil && typeErr.Type.Kind() == reflect.String:
		msg = label + " must be a string"
	}
	return map[string]string{field: msg}
}

func tagMessage(fe validator.FieldError) string {
	label := fieldLabel(fe.Field())
	switch fe.Tag() {
	case "required", "notblank":
		return label + " is required"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
	case "taskstatus":
		return label + " must be one of " + domain.JoinStatuses(", ")
	default:
		return label + " is invalid"
	}
}

// fieldLabel capitalizes a JSON field name for messages.
func fieldLabel(field string) string {
	if field == "" {
		return "Value"
	}
	return strings.ToUpper(field[:1]) + field[1:]
}
