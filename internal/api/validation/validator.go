package validation

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/dreamydrift/journal-api/internal/domain"
	"github.com/dreamydrift/journal-api/pkg/problem"
)

var validate *validator.Validate

var hhmmPattern = regexp.MustCompile(`^([01]?\d|2[0-3]):[0-5]\d$`)

func init() {
	validate = validator.New()

	// Register custom isodate validator (calendar dates, not just the shape)
	validate.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02", fl.Field().String())
		return err == nil
	})

	// Register custom HH:MM wall-clock time validator
	validate.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return hhmmPattern.MatchString(fl.Field().String())
	})

	// Register custom late-reason catalog validator
	validate.RegisterValidation("reasonid", func(fl validator.FieldLevel) bool {
		_, ok := domain.ReasonByID(fl.Field().String())
		return ok
	})
}

// Validate validates a struct and returns field errors
func Validate(s interface{}) []problem.FieldError {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrors []problem.FieldError
	for _, err := range err.(validator.ValidationErrors) {
		fieldErrors = append(fieldErrors, problem.FieldError{
			Field:   toSnakeCase(err.Field()),
			Message: getValidationMessage(err),
		})
	}
	return fieldErrors
}

func getValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + err.Param()
	case "max":
		return "must be at most " + err.Param()
	case "oneof":
		return "must be one of: " + err.Param()
	case "isodate":
		return "must be a valid YYYY-MM-DD date"
	case "hhmm":
		return "must be a valid HH:MM time"
	case "reasonid":
		return "must be a known late-night reason id"
	default:
		return "is invalid"
	}
}

func toSnakeCase(s string) string {
	var result []byte
	for i, c := range s {
		if c >= 'A' && c <= 'Z' {
			if i > 0 {
				result = append(result, '_')
			}
			result = append(result, byte(c+'a'-'A'))
		} else {
			result = append(result, byte(c))
		}
	}
	return string(result)
}
