package handler

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var itemIDPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)

// fieldMessages maps validation tags to client-facing text. Tags with a
// parameter get it appended through the %s verb.
var fieldMessages = map[string]string{
	"required": "This field is required",
	"notblank": "Must not be blank",
	"itemid":   "Must be a catalog item id such as OAK_PLANKS",
	"max":      "Must be at most %s",
	"min":      "Must be at least %s",
}

var sharedValidator = sync.OnceValue(newValidator)

// Validator checks request bodies against their validate tags
type Validator struct {
	validate *validator.Validate
}

func newValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names so clients can match them to the body they sent
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	mustRegister(v, "notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	mustRegister(v, "itemid", func(fl validator.FieldLevel) bool {
		return itemIDPattern.MatchString(fl.Field().String())
	})

	return &Validator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// GetValidator returns the process-wide validator
func GetValidator() *Validator {
	return sharedValidator()
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError turns validation errors into a field -> message map
// keyed by JSON field name. Anything else becomes a generic "error" entry.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string]string{"error": "Invalid request format"}
	}

	out := make(map[string]string, len(verrs))
	for _, e := range verrs {
		msg, ok := fieldMessages[e.Tag()]
		if !ok {
			out[e.Field()] = "Invalid value"
			continue
		}
		if strings.Contains(msg, "%s") {
			param := e.Param()
			if e.Kind() == reflect.String {
				param += " characters"
			}
			msg = fmt.Sprintf(msg, param)
		}
		out[e.Field()] = msg
	}
	return out
}
