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

// Validator checks request bodies against their validate tags
type Validator struct {
	validate *validator.Validate
}

// creaturePattern accepts dex names ("mr-mime", "Mr. Mime") and numeric ids.
// Anything that could alter the upstream URL path or query is rejected.
var creaturePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 .'-]{0,63}$`)

var (
	validatorOnce sync.Once
	shared        *Validator
)

func newValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation("creature", func(fl validator.FieldLevel) bool {
		return creaturePattern.MatchString(strings.TrimSpace(fl.Field().String()))
	})
	return &Validator{validate: v}
}

// GetValidator returns the process-wide validator
func GetValidator() *Validator {
	validatorOnce.Do(func() { shared = newValidator() })
	return shared
}

// ValidateStruct validates s using its tags
func (v *Validator) ValidateStruct(s any) error {
	return v.validate.Struct(s)
}

// FormatValidationError maps each failed field, named by its JSON path such
// as "red.creatures[0]", to a short message.
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
		out[fieldPath(e.Namespace())] = fieldMessage(e)
	}
	return out
}

func fieldMessage(e validator.FieldError) string {
	isList := e.Kind() == reflect.Slice
	switch e.Tag() {
	case "required":
		return "This field is required"
	case "creature":
		return "Invalid creature name or id"
	case "max":
		if isList {
			return fmt.Sprintf("Must have at most %s entries", e.Param())
		}
		return fmt.Sprintf("Must be at most %s", e.Param())
	case "min":
		return fmt.Sprintf("Must be at least %s", e.Param())
	default:
		return "Invalid value"
	}
}

// fieldPath drops the request type from a validator namespace
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return strings.ToLower(f.Name)
	}
	return name
}
