// Package inputval validates request payloads before they reach a store.
//
// Validation failures map to 422 responses; the handlers never see a
// payload that violates its schema. One canonical schema exists per entity,
// with the stricter lesson constraints (MM:SS duration, URL shape) expressed
// as omitempty validator tags rather than a second divergent schema.
package inputval

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// durationRe matches lesson durations in MM:SS form, e.g. "5:30" or "15:05".
var durationRe = regexp.MustCompile(`^([0-5]?\d):([0-5]?\d)$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// mmss: lesson duration shape used by strict lesson validation.
	_ = v.RegisterValidation("mmss", func(fl validator.FieldLevel) bool {
		return durationRe.MatchString(fl.Field().String())
	})
	return v
}

// Struct validates a request payload against its validator tags.
// The returned error is suitable for Message.
func Struct(payload any) error {
	return validate.Struct(payload)
}

// Message flattens a validation error into a short, field-oriented detail
// string, e.g. "validation failed: Name (required), Email (email)".
func Message(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return "invalid request payload"
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
