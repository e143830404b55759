// Package validation enforces field-level invariants on review payloads
// before any store interaction. It reports every violation at once so the
// client can correct all fields in a single round trip.
package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"kobowave-backend/internal/models"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// notblank rejects strings that are empty after trimming.
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(err)
	}
	// trimmedmin=N requires at least N characters after trimming.
	if err := v.RegisterValidation("trimmedmin", trimmedMin); err != nil {
		panic(err)
	}
	return v
}

func trimmedMin(fl validator.FieldLevel) bool {
	n, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(strings.TrimSpace(fl.Field().String())) >= n
}

// ForCreate checks a full creation payload and returns every violation.
func ForCreate(in *models.ReviewInput) []string {
	return collect(validate.Struct(in))
}

// ForUpdate checks only the fields present in a partial payload. A nil
// field means "leave unchanged" and is never a violation.
func ForUpdate(patch *models.ReviewPatch) []string {
	return collect(validate.Struct(patch))
}

func collect(err error) []string {
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return []string{err.Error()}
	}
	out := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	switch fe.StructField() {
	case "Type":
		return `type must be either "movie" or "restaurant"`
	case "ItemID":
		return "itemId is required"
	case "ItemTitle":
		return "itemTitle is required"
	case "Content":
		return "content must be at least 10 characters long"
	case "Rating":
		return "rating must be between 1 and 5"
	case "Author":
		return "author name is required"
	}
	return fmt.Sprintf("%s is invalid", fe.StructField())
}
