package validate

import (
	"fmt"
	"log"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// alphaspace covers product names: letters and single spaces between words.
var alphaSpaceRegex = regexp.MustCompile(`^[a-zA-Z]+( [a-zA-Z]+)*$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	err := v.RegisterValidation(
		"alphaspace",
		func(fl validator.FieldLevel) bool {
			return alphaSpaceRegex.MatchString(fl.Field().String())
		},
	)
	if err != nil {
		log.Fatalf("failed to register 'alphaspace' validation: %v", err)
	}

	return v
}

// StructFields validates a struct against its `validate` tags and returns a
// field -> failed rule map usable as error details, or nil when valid.
func StructFields(s any) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{
			"struct": err.Error(),
		}
	}

	fieldErrs := make(map[string]string, len(validationErrs))
	for _, fieldErr := range validationErrs {
		fieldErrs[fieldErr.Field()] = fmt.Sprintf(
			"failed on the '%s' rule",
			fieldErr.Tag(),
		)
	}

	return fieldErrs
}
