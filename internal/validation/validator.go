package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"unicode"

	"github.com/go-playground/validator/v10"

	shoperrors "github.com/alexisbeaulieu97/shopmate/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	zipPattern    = regexp.MustCompile(`^[0-9A-Za-z][0-9A-Za-z -]{2,9}$`)
	expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)
	upiPattern    = regexp.MustCompile(`^[A-Za-z0-9._-]{2,}@[A-Za-z]{2,}$`)
)

// Instance returns the shared validator used by config and form checks.
func Instance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(fieldLabel)

		_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
			return strings.TrimSpace(fl.Field().String()) != ""
		})

		_ = v.RegisterValidation("zipcode", func(fl validator.FieldLevel) bool {
			return zipPattern.MatchString(strings.TrimSpace(fl.Field().String()))
		})

		_ = v.RegisterValidation("cardnumber", func(fl validator.FieldLevel) bool {
			digits := strings.ReplaceAll(fl.Field().String(), " ", "")
			if len(digits) < 12 || len(digits) > 19 {
				return false
			}
			for _, r := range digits {
				if !unicode.IsDigit(r) {
					return false
				}
			}
			return true
		})

		_ = v.RegisterValidation("expiry", func(fl validator.FieldLevel) bool {
			return expiryPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("upi", func(fl validator.FieldLevel) bool {
			return upiPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Struct validates s and converts the first failure into a
// *errors.ValidationError whose message can be shown as is.
func Struct(s any) error {
	if err := Instance().Struct(s); err != nil {
		return Convert(err)
	}
	return nil
}

// Convert normalizes validator errors. Anything else is wrapped as a
// validation error on the whole input.
func Convert(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) && len(ves) > 0 {
		fe := ves[0]
		return shoperrors.NewValidationError(fe.Field(), Message(fe), err)
	}

	return shoperrors.NewValidationError("", err.Error(), err)
}

// Message renders a field error for display.
func Message(fe validator.FieldError) string {
	label := fe.Field()
	switch fe.Tag() {
	case "required", "notblank", "required_if":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
	case "url", "http_url":
		return fmt.Sprintf("%s must be a valid URL", label)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, fe.Param())
	case "eqfield":
		return fmt.Sprintf("%s does not match", label)
	case "zipcode":
		return fmt.Sprintf("%s must be a valid postal code", label)
	case "cardnumber":
		return fmt.Sprintf("%s must be 12 to 19 digits", label)
	case "expiry":
		return fmt.Sprintf("%s must look like MM/YY", label)
	case "upi":
		return fmt.Sprintf("%s must look like name@bank", label)
	case "len":
		return fmt.Sprintf("%s must be exactly %s characters", label, fe.Param())
	case "numeric":
		return fmt.Sprintf("%s must contain only digits", label)
	default:
		return fmt.Sprintf("%s failed on '%s' validation", label, fe.Tag())
	}
}

// fieldLabel names a field in messages: the label tag, then the json or
// yaml key, then the Go name.
func fieldLabel(field reflect.StructField) string {
	if label := field.Tag.Get("label"); label != "" {
		return label
	}
	for _, key := range []string{"json", "yaml"} {
		name := strings.SplitN(field.Tag.Get(key), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return field.Name
}
