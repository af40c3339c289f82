// Package auth holds the login and registration forms and the checks that
// run on them before anything is sent to the API.
package auth

import (
	"strings"
	"unicode"

	"github.com/alexisbeaulieu97/shopmate/internal/validation"
	shoperrors "github.com/alexisbeaulieu97/shopmate/pkg/errors"
)

// Messages shown when the API gives no reason of its own.
const (
	LoginFailedMessage    = "Invalid email or password"
	RegisterFailedMessage = "Registration failed"
	TransportFailMessage  = "An error occurred. Please try again."
	PasswordMismatch      = "Passwords do not match"
)

// MinPasswordLength is the shortest password registration accepts.
const MinPasswordLength = 8

// Password strength messages, in the order they are checked.
const (
	PasswordTooShort     = "Password must be at least 8 characters long"
	PasswordNeedsUpper   = "Password must contain at least one uppercase letter"
	PasswordNeedsLower   = "Password must contain at least one lowercase letter"
	PasswordNeedsDigit   = "Password must contain at least one number"
	PasswordNeedsSpecial = "Password must contain at least one special character"
)

// Credentials is the login form.
type Credentials struct {
	Email    string `json:"email" label:"Email" validate:"notblank,email"`
	Password string `json:"password" label:"Password" validate:"required"`
}

// Normalize trims the email.
func (c Credentials) Normalize() Credentials {
	c.Email = strings.TrimSpace(c.Email)
	return c
}

// Validate checks the login form.
func (c Credentials) Validate() error {
	return validation.Struct(c.Normalize())
}

// Registration is the sign-up form.
type Registration struct {
	Name     string `json:"name" label:"Full name" validate:"notblank"`
	Email    string `json:"email" label:"Email" validate:"notblank,email"`
	Password string `json:"password" label:"Password" validate:"required"`
	Confirm  string `json:"confirmPassword" label:"Confirm password" validate:"required"`
}

// Normalize trims the name and email. Passwords are kept verbatim.
func (r Registration) Normalize() Registration {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	return r
}

// Validate runs the registration checks: required fields, then the
// confirmation match, then password strength.
func (r Registration) Validate() error {
	r = r.Normalize()
	if err := validation.Struct(r); err != nil {
		return err
	}
	if r.Password != r.Confirm {
		return shoperrors.NewValidationError("Confirm password", PasswordMismatch, nil)
	}
	return CheckPasswordStrength(r.Password)
}

// CheckPasswordStrength reports the first unmet strength rule.
func CheckPasswordStrength(password string) error {
	var hasUpper, hasLower, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSpecial = true
		}
	}

	var msg string
	switch {
	case len([]rune(password)) < MinPasswordLength:
		msg = PasswordTooShort
	case !hasUpper:
		msg = PasswordNeedsUpper
	case !hasLower:
		msg = PasswordNeedsLower
	case !hasDigit:
		msg = PasswordNeedsDigit
	case !hasSpecial:
		msg = PasswordNeedsSpecial
	default:
		return nil
	}
	return shoperrors.NewValidationError("Password", msg, nil)
}

// FailureMessage picks the inline message for a failed login or
// registration: the API's own message, the fallback for a rejected request,
// or the transport message when no response arrived.
func FailureMessage(err error, fallback string) string {
	if err == nil {
		return ""
	}
	if apiErr, ok := shoperrors.AsAPIError(err); ok {
		if strings.TrimSpace(apiErr.Message) != "" {
			return apiErr.Message
		}
		return fallback
	}
	if ve, ok := shoperrors.AsValidationError(err); ok {
		return ve.Message
	}
	return TransportFailMessage
}
