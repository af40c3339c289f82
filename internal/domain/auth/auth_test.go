package auth

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	shoperrors "github.com/alexisbeaulieu97/shopmate/pkg/errors"
)

func messageOf(t *testing.T, err error) string {
	t.Helper()
	ve, ok := shoperrors.AsValidationError(err)
	require.True(t, ok, "expected validation error, got %v", err)
	return ve.Message
}

func validRegistration() Registration {
	return Registration{
		Name:     "Ada Lovelace",
		Email:    "ada@example.com",
		Password: "Secur3!pass",
		Confirm:  "Secur3!pass",
	}
}

func TestCredentials_Validate(t *testing.T) {
	require.NoError(t, Credentials{Email: " ada@example.com ", Password: "x"}.Validate())
	assert.Equal(t, "Email is required", messageOf(t, Credentials{Password: "x"}.Validate()))
	assert.Equal(t, "Email must be a valid email address", messageOf(t, Credentials{Email: "ada", Password: "x"}.Validate()))
	assert.Equal(t, "Password is required", messageOf(t, Credentials{Email: "ada@example.com"}.Validate()))
}

func TestRegistration_Valid(t *testing.T) {
	require.NoError(t, validRegistration().Validate())
}

func TestRegistration_RequiredBeforeMatch(t *testing.T) {
	r := validRegistration()
	r.Name = "  "
	r.Confirm = "different"
	assert.Equal(t, "Full name is required", messageOf(t, r.Validate()))
}

func TestRegistration_MismatchBeforeStrength(t *testing.T) {
	r := validRegistration()
	r.Password = "abc"
	r.Confirm = "abd"
	assert.Equal(t, PasswordMismatch, messageOf(t, r.Validate()))
}

func TestRegistration_StrengthOrder(t *testing.T) {
	cases := []struct {
		password string
		want     string
	}{
		{"abc", PasswordTooShort},
		{"Ab1!", PasswordTooShort},
		{"lowercase1!", PasswordNeedsUpper},
		{"UPPERCASE1!", PasswordNeedsLower},
		{"NoDigits!!", PasswordNeedsDigit},
		{"NoSpecial12", PasswordNeedsSpecial},
	}

	for _, tc := range cases {
		t.Run(tc.password, func(t *testing.T) {
			r := validRegistration()
			r.Password = tc.password
			r.Confirm = tc.password
			assert.Equal(t, tc.want, messageOf(t, r.Validate()))
		})
	}
}

func TestFailureMessage(t *testing.T) {
	withMessage := shoperrors.NewAPIError("auth/login", 401, "Account locked")
	withoutMessage := shoperrors.NewAPIError("auth/login", 401, "")
	wrapped := fmt.Errorf("login: %w", withMessage)

	assert.Equal(t, "Account locked", FailureMessage(withMessage, LoginFailedMessage))
	assert.Equal(t, "Account locked", FailureMessage(wrapped, LoginFailedMessage))
	assert.Equal(t, LoginFailedMessage, FailureMessage(withoutMessage, LoginFailedMessage))
	assert.Equal(t, RegisterFailedMessage, FailureMessage(withoutMessage, RegisterFailedMessage))
	assert.Equal(t, TransportFailMessage, FailureMessage(errors.New("connection refused"), LoginFailedMessage))
	assert.Equal(t, PasswordMismatch, FailureMessage(shoperrors.NewValidationError("x", PasswordMismatch, nil), LoginFailedMessage))
	assert.Empty(t, FailureMessage(nil, LoginFailedMessage))
}
