package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	shoperrors "github.com/alexisbeaulieu97/shopmate/pkg/errors"
)

type sample struct {
	Email  string `json:"email" label:"Email" validate:"required,email"`
	Zip    string `json:"zipCode" validate:"zipcode"`
	Card   string `yaml:"card" validate:"omitempty,cardnumber"`
	Expiry string `validate:"omitempty,expiry"`
	UPI    string `validate:"omitempty,upi"`
}

func valid() sample {
	return sample{Email: "a@b.co", Zip: "94107"}
}

func TestStruct_Valid(t *testing.T) {
	require.NoError(t, Struct(valid()))
}

func TestStruct_UsesLabelInMessage(t *testing.T) {
	s := valid()
	s.Email = ""

	err := Struct(s)
	var ve *shoperrors.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "Email", ve.Field)
	assert.Equal(t, "Email is required", ve.Message)
}

func TestStruct_FallsBackToTagNames(t *testing.T) {
	s := valid()
	s.Zip = "!"

	var ve *shoperrors.ValidationError
	require.True(t, errors.As(Struct(s), &ve))
	assert.Equal(t, "zipCode", ve.Field)

	s = valid()
	s.Card = "12ab"
	require.True(t, errors.As(Struct(s), &ve))
	assert.Equal(t, "card", ve.Field)
	assert.Contains(t, ve.Message, "digits")
}

func TestCustomRules(t *testing.T) {
	cases := []struct {
		name string
		edit func(*sample)
		ok   bool
	}{
		{"card with spaces", func(s *sample) { s.Card = "4242 4242 4242 4242" }, true},
		{"expiry", func(s *sample) { s.Expiry = "09/27" }, true},
		{"expiry bad month", func(s *sample) { s.Expiry = "13/27" }, false},
		{"upi", func(s *sample) { s.UPI = "ada@okbank" }, true},
		{"upi missing bank", func(s *sample) { s.UPI = "ada@" }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := valid()
			tc.edit(&s)
			err := Struct(s)
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestConvert_NonValidatorError(t *testing.T) {
	err := Convert(errors.New("boom"))
	var ve *shoperrors.ValidationError
	require.True(t, errors.As(err, &ve))
	assert.Equal(t, "boom", ve.Message)
	assert.Nil(t, Convert(nil))
}
