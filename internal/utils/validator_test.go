// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=8"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
	OTP             string `validate:"required,otp"`
}

func TestValidateStructPasses(t *testing.T) {
	form := sampleForm{
		Email:           "user@example.com",
		Password:        "supersecret",
		ConfirmPassword: "supersecret",
		OTP:             "123456",
	}
	assert.NoError(t, ValidateStruct(&form))
}

func TestValidationErrorsCarryFieldMessages(t *testing.T) {
	form := sampleForm{
		Email:           "not-an-email",
		Password:        "short",
		ConfirmPassword: "different",
		OTP:             "12ab56",
	}

	errs := GetValidationErrors(ValidateStruct(&form))
	require.Len(t, errs, 4)

	byField := map[string]ValidationError{}
	for _, e := range errs {
		byField[e.Field] = e
	}

	assert.Equal(t, "Invalid email format", byField["email"].Message)
	assert.Equal(t, "Password must be at least 8 characters", byField["password"].Message)
	assert.Equal(t, "Passwords do not match", byField["confirmpassword"].Message)
	assert.Equal(t, "Verification code must be 6 digits", byField["otp"].Message)
}

func TestOTPRuleRequiresSixDigits(t *testing.T) {
	type otpOnly struct {
		OTP string `validate:"otp"`
	}

	assert.NoError(t, ValidateStruct(&otpOnly{OTP: "000000"}))
	assert.Error(t, ValidateStruct(&otpOnly{OTP: "12345"}))
	assert.Error(t, ValidateStruct(&otpOnly{OTP: "1234567"}))
	assert.Error(t, ValidateStruct(&otpOnly{OTP: "12345x"}))
}
