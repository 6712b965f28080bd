package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupForm struct {
	Email           string `validate:"required,simple_email"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
	Role            string `validate:"required,role"`
}

func validForm() signupForm {
	return signupForm{Email: "a@b.co", Password: "abcdef", ConfirmPassword: "abcdef", Role: "MANAGER"}
}

func TestIsEmail(t *testing.T) {
	assert.True(t, IsEmail("a@b.co"))
	assert.True(t, IsEmail("buyer.one@kirana.example.in"))
	assert.False(t, IsEmail("not-an-email"))
	assert.False(t, IsEmail("a@b"))
	assert.False(t, IsEmail("a b@c.com"))
	assert.False(t, IsEmail(""))
}

func TestValidate_AcceptsValidForm(t *testing.T) {
	assert.NoError(t, Validate(validForm()))
}

func TestValidate_Email(t *testing.T) {
	f := validForm()
	f.Email = "not-an-email"

	fields := ValidateStruct(f)
	require.Len(t, fields, 1)
	assert.Equal(t, "signupForm.Email", fields[0].FailedField)
	assert.Equal(t, "simple_email", fields[0].Tag)
}

func TestValidate_PasswordLength(t *testing.T) {
	f := validForm()
	f.Password = "abcde"
	f.ConfirmPassword = "abcde"

	fields := ValidateStruct(f)
	require.Len(t, fields, 1)
	assert.Equal(t, "min", fields[0].Tag)
	assert.Equal(t, "6", fields[0].Value)

	f.Password = "abcdef"
	f.ConfirmPassword = "abcdef"
	assert.Empty(t, ValidateStruct(f))
}

func TestValidate_PasswordConfirmation(t *testing.T) {
	f := validForm()
	f.ConfirmPassword = "abcdeg"

	err := Validate(f)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Fields, 1)
	assert.Equal(t, "eqfield", verr.Fields[0].Tag)
	assert.Contains(t, err.Error(), "ConfirmPassword")
}

func TestValidate_Role(t *testing.T) {
	f := validForm()
	f.Role = "OWNER"

	fields := ValidateStruct(f)
	require.Len(t, fields, 1)
	assert.Equal(t, "role", fields[0].Tag)
}
