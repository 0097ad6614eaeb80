package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerForm struct {
	Name     string `json:"name" validate:"required,username"`
	Password string `json:"password" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Birthday string `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
}

func TestStructValid(t *testing.T) {
	form := registerForm{
		Name:     "alice1",
		Password: "s3cret",
		Email:    "alice@example.com",
		Birthday: "1990-04-01",
	}

	assert.Nil(t, Struct(&form))
}

func TestUsernameRule(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{"minimum length", "abcde", true},
		{"alphanumeric", "alice1", true},
		{"digits only", "12345", true},
		{"too short", "abcd", false},
		{"empty", "", false},
		{"with space", "alice bob", false},
		{"with punctuation", "alice!", false},
		{"with dash", "alice-1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := registerForm{
				Name:     tt.value,
				Password: "s3cret",
				Email:    "alice@example.com",
			}
			verrs := Struct(&form)
			if tt.valid {
				assert.Nil(t, verrs)
			} else {
				require.NotNil(t, verrs)
				require.Len(t, verrs.Errors, 1)
				assert.Equal(t, "name", verrs.Errors[0].Field)
			}
		})
	}
}

func TestFieldErrorsUseJSONNames(t *testing.T) {
	form := registerForm{
		Name:     "alice1",
		Password: "",
		Email:    "not-an-email",
		Birthday: "April 1st",
	}

	verrs := Struct(&form)
	require.NotNil(t, verrs)
	require.Len(t, verrs.Errors, 3)

	fields := make(map[string]string)
	for _, fe := range verrs.Errors {
		fields[fe.Field] = fe.Message
		assert.NotEmpty(t, fe.Message)
	}

	assert.Contains(t, fields, "password")
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "birthday")
}

func TestValidationErrorsError(t *testing.T) {
	var nilErrs *ValidationErrors
	assert.Empty(t, nilErrs.Error())

	errs := &ValidationErrors{Errors: []FieldError{
		{Field: "name", Message: "name is required"},
		{Field: "email", Message: "email must be valid"},
	}}
	assert.Equal(t, "validation failed: name is required; email must be valid", errs.Error())
}
