// Package validation provides request validation based on
// go-playground/validator, with translated field-level error messages
// suitable for direct inclusion in API responses.
package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// usernameRegex constrains account names to at least five alphanumeric
// characters. No punctuation, no spaces.
var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9]{5,}$`)

// Validator wraps go-playground/validator with translated messages and
// the custom rules used by the API.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

var (
	globalValidator *Validator
	once            sync.Once
)

// Global returns the shared validator instance, initializing it on
// first use.
func Global() *Validator {
	once.Do(func() {
		globalValidator = New()
	})
	return globalValidator
}

// New creates a Validator with English translations and custom rules
// registered.
func New() *Validator {
	v := &Validator{
		validate: validator.New(),
	}

	// Report field names from JSON tags so error messages match the
	// wire format clients actually send.
	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	v.trans, _ = uni.GetTranslator("en")
	_ = en_translations.RegisterDefaultTranslations(v.validate, v.trans)

	v.registerCustomRules()

	return v
}

// registerCustomRules wires the API-specific validation tags.
func (v *Validator) registerCustomRules() {
	_ = v.validate.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRegex.MatchString(fl.Field().String())
	})
	_ = v.validate.RegisterTranslation("username", v.trans,
		func(ut ut.Translator) error {
			return ut.Add("username", "{0} must be at least 5 characters and contain only letters and digits", true)
		},
		func(ut ut.Translator, fe validator.FieldError) string {
			t, _ := ut.T("username", fe.Field())
			return t
		},
	)
}

// Struct validates s and returns translated field errors, or nil when
// the value is valid.
func (v *Validator) Struct(s interface{}) *ValidationErrors {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return &ValidationErrors{
			Errors: []FieldError{{Field: "unknown", Message: err.Error()}},
		}
	}

	result := &ValidationErrors{
		Errors: make([]FieldError, 0, len(verrs)),
	}
	for _, fe := range verrs {
		result.Errors = append(result.Errors, FieldError{
			Field:   fe.Field(),
			Tag:     fe.Tag(),
			Message: fe.Translate(v.trans),
		})
	}
	return result
}

// Struct validates a struct using the shared validator.
func Struct(s interface{}) *ValidationErrors {
	return Global().Struct(s)
}
