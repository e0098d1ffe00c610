package password

import "github.com/go-playground/validator/v10"

// Tag is the struct tag name of the strength validation.
const Tag = "password_strength"

// RegisterValidation adds the password_strength tag to v.
func RegisterValidation(v *validator.Validate) error {
	return v.RegisterValidation(Tag, func(fl validator.FieldLevel) bool {
		return AllMet(fl.Field().String())
	})
}
