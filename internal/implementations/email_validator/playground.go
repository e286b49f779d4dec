package emailvalidator

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

type PlaygroundEmailValidator struct {
	validate *validator.Validate
	tag      string
}

func NewPlayground(maxLength int) *PlaygroundEmailValidator {
	return &PlaygroundEmailValidator{
		validate: validator.New(),
		tag:      fmt.Sprintf("required,email,max=%d", maxLength),
	}
}

// IsValid returns an error only when the validation itself broke down.
func (v *PlaygroundEmailValidator) IsValid(email string) (bool, error) {
	err := v.validate.Var(email, v.tag)
	if err == nil {
		return true, nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		return false, nil
	}
	return false, err
}
