package emailvalidator

import (
	"github.com/asaskevich/govalidator"
	validation "github.com/go-ozzo/ozzo-validation"
)

// Format only: no MX or host lookups happen while validating.
var emailFormat = validation.NewStringRule(govalidator.IsEmail, "must be a valid email address")

type OzzoEmailValidator struct {
	maxLength int
}

func NewOzzo(maxLength int) *OzzoEmailValidator {
	return &OzzoEmailValidator{maxLength: maxLength}
}

func (v *OzzoEmailValidator) IsValid(email string) (bool, error) {
	err := validation.Validate(email, validation.Required, emailFormat, validation.Length(0, v.maxLength))
	return err == nil, nil
}
