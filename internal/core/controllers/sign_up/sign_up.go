package signup

import (
	"context"
	"fmt"
	"signup/internal/core/domain/controller"
	e "signup/internal/core/domain/errors"
	"signup/internal/core/domain/logging"
)

const SUCCESS_MESSAGE = "sign up request accepted"

// Order matters: the first missing field is the one reported.
var REQUIRED_FIELDS = []string{"name", "email", "password", "passwordConfirmation"}

type signUp struct {
	log            logging.Logger
	emailValidator controller.EmailValidator
}

func New(log logging.Logger, emailValidator controller.EmailValidator) controller.Controller {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if emailValidator == nil {
		panic(e.NewNilArgumentError("emailValidator"))
	}
	return &signUp{log: log, emailValidator: emailValidator}
}

func (c *signUp) Handle(ctx context.Context, request controller.Request) controller.Response {
	for _, field := range REQUIRED_FIELDS {
		if !request.Body.Has(field) {
			c.log.Info(ctx, "Sign up request misses a required field.", logging.Entry("field", field))
			return controller.BadRequest(controller.NewMissingParamError(field))
		}
	}

	email, ok := request.Body.String("email")
	if !ok {
		c.log.Info(ctx, "Sign up request contains a non-string email.")
		return controller.BadRequest(controller.NewInvalidParamError("email"))
	}

	isValid, err := c.isValidEmail(email)
	if err != nil {
		c.log.Error(ctx, "Could not validate email.", logging.Entry("err", err))
		return controller.InternalServerError()
	}
	if !isValid {
		c.log.Info(ctx, "Sign up request contains an invalid email.")
		return controller.BadRequest(controller.NewInvalidParamError("email"))
	}

	c.log.Info(ctx, "Sign up request has been accepted.")
	return controller.OK(controller.SuccessBody{Message: SUCCESS_MESSAGE})
}

func (c *signUp) isValidEmail(email string) (isValid bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			isValid, err = false, fmt.Errorf("email validator panicked: %v", r)
		}
	}()

	isValid, err = c.emailValidator.IsValid(email)
	if err != nil {
		return false, fmt.Errorf("email validator failed: %w", err)
	}
	return isValid, nil
}
