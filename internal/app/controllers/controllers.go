package controllers

import (
	"signup/internal/app/deps"
	signup "signup/internal/core/controllers/sign_up"
	"signup/internal/core/domain/controller"
)

type Controllers struct {
	SignUp controller.Controller
}

func InitControllers(deps *deps.Deps) *Controllers {
	c := &Controllers{}

	c.SignUp = signup.New(deps.Logger, deps.EmailValidator)

	return c
}
