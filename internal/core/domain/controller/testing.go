package controller

import (
	"errors"
	"sync"
)

var ErrFakeEmailValidator = errors.New("fake email validator failure")

type FakeEmailValidator struct {
	IsValidResult bool
	ReturnError   bool
	Panic         bool
	Calls         []string
	lock          sync.Mutex
}

func NewFakeEmailValidator(isValid bool) *FakeEmailValidator {
	return &FakeEmailValidator{IsValidResult: isValid}
}

func (v *FakeEmailValidator) IsValid(email string) (bool, error) {
	v.lock.Lock()
	v.Calls = append(v.Calls, email)
	v.lock.Unlock()

	if v.Panic {
		panic("fake email validator panic")
	}
	if v.ReturnError {
		return false, ErrFakeEmailValidator
	}
	return v.IsValidResult, nil
}

func (v *FakeEmailValidator) CallCount() int {
	v.lock.Lock()
	defer v.lock.Unlock()
	return len(v.Calls)
}

func (v *FakeEmailValidator) LastCalledWith() string {
	v.lock.Lock()
	defer v.lock.Unlock()
	l := len(v.Calls)
	if l == 0 {
		panic("Call count is 0.")
	}
	return v.Calls[l-1]
}
