package controller

import "fmt"

type ErrorKind string

const (
	KindMissingParam ErrorKind = "MissingParamError"
	KindInvalidParam ErrorKind = "InvalidParamError"
	KindServerError  ErrorKind = "ServerError"
)

// Error is the body of every non-successful controller response.
type Error struct {
	Kind    ErrorKind `json:"kind"`
	Param   string    `json:"param,omitempty"`
	Message string    `json:"error"`
}

func NewMissingParamError(param string) *Error {
	return &Error{
		Kind:    KindMissingParam,
		Param:   param,
		Message: fmt.Sprintf("Missing param: %s", param),
	}
}

func NewInvalidParamError(param string) *Error {
	return &Error{
		Kind:    KindInvalidParam,
		Param:   param,
		Message: fmt.Sprintf("Invalid param: %s", param),
	}
}

func NewServerError() *Error {
	return &Error{
		Kind:    KindServerError,
		Message: "Internal server error",
	}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Param == t.Param
}
