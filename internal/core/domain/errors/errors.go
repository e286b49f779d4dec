package errors

import "fmt"

type NilArgumentError struct {
	argument string
}

func NewNilArgumentError(argument string) *NilArgumentError {
	return &NilArgumentError{argument: argument}
}

func (e *NilArgumentError) Error() string {
	return fmt.Sprintf("argument '%s' must not be nil", e.argument)
}

type UnknownOptionError struct {
	option string
	value  string
}

func NewUnknownOptionError(option string, value string) *UnknownOptionError {
	return &UnknownOptionError{option: option, value: value}
}

func (e *UnknownOptionError) Error() string {
	return fmt.Sprintf("unknown %s '%s'", e.option, e.value)
}
