package emailvalidator

import (
	"signup/internal/core/domain/controller"
	e "signup/internal/core/domain/errors"
)

const (
	KIND_OZZO       = "ozzo"
	KIND_PLAYGROUND = "playground"
)

func New(kind string, maxLength int) (controller.EmailValidator, error) {
	switch kind {
	case KIND_OZZO:
		return NewOzzo(maxLength), nil
	case KIND_PLAYGROUND:
		return NewPlayground(maxLength), nil
	}
	return nil, e.NewUnknownOptionError("email validator", kind)
}
