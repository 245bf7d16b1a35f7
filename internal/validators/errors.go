package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrEmptyEmail      = errors.New("email is empty")
	ErrInvalidEmail    = errors.New("email is malformed")
	ErrEmptyPassword   = errors.New("password is empty")
	ErrPasswordTooLong = errors.New("password is too long")
	ErrNameTooLong     = errors.New("name is too long")
)
