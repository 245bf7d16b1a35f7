package validators

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/trackflow/trackflow-server/models"
)

// Field names accepted by [CredentialsValidator.Validate].
const (
	FieldEmail    = "Email"
	FieldPassword = "Password"
	FieldName     = "Name"
)

var credentialsFields = []string{FieldEmail, FieldPassword, FieldName}

// CredentialsValidator checks [models.Credentials] against their validate
// struct tags.
type CredentialsValidator struct {
	validate *validator.Validate
}

func NewCredentialsValidator() Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	// the tag name is static, registration cannot fail
	_ = validate.RegisterValidation("maxbytes", maxBytes)

	return &CredentialsValidator{validate: validate}
}

// Validate accepts models.Credentials or *models.Credentials. With no fields
// every tagged field is checked; otherwise only the named ones.
//
// The first violation is returned as one of the package sentinels.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateCredentials(ctx, *value, fields...)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}
}

func (v *CredentialsValidator) validateCredentials(ctx context.Context, credentials models.Credentials, fields ...string) error {
	for _, field := range fields {
		if !slices.Contains(credentialsFields, field) {
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	var err error
	if len(fields) == 0 {
		err = v.validate.StructCtx(ctx, credentials)
	} else {
		err = v.validate.StructPartialCtx(ctx, credentials, fields...)
	}

	return credentialsError(err)
}

// credentialsError maps the first failed tag onto a sentinel.
func credentialsError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
		return err
	}

	fe := validationErrors[0]
	switch fe.StructField() {
	case FieldEmail:
		if fe.Tag() == "required" {
			return ErrEmptyEmail
		}
		return ErrInvalidEmail
	case FieldPassword:
		if fe.Tag() == "required" {
			return ErrEmptyPassword
		}
		return fmt.Errorf("%w: at most %s bytes", ErrPasswordTooLong, fe.Param())
	case FieldName:
		return fmt.Errorf("%w: at most %s characters", ErrNameTooLong, fe.Param())
	default:
		return err
	}
}

// maxBytes limits the byte length of a string, unlike max which counts runes.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}

	return len(fl.Field().String()) <= limit
}
