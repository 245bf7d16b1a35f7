package http

import (
	"errors"

	"github.com/trackflow/trackflow-server/internal/service"
	"github.com/trackflow/trackflow-server/internal/store"
	"github.com/trackflow/trackflow-server/models"
)

type errorResponse struct {
	target  error
	code    models.ResponseCode
	message string

	// exposeDetail replaces message with the text of the matched error chain.
	exposeDetail bool
}

// errorResponses is checked in order; the first matching target wins.
var errorResponses = []errorResponse{
	{target: service.ErrInvalidDataProvided, code: models.CodeInvalidParams, exposeDetail: true},
	{target: errEmptyBody, code: models.CodeInvalidParams, message: errEmptyBody.Error()},
	{target: errInvalidJSON, code: models.CodeInvalidParams, message: errInvalidJSON.Error()},
	{target: errRequestBodyTooLarge, code: models.CodeInvalidParams, message: errRequestBodyTooLarge.Error()},
	{target: errInvalidPageParams, code: models.CodeInvalidParams, message: errInvalidPageParams.Error()},

	{target: ErrEmptyAuthorizationHeader, code: models.CodeUnauthorized, message: "no token provided"},
	{target: ErrInvalidAuthorizationHeader, code: models.CodeUnauthorized, message: "malformed authorization header"},
	{target: ErrEmptyToken, code: models.CodeUnauthorized, message: "no token provided"},
	{target: service.ErrTokenIsExpired, code: models.CodeUnauthorized, message: "token expired"},
	{target: service.ErrTokenIsInvalid, code: models.CodeUnauthorized, message: "token invalid"},
	{target: errMissingClaims, code: models.CodeUnauthorized},

	{target: errRouteNotFound, code: models.CodeNotFound},
	{target: store.ErrNoUserWasFound, code: models.CodeNotFound, message: "user not found"},

	{target: store.ErrEmailAlreadyExists, code: models.CodeBusinessError, message: store.ErrEmailAlreadyExists.Error()},

	{target: store.ErrDatabaseUnavailable, code: models.CodeDatabaseError},
	{target: store.ErrBuildingSQLQuery, code: models.CodeDatabaseError},
	{target: store.ErrExecutingQuery, code: models.CodeDatabaseError},
	{target: store.ErrScanningRow, code: models.CodeDatabaseError},
	{target: store.ErrScanningRows, code: models.CodeDatabaseError},
}

// codeFromError maps err onto an envelope code and a message safe to show to
// the caller. Unmapped errors become INTERNAL_ERROR with the generic message.
func codeFromError(err error) (models.ResponseCode, string) {
	for _, resp := range errorResponses {
		if !errors.Is(err, resp.target) {
			continue
		}
		switch {
		case resp.exposeDetail:
			return resp.code, err.Error()
		case resp.message != "":
			return resp.code, resp.message
		default:
			return resp.code, resp.code.Message()
		}
	}

	return models.CodeInternalError, models.MsgInternalError
}

// envelopeFromError converts a thrown error into its envelope. An
// *models.Error anywhere in the chain supplies the envelope as is.
func envelopeFromError(err error) models.ApiResponse {
	var appErr *models.Error
	if errors.As(err, &appErr) {
		return appErr.Envelope()
	}

	return models.Failure(codeFromError(err))
}
