// SPDX-License-Identifier: Apache-2.0

package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the "Authorization"
	// header does not use the Bearer scheme.
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrEmptyToken is returned when the "Authorization" header contains the
	// Bearer scheme but the token value itself is empty.
	ErrEmptyToken = errors.New("empty token in `Authorization` header")
)

// Request decoding errors. All of them surface as INVALID_PARAMS.
var (
	errEmptyBody           = errors.New("request body is empty")
	errInvalidJSON         = errors.New("invalid JSON was passed")
	errRequestBodyTooLarge = errors.New("request body is too large")
	errInvalidPageParams   = errors.New("page and pageSize must be integers")
)

var (
	errRouteNotFound = errors.New("route not found")

	// errHandlerPanicked wraps the value recovered from a panicking handler.
	errHandlerPanicked = errors.New("handler panicked")

	errMissingClaims = errors.New("no verified claims in request context")
)
