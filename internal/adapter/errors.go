package adapter

import "errors"

var (
	ErrInvalidAddress     = errors.New("invalid server address")
	ErrUnexpectedResponse = errors.New("unexpected response from server")
	ErrMissingBearerToken = errors.New("response has no bearer token")
	ErrNotAuthenticated   = errors.New("no token is set")
	ErrRequestFailed      = errors.New("request to server failed")
)
