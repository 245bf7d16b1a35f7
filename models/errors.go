package models

// Error is an application error that carries its own envelope fields.
//
// Returning (or panicking with) an *Error from a handler produces an envelope
// with exactly this code, message and data.
type Error struct {
	Code    ResponseCode
	Message string
	Data    any
}

// NewError returns an *Error with null data. An empty message is replaced by
// the default message of code.
func NewError(code ResponseCode, message string) *Error {
	if message == "" {
		message = code.Message()
	}
	return &Error{Code: code, Message: message}
}

// NewErrorWithData returns an *Error that carries data into the envelope.
func NewErrorWithData(code ResponseCode, message string, data any) *Error {
	e := NewError(code, message)
	e.Data = data
	return e
}

func (e *Error) Error() string {
	return e.Message
}

// Envelope converts the error into its response envelope.
func (e *Error) Envelope() ApiResponse {
	return ApiResponse{Code: e.Code, Message: e.Message, Data: e.Data}
}
