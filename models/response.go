package models

// ResponseCode is the application-level status carried in every response
// envelope. Callers must branch on it, not on the HTTP status.
type ResponseCode int

const (
	CodeSuccess       ResponseCode = 0
	CodeInvalidParams ResponseCode = 400
	CodeUnauthorized  ResponseCode = 401
	CodeForbidden     ResponseCode = 403
	CodeNotFound      ResponseCode = 404
	CodeInternalError ResponseCode = 500
	CodeDatabaseError ResponseCode = 501
	CodeBusinessError ResponseCode = 502
)

// Default envelope messages, one per [ResponseCode].
const (
	MsgSuccess       = "success"
	MsgInvalidParams = "invalid params"
	MsgUnauthorized  = "unauthorized"
	MsgForbidden     = "forbidden"
	MsgNotFound      = "resource not found"
	MsgInternalError = "internal server error"
	MsgDatabaseError = "database operation failed"
	MsgBusinessError = "business operation failed"
)

var defaultMessages = map[ResponseCode]string{
	CodeSuccess:       MsgSuccess,
	CodeInvalidParams: MsgInvalidParams,
	CodeUnauthorized:  MsgUnauthorized,
	CodeForbidden:     MsgForbidden,
	CodeNotFound:      MsgNotFound,
	CodeInternalError: MsgInternalError,
	CodeDatabaseError: MsgDatabaseError,
	CodeBusinessError: MsgBusinessError,
}

// Message returns the default message of the code, falling back to the
// internal-error message for codes outside the taxonomy.
func (c ResponseCode) Message() string {
	if msg, ok := defaultMessages[c]; ok {
		return msg
	}
	return MsgInternalError
}

// IsSuccess reports whether c is [CodeSuccess].
func (c ResponseCode) IsSuccess() bool {
	return c == CodeSuccess
}

// ApiResponse is the uniform envelope of every HTTP response.
// All three keys are always present; Data is null on error paths.
type ApiResponse struct {
	Code    ResponseCode `json:"code"`
	Message string       `json:"message"`
	Data    any          `json:"data"`
}

// Success builds a successful envelope. An empty message is replaced by
// [MsgSuccess].
func Success(data any, message string) ApiResponse {
	if message == "" {
		message = MsgSuccess
	}
	return ApiResponse{Code: CodeSuccess, Message: message, Data: data}
}

// Failure builds an error envelope with null data. An empty message is
// replaced by the default message of code.
func Failure(code ResponseCode, message string) ApiResponse {
	if message == "" {
		message = code.Message()
	}
	return ApiResponse{Code: code, Message: message, Data: nil}
}
