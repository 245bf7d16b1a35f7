// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Every response body is a models.ApiResponse envelope written by the
// withEnvelope middleware; handlers only record what the response should be
// through reply, replyEnvelope and fail. Authentication, request tracing,
// access logging and response compression are handled in this package before
// requests are delegated to the service layer.
package http
