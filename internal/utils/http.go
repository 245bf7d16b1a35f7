package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrMarshalingJSON is returned by WriteJSON when data cannot be encoded.
var ErrMarshalingJSON = errors.New("error writing data to JSON")

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails nothing is written to w, so the caller can still
// answer with a fallback body.
//
// Example usage:
//
//	WriteJSON(w, models.Success(nil, ""), http.StatusOK)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrMarshalingJSON, err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}
