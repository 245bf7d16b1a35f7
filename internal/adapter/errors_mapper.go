package adapter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/trackflow/trackflow-server/models"
)

// envelope is models.ApiResponse with data left undecoded.
type envelope struct {
	Code    *models.ResponseCode `json:"code"`
	Message string               `json:"message"`
	Data    json.RawMessage      `json:"data"`
}

func (e envelope) hasData() bool {
	return len(e.Data) > 0 && !bytes.Equal(e.Data, []byte("null"))
}

// decodeEnvelope parses the response body regardless of HTTP status, since
// the server may report failures with 200 OK.
func decodeEnvelope(resp *resty.Response) (envelope, error) {
	var env envelope
	if err := json.Unmarshal(resp.Body(), &env); err != nil || env.Code == nil {
		body := strings.TrimSpace(string(resp.Body()))
		if len(body) > 128 {
			body = body[:128]
		}
		return envelope{}, fmt.Errorf("%w: http %d: %q", ErrUnexpectedResponse, resp.StatusCode(), body)
	}

	return env, nil
}

// errorFromEnvelope returns nil for a success envelope and a *models.Error
// otherwise. Raw data of the failure is kept in the error.
func errorFromEnvelope(env envelope) error {
	if env.Code.IsSuccess() {
		return nil
	}

	appErr := models.NewError(*env.Code, env.Message)
	if env.hasData() {
		appErr.Data = env.Data
	}
	return appErr
}
