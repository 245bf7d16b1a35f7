package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/trackflow/trackflow-server/models"
)

// limitBody caps the size of request bodies at the configured MaxBodyBytes.
func (h *Handler) limitBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, h.maxBodyBytes)
		}
		next.ServeHTTP(w, r)
	})
}

// decodeJSONBody decodes the request body into v.
func decodeJSONBody(r *http.Request, v any) error {
	if r.Body == nil {
		return errEmptyBody
	}

	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return nil
	}

	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr):
		return fmt.Errorf("%w: limit is %d bytes", errRequestBodyTooLarge, maxBytesErr.Limit)
	case errors.Is(err, io.EOF):
		return errEmptyBody
	case errors.Is(err, errInvalidJSON):
		return err
	default:
		return fmt.Errorf("%w: %w", errInvalidJSON, err)
	}
}

// pageFromQuery reads the page and pageSize query parameters. Absent values
// are left zero for models.PageRequest.Normalize to fill in.
func pageFromQuery(r *http.Request) (models.PageRequest, error) {
	var page models.PageRequest

	query := r.URL.Query()
	for name, dst := range map[string]*int{"page": &page.Page, "pageSize": &page.PageSize} {
		raw := query.Get(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return models.PageRequest{}, fmt.Errorf("%w: %s=%q", errInvalidPageParams, name, raw)
		}
		*dst = n
	}

	return page, nil
}
