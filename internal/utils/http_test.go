package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trackflow/trackflow-server/models"
)

func TestWriteJSON(t *testing.T) {
	name := "Ann"

	tests := []struct {
		name     string
		data     any
		status   int
		wantBody string
	}{
		{"success envelope", models.Success([]int{1, 2}, ""), http.StatusOK, `{"code":0,"message":"success","data":[1,2]}`},
		{"failure envelope keeps null data", models.Failure(models.CodeNotFound, ""), http.StatusNotFound, `{"code":404,"message":"resource not found","data":null}`},
		{"password hash is hidden", models.User{ID: 1, Email: "a@x.com", PasswordHash: "secret", Name: &name}, http.StatusOK,
			`{"id":1,"email":"a@x.com","name":"Ann","createdAt":"0001-01-01T00:00:00Z","updatedAt":"0001-01-01T00:00:00Z"}`},
		{"nil", nil, http.StatusOK, `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.status)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_UnmarshalableDataWritesNothing(t *testing.T) {
	w := httptest.NewRecorder()

	_, err := WriteJSON(w, models.Success(make(chan int), ""), http.StatusOK)

	assert.ErrorIs(t, err, ErrMarshalingJSON)
	assert.Zero(t, w.Body.Len())
	assert.Empty(t, w.Header().Get("Content-Type"))
}
