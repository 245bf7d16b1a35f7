package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trackflow/trackflow-server/internal/config"
	"github.com/trackflow/trackflow-server/internal/service"
	"github.com/trackflow/trackflow-server/internal/utils"
	"github.com/trackflow/trackflow-server/models"
	"go.uber.org/mock/gomock"
)

// ---- getTokenFromAuthHeader unit tests ----

func TestGetTokenFromAuthHeader_TableTest(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   error
	}{
		{name: "valid Bearer token", header: "Bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "lowercase scheme", header: "bearer my-jwt-token", wantToken: "my-jwt-token"},
		{name: "extra spaces around token", header: "Bearer   my-jwt-token  ", wantToken: "my-jwt-token"},
		{name: "missing token part", header: "Bearer", wantErr: ErrEmptyToken},
		{name: "blank token part", header: "Bearer    ", wantErr: ErrEmptyToken},
		{name: "non-Bearer scheme", header: "Basic dXNlcjpwYXNz", wantErr: ErrInvalidAuthorizationHeader},
		{name: "token without scheme", header: "my-jwt-token", wantErr: ErrInvalidAuthorizationHeader},
		{name: "only spaces", header: " ", wantErr: ErrInvalidAuthorizationHeader},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

// ---- auth middleware ----

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		verifyErr   error
		wantCode    int
		wantMessage string
	}{
		{name: "no header", header: "", wantCode: 401, wantMessage: "no token provided"},
		{name: "wrong scheme", header: "Token abc", wantCode: 401, wantMessage: "malformed authorization header"},
		{name: "expired", header: "Bearer abc", verifyErr: fmt.Errorf("%w: exp", service.ErrTokenIsExpired), wantCode: 401, wantMessage: "token expired"},
		{name: "tampered", header: "Bearer abc", verifyErr: fmt.Errorf("%w: signature", service.ErrTokenIsInvalid), wantCode: 401, wantMessage: "token invalid"},
		{name: "unexpected failure", header: "Bearer abc", verifyErr: errors.New("key store offline"), wantCode: 500, wantMessage: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandlerWithMocks(t, config.StatusPolicyAlwaysOK)
			if tt.verifyErr != nil {
				mocks.tokens.EXPECT().Verify(gomock.Any(), "abc").Return(models.Claims{}, tt.verifyErr)
			}

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { nextCalled = true })

			req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			h.withEnvelope(h.auth(next)).ServeHTTP(rr, req)

			assert.False(t, nextCalled, "downstream handler must not run")
			assert.Equal(t, http.StatusOK, rr.Code)
			env := decodeEnvelope(t, rr)
			assert.Equal(t, tt.wantCode, env.Code)
			assert.Equal(t, tt.wantMessage, env.Message)
			assert.Equal(t, "null", string(env.Data))
		})
	}
}

func TestAuth_Success_StoresClaims(t *testing.T) {
	h, mocks := newTestHandlerWithMocks(t, config.StatusPolicyAlwaysOK)
	claims := models.Claims{UserID: 77, Email: "a@x.com"}
	mocks.tokens.EXPECT().Verify(gomock.Any(), "good-token").Return(claims, nil)

	var got models.Claims
	var ok bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = utils.GetClaimsFromContext(r.Context())
		reply(r, "passed")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer good-token")
	rr := httptest.NewRecorder()
	h.withEnvelope(h.auth(next)).ServeHTTP(rr, req)

	require.True(t, ok)
	assert.Equal(t, claims, got)
	env := decodeEnvelope(t, rr)
	assert.Equal(t, 0, env.Code)
	assert.JSONEq(t, `"passed"`, string(env.Data))
}
