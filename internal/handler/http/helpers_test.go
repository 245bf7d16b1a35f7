package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/trackflow/trackflow-server/internal/config"
	"github.com/trackflow/trackflow-server/internal/logger"
	"github.com/trackflow/trackflow-server/internal/mock"
	"github.com/trackflow/trackflow-server/internal/service"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 4, 5, 6, 7, 8, 0, time.UTC)

type testMocks struct {
	users   *mock.MockUserService
	tokens  *mock.MockTokenService
	appInfo *mock.MockAppInfoService
}

// newTestHandlerWithMocks builds a Handler whose services are gomock doubles.
func newTestHandlerWithMocks(t *testing.T, policy string) (*Handler, testMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)

	mocks := testMocks{
		users:   mock.NewMockUserService(ctrl),
		tokens:  mock.NewMockTokenService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
	}

	h := NewHandler(&service.Services{
		UserService:    mocks.users,
		TokenService:   mocks.tokens,
		AppInfoService: mocks.appInfo,
	}, config.Server{StatusPolicy: policy, MaxBodyBytes: 1 << 10}, logger.Nop())
	h.now = func() time.Time { return testNow }

	return h, mocks
}

// envelopeBody mirrors models.ApiResponse with raw data for assertions.
type envelopeBody struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelopeBody {
	t.Helper()

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &raw), "body: %s", rr.Body.String())
	for _, key := range []string{"code", "message", "data"} {
		require.Contains(t, raw, key, "envelope key %q must always be present", key)
	}
	require.Len(t, raw, 3)

	var env envelopeBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env
}

// serveEnveloped runs handler behind withEnvelope.
func serveEnveloped(h *Handler, handler http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.withEnvelope(handler).ServeHTTP(rr, req)
	return rr
}
