package http

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/trackflow/trackflow-server/internal/utils"
)

const (
	traceIDHeader = "X-Trace-ID"

	// maxTraceIDLen fits a UUID or a W3C trace id with room to spare.
	maxTraceIDLen = 64
)

// withTraceID attaches a request-scoped child logger carrying trace_id. The
// id is taken from X-Trace-ID when it is a short token of letters, digits,
// '-', '_' and '.', and generated otherwise. It is echoed in the response
// header.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		traceID := r.Header.Get(traceIDHeader)
		if !isAcceptableTraceID(traceID) {
			traceID = utils.NewTraceID()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}

func isAcceptableTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLen {
		return false
	}

	for i := 0; i < len(id); i++ {
		c := id[i]
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.':
		default:
			return false
		}
	}

	return true
}
