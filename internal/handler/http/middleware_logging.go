package http

import (
	"net/http"
	"time"

	"github.com/trackflow/trackflow-server/internal/logger"
	"github.com/trackflow/trackflow-server/models"
)

// withLogging writes one access log line per request. Request bodies are not
// logged since they carry passwords.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		event := log.Info().
			Str("uri", uri).
			Str("method", method).
			Str("remote_ip", r.RemoteAddr).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size)
		if lw.hasCode {
			event = event.Int("code", int(lw.code))
		}
		event.Send()
	})
}

// responseWriter is a thin decorator around [http.ResponseWriter] that
// captures the status code, the body size and the envelope code of a
// response for the access log.
//
// WriteHeader is forwarded to the underlying writer exactly once.
type responseWriter struct {
	http.ResponseWriter

	status      int
	wroteHeader bool
	size        int

	code    models.ResponseCode
	hasCode bool
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write implicitly sends a 200 header when WriteHeader was not called.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

func (w *responseWriter) recordEnvelopeCode(code models.ResponseCode) {
	w.code = code
	w.hasCode = true
}
