package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// timingWriter wraps http.ResponseWriter to capture the status code and to
// inject the total Server-Timing entry. Headers are immutable once the status
// line is out, so the entry is appended just before WriteHeader delegates.
type timingWriter struct {
	http.ResponseWriter
	statusCode  int
	start       time.Time
	wroteHeader bool
}

func (w *timingWriter) WriteHeader(code int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.statusCode = code
	elapsed := time.Since(w.start)
	w.Header().Add("Server-Timing", fmt.Sprintf("total;dur=%.2f", float64(elapsed.Microseconds())/1000.0))
	w.ResponseWriter.WriteHeader(code)
}

func (w *timingWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// TrackLatency returns middleware that times every request, logs it, and
// advertises the total duration via the Server-Timing header. Handlers that
// set their own per-part entries get the total appended alongside them.
// Pass nil logger to disable logging.
func TrackLatency(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := uuid.NewString()
			wrapped := &timingWriter{ResponseWriter: w, statusCode: http.StatusOK, start: time.Now()}
			wrapped.Header().Set("X-Request-Id", requestID)

			next.ServeHTTP(wrapped, r)

			if logger != nil {
				logger.Info("request handled",
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", wrapped.statusCode),
					zap.Duration("duration", time.Since(wrapped.start)),
					zap.String("request_id", requestID),
				)
			}
		})
	}
}
