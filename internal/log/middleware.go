package log

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// RequestLogger logs one line per request with method, path, status and
// duration. It picks up the request id set by chi's RequestID
// middleware when present.
func RequestLogger(logger *Logger) func(http.Handler) http.Handler {
	httpLogger := logger.WithComponent(ComponentHTTP)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			attrs := []any{
				FieldMethod, r.Method,
				FieldPath, r.URL.Path,
				FieldStatusCode, ww.Status(),
				FieldDuration, time.Since(start).Milliseconds(),
				FieldClientIP, r.RemoteAddr,
			}
			if reqID := middleware.GetReqID(r.Context()); reqID != "" {
				attrs = append(attrs, FieldRequestID, reqID)
			}

			switch {
			case ww.Status() >= 500:
				httpLogger.Error("HTTP request completed", attrs...)
			case ww.Status() >= 400:
				httpLogger.Warn("HTTP request completed", attrs...)
			default:
				httpLogger.Info("HTTP request completed", attrs...)
			}
		})
	}
}
