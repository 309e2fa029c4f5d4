package middlewares

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-bloglist/internal/logger"
)

const maxLoggedBody = 64 << 10

type requestIDKey struct{}

// LoggingMiddleware logs requests and responses and assigns every request an ID.
// JSON bodies of POST and PUT requests are logged with credentials scrubbed.
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.New().String()

		start := time.Now()

		rw := &responseWriter{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}

		r = r.WithContext(context.WithValue(r.Context(), requestIDKey{}, reqID))
		w.Header().Set("X-Request-ID", reqID)

		fields := []any{
			"request_id", reqID,
			"method", r.Method,
			"uri", r.RequestURI,
		}
		if (r.Method == http.MethodPost || r.Method == http.MethodPut) && r.Body != nil {
			body, err := io.ReadAll(io.LimitReader(r.Body, maxLoggedBody))
			if err == nil {
				// hand the full body on to the handler
				r.Body = readCloser{io.MultiReader(bytes.NewReader(body), r.Body), r.Body}
				fields = append(fields, "body", logger.Scrub(body))
			}
		}

		next.ServeHTTP(rw, r)

		logger.Log.Infow("request", append(fields, "duration", time.Since(start))...)

		logger.Log.Infow("response",
			"request_id", reqID,
			"status", rw.statusCode,
			"response_size", strconv.Itoa(rw.size)+"B",
		)
	})
}

// RequestIDFromContext returns the ID assigned by LoggingMiddleware.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

type readCloser struct {
	io.Reader
	io.Closer
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	size, err := rw.ResponseWriter.Write(b)
	rw.size += size
	return size, err
}
