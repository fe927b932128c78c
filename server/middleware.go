package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/godruoyi/go-snowflake"
	"github.com/sgostarter/i/l"
)

// RequestIDHeader carries the per-request id on responses.
const RequestIDHeader = "X-Request-Id"

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// logRequests tags every request with a snowflake id and logs its outcome.
func logRequests(next http.Handler, logger l.Wrapper, m *metrics) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rid := strconv.FormatUint(snowflake.ID(), 36)
		w.Header().Set(RequestIDHeader, rid)

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		m.requests.WithLabelValues(r.Method, strconv.Itoa(rec.status)).Inc()

		logger.WithFields(
			l.StringField("rid", rid),
			l.StringField("method", r.Method),
			l.StringField("uri", r.URL.RequestURI()),
			l.IntField("status", rec.status),
			l.StringField("took", time.Since(start).String()),
		).Info("request")
	})
}
