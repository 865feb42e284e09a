package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-statement-list/internal/logger"
)

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

		log.Info().
			Str("uri", uri).
			Str("method", method).
			Int("status", lw.status).
			Bool("hijacked", lw.hijacked).
			Dur("duration", time.Since(start)).
			Int("size", lw.size).
			Send()
	})
}
