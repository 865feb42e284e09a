package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-statement-list/internal/app"
	"github.com/MKhiriev/go-statement-list/internal/logger"
	"github.com/MKhiriev/go-statement-list/internal/service"
	"github.com/MKhiriev/go-statement-list/internal/store"
	"github.com/MKhiriev/go-statement-list/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,

	store.ErrDocumentNotFound:      http.StatusNotFound,
	store.ErrCursorNotFound:        http.StatusBadRequest,
	store.ErrDocumentAlreadyExists: http.StatusConflict,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeServiceError logs err and answers with the status mapped from it.
// Internal errors are not exposed to the client.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	status := statusFromError(err)

	event := logger.FromRequest(r).Warn()
	if status >= http.StatusInternalServerError {
		event = logger.FromRequest(r).Error()
	}
	event.Err(err).Str("func", funcName).Int("status", status).Send()

	message := err.Error()
	if status >= http.StatusInternalServerError {
		message = app.MsgInternalServerError
	}
	utils.WriteError(w, message, status)
}
