package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-statement-list/internal/app"
	"github.com/MKhiriev/go-statement-list/internal/logger"
	"github.com/MKhiriev/go-statement-list/internal/utils"
	"github.com/MKhiriev/go-statement-list/models"
)

// companyID is set by the auth middleware for every company route.
func companyID(r *http.Request) string {
	id, _ := utils.GetCompanyIDFromContext(r.Context())
	return id
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any, funcName string) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.FromRequest(r).Err(err).Str("func", funcName).Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return false
	}
	return true
}

func (h *Handler) listStatements(w http.ResponseWriter, r *http.Request) {
	page, err := h.services.DocumentService.ListStatements(r.Context(), companyID(r), r.URL.Query().Get("nextId"))
	if err != nil {
		writeServiceError(w, r, err, "*Handler.listStatements")
		return
	}

	_, _ = utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) getStatement(w http.ResponseWriter, r *http.Request) {
	detail, err := h.services.DocumentService.GetStatement(r.Context(), companyID(r), chi.URLParam(r, "id"))
	if err != nil {
		writeServiceError(w, r, err, "*Handler.getStatement")
		return
	}

	_, _ = utils.WriteJSON(w, detail, http.StatusOK)
}

func (h *Handler) createStatement(w http.ResponseWriter, r *http.Request) {
	var request models.StatementRequest
	if !decodeBody(w, r, &request, "*Handler.createStatement") {
		return
	}

	statement, err := h.services.DocumentService.CreateStatement(r.Context(), companyID(r), request)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.createStatement")
		return
	}

	_, _ = utils.WriteJSON(w, statement, http.StatusCreated)
}

func (h *Handler) deleteStatement(w http.ResponseWriter, r *http.Request) {
	if err := h.services.DocumentService.DeleteStatement(r.Context(), companyID(r), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err, "*Handler.deleteStatement")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// changeStatementStatus persists the new status; the service pushes it to
// the company's websocket subscribers.
func (h *Handler) changeStatementStatus(w http.ResponseWriter, r *http.Request) {
	var request models.StatusChangeRequest
	if !decodeBody(w, r, &request, "*Handler.changeStatementStatus") {
		return
	}

	err := h.services.DocumentService.ChangeStatementStatus(r.Context(), companyID(r), chi.URLParam(r, "id"), request.Status)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.changeStatementStatus")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listReferences(w http.ResponseWriter, r *http.Request) {
	page, err := h.services.DocumentService.ListReferences(r.Context(), companyID(r), r.URL.Query().Get("continuationToken"))
	if err != nil {
		writeServiceError(w, r, err, "*Handler.listReferences")
		return
	}

	_, _ = utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) createReference(w http.ResponseWriter, r *http.Request) {
	var request models.ReferenceRequest
	if !decodeBody(w, r, &request, "*Handler.createReference") {
		return
	}

	reference, err := h.services.DocumentService.CreateReference(r.Context(), companyID(r), request)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.createReference")
		return
	}

	_, _ = utils.WriteJSON(w, reference, http.StatusCreated)
}

func (h *Handler) deleteReference(w http.ResponseWriter, r *http.Request) {
	if err := h.services.DocumentService.DeleteReference(r.Context(), companyID(r), chi.URLParam(r, "id")); err != nil {
		writeServiceError(w, r, err, "*Handler.deleteReference")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
