package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-statement-list/internal/app"
	"github.com/MKhiriev/go-statement-list/internal/logger"
	"github.com/MKhiriev/go-statement-list/internal/utils"
	"github.com/MKhiriev/go-statement-list/models"
)

// issueToken answers POST /api/auth/token. The token is returned in the
// Authorization header, the body stays empty.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.TokenRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Str("func", "*Handler.issueToken").Msg(app.MsgInvalidJSON)
		utils.WriteError(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.CreateToken(r.Context(), request.CompanyID)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.issueToken")
		return
	}

	log.Debug().Str("company_id", token.CompanyID).Msg("token issued")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	w.WriteHeader(http.StatusOK)
}
