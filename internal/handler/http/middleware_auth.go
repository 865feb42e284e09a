package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-statement-list/internal/logger"
	"github.com/MKhiriev/go-statement-list/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication for the
// company routes.
//
// It validates the bearer token via [service.AuthService.ParseToken] and
// compares its subject with the {companyID} path parameter. On success the
// company is stored under [utils.CompanyIDCtxKey] and added to the request
// logger.
//
// Missing, malformed, expired or forged tokens get 401. A valid token for a
// different company gets 403.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteError(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteError(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		token, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing token")
			utils.WriteError(w, err.Error(), http.StatusUnauthorized)
			return
		}

		companyID := chi.URLParam(r, "companyID")
		if token.CompanyID != companyID {
			log.Warn().
				Str("token_company_id", token.CompanyID).
				Str("company_id", companyID).
				Msg(ErrForeignCompany.Error())
			utils.WriteError(w, ErrForeignCompany.Error(), http.StatusForbidden)
			return
		}

		ctx = log.WithCompany(companyID).WithContext(context.WithValue(ctx, utils.CompanyIDCtxKey, companyID))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
