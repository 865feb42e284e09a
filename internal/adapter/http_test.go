// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-statement-list/internal/config"
	"github.com/MKhiriev/go-statement-list/internal/logger"
	"github.com/MKhiriev/go-statement-list/internal/utils"
	"github.com/MKhiriev/go-statement-list/models"
)

// newTestAdapter создаёт httpServerAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{HTTPAddress: serverURL, Token: "test-token", RequestTimeout: 5 * time.Second}

	a, err := NewHTTPServerAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── Login ───────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	issued, err := utils.GenerateJWTToken("statement-feed", "acme", time.Hour, "server-key")
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/token", r.URL.Path)

		var body models.TokenRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "acme", body.CompanyID)

		w.Header().Set("Authorization", "Bearer "+issued.SignedString)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("")

	token, err := a.Login(context.Background(), "acme")
	require.NoError(t, err)
	assert.Equal(t, "acme", token.CompanyID)
	assert.Equal(t, "statement-feed", token.Issuer)
	assert.Equal(t, issued.SignedString, a.Token())
}

func TestLogin_BadRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid data provided"}`, http.StatusBadRequest)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), "a b")

	assert.ErrorIs(t, err, ErrBadRequest)
	assert.Equal(t, "test-token", a.Token())
}

func TestLogin_MissingHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Login(context.Background(), "acme")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "login parse bearer token")
}

// ── FetchPage ───────────────────────────────────────────────────────────────

func TestFetchPage_Statements(t *testing.T) {
	orderDate := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/companies/acme/statements", r.URL.Path)
		assert.Equal(t, "s2", r.URL.Query().Get("nextId"))
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		writeJSON(t, w, models.StatementsPage{
			Statements: []models.Statement{
				{ID: "s2", Title: "March", OrderDate: orderDate, Status: "Processing", Format: models.FormatPDF},
				{ID: "s3", Title: "April", OrderDate: orderDate, Status: "Shipped"},
			},
			NextID: "EOF",
		})
	}))
	defer srv.Close()

	page, err := newTestAdapter(t, srv.URL).FetchPage(context.Background(), models.VariantStatements, "acme", "s2")
	require.NoError(t, err)

	require.Len(t, page.Items, 1, "unknown status must be skipped")
	assert.Equal(t, "s2", page.Items[0].ID)
	assert.Equal(t, models.StateProcessing, page.Items[0].State)
	assert.True(t, orderDate.Equal(page.Items[0].OrderingKey))
	assert.Equal(t, "March", page.Items[0].Payload.Title)
	assert.Equal(t, "EOF", page.NextToken)
}

func TestFetchPage_StatementsFirstPageHasNoCursor(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := r.URL.Query()["nextId"]
		assert.False(t, ok)
		writeJSON(t, w, models.StatementsPage{Statements: []models.Statement{}, NextID: "EOF"})
	}))
	defer srv.Close()

	page, err := newTestAdapter(t, srv.URL).FetchPage(context.Background(), models.VariantStatements, "acme", "")
	require.NoError(t, err)
	assert.Empty(t, page.Items)
}

func TestFetchPage_References(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/companies/acme/references", r.URL.Path)
		assert.Equal(t, "r5", r.URL.Query().Get("continuationToken"))

		writeJSON(t, w, models.ReferencesPage{
			BankReferencesRequests: []models.Reference{
				{RequestID: "r5", Name: "Balance", Status: "InDelivery", ReferenceType: models.ReferenceTypePaper},
				{RequestID: "r6", Name: "Turnover", Status: "Completed"},
			},
			ContinuationToken: "",
		})
	}))
	defer srv.Close()

	page, err := newTestAdapter(t, srv.URL).FetchPage(context.Background(), models.VariantCertificates, "acme", "r5")
	require.NoError(t, err)

	require.Len(t, page.Items, 2)
	assert.Equal(t, models.StatePhysicalInDelivery, page.Items[0].State)
	assert.True(t, page.Items[0].Payload.IsPhysical)
	assert.Equal(t, models.StateReady, page.Items[1].State)
	assert.Empty(t, page.NextToken)
}

func TestFetchPage_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{"bad cursor", http.StatusBadRequest, ErrBadRequest},
		{"expired token", http.StatusUnauthorized, ErrUnauthorized},
		{"foreign company", http.StatusForbidden, ErrForbidden},
		{"server down", http.StatusBadGateway, ErrBadGateway},
		{"server error", http.StatusInternalServerError, ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).FetchPage(context.Background(), models.VariantStatements, "acme", "")
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestFetchPage_UnknownVariant(t *testing.T) {
	a := newTestAdapter(t, "http://localhost:1")

	_, err := a.FetchPage(context.Background(), models.Variant(9), "acme", "")
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestFetchPage_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).FetchPage(context.Background(), models.VariantStatements, "acme", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "statements request")
}

// ── DeleteItem ──────────────────────────────────────────────────────────────

func TestDeleteItem(t *testing.T) {
	tests := []struct {
		variant models.Variant
		path    string
	}{
		{models.VariantStatements, "/api/companies/acme/statements/s1"},
		{models.VariantCertificates, "/api/companies/acme/references/s1"},
	}

	for _, tt := range tests {
		t.Run(tt.variant.String(), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				assert.Equal(t, tt.path, r.URL.Path)
				w.WriteHeader(http.StatusNoContent)
			}))
			defer srv.Close()

			require.NoError(t, newTestAdapter(t, srv.URL).DeleteItem(context.Background(), tt.variant, "acme", "s1"))
		})
	}
}

func TestDeleteItem_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "document was not found", http.StatusNotFound)
	}))
	defer srv.Close()

	err := newTestAdapter(t, srv.URL).DeleteItem(context.Background(), models.VariantStatements, "acme", "s1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "document was not found")
}

// ── GetStatement ────────────────────────────────────────────────────────────

func TestGetStatement(t *testing.T) {
	track, service, pages := "RA123", "https://track.example/", 4

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/companies/acme/statements/s1", r.URL.Path)
		writeJSON(t, w, models.StatementDetail{
			Statement: models.Statement{ID: "s1", Status: "PhysicalInDelivery", TrackNumber: &track, DeliveryService: &service},
			PageCount: &pages,
		})
	}))
	defer srv.Close()

	detail, err := newTestAdapter(t, srv.URL).GetStatement(context.Background(), "acme", "s1")
	require.NoError(t, err)
	assert.Equal(t, "https://track.example/RA123", detail.TrackingLink())
	require.NotNil(t, detail.PageCount)
	assert.Equal(t, 4, *detail.PageCount)
	assert.Nil(t, detail.Price)
}

// ── mapStatus ───────────────────────────────────────────────────────────────

func TestMapStatus(t *testing.T) {
	assert.NoError(t, mapStatus(http.StatusNoContent, ""))

	err := mapStatus(http.StatusTeapot, "")
	require.Error(t, err)
	assert.Equal(t, "http 418: I'm a teapot", err.Error())

	err = mapStatus(http.StatusConflict, "  duplicate \n")
	assert.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "conflict: duplicate", err.Error())
}

// ── normalizeBaseURL ─────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"valid http", "http://localhost:8080", "http://localhost:8080", false},
		{"no scheme", "localhost:8080", "http://localhost:8080", false},
		{"trailing slash", "http://localhost:8080/", "http://localhost:8080", false},
		{"empty", "", "", true},
		{"no host", "http://", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	assert.Error(t, err)
}
