package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"

	"github.com/MKhiriev/go-statement-list/internal/config"
	"github.com/MKhiriev/go-statement-list/internal/logger"
	"github.com/MKhiriev/go-statement-list/internal/utils"
	"github.com/MKhiriev/go-statement-list/models"
)

const (
	statementsPath = "/api/companies/{companyID}/statements"
	referencesPath = "/api/companies/{companyID}/references"
	statusPath     = "/api/companies/{companyID}/ws"
	tokenPath      = "/api/auth/token"
)

type httpServerAdapter struct {
	client  *utils.HTTPClient
	baseURL string

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout. A token from adapterCfg is stored right away.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpServerAdapter{
		client:  utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		baseURL: baseURL,
		logger:  logger,
	}
	a.SetToken(adapterCfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [ServerAdapter]. It POSTs the company id to
// POST /api/auth/token. The bearer token is taken from the Authorization
// response header; its claims are read without verification since only the
// server holds the key.
func (h *httpServerAdapter) Login(ctx context.Context, companyID string) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.TokenRequest{CompanyID: companyID}).
		Post(tokenPath)
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	signed, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	token, err := parseUnverifiedToken(signed)
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse token claims: %w", err)
	}

	h.SetToken(signed)
	return token, nil
}

func parseUnverifiedToken(signed string) (models.Token, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, _, err := jwt.NewParser().ParseUnverified(signed, claims)
	if err != nil {
		return models.Token{}, err
	}

	token := models.Token{Token: parsed, RegisteredClaims: *claims, SignedString: signed}
	if token.CompanyID, err = token.GetCompanyID(); err != nil {
		return models.Token{}, err
	}
	return token, nil
}

// FetchPage implements [ServerAdapter].
func (h *httpServerAdapter) FetchPage(ctx context.Context, variant models.Variant, companyID, token string) (models.Page, error) {
	switch variant {
	case models.VariantStatements:
		return h.fetchStatements(ctx, companyID, token)
	case models.VariantCertificates:
		return h.fetchReferences(ctx, companyID, token)
	default:
		return models.Page{}, fmt.Errorf("%w: %d", ErrUnknownVariant, variant)
	}
}

func (h *httpServerAdapter) fetchStatements(ctx context.Context, companyID, nextID string) (models.Page, error) {
	var body models.StatementsPage

	req := h.authedRequest(ctx).
		SetPathParam("companyID", companyID).
		SetResult(&body)
	if nextID != "" {
		req.SetQueryParam("nextId", nextID)
	}

	resp, err := req.Get(statementsPath)
	if err != nil {
		return models.Page{}, fmt.Errorf("statements request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Page{}, err
	}

	items := make([]models.Item, 0, len(body.Statements))
	for _, s := range body.Statements {
		item, ok := s.ToItem()
		if !ok {
			h.skipped(s.ID, s.Status)
			continue
		}
		items = append(items, item)
	}

	return models.Page{Items: items, NextToken: body.NextID}, nil
}

func (h *httpServerAdapter) fetchReferences(ctx context.Context, companyID, continuationToken string) (models.Page, error) {
	var body models.ReferencesPage

	req := h.authedRequest(ctx).
		SetPathParam("companyID", companyID).
		SetResult(&body)
	if continuationToken != "" {
		req.SetQueryParam("continuationToken", continuationToken)
	}

	resp, err := req.Get(referencesPath)
	if err != nil {
		return models.Page{}, fmt.Errorf("references request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Page{}, err
	}

	items := make([]models.Item, 0, len(body.BankReferencesRequests))
	for _, r := range body.BankReferencesRequests {
		item, ok := r.ToItem()
		if !ok {
			h.skipped(r.RequestID, r.Status)
			continue
		}
		items = append(items, item)
	}

	return models.Page{Items: items, NextToken: body.ContinuationToken}, nil
}

func (h *httpServerAdapter) skipped(id, status string) {
	h.logger.Warn().
		Str("func", "httpServerAdapter.FetchPage").
		Str("id", id).
		Str("status", status).
		Msg("entry with unknown status skipped")
}

// DeleteItem implements [ServerAdapter].
func (h *httpServerAdapter) DeleteItem(ctx context.Context, variant models.Variant, companyID, id string) error {
	var path string
	switch variant {
	case models.VariantStatements:
		path = statementsPath + "/{id}"
	case models.VariantCertificates:
		path = referencesPath + "/{id}"
	default:
		return fmt.Errorf("%w: %d", ErrUnknownVariant, variant)
	}

	resp, err := h.authedRequest(ctx).
		SetPathParams(map[string]string{"companyID": companyID, "id": id}).
		Delete(path)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetStatement implements [ServerAdapter].
func (h *httpServerAdapter) GetStatement(ctx context.Context, companyID, id string) (models.StatementDetail, error) {
	var detail models.StatementDetail

	resp, err := h.authedRequest(ctx).
		SetPathParams(map[string]string{"companyID": companyID, "id": id}).
		SetResult(&detail).
		Get(statementsPath + "/{id}")
	if err != nil {
		return models.StatementDetail{}, fmt.Errorf("statement request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StatementDetail{}, err
	}

	return detail, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
