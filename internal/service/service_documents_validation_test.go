package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-statement-list/internal/mock/servicemock"
	"github.com/MKhiriev/go-statement-list/internal/service"
	"github.com/MKhiriev/go-statement-list/internal/validators"
	"github.com/MKhiriev/go-statement-list/models"
)

func newValidatedDocuments(t *testing.T) (service.DocumentService, *servicemock.MockDocumentService) {
	t.Helper()
	inner := servicemock.NewMockDocumentService(gomock.NewController(t))
	return service.NewDocumentValidationService().Wrap(inner), inner
}

func validStatementRequest() models.StatementRequest {
	return models.StatementRequest{
		Title:        "March",
		From:         time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		To:           time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Format:       models.FormatXLSX,
		CurrencyCode: "RUB",
	}
}

// ── company id ───────────────────────────────────────────────────────────────

func TestDocumentValidationService_RejectsBadCompanyID(t *testing.T) {
	documents, _ := newValidatedDocuments(t)
	ctx := context.Background()

	_, err := documents.ListStatements(ctx, "", "")
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidCompanyID)

	_, err = documents.GetStatement(ctx, "a b", "s1")
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)

	assert.ErrorIs(t, documents.DeleteStatement(ctx, "a b", "s1"), service.ErrInvalidDataProvided)
	assert.ErrorIs(t, documents.DeleteReference(ctx, "a b", "r1"), service.ErrInvalidDataProvided)

	_, err = documents.ListReferences(ctx, "a/b", "")
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
}

func TestDocumentValidationService_PassesThrough(t *testing.T) {
	documents, inner := newValidatedDocuments(t)
	ctx := context.Background()

	want := models.StatementsPage{Statements: []models.Statement{{ID: "s1"}}, NextID: "EOF"}
	inner.EXPECT().ListStatements(ctx, "acme", "").Return(want, nil)
	inner.EXPECT().DeleteReference(ctx, "acme", "r1").Return(nil)
	inner.EXPECT().AdvanceStatuses(ctx, gomock.Any()).Return(2, nil)

	page, err := documents.ListStatements(ctx, "acme", "")
	require.NoError(t, err)
	assert.Equal(t, want, page)

	require.NoError(t, documents.DeleteReference(ctx, "acme", "r1"))

	moved, err := documents.AdvanceStatuses(ctx, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 2, moved)
}

// ── requests ─────────────────────────────────────────────────────────────────

func TestDocumentValidationService_CreateStatement(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(r *models.StatementRequest)
		wantErr error
	}{
		{"valid", func(*models.StatementRequest) {}, nil},
		{"empty title", func(r *models.StatementRequest) { r.Title = "" }, validators.ErrEmptyTitle},
		{"reversed period", func(r *models.StatementRequest) { r.From, r.To = r.To, r.From }, validators.ErrInvalidPeriod},
		{"unknown format", func(r *models.StatementRequest) { r.Format = "Docx" }, validators.ErrInvalidFormat},
		{"bad currency", func(r *models.StatementRequest) { r.CurrencyCode = "rub" }, validators.ErrInvalidCurrency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			documents, inner := newValidatedDocuments(t)
			request := validStatementRequest()
			tt.mutate(&request)

			if tt.wantErr == nil {
				inner.EXPECT().CreateStatement(gomock.Any(), "acme", request).Return(models.Statement{ID: "s1"}, nil)
			}

			created, err := documents.CreateStatement(context.Background(), "acme", request)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "s1", created.ID)
		})
	}
}

func TestDocumentValidationService_CreateReference(t *testing.T) {
	documents, inner := newValidatedDocuments(t)
	ctx := context.Background()

	_, err := documents.CreateReference(ctx, "acme", models.ReferenceRequest{Name: "Balance", ReferenceType: "Fax"})
	assert.ErrorIs(t, err, validators.ErrInvalidReferenceType)

	_, err = documents.CreateReference(ctx, "acme", models.ReferenceRequest{ReferenceType: models.ReferenceTypePaper})
	assert.ErrorIs(t, err, validators.ErrEmptyName)

	request := models.ReferenceRequest{Name: "Balance", ReferenceType: models.ReferenceTypeElectronic}
	inner.EXPECT().CreateReference(ctx, "acme", request).Return(models.Reference{RequestID: "r1"}, nil)

	created, err := documents.CreateReference(ctx, "acme", request)
	require.NoError(t, err)
	assert.Equal(t, "r1", created.RequestID)
}

func TestDocumentValidationService_ChangeStatementStatus(t *testing.T) {
	documents, inner := newValidatedDocuments(t)
	ctx := context.Background()

	err := documents.ChangeStatementStatus(ctx, "acme", "s1", "Archived")
	assert.ErrorIs(t, err, service.ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidStatus)

	inner.EXPECT().ChangeStatementStatus(ctx, "acme", "s1", "Ready").Return(nil)
	require.NoError(t, documents.ChangeStatementStatus(ctx, "acme", "s1", "Ready"))
}
