package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-statement-list/internal/logger"
	"github.com/MKhiriev/go-statement-list/internal/mock"
	"github.com/MKhiriev/go-statement-list/internal/store"
	"github.com/MKhiriev/go-statement-list/models"
)

var documentsNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.FixedZone("MSK", 3*60*60))

type fixedIDs string

func (f fixedIDs) Generate() string { return string(f) }

// hubSpy records published frames per company.
type hubSpy struct {
	mu        sync.Mutex
	published map[string][]models.StatusMessage
}

func newHubSpy() *hubSpy {
	return &hubSpy{published: make(map[string][]models.StatusMessage)}
}

func (h *hubSpy) Subscribe(string) (<-chan models.StatusMessage, func()) {
	ch := make(chan models.StatusMessage)
	return ch, func() {}
}

func (h *hubSpy) Publish(companyID string, message models.StatusMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.published[companyID] = append(h.published[companyID], message)
}

func (h *hubSpy) frames(companyID string) []models.StatusMessage {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.published[companyID]
}

type documentsFixture struct {
	service    *documentService
	statements *mock.MockStatementRepository
	references *mock.MockReferenceRepository
	hub        *hubSpy
}

func newDocumentsFixture(t *testing.T, pageSize uint64) *documentsFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &documentsFixture{
		statements: mock.NewMockStatementRepository(ctrl),
		references: mock.NewMockReferenceRepository(ctrl),
		hub:        newHubSpy(),
	}
	f.service = &documentService{
		statementRepository: f.statements,
		referenceRepository: f.references,
		hub:                 f.hub,
		pageSize:            pageSize,
		ids:                 fixedIDs("0195e8d4-7b3a-7c11-9f00-1a2b3c4d5e6f"),
		now:                 func() time.Time { return documentsNow },
		logger:              logger.Nop(),
	}
	return f
}

func statementsWithIDs(ids ...string) []models.Statement {
	out := make([]models.Statement, len(ids))
	for i, id := range ids {
		out[i] = models.Statement{ID: id, CompanyID: "acme", Status: "New"}
	}
	return out
}

// ── ListStatements ───────────────────────────────────────────────────────────

func TestDocumentService_ListStatements(t *testing.T) {
	tests := []struct {
		name       string
		rows       []models.Statement
		wantIDs    []string
		wantNextID string
	}{
		{
			name:       "full page with more left",
			rows:       statementsWithIDs("s1", "s2", "s3"),
			wantIDs:    []string{"s1", "s2"},
			wantNextID: "s3",
		},
		{
			name:       "exact page is the last one",
			rows:       statementsWithIDs("s1", "s2"),
			wantIDs:    []string{"s1", "s2"},
			wantNextID: StatementsEOF,
		},
		{
			name:       "empty list",
			rows:       nil,
			wantIDs:    []string{},
			wantNextID: StatementsEOF,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDocumentsFixture(t, 2)
			f.statements.EXPECT().ListStatements(gomock.Any(), "acme", "s0", uint64(3)).Return(tt.rows, nil)

			page, err := f.service.ListStatements(context.Background(), "acme", "s0")
			require.NoError(t, err)

			ids := make([]string, 0, len(page.Statements))
			for _, s := range page.Statements {
				ids = append(ids, s.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
			assert.NotNil(t, page.Statements)
			assert.Equal(t, tt.wantNextID, page.NextID)
		})
	}
}

func TestDocumentService_ListStatements_AfterEOF(t *testing.T) {
	f := newDocumentsFixture(t, 2)

	page, err := f.service.ListStatements(context.Background(), "acme", StatementsEOF)
	require.NoError(t, err)
	assert.Empty(t, page.Statements)
	assert.Equal(t, StatementsEOF, page.NextID)
}

func TestDocumentService_ListStatements_UnknownCursor(t *testing.T) {
	f := newDocumentsFixture(t, 2)
	f.statements.EXPECT().ListStatements(gomock.Any(), "acme", "ghost", uint64(3)).
		Return(nil, store.ErrCursorNotFound)

	_, err := f.service.ListStatements(context.Background(), "acme", "ghost")
	assert.ErrorIs(t, err, store.ErrCursorNotFound)
}

// ── ListReferences ───────────────────────────────────────────────────────────

func TestDocumentService_ListReferences(t *testing.T) {
	f := newDocumentsFixture(t, 1)
	f.references.EXPECT().ListReferences(gomock.Any(), "acme", "", uint64(2)).
		Return([]models.Reference{{RequestID: "r1"}, {RequestID: "r2"}}, nil)

	page, err := f.service.ListReferences(context.Background(), "acme", "")
	require.NoError(t, err)
	require.Len(t, page.BankReferencesRequests, 1)
	assert.Equal(t, "r1", page.BankReferencesRequests[0].RequestID)
	assert.Equal(t, "r2", page.ContinuationToken)
}

func TestDocumentService_ListReferences_LastPage(t *testing.T) {
	f := newDocumentsFixture(t, 5)
	f.references.EXPECT().ListReferences(gomock.Any(), "acme", "r1", uint64(6)).Return(nil, nil)

	page, err := f.service.ListReferences(context.Background(), "acme", "r1")
	require.NoError(t, err)
	assert.NotNil(t, page.BankReferencesRequests)
	assert.Empty(t, page.ContinuationToken)
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestDocumentService_CreateStatement(t *testing.T) {
	f := newDocumentsFixture(t, 20)
	request := models.StatementRequest{
		Title:        "March",
		From:         time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		To:           time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		Format:       models.FormatPDF,
		CurrencyCode: "RUB",
	}

	var stored models.Statement
	f.statements.EXPECT().CreateStatement(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, s models.Statement) error {
			stored = s
			return nil
		})

	created, err := f.service.CreateStatement(context.Background(), "acme", request)
	require.NoError(t, err)

	assert.Equal(t, stored, created)
	assert.Equal(t, "0195e8d4-7b3a-7c11-9f00-1a2b3c4d5e6f", created.ID)
	assert.Equal(t, "acme", created.CompanyID)
	assert.Equal(t, string(models.StateNew), created.Status)
	assert.Equal(t, documentsNow.UTC(), created.OrderDate)
	assert.Equal(t, time.UTC, created.OrderDate.Location())
}

func TestDocumentService_CreateStatement_Duplicate(t *testing.T) {
	f := newDocumentsFixture(t, 20)
	f.statements.EXPECT().CreateStatement(gomock.Any(), gomock.Any()).Return(store.ErrDocumentAlreadyExists)

	_, err := f.service.CreateStatement(context.Background(), "acme", models.StatementRequest{})
	assert.ErrorIs(t, err, store.ErrDocumentAlreadyExists)
}

func TestDocumentService_CreateReference(t *testing.T) {
	f := newDocumentsFixture(t, 20)
	f.references.EXPECT().CreateReference(gomock.Any(), gomock.Any()).Return(nil)

	created, err := f.service.CreateReference(context.Background(), "acme", models.ReferenceRequest{
		Name:          "Account balance",
		ReferenceType: models.ReferenceTypePaper,
	})
	require.NoError(t, err)

	assert.Equal(t, "REF-2B3C4D5E6F", created.ReferenceCode)
	assert.Equal(t, models.ReferenceStatusProcessing, created.Status)
	assert.Equal(t, "acme", created.CompanyID)
	assert.Equal(t, documentsNow.UTC(), created.RequestDate)
}

// ── ChangeStatementStatus ────────────────────────────────────────────────────

func TestDocumentService_ChangeStatementStatus(t *testing.T) {
	f := newDocumentsFixture(t, 20)
	f.statements.EXPECT().UpdateStatementStatus(gomock.Any(), "acme", "s1", "Ready").Return(nil)

	require.NoError(t, f.service.ChangeStatementStatus(context.Background(), "acme", "s1", "Ready"))

	assert.Equal(t, []models.StatusMessage{statusFrame("s1", "Ready")}, f.hub.frames("acme"))
}

func TestDocumentService_ChangeStatementStatus_UnknownStatus(t *testing.T) {
	f := newDocumentsFixture(t, 20)

	err := f.service.ChangeStatementStatus(context.Background(), "acme", "s1", "Shipped")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.Empty(t, f.hub.frames("acme"))
}

func TestDocumentService_ChangeStatementStatus_Missing(t *testing.T) {
	f := newDocumentsFixture(t, 20)
	f.statements.EXPECT().UpdateStatementStatus(gomock.Any(), "acme", "s1", "Ready").Return(store.ErrDocumentNotFound)

	err := f.service.ChangeStatementStatus(context.Background(), "acme", "s1", "Ready")
	assert.ErrorIs(t, err, store.ErrDocumentNotFound)
	assert.Empty(t, f.hub.frames("acme"))
}

// ── AdvanceStatuses ──────────────────────────────────────────────────────────

func TestDocumentService_AdvanceStatuses(t *testing.T) {
	f := newDocumentsFixture(t, 20)
	cutoff := documentsNow.Add(-time.Minute)

	f.statements.EXPECT().ListStaleStatements(gomock.Any(), advancingStatementStatuses, cutoff).
		Return([]models.Statement{
			{ID: "s1", CompanyID: "acme", Status: "New"},
			{ID: "s2", CompanyID: "acme", Status: "Processing"},
			{ID: "s3", CompanyID: "acme", Status: "Processing", IsPhysical: true},
			{ID: "s4", CompanyID: "globex", Status: "PhysicalInDelivery"},
			{ID: "s5", CompanyID: "acme", Status: "Processing"},
		}, nil)
	f.statements.EXPECT().UpdateStatementStatus(gomock.Any(), "acme", "s1", "Processing").Return(nil)
	f.statements.EXPECT().UpdateStatementStatus(gomock.Any(), "acme", "s2", "Ready").Return(nil)
	f.statements.EXPECT().UpdateStatementStatus(gomock.Any(), "acme", "s3", "PhysicalInDelivery").Return(nil)
	f.statements.EXPECT().UpdateStatementStatus(gomock.Any(), "globex", "s4", "PhysicalDelivered").Return(nil)
	f.statements.EXPECT().UpdateStatementStatus(gomock.Any(), "acme", "s5", "Ready").Return(store.ErrDocumentNotFound)

	f.references.EXPECT().ListStaleReferences(gomock.Any(), advancingReferenceStatuses, cutoff).
		Return([]models.Reference{
			{RequestID: "r1", CompanyID: "acme", Status: "Processing", ReferenceType: models.ReferenceTypePaper},
			{RequestID: "r2", CompanyID: "acme", Status: "Processing", ReferenceType: models.ReferenceTypeElectronic},
			{RequestID: "r3", CompanyID: "acme", Status: "InDelivery"},
		}, nil)
	f.references.EXPECT().UpdateReferenceStatus(gomock.Any(), "acme", "r1", "InDelivery").Return(nil)
	f.references.EXPECT().UpdateReferenceStatus(gomock.Any(), "acme", "r2", "Completed").Return(nil)
	f.references.EXPECT().UpdateReferenceStatus(gomock.Any(), "acme", "r3", "Completed").Return(nil)

	moved, err := f.service.AdvanceStatuses(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, 7, moved)

	assert.Equal(t, []models.StatusMessage{
		statusFrame("s1", "Processing"),
		statusFrame("s2", "Ready"),
		statusFrame("s3", "PhysicalInDelivery"),
		statusFrame("r1", "PhysicalInDelivery"),
		statusFrame("r2", "Ready"),
		statusFrame("r3", "Ready"),
	}, f.hub.frames("acme"))
	assert.Equal(t, []models.StatusMessage{statusFrame("s4", "PhysicalDelivered")}, f.hub.frames("globex"))
}

func TestDocumentService_AdvanceStatuses_Errors(t *testing.T) {
	dbErr := errors.New("connection reset")
	cutoff := documentsNow

	t.Run("listing statements", func(t *testing.T) {
		f := newDocumentsFixture(t, 20)
		f.statements.EXPECT().ListStaleStatements(gomock.Any(), gomock.Any(), cutoff).Return(nil, dbErr)

		moved, err := f.service.AdvanceStatuses(context.Background(), cutoff)
		assert.ErrorIs(t, err, dbErr)
		assert.Zero(t, moved)
	})

	t.Run("updating a reference", func(t *testing.T) {
		f := newDocumentsFixture(t, 20)
		f.statements.EXPECT().ListStaleStatements(gomock.Any(), gomock.Any(), cutoff).
			Return([]models.Statement{{ID: "s1", CompanyID: "acme", Status: "New"}}, nil)
		f.statements.EXPECT().UpdateStatementStatus(gomock.Any(), "acme", "s1", "Processing").Return(nil)
		f.references.EXPECT().ListStaleReferences(gomock.Any(), gomock.Any(), cutoff).
			Return([]models.Reference{{RequestID: "r1", CompanyID: "acme", Status: "InDelivery"}}, nil)
		f.references.EXPECT().UpdateReferenceStatus(gomock.Any(), "acme", "r1", "Completed").Return(dbErr)

		moved, err := f.service.AdvanceStatuses(context.Background(), cutoff)
		assert.ErrorIs(t, err, dbErr)
		assert.Equal(t, 1, moved)
		assert.Contains(t, err.Error(), fmt.Sprintf("advancing reference %s", "r1"))
	})
}

// ── helpers ──────────────────────────────────────────────────────────────────

func TestReferenceCode(t *testing.T) {
	assert.Equal(t, "REF-2B3C4D5E6F", referenceCode("0195e8d4-7b3a-7c11-9f00-1a2b3c4d5e6f"))
	assert.Equal(t, "REF-AB12", referenceCode("ab-12"))
}
