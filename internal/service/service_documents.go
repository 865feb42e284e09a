package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-statement-list/internal/config"
	"github.com/MKhiriev/go-statement-list/internal/logger"
	"github.com/MKhiriev/go-statement-list/internal/store"
	"github.com/MKhiriev/go-statement-list/internal/utils"
	"github.com/MKhiriev/go-statement-list/models"
)

// StatementsEOF is the nextId of the last statements page.
const StatementsEOF = "EOF"

const defaultPageSize = 20

type idGenerator interface {
	Generate() string
}

type documentService struct {
	statementRepository store.StatementRepository
	referenceRepository store.ReferenceRepository
	hub                 StatusHub

	pageSize uint64
	ids      idGenerator
	now      func() time.Time

	logger *logger.Logger
}

func NewDocumentService(repositories *store.Repositories, hub StatusHub, cfg config.Feed, logger *logger.Logger) DocumentService {
	pageSize := cfg.PageSize
	if pageSize == 0 {
		pageSize = defaultPageSize
	}

	return &documentService{
		statementRepository: repositories.StatementRepository,
		referenceRepository: repositories.ReferenceRepository,
		hub:                 hub,
		pageSize:            pageSize,
		ids:                 utils.NewUUIDGenerator(),
		now:                 time.Now,
		logger:              logger,
	}
}

func (d *documentService) ListStatements(ctx context.Context, companyID, nextID string) (models.StatementsPage, error) {
	if nextID == StatementsEOF {
		return models.StatementsPage{Statements: []models.Statement{}, NextID: StatementsEOF}, nil
	}

	// one extra row tells whether another page exists and where it starts
	statements, err := d.statementRepository.ListStatements(ctx, companyID, nextID, d.pageSize+1)
	if err != nil {
		return models.StatementsPage{}, fmt.Errorf("listing statements: %w", err)
	}

	page := models.StatementsPage{Statements: statements, NextID: StatementsEOF}
	if uint64(len(statements)) > d.pageSize {
		page.NextID = statements[d.pageSize].ID
		page.Statements = statements[:d.pageSize]
	}
	if page.Statements == nil {
		page.Statements = []models.Statement{}
	}

	return page, nil
}

func (d *documentService) GetStatement(ctx context.Context, companyID, id string) (models.StatementDetail, error) {
	return d.statementRepository.GetStatement(ctx, companyID, id)
}

func (d *documentService) CreateStatement(ctx context.Context, companyID string, request models.StatementRequest) (models.Statement, error) {
	statement := models.Statement{
		ID:           d.ids.Generate(),
		CompanyID:    companyID,
		Title:        request.Title,
		OrderDate:    d.now().UTC(),
		From:         request.From,
		To:           request.To,
		IsPhysical:   request.IsPhysical,
		Format:       request.Format,
		Status:       string(models.StateNew),
		CurrencyCode: request.CurrencyCode,
	}

	if err := d.statementRepository.CreateStatement(ctx, statement); err != nil {
		return models.Statement{}, fmt.Errorf("creating statement: %w", err)
	}

	return statement, nil
}

func (d *documentService) DeleteStatement(ctx context.Context, companyID, id string) error {
	return d.statementRepository.DeleteStatement(ctx, companyID, id)
}

func (d *documentService) ChangeStatementStatus(ctx context.Context, companyID, id, status string) error {
	if _, ok := models.ParseLifecycleState(status); !ok {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidDataProvided, status)
	}

	if err := d.statementRepository.UpdateStatementStatus(ctx, companyID, id, status); err != nil {
		return fmt.Errorf("changing statement status: %w", err)
	}

	d.publish(ctx, companyID, id, status)
	return nil
}

func (d *documentService) ListReferences(ctx context.Context, companyID, continuationToken string) (models.ReferencesPage, error) {
	references, err := d.referenceRepository.ListReferences(ctx, companyID, continuationToken, d.pageSize+1)
	if err != nil {
		return models.ReferencesPage{}, fmt.Errorf("listing references: %w", err)
	}

	page := models.ReferencesPage{BankReferencesRequests: references}
	if uint64(len(references)) > d.pageSize {
		page.ContinuationToken = references[d.pageSize].RequestID
		page.BankReferencesRequests = references[:d.pageSize]
	}
	if page.BankReferencesRequests == nil {
		page.BankReferencesRequests = []models.Reference{}
	}

	return page, nil
}

func (d *documentService) CreateReference(ctx context.Context, companyID string, request models.ReferenceRequest) (models.Reference, error) {
	id := d.ids.Generate()
	reference := models.Reference{
		RequestID:     id,
		CompanyID:     companyID,
		ReferenceCode: referenceCode(id),
		Name:          request.Name,
		SubTitle:      request.SubTitle,
		RequestDate:   d.now().UTC(),
		Status:        models.ReferenceStatusProcessing,
		ReferenceType: request.ReferenceType,
		AccountNumber: request.AccountNumber,
	}

	if err := d.referenceRepository.CreateReference(ctx, reference); err != nil {
		return models.Reference{}, fmt.Errorf("creating reference: %w", err)
	}

	return reference, nil
}

func (d *documentService) DeleteReference(ctx context.Context, companyID, id string) error {
	return d.referenceRepository.DeleteReference(ctx, companyID, id)
}

// AdvanceStatuses implements [DocumentService]. Documents deleted while
// being advanced are skipped.
func (d *documentService) AdvanceStatuses(ctx context.Context, olderThan time.Time) (int, error) {
	log := logger.FromContext(ctx)
	moved := 0

	statements, err := d.statementRepository.ListStaleStatements(ctx, advancingStatementStatuses, olderThan)
	if err != nil {
		return 0, fmt.Errorf("listing stale statements: %w", err)
	}
	for _, s := range statements {
		next, ok := nextStatementStatus(s)
		if !ok {
			continue
		}

		err = d.statementRepository.UpdateStatementStatus(ctx, s.CompanyID, s.ID, next)
		if errors.Is(err, store.ErrDocumentNotFound) {
			log.Debug().Str("func", "documentService.AdvanceStatuses").Str("id", s.ID).Msg("statement vanished")
			continue
		}
		if err != nil {
			return moved, fmt.Errorf("advancing statement %s: %w", s.ID, err)
		}

		d.publish(ctx, s.CompanyID, s.ID, next)
		moved++
	}

	references, err := d.referenceRepository.ListStaleReferences(ctx, advancingReferenceStatuses, olderThan)
	if err != nil {
		return moved, fmt.Errorf("listing stale references: %w", err)
	}
	for _, r := range references {
		next, ok := nextReferenceStatus(r)
		if !ok {
			continue
		}

		err = d.referenceRepository.UpdateReferenceStatus(ctx, r.CompanyID, r.RequestID, next)
		if errors.Is(err, store.ErrDocumentNotFound) {
			log.Debug().Str("func", "documentService.AdvanceStatuses").Str("id", r.RequestID).Msg("reference vanished")
			continue
		}
		if err != nil {
			return moved, fmt.Errorf("advancing reference %s: %w", r.RequestID, err)
		}

		// pushes always carry the shared lifecycle name
		state, _ := models.ReferenceLifecycleState(next)
		d.publish(ctx, r.CompanyID, r.RequestID, string(state))
		moved++
	}

	return moved, nil
}

func (d *documentService) publish(ctx context.Context, companyID, id, status string) {
	d.hub.Publish(companyID, models.StatusMessage{
		Type:        models.StatusUpdateMessageType,
		StatementID: id,
		Status:      status,
	})

	logger.FromContext(ctx).Debug().
		Str("func", "documentService.publish").
		Str("company_id", companyID).
		Str("id", id).
		Str("status", status).
		Msg("status pushed")
}

var advancingStatementStatuses = []string{
	string(models.StateNew),
	string(models.StateProcessing),
	string(models.StatePhysicalInDelivery),
}

var advancingReferenceStatuses = []string{
	models.ReferenceStatusProcessing,
	models.ReferenceStatusInDelivery,
}

// nextStatementStatus returns the status a statement moves to next.
// Digital: New, Processing, Ready. Paper: New, Processing,
// PhysicalInDelivery, PhysicalDelivered.
func nextStatementStatus(s models.Statement) (string, bool) {
	switch models.LifecycleState(s.Status) {
	case models.StateNew:
		return string(models.StateProcessing), true
	case models.StateProcessing:
		if s.IsPhysical {
			return string(models.StatePhysicalInDelivery), true
		}
		return string(models.StateReady), true
	case models.StatePhysicalInDelivery:
		return string(models.StatePhysicalDelivered), true
	}
	return "", false
}

// nextReferenceStatus returns the status a reference moves to next. Paper
// references pass through InDelivery.
func nextReferenceStatus(r models.Reference) (string, bool) {
	switch r.Status {
	case models.ReferenceStatusProcessing:
		if r.ReferenceType == models.ReferenceTypePaper {
			return models.ReferenceStatusInDelivery, true
		}
		return models.ReferenceStatusCompleted, true
	case models.ReferenceStatusInDelivery:
		return models.ReferenceStatusCompleted, true
	}
	return "", false
}

// referenceCode derives the short human readable code of a reference.
func referenceCode(id string) string {
	code := strings.ToUpper(strings.ReplaceAll(id, "-", ""))
	if len(code) > 10 {
		code = code[len(code)-10:]
	}
	return "REF-" + code
}
