package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-statement-list/internal/validators"
	"github.com/MKhiriev/go-statement-list/models"
)

// DocumentValidationService rejects malformed requests before they reach
// the wrapped DocumentService. Every rejection wraps ErrInvalidDataProvided.
type DocumentValidationService struct {
	inner     DocumentService
	validator validators.Validator
}

func NewDocumentValidationService() DocumentServiceWrapper {
	return &DocumentValidationService{
		validator: validators.NewDocumentValidator(),
	}
}

func (v *DocumentValidationService) Wrap(inner DocumentService) DocumentService {
	v.inner = inner
	return v
}

func (v *DocumentValidationService) ListStatements(ctx context.Context, companyID, nextID string) (models.StatementsPage, error) {
	if err := checkCompanyID(companyID); err != nil {
		return models.StatementsPage{}, err
	}
	return v.inner.ListStatements(ctx, companyID, nextID)
}

func (v *DocumentValidationService) GetStatement(ctx context.Context, companyID, id string) (models.StatementDetail, error) {
	if err := checkCompanyID(companyID); err != nil {
		return models.StatementDetail{}, err
	}
	return v.inner.GetStatement(ctx, companyID, id)
}

func (v *DocumentValidationService) CreateStatement(ctx context.Context, companyID string, request models.StatementRequest) (models.Statement, error) {
	if err := checkCompanyID(companyID); err != nil {
		return models.Statement{}, err
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Statement{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.CreateStatement(ctx, companyID, request)
}

func (v *DocumentValidationService) DeleteStatement(ctx context.Context, companyID, id string) error {
	if err := checkCompanyID(companyID); err != nil {
		return err
	}
	return v.inner.DeleteStatement(ctx, companyID, id)
}

func (v *DocumentValidationService) ChangeStatementStatus(ctx context.Context, companyID, id, status string) error {
	if err := checkCompanyID(companyID); err != nil {
		return err
	}
	if err := v.validator.Validate(ctx, models.StatusChangeRequest{Status: status}); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.ChangeStatementStatus(ctx, companyID, id, status)
}

func (v *DocumentValidationService) ListReferences(ctx context.Context, companyID, continuationToken string) (models.ReferencesPage, error) {
	if err := checkCompanyID(companyID); err != nil {
		return models.ReferencesPage{}, err
	}
	return v.inner.ListReferences(ctx, companyID, continuationToken)
}

func (v *DocumentValidationService) CreateReference(ctx context.Context, companyID string, request models.ReferenceRequest) (models.Reference, error) {
	if err := checkCompanyID(companyID); err != nil {
		return models.Reference{}, err
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.Reference{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return v.inner.CreateReference(ctx, companyID, request)
}

func (v *DocumentValidationService) DeleteReference(ctx context.Context, companyID, id string) error {
	if err := checkCompanyID(companyID); err != nil {
		return err
	}
	return v.inner.DeleteReference(ctx, companyID, id)
}

func (v *DocumentValidationService) AdvanceStatuses(ctx context.Context, olderThan time.Time) (int, error) {
	return v.inner.AdvanceStatuses(ctx, olderThan)
}

func checkCompanyID(companyID string) error {
	if !validators.ValidCompanyID(companyID) {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, validators.ErrInvalidCompanyID)
	}
	return nil
}
