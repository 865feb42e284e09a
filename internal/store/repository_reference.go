package store

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-statement-list/internal/logger"
	"github.com/MKhiriev/go-statement-list/models"
)

type referenceRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewReferenceRepository constructs a [ReferenceRepository] backed by db.
func NewReferenceRepository(db *DB, logger *logger.Logger) ReferenceRepository {
	return &referenceRepository{DB: db, logger: logger, now: time.Now}
}

func (r *referenceRepository) ListReferences(ctx context.Context, companyID, startID string, limit uint64) ([]models.Reference, error) {
	log := logger.FromContext(ctx)

	var startOrder time.Time
	if startID != "" {
		var err error
		startOrder, err = r.lookupOrderKey(ctx, referencesTable, companyID, startID)
		if err != nil {
			return nil, err
		}
	}

	query, args, err := buildPageQuery(r.builder(), referencesTable, companyID, startID, startOrder, limit)
	if err != nil {
		log.Err(err).Str("func", "referenceRepository.ListReferences").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryReferences(ctx, "referenceRepository.ListReferences", query, args...)
}

func (r *referenceRepository) CreateReference(ctx context.Context, reference models.Reference) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertReferenceQuery(r.builder(), reference, r.now())
	if err != nil {
		log.Err(err).Str("func", "referenceRepository.CreateReference").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.execWithRetry(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrDocumentAlreadyExists
		}
		log.Err(err).
			Str("func", "referenceRepository.CreateReference").
			Str("company_id", reference.CompanyID).
			Str("request_id", reference.RequestID).
			Msg("failed to insert reference")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *referenceRepository) DeleteReference(ctx context.Context, companyID, id string) error {
	query, args, err := buildDeleteQuery(r.builder(), referencesTable, companyID, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "referenceRepository.DeleteReference", query, args...)
}

func (r *referenceRepository) UpdateReferenceStatus(ctx context.Context, companyID, id, status string) error {
	query, args, err := buildStatusUpdateQuery(r.builder(), referencesTable, companyID, id, status, r.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "referenceRepository.UpdateReferenceStatus", query, args...)
}

func (r *referenceRepository) ListStaleReferences(ctx context.Context, statuses []string, olderThan time.Time) ([]models.Reference, error) {
	query, args, err := buildStaleQuery(r.builder(), referencesTable, statuses, olderThan)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryReferences(ctx, "referenceRepository.ListStaleReferences", query, args...)
}

func (r *referenceRepository) queryReferences(ctx context.Context, funcName, query string, args ...any) ([]models.Reference, error) {
	log := logger.FromContext(ctx)

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	references := make([]models.Reference, 0)
	for rows.Next() {
		var ref models.Reference
		if scanErr := scanReference(rows, &ref); scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan reference row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		references = append(references, ref)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", funcName).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return references, nil
}
