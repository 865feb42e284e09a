package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-statement-list/internal/logger"
	"github.com/MKhiriev/go-statement-list/models"
)

// statementRepository is the SQL implementation of [StatementRepository]
// over the "statements" table.
type statementRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewStatementRepository constructs a [StatementRepository] backed by db.
func NewStatementRepository(db *DB, logger *logger.Logger) StatementRepository {
	return &statementRepository{DB: db, logger: logger, now: time.Now}
}

// ListStatements implements [StatementRepository].
func (r *statementRepository) ListStatements(ctx context.Context, companyID, startID string, limit uint64) ([]models.Statement, error) {
	log := logger.FromContext(ctx)

	var startOrder time.Time
	if startID != "" {
		var err error
		startOrder, err = r.lookupOrderKey(ctx, statementsTable, companyID, startID)
		if err != nil {
			return nil, err
		}
	}

	query, args, err := buildPageQuery(r.builder(), statementsTable, companyID, startID, startOrder, limit)
	if err != nil {
		log.Err(err).Str("func", "statementRepository.ListStatements").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "statementRepository.ListStatements").
			Str("company_id", companyID).
			Str("start_id", startID).
			Msg("failed to execute query for statements page")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	statements := make([]models.Statement, 0, limit)
	for rows.Next() {
		var s models.Statement
		if scanErr := scanStatement(rows, &s); scanErr != nil {
			log.Err(scanErr).
				Str("func", "statementRepository.ListStatements").
				Str("company_id", companyID).
				Msg("failed to scan statement row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		statements = append(statements, s)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "statementRepository.ListStatements").
			Str("company_id", companyID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return statements, nil
}

// GetStatement implements [StatementRepository].
func (r *statementRepository) GetStatement(ctx context.Context, companyID, id string) (models.StatementDetail, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildStatementDetailQuery(r.builder(), companyID, id)
	if err != nil {
		log.Err(err).Str("func", "statementRepository.GetStatement").Msg("failed to create query")
		return models.StatementDetail{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var detail models.StatementDetail
	err = scanStatement(r.QueryRowContext(ctx, query, args...), &detail.Statement,
		&detail.FileSize, &detail.PageCount, &detail.Price)
	if errors.Is(err, sql.ErrNoRows) {
		return models.StatementDetail{}, ErrDocumentNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "statementRepository.GetStatement").
			Str("company_id", companyID).
			Str("id", id).
			Msg("failed to scan statement")
		return models.StatementDetail{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return detail, nil
}

// CreateStatement implements [StatementRepository].
func (r *statementRepository) CreateStatement(ctx context.Context, statement models.Statement) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertStatementQuery(r.builder(), statement, r.now())
	if err != nil {
		log.Err(err).Str("func", "statementRepository.CreateStatement").Msg("failed to create query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.execWithRetry(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrDocumentAlreadyExists
		}
		log.Err(err).
			Str("func", "statementRepository.CreateStatement").
			Str("company_id", statement.CompanyID).
			Str("id", statement.ID).
			Msg("failed to insert statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteStatement implements [StatementRepository].
func (r *statementRepository) DeleteStatement(ctx context.Context, companyID, id string) error {
	query, args, err := buildDeleteQuery(r.builder(), statementsTable, companyID, id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "statementRepository.DeleteStatement", query, args...)
}

// UpdateStatementStatus implements [StatementRepository].
func (r *statementRepository) UpdateStatementStatus(ctx context.Context, companyID, id, status string) error {
	query, args, err := buildStatusUpdateQuery(r.builder(), statementsTable, companyID, id, status, r.now())
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.execAffectingOne(ctx, "statementRepository.UpdateStatementStatus", query, args...)
}

// ListStaleStatements implements [StatementRepository].
func (r *statementRepository) ListStaleStatements(ctx context.Context, statuses []string, olderThan time.Time) ([]models.Statement, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildStaleQuery(r.builder(), statementsTable, statuses, olderThan)
	if err != nil {
		log.Err(err).Str("func", "statementRepository.ListStaleStatements").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "statementRepository.ListStaleStatements").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var statements []models.Statement
	for rows.Next() {
		var s models.Statement
		if scanErr := scanStatement(rows, &s); scanErr != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		statements = append(statements, s)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return statements, nil
}

// lookupOrderKey returns the ordering value of the row a page starts at.
func (db *DB) lookupOrderKey(ctx context.Context, t keysetTable, companyID, startID string) (time.Time, error) {
	query, args, err := buildOrderKeyQuery(db.builder(), t, companyID, startID)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var order time.Time
	err = db.QueryRowContext(ctx, query, args...).Scan(&order)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, ErrCursorNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "DB.lookupOrderKey").
			Str("table", t.name).
			Str("start_id", startID).
			Msg("failed to look up page start")
		return time.Time{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return order, nil
}

// execAffectingOne runs a write that must touch exactly one row; zero rows
// means the document does not exist.
func (db *DB) execAffectingOne(ctx context.Context, funcName, query string, args ...any) error {
	log := logger.FromContext(ctx)

	result, err := db.execWithRetry(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to read affected rows")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrDocumentNotFound
	}

	return nil
}
