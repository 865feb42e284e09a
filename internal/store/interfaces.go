// Package store persists the statements and bank references served by the
// feed server.
//
// The same repositories run on PostgreSQL (pgx) and SQLite; [DB] carries the
// dialect so that queries get the right placeholder format.
package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-statement-list/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// StatementRepository stores account statements.
type StatementRepository interface {
	// ListStatements returns up to limit statements of companyID ordered by
	// order date, newest first. A non-empty startID makes the listing start
	// at that statement (inclusive); an unknown startID yields
	// ErrCursorNotFound.
	ListStatements(ctx context.Context, companyID, startID string, limit uint64) ([]models.Statement, error)
	GetStatement(ctx context.Context, companyID, id string) (models.StatementDetail, error)
	CreateStatement(ctx context.Context, statement models.Statement) error
	DeleteStatement(ctx context.Context, companyID, id string) error
	UpdateStatementStatus(ctx context.Context, companyID, id, status string) error

	// ListStaleStatements returns statements in one of statuses that were
	// last updated before olderThan, across all companies.
	ListStaleStatements(ctx context.Context, statuses []string, olderThan time.Time) ([]models.Statement, error)
}

// ReferenceRepository stores bank reference requests. Its methods mirror
// [StatementRepository].
type ReferenceRepository interface {
	ListReferences(ctx context.Context, companyID, startID string, limit uint64) ([]models.Reference, error)
	CreateReference(ctx context.Context, reference models.Reference) error
	DeleteReference(ctx context.Context, companyID, id string) error
	UpdateReferenceStatus(ctx context.Context, companyID, id, status string) error
	ListStaleReferences(ctx context.Context, statuses []string, olderThan time.Time) ([]models.Reference, error)
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
