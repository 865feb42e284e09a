package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-statement-list/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/servicemock/services_mock.go -package=servicemock

// AuthService issues and checks the bearer tokens of the feed server. A
// token is bound to exactly one company.
type AuthService interface {
	CreateToken(ctx context.Context, companyID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// DocumentService serves the statement and bank reference feeds of a
// company.
type DocumentService interface {
	// ListStatements returns the page starting at nextID. The returned
	// NextID is the first id of the following page or "EOF".
	ListStatements(ctx context.Context, companyID, nextID string) (models.StatementsPage, error)
	GetStatement(ctx context.Context, companyID, id string) (models.StatementDetail, error)
	CreateStatement(ctx context.Context, companyID string, request models.StatementRequest) (models.Statement, error)
	DeleteStatement(ctx context.Context, companyID, id string) error

	// ChangeStatementStatus persists status and pushes it to the company's
	// subscribers.
	ChangeStatementStatus(ctx context.Context, companyID, id, status string) error

	// ListReferences returns the page starting at continuationToken. The
	// returned token is empty on the last page.
	ListReferences(ctx context.Context, companyID, continuationToken string) (models.ReferencesPage, error)
	CreateReference(ctx context.Context, companyID string, request models.ReferenceRequest) (models.Reference, error)
	DeleteReference(ctx context.Context, companyID, id string) error

	// AdvanceStatuses moves every document last touched before olderThan one
	// step along its lifecycle and pushes each change. It returns the number
	// of documents moved.
	AdvanceStatuses(ctx context.Context, olderThan time.Time) (int, error)
}

// StatusHub fans status frames out to the websocket subscribers of a
// company.
type StatusHub interface {
	// Subscribe registers a subscriber. The returned func unsubscribes and
	// closes the channel; it may be called more than once.
	Subscribe(companyID string) (<-chan models.StatusMessage, func())
	Publish(companyID string, message models.StatusMessage)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// DocumentServiceWrapper decorates a DocumentService, e.g. with request
// validation.
type DocumentServiceWrapper interface {
	Wrap(DocumentService) DocumentService
}
