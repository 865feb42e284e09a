package store

import "github.com/MKhiriev/go-statement-list/internal/logger"

type Repositories struct {
	StatementRepository StatementRepository
	ReferenceRepository ReferenceRepository
}

func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		StatementRepository: NewStatementRepository(db, logger),
		ReferenceRepository: NewReferenceRepository(db, logger),
	}
}
