package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-statement-list/models"
)

const staleBatchSize = 100

// keysetTable describes a document table listed with keyset pagination:
// rows are ordered by (order DESC, key DESC).
type keysetTable struct {
	name    string
	columns []string
	key     string
	order   string
}

var statementsTable = keysetTable{
	name: "statements",
	columns: []string{
		"id", "company_id", "title", "order_date", "file_id", "period_from", "period_to",
		"is_physical", "format", "status", "currency_code", "track_number", "delivery_service",
	},
	key:   "id",
	order: "order_date",
}

var statementDetailExtraColumns = []string{"file_size", "page_count", "price"}

var referencesTable = keysetTable{
	name: "bank_references",
	columns: []string{
		"request_id", "company_id", "reference_code", "name", "sub_title", "request_date",
		"status", "reference_type", "file_id", "account_number",
	},
	key:   "request_id",
	order: "request_date",
}

// buildOrderKeyQuery selects the ordering value of the row a page starts at.
func buildOrderKeyQuery(b sq.StatementBuilderType, t keysetTable, companyID, startID string) (string, []any, error) {
	return b.Select(t.order).
		From(t.name).
		Where(sq.Eq{"company_id": companyID, t.key: startID}).
		ToSql()
}

// buildPageQuery selects up to limit rows of companyID. With a startID the
// page begins at that row, whose ordering value is startOrder.
func buildPageQuery(b sq.StatementBuilderType, t keysetTable, companyID, startID string, startOrder time.Time, limit uint64) (string, []any, error) {
	q := b.Select(t.columns...).
		From(t.name).
		Where(sq.Eq{"company_id": companyID})

	if startID != "" {
		q = q.Where(sq.Or{
			sq.Lt{t.order: startOrder},
			sq.And{sq.Eq{t.order: startOrder}, sq.LtOrEq{t.key: startID}},
		})
	}

	return q.OrderBy(t.order+" DESC", t.key+" DESC").
		Limit(limit).
		ToSql()
}

func buildStaleQuery(b sq.StatementBuilderType, t keysetTable, statuses []string, olderThan time.Time) (string, []any, error) {
	return b.Select(t.columns...).
		From(t.name).
		Where(sq.Eq{"status": statuses}).
		Where(sq.Lt{"updated_at": olderThan.UTC()}).
		OrderBy("updated_at").
		Limit(staleBatchSize).
		ToSql()
}

func buildDeleteQuery(b sq.StatementBuilderType, t keysetTable, companyID, id string) (string, []any, error) {
	return b.Delete(t.name).
		Where(sq.Eq{"company_id": companyID, t.key: id}).
		ToSql()
}

func buildStatusUpdateQuery(b sq.StatementBuilderType, t keysetTable, companyID, id, status string, now time.Time) (string, []any, error) {
	return b.Update(t.name).
		Set("status", status).
		Set("updated_at", now.UTC()).
		Where(sq.Eq{"company_id": companyID, t.key: id}).
		ToSql()
}

func buildStatementDetailQuery(b sq.StatementBuilderType, companyID, id string) (string, []any, error) {
	columns := append(append([]string(nil), statementsTable.columns...), statementDetailExtraColumns...)

	return b.Select(columns...).
		From(statementsTable.name).
		Where(sq.Eq{"company_id": companyID, "id": id}).
		ToSql()
}

func buildInsertStatementQuery(b sq.StatementBuilderType, s models.Statement, now time.Time) (string, []any, error) {
	return b.Insert(statementsTable.name).
		Columns(append(append([]string(nil), statementsTable.columns...), "updated_at")...).
		Values(
			s.ID, s.CompanyID, s.Title, s.OrderDate.UTC(), s.FileID, s.From.UTC(), s.To.UTC(),
			s.IsPhysical, string(s.Format), s.Status, s.CurrencyCode, s.TrackNumber, s.DeliveryService,
			now.UTC(),
		).
		ToSql()
}

func buildInsertReferenceQuery(b sq.StatementBuilderType, r models.Reference, now time.Time) (string, []any, error) {
	return b.Insert(referencesTable.name).
		Columns(append(append([]string(nil), referencesTable.columns...), "updated_at")...).
		Values(
			r.RequestID, r.CompanyID, r.ReferenceCode, r.Name, r.SubTitle, r.RequestDate.UTC(),
			r.Status, r.ReferenceType, r.FileID, r.AccountNumber,
			now.UTC(),
		).
		ToSql()
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanStatement(row rowScanner, s *models.Statement, extra ...any) error {
	dest := []any{
		&s.ID, &s.CompanyID, &s.Title, &s.OrderDate, &s.FileID, &s.From, &s.To,
		&s.IsPhysical, &s.Format, &s.Status, &s.CurrencyCode, &s.TrackNumber, &s.DeliveryService,
	}
	return row.Scan(append(dest, extra...)...)
}

func scanReference(row rowScanner, r *models.Reference) error {
	return row.Scan(
		&r.RequestID, &r.CompanyID, &r.ReferenceCode, &r.Name, &r.SubTitle, &r.RequestDate,
		&r.Status, &r.ReferenceType, &r.FileID, &r.AccountNumber,
	)
}
