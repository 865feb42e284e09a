// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// StatementFormat is the file format a statement is rendered into.
type StatementFormat string

const (
	FormatOneS StatementFormat = "OneS"
	FormatPDF  StatementFormat = "Pdf"
	FormatXLSX StatementFormat = "Xlsx"
)

// Title returns the human readable format name.
func (f StatementFormat) Title() string {
	switch f {
	case FormatOneS:
		return "1C"
	case FormatPDF:
		return "PDF"
	case FormatXLSX:
		return "Excel"
	default:
		return string(f)
	}
}

// Statement is an account statement as stored by the feed server and
// returned by the statements endpoint.
type Statement struct {
	// ID is the unique statement identifier.
	ID string `json:"id"`

	// CompanyID is the owner of the statement. It is never serialised; the
	// company is always part of the request path.
	CompanyID string `json:"-"`

	Title        string          `json:"title"`
	OrderDate    time.Time       `json:"orderDate"`
	FileID       string          `json:"fileId"`
	From         time.Time       `json:"from"`
	To           time.Time       `json:"to"`
	IsPhysical   bool            `json:"isPhysical"`
	Format       StatementFormat `json:"type"`
	Status       string          `json:"status"`
	CurrencyCode string          `json:"currencyCode"`

	// TrackNumber and DeliveryService are set for paper statements once
	// they are handed over to a courier.
	TrackNumber     *string `json:"trackNumber,omitempty"`
	DeliveryService *string `json:"deliveryService,omitempty"`
}

// ToItem converts the statement into a list [Item]. It returns false when
// the statement reports an unknown status.
func (s Statement) ToItem() (Item, bool) {
	state, ok := ParseLifecycleState(s.Status)
	if !ok {
		return Item{}, false
	}

	from, to := s.From, s.To
	return Item{
		ID:          s.ID,
		State:       state,
		OrderingKey: s.OrderDate,
		Payload: ItemPayload{
			Title: s.Title,
			Subtitle: fmt.Sprintf("%s - %s, %s",
				from.UTC().Format("02.01.2006"), to.UTC().Format("02.01.2006"), s.Format.Title()),
			Format:          string(s.Format),
			FileID:          s.FileID,
			Currency:        s.CurrencyCode,
			From:            &from,
			To:              &to,
			IsPhysical:      s.IsPhysical,
			TrackNumber:     deref(s.TrackNumber),
			DeliveryService: deref(s.DeliveryService),
		},
	}, true
}

// StatementsPage is the body of the statements list endpoint.
type StatementsPage struct {
	Statements []Statement `json:"statements"`

	// NextID is the identifier the next page starts at, or "EOF".
	NextID string `json:"nextId"`
}

// StatementDetail is the body of the single statement endpoint.
type StatementDetail struct {
	Statement

	FileSize  *int `json:"fileSize,omitempty"`
	PageCount *int `json:"pageCount,omitempty"`
	Price     *int `json:"price,omitempty"`
}

// TrackingLink returns the courier link shown for statements in delivery:
// the delivery service address followed by the track number.
func (d StatementDetail) TrackingLink() string {
	return deref(d.DeliveryService) + deref(d.TrackNumber)
}

// StatementRequest is the body used to order a new statement.
type StatementRequest struct {
	Title        string          `json:"title"`
	From         time.Time       `json:"from"`
	To           time.Time       `json:"to"`
	Format       StatementFormat `json:"type"`
	IsPhysical   bool            `json:"isPhysical"`
	CurrencyCode string          `json:"currencyCode"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
