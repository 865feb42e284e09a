// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Reference is a bank reference (certificate) request.
type Reference struct {
	RequestID     string    `json:"requestId"`
	CompanyID     string    `json:"-"`
	ReferenceCode string    `json:"referenceCode"`
	Name          string    `json:"name"`
	SubTitle      string    `json:"subTitle"`
	RequestDate   time.Time `json:"requestDate"`
	Status        string    `json:"status"`
	ReferenceType string    `json:"referenceType"`
	FileID        *string   `json:"fileId,omitempty"`
	AccountNumber *string   `json:"accountNumber,omitempty"`
}

// ToItem converts the reference into a list [Item]. It returns false when
// the reference reports an unknown status.
func (r Reference) ToItem() (Item, bool) {
	state, ok := ReferenceLifecycleState(r.Status)
	if !ok {
		return Item{}, false
	}

	return Item{
		ID:          r.RequestID,
		State:       state,
		OrderingKey: r.RequestDate,
		Payload: ItemPayload{
			Title:         r.Name,
			Subtitle:      r.SubTitle,
			FileID:        deref(r.FileID),
			IsPhysical:    r.ReferenceType == ReferenceTypePaper,
			ReferenceCode: r.ReferenceCode,
			ReferenceType: r.ReferenceType,
		},
	}, true
}

// ReferencesPage is the body of the references list endpoint.
type ReferencesPage struct {
	BankReferencesRequests []Reference `json:"bankReferencesRequests"`

	// ContinuationToken points at the next page. It is empty once the list
	// is exhausted.
	ContinuationToken string `json:"continuationToken"`
}

// Certificate kinds.
const (
	ReferenceTypeElectronic = "Electronic"
	ReferenceTypePaper      = "Paper"
)

// ReferenceRequest is the body used to order a new bank reference.
type ReferenceRequest struct {
	Name          string  `json:"name"`
	SubTitle      string  `json:"subTitle"`
	ReferenceType string  `json:"referenceType"`
	AccountNumber *string `json:"accountNumber,omitempty"`
}
