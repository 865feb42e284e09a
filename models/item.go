// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Item is one entry of a reconciled list.
//
// Only ID, State and OrderingKey take part in merging, diffing and equality;
// Payload is carried along for display and is opaque to the engine.
type Item struct {
	// ID is the server-assigned identity. It is never reused.
	ID string

	// State is the current lifecycle stage of the document.
	State LifecycleState

	// OrderingKey is the request timestamp; lists are kept ordered by it,
	// newest first.
	OrderingKey time.Time

	// Payload holds display-only fields.
	Payload ItemPayload
}

// ItemPayload groups the fields the engine never inspects.
type ItemPayload struct {
	Title           string
	Subtitle        string
	Format          string
	FileID          string
	Currency        string
	From            *time.Time
	To              *time.Time
	IsPhysical      bool
	TrackNumber     string
	DeliveryService string
	ReferenceCode   string
	ReferenceType   string
}

// Equal reports whether two items are the same entry in the same state.
// Payload differences are ignored.
func (i Item) Equal(other Item) bool {
	return i.ID == other.ID && i.State == other.State
}

// Page is one successfully fetched page of a paginated list.
type Page struct {
	// Items are the entries in server order.
	Items []Item

	// NextToken is the continuation token for the following page. "EOF" or
	// an empty string means no further page exists.
	NextToken string
}
