// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StatusUpdateMessageType is the only push frame type the list engine
// consumes.
const StatusUpdateMessageType = "statementStatusUpdate"

// StatusMessage is a raw push frame as it travels over the websocket.
// Status is kept as a plain string so that unknown values can be dropped by
// the consumer instead of failing the decode of the whole frame.
type StatusMessage struct {
	Type        string `json:"type"`
	StatementID string `json:"statementId"`
	Status      string `json:"status"`
}

// StatusUpdate is a validated push event: item ItemID moved to State.
type StatusUpdate struct {
	ItemID string
	State  LifecycleState
}

// StatusChangeRequest is the body of the status update endpoint.
type StatusChangeRequest struct {
	Status string `json:"status"`
}
