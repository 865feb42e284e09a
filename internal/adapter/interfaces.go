// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer between the list engine and
// the statement feed server.
//
// [ServerAdapter] hides the HTTP and websocket details from the service
// layer. The package ships one implementation, [NewHTTPServerAdapter], built
// on resty for request/response calls and gorilla/websocket for the status
// push stream.
//
// Non-2xx responses are mapped to the sentinel errors in errors.go by
// mapHTTPError, so callers match them with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-statement-list/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the statement feed server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every authenticated
	// request and to the websocket handshake.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Login requests a token for companyID and stores it via SetToken.
	Login(ctx context.Context, companyID string) (models.Token, error)

	// FetchPage loads one page of variant for companyID. An empty token
	// requests the first page. Entries with an unknown status are skipped.
	FetchPage(ctx context.Context, variant models.Variant, companyID, token string) (models.Page, error)

	// DeleteItem removes a statement or a certificate request.
	DeleteItem(ctx context.Context, variant models.Variant, companyID, id string) error

	// GetStatement loads the full description of a single statement.
	GetStatement(ctx context.Context, companyID, id string) (models.StatementDetail, error)

	// SubscribeStatusUpdates opens the status push stream. The returned
	// channel is closed when ctx ends or the connection drops; a closed
	// stream is not reopened.
	SubscribeStatusUpdates(ctx context.Context, companyID string) (<-chan models.StatusMessage, error)
}
