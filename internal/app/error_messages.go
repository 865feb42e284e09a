// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains message strings shared by the feed server handlers
// and the terminal client.
//
// Msg* constants end up in HTTP error bodies, log entries and the status bar
// of the client, so the wording stays the same everywhere.
package app

const (
	// MsgInvalidJSON is returned when a request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInternalServerError replaces the details of unexpected server-side
	// failures in response bodies.
	MsgInternalServerError = "internal server error"

	// MsgNothingToCopy is shown when the selected document has no tracking
	// link.
	MsgNothingToCopy = "Нечего копировать: документ не в доставке"

	// MsgCopied confirms that the tracking link is in the clipboard.
	MsgCopied = "Ссылка скопирована"

	// MsgEmptyList is shown in place of an empty list.
	MsgEmptyList = "Документов пока нет"
)
