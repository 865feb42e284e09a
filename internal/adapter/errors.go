package adapter

import "errors"

// Sentinel errors returned by mapHTTPError for non-2xx responses.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
)

var (
	// ErrUnknownVariant is returned for a list variant the server has no
	// endpoint for.
	ErrUnknownVariant = errors.New("unknown list variant")

	// ErrStreamHandshake is returned when the websocket upgrade fails.
	ErrStreamHandshake = errors.New("status stream handshake failed")
)
