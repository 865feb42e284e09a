package service

import "errors"

// List session errors.
var (
	// ErrFetchFailed wraps the transport error of a failed page fetch.
	ErrFetchFailed = errors.New("page fetch failed")

	// ErrDeleteFailed wraps the transport error of a failed delete. The
	// collection is left as it was.
	ErrDeleteFailed = errors.New("delete failed")

	// ErrInvalidCursorState marks a next page request that the cursor or the
	// list state does not allow. It is logged and never reaches the listener.
	ErrInvalidCursorState = errors.New("invalid cursor state")

	// ErrSessionStopped is returned by every operation once Stop was called.
	ErrSessionStopped = errors.New("list session stopped")

	// ErrSessionNotStarted is returned by operations issued before Start.
	ErrSessionNotStarted = errors.New("list session not started")

	// ErrSessionAlreadyStarted is returned by a second call to Start.
	ErrSessionAlreadyStarted = errors.New("list session already started")

	// ErrUnknownVariant is returned for a variant outside [models.Variants].
	ErrUnknownVariant = errors.New("unknown list variant")
)

// Feed server errors.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
