// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reconcile

import "errors"

var (
	// ErrIndexOutOfRange is returned by [Apply] when an operation does not fit
	// the collection it is applied to, which means the batch was computed
	// against a different snapshot.
	ErrIndexOutOfRange = errors.New("diff operation index out of range")

	// ErrUnknownOperation is returned by [Apply] for an unrecognised kind.
	ErrUnknownOperation = errors.New("unknown diff operation")
)
