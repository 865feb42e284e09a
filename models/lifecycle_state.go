// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LifecycleState is the processing stage of a statement or certificate.
// The set of values is closed; unknown wire values are rejected by
// [ParseLifecycleState].
type LifecycleState string

const (
	StateNew                        LifecycleState = "New"
	StateProcessing                 LifecycleState = "Processing"
	StateReady                      LifecycleState = "Ready"
	StateError                      LifecycleState = "Error"
	StatePhysicalInDelivery         LifecycleState = "PhysicalInDelivery"
	StatePhysicalDelivered          LifecycleState = "PhysicalDelivered"
	StatePhysicalConfirmationNeeded LifecycleState = "PhysicalConfirmationNeeded"
	StatePhysicalConfirmed          LifecycleState = "PhysicalConfirmed"
)

var lifecycleStates = map[LifecycleState]struct{}{
	StateNew:                        {},
	StateProcessing:                 {},
	StateReady:                      {},
	StateError:                      {},
	StatePhysicalInDelivery:         {},
	StatePhysicalDelivered:          {},
	StatePhysicalConfirmationNeeded: {},
	StatePhysicalConfirmed:          {},
}

// ParseLifecycleState converts a raw wire value into a [LifecycleState].
// The second result is false when raw is not one of the known states.
func ParseLifecycleState(raw string) (LifecycleState, bool) {
	s := LifecycleState(raw)
	_, ok := lifecycleStates[s]
	return s, ok
}

// Valid reports whether s belongs to the closed set of lifecycle states.
func (s LifecycleState) Valid() bool {
	_, ok := lifecycleStates[s]
	return ok
}

// IsPhysical reports whether s is one of the paper-delivery sub-states.
func (s LifecycleState) IsPhysical() bool {
	switch s {
	case StatePhysicalInDelivery, StatePhysicalDelivered,
		StatePhysicalConfirmationNeeded, StatePhysicalConfirmed:
		return true
	}
	return false
}

// CompletionState maps a completion notification outcome to the state the
// item ends up in.
func CompletionState(success bool) LifecycleState {
	if success {
		return StateReady
	}
	return StateError
}

// Certificate statuses as reported by the references endpoint.
const (
	ReferenceStatusProcessing = "Processing"
	ReferenceStatusInDelivery = "InDelivery"
	ReferenceStatusCompleted  = "Completed"
	ReferenceStatusError      = "Error"
)

// ReferenceLifecycleState maps a certificate status onto the shared
// lifecycle enumeration.
func ReferenceLifecycleState(status string) (LifecycleState, bool) {
	switch status {
	case ReferenceStatusProcessing:
		return StateProcessing, true
	case ReferenceStatusInDelivery:
		return StatePhysicalInDelivery, true
	case ReferenceStatusCompleted:
		return StateReady, true
	case ReferenceStatusError:
		return StateError, true
	}
	return "", false
}

// ReferenceStatus is the inverse of [ReferenceLifecycleState]. States that
// have no certificate counterpart return false.
func ReferenceStatus(state LifecycleState) (string, bool) {
	switch state {
	case StateProcessing:
		return ReferenceStatusProcessing, true
	case StatePhysicalInDelivery:
		return ReferenceStatusInDelivery, true
	case StateReady:
		return ReferenceStatusCompleted, true
	case StateError:
		return ReferenceStatusError, true
	}
	return "", false
}
