// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reconcile

import "github.com/MKhiriev/go-statement-list/models"

// DecodeStatus validates a raw push frame. Frames of another type, without
// an item id or with an unknown status are rejected; the caller drops them.
func DecodeStatus(msg models.StatusMessage) (models.StatusUpdate, bool) {
	if msg.Type != models.StatusUpdateMessageType || msg.StatementID == "" {
		return models.StatusUpdate{}, false
	}

	state, ok := models.ParseLifecycleState(msg.Status)
	if !ok {
		return models.StatusUpdate{}, false
	}

	return models.StatusUpdate{ItemID: msg.StatementID, State: state}, true
}

// ApplyStatus overwrites the lifecycle state of the item with the update's
// id, in place. Nothing else about the item changes. It reports whether an
// item was found and its state actually changed; an absent id leaves items
// untouched.
func ApplyStatus(items []models.Item, update models.StatusUpdate) bool {
	for i := range items {
		if items[i].ID != update.ItemID {
			continue
		}
		if items[i].State == update.State {
			return false
		}
		items[i].State = update.State
		return true
	}
	return false
}

// PendingStatuses remembers push updates received while a page fetch was in
// flight, last write per id, so they can be laid over the page once it lands.
//
// The zero value is ready to use.
type PendingStatuses struct {
	states map[string]models.LifecycleState
}

// Record stores update, replacing any earlier state for the same id.
func (p *PendingStatuses) Record(update models.StatusUpdate) {
	if p.states == nil {
		p.states = make(map[string]models.LifecycleState)
	}
	p.states[update.ItemID] = update.State
}

// Reapply writes every recorded state over the matching items and returns how
// many items changed.
func (p *PendingStatuses) Reapply(items []models.Item) int {
	if len(p.states) == 0 {
		return 0
	}

	changed := 0
	for i := range items {
		state, ok := p.states[items[i].ID]
		if ok && items[i].State != state {
			items[i].State = state
			changed++
		}
	}
	return changed
}

// Len returns the number of recorded ids.
func (p *PendingStatuses) Len() int {
	return len(p.states)
}

// Reset drops every recorded update.
func (p *PendingStatuses) Reset() {
	p.states = nil
}
