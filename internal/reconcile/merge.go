// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reconcile

import (
	"slices"

	"github.com/MKhiriev/go-statement-list/models"
)

// Merge combines an existing collection with a freshly fetched page.
//
// Items are keyed by ID. An incoming item replaces the existing entry with the
// same ID in place; items only present in existing are kept; unseen incoming
// items are appended. The union is then stably sorted by OrderingKey, newest
// first, so equal keys keep the order of existing followed by incoming.
//
// Merge never mutates its arguments. Merging the same page twice yields the
// same result as merging it once.
func Merge(existing, incoming []models.Item) []models.Item {
	merged := make([]models.Item, 0, len(existing)+len(incoming))
	positions := make(map[string]int, len(existing)+len(incoming))

	put := func(item models.Item) {
		if pos, ok := positions[item.ID]; ok {
			merged[pos] = item
			return
		}
		positions[item.ID] = len(merged)
		merged = append(merged, item)
	}

	for _, item := range existing {
		put(item)
	}
	for _, item := range incoming {
		put(item)
	}

	SortByOrderingKey(merged)
	return merged
}

// SortByOrderingKey stably sorts items by OrderingKey, newest first.
func SortByOrderingKey(items []models.Item) {
	slices.SortStableFunc(items, func(a, b models.Item) int {
		return b.OrderingKey.Compare(a.OrderingKey)
	})
}
