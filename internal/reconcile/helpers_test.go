// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reconcile

import (
	"time"

	"github.com/MKhiriev/go-statement-list/models"
)

func item(id string, state models.LifecycleState, key int64) models.Item {
	return models.Item{ID: id, State: state, OrderingKey: time.Unix(key, 0)}
}

func ids(items []models.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func equalItems(a, b []models.Item) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
