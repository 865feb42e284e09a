// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reconcile

import (
	"testing"

	"github.com/MKhiriev/go-statement-list/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		existing []models.Item
		incoming []models.Item
		wantIDs  []string
		wantSt   map[string]models.LifecycleState
	}{
		{
			name:     "empty inputs",
			existing: nil,
			incoming: nil,
			wantIDs:  []string{},
		},
		{
			name:     "only incoming is sorted",
			incoming: []models.Item{item("a", models.StateReady, 1), item("b", models.StateReady, 3)},
			wantIDs:  []string{"b", "a"},
		},
		{
			name: "incoming replaces existing with same id",
			existing: []models.Item{
				item("a", models.StateProcessing, 10),
				item("b", models.StateReady, 5),
			},
			incoming: []models.Item{
				item("a", models.StateReady, 10),
				item("c", models.StateNew, 12),
			},
			wantIDs: []string{"c", "a", "b"},
			wantSt: map[string]models.LifecycleState{
				"a": models.StateReady,
				"b": models.StateReady,
				"c": models.StateNew,
			},
		},
		{
			name: "ties keep existing then incoming order",
			existing: []models.Item{
				item("x", models.StateReady, 7),
				item("y", models.StateReady, 7),
			},
			incoming: []models.Item{
				item("z", models.StateReady, 7),
				item("w", models.StateReady, 9),
			},
			wantIDs: []string{"w", "x", "y", "z"},
		},
		{
			name: "replaced item keeps its existing slot on ties",
			existing: []models.Item{
				item("x", models.StateReady, 7),
				item("y", models.StateReady, 7),
			},
			incoming: []models.Item{
				item("z", models.StateReady, 7),
				item("x", models.StateError, 7),
			},
			wantIDs: []string{"x", "y", "z"},
			wantSt:  map[string]models.LifecycleState{"x": models.StateError},
		},
		{
			name: "duplicate ids inside a page collapse to the last one",
			incoming: []models.Item{
				item("a", models.StateNew, 1),
				item("a", models.StateReady, 1),
			},
			wantIDs: []string{"a"},
			wantSt:  map[string]models.LifecycleState{"a": models.StateReady},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.existing, tt.incoming)

			assert.Equal(t, tt.wantIDs, ids(got))
			for _, it := range got {
				if want, ok := tt.wantSt[it.ID]; ok {
					assert.Equal(t, want, it.State, "state of %s", it.ID)
				}
			}
		})
	}
}

func TestMerge_DoesNotMutateInputs(t *testing.T) {
	existing := []models.Item{item("a", models.StateProcessing, 1), item("b", models.StateReady, 2)}
	incoming := []models.Item{item("a", models.StateReady, 1)}

	_ = Merge(existing, incoming)

	assert.Equal(t, []string{"a", "b"}, ids(existing))
	assert.Equal(t, models.StateProcessing, existing[0].State)
	assert.Equal(t, []string{"a"}, ids(incoming))
}

func TestMerge_Idempotent(t *testing.T) {
	list := []models.Item{
		item("a", models.StateProcessing, 10),
		item("b", models.StateReady, 5),
		item("d", models.StateReady, 5),
	}
	page := []models.Item{
		item("a", models.StateReady, 10),
		item("c", models.StateNew, 12),
		item("e", models.StateNew, 5),
	}

	once := Merge(list, page)
	twice := Merge(once, page)

	require.Equal(t, ids(once), ids(twice))
	assert.True(t, equalItems(once, twice))
}

func TestMerge_SortInvariant(t *testing.T) {
	list := []models.Item{
		item("a", models.StateReady, 3),
		item("b", models.StateReady, 30),
		item("c", models.StateReady, 1),
	}
	page := []models.Item{
		item("d", models.StateReady, 15),
		item("a", models.StateReady, 40),
		item("e", models.StateReady, 2),
	}

	got := Merge(list, page)
	require.Len(t, got, 5)
	for i := 0; i+1 < len(got); i++ {
		assert.False(t, got[i].OrderingKey.Before(got[i+1].OrderingKey),
			"%s must not be older than %s", got[i].ID, got[i+1].ID)
	}
}
