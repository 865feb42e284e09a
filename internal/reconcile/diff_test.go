// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reconcile

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/MKhiriev/go-statement-list/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── ComputeDiff ──────────────────────────────────────────────────────────────

func TestComputeDiff_Identical(t *testing.T) {
	list := []models.Item{
		item("a", models.StateReady, 3),
		item("b", models.StateProcessing, 2),
		item("c", models.StateNew, 1),
	}

	assert.Empty(t, ComputeDiff(list, list))
	assert.Empty(t, ComputeDiff(nil, nil))
}

func TestComputeDiff_PayloadChangesAreInvisible(t *testing.T) {
	old := []models.Item{item("a", models.StateReady, 3)}
	updated := []models.Item{item("a", models.StateReady, 3)}
	updated[0].Payload.Title = "renamed"

	assert.Empty(t, ComputeDiff(old, updated))
}

func TestComputeDiff_MergeScenario(t *testing.T) {
	old := []models.Item{
		item("A", models.StateProcessing, 10),
		item("B", models.StateReady, 5),
	}
	merged := Merge(old, []models.Item{
		item("A", models.StateReady, 10),
		item("C", models.StateNew, 12),
	})
	require.Equal(t, []string{"C", "A", "B"}, ids(merged))

	ops := ComputeDiff(old, merged)

	require.Len(t, ops, 2)
	assert.Equal(t, OpInsert, ops[0].Kind)
	assert.Equal(t, 0, ops[0].Index)
	assert.Equal(t, "C", ops[0].Item.ID)

	assert.Equal(t, OpReload, ops[1].Kind)
	assert.Equal(t, 0, ops[1].Index, "reload carries the old index")
	assert.Equal(t, 1, ops[1].NewIndex)
	assert.Equal(t, "A", ops[1].Item.ID)
	assert.Equal(t, models.StateReady, ops[1].Item.State)
}

func TestComputeDiff_Ordering(t *testing.T) {
	old := []models.Item{
		item("a", models.StateReady, 9),
		item("b", models.StateProcessing, 8),
		item("c", models.StateReady, 7),
		item("d", models.StateProcessing, 6),
		item("e", models.StateReady, 5),
	}
	updated := []models.Item{
		item("x", models.StateNew, 10),
		item("b", models.StateReady, 8),
		item("y", models.StateNew, 7),
		item("d", models.StateError, 6),
	}

	ops := ComputeDiff(old, updated)

	var kinds []OpKind
	var deleteIdx, insertIdx, reloadIdx []int
	for _, op := range ops {
		kinds = append(kinds, op.Kind)
		switch op.Kind {
		case OpDelete:
			deleteIdx = append(deleteIdx, op.Index)
		case OpInsert:
			insertIdx = append(insertIdx, op.Index)
		case OpReload:
			reloadIdx = append(reloadIdx, op.Index)
		}
	}

	assert.Equal(t, []OpKind{OpDelete, OpDelete, OpDelete, OpInsert, OpInsert, OpReload, OpReload}, kinds)
	assert.Equal(t, []int{4, 2, 0}, deleteIdx, "deletes highest index first")
	assert.Equal(t, []int{0, 2}, insertIdx, "inserts lowest index first")
	assert.Equal(t, []int{1, 3}, reloadIdx, "reloads at old indices")
}

func TestComputeDiff_EverythingRemoved(t *testing.T) {
	old := []models.Item{
		item("a", models.StateReady, 3),
		item("b", models.StateReady, 2),
	}

	ops := ComputeDiff(old, nil)

	require.Len(t, ops, 2)
	assert.Equal(t, Operation{Kind: OpDelete, Index: 1, NewIndex: -1, Item: old[1]}, ops[0])
	assert.Equal(t, Operation{Kind: OpDelete, Index: 0, NewIndex: -1, Item: old[0]}, ops[1])
}

func TestComputeDiff_MovedItemBecomesDeleteAndInsert(t *testing.T) {
	old := []models.Item{
		item("a", models.StateReady, 3),
		item("b", models.StateReady, 2),
		item("c", models.StateReady, 1),
	}
	// c got a newer ordering key and jumped to the top.
	updated := []models.Item{
		item("c", models.StateReady, 4),
		item("a", models.StateReady, 3),
		item("b", models.StateReady, 2),
	}

	ops := ComputeDiff(old, updated)

	require.Len(t, ops, 2)
	assert.Equal(t, OpDelete, ops[0].Kind)
	assert.Equal(t, 2, ops[0].Index)
	assert.Equal(t, OpInsert, ops[1].Kind)
	assert.Equal(t, 0, ops[1].Index)
	assert.Equal(t, "c", ops[1].Item.ID)
}

// ── Apply ────────────────────────────────────────────────────────────────────

func TestApply_ReproducesNewSnapshot(t *testing.T) {
	tests := []struct {
		name string
		old  []models.Item
		new  []models.Item
	}{
		{
			name: "from empty",
			new:  []models.Item{item("a", models.StateNew, 2), item("b", models.StateNew, 1)},
		},
		{
			name: "to empty",
			old:  []models.Item{item("a", models.StateNew, 2), item("b", models.StateNew, 1)},
		},
		{
			name: "mixed",
			old: []models.Item{
				item("a", models.StateReady, 9),
				item("b", models.StateProcessing, 8),
				item("c", models.StateReady, 7),
			},
			new: []models.Item{
				item("z", models.StateNew, 10),
				item("b", models.StateReady, 8),
				item("c", models.StateReady, 7),
				item("q", models.StateNew, 1),
			},
		},
		{
			name: "reversed",
			old: []models.Item{
				item("a", models.StateReady, 3),
				item("b", models.StateReady, 2),
				item("c", models.StateReady, 1),
			},
			new: []models.Item{
				item("c", models.StateError, 3),
				item("b", models.StateReady, 2),
				item("a", models.StateReady, 1),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Apply(tt.old, ComputeDiff(tt.old, tt.new))
			require.NoError(t, err)
			assert.True(t, equalItems(tt.new, got), "want %v, got %v", ids(tt.new), ids(got))
		})
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	old := []models.Item{item("a", models.StateProcessing, 2), item("b", models.StateReady, 1)}
	updated := []models.Item{item("a", models.StateReady, 2)}

	_, err := Apply(old, ComputeDiff(old, updated))
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, ids(old))
	assert.Equal(t, models.StateProcessing, old[0].State)
}

func TestApply_OutOfRange(t *testing.T) {
	list := []models.Item{item("a", models.StateReady, 1)}

	tests := []struct {
		name string
		op   Operation
	}{
		{name: "delete past end", op: Operation{Kind: OpDelete, Index: 1}},
		{name: "insert past end", op: Operation{Kind: OpInsert, Index: 2}},
		{name: "reload past end", op: Operation{Kind: OpReload, Index: 0, NewIndex: 3}},
		{name: "negative delete", op: Operation{Kind: OpDelete, Index: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Apply(list, []Operation{tt.op})
			assert.ErrorIs(t, err, ErrIndexOutOfRange)
		})
	}

	_, err := Apply(list, []Operation{{Kind: OpKind(42)}})
	assert.ErrorIs(t, err, ErrUnknownOperation)
}

func TestApply_RandomSnapshots(t *testing.T) {
	rnd := rand.New(rand.NewPCG(7, 11))
	states := []models.LifecycleState{models.StateNew, models.StateProcessing, models.StateReady, models.StateError}

	randomList := func(pool int) []models.Item {
		var out []models.Item
		for i := range pool {
			if rnd.IntN(3) == 0 {
				continue
			}
			out = append(out, item(fmt.Sprintf("id-%d", i), states[rnd.IntN(len(states))], int64(rnd.IntN(20))))
		}
		rnd.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
		return out
	}

	for round := range 500 {
		old := randomList(12)
		updated := randomList(12)

		ops := ComputeDiff(old, updated)
		got, err := Apply(old, ops)
		require.NoError(t, err, "round %d", round)
		require.True(t, equalItems(updated, got), "round %d: want %v, got %v (ops %v)", round, ids(updated), ids(got), ops)
	}
}
