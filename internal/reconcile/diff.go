// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package reconcile

import (
	"cmp"
	"fmt"
	"slices"
	"sort"

	"github.com/MKhiriev/go-statement-list/models"
)

// OpKind tags a diff [Operation].
type OpKind int

const (
	OpDelete OpKind = iota
	OpInsert
	OpReload
)

func (k OpKind) String() string {
	switch k {
	case OpDelete:
		return "delete"
	case OpInsert:
		return "insert"
	case OpReload:
		return "reload"
	default:
		return "unknown"
	}
}

// Operation is a single edit of a diff batch.
//
// Index is interpreted per kind: the old position for deletes and reloads,
// the new position for inserts. NewIndex is the position of the item in the
// new snapshot; it is -1 for deletes.
type Operation struct {
	Kind     OpKind
	Index    int
	NewIndex int
	Item     models.Item
}

func (o Operation) String() string {
	switch o.Kind {
	case OpReload:
		return fmt.Sprintf("reload(%d->%d, %s)", o.Index, o.NewIndex, o.Item.ID)
	case OpInsert:
		return fmt.Sprintf("insert(%d, %s)", o.Index, o.Item.ID)
	default:
		return fmt.Sprintf("delete(%d)", o.Index)
	}
}

// ComputeDiff returns the edits that turn old into new.
//
// Items are matched by ID. A matched item whose state changed produces a
// reload; an unchanged one produces nothing. Unmatched old items are deleted
// and unmatched new items are inserted. A matched item whose relative
// position changed (its ordering key moved it past other survivors) is
// emitted as a delete plus an insert, so the batch stays valid when applied
// sequentially.
//
// The batch is ordered: deletes highest index first, then inserts lowest
// index first, then reloads. Both inputs must have unique IDs.
func ComputeDiff(old, new []models.Item) []Operation {
	oldIndex := make(map[string]int, len(old))
	for i, item := range old {
		oldIndex[item.ID] = i
	}

	var (
		deletes []Operation
		inserts []Operation
		reloads []Operation

		matchedOld []int
		matchedNew []int
	)

	for j, item := range new {
		i, ok := oldIndex[item.ID]
		if !ok {
			inserts = append(inserts, Operation{Kind: OpInsert, Index: j, NewIndex: j, Item: item})
			continue
		}
		delete(oldIndex, item.ID)
		matchedOld = append(matchedOld, i)
		matchedNew = append(matchedNew, j)
	}

	for _, i := range oldIndex {
		deletes = append(deletes, Operation{Kind: OpDelete, Index: i, NewIndex: -1, Item: old[i]})
	}

	stable := increasingRun(matchedOld)
	for k := range matchedOld {
		i, j := matchedOld[k], matchedNew[k]
		if !stable[k] {
			deletes = append(deletes, Operation{Kind: OpDelete, Index: i, NewIndex: -1, Item: old[i]})
			inserts = append(inserts, Operation{Kind: OpInsert, Index: j, NewIndex: j, Item: new[j]})
			continue
		}
		if !old[i].Equal(new[j]) {
			reloads = append(reloads, Operation{Kind: OpReload, Index: i, NewIndex: j, Item: new[j]})
		}
	}

	slices.SortFunc(deletes, func(a, b Operation) int { return cmp.Compare(b.Index, a.Index) })
	slices.SortFunc(inserts, func(a, b Operation) int { return cmp.Compare(a.Index, b.Index) })
	slices.SortFunc(reloads, func(a, b Operation) int { return cmp.Compare(a.Index, b.Index) })

	ops := make([]Operation, 0, len(deletes)+len(inserts)+len(reloads))
	ops = append(ops, deletes...)
	ops = append(ops, inserts...)
	ops = append(ops, reloads...)
	return ops
}

// increasingRun marks a longest strictly increasing subsequence of seq.
// Matched items on that subsequence keep their relative order between the two
// snapshots and can stay in place.
func increasingRun(seq []int) []bool {
	keep := make([]bool, len(seq))
	if len(seq) == 0 {
		return keep
	}

	tails := make([]int, 0, len(seq))
	prev := make([]int, len(seq))
	for i, v := range seq {
		pos := sort.Search(len(tails), func(k int) bool { return seq[tails[k]] >= v })
		prev[i] = -1
		if pos > 0 {
			prev[i] = tails[pos-1]
		}
		if pos == len(tails) {
			tails = append(tails, i)
		} else {
			tails[pos] = i
		}
	}

	for i := tails[len(tails)-1]; i >= 0; i = prev[i] {
		keep[i] = true
	}
	return keep
}

// Apply runs a batch produced by [ComputeDiff] against a copy of items and
// returns the result. Operations are applied one by one in batch order:
// deletes and inserts at Index, reloads at NewIndex.
func Apply(items []models.Item, ops []Operation) ([]models.Item, error) {
	out := slices.Clone(items)

	for _, op := range ops {
		switch op.Kind {
		case OpDelete:
			if op.Index < 0 || op.Index >= len(out) {
				return nil, fmt.Errorf("%w: %s on %d items", ErrIndexOutOfRange, op, len(out))
			}
			out = slices.Delete(out, op.Index, op.Index+1)
		case OpInsert:
			if op.Index < 0 || op.Index > len(out) {
				return nil, fmt.Errorf("%w: %s on %d items", ErrIndexOutOfRange, op, len(out))
			}
			out = slices.Insert(out, op.Index, op.Item)
		case OpReload:
			if op.NewIndex < 0 || op.NewIndex >= len(out) {
				return nil, fmt.Errorf("%w: %s on %d items", ErrIndexOutOfRange, op, len(out))
			}
			out[op.NewIndex] = op.Item
		default:
			return nil, fmt.Errorf("%w: %d", ErrUnknownOperation, op.Kind)
		}
	}

	return out, nil
}
