// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package reconcile holds the pure building blocks of the list engine:
// the pagination [Cursor], the page [Merge], the [ComputeDiff] calculator
// with its [Apply] counterpart, and the push status helpers.
//
// Nothing in this package is safe for concurrent mutation of the same slice
// or cursor. Callers own their data and invoke these functions from a single
// goroutine; the functions themselves keep no shared state.
package reconcile
