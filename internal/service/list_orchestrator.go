package service

import (
	"fmt"
	"slices"

	"github.com/MKhiriev/go-statement-list/internal/reconcile"
	"github.com/MKhiriev/go-statement-list/models"
)

// ListState is the fetch state of one list variant.
type ListState int

const (
	ListIdle ListState = iota
	ListFetchingFirstPage
	ListFetchingNextPage
	ListError
)

func (s ListState) String() string {
	switch s {
	case ListIdle:
		return "idle"
	case ListFetchingFirstPage:
		return "fetching_first_page"
	case ListFetchingNextPage:
		return "fetching_next_page"
	case ListError:
		return "error"
	default:
		return "unknown"
	}
}

// IsFetching reports whether a page request is in flight.
func (s ListState) IsFetching() bool {
	return s == ListFetchingFirstPage || s == ListFetchingNextPage
}

// fetchTicket identifies one issued page request. A completion is applied
// only while its generation is still the current one.
type fetchTicket struct {
	variant    models.Variant
	generation uint64
	firstPage  bool
	token      string
}

// listOrchestrator is the state machine of a single variant. It is not safe
// for concurrent use; listSession drives it from the owner goroutine.
type listOrchestrator struct {
	variant models.Variant
	state   ListState

	items   []models.Item
	cursor  reconcile.Cursor
	pending reconcile.PendingStatuses

	generation uint64
}

func newListOrchestrator(variant models.Variant) *listOrchestrator {
	return &listOrchestrator{variant: variant, state: ListIdle}
}

// beginFetch moves to FetchingFirstPage. It returns false when a request of
// this variant is already in flight.
func (o *listOrchestrator) beginFetch() (fetchTicket, bool) {
	if o.state.IsFetching() {
		return fetchTicket{}, false
	}

	o.generation++
	o.state = ListFetchingFirstPage
	return fetchTicket{variant: o.variant, generation: o.generation, firstPage: true}, true
}

// beginFetchNext moves to FetchingNextPage when the list is settled and the
// cursor has a page left.
func (o *listOrchestrator) beginFetchNext() (fetchTicket, error) {
	if o.state.IsFetching() {
		return fetchTicket{}, fmt.Errorf("%w: %s in progress", ErrInvalidCursorState, o.state)
	}
	if !o.cursor.CanFetchNext() {
		return fetchTicket{}, fmt.Errorf("%w: no next page (set=%t, terminal=%t)",
			ErrInvalidCursorState, o.cursor.IsSet(), o.cursor.IsTerminal())
	}

	o.generation++
	o.state = ListFetchingNextPage
	return fetchTicket{
		variant:    o.variant,
		generation: o.generation,
		token:      o.cursor.Token(),
	}, nil
}

// restart drops whatever is in flight and issues a first page request.
func (o *listOrchestrator) restart() fetchTicket {
	o.invalidate()
	ticket, _ := o.beginFetch()
	return ticket
}

func (o *listOrchestrator) invalidate() {
	o.generation++
	o.state = ListIdle
	o.pending.Reset()
}

// isCurrent reports whether a completion for t may still be applied.
func (o *listOrchestrator) isCurrent(t fetchTicket) bool {
	return t.generation == o.generation && o.state.IsFetching()
}

// completeFirstPage replaces the collection with page. Pushes recorded while
// the request was in flight are laid over the fresh items.
func (o *listOrchestrator) completeFirstPage(page models.Page) {
	items := reconcile.Merge(nil, page.Items)
	o.pending.Reapply(items)
	o.pending.Reset()

	o.items = items
	o.cursor.Advance(page.NextToken)
	o.state = ListIdle
}

// completeNextPage merges page into the collection and returns the edits
// between the previous and the merged snapshot.
func (o *listOrchestrator) completeNextPage(page models.Page) []reconcile.Operation {
	merged := reconcile.Merge(o.items, page.Items)
	o.pending.Reapply(merged)
	o.pending.Reset()

	ops := reconcile.ComputeDiff(o.items, merged)
	o.items = merged
	o.cursor.Advance(page.NextToken)
	o.state = ListIdle
	return ops
}

// fail moves to Error. The collection and the cursor are kept.
func (o *listOrchestrator) fail() {
	o.state = ListError
	o.pending.Reset()
}

func (o *listOrchestrator) clear() {
	o.invalidate()
	o.items = nil
	o.cursor.Reset()
}

// applyStatus writes a pushed state into the collection. While a request is
// in flight the update is also recorded so the incoming page cannot revert
// it.
func (o *listOrchestrator) applyStatus(update models.StatusUpdate) bool {
	if o.state.IsFetching() {
		o.pending.Record(update)
	}
	return reconcile.ApplyStatus(o.items, update)
}

func (o *listOrchestrator) contains(state models.LifecycleState) bool {
	return slices.ContainsFunc(o.items, func(item models.Item) bool {
		return item.State == state
	})
}

func (o *listOrchestrator) snapshot() []models.Item {
	return slices.Clone(o.items)
}
