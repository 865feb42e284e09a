package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-statement-list/internal/reconcile"
	"github.com/MKhiriev/go-statement-list/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/servicemock/client_services_mock.go -package=servicemock

// ListService keeps the statement and certificate lists of one company in
// sync with the server. All mutable state is owned by a single goroutine;
// every method only posts a command to it and is safe for concurrent use.
//
// Results are delivered asynchronously through the [Listener] passed to
// the constructor.
type ListService interface {
	// Start launches the owner goroutine and subscribes to status pushes.
	// The session lives until Stop is called or ctx is cancelled.
	Start(ctx context.Context) error

	// Stop shuts the session down and waits for its goroutines. Later calls
	// return ErrSessionStopped.
	Stop()

	// Fetch makes variant the active list and reloads its first page. It
	// is ignored while another fetch of the same variant is in flight.
	Fetch(variant models.Variant) error

	// FetchNext loads the next page of the active list and merges it in.
	FetchNext() error

	// ClearAll empties the active list and resets its cursor. A fetch still
	// in flight for that list is discarded when it completes.
	ClearAll() error

	// DeleteAndRefresh deletes id from the active list on the server and
	// reloads the first page on success.
	DeleteAndRefresh(id string) error

	// ApplyCompletion feeds a completion notification into the push path.
	// Notifications for another company are ignored.
	ApplyCompletion(companyID, itemID string, success bool) error

	// RefreshIfProcessing reloads the statements list when any statement
	// is still being processed.
	RefreshIfProcessing() error

	// Snapshot returns a copy of the collection of variant.
	Snapshot(variant models.Variant) ([]models.Item, error)

	// State returns the fetch state of variant.
	State(variant models.Variant) (ListState, error)

	// ActiveVariant returns the list that FetchNext, ClearAll and
	// DeleteAndRefresh operate on.
	ActiveVariant() models.Variant
}

// Listener receives list events. Methods are called on the session owner
// goroutine one at a time and must not block for long. Every items slice is
// a copy owned by the listener.
type Listener interface {
	// OnSnapshotReplaced reports that the whole collection was replaced.
	OnSnapshotReplaced(variant models.Variant, items []models.Item)

	// OnDiffReady reports a next page merge. Applying ops to the previous
	// snapshot with [reconcile.Apply] yields items.
	OnDiffReady(variant models.Variant, ops []reconcile.Operation, items []models.Item)

	// OnStateOnlyChange reports that pushes changed the state of items
	// without touching membership or order.
	OnStateOnlyChange(variant models.Variant, items []models.Item)

	// OnError reports a failed fetch or delete.
	OnError(variant models.Variant, err error)

	// OnEmptyState reports whether the collection is empty after a fetch
	// or a clear.
	OnEmptyState(variant models.Variant, isEmpty bool)

	// OnStateChanged reports a fetch state transition.
	OnStateChanged(variant models.Variant, state ListState)
}

// RefreshJob periodically asks a [ListService] to reload lists that still
// contain documents in processing.
type RefreshJob interface {
	// Start launches the background goroutine. Any running job is stopped
	// first. A non-positive interval defaults to one minute.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the goroutine to exit and waits for it.
	Stop()
}
