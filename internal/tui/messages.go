package tui

import (
	"github.com/MKhiriev/go-statement-list/internal/reconcile"
	"github.com/MKhiriev/go-statement-list/internal/service"
	"github.com/MKhiriev/go-statement-list/models"
)

// Messages produced by the list session through [Bridge].
type (
	snapshotMsg struct {
		variant models.Variant
		items   []models.Item
	}

	diffMsg struct {
		variant models.Variant
		ops     []reconcile.Operation
		items   []models.Item
	}

	stateOnlyMsg struct {
		variant models.Variant
		items   []models.Item
	}

	listErrorMsg struct {
		variant models.Variant
		err     error
	}

	emptyMsg struct {
		variant models.Variant
		isEmpty bool
	}

	listStateMsg struct {
		variant models.Variant
		state   service.ListState
	}
)

// Messages produced by commands of the model itself.
type (
	// commandErrMsg reports a command the list session refused.
	commandErrMsg struct {
		err error
	}

	copiedMsg struct {
		link string
	}

	copyFailedMsg struct {
		err error
	}

	clearStatusMsg struct{}
)
