package service

import (
	"github.com/MKhiriev/go-statement-list/internal/adapter"
	"github.com/MKhiriev/go-statement-list/internal/logger"
)

// ClientServices groups what the terminal client runs: the list session and
// the job that refreshes it while statements are processing.
type ClientServices struct {
	ListService ListService
	RefreshJob  RefreshJob
}

func NewClientServices(serverAdapter adapter.ServerAdapter, listener Listener, companyID string, logger *logger.Logger) *ClientServices {
	lists := NewListService(serverAdapter, listener, companyID, logger)

	return &ClientServices{
		ListService: lists,
		RefreshJob:  NewRefreshJob(lists, logger),
	}
}
