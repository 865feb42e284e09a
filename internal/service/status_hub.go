package service

import (
	"sync"

	"github.com/MKhiriev/go-statement-list/internal/logger"
	"github.com/MKhiriev/go-statement-list/models"
)

const defaultSubscriberBuffer = 32

type subscriber struct {
	ch   chan models.StatusMessage
	once sync.Once
}

// statusHub is the in-memory StatusHub. Publish never blocks: a subscriber
// whose buffer is full misses the frame.
type statusHub struct {
	mu          sync.RWMutex
	subscribers map[string]map[*subscriber]struct{}
	buffer      int

	logger *logger.Logger
}

func NewStatusHub(logger *logger.Logger) StatusHub {
	return &statusHub{
		subscribers: make(map[string]map[*subscriber]struct{}),
		buffer:      defaultSubscriberBuffer,
		logger:      logger,
	}
}

func (h *statusHub) Subscribe(companyID string) (<-chan models.StatusMessage, func()) {
	sub := &subscriber{ch: make(chan models.StatusMessage, h.buffer)}

	h.mu.Lock()
	if h.subscribers[companyID] == nil {
		h.subscribers[companyID] = make(map[*subscriber]struct{})
	}
	h.subscribers[companyID][sub] = struct{}{}
	h.mu.Unlock()

	unsubscribe := func() {
		sub.once.Do(func() {
			h.mu.Lock()
			delete(h.subscribers[companyID], sub)
			if len(h.subscribers[companyID]) == 0 {
				delete(h.subscribers, companyID)
			}
			close(sub.ch)
			h.mu.Unlock()
		})
	}

	return sub.ch, unsubscribe
}

func (h *statusHub) Publish(companyID string, message models.StatusMessage) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for sub := range h.subscribers[companyID] {
		select {
		case sub.ch <- message:
		default:
			h.logger.Warn().
				Str("func", "statusHub.Publish").
				Str("company_id", companyID).
				Str("id", message.StatementID).
				Msg("subscriber is too slow, status frame dropped")
		}
	}
}
