package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-statement-list/internal/adapter"
	"github.com/MKhiriev/go-statement-list/internal/logger"
	"github.com/MKhiriev/go-statement-list/internal/reconcile"
	"github.com/MKhiriev/go-statement-list/models"
)

const commandBufferSize = 64

// listSession is the concrete [ListService].
//
// One owner goroutine (run) executes every command posted to commands and is
// the only code that touches the orchestrators. Page requests, deletes and
// the push stream reader run in their own goroutines and hand their results
// back as commands.
type listSession struct {
	adapter   adapter.ServerAdapter
	listener  Listener
	companyID string
	logger    *logger.Logger

	commands chan func()
	lists    map[models.Variant]*listOrchestrator
	active   atomic.Int64

	mu      sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
	started bool
	stopped bool
	wg      sync.WaitGroup
}

// NewListService creates a session for companyID. Nothing runs until Start.
func NewListService(serverAdapter adapter.ServerAdapter, listener Listener, companyID string, logger *logger.Logger) ListService {
	lists := make(map[models.Variant]*listOrchestrator, len(models.Variants))
	for _, variant := range models.Variants {
		lists[variant] = newListOrchestrator(variant)
	}

	return &listSession{
		adapter:   serverAdapter,
		listener:  listener,
		companyID: companyID,
		logger:    logger.WithCompany(companyID),
		commands:  make(chan func(), commandBufferSize),
		lists:     lists,
	}
}

// Start implements [ListService]. Commands are accepted while the push
// stream is being dialled. A failed push subscription is logged and the
// session keeps working on fetches alone.
func (s *listSession) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return ErrSessionStopped
	}
	if s.started {
		s.mu.Unlock()
		return ErrSessionAlreadyStarted
	}
	s.started = true
	s.ctx, s.cancel = context.WithCancel(ctx)
	sessionCtx := s.ctx
	// one for the owner loop, one for the stream reader
	s.wg.Add(2)
	s.mu.Unlock()

	go s.run(sessionCtx)

	stream, err := s.adapter.SubscribeStatusUpdates(sessionCtx, s.companyID)
	if err != nil {
		s.wg.Done()
		s.logger.Warn().Err(err).
			Str("func", "listSession.Start").
			Msg("status push unavailable, lists refresh on fetch only")
		return nil
	}

	go s.readStatuses(sessionCtx, stream)
	return nil
}

// Stop implements [ListService].
func (s *listSession) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	s.stopped = true
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
}

// Fetch implements [ListService].
func (s *listSession) Fetch(variant models.Variant) error {
	if !variant.Valid() {
		return ErrUnknownVariant
	}

	return s.post(func() {
		s.active.Store(int64(variant))
		s.fetchFirstPage(variant)
	})
}

// FetchNext implements [ListService]. A request the cursor or the state
// machine refuses is logged and dropped.
func (s *listSession) FetchNext() error {
	return s.post(func() {
		variant := s.ActiveVariant()
		list := s.lists[variant]

		ticket, err := list.beginFetchNext()
		if err != nil {
			s.logger.Warn().Err(err).
				Str("func", "listSession.FetchNext").
				Stringer("variant", variant).
				Stringer("state", list.state).
				Msg("next page request ignored")
			return
		}

		s.listener.OnStateChanged(variant, list.state)
		s.launch(ticket)
	})
}

// ClearAll implements [ListService].
func (s *listSession) ClearAll() error {
	return s.post(func() {
		variant := s.ActiveVariant()
		list := s.lists[variant]
		list.clear()

		s.listener.OnStateChanged(variant, list.state)
		s.listener.OnSnapshotReplaced(variant, nil)
		s.listener.OnEmptyState(variant, true)
	})
}

// DeleteAndRefresh implements [ListService]. The delete runs on its own
// goroutine; its result is handled on the owner loop.
func (s *listSession) DeleteAndRefresh(id string) error {
	return s.post(func() {
		variant := s.ActiveVariant()

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			err := s.adapter.DeleteItem(s.ctx, variant, s.companyID, id)
			_ = s.post(func() { s.completeDelete(variant, id, err) })
		}()
	})
}

// ApplyCompletion implements [ListService].
func (s *listSession) ApplyCompletion(companyID, itemID string, success bool) error {
	if companyID != s.companyID {
		s.logger.Debug().
			Str("func", "listSession.ApplyCompletion").
			Str("company_id", companyID).
			Str("item_id", itemID).
			Msg("completion for another company ignored")
		return nil
	}

	update := models.StatusUpdate{ItemID: itemID, State: models.CompletionState(success)}
	return s.post(func() { s.applyStatus(update) })
}

// RefreshIfProcessing implements [ListService].
func (s *listSession) RefreshIfProcessing() error {
	return s.post(func() {
		if !s.lists[models.VariantStatements].contains(models.StateProcessing) {
			return
		}
		s.fetchFirstPage(models.VariantStatements)
	})
}

// Snapshot implements [ListService]. It waits for the owner loop to copy
// the collection.
func (s *listSession) Snapshot(variant models.Variant) ([]models.Item, error) {
	if !variant.Valid() {
		return nil, ErrUnknownVariant
	}

	reply := make(chan []models.Item, 1)
	if err := s.post(func() { reply <- s.lists[variant].snapshot() }); err != nil {
		return nil, err
	}

	select {
	case items := <-reply:
		return items, nil
	case <-s.ctx.Done():
		return nil, ErrSessionStopped
	}
}

// State implements [ListService].
func (s *listSession) State(variant models.Variant) (ListState, error) {
	if !variant.Valid() {
		return ListIdle, ErrUnknownVariant
	}

	reply := make(chan ListState, 1)
	if err := s.post(func() { reply <- s.lists[variant].state }); err != nil {
		return ListIdle, err
	}

	select {
	case state := <-reply:
		return state, nil
	case <-s.ctx.Done():
		return ListIdle, ErrSessionStopped
	}
}

// ActiveVariant implements [ListService]. It does not go through the owner
// loop.
func (s *listSession) ActiveVariant() models.Variant {
	return models.Variant(s.active.Load())
}

// post hands cmd to the owner goroutine.
func (s *listSession) post(cmd func()) error {
	s.mu.Lock()
	ctx, stopped := s.ctx, s.stopped
	s.mu.Unlock()

	if stopped {
		return ErrSessionStopped
	}
	if ctx == nil {
		return ErrSessionNotStarted
	}
	if ctx.Err() != nil {
		return ErrSessionStopped
	}

	select {
	case s.commands <- cmd:
		return nil
	case <-ctx.Done():
		return ErrSessionStopped
	}
}

func (s *listSession) run(ctx context.Context) {
	defer s.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case cmd := <-s.commands:
			cmd()
		}
	}
}

func (s *listSession) readStatuses(ctx context.Context, stream <-chan models.StatusMessage) {
	defer s.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-stream:
			if !ok {
				s.logger.Warn().
					Str("func", "listSession.readStatuses").
					Msg("status stream closed")
				return
			}

			update, valid := reconcile.DecodeStatus(msg)
			if !valid {
				s.logger.Debug().
					Str("func", "listSession.readStatuses").
					Str("type", msg.Type).
					Str("item_id", msg.StatementID).
					Str("status", msg.Status).
					Msg("status frame dropped")
				continue
			}

			if err := s.post(func() { s.applyStatus(update) }); err != nil {
				return
			}
		}
	}
}

// The methods below run on the owner goroutine only.

func (s *listSession) fetchFirstPage(variant models.Variant) {
	list := s.lists[variant]

	ticket, ok := list.beginFetch()
	if !ok {
		s.logger.Debug().
			Str("func", "listSession.fetchFirstPage").
			Stringer("variant", variant).
			Stringer("state", list.state).
			Msg("fetch already in flight, request ignored")
		return
	}

	s.listener.OnStateChanged(variant, list.state)
	s.launch(ticket)
}

func (s *listSession) launch(ticket fetchTicket) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		page, err := s.adapter.FetchPage(s.ctx, ticket.variant, s.companyID, ticket.token)
		_ = s.post(func() { s.completeFetch(ticket, page, err) })
	}()
}

func (s *listSession) completeFetch(ticket fetchTicket, page models.Page, err error) {
	list := s.lists[ticket.variant]

	if !list.isCurrent(ticket) {
		s.logger.Debug().
			Str("func", "listSession.completeFetch").
			Stringer("variant", ticket.variant).
			Uint64("generation", ticket.generation).
			Msg("stale fetch result discarded")
		return
	}

	if err != nil {
		s.logger.Err(err).
			Str("func", "listSession.completeFetch").
			Stringer("variant", ticket.variant).
			Bool("first_page", ticket.firstPage).
			Msg("page fetch failed")

		list.fail()
		s.listener.OnStateChanged(ticket.variant, list.state)
		s.listener.OnError(ticket.variant, fmt.Errorf("%w: %w", ErrFetchFailed, err))
		return
	}

	if ticket.firstPage {
		list.completeFirstPage(page)
		s.listener.OnStateChanged(ticket.variant, list.state)
		s.listener.OnSnapshotReplaced(ticket.variant, list.snapshot())
	} else {
		ops := list.completeNextPage(page)
		s.listener.OnStateChanged(ticket.variant, list.state)
		s.listener.OnDiffReady(ticket.variant, ops, list.snapshot())
	}

	s.listener.OnEmptyState(ticket.variant, len(list.items) == 0)
}

func (s *listSession) completeDelete(variant models.Variant, id string, err error) {
	if err != nil {
		s.logger.Err(err).
			Str("func", "listSession.completeDelete").
			Stringer("variant", variant).
			Str("item_id", id).
			Msg("delete failed")
		s.listener.OnError(variant, fmt.Errorf("%w: %w", ErrDeleteFailed, err))
		return
	}

	list := s.lists[variant]
	ticket := list.restart()
	s.listener.OnStateChanged(variant, list.state)
	s.launch(ticket)
}

func (s *listSession) applyStatus(update models.StatusUpdate) {
	for _, variant := range models.Variants {
		list := s.lists[variant]
		if list.applyStatus(update) {
			s.listener.OnStateOnlyChange(variant, list.snapshot())
		}
	}
}
