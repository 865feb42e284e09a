package tui

import (
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-statement-list/internal/reconcile"
	"github.com/MKhiriev/go-statement-list/internal/service"
	"github.com/MKhiriev/go-statement-list/models"
)

// Bridge is the [service.Listener] of the terminal client. It turns list
// events into bubbletea messages. Events that arrive while no program is
// attached are dropped.
type Bridge struct {
	mu   sync.RWMutex
	send func(tea.Msg)
}

func NewBridge() *Bridge {
	return &Bridge{}
}

// Attach routes further events to send, usually (*tea.Program).Send. A nil
// send detaches the bridge.
func (b *Bridge) Attach(send func(tea.Msg)) {
	b.mu.Lock()
	b.send = send
	b.mu.Unlock()
}

func (b *Bridge) emit(msg tea.Msg) {
	b.mu.RLock()
	send := b.send
	b.mu.RUnlock()

	if send != nil {
		send(msg)
	}
}

func (b *Bridge) OnSnapshotReplaced(variant models.Variant, items []models.Item) {
	b.emit(snapshotMsg{variant: variant, items: items})
}

func (b *Bridge) OnDiffReady(variant models.Variant, ops []reconcile.Operation, items []models.Item) {
	b.emit(diffMsg{variant: variant, ops: ops, items: items})
}

func (b *Bridge) OnStateOnlyChange(variant models.Variant, items []models.Item) {
	b.emit(stateOnlyMsg{variant: variant, items: items})
}

func (b *Bridge) OnError(variant models.Variant, err error) {
	b.emit(listErrorMsg{variant: variant, err: err})
}

func (b *Bridge) OnEmptyState(variant models.Variant, isEmpty bool) {
	b.emit(emptyMsg{variant: variant, isEmpty: isEmpty})
}

func (b *Bridge) OnStateChanged(variant models.Variant, state service.ListState) {
	b.emit(listStateMsg{variant: variant, state: state})
}

var _ service.Listener = (*Bridge)(nil)
