package service

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-statement-list/internal/logger"
	"github.com/MKhiriev/go-statement-list/models"
)

func statusFrame(id, status string) models.StatusMessage {
	return models.StatusMessage{Type: models.StatusUpdateMessageType, StatementID: id, Status: status}
}

func TestStatusHub_PublishReachesCompanySubscribersOnly(t *testing.T) {
	hub := NewStatusHub(logger.Nop())

	acme1, unsub1 := hub.Subscribe("acme")
	defer unsub1()
	acme2, unsub2 := hub.Subscribe("acme")
	defer unsub2()
	other, unsub3 := hub.Subscribe("globex")
	defer unsub3()

	hub.Publish("acme", statusFrame("s1", "Ready"))

	assert.Equal(t, statusFrame("s1", "Ready"), <-acme1)
	assert.Equal(t, statusFrame("s1", "Ready"), <-acme2)
	select {
	case msg := <-other:
		t.Fatalf("unexpected frame for another company: %+v", msg)
	default:
	}
}

func TestStatusHub_UnsubscribeClosesChannel(t *testing.T) {
	hub := NewStatusHub(logger.Nop())

	ch, unsubscribe := hub.Subscribe("acme")
	unsubscribe()
	unsubscribe()

	_, open := <-ch
	assert.False(t, open)

	// no subscribers left, publish is a no-op
	assert.NotPanics(t, func() { hub.Publish("acme", statusFrame("s1", "Ready")) })
	assert.Empty(t, hub.(*statusHub).subscribers)
}

func TestStatusHub_SlowSubscriberDropsFrames(t *testing.T) {
	hub := NewStatusHub(logger.Nop())
	ch, unsubscribe := hub.Subscribe("acme")
	defer unsubscribe()

	for i := 0; i < defaultSubscriberBuffer+5; i++ {
		hub.Publish("acme", statusFrame("s1", "Processing"))
	}

	assert.Len(t, ch, defaultSubscriberBuffer)
}

func TestStatusHub_ConcurrentPublishAndUnsubscribe(t *testing.T) {
	hub := NewStatusHub(logger.Nop())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		ch, unsubscribe := hub.Subscribe("acme")
		wg.Add(2)
		go func() {
			defer wg.Done()
			for range ch {
			}
		}()
		go func() {
			defer wg.Done()
			time.Sleep(time.Millisecond)
			unsubscribe()
		}()
	}

	done := make(chan struct{})
	go func() {
		for i := 0; i < 200; i++ {
			hub.Publish("acme", statusFrame("s1", "Ready"))
		}
		close(done)
	}()

	<-done
	wg.Wait()
	require.Empty(t, hub.(*statusHub).subscribers)
}
