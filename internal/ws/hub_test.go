package ws

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublish_QueuesEncodedEvent(t *testing.T) {
	h := NewHub(zerolog.Nop())

	h.Publish(EventStoreStatusChanged, "admin@wholesale.test", map[string]any{"id": "s1", "isActive": false})

	require.Len(t, h.broadcast, 1)
	var ev Event
	require.NoError(t, json.Unmarshal(<-h.broadcast, &ev))
	assert.Equal(t, EventStoreStatusChanged, ev.Type)
	assert.Equal(t, "admin@wholesale.test", ev.Actor)
	assert.False(t, ev.SentAt.IsZero())
}

func TestPublish_DropsWhenQueueFull(t *testing.T) {
	h := NewHub(zerolog.Nop())
	for i := 0; i < cap(h.broadcast)+10; i++ {
		h.Publish(EventUserCreated, "", i)
	}
	assert.Len(t, h.broadcast, cap(h.broadcast))
}

func TestRun_StopsCleanly(t *testing.T) {
	h := NewHub(zerolog.Nop())
	done := make(chan struct{})
	go func() {
		h.Run()
		close(done)
	}()

	h.Publish(EventStoreCreated, "", nil)
	h.Stop()
	<-done
	assert.Equal(t, 0, h.Clients())
}

func TestServe_ReturnsAfterStop(t *testing.T) {
	h := NewHub(zerolog.Nop())
	done := make(chan struct{})
	go func() {
		h.Run()
		close(done)
	}()
	h.Stop()
	<-done

	returned := make(chan struct{})
	go func() {
		h.Serve(nil)
		h.remove(nil)
		close(returned)
	}()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("Serve blocked on a stopped hub")
	}
	assert.Equal(t, 0, h.Clients())
}
