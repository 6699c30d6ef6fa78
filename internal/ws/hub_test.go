package ws

import (
	"context"
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestPublishEncodesEvent(t *testing.T) {
	hub := NewHub(nil)
	hub.Publish("product", "created", 7)

	var event Event
	if err := json.Unmarshal(<-hub.Broadcast, &event); err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := Event{Type: "resource_changed", Resource: "product", Action: "created", ID: 7}
	if event != want {
		t.Errorf("Expected %+v, got %+v", want, event)
	}
}

func TestPublishNeverBlocks(t *testing.T) {
	hub := NewHub(nil)

	done := make(chan struct{})
	go func() {
		for i := 0; i < cap(hub.Broadcast)+10; i++ {
			hub.Publish("customer", "deleted", int64(i))
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a full queue")
	}
	if len(hub.Broadcast) != cap(hub.Broadcast) {
		t.Errorf("Expected a full queue, got %d of %d", len(hub.Broadcast), cap(hub.Broadcast))
	}
}

func TestRunStopsWithContext(t *testing.T) {
	hub := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())

	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()
	hub.Publish("user", "updated", 1)
	cancel()

	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
