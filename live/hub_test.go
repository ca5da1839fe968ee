package live

import (
	"encoding/json"
	"testing"
	"time"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send:   make(chan []byte, 10),
		UserID: "u1",
	}

	hub.register <- client

	data, _ := json.Marshal(ChangeNotice{Collection: "cart", Revision: 3})
	hub.broadcast <- broadcastMsg{UserID: "u1", Data: data}

	select {
	case got := <-client.Send:
		if string(got) != string(data) {
			t.Fatalf("expected %s, got %s", data, got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for message")
	}

	hub.unregister <- client
}

func TestBroadcastIsScopedToUser(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	mine := &Client{Send: make(chan []byte, 10), UserID: "u1"}
	other := &Client{Send: make(chan []byte, 10), UserID: "u2"}
	hub.register <- mine
	hub.register <- other

	hub.broadcast <- broadcastMsg{UserID: "u1", Data: []byte("hello")}

	select {
	case <-mine.Send:
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for message")
	}

	select {
	case msg := <-other.Send:
		t.Fatalf("other user received %s", msg)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestNotifyChangeDeliversRevision(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{Send: make(chan []byte, 10), UserID: "u1"}
	hub.register <- client

	// NotifyChange drops rather than blocks, so nudge until delivery.
	deadline := time.After(1 * time.Second)
	for {
		hub.NotifyChange("u1", "wishlist", 7)
		select {
		case got := <-client.Send:
			var notice ChangeNotice
			if err := json.Unmarshal(got, &notice); err != nil {
				t.Fatalf("bad notice payload: %v", err)
			}
			if notice.Collection != "wishlist" || notice.Revision != 7 {
				t.Fatalf("unexpected notice %+v", notice)
			}
			return
		case <-deadline:
			t.Fatal("timeout waiting for change notice")
		case <-time.After(10 * time.Millisecond):
		}
	}
}

func TestUnregisterAfterSlowClientEviction(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	// No buffer, no reader: the broadcast default branch evicts this client.
	slow := &Client{Send: make(chan []byte), UserID: "u1"}
	hub.register <- slow
	hub.broadcast <- broadcastMsg{UserID: "u1", Data: []byte("notice")}

	// The read pump unregisters on disconnect regardless of eviction; the
	// hub must not close Send a second time.
	hub.unregister <- slow

	fresh := &Client{Send: make(chan []byte, 10), UserID: "u1"}
	hub.register <- fresh
	hub.broadcast <- broadcastMsg{UserID: "u1", Data: []byte("still alive")}

	select {
	case got := <-fresh.Send:
		if string(got) != "still alive" {
			t.Fatalf("unexpected payload %s", got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("hub stopped delivering after duplicate unregister")
	}
}

func TestUnregisterLastClientDropsUserEntry(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{Send: make(chan []byte, 10), UserID: "u1"}
	hub.register <- client
	hub.unregister <- client

	// A follow-up broadcast rendezvous guarantees the unregister case
	// finished before we inspect the session table.
	hub.broadcast <- broadcastMsg{UserID: "u1", Data: []byte("noop")}

	hub.mu.Lock()
	_, ok := hub.sessions["u1"]
	hub.mu.Unlock()
	if ok {
		t.Fatal("expected empty session set to be removed")
	}
}

func TestNotifyChangeGuestIsNoop(t *testing.T) {
	hub := NewHub()
	// no Run loop: a guest notice must return without blocking
	done := make(chan struct{})
	go func() {
		hub.NotifyChange("", "cart", 1)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(1 * time.Second):
		t.Fatal("guest NotifyChange blocked")
	}
}
