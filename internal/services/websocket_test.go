package services

import (
	"sync"
	"testing"
	"time"
)

func newTestHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub()
	go hub.Run()
	return hub
}

func registerClient(t *testing.T, hub *Hub, id uint, role string, buffer int) *Client {
	t.Helper()
	client := &Client{
		ID:   id,
		Role: role,
		Send: make(chan []byte, buffer),
		Hub:  hub,
	}
	hub.register <- client

	// Run inserts after receiving from the channel, so wait for the map
	deadline := time.Now().Add(time.Second)
	for {
		hub.mutex.RLock()
		registered := hub.clients[client]
		hub.mutex.RUnlock()
		if registered {
			return client
		}
		if time.Now().After(deadline) {
			t.Fatal("client never registered with the hub")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestBroadcastToUserDelivers(t *testing.T) {
	hub := newTestHub(t)
	client := registerClient(t, hub, 7, "client", 1)

	hub.BroadcastToUser(7, []byte("hello"))

	select {
	case msg := <-client.Send:
		if string(msg) != "hello" {
			t.Errorf("message = %q, want %q", msg, "hello")
		}
	case <-time.After(time.Second):
		t.Fatal("no message delivered")
	}

	if got := hub.GetConnectedClients(); got != 1 {
		t.Errorf("GetConnectedClients() = %v, want %v", got, 1)
	}
}

func TestBroadcastToUserEvictsStalledClient(t *testing.T) {
	hub := newTestHub(t)
	registerClient(t, hub, 7, "client", 0)

	hub.BroadcastToUser(7, []byte("dropped"))

	if got := hub.GetConnectedClients(); got != 0 {
		t.Errorf("GetConnectedClients() = %v, want %v", got, 0)
	}
}

func TestConcurrentBroadcastsToStalledClients(t *testing.T) {
	hub := newTestHub(t)
	registerClient(t, hub, 7, "client", 0)
	registerClient(t, hub, 7, "client", 0)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			hub.BroadcastToUser(7, []byte("reply"))
		}()
	}
	wg.Wait()

	if got := hub.GetConnectedClients(); got != 0 {
		t.Errorf("GetConnectedClients() = %v, want %v", got, 0)
	}
}

func TestBroadcastToRoleFiltersByRole(t *testing.T) {
	hub := newTestHub(t)
	admin := registerClient(t, hub, 1, "admin", 1)
	client := registerClient(t, hub, 2, "client", 1)

	hub.BroadcastToRole("admin", []byte("only admins"))

	select {
	case <-admin.Send:
	case <-time.After(time.Second):
		t.Fatal("admin did not receive the broadcast")
	}

	select {
	case msg := <-client.Send:
		t.Errorf("client received %q, want nothing", msg)
	default:
	}
}
