package sse

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHub(t *testing.T) {
	hub := NewHub()

	assert.NotNil(t, hub)
	assert.NotNil(t, hub.clients)
	assert.NotNil(t, hub.register)
	assert.NotNil(t, hub.unregister)
	assert.NotNil(t, hub.broadcast)
}

func newTestClient(id string) *Client {
	return &Client{
		ID:      id,
		UserID:  uuid.New(),
		Matches: make(map[string]bool),
		Send:    make(chan []byte, 256),
	}
}

func TestHub_RegisterClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := newTestClient("client-1")

	hub.Register(client)

	// Wait for registration to process
	time.Sleep(10 * time.Millisecond)

	hub.mu.RLock()
	_, exists := hub.clients[client.ID]
	hub.mu.RUnlock()

	assert.True(t, exists)
}

func TestHub_UnregisterClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := newTestClient("client-1")

	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	hub.Unregister(client)
	time.Sleep(10 * time.Millisecond)

	hub.mu.RLock()
	_, exists := hub.clients[client.ID]
	hub.mu.RUnlock()

	assert.False(t, exists)
}

func TestHub_UnregisterClient_ClosesSendChannel(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := newTestClient("client-1")

	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	hub.Unregister(client)
	time.Sleep(10 * time.Millisecond)

	_, ok := <-client.Send
	assert.False(t, ok)
}

func TestHub_SubscribeToMatch(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := newTestClient("client-1")

	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	hub.SubscribeToMatch(client.ID, "channel-1")

	hub.mu.RLock()
	isSubscribed := client.Matches["channel-1"]
	hub.mu.RUnlock()

	assert.True(t, isSubscribed)
}

func TestHub_UnsubscribeFromMatch(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := newTestClient("client-1")
	client.Matches["channel-1"] = true

	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	hub.UnsubscribeFromMatch(client.ID, "channel-1")

	hub.mu.RLock()
	isSubscribed := client.Matches["channel-1"]
	hub.mu.RUnlock()

	assert.False(t, isSubscribed)
}

func receiveEvent(t *testing.T, client *Client) Event {
	t.Helper()
	select {
	case data := <-client.Send:
		var event Event
		require.NoError(t, json.Unmarshal(data, &event))
		return event
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
		return Event{}
	}
}

func TestHub_BroadcastOfferCreated_ToSubscribedClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := newTestClient("client-1")
	client.Matches["channel-1"] = true
	teamID := uuid.New()

	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	hub.BroadcastOfferCreated("channel-1", 1, teamID, "Carentan", "Day", "111")

	event := receiveEvent(t, client)
	assert.Equal(t, "offer_created", event.Type)
	assert.Equal(t, "channel-1", event.ChannelID)

	payload, ok := event.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), payload["offer_no"])
	assert.Equal(t, "Carentan", payload["map"])
	assert.Equal(t, "Day", payload["environment"])
	assert.Equal(t, "111", payload["layout"])
}

func TestHub_Broadcast_SkipsUnsubscribedClient(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	subscribed := newTestClient("client-1")
	subscribed.Matches["channel-1"] = true
	other := newTestClient("client-2")

	hub.Register(subscribed)
	hub.Register(other)
	time.Sleep(10 * time.Millisecond)

	hub.BroadcastOfferSkipped("channel-1", 2)

	event := receiveEvent(t, subscribed)
	assert.Equal(t, "offer_skipped", event.Type)

	select {
	case data := <-other.Send:
		t.Fatalf("unsubscribed client received event: %s", data)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_Broadcast_DoesNotBlockOnFullBuffer(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := &Client{
		ID:      "client-1",
		UserID:  uuid.New(),
		Matches: map[string]bool{"channel-1": true},
		Send:    make(chan []byte), // nobody reading
	}

	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	// Must return even though the client never drains its channel.
	for i := 0; i < 5; i++ {
		hub.BroadcastDraftUndone("channel-1")
	}
	time.Sleep(10 * time.Millisecond)
}

func TestHub_BroadcastAdvantageChosen(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := newTestClient("client-1")
	client.Matches["channel-1"] = true

	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	hub.BroadcastAdvantageChosen("channel-1", true, false)

	event := receiveEvent(t, client)
	assert.Equal(t, "advantage_chosen", event.Type)

	payload, ok := event.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, payload["taken"])
	assert.Equal(t, false, payload["team2_chosen"])
}

func TestHub_BroadcastMatchDeleted(t *testing.T) {
	hub := NewHub()
	go hub.Run()

	client := newTestClient("client-1")
	client.Matches["channel-1"] = true

	hub.Register(client)
	time.Sleep(10 * time.Millisecond)

	hub.BroadcastMatchDeleted("channel-1")

	event := receiveEvent(t, client)
	assert.Equal(t, "match_deleted", event.Type)
	assert.Nil(t, event.Data)
}
