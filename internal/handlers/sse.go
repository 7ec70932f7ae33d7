package handlers

import (
	"context"

	"github.com/draftphase/draftphase-api/internal/middleware"
	"github.com/draftphase/draftphase-api/internal/sse"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

type SSEHandler struct {
	hub          HubInterface
	matchService MatchServiceInterface
}

func NewSSEHandler(hub HubInterface, matchService MatchServiceInterface) *SSEHandler {
	return &SSEHandler{
		hub:          hub,
		matchService: matchService,
	}
}

// Connect opens the event stream and subscribes the client to the match's
// channel.
func (h *SSEHandler) Connect(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	channelID := c.Param("channelId")
	if _, err := h.matchService.GetByChannelID(context.Background(), channelID); err != nil {
		c.NotFound("match not found")
		return
	}

	sseCtx := c.SSE()

	clientID := uuid.New().String()
	client := &sse.Client{
		ID:      clientID,
		UserID:  userID,
		Matches: map[string]bool{channelID: true},
		Send:    make(chan []byte, 256),
	}

	h.hub.Register(client)
	defer h.hub.Unregister(client)

	if err := sseCtx.SendJSON(map[string]string{
		"type":      "connected",
		"client_id": clientID,
	}, "system", ""); err != nil {
		return
	}

	done := make(chan struct{})
	go func() {
		<-c.Request.Context().Done()
		close(done)
	}()

	for {
		select {
		case msg, ok := <-client.Send:
			if !ok {
				return
			}
			if err := sseCtx.Send(string(msg), "message", ""); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

// Subscribe adds another match's events to an existing connection.
func (h *SSEHandler) Subscribe(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	clientID := c.Param("clientId")
	if clientID == "" {
		c.BadRequest("client_id is required")
		return
	}

	channelID := c.Param("channelId")
	if _, err := h.matchService.GetByChannelID(context.Background(), channelID); err != nil {
		c.NotFound("match not found")
		return
	}

	h.hub.SubscribeToMatch(clientID, channelID)

	_ = c.JSON(200, map[string]string{
		"message": "subscribed to match " + channelID,
	})
}

func (h *SSEHandler) Unsubscribe(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	clientID := c.Param("clientId")
	if clientID == "" {
		c.BadRequest("client_id is required")
		return
	}

	channelID := c.Param("channelId")
	h.hub.UnsubscribeFromMatch(clientID, channelID)

	_ = c.JSON(200, map[string]string{
		"message": "unsubscribed from match " + channelID,
	})
}
