package sse

import (
	"encoding/json"
	"sync"

	"github.com/google/uuid"
)

type Event struct {
	Type      string `json:"type"`
	ChannelID string `json:"channel_id,omitempty"`
	Data      any    `json:"data,omitempty"`
}

type MatchCreatedData struct {
	ChannelID string    `json:"channel_id"`
	Team1ID   uuid.UUID `json:"team1_id"`
	Team2ID   uuid.UUID `json:"team2_id"`
}

type AdvantageChosenData struct {
	Taken       bool `json:"taken"`
	Team2Chosen bool `json:"team2_chosen"`
}

type OfferCreatedData struct {
	OfferNo     int       `json:"offer_no"`
	TeamID      uuid.UUID `json:"team_id"`
	Map         string    `json:"map"`
	Environment string    `json:"environment"`
	Layout      string    `json:"layout"`
}

type OfferAcceptedData struct {
	OfferNo      int  `json:"offer_no"`
	SidesFlipped bool `json:"sides_flipped"`
}

type OfferSkippedData struct {
	OfferNo int `json:"offer_no"`
}

type StreamAddedData struct {
	CasterName string `json:"caster_name"`
	Lang       string `json:"lang"`
}

type PredictionMadeData struct {
	UserID     uuid.UUID `json:"user_id"`
	Team1Score int       `json:"team1_score"`
}

// Client is one open SSE connection. Matches holds the channels it wants
// events for, keyed by match channel id.
type Client struct {
	ID      string
	UserID  uuid.UUID
	Matches map[string]bool
	Send    chan []byte
}

// Hub fans match events out to SSE clients subscribed to the match's
// channel. Clients with a full send buffer are skipped, never blocked on.
type Hub struct {
	clients    map[string]*Client
	register   chan *Client
	unregister chan *Client
	broadcast  chan *MatchMessage
	mu         sync.RWMutex
}

type MatchMessage struct {
	ChannelID string
	Event     Event
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan *MatchMessage, 256),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.ID] = client
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client.ID]; ok {
				delete(h.clients, client.ID)
				close(client.Send)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg.Event)
			for _, client := range h.clients {
				if client.Matches[msg.ChannelID] {
					select {
					case client.Send <- data:
					default:
					}
				}
			}
			h.mu.RUnlock()
		}
	}
}

func (h *Hub) Register(client *Client) {
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

func (h *Hub) SubscribeToMatch(clientID, channelID string) {
	h.mu.Lock()
	if client, ok := h.clients[clientID]; ok {
		client.Matches[channelID] = true
	}
	h.mu.Unlock()
}

func (h *Hub) UnsubscribeFromMatch(clientID, channelID string) {
	h.mu.Lock()
	if client, ok := h.clients[clientID]; ok {
		delete(client.Matches, channelID)
	}
	h.mu.Unlock()
}

func (h *Hub) BroadcastMatchCreated(channelID string, team1ID, team2ID uuid.UUID) {
	h.send(channelID, "match_created", MatchCreatedData{
		ChannelID: channelID,
		Team1ID:   team1ID,
		Team2ID:   team2ID,
	})
}

func (h *Hub) BroadcastAdvantageChosen(channelID string, taken, team2Chosen bool) {
	h.send(channelID, "advantage_chosen", AdvantageChosenData{
		Taken:       taken,
		Team2Chosen: team2Chosen,
	})
}

func (h *Hub) BroadcastOfferCreated(channelID string, offerNo int, teamID uuid.UUID, mapID, environment, layout string) {
	h.send(channelID, "offer_created", OfferCreatedData{
		OfferNo:     offerNo,
		TeamID:      teamID,
		Map:         mapID,
		Environment: environment,
		Layout:      layout,
	})
}

func (h *Hub) BroadcastOfferAccepted(channelID string, offerNo int, sidesFlipped bool) {
	h.send(channelID, "offer_accepted", OfferAcceptedData{
		OfferNo:      offerNo,
		SidesFlipped: sidesFlipped,
	})
}

func (h *Hub) BroadcastOfferSkipped(channelID string, offerNo int) {
	h.send(channelID, "offer_skipped", OfferSkippedData{OfferNo: offerNo})
}

func (h *Hub) BroadcastDraftUndone(channelID string) {
	h.send(channelID, "draft_undone", nil)
}

func (h *Hub) BroadcastStreamAdded(channelID, casterName, lang string) {
	h.send(channelID, "stream_added", StreamAddedData{CasterName: casterName, Lang: lang})
}

func (h *Hub) BroadcastPredictionMade(channelID string, userID uuid.UUID, team1Score int) {
	h.send(channelID, "prediction_made", PredictionMadeData{UserID: userID, Team1Score: team1Score})
}

func (h *Hub) BroadcastMatchDeleted(channelID string) {
	h.send(channelID, "match_deleted", nil)
}

func (h *Hub) send(channelID, eventType string, data any) {
	h.broadcast <- &MatchMessage{
		ChannelID: channelID,
		Event: Event{
			Type:      eventType,
			ChannelID: channelID,
			Data:      data,
		},
	}
}
