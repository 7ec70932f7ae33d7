package handlers

import (
	"context"

	"github.com/draftphase/draftphase-api/internal/catalog"
	"github.com/draftphase/draftphase-api/internal/middleware"
	"github.com/draftphase/draftphase-api/internal/services"
	"github.com/draftphase/draftphase-api/pkg/dto"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

// SessionHandler backs the step-by-step offer builder. Picks accumulate in
// a per-user in-memory session until Submit turns them into an offer.
type SessionHandler struct {
	sessions     *services.SessionStore
	matchService MatchServiceInterface
	hub          HubInterface
}

func NewSessionHandler(sessions *services.SessionStore, matchService MatchServiceInterface, hub HubInterface) *SessionHandler {
	return &SessionHandler{
		sessions:     sessions,
		matchService: matchService,
		hub:          hub,
	}
}

func (h *SessionHandler) Get(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	session := h.sessions.Get(c.Param("channelId"), userID)
	_ = c.JSON(200, toSessionResponse(session))
}

func (h *SessionHandler) Update(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	var req dto.UpdateSessionRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	session := h.sessions.Get(c.Param("channelId"), userID)

	if req.Map != "" {
		details, err := catalog.GetMap(req.Map)
		if err != nil {
			respondDraftError(c, err)
			return
		}
		if session.Map != req.Map {
			// New map invalidates the downstream picks.
			session.Environment = ""
			session.Layout = nil
		}
		session.Map = details.ID
	}

	if req.Environment != "" {
		if session.Map == "" {
			c.BadRequest("pick a map before an environment")
			return
		}
		details, err := catalog.GetMap(session.Map)
		if err != nil {
			respondDraftError(c, err)
			return
		}
		env := catalog.Environment(req.Environment)
		if !details.AllowsEnvironment(env) {
			respondDraftError(c, &catalog.LookupError{Kind: "environment", Key: req.Environment})
			return
		}
		session.Environment = env
	}

	if req.Layout != "" {
		layout, err := catalog.ParseLayout(req.Layout)
		if err != nil {
			respondDraftError(c, err)
			return
		}
		session.Layout = &layout
	}

	h.sessions.Put(session)
	_ = c.JSON(200, toSessionResponse(session))
}

// Submit turns a complete session into an offer and clears the session.
func (h *SessionHandler) Submit(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	channelID := c.Param("channelId")
	session := h.sessions.Get(channelID, userID)
	if session.Map == "" || session.Environment == "" || session.Layout == nil {
		c.BadRequest("session is incomplete: pick map, environment and layout first")
		return
	}

	match, err := h.matchService.CreateOffer(context.Background(), channelID, session.Map, session.Environment, *session.Layout)
	if err != nil {
		respondDraftError(c, err)
		return
	}

	h.sessions.Clear(channelID, userID)

	offer := match.Offers[len(match.Offers)-1]
	h.hub.BroadcastOfferCreated(channelID, offer.OfferNo, offer.TeamID, offer.Map, string(offer.Environment), offer.Layout.String())

	_ = c.JSON(201, toMatchResponse(match))
}

func (h *SessionHandler) Clear(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	h.sessions.Clear(c.Param("channelId"), userID)
	_ = c.JSON(200, map[string]string{"message": "session cleared"})
}

func toSessionResponse(session *services.DraftSession) dto.SessionResponse {
	response := dto.SessionResponse{
		ChannelID:   session.MatchChannelID,
		Map:         session.Map,
		Environment: string(session.Environment),
		Complete:    session.Map != "" && session.Environment != "" && session.Layout != nil,
	}
	if session.Layout != nil {
		response.Layout = session.Layout.String()
		if details, err := catalog.GetMap(session.Map); err == nil {
			objectives := details.GetObjectives(*session.Layout)
			response.Objectives = objectives[:]
		}
	}
	return response
}
