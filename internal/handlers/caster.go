package handlers

import (
	"context"
	"errors"
	"net/url"

	"github.com/draftphase/draftphase-api/internal/middleware"
	"github.com/draftphase/draftphase-api/internal/services"
	"github.com/draftphase/draftphase-api/pkg/dto"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

type CasterHandler struct {
	casterService CasterServiceInterface
	streamService StreamServiceInterface
	matchService  MatchServiceInterface
	hub           HubInterface
}

func NewCasterHandler(
	casterService CasterServiceInterface,
	streamService StreamServiceInterface,
	matchService MatchServiceInterface,
	hub HubInterface,
) *CasterHandler {
	return &CasterHandler{
		casterService: casterService,
		streamService: streamService,
		matchService:  matchService,
		hub:           hub,
	}
}

func (h *CasterHandler) Register(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	var req dto.RegisterCasterRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.Name == "" {
		c.BadRequest("name is required")
		return
	}
	if u, err := url.Parse(req.ChannelURL); err != nil || u.Scheme == "" || u.Host == "" {
		c.BadRequest("channel_url must be a valid URL")
		return
	}

	caster, err := h.casterService.Register(context.Background(), userID, req.Name, req.ChannelURL)
	if err != nil {
		c.InternalServerError("failed to register caster")
		return
	}

	_ = c.JSON(201, dto.CasterResponse{
		UserID:     caster.UserID,
		Name:       caster.Name,
		ChannelURL: caster.ChannelURL,
	})
}

func (h *CasterHandler) List(c *drift.Context) {
	casters, err := h.casterService.List(context.Background())
	if err != nil {
		c.InternalServerError("failed to list casters")
		return
	}

	response := make([]dto.CasterResponse, len(casters))
	for i, caster := range casters {
		response[i] = dto.CasterResponse{
			UserID:     caster.UserID,
			Name:       caster.Name,
			ChannelURL: caster.ChannelURL,
		}
	}
	_ = c.JSON(200, response)
}

func (h *CasterHandler) Unregister(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	if err := h.casterService.Delete(context.Background(), userID); err != nil {
		if errors.Is(err, services.ErrCasterNotFound) {
			c.NotFound("caster not found")
			return
		}
		c.InternalServerError("failed to unregister caster")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "caster unregistered"})
}

// AddStream announces the authenticated caster's stream on a match.
func (h *CasterHandler) AddStream(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	var req dto.AddStreamRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if len(req.Lang) != 2 {
		c.BadRequest("lang must be a two-letter code")
		return
	}

	ctx := context.Background()

	caster, err := h.streamService.ResolveCaster(ctx, userID)
	if err != nil {
		if errors.Is(err, services.ErrCasterNotFound) {
			c.Forbidden("register as a caster first")
			return
		}
		c.InternalServerError("failed to resolve caster")
		return
	}

	match, err := h.matchService.GetByChannelID(ctx, c.Param("channelId"))
	if err != nil {
		respondDraftError(c, err)
		return
	}

	stream, err := h.streamService.Add(ctx, match.ID, caster.UserID, req.Lang)
	if err != nil {
		c.InternalServerError("failed to add stream")
		return
	}

	h.hub.BroadcastStreamAdded(match.ChannelID, stream.Caster.Name, stream.Lang)

	_ = c.JSON(201, dto.StreamResponse{
		CasterName: stream.Caster.Name,
		ChannelURL: stream.Caster.ChannelURL,
		Lang:       stream.Lang,
		Flag:       stream.Flag(),
	})
}

func (h *CasterHandler) RemoveStream(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	ctx := context.Background()

	match, err := h.matchService.GetByChannelID(ctx, c.Param("channelId"))
	if err != nil {
		respondDraftError(c, err)
		return
	}

	if err := h.streamService.Remove(ctx, match.ID, userID); err != nil {
		if errors.Is(err, services.ErrStreamNotFound) {
			c.NotFound("stream not found")
			return
		}
		c.InternalServerError("failed to remove stream")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "stream removed"})
}
