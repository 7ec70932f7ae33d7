package handlers

import (
	"context"
	"errors"

	"github.com/draftphase/draftphase-api/internal/middleware"
	"github.com/draftphase/draftphase-api/internal/models"
	"github.com/draftphase/draftphase-api/internal/services"
	"github.com/draftphase/draftphase-api/pkg/dto"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

type PollHandler struct {
	pollService PollServiceInterface
}

func NewPollHandler(pollService PollServiceInterface) *PollHandler {
	return &PollHandler{pollService: pollService}
}

func (h *PollHandler) Create(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	var req dto.CreatePollRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	var poll *models.Poll
	var err error
	if req.MapVote {
		poll, err = h.pollService.CreateMapVote(context.Background(), req.Question, &userID)
	} else {
		if req.Question == "" {
			c.BadRequest("question is required")
			return
		}
		poll, err = h.pollService.Create(context.Background(), req.Question, req.Options, &userID)
	}
	if err != nil {
		respondDraftError(c, err)
		return
	}

	_ = c.JSON(201, toPollResponse(poll))
}

func (h *PollHandler) Get(c *drift.Context) {
	pollID, err := uuid.Parse(c.Param("pollId"))
	if err != nil {
		c.BadRequest("invalid poll id")
		return
	}

	poll, err := h.pollService.GetByID(context.Background(), pollID)
	if err != nil {
		if errors.Is(err, services.ErrPollNotFound) {
			c.NotFound("poll not found")
			return
		}
		c.InternalServerError("failed to load poll")
		return
	}
	_ = c.JSON(200, toPollResponse(poll))
}

func (h *PollHandler) List(c *drift.Context) {
	polls, err := h.pollService.List(context.Background())
	if err != nil {
		c.InternalServerError("failed to list polls")
		return
	}

	response := make([]dto.PollResponse, len(polls))
	for i := range polls {
		response[i] = toPollResponse(&polls[i])
	}
	_ = c.JSON(200, response)
}

func (h *PollHandler) Vote(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	pollID, err := uuid.Parse(c.Param("pollId"))
	if err != nil {
		c.BadRequest("invalid poll id")
		return
	}

	var req dto.VoteRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if err := h.pollService.Vote(context.Background(), pollID, req.TeamID, req.OptionID); err != nil {
		if errors.Is(err, services.ErrPollNotFound) {
			c.NotFound("poll not found")
			return
		}
		respondDraftError(c, err)
		return
	}

	_ = c.JSON(200, map[string]string{"message": "vote recorded"})
}

func (h *PollHandler) Close(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	pollID, err := uuid.Parse(c.Param("pollId"))
	if err != nil {
		c.BadRequest("invalid poll id")
		return
	}

	if err := h.pollService.Close(context.Background(), pollID); err != nil {
		if errors.Is(err, services.ErrPollNotFound) {
			c.NotFound("poll not found")
			return
		}
		c.InternalServerError("failed to close poll")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "poll closed"})
}

func toPollResponse(poll *models.Poll) dto.PollResponse {
	response := dto.PollResponse{
		ID:       poll.ID,
		Question: poll.Question,
		Closed:   poll.Closed,
		Options:  make([]dto.PollOptionResponse, len(poll.Options)),
	}
	for i, opt := range poll.Options {
		response.Options[i] = dto.PollOptionResponse{
			ID:       opt.ID,
			Option:   opt.Option,
			Position: opt.Position,
			Votes:    opt.Votes,
		}
	}
	return response
}
