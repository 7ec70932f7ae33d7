package handlers

import (
	"context"
	"strconv"

	"github.com/draftphase/draftphase-api/internal/middleware"
	"github.com/draftphase/draftphase-api/pkg/dto"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

type PredictionHandler struct {
	predictionService PredictionServiceInterface
	matchService      MatchServiceInterface
	hub               HubInterface
}

func NewPredictionHandler(
	predictionService PredictionServiceInterface,
	matchService MatchServiceInterface,
	hub HubInterface,
) *PredictionHandler {
	return &PredictionHandler{
		predictionService: predictionService,
		matchService:      matchService,
		hub:               hub,
	}
}

func (h *PredictionHandler) Put(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	var req dto.PutPredictionRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	ctx := context.Background()

	match, err := h.matchService.GetByChannelID(ctx, c.Param("channelId"))
	if err != nil {
		respondDraftError(c, err)
		return
	}

	prediction, err := h.predictionService.Put(ctx, match, userID, req.Team1Score)
	if err != nil {
		respondDraftError(c, err)
		return
	}

	h.hub.BroadcastPredictionMade(match.ChannelID, userID, prediction.Team1Score)

	team1, team2 := prediction.Scores()
	_ = c.JSON(200, dto.PredictionResponse{
		UserID:     prediction.UserID,
		Team1Score: team1,
		Team2Score: team2,
	})
}

func (h *PredictionHandler) Distribution(c *drift.Context) {
	ctx := context.Background()

	match, err := h.matchService.GetByChannelID(ctx, c.Param("channelId"))
	if err != nil {
		respondDraftError(c, err)
		return
	}

	counts, err := h.predictionService.Distribution(ctx, match.ID)
	if err != nil {
		c.InternalServerError("failed to load predictions")
		return
	}

	total := 0
	for _, n := range counts {
		total += n
	}
	_ = c.JSON(200, dto.PredictionDistributionResponse{Counts: counts, Total: total})
}

func (h *PredictionHandler) Leaderboard(c *drift.Context) {
	limit := 20
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 100 {
			c.BadRequest("limit must be between 1 and 100")
			return
		}
		limit = n
	}

	entries, err := h.predictionService.Leaderboard(context.Background(), limit)
	if err != nil {
		c.InternalServerError("failed to load leaderboard")
		return
	}

	response := make([]dto.LeaderboardEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = dto.LeaderboardEntryResponse{
			UserID:    entry.UserID,
			Total:     entry.Total,
			Correct:   entry.Correct,
			ExactHits: entry.ExactHits,
			Points:    entry.Correct + entry.ExactHits,
		}
	}
	_ = c.JSON(200, response)
}
