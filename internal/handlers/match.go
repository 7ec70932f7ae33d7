package handlers

import (
	"context"

	"github.com/draftphase/draftphase-api/internal/catalog"
	"github.com/draftphase/draftphase-api/internal/middleware"
	"github.com/draftphase/draftphase-api/internal/models"
	"github.com/draftphase/draftphase-api/internal/services"
	"github.com/draftphase/draftphase-api/pkg/dto"
	"github.com/google/uuid"
	"github.com/m1z23r/drift/pkg/drift"
)

type MatchHandler struct {
	matchService MatchServiceInterface
	hub          HubInterface
	maxOffers    int
	streamDelay  int
}

func NewMatchHandler(matchService MatchServiceInterface, hub HubInterface, maxOffers, streamDelay int) *MatchHandler {
	return &MatchHandler{
		matchService: matchService,
		hub:          hub,
		maxOffers:    maxOffers,
		streamDelay:  streamDelay,
	}
}

func (h *MatchHandler) Create(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	var req dto.CreateMatchRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	if req.ChannelID == "" {
		c.BadRequest("channel_id is required")
		return
	}
	if req.Team1ID == req.Team2ID {
		c.BadRequest("a team cannot play itself")
		return
	}

	maxOffers := req.MaxOffers
	if maxOffers <= 0 {
		maxOffers = h.maxOffers
	}
	streamDelay := req.StreamDelay
	if streamDelay <= 0 {
		streamDelay = h.streamDelay
	}

	match, err := h.matchService.Create(context.Background(), services.CreateMatchParams{
		ChannelID:   req.ChannelID,
		Team1ID:     req.Team1ID,
		Team2ID:     req.Team2ID,
		Subtitle:    req.Subtitle,
		StartTime:   req.StartTime,
		MaxOffers:   maxOffers,
		StreamDelay: streamDelay,
	})
	if err != nil {
		respondDraftError(c, err)
		return
	}

	h.hub.BroadcastMatchCreated(match.ChannelID, match.Team1ID, match.Team2ID)

	_ = c.JSON(201, toMatchResponse(match))
}

func (h *MatchHandler) List(c *drift.Context) {
	matches, err := h.matchService.List(context.Background())
	if err != nil {
		c.InternalServerError("failed to list matches")
		return
	}

	response := make([]dto.MatchSummaryResponse, len(matches))
	for i := range matches {
		response[i] = toMatchSummary(&matches[i])
	}
	_ = c.JSON(200, response)
}

func (h *MatchHandler) Get(c *drift.Context) {
	match, err := h.matchService.GetByChannelID(context.Background(), c.Param("channelId"))
	if err != nil {
		respondDraftError(c, err)
		return
	}
	_ = c.JSON(200, toMatchResponse(match))
}

func (h *MatchHandler) Delete(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	channelID := c.Param("channelId")
	if err := h.matchService.Delete(context.Background(), channelID); err != nil {
		respondDraftError(c, err)
		return
	}

	h.hub.BroadcastMatchDeleted(channelID)

	_ = c.JSON(200, map[string]string{"message": "match deleted"})
}

func (h *MatchHandler) SetScore(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	var req dto.SetScoreRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	channelID := c.Param("channelId")
	if err := h.matchService.SetScore(context.Background(), channelID, req.Score); err != nil {
		respondDraftError(c, err)
		return
	}

	_ = c.JSON(200, map[string]string{"message": "score updated"})
}

// Update patches the match subtitle and scheduled start time.
func (h *MatchHandler) Update(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	var req dto.UpdateMatchRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.Subtitle == nil && req.StartTime == nil {
		c.BadRequest("nothing to update")
		return
	}

	channelID := c.Param("channelId")
	if err := h.matchService.UpdateDetails(context.Background(), channelID, req.Subtitle, req.StartTime); err != nil {
		respondDraftError(c, err)
		return
	}

	_ = c.JSON(200, map[string]string{"message": "match updated"})
}

// Command dispatches one draft action against the match. All actions share
// a single endpoint so the client sends typed commands instead of
// per-action routes encoding state in the URL.
func (h *MatchHandler) Command(c *drift.Context) {
	userID := middleware.GetUserID(c)
	if userID == uuid.Nil {
		c.Unauthorized("not authenticated")
		return
	}

	var cmd dto.DraftCommand
	if err := c.BindJSON(&cmd); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if err := cmd.Validate(); err != nil {
		c.BadRequest(err.Error())
		return
	}

	ctx := context.Background()
	channelID := c.Param("channelId")

	var match *models.Match
	var err error

	switch cmd.Type {
	case dto.CommandTakeAdvantage:
		match, err = h.matchService.TakeAdvantage(ctx, channelID)
		if err == nil {
			h.hub.BroadcastAdvantageChosen(channelID, true, *match.AdvantageChoice)
		}

	case dto.CommandGiveAdvantage:
		match, err = h.matchService.GiveAdvantage(ctx, channelID)
		if err == nil {
			h.hub.BroadcastAdvantageChosen(channelID, false, *match.AdvantageChoice)
		}

	case dto.CommandCreateOffer:
		var layout catalog.Layout
		layout, err = catalog.ParseLayout(cmd.Layout)
		if err != nil {
			respondDraftError(c, err)
			return
		}
		match, err = h.matchService.CreateOffer(ctx, channelID, cmd.Map, catalog.Environment(cmd.Environment), layout)
		if err == nil {
			offer := match.Offers[len(match.Offers)-1]
			h.hub.BroadcastOfferCreated(channelID, offer.OfferNo, offer.TeamID, offer.Map, string(offer.Environment), offer.Layout.String())
		}

	case dto.CommandAcceptOffer:
		match, err = h.matchService.AcceptOffer(ctx, channelID, cmd.OfferNo, cmd.FlipSides)
		if err == nil {
			h.hub.BroadcastOfferAccepted(channelID, cmd.OfferNo, cmd.FlipSides)
		}

	case dto.CommandSkipOffer:
		match, err = h.matchService.SkipLatestOffer(ctx, channelID)
		if err == nil {
			h.hub.BroadcastOfferSkipped(channelID, len(match.Offers))
		}

	case dto.CommandUndo:
		var undone bool
		match, undone, err = h.matchService.Undo(ctx, channelID)
		if err == nil && !undone {
			_ = c.JSON(409, map[string]string{"error": "nothing to undo"})
			return
		}
		if err == nil {
			h.hub.BroadcastDraftUndone(channelID)
		}
	}

	if err != nil {
		respondDraftError(c, err)
		return
	}

	_ = c.JSON(200, toMatchResponse(match))
}

func toTeamResponse(id uuid.UUID) dto.TeamResponse {
	team := catalog.TeamOrUnknown(id)
	return dto.TeamResponse{
		ID:     team.ID,
		Name:   team.Name,
		Region: string(team.Region),
		Emoji:  team.Emoji,
	}
}

func toMatchSummary(m *models.Match) dto.MatchSummaryResponse {
	return dto.MatchSummaryResponse{
		ID:        m.ID,
		ChannelID: m.ChannelID,
		Team1:     toTeamResponse(m.Team1ID),
		Team2:     toTeamResponse(m.Team2ID),
		Subtitle:  m.Subtitle,
		StartTime: m.StartTime,
		Score:     m.Score,
	}
}

func toMatchResponse(m *models.Match) dto.MatchResponse {
	response := dto.MatchResponse{
		ID:          m.ID,
		ChannelID:   m.ChannelID,
		Team1:       toTeamResponse(m.Team1ID),
		Team2:       toTeamResponse(m.Team2ID),
		Subtitle:    m.Subtitle,
		StartTime:   m.StartTime,
		Score:       m.Score,
		StreamDelay: m.StreamDelay,
		Draft:       toDraftState(m),
		Offers:      make([]dto.OfferResponse, 0, len(m.Offers)),
		Streams:     make([]dto.StreamResponse, 0, len(m.Streams)),
		CreatedAt:   m.CreatedAt,
	}

	for i := range m.Offers {
		offer := &m.Offers[i]
		resp := dto.OfferResponse{
			OfferNo:     offer.OfferNo,
			TeamID:      offer.TeamID,
			Map:         offer.Map,
			Environment: string(offer.Environment),
			Layout:      offer.Layout.String(),
			Accepted:    offer.Accepted,
			CreatedAt:   offer.CreatedAt,
		}
		if details, err := offer.MapDetails(); err == nil {
			resp.Objectives = details.GetObjectives(offer.Layout)
		}
		response.Offers = append(response.Offers, resp)
	}

	for i := range m.Streams {
		stream := &m.Streams[i]
		response.Streams = append(response.Streams, dto.StreamResponse{
			CasterName: stream.Caster.Name,
			ChannelURL: stream.Caster.ChannelURL,
			Lang:       stream.Lang,
			Flag:       stream.Flag(),
		})
	}

	return response
}

func toDraftState(m *models.Match) dto.DraftStateResponse {
	state := dto.DraftStateResponse{
		ChoosingAdvantage:  m.IsChoosingAdvantage(),
		Done:               m.IsDone(),
		HasMiddleground:    m.HasMiddleground(),
		OfferPending:       m.IsOfferAvailable(),
		SidesFlipped:       m.SidesFlipped,
		OffersUsed:         len(m.Offers),
		MaxOffers:          m.MaxNumOffers,
		CanAcceptPastTeam1: m.CanAcceptPastOffers(models.Team1),
		CanAcceptPastTeam2: m.CanAcceptPastOffers(models.Team2),
	}

	if !state.Done {
		state.TurnTeamID = m.TeamIdxToID(m.Turn(false))
	}

	if !m.IsChoosingAdvantage() {
		first := models.Team2
		if m.GetsFirstOffer(models.Team1) {
			first = models.Team1
		}
		firstID := m.TeamIdxToID(first)
		state.FirstOfferTeamID = &firstID
	}

	if accepted := m.AcceptedOffer(); accepted != nil {
		state.AcceptedOfferNo = &accepted.OfferNo
		if f1, err := m.TeamFaction(models.Team1); err == nil {
			s1 := string(f1)
			state.Team1Faction = &s1
		}
		if f2, err := m.TeamFaction(models.Team2); err == nil {
			s2 := string(f2)
			state.Team2Faction = &s2
		}
	}

	return state
}
