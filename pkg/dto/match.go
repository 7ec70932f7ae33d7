package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateMatchRequest struct {
	ChannelID   string     `json:"channel_id"`
	Team1ID     uuid.UUID  `json:"team1_id"`
	Team2ID     uuid.UUID  `json:"team2_id"`
	Subtitle    *string    `json:"subtitle,omitempty"`
	StartTime   *time.Time `json:"start_time,omitempty"`
	MaxOffers   int        `json:"max_offers,omitempty"`
	StreamDelay int        `json:"stream_delay,omitempty"`
}

type SetScoreRequest struct {
	Score *string `json:"score"`
}

type UpdateMatchRequest struct {
	Subtitle  *string    `json:"subtitle,omitempty"`
	StartTime *time.Time `json:"start_time,omitempty"`
}

type TeamResponse struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Region string    `json:"region"`
	Emoji  string    `json:"emoji"`
}

type OfferResponse struct {
	OfferNo     int       `json:"offer_no"`
	TeamID      uuid.UUID `json:"team_id"`
	Map         string    `json:"map"`
	Environment string    `json:"environment"`
	Layout      string    `json:"layout"`
	Objectives  [3]string `json:"objectives"`
	Accepted    *bool     `json:"accepted"`
	CreatedAt   time.Time `json:"created_at"`
}

type StreamResponse struct {
	CasterName string `json:"caster_name"`
	ChannelURL string `json:"channel_url"`
	Lang       string `json:"lang"`
	Flag       string `json:"flag"`
}

// DraftStateResponse is the derived view of the state machine: whose move
// it is and which actions are currently legal.
type DraftStateResponse struct {
	ChoosingAdvantage  bool       `json:"choosing_advantage"`
	Done               bool       `json:"done"`
	TurnTeamID         uuid.UUID  `json:"turn_team_id"`
	HasMiddleground    bool       `json:"has_middleground"`
	OfferPending       bool       `json:"offer_pending"`
	AcceptedOfferNo    *int       `json:"accepted_offer_no,omitempty"`
	SidesFlipped       *bool      `json:"sides_flipped,omitempty"`
	Team1Faction       *string    `json:"team1_faction,omitempty"`
	Team2Faction       *string    `json:"team2_faction,omitempty"`
	FirstOfferTeamID   *uuid.UUID `json:"first_offer_team_id,omitempty"`
	OffersUsed         int        `json:"offers_used"`
	MaxOffers          int        `json:"max_offers"`
	CanAcceptPastTeam1 bool       `json:"can_accept_past_team1"`
	CanAcceptPastTeam2 bool       `json:"can_accept_past_team2"`
}

type MatchResponse struct {
	ID          uuid.UUID          `json:"id"`
	ChannelID   string             `json:"channel_id"`
	Team1       TeamResponse       `json:"team1"`
	Team2       TeamResponse       `json:"team2"`
	Subtitle    *string            `json:"subtitle,omitempty"`
	StartTime   *time.Time         `json:"start_time,omitempty"`
	Score       *string            `json:"score,omitempty"`
	StreamDelay int                `json:"stream_delay"`
	Draft       DraftStateResponse `json:"draft"`
	Offers      []OfferResponse    `json:"offers"`
	Streams     []StreamResponse   `json:"streams"`
	CreatedAt   time.Time          `json:"created_at"`
}

type MatchSummaryResponse struct {
	ID        uuid.UUID  `json:"id"`
	ChannelID string     `json:"channel_id"`
	Team1     TeamResponse `json:"team1"`
	Team2     TeamResponse `json:"team2"`
	Subtitle  *string    `json:"subtitle,omitempty"`
	StartTime *time.Time `json:"start_time,omitempty"`
	Score     *string    `json:"score,omitempty"`
}
