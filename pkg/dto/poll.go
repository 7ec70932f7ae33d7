package dto

import "github.com/google/uuid"

type CreatePollRequest struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	// MapVote builds the option list from the map catalog; Options is ignored.
	MapVote bool `json:"map_vote,omitempty"`
}

type VoteRequest struct {
	TeamID   uuid.UUID `json:"team_id"`
	OptionID uuid.UUID `json:"option_id"`
}

type PollOptionResponse struct {
	ID       uuid.UUID `json:"id"`
	Option   string    `json:"option"`
	Position int       `json:"position"`
	Votes    int       `json:"votes"`
}

type PollResponse struct {
	ID       uuid.UUID            `json:"id"`
	Question string               `json:"question"`
	Closed   bool                 `json:"closed"`
	Options  []PollOptionResponse `json:"options"`
}
