package models

import (
	"time"

	"github.com/google/uuid"
)

type Poll struct {
	ID        uuid.UUID    `json:"id"`
	Question  string       `json:"question"`
	Closed    bool         `json:"closed"`
	CreatedBy *uuid.UUID   `json:"created_by,omitempty"`
	Options   []PollOption `json:"options"`
	CreatedAt time.Time    `json:"created_at"`
}

type PollOption struct {
	ID       uuid.UUID `json:"id"`
	PollID   uuid.UUID `json:"poll_id"`
	Option   string    `json:"option"`
	Position int       `json:"position"`
	Votes    int       `json:"votes"`
}

// PollVote records one team's vote. A team votes at most once per poll;
// re-voting moves the vote.
type PollVote struct {
	PollID   uuid.UUID `json:"poll_id"`
	TeamID   uuid.UUID `json:"team_id"`
	OptionID uuid.UUID `json:"option_id"`
}
