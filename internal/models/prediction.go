package models

import (
	"time"

	"github.com/google/uuid"
)

// Prediction is one user's guess at team 1's score. Matches are best of
// five points, so team 2's score is the complement.
type Prediction struct {
	ID         uuid.UUID `json:"id"`
	MatchID    uuid.UUID `json:"match_id"`
	UserID     uuid.UUID `json:"user_id"`
	Team1Score int       `json:"team1_score"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (p *Prediction) Scores() (int, int) {
	team1 := min(max(p.Team1Score, 0), 5)
	return team1, 5 - team1
}

func (p *Prediction) WinnerIdx() TeamIdx {
	if p.Team1Score >= 3 {
		return Team1
	}
	return Team2
}

// LeaderboardEntry aggregates a user's prediction record over scored
// matches.
type LeaderboardEntry struct {
	UserID    uuid.UUID `json:"user_id"`
	Total     int       `json:"total"`
	Correct   int       `json:"correct"`
	ExactHits int       `json:"exact_hits"`
}
