package dto

import "github.com/google/uuid"

type PutPredictionRequest struct {
	Team1Score int `json:"team1_score"`
}

type PredictionResponse struct {
	UserID     uuid.UUID `json:"user_id"`
	Team1Score int       `json:"team1_score"`
	Team2Score int       `json:"team2_score"`
}

type PredictionDistributionResponse struct {
	// Counts[i] is the number of users predicting team 1 scores i points.
	Counts [6]int `json:"counts"`
	Total  int    `json:"total"`
}

type LeaderboardEntryResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	Total     int       `json:"total"`
	Correct   int       `json:"correct"`
	ExactHits int       `json:"exact_hits"`
	Points    int       `json:"points"`
}
