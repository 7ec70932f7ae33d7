package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/draftphase/draftphase-api/internal/database"
	"github.com/draftphase/draftphase-api/internal/models"
	"github.com/google/uuid"
)

type PredictionService struct {
	db *database.DB
}

func NewPredictionService(db *database.DB) *PredictionService {
	return &PredictionService{db: db}
}

// Put stores a user's score prediction for a match. Predictions close once
// the match has started; re-predicting before that replaces the old guess.
func (s *PredictionService) Put(ctx context.Context, match *models.Match, userID uuid.UUID, team1Score int) (*models.Prediction, error) {
	if match.HasStarted() {
		return nil, &models.GameStateError{Reason: "predictions are closed, the match has already started"}
	}
	if team1Score < 0 || team1Score > 5 {
		return nil, &models.GameStateError{Reason: "score must be between 0 and 5"}
	}

	var prediction models.Prediction
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO predictions (match_id, user_id, team1_score)
		VALUES ($1, $2, $3)
		ON CONFLICT (match_id, user_id) DO UPDATE SET team1_score = EXCLUDED.team1_score, updated_at = NOW()
		RETURNING id, match_id, user_id, team1_score, created_at, updated_at
	`, match.ID, userID, team1Score).Scan(
		&prediction.ID, &prediction.MatchID, &prediction.UserID,
		&prediction.Team1Score, &prediction.CreatedAt, &prediction.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to store prediction: %w", err)
	}
	return &prediction, nil
}

func (s *PredictionService) GetByMatch(ctx context.Context, matchID uuid.UUID) ([]models.Prediction, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, match_id, user_id, team1_score, created_at, updated_at
		FROM predictions WHERE match_id = $1
		ORDER BY created_at
	`, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var predictions []models.Prediction
	for rows.Next() {
		var p models.Prediction
		if err := rows.Scan(&p.ID, &p.MatchID, &p.UserID, &p.Team1Score, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		predictions = append(predictions, p)
	}
	return predictions, rows.Err()
}

// Distribution counts predictions per team 1 score, index 0 through 5.
func (s *PredictionService) Distribution(ctx context.Context, matchID uuid.UUID) ([6]int, error) {
	var dist [6]int
	rows, err := s.db.Pool.Query(ctx, `
		SELECT team1_score, COUNT(*) FROM predictions
		WHERE match_id = $1 GROUP BY team1_score
	`, matchID)
	if err != nil {
		return dist, err
	}
	defer rows.Close()

	for rows.Next() {
		var score, count int
		if err := rows.Scan(&score, &count); err != nil {
			return dist, err
		}
		if score >= 0 && score <= 5 {
			dist[score] = count
		}
	}
	return dist, rows.Err()
}

// Leaderboard scores every prediction against finished matches: a correct
// winner counts, an exact score counts double.
func (s *PredictionService) Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT p.user_id, p.team1_score, m.score
		FROM predictions p
		JOIN matches m ON p.match_id = m.id
		WHERE m.score IS NOT NULL
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byUser := map[uuid.UUID]*models.LeaderboardEntry{}
	var order []uuid.UUID
	for rows.Next() {
		var userID uuid.UUID
		var guess int
		var rawScore string
		if err := rows.Scan(&userID, &guess, &rawScore); err != nil {
			return nil, err
		}

		match := models.Match{Score: &rawScore}
		team1, team2, ok := match.Scores()
		if !ok {
			continue
		}

		entry := byUser[userID]
		if entry == nil {
			entry = &models.LeaderboardEntry{UserID: userID}
			byUser[userID] = entry
			order = append(order, userID)
		}

		entry.Total++
		prediction := models.Prediction{Team1Score: guess}
		actualWinner := models.Team2
		if team1 > team2 {
			actualWinner = models.Team1
		}
		if prediction.WinnerIdx() == actualWinner {
			entry.Correct++
		}
		if guess == team1 {
			entry.ExactHits++
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	entries := make([]models.LeaderboardEntry, 0, len(byUser))
	for _, id := range order {
		entries = append(entries, *byUser[id])
	}
	sort.SliceStable(entries, func(i, j int) bool {
		iPoints := entries[i].Correct + entries[i].ExactHits
		jPoints := entries[j].Correct + entries[j].ExactHits
		if iPoints != jPoints {
			return iPoints > jPoints
		}
		return entries[i].Total < entries[j].Total
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func (s *PredictionService) DeleteByMatch(ctx context.Context, matchID uuid.UUID) error {
	_, err := s.db.Pool.Exec(ctx, `DELETE FROM predictions WHERE match_id = $1`, matchID)
	if err != nil {
		return fmt.Errorf("failed to delete predictions: %w", err)
	}
	return nil
}
