package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/draftphase/draftphase-api/internal/database"
	"github.com/draftphase/draftphase-api/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrStreamNotFound = errors.New("stream not found")

type StreamService struct {
	db *database.DB
}

func NewStreamService(db *database.DB) *StreamService {
	return &StreamService{db: db}
}

// Add attaches a caster's stream to a match. A caster streams a match at
// most once; re-adding updates the language.
func (s *StreamService) Add(ctx context.Context, matchID, casterID uuid.UUID, lang string) (*models.Stream, error) {
	var stream models.Stream
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO streams (match_id, caster_id, lang)
		VALUES ($1, $2, $3)
		ON CONFLICT (match_id, caster_id) DO UPDATE SET lang = EXCLUDED.lang
		RETURNING id, match_id, lang, created_at
	`, matchID, casterID, lang).Scan(&stream.ID, &stream.MatchID, &stream.Lang, &stream.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to add stream: %w", err)
	}

	err = s.db.Pool.QueryRow(ctx, `
		SELECT user_id, name, channel_url, created_at, updated_at
		FROM casters WHERE user_id = $1
	`, casterID).Scan(
		&stream.Caster.UserID, &stream.Caster.Name, &stream.Caster.ChannelURL,
		&stream.Caster.CreatedAt, &stream.Caster.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &stream, nil
}

func (s *StreamService) GetByMatch(ctx context.Context, matchID uuid.UUID) ([]models.Stream, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT st.id, st.match_id, st.lang, st.created_at,
		       c.user_id, c.name, c.channel_url, c.created_at, c.updated_at
		FROM streams st
		JOIN casters c ON st.caster_id = c.user_id
		WHERE st.match_id = $1
		ORDER BY st.created_at
	`, matchID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var streams []models.Stream
	for rows.Next() {
		var stream models.Stream
		if err := rows.Scan(
			&stream.ID, &stream.MatchID, &stream.Lang, &stream.CreatedAt,
			&stream.Caster.UserID, &stream.Caster.Name, &stream.Caster.ChannelURL,
			&stream.Caster.CreatedAt, &stream.Caster.UpdatedAt,
		); err != nil {
			return nil, err
		}
		streams = append(streams, stream)
	}
	return streams, rows.Err()
}

func (s *StreamService) Remove(ctx context.Context, matchID, casterID uuid.UUID) error {
	tag, err := s.db.Pool.Exec(ctx, `
		DELETE FROM streams WHERE match_id = $1 AND caster_id = $2
	`, matchID, casterID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrStreamNotFound
	}
	return nil
}

// ResolveCaster maps a user to their caster profile, distinguishing "not a
// caster" from other failures.
func (s *StreamService) ResolveCaster(ctx context.Context, userID uuid.UUID) (*models.Caster, error) {
	var caster models.Caster
	err := s.db.Pool.QueryRow(ctx, `
		SELECT user_id, name, channel_url, created_at, updated_at
		FROM casters WHERE user_id = $1
	`, userID).Scan(&caster.UserID, &caster.Name, &caster.ChannelURL, &caster.CreatedAt, &caster.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCasterNotFound
		}
		return nil, err
	}
	return &caster, nil
}
