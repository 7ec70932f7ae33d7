package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/draftphase/draftphase-api/internal/database"
	"github.com/draftphase/draftphase-api/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrCasterNotFound = errors.New("caster not found")

type CasterService struct {
	db    *database.DB
	cache *ttlCache[[]models.Caster]
}

func NewCasterService(db *database.DB, cacheTTL time.Duration) *CasterService {
	return &CasterService{
		db:    db,
		cache: newTTLCache[[]models.Caster](cacheTTL),
	}
}

// Register creates or updates the caster profile for a user.
func (s *CasterService) Register(ctx context.Context, userID uuid.UUID, name, channelURL string) (*models.Caster, error) {
	var caster models.Caster
	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO casters (user_id, name, channel_url)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET name = EXCLUDED.name, channel_url = EXCLUDED.channel_url, updated_at = NOW()
		RETURNING user_id, name, channel_url, created_at, updated_at
	`, userID, name, channelURL).Scan(
		&caster.UserID, &caster.Name, &caster.ChannelURL, &caster.CreatedAt, &caster.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to register caster: %w", err)
	}
	s.cache.Invalidate()
	return &caster, nil
}

func (s *CasterService) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Caster, error) {
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

// List returns all registered casters, served from the TTL cache.
func (s *CasterService) List(ctx context.Context) ([]models.Caster, error) {
	return s.cache.Get(ctx, s.list)
}

func (s *CasterService) list(ctx context.Context) ([]models.Caster, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT user_id, name, channel_url, created_at, updated_at
		FROM casters ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var casters []models.Caster
	for rows.Next() {
		var caster models.Caster
		if err := rows.Scan(&caster.UserID, &caster.Name, &caster.ChannelURL, &caster.CreatedAt, &caster.UpdatedAt); err != nil {
			return nil, err
		}
		casters = append(casters, caster)
	}
	return casters, rows.Err()
}

func (s *CasterService) Delete(ctx context.Context, userID uuid.UUID) error {
	tag, err := s.db.Pool.Exec(ctx, `DELETE FROM casters WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCasterNotFound
	}
	s.cache.Invalidate()
	return nil
}
