package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/draftphase/draftphase-api/internal/catalog"
	"github.com/draftphase/draftphase-api/internal/database"
	"github.com/draftphase/draftphase-api/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var ErrMatchNotFound = errors.New("match not found")

// MatchService persists matches and funnels every draft action through a
// row-locked transaction, so concurrent commands against the same match
// serialize instead of clobbering each other.
type MatchService struct {
	db *database.DB
}

func NewMatchService(db *database.DB) *MatchService {
	return &MatchService{db: db}
}

type CreateMatchParams struct {
	ChannelID   string
	Team1ID     uuid.UUID
	Team2ID     uuid.UUID
	Subtitle    *string
	StartTime   *time.Time
	MaxOffers   int
	StreamDelay int
}

func (s *MatchService) Create(ctx context.Context, params CreateMatchParams) (*models.Match, error) {
	if _, err := catalog.GetTeam(params.Team1ID); err != nil {
		return nil, err
	}
	if _, err := catalog.GetTeam(params.Team2ID); err != nil {
		return nil, err
	}

	match := models.Match{
		ChannelID:    params.ChannelID,
		Team1ID:      params.Team1ID,
		Team2ID:      params.Team2ID,
		Subtitle:     params.Subtitle,
		StartTime:    params.StartTime,
		MaxNumOffers: params.MaxOffers,
		CoinFlip:     rand.IntN(2) == 1,
		StreamDelay:  params.StreamDelay,
	}

	err := s.db.Pool.QueryRow(ctx, `
		INSERT INTO matches (channel_id, team1_id, team2_id, subtitle, start_time, max_num_offers, coin_flip, stream_delay)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`, match.ChannelID, match.Team1ID, match.Team2ID, match.Subtitle, match.StartTime,
		match.MaxNumOffers, match.CoinFlip, match.StreamDelay,
	).Scan(&match.ID, &match.CreatedAt, &match.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, &models.GameStateError{Reason: "a match already exists for this channel"}
		}
		return nil, fmt.Errorf("failed to create match: %w", err)
	}
	return &match, nil
}

func (s *MatchService) GetByChannelID(ctx context.Context, channelID string) (*models.Match, error) {
	row := s.db.Pool.QueryRow(ctx, `
		SELECT id, channel_id, message_id, team1_id, team2_id, subtitle, start_time, score,
		       max_num_offers, coin_flip, advantage_choice, sides_flipped, stream_delay,
		       created_at, updated_at
		FROM matches WHERE channel_id = $1
	`, channelID)

	match, err := scanMatch(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	if err := s.loadChildren(ctx, s.db.Pool, match); err != nil {
		return nil, err
	}
	return match, nil
}

// List returns matches in start-time order, soonest first, with unscheduled
// matches last.
func (s *MatchService) List(ctx context.Context) ([]models.Match, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, channel_id, message_id, team1_id, team2_id, subtitle, start_time, score,
		       max_num_offers, coin_flip, advantage_choice, sides_flipped, stream_delay,
		       created_at, updated_at
		FROM matches
		ORDER BY start_time ASC NULLS LAST, created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []models.Match
	for rows.Next() {
		match, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, *match)
	}
	return matches, rows.Err()
}

func (s *MatchService) Delete(ctx context.Context, channelID string) error {
	tag, err := s.db.Pool.Exec(ctx, `DELETE FROM matches WHERE channel_id = $1`, channelID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMatchNotFound
	}
	return nil
}

func (s *MatchService) SetMessageID(ctx context.Context, channelID, messageID string) error {
	_, err := s.db.Pool.Exec(ctx, `
		UPDATE matches SET message_id = $1, updated_at = NOW() WHERE channel_id = $2
	`, messageID, channelID)
	return err
}

func (s *MatchService) SetScore(ctx context.Context, channelID string, score *string) error {
	tag, err := s.db.Pool.Exec(ctx, `
		UPDATE matches SET score = $1, updated_at = NOW() WHERE channel_id = $2
	`, score, channelID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMatchNotFound
	}
	return nil
}

// UpdateDetails patches the match metadata. Nil fields keep their stored
// value.
func (s *MatchService) UpdateDetails(ctx context.Context, channelID string, subtitle *string, startTime *time.Time) error {
	tag, err := s.db.Pool.Exec(ctx, `
		UPDATE matches
		SET subtitle = COALESCE($1, subtitle), start_time = COALESCE($2, start_time), updated_at = NOW()
		WHERE channel_id = $3
	`, subtitle, startTime, channelID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrMatchNotFound
	}
	return nil
}

// CreateOffer appends an offer to the match's ledger and returns the
// updated match.
func (s *MatchService) CreateOffer(ctx context.Context, channelID, mapID string, env catalog.Environment, layout catalog.Layout) (*models.Match, error) {
	return s.mutate(ctx, channelID, func(m *models.Match) error {
		_, err := m.CreateOffer(mapID, env, layout)
		return err
	})
}

func (s *MatchService) AcceptOffer(ctx context.Context, channelID string, offerNo int, flipSides bool) (*models.Match, error) {
	return s.mutate(ctx, channelID, func(m *models.Match) error {
		return m.AcceptOffer(offerNo, flipSides)
	})
}

func (s *MatchService) SkipLatestOffer(ctx context.Context, channelID string) (*models.Match, error) {
	return s.mutate(ctx, channelID, func(m *models.Match) error {
		return m.SkipLatestOffer()
	})
}

func (s *MatchService) TakeAdvantage(ctx context.Context, channelID string) (*models.Match, error) {
	return s.mutate(ctx, channelID, func(m *models.Match) error {
		return m.TakeAdvantage()
	})
}

func (s *MatchService) GiveAdvantage(ctx context.Context, channelID string) (*models.Match, error) {
	return s.mutate(ctx, channelID, func(m *models.Match) error {
		return m.GiveAdvantage()
	})
}

// Undo rewinds one draft transition. The second return reports whether
// there was anything to undo.
func (s *MatchService) Undo(ctx context.Context, channelID string) (*models.Match, bool, error) {
	undone := false
	match, err := s.mutate(ctx, channelID, func(m *models.Match) error {
		undone = m.Undo()
		return nil
	})
	return match, undone, err
}

// mutate runs fn against the locked match inside a transaction and writes
// the resulting state back. SELECT FOR UPDATE on the match row is what
// keeps two simultaneous commands from both passing the legality checks.
func (s *MatchService) mutate(ctx context.Context, channelID string, fn func(*models.Match) error) (*models.Match, error) {
	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	row := tx.QueryRow(ctx, `
		SELECT id, channel_id, message_id, team1_id, team2_id, subtitle, start_time, score,
		       max_num_offers, coin_flip, advantage_choice, sides_flipped, stream_delay,
		       created_at, updated_at
		FROM matches WHERE channel_id = $1
		FOR UPDATE
	`, channelID)

	match, err := scanMatch(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	if err := s.loadChildren(ctx, tx, match); err != nil {
		return nil, err
	}

	if err := fn(match); err != nil {
		return nil, err
	}

	if err := s.saveDraftState(ctx, tx, match); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return match, nil
}

// querier covers both the pool and an open transaction.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

func (s *MatchService) loadChildren(ctx context.Context, q querier, match *models.Match) error {
	rows, err := q.Query(ctx, `
		SELECT id, match_id, offer_no, team_id, map, environment, layout, accepted, created_at
		FROM offers WHERE match_id = $1
		ORDER BY offer_no
	`, match.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	match.Offers = nil
	for rows.Next() {
		var offer models.Offer
		var layout string
		if err := rows.Scan(
			&offer.ID, &offer.MatchID, &offer.OfferNo, &offer.TeamID,
			&offer.Map, &offer.Environment, &layout, &offer.Accepted, &offer.CreatedAt,
		); err != nil {
			return err
		}
		offer.Layout, err = catalog.ParseLayout(layout)
		if err != nil {
			return fmt.Errorf("%w: offer %s has layout %q", models.ErrIntegrity, offer.ID, layout)
		}
		match.Offers = append(match.Offers, offer)
	}
	if err := rows.Err(); err != nil {
		return err
	}
	rows.Close()

	streamRows, err := q.Query(ctx, `
		SELECT st.id, st.match_id, st.lang, st.created_at,
		       c.user_id, c.name, c.channel_url, c.created_at, c.updated_at
		FROM streams st
		JOIN casters c ON st.caster_id = c.user_id
		WHERE st.match_id = $1
		ORDER BY st.created_at
	`, match.ID)
	if err != nil {
		return err
	}
	defer streamRows.Close()

	match.Streams = nil
	for streamRows.Next() {
		var stream models.Stream
		if err := streamRows.Scan(
			&stream.ID, &stream.MatchID, &stream.Lang, &stream.CreatedAt,
			&stream.Caster.UserID, &stream.Caster.Name, &stream.Caster.ChannelURL,
			&stream.Caster.CreatedAt, &stream.Caster.UpdatedAt,
		); err != nil {
			return err
		}
		match.Streams = append(match.Streams, stream)
	}
	return streamRows.Err()
}

// saveDraftState reconciles the offers table with the in-memory ledger and
// updates the match's draft columns. Undo can both shrink the ledger and
// reopen answered offers, so offers past the current length are deleted and
// the rest upserted on (match_id, offer_no).
func (s *MatchService) saveDraftState(ctx context.Context, tx pgx.Tx, match *models.Match) error {
	_, err := tx.Exec(ctx, `
		UPDATE matches SET advantage_choice = $1, sides_flipped = $2, updated_at = NOW()
		WHERE id = $3
	`, match.AdvantageChoice, match.SidesFlipped, match.ID)
	if err != nil {
		return fmt.Errorf("failed to update match: %w", err)
	}

	_, err = tx.Exec(ctx, `
		DELETE FROM offers WHERE match_id = $1 AND offer_no > $2
	`, match.ID, len(match.Offers))
	if err != nil {
		return fmt.Errorf("failed to trim offers: %w", err)
	}

	for i := range match.Offers {
		offer := &match.Offers[i]
		_, err = tx.Exec(ctx, `
			INSERT INTO offers (id, match_id, offer_no, team_id, map, environment, layout, accepted, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (match_id, offer_no) DO UPDATE SET accepted = EXCLUDED.accepted
		`, offer.ID, offer.MatchID, offer.OfferNo, offer.TeamID,
			offer.Map, string(offer.Environment), offer.Layout.String(), offer.Accepted, offer.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to save offer %d: %w", offer.OfferNo, err)
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMatch(row rowScanner) (*models.Match, error) {
	var match models.Match
	err := row.Scan(
		&match.ID, &match.ChannelID, &match.MessageID, &match.Team1ID, &match.Team2ID,
		&match.Subtitle, &match.StartTime, &match.Score, &match.MaxNumOffers,
		&match.CoinFlip, &match.AdvantageChoice, &match.SidesFlipped, &match.StreamDelay,
		&match.CreatedAt, &match.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &match, nil
}
