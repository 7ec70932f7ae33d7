package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/draftphase/draftphase-api/internal/catalog"
	"github.com/draftphase/draftphase-api/internal/database"
	"github.com/draftphase/draftphase-api/internal/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrPollNotFound = errors.New("poll not found")

type PollService struct {
	db *database.DB
}

func NewPollService(db *database.DB) *PollService {
	return &PollService{db: db}
}

func (s *PollService) Create(ctx context.Context, question string, options []string, createdBy *uuid.UUID) (*models.Poll, error) {
	if len(options) < 2 {
		return nil, &models.GameStateError{Reason: "a poll needs at least two options"}
	}

	tx, err := s.db.Pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	var poll models.Poll
	err = tx.QueryRow(ctx, `
		INSERT INTO polls (question, created_by)
		VALUES ($1, $2)
		RETURNING id, question, closed, created_by, created_at
	`, question, createdBy).Scan(&poll.ID, &poll.Question, &poll.Closed, &poll.CreatedBy, &poll.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create poll: %w", err)
	}

	for i, option := range options {
		var opt models.PollOption
		err = tx.QueryRow(ctx, `
			INSERT INTO poll_options (poll_id, option, position)
			VALUES ($1, $2, $3)
			RETURNING id, poll_id, option, position
		`, poll.ID, option, i).Scan(&opt.ID, &opt.PollID, &opt.Option, &opt.Position)
		if err != nil {
			return nil, fmt.Errorf("failed to create poll option: %w", err)
		}
		poll.Options = append(poll.Options, opt)
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return &poll, nil
}

// CreateMapVote creates a poll with one option per catalog map, in catalog
// order, so votes can drive the map pick for a match.
func (s *PollService) CreateMapVote(ctx context.Context, question string, createdBy *uuid.UUID) (*models.Poll, error) {
	if question == "" {
		question = "Which map should be played?"
	}
	return s.Create(ctx, question, catalog.MapIDs(), createdBy)
}

func (s *PollService) GetByID(ctx context.Context, pollID uuid.UUID) (*models.Poll, error) {
	var poll models.Poll
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, question, closed, created_by, created_at
		FROM polls WHERE id = $1
	`, pollID).Scan(&poll.ID, &poll.Question, &poll.Closed, &poll.CreatedBy, &poll.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrPollNotFound
		}
		return nil, err
	}

	rows, err := s.db.Pool.Query(ctx, `
		SELECT o.id, o.poll_id, o.option, o.position, COUNT(v.option_id)
		FROM poll_options o
		LEFT JOIN poll_votes v ON v.option_id = o.id
		WHERE o.poll_id = $1
		GROUP BY o.id, o.poll_id, o.option, o.position
		ORDER BY o.position
	`, pollID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var opt models.PollOption
		if err := rows.Scan(&opt.ID, &opt.PollID, &opt.Option, &opt.Position, &opt.Votes); err != nil {
			return nil, err
		}
		poll.Options = append(poll.Options, opt)
	}
	return &poll, rows.Err()
}

// Vote records a team's vote. One vote per team per poll; a repeat vote
// moves the team to the new option.
func (s *PollService) Vote(ctx context.Context, pollID, teamID, optionID uuid.UUID) error {
	var closed bool
	err := s.db.Pool.QueryRow(ctx, `SELECT closed FROM polls WHERE id = $1`, pollID).Scan(&closed)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrPollNotFound
		}
		return err
	}
	if closed {
		return &models.GameStateError{Reason: "poll is closed"}
	}

	tag, err := s.db.Pool.Exec(ctx, `
		INSERT INTO poll_votes (poll_id, team_id, option_id)
		SELECT $1, $2, $3
		WHERE EXISTS (SELECT 1 FROM poll_options WHERE id = $3 AND poll_id = $1)
		ON CONFLICT (poll_id, team_id) DO UPDATE SET option_id = EXCLUDED.option_id
	`, pollID, teamID, optionID)
	if err != nil {
		return fmt.Errorf("failed to vote: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: option %s is not part of poll %s", models.ErrIntegrity, optionID, pollID)
	}
	return nil
}

func (s *PollService) Close(ctx context.Context, pollID uuid.UUID) error {
	tag, err := s.db.Pool.Exec(ctx, `UPDATE polls SET closed = TRUE WHERE id = $1`, pollID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrPollNotFound
	}
	return nil
}

func (s *PollService) List(ctx context.Context) ([]models.Poll, error) {
	rows, err := s.db.Pool.Query(ctx, `
		SELECT id, question, closed, created_by, created_at
		FROM polls ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var polls []models.Poll
	for rows.Next() {
		var poll models.Poll
		if err := rows.Scan(&poll.ID, &poll.Question, &poll.Closed, &poll.CreatedBy, &poll.CreatedAt); err != nil {
			return nil, err
		}
		polls = append(polls, poll)
	}
	return polls, rows.Err()
}
