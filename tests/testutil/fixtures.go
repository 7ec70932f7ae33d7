package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/draftphase/draftphase-api/internal/catalog"
	"github.com/draftphase/draftphase-api/internal/database"
	"github.com/draftphase/draftphase-api/internal/models"
	"github.com/draftphase/draftphase-api/internal/oauth"
	"github.com/google/uuid"
)

// Fixtures provides factory methods for creating test data
type Fixtures struct {
	db      *database.DB
	counter int
}

// NewFixtures creates a new fixtures factory
func NewFixtures(db *database.DB) *Fixtures {
	return &Fixtures{db: db}
}

// TeamsByRegion returns the catalog team ids for a region, ordered by name
// so tests get a stable pick.
func TeamsByRegion(region catalog.Region) []uuid.UUID {
	var ids []uuid.UUID
	for _, team := range catalog.SortedTeams() {
		if team.Region == region {
			ids = append(ids, team.ID)
		}
	}
	return ids
}

// CreateUser creates a test user with default values
func (f *Fixtures) CreateUser(t *testing.T, opts ...UserOption) *models.User {
	t.Helper()
	f.counter++

	user := &models.User{
		Email:      fmt.Sprintf("user%d@example.com", f.counter),
		Name:       fmt.Sprintf("Test User %d", f.counter),
		Provider:   "discord",
		ProviderID: fmt.Sprintf("provider-%d", f.counter),
	}

	for _, opt := range opts {
		opt(user)
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO users (email, name, avatar_url, provider, provider_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, email, name, avatar_url, provider, provider_id, created_at, updated_at
	`, user.Email, user.Name, user.AvatarURL, user.Provider, user.ProviderID).Scan(
		&user.ID, &user.Email, &user.Name, &user.AvatarURL,
		&user.Provider, &user.ProviderID, &user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user
}

// UserOption configures a test user
type UserOption func(*models.User)

// WithEmail sets the user's email
func WithEmail(email string) UserOption {
	return func(u *models.User) {
		u.Email = email
	}
}

// WithProvider sets the user's OAuth provider
func WithProvider(provider, providerID string) UserOption {
	return func(u *models.User) {
		u.Provider = provider
		u.ProviderID = providerID
	}
}

// CreateMatch creates a test match between two EU teams by default
func (f *Fixtures) CreateMatch(t *testing.T, opts ...MatchOption) *models.Match {
	t.Helper()
	f.counter++

	eu := TeamsByRegion(catalog.RegionEU)
	match := &models.Match{
		ChannelID:    fmt.Sprintf("channel-%d", f.counter),
		Team1ID:      eu[0],
		Team2ID:      eu[1],
		MaxNumOffers: 12,
		CoinFlip:     false,
		StreamDelay:  15,
	}

	for _, opt := range opts {
		opt(match)
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO matches (channel_id, team1_id, team2_id, subtitle, start_time, score, max_num_offers, coin_flip, advantage_choice, sides_flipped, stream_delay)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`, match.ChannelID, match.Team1ID, match.Team2ID, match.Subtitle, match.StartTime,
		match.Score, match.MaxNumOffers, match.CoinFlip, match.AdvantageChoice,
		match.SidesFlipped, match.StreamDelay,
	).Scan(&match.ID, &match.CreatedAt, &match.UpdatedAt)
	if err != nil {
		t.Fatalf("failed to create match: %v", err)
	}

	return match
}

// MatchOption configures a test match
type MatchOption func(*models.Match)

// WithChannelID sets the match's channel id
func WithChannelID(channelID string) MatchOption {
	return func(m *models.Match) {
		m.ChannelID = channelID
	}
}

// WithTeams sets both teams
func WithTeams(team1ID, team2ID uuid.UUID) MatchOption {
	return func(m *models.Match) {
		m.Team1ID = team1ID
		m.Team2ID = team2ID
	}
}

// WithCoinFlip sets the coin flip result
func WithCoinFlip(coinFlip bool) MatchOption {
	return func(m *models.Match) {
		m.CoinFlip = coinFlip
	}
}

// WithMaxOffers sets the offer budget
func WithMaxOffers(n int) MatchOption {
	return func(m *models.Match) {
		m.MaxNumOffers = n
	}
}

// WithScore sets the final score string
func WithScore(score string) MatchOption {
	return func(m *models.Match) {
		m.Score = &score
	}
}

// WithStartTime sets the match start time
func WithStartTime(ts time.Time) MatchOption {
	return func(m *models.Match) {
		m.StartTime = &ts
	}
}

// WithAdvantageChoice sets the advantage choice, past the coin flip phase
func WithAdvantageChoice(choice bool) MatchOption {
	return func(m *models.Match) {
		m.AdvantageChoice = &choice
	}
}

// AddOffer appends an offer row to a match
func (f *Fixtures) AddOffer(t *testing.T, match *models.Match, offerNo int, teamID uuid.UUID, mapID string, env catalog.Environment, layout catalog.Layout, accepted *bool) {
	t.Helper()
	ctx := context.Background()

	_, err := f.db.Pool.Exec(ctx, `
		INSERT INTO offers (match_id, offer_no, team_id, map, environment, layout, accepted)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, match.ID, offerNo, teamID, mapID, string(env), layout.String(), accepted)
	if err != nil {
		t.Fatalf("failed to create offer: %v", err)
	}
}

// CreateCaster registers a caster profile for a user
func (f *Fixtures) CreateCaster(t *testing.T, userID uuid.UUID) *models.Caster {
	t.Helper()
	f.counter++

	caster := &models.Caster{
		UserID:     userID,
		Name:       fmt.Sprintf("Caster %d", f.counter),
		ChannelURL: fmt.Sprintf("https://twitch.tv/caster%d", f.counter),
	}

	ctx := context.Background()
	err := f.db.Pool.QueryRow(ctx, `
		INSERT INTO casters (user_id, name, channel_url)
		VALUES ($1, $2, $3)
		RETURNING created_at, updated_at
	`, caster.UserID, caster.Name, caster.ChannelURL).Scan(&caster.CreatedAt, &caster.UpdatedAt)
	if err != nil {
		t.Fatalf("failed to create caster: %v", err)
	}

	return caster
}

// CreatePrediction stores a score prediction for a match
func (f *Fixtures) CreatePrediction(t *testing.T, match *models.Match, userID uuid.UUID, team1Score int) {
	t.Helper()
	ctx := context.Background()

	_, err := f.db.Pool.Exec(ctx, `
		INSERT INTO predictions (match_id, user_id, team1_score)
		VALUES ($1, $2, $3)
	`, match.ID, userID, team1Score)
	if err != nil {
		t.Fatalf("failed to create prediction: %v", err)
	}
}

// CreateRefreshToken creates a test refresh token
func (f *Fixtures) CreateRefreshToken(t *testing.T, userID uuid.UUID, tokenHash string, expiresAt time.Time) {
	t.Helper()
	ctx := context.Background()

	_, err := f.db.Pool.Exec(ctx, `
		INSERT INTO refresh_tokens (user_id, token_hash, expires_at)
		VALUES ($1, $2, $3)
	`, userID, tokenHash, expiresAt)
	if err != nil {
		t.Fatalf("failed to create refresh token: %v", err)
	}
}

// OAuthIdentity creates a provider identity for login tests
func OAuthIdentity(email, name, provider, id string) *oauth.Identity {
	return &oauth.Identity{
		Email:      email,
		Name:       name,
		AvatarURL:  "https://example.com/avatar.png",
		ProviderID: id,
		Provider:   provider,
	}
}
