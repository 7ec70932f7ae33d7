package handlers

import (
	"context"
	"time"

	"github.com/draftphase/draftphase-api/internal/catalog"
	"github.com/draftphase/draftphase-api/internal/models"
	"github.com/draftphase/draftphase-api/internal/oauth"
	"github.com/draftphase/draftphase-api/internal/services"
	"github.com/draftphase/draftphase-api/internal/sse"
	"github.com/google/uuid"
)

// UserServiceInterface defines the methods used by handlers from UserService
type UserServiceInterface interface {
	FindOrCreateFromOAuth(ctx context.Context, info *oauth.Identity) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// TokenServiceInterface defines the methods used by handlers from TokenService
type TokenServiceInterface interface {
	StoreRefreshToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error
	ValidateRefreshToken(ctx context.Context, tokenHash string) (uuid.UUID, error)
	RevokeRefreshToken(ctx context.Context, tokenHash string) error
	RevokeAllUserTokens(ctx context.Context, userID uuid.UUID) error
}

// JWTServiceInterface defines the methods used by handlers from JWTService
type JWTServiceInterface interface {
	GenerateTokenPair(userID uuid.UUID, email string) (*services.TokenPair, error)
	ValidateRefreshToken(token string) (uuid.UUID, error)
	RefreshExpiry() time.Duration
}

// MatchServiceInterface defines the methods used by handlers from MatchService
type MatchServiceInterface interface {
	Create(ctx context.Context, params services.CreateMatchParams) (*models.Match, error)
	GetByChannelID(ctx context.Context, channelID string) (*models.Match, error)
	List(ctx context.Context) ([]models.Match, error)
	Delete(ctx context.Context, channelID string) error
	SetScore(ctx context.Context, channelID string, score *string) error
	UpdateDetails(ctx context.Context, channelID string, subtitle *string, startTime *time.Time) error
	CreateOffer(ctx context.Context, channelID, mapID string, env catalog.Environment, layout catalog.Layout) (*models.Match, error)
	AcceptOffer(ctx context.Context, channelID string, offerNo int, flipSides bool) (*models.Match, error)
	SkipLatestOffer(ctx context.Context, channelID string) (*models.Match, error)
	TakeAdvantage(ctx context.Context, channelID string) (*models.Match, error)
	GiveAdvantage(ctx context.Context, channelID string) (*models.Match, error)
	Undo(ctx context.Context, channelID string) (*models.Match, bool, error)
}

// CasterServiceInterface defines the methods used by handlers from CasterService
type CasterServiceInterface interface {
	Register(ctx context.Context, userID uuid.UUID, name, channelURL string) (*models.Caster, error)
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Caster, error)
	List(ctx context.Context) ([]models.Caster, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

// StreamServiceInterface defines the methods used by handlers from StreamService
type StreamServiceInterface interface {
	Add(ctx context.Context, matchID, casterID uuid.UUID, lang string) (*models.Stream, error)
	GetByMatch(ctx context.Context, matchID uuid.UUID) ([]models.Stream, error)
	Remove(ctx context.Context, matchID, casterID uuid.UUID) error
	ResolveCaster(ctx context.Context, userID uuid.UUID) (*models.Caster, error)
}

// PredictionServiceInterface defines the methods used by handlers from PredictionService
type PredictionServiceInterface interface {
	Put(ctx context.Context, match *models.Match, userID uuid.UUID, team1Score int) (*models.Prediction, error)
	GetByMatch(ctx context.Context, matchID uuid.UUID) ([]models.Prediction, error)
	Distribution(ctx context.Context, matchID uuid.UUID) ([6]int, error)
	Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error)
}

// PollServiceInterface defines the methods used by handlers from PollService
type PollServiceInterface interface {
	Create(ctx context.Context, question string, options []string, createdBy *uuid.UUID) (*models.Poll, error)
	CreateMapVote(ctx context.Context, question string, createdBy *uuid.UUID) (*models.Poll, error)
	GetByID(ctx context.Context, pollID uuid.UUID) (*models.Poll, error)
	Vote(ctx context.Context, pollID, teamID, optionID uuid.UUID) error
	Close(ctx context.Context, pollID uuid.UUID) error
	List(ctx context.Context) ([]models.Poll, error)
}

// HubInterface defines the methods used by handlers from the Hub
type HubInterface interface {
	Register(client *sse.Client)
	Unregister(client *sse.Client)
	SubscribeToMatch(clientID, channelID string)
	UnsubscribeFromMatch(clientID, channelID string)
	BroadcastMatchCreated(channelID string, team1ID, team2ID uuid.UUID)
	BroadcastAdvantageChosen(channelID string, taken, team2Chosen bool)
	BroadcastOfferCreated(channelID string, offerNo int, teamID uuid.UUID, mapID, environment, layout string)
	BroadcastOfferAccepted(channelID string, offerNo int, sidesFlipped bool)
	BroadcastOfferSkipped(channelID string, offerNo int)
	BroadcastDraftUndone(channelID string)
	BroadcastStreamAdded(channelID, casterName, lang string)
	BroadcastPredictionMade(channelID string, userID uuid.UUID, team1Score int)
	BroadcastMatchDeleted(channelID string)
}
