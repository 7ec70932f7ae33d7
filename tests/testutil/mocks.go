package testutil

import (
	"context"
	"time"

	"github.com/draftphase/draftphase-api/internal/catalog"
	"github.com/draftphase/draftphase-api/internal/models"
	"github.com/draftphase/draftphase-api/internal/oauth"
	"github.com/draftphase/draftphase-api/internal/services"
	"github.com/draftphase/draftphase-api/internal/sse"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockUserService mocks the UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) FindOrCreateFromOAuth(ctx context.Context, info *oauth.Identity) (*models.User, error) {
	args := m.Called(ctx, info)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

// MockMatchService mocks the MatchService
type MockMatchService struct {
	mock.Mock
}

func (m *MockMatchService) Create(ctx context.Context, params services.CreateMatchParams) (*models.Match, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Match), args.Error(1)
}

func (m *MockMatchService) GetByChannelID(ctx context.Context, channelID string) (*models.Match, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Match), args.Error(1)
}

func (m *MockMatchService) List(ctx context.Context) ([]models.Match, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Match), args.Error(1)
}

func (m *MockMatchService) Delete(ctx context.Context, channelID string) error {
	args := m.Called(ctx, channelID)
	return args.Error(0)
}

func (m *MockMatchService) SetScore(ctx context.Context, channelID string, score *string) error {
	args := m.Called(ctx, channelID, score)
	return args.Error(0)
}

func (m *MockMatchService) UpdateDetails(ctx context.Context, channelID string, subtitle *string, startTime *time.Time) error {
	args := m.Called(ctx, channelID, subtitle, startTime)
	return args.Error(0)
}

func (m *MockMatchService) CreateOffer(ctx context.Context, channelID, mapID string, env catalog.Environment, layout catalog.Layout) (*models.Match, error) {
	args := m.Called(ctx, channelID, mapID, env, layout)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Match), args.Error(1)
}

func (m *MockMatchService) AcceptOffer(ctx context.Context, channelID string, offerNo int, flipSides bool) (*models.Match, error) {
	args := m.Called(ctx, channelID, offerNo, flipSides)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Match), args.Error(1)
}

func (m *MockMatchService) SkipLatestOffer(ctx context.Context, channelID string) (*models.Match, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Match), args.Error(1)
}

func (m *MockMatchService) TakeAdvantage(ctx context.Context, channelID string) (*models.Match, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Match), args.Error(1)
}

func (m *MockMatchService) GiveAdvantage(ctx context.Context, channelID string) (*models.Match, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Match), args.Error(1)
}

func (m *MockMatchService) Undo(ctx context.Context, channelID string) (*models.Match, bool, error) {
	args := m.Called(ctx, channelID)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*models.Match), args.Bool(1), args.Error(2)
}

// MockCasterService mocks the CasterService
type MockCasterService struct {
	mock.Mock
}

func (m *MockCasterService) Register(ctx context.Context, userID uuid.UUID, name, channelURL string) (*models.Caster, error) {
	args := m.Called(ctx, userID, name, channelURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Caster), args.Error(1)
}

func (m *MockCasterService) GetByUserID(ctx context.Context, userID uuid.UUID) (*models.Caster, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Caster), args.Error(1)
}

func (m *MockCasterService) List(ctx context.Context) ([]models.Caster, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Caster), args.Error(1)
}

func (m *MockCasterService) Delete(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockStreamService mocks the StreamService
type MockStreamService struct {
	mock.Mock
}

func (m *MockStreamService) Add(ctx context.Context, matchID, casterID uuid.UUID, lang string) (*models.Stream, error) {
	args := m.Called(ctx, matchID, casterID, lang)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Stream), args.Error(1)
}

func (m *MockStreamService) GetByMatch(ctx context.Context, matchID uuid.UUID) ([]models.Stream, error) {
	args := m.Called(ctx, matchID)
	return args.Get(0).([]models.Stream), args.Error(1)
}

func (m *MockStreamService) Remove(ctx context.Context, matchID, casterID uuid.UUID) error {
	args := m.Called(ctx, matchID, casterID)
	return args.Error(0)
}

func (m *MockStreamService) ResolveCaster(ctx context.Context, userID uuid.UUID) (*models.Caster, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Caster), args.Error(1)
}

// MockPredictionService mocks the PredictionService
type MockPredictionService struct {
	mock.Mock
}

func (m *MockPredictionService) Put(ctx context.Context, match *models.Match, userID uuid.UUID, team1Score int) (*models.Prediction, error) {
	args := m.Called(ctx, match, userID, team1Score)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Prediction), args.Error(1)
}

func (m *MockPredictionService) GetByMatch(ctx context.Context, matchID uuid.UUID) ([]models.Prediction, error) {
	args := m.Called(ctx, matchID)
	return args.Get(0).([]models.Prediction), args.Error(1)
}

func (m *MockPredictionService) Distribution(ctx context.Context, matchID uuid.UUID) ([6]int, error) {
	args := m.Called(ctx, matchID)
	return args.Get(0).([6]int), args.Error(1)
}

func (m *MockPredictionService) Leaderboard(ctx context.Context, limit int) ([]models.LeaderboardEntry, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]models.LeaderboardEntry), args.Error(1)
}

// MockPollService mocks the PollService
type MockPollService struct {
	mock.Mock
}

func (m *MockPollService) Create(ctx context.Context, question string, options []string, createdBy *uuid.UUID) (*models.Poll, error) {
	args := m.Called(ctx, question, options, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Poll), args.Error(1)
}

func (m *MockPollService) CreateMapVote(ctx context.Context, question string, createdBy *uuid.UUID) (*models.Poll, error) {
	args := m.Called(ctx, question, createdBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Poll), args.Error(1)
}

func (m *MockPollService) GetByID(ctx context.Context, pollID uuid.UUID) (*models.Poll, error) {
	args := m.Called(ctx, pollID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Poll), args.Error(1)
}

func (m *MockPollService) Vote(ctx context.Context, pollID, teamID, optionID uuid.UUID) error {
	args := m.Called(ctx, pollID, teamID, optionID)
	return args.Error(0)
}

func (m *MockPollService) Close(ctx context.Context, pollID uuid.UUID) error {
	args := m.Called(ctx, pollID)
	return args.Error(0)
}

func (m *MockPollService) List(ctx context.Context) ([]models.Poll, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Poll), args.Error(1)
}

// MockTokenService mocks the TokenService
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) StoreRefreshToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	args := m.Called(ctx, userID, tokenHash, expiresAt)
	return args.Error(0)
}

func (m *MockTokenService) ValidateRefreshToken(ctx context.Context, tokenHash string) (uuid.UUID, error) {
	args := m.Called(ctx, tokenHash)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockTokenService) RevokeRefreshToken(ctx context.Context, tokenHash string) error {
	args := m.Called(ctx, tokenHash)
	return args.Error(0)
}

func (m *MockTokenService) RevokeAllUserTokens(ctx context.Context, userID uuid.UUID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockJWTService mocks the JWTService
type MockJWTService struct {
	mock.Mock
}

func (m *MockJWTService) GenerateTokenPair(userID uuid.UUID, email string) (*services.TokenPair, error) {
	args := m.Called(userID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.TokenPair), args.Error(1)
}

func (m *MockJWTService) ValidateRefreshToken(token string) (uuid.UUID, error) {
	args := m.Called(token)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockJWTService) RefreshExpiry() time.Duration {
	args := m.Called()
	return args.Get(0).(time.Duration)
}

// MockHub mocks the SSE hub
type MockHub struct {
	mock.Mock
}

func (m *MockHub) Register(client *sse.Client) {
	m.Called(client)
}

func (m *MockHub) Unregister(client *sse.Client) {
	m.Called(client)
}

func (m *MockHub) SubscribeToMatch(clientID, channelID string) {
	m.Called(clientID, channelID)
}

func (m *MockHub) UnsubscribeFromMatch(clientID, channelID string) {
	m.Called(clientID, channelID)
}

func (m *MockHub) BroadcastMatchCreated(channelID string, team1ID, team2ID uuid.UUID) {
	m.Called(channelID, team1ID, team2ID)
}

func (m *MockHub) BroadcastAdvantageChosen(channelID string, taken, team2Chosen bool) {
	m.Called(channelID, taken, team2Chosen)
}

func (m *MockHub) BroadcastOfferCreated(channelID string, offerNo int, teamID uuid.UUID, mapID, environment, layout string) {
	m.Called(channelID, offerNo, teamID, mapID, environment, layout)
}

func (m *MockHub) BroadcastOfferAccepted(channelID string, offerNo int, sidesFlipped bool) {
	m.Called(channelID, offerNo, sidesFlipped)
}

func (m *MockHub) BroadcastOfferSkipped(channelID string, offerNo int) {
	m.Called(channelID, offerNo)
}

func (m *MockHub) BroadcastDraftUndone(channelID string) {
	m.Called(channelID)
}

func (m *MockHub) BroadcastStreamAdded(channelID, casterName, lang string) {
	m.Called(channelID, casterName, lang)
}

func (m *MockHub) BroadcastPredictionMade(channelID string, userID uuid.UUID, team1Score int) {
	m.Called(channelID, userID, team1Score)
}

func (m *MockHub) BroadcastMatchDeleted(channelID string) {
	m.Called(channelID)
}

// MockOAuthProvider mocks an OAuth provider
type MockOAuthProvider struct {
	mock.Mock
}

func (m *MockOAuthProvider) GetConsentURL(state string) string {
	args := m.Called(state)
	return args.String(0)
}

func (m *MockOAuthProvider) ExchangeCode(ctx context.Context, code string) (*oauth.Identity, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth.Identity), args.Error(1)
}

func (m *MockOAuthProvider) Name() string {
	args := m.Called()
	return args.String(0)
}
